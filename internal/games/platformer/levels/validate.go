package levels

import (
	"fmt"

	"github.com/vovakirdan/superdudu/internal/config"
	"github.com/vovakirdan/superdudu/internal/core"
	"github.com/vovakirdan/superdudu/internal/games/platformer"
)

// ValidationError contains details about a level problem.
// Warnings describe levels that load and run but probably not as intended.
type ValidationError struct {
	Code    string
	Message string
	Warning bool
}

func (e ValidationError) Error() string {
	if e.Warning {
		return fmt.Sprintf("[%s] warning: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// HasErrors reports whether any issue is not a warning.
func HasErrors(issues []ValidationError) bool {
	for _, is := range issues {
		if !is.Warning {
			return true
		}
	}
	return false
}

// Validate checks a single level against the configuration it will run with.
func Validate(lvl platformer.LevelTemplate, cfg config.Platformer) []ValidationError {
	var issues []ValidationError
	fail := func(code, format string, args ...any) {
		issues = append(issues, ValidationError{Code: code, Message: fmt.Sprintf(format, args...)})
	}
	warn := func(code, format string, args ...any) {
		issues = append(issues, ValidationError{Code: code, Message: fmt.Sprintf(format, args...), Warning: true})
	}

	if lvl.ID < 1 {
		fail("BAD_ID", "level id %d must be 1 or greater", lvl.ID)
	}
	if lvl.TimeLimit <= 0 {
		fail("NO_TIME", "time limit %v must be positive", lvl.TimeLimit)
	}
	if len(lvl.Platforms) == 0 {
		fail("NO_PLATFORMS", "level has no platforms")
	}

	player := core.BoxAt(lvl.PlayerStart, core.Size{W: cfg.Player.Width, H: cfg.Player.Height})
	maxX := cfg.World.MaxX()
	if player.X < 0 || player.Right() > maxX {
		fail("START_OUT_OF_WORLD", "player start x %v outside [0, %v]", player.X, maxX-player.W)
	}

	for i, p := range lvl.Platforms {
		if p.Size.W <= 0 || p.Size.H <= 0 {
			fail("BAD_SIZE", "platform %d has size %vx%v", i, p.Size.W, p.Size.H)
		}
		box := core.BoxAt(p.Pos, p.Size)
		switch p.Kind {
		case platformer.PlatformMoving:
			if p.Vel == (core.Vec2{}) {
				warn("MOVING_STILL", "moving platform %d has zero velocity", i)
			}
			if b := p.Bounds; b != nil && (b.MaxX-b.MinX < p.Size.W || b.MaxY-b.MinY < p.Size.H) {
				warn("INVERTED_BOUNDS", "moving platform %d bounds [%v,%v]x[%v,%v] cannot hold it", i, b.MinX, b.MaxX, b.MinY, b.MaxY)
			}
		case platformer.PlatformGround, platformer.PlatformBlock, platformer.PlatformPipe:
			if p.Vel != (core.Vec2{}) {
				warn("STATIC_VELOCITY", "%s platform %d has a velocity that will be ignored", p.Kind, i)
			}
			if player.Overlaps(box) {
				fail("START_BLOCKED", "player start overlaps platform %d", i)
			}
		default:
			fail("BAD_KIND", "platform %d has unknown kind %d", i, int(p.Kind))
		}
	}

	for i, e := range lvl.Enemies {
		if e.Size.W < 0 || e.Size.H < 0 || e.Speed < 0 || e.Health < 0 {
			fail("BAD_SIZE", "enemy %d has negative size, speed or health", i)
		}
	}

	for i, c := range lvl.Collectibles {
		if c.Size.W <= 0 || c.Size.H <= 0 {
			fail("BAD_SIZE", "collectible %d has size %vx%v", i, c.Size.W, c.Size.H)
		}
		if c.Kind == platformer.CollectiblePowerUp && c.PowerUp == platformer.PowerUpNone {
			warn("POWERUP_MISSING", "power-up %d grants nothing", i)
		}
	}

	endX := platformer.LevelEndX(cfg.Rules, lvl.ID, lvl.EndX)
	if endX >= maxX-cfg.Player.Width {
		warn("END_UNREACHABLE", "end x %v is beyond the furthest player x %v", endX, maxX-cfg.Player.Width)
	}

	return issues
}

// ValidateTable checks every level and the table ordering.
// Issues are keyed by level ID; table-wide issues use key 0.
func ValidateTable(table platformer.LevelTable, cfg config.Platformer) map[int][]ValidationError {
	out := make(map[int][]ValidationError)
	seen := make(map[int]bool)
	for i, lvl := range table {
		if issues := Validate(lvl, cfg); len(issues) > 0 {
			out[lvl.ID] = append(out[lvl.ID], issues...)
		}
		if seen[lvl.ID] {
			out[0] = append(out[0], ValidationError{Code: "DUPLICATE_ID", Message: fmt.Sprintf("level id %d appears twice", lvl.ID)})
		}
		seen[lvl.ID] = true
		if lvl.ID != i+1 {
			out[0] = append(out[0], ValidationError{
				Code:    "ID_GAP",
				Message: fmt.Sprintf("level id %d is played as level %d", lvl.ID, i+1),
				Warning: true,
			})
		}
	}
	return out
}
