package platformer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/superdudu/internal/core"
)

// World units per terminal cell.
const (
	CellWidth  = 16.0
	CellHeight = 32.0
	hudRows    = 1
)

// Render draws the state into dst as seen through the camera.
func (e *Engine) Render(dst *core.Screen, s State) {
	dst.Clear()

	for _, p := range s.Platforms {
		glyph, color := platformGlyph(p.Kind)
		dst.FillRect(project(p.Box(), s.Camera), glyph, color)
	}
	for _, c := range s.Collectibles {
		glyph, color := collectibleGlyph(c)
		dst.FillRect(project(c.Box(), s.Camera), glyph, color)
	}
	for _, en := range s.Enemies {
		glyph, color := enemyGlyph(en.Kind)
		dst.FillRect(project(en.Box(), s.Camera), glyph, color)
	}
	glyph, color := playerGlyph(s.Player)
	dst.FillRect(project(s.Player.Box(), s.Camera), glyph, color)

	e.renderHUD(dst, s)
	e.renderOverlay(dst, s)
}

// project maps a world box to screen cells, at least one cell in size.
func project(b core.Box, cam core.Vec2) core.Rect {
	x := int(math.Floor((b.X - cam.X) / CellWidth))
	y := int(math.Floor((b.Y-cam.Y)/CellHeight)) + hudRows
	w := core.Max(1, int(math.Ceil(b.W/CellWidth)))
	h := core.Max(1, int(math.Ceil(b.H/CellHeight)))
	return core.NewRect(x, y, w, h)
}

func platformGlyph(k PlatformKind) (rune, core.Color) {
	switch k {
	case PlatformGround:
		return '█', core.ColorGround
	case PlatformBlock:
		return '▓', core.ColorBlock
	case PlatformPipe:
		return '║', core.ColorPipe
	case PlatformMoving:
		return '=', core.ColorMoving
	}
	panic(fmt.Sprintf("platformer: unknown platform kind %d", int(k)))
}

func collectibleGlyph(c Collectible) (rune, core.Color) {
	switch c.Kind {
	case CollectibleCoin:
		return 'o', core.ColorCoin
	case CollectiblePowerUp:
		return powerUpGlyph(c.PowerUp), core.ColorPowerUp
	}
	panic(fmt.Sprintf("platformer: unknown collectible kind %d", int(c.Kind)))
}

func powerUpGlyph(p PowerUp) rune {
	switch p {
	case PowerUpNone:
		return '?'
	case PowerUpMushroom:
		return 'M'
	case PowerUpFireflower:
		return 'F'
	case PowerUpStar:
		return '*'
	}
	panic(fmt.Sprintf("platformer: unknown power-up %d", int(p)))
}

func enemyGlyph(k EnemyKind) (rune, core.Color) {
	switch k {
	case EnemyGoomba:
		return 'g', core.ColorGoomba
	case EnemyKoopa:
		return 'k', core.ColorKoopa
	}
	panic(fmt.Sprintf("platformer: unknown enemy kind %d", int(k)))
}

func playerGlyph(p Player) (rune, core.Color) {
	switch p.Character {
	case CharacterBubu:
		return 'B', core.ColorBubu
	case CharacterDudu:
		return 'D', core.ColorDudu
	}
	panic(fmt.Sprintf("platformer: unknown character %d", int(p.Character)))
}

func (e *Engine) renderHUD(dst *core.Screen, s State) {
	for x := range dst.Width() {
		dst.SetColor(x, 0, ' ', core.ColorHUD)
	}
	left := fmt.Sprintf(" %s  Score: %d  Lives: %d  HP: %d", e.CharacterStats(s.Player.Character).Name, s.Score, s.Lives, s.Player.Health)
	if s.Player.PowerUp != PowerUpNone {
		left += "  [" + s.Player.PowerUp.String() + "]"
	}
	dst.DrawText(0, 0, left, core.ColorHUD)

	progress := 0
	if endX := e.EndX(s.Level); endX > 0 && !math.IsInf(endX, 1) {
		progress = core.Clamp(int(s.Player.Pos.X/endX*100), 0, 100)
	}
	right := fmt.Sprintf("Level %d  %3d%%  Time: %d ", s.Level, progress, int(math.Ceil(s.TimeRemaining)))
	dst.DrawText(dst.Width()-len(right), 0, right, core.ColorHUD)
}

func (e *Engine) renderOverlay(dst *core.Screen, s State) {
	mid := dst.Height() / 2
	var title, detail string
	var color core.Color
	switch s.Status {
	case StatusPlaying:
		return
	case StatusMenu:
		title, detail, color = fmt.Sprintf("Level %d: %s", s.Level, e.LevelName(s.Level)), "Press ENTER to start", core.ColorHUD
	case StatusPaused:
		title, color = "PAUSED", core.ColorAlert
	case StatusLevelComplete:
		title, detail, color = "LEVEL COMPLETE!", fmt.Sprintf("Score: %d", s.Score), core.ColorCoin
	case StatusGameOver:
		title, detail, color = "GAME OVER", fmt.Sprintf("Final score: %d", s.Score), core.ColorAlert
	default:
		panic(fmt.Sprintf("platformer: unknown status %d", int(s.Status)))
	}

	drawPanel(dst, mid, max(len([]rune(title)), len([]rune(detail))), color)
	if detail == "" {
		dst.DrawTextCentered(mid, title, color)
		return
	}
	dst.DrawTextCentered(mid-1, title, color)
	dst.DrawTextCentered(mid+1, detail, core.ColorHUD)
}

// drawPanel clears a framed five-row box centred on row mid, wide enough for
// a line of textW cells.
func drawPanel(dst *core.Screen, mid, textW int, c core.Color) {
	w := min(textW+4, dst.Width())
	r := core.NewRect((dst.Width()-w)/2, mid-2, w, 5)
	dst.FillRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, c)
}
