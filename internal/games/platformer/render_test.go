package platformer

import (
	"strings"
	"testing"

	"github.com/vovakirdan/superdudu/internal/core"
)

func TestRenderPlacesEntities(t *testing.T) {
	lvl := flatLevel()
	lvl.Enemies = []EnemyTemplate{goombaAt(320, groundY-32, DirLeft)}
	e := newTestEngine(t, lvl)
	s := startPlaying(t, e)

	scr := core.NewScreen(80, 24)
	e.Render(scr, s)

	// Player at x=100, y=468 lands in column 6, row 14 below the HUD.
	if c := scr.GetCell(6, 15); c.Rune != 'B' || c.Color != core.ColorBubu {
		t.Errorf("player cell = %+v", c)
	}
	if c := scr.GetCell(20, 15); c.Rune != 'g' {
		t.Errorf("goomba cell = %+v", c)
	}
	if c := scr.GetCell(0, 16); c.Rune != '█' || c.Color != core.ColorGround {
		t.Errorf("ground cell = %+v", c)
	}
	if hud := scr.Row(0); !strings.Contains(hud, "Score: 0") || !strings.Contains(hud, "Level 1") {
		t.Errorf("hud = %q", hud)
	}
}

func TestRenderFollowsCamera(t *testing.T) {
	e := newTestEngine(t)
	s := startPlaying(t, e)
	s.Player.Pos.X = 1000
	s.Camera.X = 800

	scr := core.NewScreen(80, 24)
	e.Render(scr, s)
	if c := scr.GetCell(12, 15); c.Rune != 'B' {
		t.Errorf("player not drawn relative to camera: %+v", c)
	}
}

func TestRenderOverlays(t *testing.T) {
	e := newTestEngine(t)
	tests := []struct {
		status Status
		text   string
	}{
		{StatusMenu, "Press ENTER"},
		{StatusPaused, "PAUSED"},
		{StatusLevelComplete, "LEVEL COMPLETE"},
		{StatusGameOver, "GAME OVER"},
	}
	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			s := e.NewGame(CharacterDudu)
			s.Status = tt.status
			scr := core.NewScreen(80, 24)
			e.Render(scr, s)
			if !strings.Contains(scr.String(), tt.text) {
				t.Errorf("overlay %q missing", tt.text)
			}
		})
	}
}

func TestRenderOverlayPanel(t *testing.T) {
	e := newTestEngine(t)
	s := startPlaying(t, e)
	s.Status = StatusPaused

	scr := core.NewScreen(80, 24)
	e.Render(scr, s)

	// "PAUSED" is 6 wide, so the frame is 10 cells centred on row 12.
	if c := scr.GetCell(35, 10); c.Rune != '┌' || c.Color != core.ColorAlert {
		t.Errorf("top-left corner = %+v", c)
	}
	if c := scr.GetCell(44, 14); c.Rune != '┘' {
		t.Errorf("bottom-right corner = %+v", c)
	}
	// The panel interior hides the world behind it.
	if c := scr.GetCell(36, 11); c.Rune != ' ' {
		t.Errorf("panel interior = %+v", c)
	}

	s.Status = StatusPlaying
	e.Render(scr, s)
	if c := scr.GetCell(35, 10); c.Rune == '┌' {
		t.Error("panel drawn while playing")
	}
}
