package viewer

import (
	"fmt"

	"discarena/internal/disc"
	"discarena/internal/game"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var editorFont rl.Font
var editorFontLoaded bool

// Indigo dark theme
var (
	colorBgDark    = rl.NewColor(10, 10, 15, 255)
	colorBgPanel   = rl.NewColor(18, 18, 24, 245)
	colorBgElement = rl.NewColor(28, 28, 38, 255)
	colorBgHover   = rl.NewColor(38, 38, 52, 255)

	colorAccent      = rl.NewColor(108, 99, 255, 255)
	colorAccentLight = rl.NewColor(167, 139, 250, 255)

	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(200, 200, 208, 255)
	colorTextMuted     = rl.NewColor(119, 119, 119, 255)
)

const (
	hudX     = 10
	hudY     = 10
	hudWidth = 220
)

// initStyle applies the theme. fontPath is optional; raylib's default font is
// used when it is empty or fails to load.
func initStyle(fontPath string) {
	if !editorFontLoaded && fontPath != "" {
		editorFontLoaded = true
		editorFont = rl.LoadFontEx(fontPath, 48, nil)
		if editorFont.Texture.ID > 0 {
			rl.SetTextureFilter(editorFont.Texture, rl.FilterBilinear)
			gui.SetFont(editorFont)
		}
	}

	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

// drawTextEx draws with font when it loaded, and the default font otherwise.
func drawTextEx(font rl.Font, text string, x, y int32, size float32, color rl.Color) {
	if font.Texture.ID > 0 {
		rl.DrawTextEx(font, text, rl.Vector2{X: float32(x), Y: float32(y)}, size, 0, color)
	} else {
		rl.DrawText(text, x, y, int32(size), color)
	}
}

func hudBounds() rl.Rectangle {
	return rl.Rectangle{X: hudX, Y: hudY, Width: hudWidth, Height: 250}
}

func mouseInHUD() bool {
	return rl.CheckCollisionPointRec(rl.GetMousePosition(), hudBounds())
}

func (v *Viewer) drawHUD() {
	s := v.Session
	rl.DrawRectangleRec(hudBounds(), colorBgPanel)

	y := int32(hudY + 8)
	line := func(text string, color rl.Color) {
		drawTextEx(editorFont, text, hudX+10, y, 16, color)
		y += 20
	}

	cur := s.Current()
	if cur != nil {
		line(fmt.Sprintf("Turn %d: %s (%s)", s.Turn(), cur.Name, cur.Kind), colorTextPrimary)
	}
	line(fmt.Sprintf("State: %s", s.State()), colorTextMuted)
	line(fmt.Sprintf("Rage charges: %d", s.Rage()), rl.Gold)
	if v.dragging {
		dir, mag := pull(v.anchor, v.cursor, v.opts.MaxDrag)
		line(fmt.Sprintf("Aim %.0f deg, %.0f%%", angleOf(dir), mag*100), rl.Lime)
	} else {
		y += 20
	}

	y += 6
	bx := float32(hudX + 10)
	bw := float32(hudWidth - 20)
	if gui.Button(rl.Rectangle{X: bx, Y: float32(y), Width: bw, Height: 28}, "End Turn [Space]") {
		s.Push(game.Input{Kind: game.InputEndTurn})
	}
	y += 34
	if cur != nil && cur.Kind == disc.KindBarbarian {
		label := "Rage [R]"
		if cur.RageArmed {
			label = "Rage armed"
		}
		if gui.Button(rl.Rectangle{X: bx, Y: float32(y), Width: bw, Height: 28}, label) {
			s.Push(game.Input{Kind: game.InputArmRage})
		}
		y += 34
	}
	if cur != nil && cur.Kind == disc.KindWizard {
		if gui.Button(rl.Rectangle{X: bx, Y: float32(y), Width: bw, Height: 28}, "Summon Orbs [S]") {
			s.Push(game.Input{Kind: game.InputSummon})
		}
		y += 34
	}

	auto := gui.CheckBox(rl.Rectangle{X: bx, Y: float32(y), Width: 18, Height: 18}, "Autopilot [P]", s.Autopilot())
	if auto != s.Autopilot() {
		s.Push(game.Input{Kind: game.InputAutopilot, On: auto})
	}

	v.drawMessages()

	if over, won := s.Outcome(); over {
		text := "DEFEAT"
		color := rl.Red
		if won {
			text, color = "VICTORY", rl.Lime
		}
		w := rl.MeasureText(text, 60)
		rl.DrawText(text, int32(rl.GetScreenWidth())/2-w/2, int32(rl.GetScreenHeight())/2-30, 60, color)
	}
	rl.DrawFPS(int32(rl.GetScreenWidth())-90, 10)
}

func (v *Viewer) drawMessages() {
	y := int32(rl.GetScreenHeight()) - 24
	for i := len(v.messages) - 1; i >= 0; i-- {
		m := v.messages[i]
		alpha := min(m.ttl, 1)
		drawTextEx(editorFont, m.text, 12, y, 18, rl.Fade(m.color, alpha))
		y -= 22
	}
}
