// Package viewer is the raylib front end: it draws a session from above and
// turns mouse drags and buttons into queued inputs.
package viewer

import (
	"fmt"
	"math"

	"discarena/internal/combat"
	"discarena/internal/disc"
	"discarena/internal/game"
	"discarena/internal/level"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Options configures the window.
type Options struct {
	Width   int32
	Height  int32
	Title   string
	MaxDrag float32 // world units of drag for a full-strength throw
	Font    string
	Logger  *log.Logger
}

func DefaultOptions() Options {
	return Options{Width: 1280, Height: 720, Title: "Disc Arena", MaxDrag: 6}
}

type message struct {
	text  string
	color rl.Color
	ttl   float32
}

const (
	messageTTL  = 4
	maxMessages = 8
)

// Viewer owns the window state for one session.
type Viewer struct {
	Session *game.Session
	Level   *level.Level

	opts   Options
	log    *log.Logger
	camera rl.Camera3D

	aimDisc  int
	anchor   rl.Vector3
	cursor   rl.Vector3
	dragging bool

	messages []message
}

func New(s *game.Session, lv *level.Level, opts Options) *Viewer {
	if opts.MaxDrag <= 0 {
		opts.MaxDrag = DefaultOptions().MaxDrag
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	v := &Viewer{
		Session: s,
		Level:   lv,
		opts:    opts,
		log:     logger.WithPrefix("viewer"),
	}
	v.camera = overheadCamera(s.Field().Width, s.Field().Depth)
	v.subscribe()
	return v
}

// overheadCamera frames the whole field from above with a slight tilt.
func overheadCamera(width, depth float32) rl.Camera3D {
	span := max(width, depth*16/9)
	height := span * 0.9
	return rl.Camera3D{
		Position:   rl.Vector3{X: 0, Y: height, Z: depth * 0.45},
		Target:     rl.Vector3{},
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       50,
		Projection: rl.CameraPerspective,
	}
}

func (v *Viewer) subscribe() {
	ev := &v.Session.Events
	ev.CurrentChanged.AddListener(func(tc game.TurnChange) {
		v.say(fmt.Sprintf("Turn %d: %s", tc.Turn, tc.Name), colorTextSecondary)
	})
	ev.Hit.AddListener(func(h combat.Hit) {
		if h.Absorbed {
			v.say(fmt.Sprintf("An orb shields %s", h.VictimName), colorAccentLight)
			return
		}
		v.say(fmt.Sprintf("%s hits %s for %d", h.AttackerName, h.VictimName, h.Damage), rl.Orange)
	})
	ev.DiscDied.AddListener(func(d game.Death) {
		v.say(d.Name+" is down", rl.Red)
	})
	ev.RageChanged.AddListener(func(n int) {
		v.say(fmt.Sprintf("Rage: %d", n), rl.Gold)
	})
	ev.OrbsSummoned.AddListener(func(sm game.Summoned) {
		v.say(fmt.Sprintf("%d orbs summoned", len(sm.Orbs)), colorAccentLight)
	})
	ev.GameOver.AddListener(func(o game.Outcome) {
		if o.PlayerWon {
			v.say("Victory!", rl.Lime)
		} else {
			v.say("Defeat", rl.Red)
		}
		v.log.Info("match finished", "won", o.PlayerWon, "turns", o.Turns, "frames", o.Frames)
	})
}

func (v *Viewer) say(text string, color rl.Color) {
	v.messages = append(v.messages, message{text: text, color: color, ttl: messageTTL})
	if len(v.messages) > maxMessages {
		v.messages = v.messages[len(v.messages)-maxMessages:]
	}
}

// Run opens the window and blocks until it is closed. The simulation advances
// one frame per rendered frame, so the frame rate is fixed.
func (v *Viewer) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(v.opts.Width, v.opts.Height, v.opts.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	initStyle(v.opts.Font)

	for !rl.WindowShouldClose() {
		v.Update()
		v.Draw()
	}
}

func (v *Viewer) Update() {
	if rl.IsKeyPressed(rl.KeySpace) || rl.IsKeyPressed(rl.KeyEnter) {
		v.Session.Push(game.Input{Kind: game.InputEndTurn})
	}
	if rl.IsKeyPressed(rl.KeyR) {
		v.Session.Push(game.Input{Kind: game.InputArmRage})
	}
	if rl.IsKeyPressed(rl.KeyS) {
		v.Session.Push(game.Input{Kind: game.InputSummon})
	}
	if rl.IsKeyPressed(rl.KeyP) {
		v.Session.Push(game.Input{Kind: game.InputAutopilot, On: !v.Session.Autopilot()})
	}

	v.updateAim()
	v.Session.Frame()

	dt := rl.GetFrameTime()
	kept := v.messages[:0]
	for _, m := range v.messages {
		m.ttl -= dt
		if m.ttl > 0 {
			kept = append(kept, m)
		}
	}
	v.messages = kept
}

func (v *Viewer) updateAim() {
	ray := rl.GetScreenToWorldRay(rl.GetMousePosition(), v.camera)
	p, onGround := groundPoint(ray)
	if onGround {
		v.cursor = p
	}

	if v.dragging {
		if rl.IsMouseButtonPressed(rl.MouseRightButton) {
			v.dragging = false
			v.Session.Push(game.Input{Kind: game.InputCancelAim})
			return
		}
		if !rl.IsMouseButtonDown(rl.MouseLeftButton) {
			v.dragging = false
			dir, mag := pull(v.anchor, v.cursor, v.opts.MaxDrag)
			v.Session.Push(game.Throw(v.aimDisc, dir, mag))
		}
		return
	}

	if !rl.IsMouseButtonPressed(rl.MouseLeftButton) || !onGround || mouseInHUD() {
		return
	}
	if v.Session.State() != game.AwaitingInput {
		return
	}
	d := pick(v.Session.Roster(), p)
	if d == nil {
		return
	}
	v.aimDisc = d.ID
	v.anchor = d.Position
	v.anchor.Y = 0
	v.dragging = true
	v.Session.Push(game.Input{Kind: game.InputBeginAim, Disc: d.ID})
}

func (v *Viewer) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(colorBgDark)

	rl.BeginMode3D(v.camera)
	v.drawField()
	v.drawDiscs()
	v.drawAim()
	rl.EndMode3D()

	v.drawLabels()
	v.drawHUD()
	rl.EndDrawing()
}

func (v *Viewer) drawField() {
	f := v.Session.Field()
	rl.DrawPlane(rl.Vector3{}, rl.Vector2{X: f.Width, Y: f.Depth}, rl.NewColor(34, 40, 49, 255))
	rl.DrawCubeWiresV(rl.Vector3{Y: 0.25}, rl.Vector3{X: f.Width, Y: 0.5, Z: f.Depth}, colorAccent)

	for i, o := range f.Obstacles {
		c := v.Level.ObstacleColor(i)
		rl.DrawCubeV(o.Center(), o.Size(), c)
		rl.DrawCubeWiresV(o.Center(), o.Size(), rl.ColorBrightness(c, -0.4))
	}
}

func discColor(d *disc.Disc) rl.Color {
	switch d.Kind {
	case disc.KindBarbarian:
		return rl.NewColor(214, 120, 60, 255)
	case disc.KindWizard:
		return colorAccent
	case disc.KindOrb:
		return colorAccentLight
	case disc.KindWarden:
		return rl.DarkGreen
	}
	if d.Type == disc.TypeNPC {
		return rl.Beige
	}
	return rl.SkyBlue
}

func (v *Viewer) drawDiscs() {
	current := v.Session.Current()
	for _, d := range v.Session.Roster() {
		if d.Destroyed {
			continue
		}
		base := rl.Vector3{X: d.Position.X, Z: d.Position.Z}
		c := discColor(d)
		if d.Dead {
			rl.DrawCylinder(base, d.Radius, d.Radius, 0.1, 24, rl.Fade(c, 0.3))
			continue
		}
		height := float32(0.6)
		if d.IsOrb() {
			height = 0.4
		}
		rl.DrawCylinder(base, d.Radius, d.Radius, height, 24, c)
		rl.DrawCylinderWires(base, d.Radius, d.Radius, height, 24, rl.ColorBrightness(c, -0.3))

		ring := rl.Vector3{X: d.Position.X, Y: 0.02, Z: d.Position.Z}
		if d == current {
			rl.DrawCircle3D(ring, d.Radius+0.25, rl.Vector3{X: 1}, 90, rl.White)
		}
		if d.RageArmed {
			rl.DrawCircle3D(ring, d.Radius+0.4, rl.Vector3{X: 1}, 90, rl.Red)
		}
	}
}

func (v *Viewer) drawAim() {
	if !v.dragging {
		return
	}
	dir, mag := pull(v.anchor, v.cursor, v.opts.MaxDrag)
	start := rl.Vector3{X: v.anchor.X, Y: 0.7, Z: v.anchor.Z}
	end, blocked := aimEnd(v.Session.Field(), start, dir, mag*v.opts.MaxDrag)
	c := rl.Lime
	if mag <= v.Session.Config().DragThreshold {
		c = rl.Gray
	}
	rl.DrawLine3D(start, end, c)
	if blocked {
		rl.DrawCubeV(end, rl.Vector3{X: 0.3, Y: 0.3, Z: 0.3}, rl.Orange)
		return
	}
	rl.DrawSphere(end, 0.15, c)
}

// drawLabels writes HP above every living disc.
func (v *Viewer) drawLabels() {
	for _, d := range v.Session.Roster() {
		if !d.Alive() || d.IsOrb() {
			continue
		}
		top := rl.Vector3{X: d.Position.X, Y: 1, Z: d.Position.Z - d.Radius}
		sp := rl.GetWorldToScreen(top, v.camera)
		text := fmt.Sprintf("%s %d/%d", d.Name, d.HP, d.MaxHP)
		w := rl.MeasureText(text, 14)
		drawTextEx(editorFont, text, int32(sp.X)-w/2, int32(sp.Y)-16, 14, colorTextPrimary)
	}
}

func angleOf(dir rl.Vector3) float32 {
	return float32(math.Atan2(float64(dir.Z), float64(dir.X)) * 180 / math.Pi)
}
