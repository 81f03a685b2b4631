package systems

import (
	"math"

	"github.com/deskling/deskling/components"
	cfg "github.com/deskling/deskling/config"
	"github.com/deskling/deskling/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHint evaluates the fade tween at the current animation time.
// Must run after UpdateOverlay.
func UpdateHint(ecs *ecs.ECS) {
	entry, ok := overlayEntry(ecs)
	if !ok {
		return
	}
	state := components.Overlay.Get(entry)
	hint := components.Hint.Get(entry)
	if hint.Fade == nil {
		return
	}

	value, _ := hint.Fade.Set(float32(state.AnimationTime))
	hint.Alpha = clampAlpha(float64(value))
}

// clampAlpha floors a fade value into a single byte.
func clampAlpha(v float64) uint8 {
	v = math.Floor(v)
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// DrawHint renders the fading "drag me" label while the hint is still running
func DrawHint(ecs *ecs.ECS, screen *ebiten.Image) {
	drawHint(ecs, NewScreenPainter(screen))
}

func drawHint(ecs *ecs.ECS, p Painter) {
	entry, ok := overlayEntry(ecs)
	if !ok {
		return
	}
	state := components.Overlay.Get(entry)
	if state.AnimationTime >= cfg.Hint.Duration {
		return
	}
	hint := components.Hint.Get(entry)

	c := cfg.Hint.Color
	c.A = hint.Alpha
	p.TextCentered(cfg.Hint.Text, fonts.Hint, cfg.Hint.X, cfg.Hint.Y, c)
}
