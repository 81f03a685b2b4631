package systems

import (
	"time"

	"github.com/deskling/deskling/components"
	cfg "github.com/deskling/deskling/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput samples the host's pointer, button and clock state into the
// FrameInput component. Must run first in the system order.
func UpdateInput(ecs *ecs.ECS) {
	entry, ok := overlayEntry(ecs)
	if !ok {
		return
	}
	in := components.FrameInput.Get(entry)

	now := time.Now()
	in.DT = frameDelta(in.Now, now, ebiten.TPS())
	in.Now = now

	x, y := ebiten.CursorPosition()
	in.PointerX, in.PointerY = float64(x), float64(y)
	in.PointerInside = insideSurface(x, y)

	in.Clicked = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	in.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.Released = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

// frameDelta returns the seconds between two frames. The first frame has no
// predecessor and assumes one tick; a clock going backwards yields zero.
func frameDelta(prev, now time.Time, tps int) float64 {
	if prev.IsZero() {
		if tps <= 0 {
			return 0
		}
		return 1 / float64(tps)
	}
	dt := now.Sub(prev).Seconds()
	if dt < 0 {
		return 0
	}
	return dt
}

// insideSurface reports whether a cursor position lies on the overlay.
func insideSurface(x, y int) bool {
	return x >= 0 && y >= 0 && x < cfg.C.Width && y < cfg.C.Height
}
