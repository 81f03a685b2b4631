package systems

import (
	"log"

	"github.com/deskling/deskling/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Window position hooks, replaced in tests
var (
	windowPosition    = ebiten.WindowPosition
	setWindowPosition = ebiten.SetWindowPosition
)

// UpdateDrag moves the borderless window while the primary button is held
// after a press on the empty area around the character. Presses inside the
// character's bounds never start a drag. Must run after UpdateHitbox.
func UpdateDrag(ecs *ecs.ECS) {
	entry, ok := overlayEntry(ecs)
	if !ok {
		return
	}
	in := components.FrameInput.Get(entry)
	drag := components.Drag.Get(entry)

	finished := stepDrag(drag, in)
	if finished {
		x, y := windowPosition()
		if err := SaveWindowState(&WindowState{X: x, Y: y}); err != nil {
			log.Printf("Warning: Could not save window position: %v", err)
		}
	}
}

// stepDrag applies one frame of drag handling and reports whether a drag
// that actually moved the window ended this frame.
func stepDrag(drag *components.DragData, in *components.FrameInputData) bool {
	wx, wy := windowPosition()
	// Screen position of the cursor; both reads refer to the same window
	// position even when a move has not been applied yet.
	sx, sy := wx+int(in.PointerX), wy+int(in.PointerY)

	if !drag.Active {
		if in.Clicked && in.PointerInside && !in.NearCharacter {
			drag.Active = true
			drag.Moved = false
			drag.StartX, drag.StartY = sx, sy
			drag.WinX, drag.WinY = wx, wy
		}
		return false
	}

	if in.Released || !in.Pressed {
		drag.Active = false
		moved := drag.Moved
		drag.Moved = false
		return moved
	}

	// The target depends only on the grab point, so a late move repeats
	// the same target instead of overshooting.
	tx, ty := drag.WinX+sx-drag.StartX, drag.WinY+sy-drag.StartY
	if tx != wx || ty != wy {
		setWindowPosition(tx, ty)
		drag.Moved = true
	}
	return false
}
