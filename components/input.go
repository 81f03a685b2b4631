package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// FrameInputData is the host input snapshot for the current frame.
// UpdateInput fills it from Ebitengine; everything downstream reads only this.
type FrameInputData struct {
	DT  float64   // Seconds since the previous frame
	Now time.Time // Wall clock for timer comparisons

	PointerX, PointerY float64
	PointerInside      bool // False when the cursor is outside the surface
	OverCharacter      bool // Strictly inside the hit radius; set by UpdateHitbox
	NearCharacter      bool // Inside the character's square bounds; set by UpdateHitbox

	Clicked  bool // Primary button went down this frame
	Pressed  bool // Primary button is held
	Released bool // Primary button went up this frame
}

var FrameInput = donburi.NewComponentType[FrameInputData]()
