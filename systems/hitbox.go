package systems

import (
	"math"

	"github.com/deskling/deskling/components"
	cfg "github.com/deskling/deskling/config"
	"github.com/deskling/deskling/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHitbox moves the pointer probe to the cursor and records where the
// cursor is relative to the character. OverCharacter is the exact hit circle
// used for clicks and hover. NearCharacter comes from the resolv space: the
// probe touching the character's square bounds, which UpdateDrag treats as
// off limits for starting a drag.
func UpdateHitbox(ecs *ecs.ECS) {
	entry, ok := overlayEntry(ecs)
	if !ok {
		return
	}
	in := components.FrameInput.Get(entry)

	if !in.PointerInside {
		in.OverCharacter = false
		in.NearCharacter = false
		return
	}

	in.OverCharacter = withinHitRadius(in.PointerX, in.PointerY)
	in.NearCharacter = in.OverCharacter || pointerInBounds(ecs, in.PointerX, in.PointerY)
}

func pointerInBounds(ecs *ecs.ECS, x, y float64) bool {
	probeEntry, ok := tags.Pointer.First(ecs.World)
	if !ok {
		return false
	}
	probe := components.Object.Get(probeEntry)
	probe.X = math.Floor(x)
	probe.Y = math.Floor(y)
	probe.Update()

	return probe.Check(0, 0, tags.ResolvCharacter) != nil
}

// withinHitRadius is strict: a pointer exactly on the radius is outside.
func withinHitRadius(x, y float64) bool {
	return distance(x, y, cfg.Overlay.CenterX, cfg.Overlay.CenterY) < cfg.Overlay.HitRadius
}

func distance(x0, y0, x1, y1 float64) float64 {
	return math.Hypot(x1-x0, y1-y0)
}
