package systems

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRepaint hands the requested wakeup delay to Ebitengine as a tick rate
func UpdateRepaint(ecs *ecs.ECS) {
	state, ok := GetOverlay(ecs)
	if !ok {
		return
	}
	tps := repaintTPS(state.RepaintAfter)
	if tps > 0 && ebiten.TPS() != tps {
		ebiten.SetTPS(tps)
	}
}

// repaintTPS converts a wakeup delay to ticks per second, rounding down
func repaintTPS(after time.Duration) int {
	if after <= 0 {
		return 0
	}
	return int(time.Second / after)
}
