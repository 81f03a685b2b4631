package systems

import (
	"fmt"

	"github.com/deskling/deskling/components"
	cfg "github.com/deskling/deskling/config"
	"github.com/deskling/deskling/fonts"
	"github.com/deskling/deskling/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Enabled {
		return
	}
	drawDebug(ecs, NewScreenPainter(screen))
}

func drawDebug(ecs *ecs.ECS, p Painter) {
	// Exact hit circle
	p.StrokeCircle(cfg.Overlay.CenterX, cfg.Overlay.CenterY, cfg.Overlay.HitRadius, 1, cfg.Debug.HitboxColor)

	// No-drag bounds
	if entry, ok := tags.Character.First(ecs.World); ok {
		obj := components.Object.Get(entry)
		p.StrokeLine(obj.X, obj.Y, obj.X+obj.W, obj.Y, 1, cfg.Debug.BoundsColor)
		p.StrokeLine(obj.X+obj.W, obj.Y, obj.X+obj.W, obj.Y+obj.H, 1, cfg.Debug.BoundsColor)
		p.StrokeLine(obj.X+obj.W, obj.Y+obj.H, obj.X, obj.Y+obj.H, 1, cfg.Debug.BoundsColor)
		p.StrokeLine(obj.X, obj.Y+obj.H, obj.X, obj.Y, 1, cfg.Debug.BoundsColor)
	}

	if !fonts.Loaded(fonts.Debug) {
		return
	}
	if state, ok := GetOverlay(ecs); ok {
		p.TextCentered(debugStatus(state), fonts.Debug, cfg.Debug.StatusX, cfg.Debug.StatusY, cfg.Debug.StatusColor)
	}
}

func debugStatus(state *components.OverlayData) string {
	return fmt.Sprintf("%s msg:%d/%d bubble:%t t:%.2f",
		state.Mood, state.MessageIndex, len(state.Messages), state.BubbleVisible, state.AnimationTime)
}
