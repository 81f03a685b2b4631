package factory

import (
	"github.com/deskling/deskling/archetypes"
	"github.com/deskling/deskling/components"
	cfg "github.com/deskling/deskling/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateOverlay spawns the single entity that owns all overlay state.
func CreateOverlay(ecs *ecs.ECS) *donburi.Entry {
	overlay := archetypes.Overlay.Spawn(ecs)

	messages := make([]string, len(cfg.Overlay.Messages))
	copy(messages, cfg.Overlay.Messages)

	components.Overlay.SetValue(overlay, components.OverlayData{
		Messages:     messages,
		MessageIndex: 0,
		Mood:         cfg.MoodIdle,
		HoverScale:   cfg.Overlay.NormalScale,
	})

	// The hint fades out linearly over its duration, driven by animation time.
	components.Hint.SetValue(overlay, components.HintData{
		Fade:  gween.New(255, 0, float32(cfg.Hint.Duration), ease.Linear),
		Alpha: 255,
	})

	return overlay
}
