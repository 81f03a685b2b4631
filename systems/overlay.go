package systems

import (
	"github.com/deskling/deskling/components"
	cfg "github.com/deskling/deskling/config"
	"github.com/deskling/deskling/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateOverlay advances the overlay state by one frame: animation time,
// bubble timeout, repaint request, click handling, hover zoom and the
// welcome bubble. Must run after UpdateInput and UpdateHitbox.
func UpdateOverlay(ecs *ecs.ECS) {
	entry, ok := overlayEntry(ecs)
	if !ok {
		return
	}
	state := components.Overlay.Get(entry)
	in := components.FrameInput.Get(entry)

	stepOverlay(state, in)
}

func stepOverlay(state *components.OverlayData, in *components.FrameInputData) {
	if in.DT > 0 {
		state.AnimationTime += in.DT
	}

	// Hide the bubble once its display window has passed
	if state.BubbleTimerActive && in.Now.Sub(state.BubbleShownAt) > cfg.Overlay.BubbleDuration {
		state.HideBubble()
	}

	state.RepaintAfter = cfg.Overlay.RepaintInterval

	over := in.PointerInside && in.OverCharacter
	if over && in.Clicked {
		state.ShowBubble(in.Now)
		state.AdvanceMessage()
	}

	state.HoverScale = hoverScale(over)

	// The welcome bubble fires once, on the first frame past the delay. It
	// does not advance the message, so the first message is the greeting.
	if !state.WelcomeShown && state.AnimationTime > cfg.Overlay.WelcomeDelay {
		state.WelcomeShown = true
		if !state.BubbleVisible {
			state.ShowBubble(in.Now)
		}
	}
}

func hoverScale(over bool) float64 {
	if over {
		return cfg.Overlay.HoverScale
	}
	return cfg.Overlay.NormalScale
}

// GetOverlay returns the overlay state, if the overlay entity exists
func GetOverlay(ecs *ecs.ECS) (*components.OverlayData, bool) {
	entry, ok := overlayEntry(ecs)
	if !ok {
		return nil, false
	}
	return components.Overlay.Get(entry), true
}

func overlayEntry(ecs *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Overlay.First(ecs.World)
}
