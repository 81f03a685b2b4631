package components

import (
	"time"

	"github.com/deskling/deskling/config"
	"github.com/yohamta/donburi"
)

// OverlayData is the whole application state. It lives on a single entity so
// bubble visibility, its timer and the mood always change together.
type OverlayData struct {
	Messages     []string // Read-only after construction
	MessageIndex int      // Always in [0, len(Messages))

	BubbleVisible     bool
	BubbleTimerActive bool      // Set iff BubbleShownAt is meaningful
	BubbleShownAt     time.Time // When the bubble was last made visible

	AnimationTime float64 // Seconds, never reset
	Mood          config.MoodID
	WelcomeShown  bool

	HoverScale   float64       // Computed in Update, read by Draw
	RepaintAfter time.Duration // Next wakeup requested from the host
}

var Overlay = donburi.NewComponentType[OverlayData]()

// CurrentMessage returns the message the bubble should display.
func (o *OverlayData) CurrentMessage() string {
	if len(o.Messages) == 0 {
		return ""
	}
	return o.Messages[o.MessageIndex]
}

// ShowBubble makes the bubble visible, restarts its timer and switches to
// Talking. The message index is left alone.
func (o *OverlayData) ShowBubble(now time.Time) {
	o.BubbleVisible = true
	o.BubbleTimerActive = true
	o.BubbleShownAt = now
	o.Mood = config.MoodTalking
}

// HideBubble hides the bubble, clears the timer and returns to Idle.
func (o *OverlayData) HideBubble() {
	o.BubbleVisible = false
	o.BubbleTimerActive = false
	o.BubbleShownAt = time.Time{}
	o.Mood = config.MoodIdle
}

// AdvanceMessage moves to the next message, wrapping around.
func (o *OverlayData) AdvanceMessage() {
	if len(o.Messages) == 0 {
		return
	}
	o.MessageIndex = (o.MessageIndex + 1) % len(o.Messages)
}
