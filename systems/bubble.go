package systems

import (
	"github.com/deskling/deskling/components"
	cfg "github.com/deskling/deskling/config"
	"github.com/deskling/deskling/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// bubbleRect is the speech bubble body, centered over the character at a
// fixed height
type bubbleRect struct {
	X, Y, W, H float64
}

func (r bubbleRect) Center() dmath.Vec2 {
	return dmath.Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

func (r bubbleRect) Bottom() float64 {
	return r.Y + r.H
}

func speechBubbleRect(characterX float64) bubbleRect {
	w, h := cfg.Bubble.Width, cfg.Bubble.Height
	return bubbleRect{
		X: characterX - w/2,
		Y: cfg.Bubble.CenterY - h/2,
		W: w,
		H: h,
	}
}

// bubblePointer is the triangle hanging from the bubble toward the character
func bubblePointer(characterX float64, rect bubbleRect) []dmath.Vec2 {
	half := cfg.Bubble.PointerHalf
	bottom := rect.Bottom()
	return []dmath.Vec2{
		{X: characterX - half, Y: bottom},
		{X: characterX + half, Y: bottom},
		{X: characterX, Y: bottom + cfg.Bubble.PointerDepth},
	}
}

// DrawSpeechBubble renders the current message while the bubble is visible
func DrawSpeechBubble(ecs *ecs.ECS, screen *ebiten.Image) {
	drawSpeechBubble(ecs, NewScreenPainter(screen))
}

func drawSpeechBubble(ecs *ecs.ECS, p Painter) {
	entry, ok := overlayEntry(ecs)
	if !ok {
		return
	}
	state := components.Overlay.Get(entry)
	if !state.BubbleVisible {
		return
	}
	paintSpeechBubble(p, state.CurrentMessage(), cfg.Overlay.CenterX)
}

func paintSpeechBubble(p Painter, message string, characterX float64) {
	b := cfg.Bubble
	rect := speechBubbleRect(characterX)

	p.FillRoundRect(rect.X, rect.Y, rect.W, rect.H, b.CornerRadius, b.FillColor)
	// Outline sits outside the fill
	inset := float64(b.BorderWidth) / 2
	p.StrokeRoundRect(rect.X-inset, rect.Y-inset, rect.W+inset*2, rect.H+inset*2, b.CornerRadius+inset, b.BorderWidth, b.BorderColor)

	p.FillPolygon(bubblePointer(characterX, rect), b.FillColor)

	center := rect.Center()
	p.TextCentered(message, fonts.Bubble, center.X, center.Y, b.TextColor)
}
