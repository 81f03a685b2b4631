package systems

import (
	"math"

	cfg "github.com/deskling/deskling/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// DrawCharacter renders the stickman at the fixed center with the hover zoom
func DrawCharacter(ecs *ecs.ECS, screen *ebiten.Image) {
	drawCharacter(ecs, NewScreenPainter(screen))
}

func drawCharacter(ecs *ecs.ECS, p Painter) {
	state, ok := GetOverlay(ecs)
	if !ok {
		return
	}
	center := dmath.Vec2{X: cfg.Overlay.CenterX, Y: cfg.Overlay.CenterY}
	drawStickman(p, center, state.HoverScale, state.AnimationTime, state.Mood)
}

// bounceOffset is the vertical displacement for the whole body. Talking
// bounces faster and lower than idling.
func bounceOffset(t, scale float64, mood cfg.MoodID) float64 {
	c := cfg.Character
	if mood == cfg.MoodTalking {
		return math.Sin(t*c.TalkingBounceFreq) * c.TalkingBounceAmp * scale
	}
	return math.Sin(t*c.IdleBounceFreq) * c.IdleBounceAmp * scale
}

// smilePoints samples the smile curve under the head center
func smilePoints(head dmath.Vec2, scale float64) []dmath.Vec2 {
	c := cfg.Character
	n := c.SmileSamples
	if n < 2 {
		return nil
	}

	y := head.Y + c.SmileOffsetY*scale
	points := make([]dmath.Vec2, n)
	for i := range points {
		u := float64(i) / float64(n-1)
		points[i] = dmath.Vec2{
			X: head.X + (u-0.5)*c.SmileWidth*scale,
			Y: y + math.Sin((u-0.5)*math.Pi)*c.SmileDepth*scale,
		}
	}
	return points
}

// drawStickman draws the character. It only depends on its arguments.
func drawStickman(p Painter, center dmath.Vec2, scale, t float64, mood cfg.MoodID) {
	c := cfg.Character
	b := bounceOffset(t, scale, mood)
	limb := c.LimbWidth * float32(scale)
	thin := c.OutlineWidth * float32(scale)

	// Head
	head := dmath.Vec2{X: center.X, Y: center.Y + c.HeadOffsetY*scale + b}
	p.FillCircle(head.X, head.Y, c.HeadRadius*scale, c.Color)
	p.StrokeCircle(head.X, head.Y, c.HeadRadius*scale, thin, c.Outline)

	// Eyes
	for _, side := range []float64{-1, 1} {
		ex := head.X + side*c.EyeOffsetX*scale
		ey := head.Y + c.EyeOffsetY*scale
		p.FillCircle(ex, ey, c.EyeRadius*scale, c.EyeColor)
		p.FillCircle(ex+c.PupilOffsetX*scale, ey, c.PupilRadius*scale, c.PupilColor)
	}

	// Smile
	smile := smilePoints(head, scale)
	for i := 0; i+1 < len(smile); i++ {
		p.StrokeLine(smile[i].X, smile[i].Y, smile[i+1].X, smile[i+1].Y, thin, c.Outline)
	}

	// Body
	bodyTop := center.Y + c.BodyTopY*scale + b
	bodyBottom := center.Y + c.BodyBottomY*scale + b
	p.StrokeLine(center.X, bodyTop, center.X, bodyBottom, limb, c.Color)

	// Arms
	armY := center.Y + c.ShoulderY*scale + b
	for _, side := range []float64{-1, 1} {
		p.StrokeLine(center.X, armY, center.X+side*c.ArmReachX*scale, armY+c.ArmDropY*scale, limb, c.Color)
	}

	// Legs and shoes
	footY := center.Y + c.FootY*scale + b
	shoe := c.ShoeWidth * float32(scale)
	for _, side := range []float64{-1, 1} {
		footX := center.X + side*c.FootX*scale
		p.StrokeLine(center.X, bodyBottom, footX, footY, limb, c.Color)
		p.StrokeLine(footX, footY, footX+side*c.ShoeLength*scale, footY, shoe, c.Color)
	}
}
