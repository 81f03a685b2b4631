package systems

import (
	"math"
	"testing"

	cfg "github.com/deskling/deskling/config"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestBounceOffset(t *testing.T) {
	tests := []struct {
		name  string
		t     float64
		scale float64
		mood  cfg.MoodID
		want  float64
	}{
		{"idle at rest", 0, 1, cfg.MoodIdle, 0},
		{"idle quarter period", 0.5, 1, cfg.MoodIdle, 10},
		{"idle scaled", 0.5, 1.1, cfg.MoodIdle, 11},
		{"idle trough", 1.5, 1, cfg.MoodIdle, -10},
		{"talking", 0.25, 1, cfg.MoodTalking, math.Sin(3) * 5},
		{"talking scaled", 0.25, 1.1, cfg.MoodTalking, math.Sin(3) * 5 * 1.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bounceOffset(tt.t, tt.scale, tt.mood)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Expected bounce %f, got %f", tt.want, got)
			}
		})
	}
}

func TestSmilePoints(t *testing.T) {
	head := dmath.Vec2{X: 150, Y: 190}
	points := smilePoints(head, 1)

	if len(points) != 20 {
		t.Fatalf("Expected 20 smile samples, got %d", len(points))
	}
	if !almostEqual(points[0].X, 130) || !almostEqual(points[19].X, 170) {
		t.Errorf("Expected the smile to span 130..170, got %f..%f", points[0].X, points[19].X)
	}
	// The curve runs from 5px above the smile line to 5px below it
	if !almostEqual(points[0].Y, 190) || !almostEqual(points[19].Y, 200) {
		t.Errorf("Expected end heights 190 and 200, got %f and %f", points[0].Y, points[19].Y)
	}
	for i := 1; i < len(points); i++ {
		if points[i].X <= points[i-1].X {
			t.Errorf("Expected smile samples left to right, sample %d at %f after %f", i, points[i].X, points[i-1].X)
		}
	}
}

func TestDrawStickman_Primitives(t *testing.T) {
	p := &recordingPainter{}
	drawStickman(p, dmath.Vec2{X: 150, Y: 250}, 1, 0, cfg.MoodIdle)

	// Head + 2 eyes + 2 pupils
	if got := p.count("fillCircle"); got != 5 {
		t.Errorf("Expected 5 filled circles, got %d", got)
	}
	if got := p.count("strokeCircle"); got != 1 {
		t.Errorf("Expected 1 head outline, got %d", got)
	}
	// 19 smile segments, body, 2 arms, 2 legs, 2 shoes
	if got := p.count("line"); got != 19+1+2+2+2 {
		t.Errorf("Expected 26 line segments, got %d", got)
	}

	head, _ := p.first("fillCircle")
	if !almostEqual(head.Args[0], 150) || !almostEqual(head.Args[1], 190) || !almostEqual(head.Args[2], 20) {
		t.Errorf("Expected head at (150,190) r=20, got %v", head.Args)
	}
}

func TestDrawStickman_ScaleAndBounce(t *testing.T) {
	center := dmath.Vec2{X: 150, Y: 250}
	const scale = 1.1
	const animTime = 0.5 // idle bounce at its peak: +10*scale
	b := 10 * scale

	p := &recordingPainter{}
	drawStickman(p, center, scale, animTime, cfg.MoodIdle)

	head, _ := p.first("fillCircle")
	if !almostEqual(head.Args[1], 250-60*scale+b) {
		t.Errorf("Expected head y %f, got %f", 250-60*scale+b, head.Args[1])
	}
	if !almostEqual(head.Args[2], 20*scale) {
		t.Errorf("Expected head radius %f, got %f", 20*scale, head.Args[2])
	}

	var lines []op
	for _, o := range p.ops {
		if o.Kind == "line" {
			lines = append(lines, o)
		}
	}
	body := lines[19]
	if !almostEqual(body.Args[0], 150) || !almostEqual(body.Args[2], 150) {
		t.Errorf("Expected a vertical body at x=150, got %v", body.Args)
	}
	if !almostEqual(body.Args[1], 250-40*scale+b) || !almostEqual(body.Args[3], 250+10*scale+b) {
		t.Errorf("Expected body from %f to %f, got %f to %f", 250-40*scale+b, 250+10*scale+b, body.Args[1], body.Args[3])
	}
	if !almostEqual(body.Args[4], 4*scale) {
		t.Errorf("Expected body width %f, got %f", 4*scale, body.Args[4])
	}

	footY := 250 + 50*scale + b
	feet := 0
	for _, l := range lines[20:] {
		if almostEqual(l.Args[3], footY) && almostEqual(l.Args[1], footY) {
			feet++
			if !almostEqual(math.Abs(l.Args[2]-l.Args[0]), 10*scale) {
				t.Errorf("Expected shoe length %f, got %f", 10*scale, math.Abs(l.Args[2]-l.Args[0]))
			}
		}
	}
	if feet != 2 {
		t.Errorf("Expected 2 horizontal shoes at y=%f, got %d", footY, feet)
	}
}

func TestDrawStickman_Symmetric(t *testing.T) {
	p := &recordingPainter{}
	drawStickman(p, dmath.Vec2{X: 150, Y: 250}, 1, 0, cfg.MoodTalking)

	// Eyes come in left/right pairs around the head center
	var eyes []op
	for _, o := range p.ops {
		if o.Kind == "fillCircle" && almostEqual(o.Args[2], 3) {
			eyes = append(eyes, o)
		}
	}
	if len(eyes) != 2 {
		t.Fatalf("Expected 2 eyes, got %d", len(eyes))
	}
	if !almostEqual(eyes[0].Args[0]+eyes[1].Args[0], 300) {
		t.Errorf("Expected eyes mirrored around x=150, got %f and %f", eyes[0].Args[0], eyes[1].Args[0])
	}
}

func TestDrawCharacter_UsesHoverScale(t *testing.T) {
	d := newDriver()
	d.step(frame{At: 0, Pointer: characterCenter})

	p := &recordingPainter{}
	drawCharacter(d.ecs, p)

	head, ok := p.first("fillCircle")
	if !ok {
		t.Fatal("Expected the character to be drawn")
	}
	if !almostEqual(head.Args[2], 22) {
		t.Errorf("Expected a hovered head radius of 22, got %f", head.Args[2])
	}
}
