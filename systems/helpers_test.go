package systems

import (
	"image/color"
	"time"

	"github.com/deskling/deskling/components"
	cfg "github.com/deskling/deskling/config"
	"github.com/deskling/deskling/fonts"
	"github.com/deskling/deskling/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

var testEpoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// newTestECS builds the overlay world with the state systems the scene runs,
// minus the host-facing ones.
func newTestECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateOverlay(e)
	spaceEntry := factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 10, 10)
	space := components.Space.Get(spaceEntry)
	factory.CreateCharacterHitbox(e, space)
	factory.CreatePointerProbe(e, space)

	e.AddSystem(UpdateHitbox)
	e.AddSystem(UpdateOverlay)
	e.AddSystem(UpdateHint)
	return e
}

// frame describes the input for one simulated frame. At is the elapsed time
// since testEpoch and also drives DT.
type frame struct {
	At      time.Duration
	Pointer *dmath.Vec2
	Click   bool
}

type driver struct {
	ecs  *ecs.ECS
	last time.Duration
}

func newDriver() *driver {
	return &driver{ecs: newTestECS()}
}

func (d *driver) step(f frame) *components.OverlayData {
	entry, _ := overlayEntry(d.ecs)
	in := components.FrameInput.Get(entry)

	in.DT = (f.At - d.last).Seconds()
	in.Now = testEpoch.Add(f.At)
	d.last = f.At

	in.PointerInside = f.Pointer != nil
	if f.Pointer != nil {
		in.PointerX, in.PointerY = f.Pointer.X, f.Pointer.Y
	}
	in.Clicked = f.Click
	in.Pressed = f.Click
	in.Released = false

	d.ecs.Update()
	return components.Overlay.Get(entry)
}

func (d *driver) state() *components.OverlayData {
	state, _ := GetOverlay(d.ecs)
	return state
}

func at(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}

func pt(x, y float64) *dmath.Vec2 {
	return &dmath.Vec2{X: x, Y: y}
}

var characterCenter = pt(150, 250)

// op is one recorded Painter call
type op struct {
	Kind   string
	Args   []float64
	Points []dmath.Vec2
	Text   string
	Font   fonts.FontName
	Color  color.Color
}

type recordingPainter struct {
	ops []op
}

func (p *recordingPainter) FillCircle(cx, cy, r float64, clr color.Color) {
	p.ops = append(p.ops, op{Kind: "fillCircle", Args: []float64{cx, cy, r}, Color: clr})
}

func (p *recordingPainter) StrokeCircle(cx, cy, r float64, width float32, clr color.Color) {
	p.ops = append(p.ops, op{Kind: "strokeCircle", Args: []float64{cx, cy, r, float64(width)}, Color: clr})
}

func (p *recordingPainter) StrokeLine(x0, y0, x1, y1 float64, width float32, clr color.Color) {
	p.ops = append(p.ops, op{Kind: "line", Args: []float64{x0, y0, x1, y1, float64(width)}, Color: clr})
}

func (p *recordingPainter) FillPolygon(points []dmath.Vec2, clr color.Color) {
	p.ops = append(p.ops, op{Kind: "polygon", Points: points, Color: clr})
}

func (p *recordingPainter) FillRoundRect(x, y, w, h, radius float64, clr color.Color) {
	p.ops = append(p.ops, op{Kind: "fillRoundRect", Args: []float64{x, y, w, h, radius}, Color: clr})
}

func (p *recordingPainter) StrokeRoundRect(x, y, w, h, radius float64, width float32, clr color.Color) {
	p.ops = append(p.ops, op{Kind: "strokeRoundRect", Args: []float64{x, y, w, h, radius, float64(width)}, Color: clr})
}

func (p *recordingPainter) TextCentered(s string, face fonts.FontName, cx, cy float64, clr color.Color) {
	p.ops = append(p.ops, op{Kind: "text", Args: []float64{cx, cy}, Text: s, Font: face, Color: clr})
}

func (p *recordingPainter) count(kind string) int {
	n := 0
	for _, o := range p.ops {
		if o.Kind == kind {
			n++
		}
	}
	return n
}

func (p *recordingPainter) first(kind string) (op, bool) {
	for _, o := range p.ops {
		if o.Kind == kind {
			return o, true
		}
	}
	return op{}, false
}

func almostEqual(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d < eps && d > -eps
}
