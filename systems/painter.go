package systems

import (
	"image"
	"image/color"

	"github.com/deskling/deskling/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	dmath "github.com/yohamta/donburi/features/math"
)

// Painter is the set of vector primitives the overlay is drawn with.
type Painter interface {
	FillCircle(cx, cy, r float64, clr color.Color)
	StrokeCircle(cx, cy, r float64, width float32, clr color.Color)
	StrokeLine(x0, y0, x1, y1 float64, width float32, clr color.Color)
	FillPolygon(points []dmath.Vec2, clr color.Color)
	FillRoundRect(x, y, w, h, radius float64, clr color.Color)
	StrokeRoundRect(x, y, w, h, radius float64, width float32, clr color.Color)
	TextCentered(s string, face fonts.FontName, cx, cy float64, clr color.Color)
}

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

// ScreenPainter draws onto an Ebitengine image
type ScreenPainter struct {
	dst *ebiten.Image
}

func NewScreenPainter(dst *ebiten.Image) *ScreenPainter {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return &ScreenPainter{dst: dst}
}

func (p *ScreenPainter) FillCircle(cx, cy, r float64, clr color.Color) {
	vector.FillCircle(p.dst, float32(cx), float32(cy), float32(r), clr, true)
}

func (p *ScreenPainter) StrokeCircle(cx, cy, r float64, width float32, clr color.Color) {
	vector.StrokeCircle(p.dst, float32(cx), float32(cy), float32(r), width, clr, true)
}

func (p *ScreenPainter) StrokeLine(x0, y0, x1, y1 float64, width float32, clr color.Color) {
	vector.StrokeLine(p.dst, float32(x0), float32(y0), float32(x1), float32(y1), width, clr, true)
}

func (p *ScreenPainter) FillPolygon(points []dmath.Vec2, clr color.Color) {
	if len(points) < 3 {
		return
	}

	path := vector.Path{}
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for i := 1; i < len(points); i++ {
		path.LineTo(float32(points[i].X), float32(points[i].Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	p.drawTriangles(vs, is, clr)
}

func (p *ScreenPainter) FillRoundRect(x, y, w, h, radius float64, clr color.Color) {
	path := roundRectPath(x, y, w, h, radius)
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	p.drawTriangles(vs, is, clr)
}

func (p *ScreenPainter) StrokeRoundRect(x, y, w, h, radius float64, width float32, clr color.Color) {
	path := roundRectPath(x, y, w, h, radius)
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
	})
	p.drawTriangles(vs, is, clr)
}

func (p *ScreenPainter) TextCentered(s string, face fonts.FontName, cx, cy float64, clr color.Color) {
	f := face.Get()
	bounds := text.BoundString(f, s) //nolint:staticcheck // TODO: migrate to text/v2
	x, y := centeredOrigin(bounds, cx, cy)
	text.Draw(p.dst, s, f, x, y, clr)
}

func (p *ScreenPainter) drawTriangles(vs []ebiten.Vertex, is []uint16, clr color.Color) {
	c := color.NRGBAModel.Convert(clr).(color.NRGBA)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
	p.dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// roundRectPath traces a rectangle with circular corners clockwise from the
// top edge. The radius is clamped to half the shorter side.
func roundRectPath(x, y, w, h, radius float64) *vector.Path {
	r := radius
	if r > w/2 {
		r = w / 2
	}
	if r > h/2 {
		r = h / 2
	}
	if r < 0 {
		r = 0
	}

	x0, y0 := float32(x), float32(y)
	x1, y1 := float32(x+w), float32(y+h)
	rr := float32(r)

	path := &vector.Path{}
	path.MoveTo(x0+rr, y0)
	path.LineTo(x1-rr, y0)
	path.ArcTo(x1, y0, x1, y0+rr, rr)
	path.LineTo(x1, y1-rr)
	path.ArcTo(x1, y1, x1-rr, y1, rr)
	path.LineTo(x0+rr, y1)
	path.ArcTo(x0, y1, x0, y1-rr, rr)
	path.LineTo(x0, y0+rr)
	path.ArcTo(x0, y0, x0+rr, y0, rr)
	path.Close()
	return path
}

// centeredOrigin returns the text.Draw origin (left edge, baseline) that
// centers a string with the given bounds on (cx, cy).
func centeredOrigin(bounds image.Rectangle, cx, cy float64) (int, int) {
	x := int(cx) - bounds.Dx()/2 - bounds.Min.X
	y := int(cy) - bounds.Dy()/2 - bounds.Min.Y
	return x, y
}
