// Package render turns a canvas scene into pixels. The on-screen widget and
// the PNG export both draw through it.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"PolyDraw/internal/state"
)

// StrokeWidth is the outline thickness in pixels.
const StrokeWidth float32 = 2

var strokeColor = color.NRGBA{A: 255}

// FillColor maps a fill selection to its display color. The second return is
// false for FillNone and unknown values.
func FillColor(f state.Fill) (color.NRGBA, bool) {
	switch f {
	case state.FillBlue:
		return color.NRGBA{B: 255, A: 128}, true
	case state.FillGreen:
		return color.NRGBA{R: 144, G: 238, B: 144, A: 255}, true
	case state.FillYellow:
		return color.NRGBA{R: 255, G: 255, A: 255}, true
	}
	return color.NRGBA{}, false
}

// Render draws the scene onto a fresh w×h canvas: white base, then the
// background image scaled to fit, then each finished shape, then the draft.
func Render(scene state.Scene, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	if scene.Background != nil {
		xdraw.ApproxBiLinear.Scale(img, img.Bounds(), scene.Background, scene.Background.Bounds(), xdraw.Over, nil)
	}

	for _, shape := range scene.Shapes {
		drawShape(img, shape)
	}
	drawShape(img, scene.Draft)

	return img
}

func drawShape(img *image.RGBA, shape state.Shape) {
	if shape.VertexCount() < 2 {
		return
	}
	if c, ok := FillColor(shape.Fill); ok {
		fillPolygon(img, shape.Points, c)
	}
	strokeOutline(img, shape.Points, shape.Closed)
}

func fillPolygon(img *image.RGBA, points []float32, c color.NRGBA) {
	b := img.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	r.MoveTo(points[0], points[1])
	for i := 2; i+1 < len(points); i += 2 {
		r.LineTo(points[i], points[i+1])
	}
	r.ClosePath()
	r.Draw(img, b, image.NewUniform(c), image.Point{})
}

func strokeOutline(img *image.RGBA, points []float32, closed bool) {
	b := img.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	n := len(points) / 2
	for i := 0; i < n-1; i++ {
		strokeSegment(r, points[2*i], points[2*i+1], points[2*i+2], points[2*i+3])
	}
	if closed && n > 2 {
		strokeSegment(r, points[2*(n-1)], points[2*(n-1)+1], points[0], points[1])
	}
	r.Draw(img, b, image.NewUniform(strokeColor), image.Point{})
}

// strokeSegment adds a quad of StrokeWidth thickness along p1→p2.
func strokeSegment(r *vector.Rasterizer, x1, y1, x2, y2 float32) {
	dx, dy := x2-x1, y2-y1
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	// Unit normal scaled to half the stroke width.
	nx := -dy / length * StrokeWidth / 2
	ny := dx / length * StrokeWidth / 2

	r.MoveTo(x1+nx, y1+ny)
	r.LineTo(x2+nx, y2+ny)
	r.LineTo(x2-nx, y2-ny)
	r.LineTo(x1-nx, y1-ny)
	r.ClosePath()
}
