package render

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"

	"PolyDraw/internal/state"
)

func square(closed bool, fill state.Fill) state.Shape {
	return state.Shape{
		Points: []float32{100, 100, 400, 100, 400, 400, 100, 400},
		Closed: closed,
		Fill:   fill,
	}
}

func TestRenderBlankScene(t *testing.T) {
	img := Render(state.Scene{}, 500, 500)

	assert.Equal(t, image.Rect(0, 0, 500, 500), img.Bounds())
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(250, 250))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(0, 0))
}

func TestRenderFilledSquare(t *testing.T) {
	scene := state.Scene{Shapes: []state.Shape{square(true, state.FillGreen)}}
	img := Render(scene, 500, 500)

	assert.Equal(t, color.RGBA{144, 238, 144, 255}, img.RGBAAt(250, 250))
	// Outside the square stays white.
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(50, 50))
}

func TestRenderTranslucentFill(t *testing.T) {
	scene := state.Scene{Shapes: []state.Shape{square(true, state.FillBlue)}}
	img := Render(scene, 500, 500)

	got := img.RGBAAt(250, 250)
	assert.Equal(t, uint8(255), got.B)
	assert.InDelta(t, 127, int(got.R), 2, "white must show through the fill")
}

func TestRenderOutlineOnly(t *testing.T) {
	scene := state.Scene{Shapes: []state.Shape{square(true, state.FillNone)}}
	img := Render(scene, 500, 500)

	onEdge := img.RGBAAt(250, 100)
	assert.Less(t, int(onEdge.R), 50, "outline pixel should be dark")
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(250, 250))
}

func TestRenderOpenShapeHasNoClosingEdge(t *testing.T) {
	shape := state.Shape{Points: []float32{100, 100, 400, 100, 400, 400}}
	img := Render(state.Scene{Shapes: []state.Shape{shape}}, 500, 500)

	// The last→first diagonal is not drawn for an open shape.
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(250, 250))
	edge := img.RGBAAt(250, 100)
	assert.Less(t, int(edge.R), 50)
}

func TestRenderSingleVertexDraftIsInvisible(t *testing.T) {
	scene := state.Scene{Draft: state.Shape{Points: []float32{250, 250}}}
	img := Render(scene, 500, 500)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(250, 250))
}

func TestRenderDraft(t *testing.T) {
	scene := state.Scene{Draft: square(true, state.FillYellow)}
	img := Render(scene, 500, 500)
	assert.Equal(t, color.RGBA{255, 255, 0, 255}, img.RGBAAt(250, 250))
}

func TestRenderBackgroundScaledUnderShapes(t *testing.T) {
	bg := image.NewRGBA(image.Rect(0, 0, 10, 10))
	draw.Draw(bg, bg.Bounds(), image.NewUniform(color.NRGBA{R: 200, A: 255}), image.Point{}, draw.Src)

	scene := state.Scene{
		Background: bg,
		Shapes:     []state.Shape{square(true, state.FillGreen)},
	}
	img := Render(scene, 500, 500)

	// Background shows where no shape covers it.
	corner := img.RGBAAt(20, 20)
	assert.Greater(t, int(corner.R), 150)
	assert.Less(t, int(corner.G), 50)
	// The shape draws on top of the background.
	assert.Equal(t, color.RGBA{144, 238, 144, 255}, img.RGBAAt(250, 250))
}

func TestFillColor(t *testing.T) {
	_, ok := FillColor(state.FillNone)
	assert.False(t, ok)

	c, ok := FillColor(state.FillGreen)
	assert.True(t, ok)
	assert.Equal(t, color.NRGBA{R: 144, G: 238, B: 144, A: 255}, c)
}
