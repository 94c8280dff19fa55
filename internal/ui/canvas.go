package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"PolyDraw/internal/render"
	"PolyDraw/internal/state"
)

const handleSize float32 = 10

// PolygonCanvas is the interactive drawing surface. Taps add vertices (or
// close the draft), the handle overlay moves them, and the pixels underneath
// come from the shared scene rasteriser.
type PolygonCanvas struct {
	widget.BaseWidget
	state *state.CanvasState
	size  int // logical canvas size in pixels, square
}

var _ fyne.Widget = (*PolygonCanvas)(nil)
var _ fyne.Tappable = (*PolygonCanvas)(nil)

func NewPolygonCanvas(s *state.CanvasState, size int) *PolygonCanvas {
	p := &PolygonCanvas{state: s, size: size}
	p.ExtendBaseWidget(p)
	return p
}

// Tapped adds a vertex at the tap position, or closes the draft when the tap
// lands near the first vertex. The state decides; taps while idle or while a
// handle drag is in progress are ignored there.
func (p *PolygonCanvas) Tapped(e *fyne.PointEvent) {
	p.state.Click(e.Position.X, e.Position.Y)
}

func (p *PolygonCanvas) MinSize() fyne.Size {
	return fyne.NewSize(float32(p.size), float32(p.size))
}

func (p *PolygonCanvas) CreateRenderer() fyne.WidgetRenderer {
	r := &polygonCanvasRenderer{pc: p}
	r.raster = canvas.NewImageFromImage(render.Render(p.state.Scene(), p.size, p.size))
	r.raster.FillMode = canvas.ImageFillContain
	r.raster.ScaleMode = canvas.ImageScalePixels
	return r
}

type polygonCanvasRenderer struct {
	pc      *PolygonCanvas
	raster  *canvas.Image
	handles []*vertexHandle
}

func (r *polygonCanvasRenderer) Objects() []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, 1+len(r.handles))
	objects = append(objects, r.raster)
	for _, h := range r.handles {
		objects = append(objects, h)
	}
	return objects
}

func (r *polygonCanvasRenderer) Layout(size fyne.Size) {
	r.raster.Resize(size)
	r.raster.Move(fyne.NewPos(0, 0))
	r.layoutHandles()
}

func (r *polygonCanvasRenderer) MinSize() fyne.Size {
	return r.pc.MinSize()
}

func (r *polygonCanvasRenderer) Refresh() {
	r.raster.Image = render.Render(r.pc.state.Scene(), r.pc.size, r.pc.size)
	r.raster.Refresh()
	r.syncHandles()
	r.layoutHandles()
	canvas.Refresh(r.pc)
}

func (r *polygonCanvasRenderer) Destroy() {}

// syncHandles keeps one draggable handle per draft vertex.
func (r *polygonCanvasRenderer) syncHandles() {
	want := len(r.pc.state.DraftPoints()) / 2
	for len(r.handles) < want {
		r.handles = append(r.handles, newVertexHandle(r.pc, len(r.handles)))
	}
	if len(r.handles) > want {
		r.handles = r.handles[:want]
	}
}

func (r *polygonCanvasRenderer) layoutHandles() {
	points := r.pc.state.DraftPoints()
	for i, h := range r.handles {
		if 2*i+1 >= len(points) {
			break
		}
		h.Resize(fyne.NewSize(handleSize, handleSize))
		h.Move(fyne.NewPos(points[2*i]-handleSize/2, points[2*i+1]-handleSize/2))
	}
}

// vertexHandle is the draggable square drawn over one draft vertex. Dragging
// it is the only write path from the render layer back into the draft.
type vertexHandle struct {
	widget.BaseWidget
	owner *PolygonCanvas
	index int
}

var _ fyne.Draggable = (*vertexHandle)(nil)
var _ fyne.Tappable = (*vertexHandle)(nil)

func newVertexHandle(owner *PolygonCanvas, index int) *vertexHandle {
	h := &vertexHandle{owner: owner, index: index}
	h.ExtendBaseWidget(h)
	return h
}

func (h *vertexHandle) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(color.White)
	rect.StrokeColor = color.Black
	rect.StrokeWidth = 1
	return widget.NewSimpleRenderer(rect)
}

// Tapped forwards the tap at the vertex position, so tapping the first
// handle closes the draft instead of the handle swallowing the click.
func (h *vertexHandle) Tapped(*fyne.PointEvent) {
	points := h.owner.state.DraftPoints()
	if 2*h.index+1 >= len(points) {
		return
	}
	h.owner.state.Click(points[2*h.index], points[2*h.index+1])
}

func (h *vertexHandle) Dragged(e *fyne.DragEvent) {
	s := h.owner.state
	if s.SelectedVertex() != h.index {
		s.BeginDrag(h.index)
	}
	points := s.DraftPoints()
	if 2*h.index+1 >= len(points) {
		return
	}
	s.DragVertex(h.index, points[2*h.index]+e.Dragged.DX, points[2*h.index+1]+e.Dragged.DY)
}

func (h *vertexHandle) DragEnd() {
	h.owner.state.EndDrag()
}
