package state

import (
	"image"
	"log"

	"github.com/google/uuid"

	"PolyDraw/internal/geometry"
)

// CanvasState owns everything the canvas displays: the finished shapes, the
// in-progress draft, the mode flags and the optional background image. Every
// mutation happens synchronously on the UI event path; after each one the
// OnChange callback (if set) is invoked so the widget can redraw.
type CanvasState struct {
	shapes      []Shape
	draft       []float32
	draftClosed bool
	drawing     bool
	selected    int // dragged vertex index, -1 when none
	fill        Fill
	background  image.Image

	OnChange func()
}

func NewCanvasState() *CanvasState {
	return &CanvasState{selected: -1}
}

func (c *CanvasState) notify() {
	if c.OnChange != nil {
		c.OnChange()
	}
}

// StartDrawing begins a new empty draft, discarding any previous one and any
// pending vertex selection.
func (c *CanvasState) StartDrawing() {
	c.draft = nil
	c.draftClosed = false
	c.drawing = true
	c.selected = -1
	log.Println("[STATE] Started drawing")
	c.notify()
}

// Click handles a pointer click on the canvas while drawing. A click near the
// first vertex closes the draft; the close check runs before the duplicate
// check so a click near both always closes. A click near any other existing
// vertex is dropped. Anything else appends a vertex. Clicks are ignored while
// a vertex is being dragged and while not drawing.
func (c *CanvasState) Click(x, y float32) {
	if !c.drawing || c.selected >= 0 {
		return
	}
	if geometry.NearFirstVertex(c.draft, x, y) {
		if !c.draftClosed {
			c.draftClosed = true
			log.Printf("[STATE] Draft closed at %d vertices", len(c.draft)/2)
			c.notify()
		}
		return
	}
	if geometry.NearExistingVertex(c.draft, x, y) {
		return
	}
	c.draft = append(c.draft, x, y)
	c.notify()
}

// BeginDrag marks vertex i as being dragged, which suppresses Click until
// EndDrag. Out-of-range indices are ignored.
func (c *CanvasState) BeginDrag(i int) {
	if i < 0 || i >= len(c.draft)/2 {
		return
	}
	c.selected = i
}

// DragVertex moves draft vertex i to (x, y) in place. The point count and
// the closed flag never change.
func (c *CanvasState) DragVertex(i int, x, y float32) {
	if i < 0 || 2*i+1 >= len(c.draft) {
		return
	}
	c.draft[2*i] = x
	c.draft[2*i+1] = y
	c.notify()
}

// EndDrag clears the vertex selection, re-enabling Click.
func (c *CanvasState) EndDrag() {
	c.selected = -1
	c.notify()
}

// FinishDrawing promotes the draft to an immutable Shape carrying the current
// fill selection and returns to the idle state. A draft with fewer than two
// vertices is silently discarded: no shape is created and no error surfaces.
func (c *CanvasState) FinishDrawing() {
	defer c.notify()
	points := c.draft
	closed := c.draftClosed
	c.draft = nil
	c.draftClosed = false
	c.drawing = false
	c.selected = -1

	if len(points)/2 < 2 {
		log.Println("[STATE] Draft discarded, not enough vertices")
		return
	}
	shape := Shape{
		ID:     uuid.NewString(),
		Points: points,
		Closed: closed,
		Fill:   c.fill,
	}
	c.shapes = append(c.shapes, shape)
	log.Printf("[STATE] Shape %s finished with %d vertices (closed=%v, fill=%q)",
		shape.ID, shape.VertexCount(), shape.Closed, shape.Fill)
}

// ClearDraft discards the in-progress draft and returns to idle without
// touching the finished shapes.
func (c *CanvasState) ClearDraft() {
	c.draft = nil
	c.draftClosed = false
	c.drawing = false
	c.selected = -1
	c.notify()
}

// ClearShapes empties the finished-shapes collection.
func (c *CanvasState) ClearShapes() {
	c.shapes = nil
	log.Println("[STATE] Shapes cleared")
	c.notify()
}

// SetBackground replaces the background image. A nil image clears it.
func (c *CanvasState) SetBackground(img image.Image) {
	c.background = img
	c.notify()
}

func (c *CanvasState) ClearBackground() {
	c.background = nil
	c.notify()
}

// SetFill selects the fill color applied to shapes finished from now on.
func (c *CanvasState) SetFill(f Fill) {
	c.fill = f
	c.notify()
}

// Reset returns the whole canvas to its initial state: no shapes, no draft,
// no background, idle.
func (c *CanvasState) Reset() {
	c.shapes = nil
	c.draft = nil
	c.draftClosed = false
	c.drawing = false
	c.selected = -1
	c.background = nil
	log.Println("[STATE] Canvas reset")
	c.notify()
}

// Shapes returns a copy of the finished shapes.
func (c *CanvasState) Shapes() []Shape {
	out := make([]Shape, len(c.shapes))
	copy(out, c.shapes)
	return out
}

// DraftPoints returns a copy of the draft's flattened point sequence.
func (c *CanvasState) DraftPoints() []float32 {
	out := make([]float32, len(c.draft))
	copy(out, c.draft)
	return out
}

func (c *CanvasState) DraftClosed() bool { return c.draftClosed }
func (c *CanvasState) IsDrawing() bool   { return c.drawing }
func (c *CanvasState) Fill() Fill        { return c.fill }

// SelectedVertex returns the index of the vertex being dragged, or -1.
func (c *CanvasState) SelectedVertex() int { return c.selected }

func (c *CanvasState) Background() image.Image { return c.background }

// Scene snapshots the drawable state for the renderer. The draft is exposed
// as an anonymous Shape using the live fill selection.
func (c *CanvasState) Scene() Scene {
	return Scene{
		Background: c.background,
		Shapes:     c.Shapes(),
		Draft: Shape{
			Points: c.DraftPoints(),
			Closed: c.draftClosed,
			Fill:   c.fill,
		},
	}
}
