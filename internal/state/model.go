package state

import "image"

// Fill is the fill color selection for a shape. The zero value means the
// shape is drawn as an unfilled outline.
type Fill string

const (
	FillNone   Fill = ""
	FillBlue   Fill = "blue"
	FillGreen  Fill = "lightgreen"
	FillYellow Fill = "yellow"
)

// Shape is a finalized polygon. Points are stored flattened as
// [x0, y0, x1, y1, ...]; the length is always even. A Shape is immutable
// once it has been appended to the finished collection.
type Shape struct {
	ID     string    `json:"id"`
	Points []float32 `json:"points"`
	Closed bool      `json:"closed"`
	Fill   Fill      `json:"fill,omitempty"`
}

// VertexCount returns the number of (x, y) vertices in the shape.
func (s Shape) VertexCount() int {
	return len(s.Points) / 2
}

// Scene is a point-in-time snapshot of everything drawable: the background
// image (nil when unset), the finished shapes and the in-progress draft.
// The draft is carried as a Shape with an empty ID.
type Scene struct {
	Background image.Image
	Shapes     []Shape
	Draft      Shape
}
