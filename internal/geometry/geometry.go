package geometry

import "math"

// ProximityRadius is the pixel distance used both to merge a click into an
// existing vertex and to detect a click that closes the polygon.
const ProximityRadius float32 = 10

// Dist returns the Euclidean distance between (x1,y1) and (x2,y2).
func Dist(x1, y1, x2, y2 float32) float32 {
	return float32(math.Hypot(float64(x2-x1), float64(y2-y1)))
}

// NearFirstVertex reports whether (x,y) lies within ProximityRadius of the
// first vertex of the flattened point sequence. An empty sequence has no
// first vertex.
func NearFirstVertex(points []float32, x, y float32) bool {
	if len(points) < 2 {
		return false
	}
	return Dist(points[0], points[1], x, y) <= ProximityRadius
}

// NearExistingVertex reports whether (x,y) lies within ProximityRadius of any
// vertex of the flattened point sequence.
func NearExistingVertex(points []float32, x, y float32) bool {
	for i := 0; i+1 < len(points); i += 2 {
		if Dist(points[i], points[i+1], x, y) <= ProximityRadius {
			return true
		}
	}
	return false
}
