package editor

import (
	"region-editor/pkg/geometry"
)

// DefaultPickRadius is the vertex pick distance in canvas pixels.
const DefaultPickRadius = 10.0

// FindVertexAt returns the index of the first vertex within pickRadius
// canvas pixels of the given canvas-space point. The lowest index wins,
// so overlapping vertices resolve deterministically. The second return
// value is false when no vertex is in range.
func FindVertexAt(canvasPt geometry.Point2D, vertices []geometry.Point2D, t ViewTransform, pickRadius float64) (int, bool) {
	if !t.Valid() {
		return 0, false
	}
	for i, v := range vertices {
		if t.ImageToCanvas(v).Distance(canvasPt) <= pickRadius {
			return i, true
		}
	}
	return 0, false
}

// IsInside reports whether the canvas-space point lies inside the polygon
// projected into canvas space, using the even-odd ray-casting rule.
// Polygons with fewer than three vertices contain nothing.
func IsInside(canvasPt geometry.Point2D, vertices []geometry.Point2D, t ViewTransform) bool {
	if !t.Valid() || len(vertices) < 3 {
		return false
	}
	projected := make([]geometry.Point2D, len(vertices))
	for i, v := range vertices {
		projected[i] = t.ImageToCanvas(v)
	}
	return geometry.PointInPolygon(canvasPt, projected)
}
