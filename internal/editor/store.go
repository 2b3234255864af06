package editor

import (
	"errors"
	"sort"

	"region-editor/pkg/geometry"
)

// MinVertices is the smallest boundary a region may have. Removals that
// would go below this count are rejected in their entirety.
const MinVertices = 3

// ErrMinimumVertices is returned when a removal would leave the polygon
// with fewer than MinVertices vertices.
var ErrMinimumVertices = errors.New("polygon must keep at least 3 vertices")

// PolygonStore owns the ordered vertex list of the region being edited.
// All mutations are validated before they touch the list; a rejected
// operation leaves every vertex exactly as it was.
type PolygonStore struct {
	vertices []geometry.Point2D
}

// NewPolygonStore seeds a store from a boundary. Non-finite vertices are
// dropped; the ingestion layer filters these too, so this is a backstop.
func NewPolygonStore(boundary []geometry.Point2D) *PolygonStore {
	s := &PolygonStore{vertices: make([]geometry.Point2D, 0, len(boundary))}
	for _, v := range boundary {
		if v.IsFinite() {
			s.vertices = append(s.vertices, v)
		}
	}
	return s
}

// Vertices returns a copy of the current vertex list.
func (s *PolygonStore) Vertices() []geometry.Point2D {
	out := make([]geometry.Point2D, len(s.vertices))
	copy(out, s.vertices)
	return out
}

// Count returns the number of vertices.
func (s *PolygonStore) Count() int {
	return len(s.vertices)
}

// Vertex returns the vertex at index. The second return value is false
// when the index is out of range.
func (s *PolygonStore) Vertex(index int) (geometry.Point2D, bool) {
	if index < 0 || index >= len(s.vertices) {
		return geometry.Point2D{}, false
	}
	return s.vertices[index], true
}

// AddVertex appends a vertex at the end of the boundary. Returns false
// for non-finite points, which are never admitted.
func (s *PolygonStore) AddVertex(p geometry.Point2D) bool {
	if !p.IsFinite() {
		return false
	}
	s.vertices = append(s.vertices, p)
	return true
}

// MoveVertex replaces the vertex at index. Out-of-range indices and
// non-finite points are silent no-ops.
func (s *PolygonStore) MoveVertex(index int, p geometry.Point2D) {
	if index < 0 || index >= len(s.vertices) || !p.IsFinite() {
		return
	}
	s.vertices[index] = p
}

// RemoveVertices removes the vertices at the given indices. Duplicate and
// out-of-range indices are ignored. If the removal would drop the count
// below MinVertices the whole operation is rejected with
// ErrMinimumVertices and nothing changes.
func (s *PolygonStore) RemoveVertices(indices []int) error {
	valid := make([]int, 0, len(indices))
	seen := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i >= 0 && i < len(s.vertices) && !seen[i] {
			seen[i] = true
			valid = append(valid, i)
		}
	}
	if len(valid) == 0 {
		return nil
	}
	if len(s.vertices)-len(valid) < MinVertices {
		return ErrMinimumVertices
	}

	// Descending order so earlier removals don't shift later indices.
	sort.Sort(sort.Reverse(sort.IntSlice(valid)))
	for _, i := range valid {
		s.vertices = append(s.vertices[:i], s.vertices[i+1:]...)
	}
	return nil
}

// TranslateAll shifts every vertex by (dx, dy). If any resulting vertex
// would fall outside [0,bounds.Width] x [0,bounds.Height] the whole
// translation is rejected and false is returned; partial translation
// never occurs. Callers advancing a drag anchor do so regardless of the
// result so the gesture doesn't jump once back inside bounds.
func (s *PolygonStore) TranslateAll(dx, dy float64, bounds geometry.Size) bool {
	delta := geometry.Point2D{X: dx, Y: dy}
	if !delta.IsFinite() {
		return false
	}

	moved := make([]geometry.Point2D, len(s.vertices))
	for i, v := range s.vertices {
		p := v.Add(delta)
		if !bounds.Contains(p) {
			return false
		}
		moved[i] = p
	}
	s.vertices = moved
	return true
}

// Reset replaces the whole vertex list, filtering non-finite points.
// Used by "restore original boundary".
func (s *PolygonStore) Reset(boundary []geometry.Point2D) {
	s.vertices = s.vertices[:0]
	for _, v := range boundary {
		if v.IsFinite() {
			s.vertices = append(s.vertices, v)
		}
	}
}
