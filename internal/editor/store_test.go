package editor

import (
	"errors"
	"math"
	"testing"

	"region-editor/pkg/geometry"
)

func triangle() []geometry.Point2D {
	return []geometry.Point2D{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}
}

func TestNewPolygonStoreFiltersNonFinite(t *testing.T) {
	s := NewPolygonStore([]geometry.Point2D{
		{X: 0, Y: 0},
		{X: math.NaN(), Y: 1},
		{X: 5, Y: math.Inf(1)},
		{X: 10, Y: 10},
	})
	if s.Count() != 2 {
		t.Errorf("expected 2 vertices after filtering, got %d", s.Count())
	}
}

func TestVerticesReturnsCopy(t *testing.T) {
	s := NewPolygonStore(triangle())
	v := s.Vertices()
	v[0] = geometry.NewPoint2D(99, 99)
	if got, _ := s.Vertex(0); got.X == 99 {
		t.Error("mutating the returned slice must not affect the store")
	}
}

func TestAddVertexRejectsNonFinite(t *testing.T) {
	s := NewPolygonStore(triangle())
	if s.AddVertex(geometry.Point2D{X: math.NaN(), Y: 0}) {
		t.Error("NaN vertex must be rejected")
	}
	if s.Count() != 3 {
		t.Errorf("count changed on rejected add: %d", s.Count())
	}
	if !s.AddVertex(geometry.NewPoint2D(5, 5)) {
		t.Error("finite vertex must be accepted")
	}
}

func TestMoveVertexOutOfRangeIsNoOp(t *testing.T) {
	s := NewPolygonStore(triangle())
	before := s.Vertices()
	s.MoveVertex(-1, geometry.NewPoint2D(1, 1))
	s.MoveVertex(3, geometry.NewPoint2D(1, 1))
	s.MoveVertex(0, geometry.Point2D{X: math.Inf(-1), Y: 0})
	after := s.Vertices()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("vertex %d changed: %v -> %v", i, before[i], after[i])
		}
	}
}

func TestRemoveVerticesBelowMinimum(t *testing.T) {
	s := NewPolygonStore(triangle())
	err := s.RemoveVertices([]int{0})
	if !errors.Is(err, ErrMinimumVertices) {
		t.Fatalf("expected ErrMinimumVertices, got %v", err)
	}
	if s.Count() != 3 {
		t.Errorf("rejected removal must not change the store, count=%d", s.Count())
	}
}

func TestRemoveVerticesIndexStability(t *testing.T) {
	s := NewPolygonStore([]geometry.Point2D{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0},
	})
	// Removing {1,3} must leave the vertices originally at 0, 2, 4.
	if err := s.RemoveVertices([]int{1, 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []geometry.Point2D{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 4, Y: 0}}
	got := s.Vertices()
	if len(got) != len(want) {
		t.Fatalf("expected %d vertices, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("vertex %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestRemoveVerticesIgnoresDuplicatesAndOutOfRange(t *testing.T) {
	s := NewPolygonStore([]geometry.Point2D{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0},
	})
	// Only index 2 is actually removable here; duplicates and the
	// out-of-range entries must not inflate the removal count.
	if err := s.RemoveVertices([]int{2, 2, -1, 7}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Count() != 3 {
		t.Errorf("expected 3 vertices, got %d", s.Count())
	}
}

func TestRemoveVerticesEmptyIsNoOp(t *testing.T) {
	s := NewPolygonStore(triangle())
	if err := s.RemoveVertices(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Count() != 3 {
		t.Errorf("count changed: %d", s.Count())
	}
}

func TestTranslateAllAccepted(t *testing.T) {
	s := NewPolygonStore(triangle())
	if !s.TranslateAll(2, 3, geometry.NewSize(20, 20)) {
		t.Fatal("in-bounds translation rejected")
	}
	want := []geometry.Point2D{{X: 2, Y: 3}, {X: 12, Y: 3}, {X: 12, Y: 13}}
	got := s.Vertices()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("vertex %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestTranslateAllRejectedIsAtomic(t *testing.T) {
	s := NewPolygonStore(triangle())
	before := s.Vertices()
	// (10,10)+(1,0) leaves a 10x10 bound; the first two vertices would
	// have been fine, so this checks all-or-nothing.
	if s.TranslateAll(1, 0, geometry.NewSize(10, 10)) {
		t.Fatal("out-of-bounds translation accepted")
	}
	after := s.Vertices()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("vertex %d changed on rejected translation: %v -> %v", i, before[i], after[i])
		}
	}
}

func TestTranslateAllRejectsNonFiniteDelta(t *testing.T) {
	s := NewPolygonStore(triangle())
	if s.TranslateAll(math.NaN(), 0, geometry.NewSize(100, 100)) {
		t.Error("NaN delta accepted")
	}
}

func TestReset(t *testing.T) {
	s := NewPolygonStore(triangle())
	s.AddVertex(geometry.NewPoint2D(5, 5))
	s.Reset(triangle())
	if s.Count() != 3 {
		t.Errorf("expected 3 vertices after reset, got %d", s.Count())
	}
}
