package geometry

import (
	"math"
	"testing"
)

func TestPointInPolygonSquare(t *testing.T) {
	square := []Point2D{{0, 0}, {10, 0}, {10, 10}, {0, 10}}

	inside := []Point2D{{5, 5}, {1, 1}, {9.9, 9.9}}
	for _, p := range inside {
		if !PointInPolygon(p, square) {
			t.Errorf("expected %v inside square", p)
		}
	}

	outside := []Point2D{{-1, 5}, {11, 5}, {5, -1}, {5, 11}}
	for _, p := range outside {
		if PointInPolygon(p, square) {
			t.Errorf("expected %v outside square", p)
		}
	}
}

func TestPointInPolygonConcave(t *testing.T) {
	// U-shape: the notch between the arms is outside.
	u := []Point2D{{0, 0}, {10, 0}, {10, 10}, {7, 10}, {7, 3}, {3, 3}, {3, 10}, {0, 10}}

	if !PointInPolygon(Point2D{1, 5}, u) {
		t.Error("left arm should be inside")
	}
	if !PointInPolygon(Point2D{8, 5}, u) {
		t.Error("right arm should be inside")
	}
	if PointInPolygon(Point2D{5, 7}, u) {
		t.Error("notch should be outside")
	}
}

func TestPointInPolygonDegenerate(t *testing.T) {
	if PointInPolygon(Point2D{0, 0}, nil) {
		t.Error("empty polygon contains nothing")
	}
	if PointInPolygon(Point2D{5, 5}, []Point2D{{0, 0}, {10, 10}}) {
		t.Error("two vertices contain nothing")
	}
}

func TestPolygonArea(t *testing.T) {
	triangle := []Point2D{{0, 0}, {10, 0}, {10, 10}}
	if area := PolygonArea(triangle); math.Abs(area-50) > 1e-9 {
		t.Errorf("triangle area: expected 50, got %v", area)
	}

	square := []Point2D{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	if area := PolygonArea(square); math.Abs(area-100) > 1e-9 {
		t.Errorf("square area: expected 100, got %v", area)
	}

	// Winding order must not matter.
	reversed := []Point2D{{0, 10}, {10, 10}, {10, 0}, {0, 0}}
	if area := PolygonArea(reversed); math.Abs(area-100) > 1e-9 {
		t.Errorf("reversed square area: expected 100, got %v", area)
	}

	if area := PolygonArea([]Point2D{{0, 0}, {1, 1}}); area != 0 {
		t.Errorf("degenerate polygon area: expected 0, got %v", area)
	}
}

func TestIsFinite(t *testing.T) {
	if !(Point2D{1, 2}).IsFinite() {
		t.Error("finite point reported non-finite")
	}
	bad := []Point2D{
		{math.NaN(), 0},
		{0, math.NaN()},
		{math.Inf(1), 0},
		{0, math.Inf(-1)},
	}
	for _, p := range bad {
		if p.IsFinite() {
			t.Errorf("expected %v non-finite", p)
		}
	}
}

func TestBoundingBox(t *testing.T) {
	box := BoundingBox([]Point2D{{2, 3}, {8, 1}, {5, 9}})
	want := Rect{X: 2, Y: 1, Width: 6, Height: 8}
	if box != want {
		t.Errorf("expected %v, got %v", want, box)
	}
}
