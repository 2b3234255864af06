package editor

import (
	"testing"

	"region-editor/pkg/geometry"
)

// identity is a 1:1 transform over a 100x100 image.
func identity() ViewTransform {
	return FitTransform(geometry.NewSize(100, 100), geometry.NewSize(100, 100))
}

func TestFindVertexAtWithinRadius(t *testing.T) {
	vertices := []geometry.Point2D{{X: 50, Y: 50}, {X: 80, Y: 20}}
	tr := identity()

	if i, ok := FindVertexAt(geometry.NewPoint2D(53, 54), vertices, tr, 10); !ok || i != 0 {
		t.Errorf("expected hit on vertex 0, got (%d,%v)", i, ok)
	}
	if _, ok := FindVertexAt(geometry.NewPoint2D(50, 65), vertices, tr, 10); ok {
		t.Error("point 15px away must miss with radius 10")
	}
	// Exactly on the radius still hits.
	if i, ok := FindVertexAt(geometry.NewPoint2D(60, 50), vertices, tr, 10); !ok || i != 0 {
		t.Errorf("boundary distance should hit, got (%d,%v)", i, ok)
	}
}

func TestFindVertexAtLowestIndexWins(t *testing.T) {
	// Two vertices under the same pointer position: deterministic pick.
	vertices := []geometry.Point2D{{X: 50, Y: 50}, {X: 50.5, Y: 50}}
	tr := identity()
	for n := 0; n < 10; n++ {
		i, ok := FindVertexAt(geometry.NewPoint2D(50.2, 50), vertices, tr, 10)
		if !ok || i != 0 {
			t.Fatalf("expected vertex 0 every time, got (%d,%v)", i, ok)
		}
	}
}

func TestFindVertexAtScaledTransform(t *testing.T) {
	// Scale 2: an image vertex at (10,10) sits at canvas (20,20), and the
	// pick radius is measured in canvas pixels.
	tr := FitTransform(geometry.NewSize(200, 200), geometry.NewSize(100, 100))
	vertices := []geometry.Point2D{{X: 10, Y: 10}}

	if _, ok := FindVertexAt(geometry.NewPoint2D(20, 28), vertices, tr, 10); !ok {
		t.Error("expected hit 8 canvas px away")
	}
	if _, ok := FindVertexAt(geometry.NewPoint2D(10, 10), vertices, tr, 5); ok {
		t.Error("canvas (10,10) is 14 px from the projected vertex; must miss")
	}
}

func TestFindVertexAtInvalidTransform(t *testing.T) {
	var tr ViewTransform
	if _, ok := FindVertexAt(geometry.NewPoint2D(0, 0), []geometry.Point2D{{X: 0, Y: 0}}, tr, 10); ok {
		t.Error("invalid transform must never hit")
	}
}

func TestIsInside(t *testing.T) {
	square := []geometry.Point2D{{X: 10, Y: 10}, {X: 40, Y: 10}, {X: 40, Y: 40}, {X: 10, Y: 40}}
	tr := identity()

	if !IsInside(geometry.NewPoint2D(25, 25), square, tr) {
		t.Error("center of square should be inside")
	}
	if IsInside(geometry.NewPoint2D(5, 25), square, tr) {
		t.Error("point left of square should be outside")
	}
	if IsInside(geometry.NewPoint2D(25, 25), square[:2], tr) {
		t.Error("two vertices contain nothing")
	}
}
