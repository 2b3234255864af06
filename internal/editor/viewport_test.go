package editor

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"region-editor/pkg/geometry"
)

func TestFitTransformLetterbox(t *testing.T) {
	// 500x200 canvas, 200x100 image: height limits the scale to 2 and
	// the image is centered horizontally.
	tr := FitTransform(geometry.NewSize(500, 200), geometry.NewSize(200, 100))
	if tr.Scale != 2 {
		t.Errorf("expected scale 2, got %v", tr.Scale)
	}
	if tr.OffsetX != 50 || tr.OffsetY != 0 {
		t.Errorf("expected offsets (50,0), got (%v,%v)", tr.OffsetX, tr.OffsetY)
	}
}

func TestFitTransformDegenerate(t *testing.T) {
	cases := []struct {
		canvas, image geometry.Size
	}{
		{geometry.NewSize(0, 100), geometry.NewSize(10, 10)},
		{geometry.NewSize(100, 100), geometry.NewSize(0, 10)},
		{geometry.NewSize(-5, 100), geometry.NewSize(10, 10)},
	}
	for _, c := range cases {
		if tr := FitTransform(c.canvas, c.image); tr.Valid() {
			t.Errorf("expected invalid transform for canvas %v image %v", c.canvas, c.image)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	tr := FitTransform(geometry.NewSize(640, 480), geometry.NewSize(300, 200))

	for x := 1.0; x < 300; x += 37.3 {
		for y := 1.0; y < 200; y += 23.7 {
			p := geometry.NewPoint2D(x, y)
			back, ok := tr.CanvasToImage(tr.ImageToCanvas(p))
			if !ok {
				t.Fatalf("round trip of %v rejected", p)
			}
			if !scalar.EqualWithinAbs(back.X, p.X, 1e-6) || !scalar.EqualWithinAbs(back.Y, p.Y, 1e-6) {
				t.Errorf("round trip of %v gave %v", p, back)
			}
		}
	}
}

func TestCanvasToImageRejectsLetterboxMargin(t *testing.T) {
	// Image occupies x in [50,450] of the canvas; the margins must not
	// convert.
	tr := FitTransform(geometry.NewSize(500, 200), geometry.NewSize(200, 100))

	if _, ok := tr.CanvasToImage(geometry.NewPoint2D(10, 50)); ok {
		t.Error("point in left margin should be rejected")
	}
	if _, ok := tr.CanvasToImage(geometry.NewPoint2D(490, 50)); ok {
		t.Error("point in right margin should be rejected")
	}
	if _, ok := tr.CanvasToImage(geometry.NewPoint2D(250, 100)); !ok {
		t.Error("point over the image should convert")
	}
}

func TestCanvasToImageInvalidTransform(t *testing.T) {
	var tr ViewTransform
	if _, ok := tr.CanvasToImage(geometry.NewPoint2D(5, 5)); ok {
		t.Error("zero transform must reject conversions")
	}
}
