// Package editor implements the interactive polygon boundary editor:
// vertex storage, selection, hit-testing, and the pointer/keyboard
// interaction state machine. It is independent of any UI toolkit; the
// widget layer feeds it canvas-space events and redraws on its events.
package editor

import (
	"region-editor/pkg/geometry"
)

// ViewTransform maps between image space (native pixels of the source
// photo) and canvas space (the displayed, letterboxed drawing surface).
// It is derived from the current canvas and image dimensions on every
// draw and never cached across resizes.
type ViewTransform struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
	Image   geometry.Size
}

// FitTransform computes the scale-to-fit transform that centers the image
// in the canvas. A degenerate canvas or image yields a zero transform;
// callers must not convert coordinates through it.
func FitTransform(canvas, image geometry.Size) ViewTransform {
	if canvas.Width <= 0 || canvas.Height <= 0 || image.Width <= 0 || image.Height <= 0 {
		return ViewTransform{Image: image}
	}

	scale := canvas.Width / image.Width
	if s := canvas.Height / image.Height; s < scale {
		scale = s
	}

	return ViewTransform{
		Scale:   scale,
		OffsetX: (canvas.Width - image.Width*scale) / 2,
		OffsetY: (canvas.Height - image.Height*scale) / 2,
		Image:   image,
	}
}

// Valid reports whether the transform can convert coordinates.
func (t ViewTransform) Valid() bool {
	return t.Scale > 0
}

// ImageToCanvas converts an image-space point to canvas space.
func (t ViewTransform) ImageToCanvas(p geometry.Point2D) geometry.Point2D {
	return geometry.Point2D{
		X: t.OffsetX + p.X*t.Scale,
		Y: t.OffsetY + p.Y*t.Scale,
	}
}

// CanvasToImage converts a canvas-space point to image space. The second
// return value is false when the point falls outside the displayed image;
// clicks in the letterbox margin must not produce edits.
func (t ViewTransform) CanvasToImage(p geometry.Point2D) (geometry.Point2D, bool) {
	if !t.Valid() {
		return geometry.Point2D{}, false
	}

	img := geometry.Point2D{
		X: (p.X - t.OffsetX) / t.Scale,
		Y: (p.Y - t.OffsetY) / t.Scale,
	}
	if !t.Image.Contains(img) {
		return geometry.Point2D{}, false
	}
	return img, true
}
