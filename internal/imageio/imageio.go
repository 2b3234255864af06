// Package imageio provides photo loading for the editor.
package imageio

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/tiff"

	"region-editor/pkg/geometry"
)

// Photo is a loaded background photograph with its native dimensions.
// All coordinate conversions require these dimensions, so the editor
// refuses pointer input until a Photo exists.
type Photo struct {
	Path  string
	Image image.Image
	Size  geometry.Size
}

// Load decodes a photo from disk. JPEG, PNG, and TIFF are supported.
func Load(path string) (*Photo, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("image %s (%s) has zero size", path, format)
	}

	return &Photo{
		Path:  path,
		Image: img,
		Size:  geometry.NewSize(float64(bounds.Dx()), float64(bounds.Dy())),
	}, nil
}
