package canvas

import (
	"image"
	"image/color"
	"strconv"

	xdraw "golang.org/x/image/draw"

	"region-editor/internal/editor"
	"region-editor/internal/region"
	"region-editor/pkg/colorutil"
	"region-editor/pkg/geometry"
)

// fillAlpha is the opacity of the polygon interior fill.
const fillAlpha = 70

var background = color.RGBA{R: 24, G: 24, B: 28, A: 255}

// digitPatterns contains 3x5 pixel patterns for digits 0-9.
// Each digit is represented as 5 rows of 3 bits.
var digitPatterns = [10][5]uint8{
	{0b111, 0b101, 0b101, 0b101, 0b111}, // 0
	{0b010, 0b110, 0b010, 0b010, 0b111}, // 1
	{0b111, 0b001, 0b111, 0b100, 0b111}, // 2
	{0b111, 0b001, 0b111, 0b001, 0b111}, // 3
	{0b101, 0b101, 0b111, 0b001, 0b001}, // 4
	{0b111, 0b100, 0b111, 0b001, 0b111}, // 5
	{0b111, 0b100, 0b111, 0b101, 0b111}, // 6
	{0b111, 0b001, 0b001, 0b001, 0b001}, // 7
	{0b111, 0b101, 0b111, 0b101, 0b111}, // 8
	{0b111, 0b101, 0b111, 0b001, 0b111}, // 9
}

// letterPatterns contains 3x5 pixel patterns for letters A-Z.
var letterPatterns = map[rune][5]uint8{
	'A': {0b010, 0b101, 0b111, 0b101, 0b101},
	'B': {0b110, 0b101, 0b110, 0b101, 0b110},
	'C': {0b011, 0b100, 0b100, 0b100, 0b011},
	'D': {0b110, 0b101, 0b101, 0b101, 0b110},
	'E': {0b111, 0b100, 0b110, 0b100, 0b111},
	'F': {0b111, 0b100, 0b110, 0b100, 0b100},
	'G': {0b011, 0b100, 0b101, 0b101, 0b011},
	'H': {0b101, 0b101, 0b111, 0b101, 0b101},
	'I': {0b111, 0b010, 0b010, 0b010, 0b111},
	'J': {0b001, 0b001, 0b001, 0b101, 0b010},
	'K': {0b101, 0b101, 0b110, 0b101, 0b101},
	'L': {0b100, 0b100, 0b100, 0b100, 0b111},
	'M': {0b101, 0b111, 0b101, 0b101, 0b101},
	'N': {0b101, 0b111, 0b111, 0b101, 0b101},
	'O': {0b010, 0b101, 0b101, 0b101, 0b010},
	'P': {0b110, 0b101, 0b110, 0b100, 0b100},
	'Q': {0b010, 0b101, 0b101, 0b111, 0b011},
	'R': {0b110, 0b101, 0b110, 0b101, 0b101},
	'S': {0b011, 0b100, 0b010, 0b001, 0b110},
	'T': {0b111, 0b010, 0b010, 0b010, 0b010},
	'U': {0b101, 0b101, 0b101, 0b101, 0b111},
	'V': {0b101, 0b101, 0b101, 0b101, 0b010},
	'W': {0b101, 0b101, 0b101, 0b111, 0b101},
	'X': {0b101, 0b101, 0b010, 0b101, 0b101},
	'Y': {0b101, 0b101, 0b010, 0b010, 0b010},
	'Z': {0b111, 0b001, 0b010, 0b100, 0b111},
	' ': {0b000, 0b000, 0b000, 0b000, 0b000},
}

// getCharPattern returns the 3x5 pixel pattern for a character.
// Returns a zero pattern for unsupported characters.
func getCharPattern(ch rune) [5]uint8 {
	if ch >= '0' && ch <= '9' {
		return digitPatterns[ch-'0']
	}
	if ch >= 'a' && ch <= 'z' {
		ch = ch - 'a' + 'A'
	}
	if pattern, ok := letterPatterns[ch]; ok {
		return pattern
	}
	return [5]uint8{}
}

// scaledPhoto caches the background scaled for one raster size.
type scaledPhoto struct {
	w, h int
	img  *image.RGBA
}

// drawFrame is the raster drawing function: background photo scaled per
// the view transform, then the active region overlay. It is a pure
// function of (photo, vertices, selection, hover); it never mutates
// editor state.
func (ec *EditorCanvas) drawFrame(w, h int) image.Image {
	output := image.NewRGBA(image.Rect(0, 0, w, h))
	fillRect(output, background)

	if ec.loadErr != nil {
		drawText(output, "IMAGE FAILED TO LOAD", w/2, h/2, 3, color.RGBA{255, 80, 80, 255})
		return output
	}
	if ec.photo == nil {
		drawText(output, "LOADING IMAGE", w/2, h/2, 3, color.RGBA{200, 200, 200, 255})
		return output
	}

	t := editor.FitTransform(
		geometry.NewSize(float64(w), float64(h)),
		ec.photo.Size,
	)
	if !t.Valid() {
		return output
	}

	ec.compositePhoto(output, t, w, h)

	if ec.session != nil {
		ec.drawOverlay(output, t)
		if ec.session.Controller.Drawing() {
			drawText(output, "DRAW", 40, 14, 2, ec.styles.selected)
		}
	}

	return output
}

// compositePhoto draws the scaled, centered photo, caching the scaled
// pixels until the raster size changes.
func (ec *EditorCanvas) compositePhoto(output *image.RGBA, t editor.ViewTransform, w, h int) {
	dstW := int(ec.photo.Size.Width * t.Scale)
	dstH := int(ec.photo.Size.Height * t.Scale)
	if dstW <= 0 || dstH <= 0 {
		return
	}

	if ec.scaled == nil || ec.scaled.w != dstW || ec.scaled.h != dstH {
		scaled := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
		xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), ec.photo.Image, ec.photo.Image.Bounds(), xdraw.Src, nil)
		ec.scaled = &scaledPhoto{w: dstW, h: dstH, img: scaled}
	}

	offset := image.Pt(int(t.OffsetX), int(t.OffsetY))
	xdraw.Draw(output, image.Rectangle{Min: offset, Max: offset.Add(image.Pt(dstW, dstH))},
		ec.scaled.img, image.Point{}, xdraw.Src)
}

// drawOverlay renders the active region: interior fill and stroke keyed
// off the confidence band (or the selected color when the whole region
// is the active drag/selection context), vertex markers sized by state,
// and a 1-based ordinal on each marker. Degenerate boundaries with zero,
// one, or two vertices skip the polygon but still draw markers.
func (ec *EditorCanvas) drawOverlay(output *image.RGBA, t editor.ViewTransform) {
	s := ec.session
	vertices := s.Store.Vertices()

	canvasPts := make([]geometry.Point2D, len(vertices))
	for i, v := range vertices {
		canvasPts[i] = t.ImageToCanvas(v)
	}

	stroke := ec.regionColor()
	if len(canvasPts) >= 3 {
		fillPolygon(output, canvasPts, colorutil.WithAlpha(stroke, fillAlpha))
		for i := range canvasPts {
			p1 := canvasPts[i]
			p2 := canvasPts[(i+1)%len(canvasPts)]
			drawLine(output, int(p1.X), int(p1.Y), int(p2.X), int(p2.Y), stroke, 2)
		}
	} else if len(canvasPts) == 2 {
		drawLine(output, int(canvasPts[0].X), int(canvasPts[0].Y),
			int(canvasPts[1].X), int(canvasPts[1].Y), stroke, 2)
	}

	hovered, hasHover := s.Selection.Hovered()
	for i, p := range canvasPts {
		radius := ec.styles.markerRadius
		col := ec.styles.markerDefault
		switch {
		case s.Selection.Contains(i):
			radius = ec.styles.markerRadiusSelect
			col = ec.styles.markerSelect
		case hasHover && i == hovered:
			radius = ec.styles.markerRadiusHover
			col = ec.styles.markerHover
		}
		fillCircle(output, int(p.X), int(p.Y), int(radius), col)
		drawText(output, strconv.Itoa(i+1), int(p.X), int(p.Y), 1, colorutil.Black)
	}
}

// regionColor picks the stroke/fill color: the distinct selected color
// when the whole region is the active context, the confidence band color
// otherwise.
func (ec *EditorCanvas) regionColor() color.RGBA {
	s := ec.session
	wholeSelected := s.Store.Count() > 0 && s.Selection.Count() == s.Store.Count()
	if s.Controller.DraggingPolygon() || wholeSelected {
		return ec.styles.selected
	}

	switch region.ConfidenceBand(s.Region().Confidence, ec.styles.highConfidence, ec.styles.mediumConfidence) {
	case region.BandHigh:
		return ec.styles.bandHigh
	case region.BandMedium:
		return ec.styles.bandMedium
	default:
		return ec.styles.bandLow
	}
}

// fillRect floods the whole image with one color.
func fillRect(output *image.RGBA, col color.RGBA) {
	b := output.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			output.SetRGBA(x, y, col)
		}
	}
}

// blendPixel alpha-blends col over the existing pixel.
func blendPixel(output *image.RGBA, x, y int, col color.RGBA) {
	b := output.Bounds()
	if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
		return
	}
	if col.A == 255 {
		output.SetRGBA(x, y, col)
		return
	}
	existing := output.RGBAAt(x, y)
	alpha := float64(col.A) / 255
	inv := 1 - alpha
	output.SetRGBA(x, y, color.RGBA{
		R: uint8(float64(col.R)*alpha + float64(existing.R)*inv),
		G: uint8(float64(col.G)*alpha + float64(existing.G)*inv),
		B: uint8(float64(col.B)*alpha + float64(existing.B)*inv),
		A: 255,
	})
}

// fillPolygon fills a polygon using an even-odd scanline sweep.
func fillPolygon(output *image.RGBA, pts []geometry.Point2D, col color.RGBA) {
	if len(pts) < 3 {
		return
	}

	box := geometry.BoundingBox(pts)
	bounds := output.Bounds()
	minY := int(box.Y)
	maxY := int(box.Y + box.Height)
	if minY < bounds.Min.Y {
		minY = bounds.Min.Y
	}
	if maxY >= bounds.Max.Y {
		maxY = bounds.Max.Y - 1
	}

	n := len(pts)
	for y := minY; y <= maxY; y++ {
		fy := float64(y)
		var xs []float64
		for i := 0; i < n; i++ {
			p1 := pts[i]
			p2 := pts[(i+1)%n]
			if (p1.Y <= fy && p2.Y > fy) || (p2.Y <= fy && p1.Y > fy) {
				frac := (fy - p1.Y) / (p2.Y - p1.Y)
				xs = append(xs, p1.X+frac*(p2.X-p1.X))
			}
		}

		// Insertion sort; crossing counts stay tiny.
		for i := 1; i < len(xs); i++ {
			for j := i; j > 0 && xs[j] < xs[j-1]; j-- {
				xs[j], xs[j-1] = xs[j-1], xs[j]
			}
		}

		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(xs[i]); x <= int(xs[i+1]); x++ {
				blendPixel(output, x, y, col)
			}
		}
	}
}

// drawLine draws a line between two points using Bresenham's algorithm.
func drawLine(output *image.RGBA, x1, y1, x2, y2 int, col color.RGBA, thickness int) {
	bounds := output.Bounds()

	dx := x2 - x1
	dy := y2 - y1
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		for t := -thickness / 2; t <= thickness/2; t++ {
			for s := -thickness / 2; s <= thickness/2; s++ {
				px, py := x1+s, y1+t
				if px >= bounds.Min.X && px < bounds.Max.X && py >= bounds.Min.Y && py < bounds.Max.Y {
					output.SetRGBA(px, py, col)
				}
			}
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// fillCircle draws a filled circle with a 1px darker rim.
func fillCircle(output *image.RGBA, cx, cy, r int, col color.RGBA) {
	if r < 1 {
		r = 1
	}
	rim := color.RGBA{R: col.R / 2, G: col.G / 2, B: col.B / 2, A: 255}
	r2 := r * r
	inner := (r - 1) * (r - 1)
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			d2 := x*x + y*y
			if d2 > r2 {
				continue
			}
			if d2 > inner {
				blendPixel(output, cx+x, cy+y, rim)
			} else {
				blendPixel(output, cx+x, cy+y, col)
			}
		}
	}
}

// drawText draws a string centered at (centerX, centerY) using the 3x5
// pixel font, scaled up by scale.
func drawText(output *image.RGBA, text string, centerX, centerY, scale int, col color.RGBA) {
	if scale < 1 {
		scale = 1
	}

	charWidth := 3 * scale
	charHeight := 5 * scale
	spacing := scale
	runes := []rune(text)
	textWidth := len(runes)*charWidth + (len(runes)-1)*spacing

	startX := centerX - textWidth/2
	startY := centerY - charHeight/2
	bounds := output.Bounds()

	for i, ch := range runes {
		pattern := getCharPattern(ch)
		charX := startX + i*(charWidth+spacing)

		for row := 0; row < 5; row++ {
			for c := 0; c < 3; c++ {
				if (pattern[row] & (1 << (2 - c))) == 0 {
					continue
				}
				for dy := 0; dy < scale; dy++ {
					for dx := 0; dx < scale; dx++ {
						px := charX + c*scale + dx
						py := startY + row*scale + dy
						if px >= bounds.Min.X && px < bounds.Max.X &&
							py >= bounds.Min.Y && py < bounds.Max.Y {
							output.SetRGBA(px, py, col)
						}
					}
				}
			}
		}
	}
}
