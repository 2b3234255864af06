// Package canvas provides the interactive region boundary canvas.
package canvas

import (
	"image/color"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"region-editor/internal/config"
	"region-editor/internal/editor"
	"region-editor/internal/imageio"
	"region-editor/pkg/colorutil"
	"region-editor/pkg/geometry"
)

// EditorCanvas displays the photo with the active region's boundary
// overlaid and feeds pointer/keyboard events into the interaction
// controller. It is a pure view over the editor session: all geometry
// and selection state lives in internal/editor.
type EditorCanvas struct {
	widget.BaseWidget

	photo   *imageio.Photo
	loadErr error
	session *editor.Session

	raster *fynecanvas.Raster
	styles styleSet

	// Scaled background cache, invalidated on resize.
	scaled      *scaledPhoto
	pickRadius  float64
	onWarning   func(string)
	onModeLabel func(string)
}

// styleSet holds the resolved overlay colors.
type styleSet struct {
	bandHigh      color.RGBA
	bandMedium    color.RGBA
	bandLow       color.RGBA
	selected      color.RGBA
	markerDefault color.RGBA
	markerHover   color.RGBA
	markerSelect  color.RGBA

	markerRadius       float64
	markerRadiusHover  float64
	markerRadiusSelect float64

	highConfidence   float64
	mediumConfidence float64
}

// NewEditorCanvas creates the canvas with colors and radii from config.
func NewEditorCanvas(cfg *config.Config) *EditorCanvas {
	ec := &EditorCanvas{
		styles:     resolveStyles(cfg),
		pickRadius: cfg.PickRadius,
	}
	ec.raster = fynecanvas.NewRaster(ec.drawFrame)
	ec.raster.ScaleMode = fynecanvas.ImageScalePixels
	ec.raster.SetMinSize(fyne.NewSize(640, 480))
	ec.ExtendBaseWidget(ec)
	return ec
}

func resolveStyles(cfg *config.Config) styleSet {
	parse := func(s string, fallback color.RGBA) color.RGBA {
		c, err := colorutil.ParseHex(s)
		if err != nil {
			return fallback
		}
		return c
	}
	return styleSet{
		bandHigh:      parse(cfg.Colors.BandHigh, colorutil.Green),
		bandMedium:    parse(cfg.Colors.BandMedium, colorutil.Yellow),
		bandLow:       parse(cfg.Colors.BandLow, colorutil.Magenta),
		selected:      parse(cfg.Colors.Selected, colorutil.Cyan),
		markerDefault: parse(cfg.Colors.MarkerDefault, colorutil.White),
		markerHover:   parse(cfg.Colors.MarkerHover, colorutil.Yellow),
		markerSelect:  parse(cfg.Colors.MarkerSelect, colorutil.Cyan),

		markerRadius:       cfg.MarkerRadius,
		markerRadiusHover:  cfg.MarkerRadiusHover,
		markerRadiusSelect: cfg.MarkerRadiusSelect,

		highConfidence:   cfg.HighConfidence,
		mediumConfidence: cfg.MediumConfidence,
	}
}

// SetPhoto installs the loaded photo, or the load error when decoding
// failed. Until a photo is present all pointer input is ignored and the
// canvas shows an error state instead of operating against undefined
// dimensions.
func (ec *EditorCanvas) SetPhoto(photo *imageio.Photo, err error) {
	ec.photo = photo
	ec.loadErr = err
	ec.scaled = nil
	ec.raster.Refresh()
}

// SetSession installs the active editing session (nil closes it) and
// subscribes the canvas to its change events.
func (ec *EditorCanvas) SetSession(s *editor.Session) {
	ec.session = s
	if s != nil {
		s.Bus.On(editor.EventGeometryChanged, func(interface{}) { ec.raster.Refresh() })
		s.Bus.On(editor.EventSelectionChanged, func(interface{}) { ec.raster.Refresh() })
		s.Bus.On(editor.EventDrawingModeChanged, func(data interface{}) {
			if ec.onModeLabel != nil {
				if on, _ := data.(bool); on {
					ec.onModeLabel("draw")
				} else {
					ec.onModeLabel("edit")
				}
			}
			ec.raster.Refresh()
		})
		s.Bus.On(editor.EventWarning, func(data interface{}) {
			if ec.onWarning != nil {
				if msg, ok := data.(string); ok {
					ec.onWarning(msg)
				}
			}
		})
	}
	ec.raster.Refresh()
}

// OnWarning sets the callback for user-facing geometry warnings.
func (ec *EditorCanvas) OnWarning(callback func(string)) {
	ec.onWarning = callback
}

// OnModeLabel sets the callback fired when the interaction mode changes.
func (ec *EditorCanvas) OnModeLabel(callback func(string)) {
	ec.onModeLabel = callback
}

// Refresh redraws the canvas.
func (ec *EditorCanvas) Refresh() {
	ec.raster.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (ec *EditorCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(ec.raster)
}

// transform derives the scale-to-fit view transform for the current
// widget size. Recomputed per event and per draw, never cached.
func (ec *EditorCanvas) transform() editor.ViewTransform {
	if ec.photo == nil {
		return editor.ViewTransform{}
	}
	size := ec.Size()
	return editor.FitTransform(
		geometry.NewSize(float64(size.Width), float64(size.Height)),
		ec.photo.Size,
	)
}

// ready reports whether pointer input can be handled.
func (ec *EditorCanvas) ready() bool {
	return ec.photo != nil && ec.session != nil
}

func eventPoint(pos fyne.Position) geometry.Point2D {
	return geometry.NewPoint2D(float64(pos.X), float64(pos.Y))
}

// MouseDown implements desktop.Mouseable.
func (ec *EditorCanvas) MouseDown(ev *desktop.MouseEvent) {
	if !ec.ready() || ev.Button != desktop.MouseButtonPrimary {
		return
	}
	multiSelect := ev.Modifier&fyne.KeyModifierShortcutDefault != 0
	ec.session.Controller.PointerDown(eventPoint(ev.Position), ec.transform(), multiSelect)
}

// MouseUp implements desktop.Mouseable.
func (ec *EditorCanvas) MouseUp(ev *desktop.MouseEvent) {
	if !ec.ready() {
		return
	}
	ec.session.Controller.PointerUp()
}

// Dragged implements fyne.Draggable; drag motion drives vertex and
// polygon drags.
func (ec *EditorCanvas) Dragged(ev *fyne.DragEvent) {
	if !ec.ready() {
		return
	}
	ec.session.Controller.PointerMove(eventPoint(ev.Position), ec.transform())
}

// DragEnd implements fyne.Draggable.
func (ec *EditorCanvas) DragEnd() {
	if !ec.ready() {
		return
	}
	ec.session.Controller.PointerUp()
}

// MouseIn implements desktop.Hoverable.
func (ec *EditorCanvas) MouseIn(ev *desktop.MouseEvent) {
	ec.MouseMoved(ev)
}

// MouseMoved implements desktop.Hoverable; hover motion updates the
// hovered vertex highlight.
func (ec *EditorCanvas) MouseMoved(ev *desktop.MouseEvent) {
	if !ec.ready() {
		return
	}
	ec.session.Controller.PointerMove(eventPoint(ev.Position), ec.transform())
}

// MouseOut implements desktop.Hoverable.
func (ec *EditorCanvas) MouseOut() {
	if !ec.ready() {
		return
	}
	if ec.session.Selection.ClearHovered() {
		ec.raster.Refresh()
	}
}

// FocusGained implements fyne.Focusable.
func (ec *EditorCanvas) FocusGained() {}

// FocusLost implements fyne.Focusable.
func (ec *EditorCanvas) FocusLost() {}

// TypedRune implements fyne.Focusable. "d" toggles drawing mode.
func (ec *EditorCanvas) TypedRune(r rune) {
	if !ec.ready() {
		return
	}
	if r == 'd' || r == 'D' {
		ec.session.Controller.SetDrawing(!ec.session.Controller.Drawing())
	}
}

// TypedKey implements fyne.Focusable. Delete/Backspace removes the
// selected vertices; Escape clears selection, exits drawing mode, and
// cancels any in-progress drag.
func (ec *EditorCanvas) TypedKey(ev *fyne.KeyEvent) {
	if !ec.ready() {
		return
	}
	switch ev.Name {
	case fyne.KeyDelete, fyne.KeyBackspace:
		ec.session.Controller.DeleteSelection()
	case fyne.KeyEscape:
		ec.session.Controller.Escape()
	}
}
