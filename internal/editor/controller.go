package editor

import (
	"errors"

	"region-editor/pkg/geometry"
)

// dragState is the controller's interaction state. Drawing mode is a
// toggled flag orthogonal to these; modeling the drag as a tagged state
// (rather than independent booleans) makes "dragging a vertex and the
// polygon at once" unrepresentable.
type dragState int

const (
	stateIdle dragState = iota
	stateDraggingVertex
	stateDraggingPolygon
)

// InteractionController turns pointer and keyboard events into mutations
// of the PolygonStore and SelectionModel. All methods take canvas-space
// points; the controller consults the ViewTransform passed with each
// event, so a window resize between events cannot use a stale mapping.
type InteractionController struct {
	store      *PolygonStore
	selection  *SelectionModel
	bus        *Bus
	pickRadius float64

	state     dragState
	dragIndex int              // valid in stateDraggingVertex
	anchor    geometry.Point2D // image space, valid in stateDraggingPolygon
	drawing   bool
}

// NewInteractionController wires a controller to its store and selection.
// Events are emitted on bus after every state change.
func NewInteractionController(store *PolygonStore, selection *SelectionModel, bus *Bus, pickRadius float64) *InteractionController {
	if pickRadius <= 0 {
		pickRadius = DefaultPickRadius
	}
	return &InteractionController{
		store:      store,
		selection:  selection,
		bus:        bus,
		pickRadius: pickRadius,
		state:      stateIdle,
	}
}

// Drawing reports whether drawing mode is active.
func (c *InteractionController) Drawing() bool {
	return c.drawing
}

// SetDrawing toggles drawing mode. Any in-progress drag is abandoned.
func (c *InteractionController) SetDrawing(on bool) {
	if c.drawing == on {
		return
	}
	c.drawing = on
	c.state = stateIdle
	c.bus.Emit(EventDrawingModeChanged, on)
}

// DraggingPolygon reports whether a whole-polygon drag is in progress.
// The renderer uses this for the "region active" stroke color.
func (c *InteractionController) DraggingPolygon() bool {
	return c.state == stateDraggingPolygon
}

// PointerDown handles a press at a canvas-space point. multiSelect is
// true when the platform multi-select modifier is held.
func (c *InteractionController) PointerDown(canvasPt geometry.Point2D, t ViewTransform, multiSelect bool) {
	if !t.Valid() {
		return
	}

	vertices := c.store.Vertices()

	// Precedence 1: a vertex under the pointer.
	if index, ok := FindVertexAt(canvasPt, vertices, t, c.pickRadius); ok {
		if multiSelect {
			c.selection.Toggle(index)
			c.bus.Emit(EventSelectionChanged, nil)
			return
		}
		if !c.selection.Contains(index) {
			c.selection.CollapseTo(index)
			c.bus.Emit(EventSelectionChanged, nil)
		}
		c.state = stateDraggingVertex
		c.dragIndex = index
		return
	}

	// Precedence 2: inside the polygon, not drawing: start a whole-polygon drag.
	if !c.drawing && IsInside(canvasPt, vertices, t) {
		if anchor, ok := t.CanvasToImage(canvasPt); ok {
			c.state = stateDraggingPolygon
			c.anchor = anchor
			return
		}
	}

	// Precedence 3: drawing mode appends a vertex on press, not release.
	if c.drawing {
		if p, ok := t.CanvasToImage(canvasPt); ok {
			if c.store.AddVertex(p) {
				c.bus.Emit(EventGeometryChanged, nil)
			}
		}
		return
	}

	// Precedence 4: empty space deselects everything.
	if c.selection.Count() > 0 {
		c.selection.Clear()
		c.bus.Emit(EventSelectionChanged, nil)
	}
}

// PointerMove handles pointer motion, with or without a button held.
func (c *InteractionController) PointerMove(canvasPt geometry.Point2D, t ViewTransform) {
	if !t.Valid() {
		return
	}

	switch c.state {
	case stateDraggingVertex:
		if p, ok := t.CanvasToImage(canvasPt); ok {
			c.store.MoveVertex(c.dragIndex, p)
			c.bus.Emit(EventGeometryChanged, nil)
		}

	case stateDraggingPolygon:
		p, ok := t.CanvasToImage(canvasPt)
		if !ok {
			return
		}
		delta := p.Sub(c.anchor)
		accepted := c.store.TranslateAll(delta.X, delta.Y, t.Image)
		// The anchor advances even on rejection so the gesture doesn't
		// jump once the pointer comes back inside bounds.
		c.anchor = p
		if accepted {
			c.bus.Emit(EventGeometryChanged, nil)
		}

	default:
		// Hover is purely visual; it never mutates geometry.
		changed := false
		if index, ok := FindVertexAt(canvasPt, c.store.Vertices(), t, c.pickRadius); ok {
			changed = c.selection.SetHovered(index)
		} else {
			changed = c.selection.ClearHovered()
		}
		if changed {
			c.bus.Emit(EventSelectionChanged, nil)
		}
	}
}

// PointerUp ends any drag, returning to idle. The selection survives.
func (c *InteractionController) PointerUp() {
	c.state = stateIdle
}

// DeleteSelection removes all selected vertices. On ErrMinimumVertices a
// warning event is emitted and the selection is left unchanged; on
// success the selection is cleared.
func (c *InteractionController) DeleteSelection() {
	if c.selection.Count() == 0 {
		return
	}
	if err := c.store.RemoveVertices(c.selection.Indices()); err != nil {
		if errors.Is(err, ErrMinimumVertices) {
			c.bus.Emit(EventWarning, "A region needs at least 3 points")
		}
		return
	}
	c.selection.Clear()
	// The hovered index is positional too and may now be out of range.
	c.selection.ClearHovered()
	c.bus.Emit(EventGeometryChanged, nil)
	c.bus.Emit(EventSelectionChanged, nil)
}

// Escape clears the selection, exits drawing mode, and abandons any
// in-progress drag without applying further moves.
func (c *InteractionController) Escape() {
	c.state = stateIdle
	if c.drawing {
		c.drawing = false
		c.bus.Emit(EventDrawingModeChanged, false)
	}
	changed := c.selection.ClearHovered()
	if c.selection.Count() > 0 {
		c.selection.Clear()
		changed = true
	}
	if changed {
		c.bus.Emit(EventSelectionChanged, nil)
	}
}
