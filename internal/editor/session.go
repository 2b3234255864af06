package editor

import (
	"region-editor/internal/region"
	"region-editor/pkg/geometry"
)

// Session is one editing pass over a single region: it owns the store,
// selection, and controller for that region's boundary and hands the
// edited result back through the host callbacks on save. Editor-internal
// state (selection, hover, drag) dies with the session.
type Session struct {
	Store      *PolygonStore
	Selection  *SelectionModel
	Controller *InteractionController
	Bus        *Bus

	region   region.Region
	original []geometry.Point2D

	onSave  func(region.Region)
	onClose func()
}

// NewSession opens an editing session for a region. onSave receives the
// updated region when the user saves; onClose fires when the session is
// discarded. Either callback may be nil.
func NewSession(r region.Region, pickRadius float64, onSave func(region.Region), onClose func()) *Session {
	bus := NewBus()
	store := NewPolygonStore(r.Boundary)
	selection := NewSelectionModel()

	original := make([]geometry.Point2D, len(r.Boundary))
	copy(original, r.Boundary)

	return &Session{
		Store:      store,
		Selection:  selection,
		Controller: NewInteractionController(store, selection, bus, pickRadius),
		Bus:        bus,
		region:     r,
		original:   original,
		onSave:     onSave,
		onClose:    onClose,
	}
}

// Region returns the region as it was when the session opened, plus any
// label edit made since.
func (s *Session) Region() region.Region {
	return s.region
}

// SetLabel records a label edit so Save carries it.
func (s *Session) SetLabel(label string) {
	s.region.Label = label
}

// EditedArea returns the polygon area of the current boundary in image
// pixels, for display only. The persisted area estimate is caller-owned.
func (s *Session) EditedArea() float64 {
	return geometry.PolygonArea(s.Store.Vertices())
}

// RestoreOriginal resets the boundary to the one the session opened with
// and clears the selection.
func (s *Session) RestoreOriginal() {
	s.Store.Reset(s.original)
	s.Selection.Clear()
	s.Bus.Emit(EventGeometryChanged, nil)
	s.Bus.Emit(EventSelectionChanged, nil)
}

// Save hands the edited region to the host. The boundary is replaced
// with the edited vertex list and the user-modified flag is set; id and
// confidence pass through unchanged.
func (s *Session) Save() region.Region {
	updated := s.region
	updated.Boundary = s.Store.Vertices()
	updated.UserModified = true
	if s.onSave != nil {
		s.onSave(updated)
	}
	return updated
}

// Close discards the session.
func (s *Session) Close() {
	if s.onClose != nil {
		s.onClose()
	}
}
