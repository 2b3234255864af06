package editor

import "sort"

// noHover marks the absence of a hovered vertex.
const noHover = -1

// SelectionModel tracks the set of selected vertex indices plus at most
// one hovered index. Indices are positional: the only mutations that
// survive a selection are end-appends (indices unaffected) and removals
// (which clear the selection on success), so the set never goes stale.
type SelectionModel struct {
	selected map[int]bool
	hovered  int
}

// NewSelectionModel creates an empty selection.
func NewSelectionModel() *SelectionModel {
	return &SelectionModel{
		selected: make(map[int]bool),
		hovered:  noHover,
	}
}

// Contains reports whether the index is selected.
func (m *SelectionModel) Contains(index int) bool {
	return m.selected[index]
}

// Count returns the number of selected indices.
func (m *SelectionModel) Count() int {
	return len(m.selected)
}

// Indices returns the selected indices in ascending order.
func (m *SelectionModel) Indices() []int {
	out := make([]int, 0, len(m.selected))
	for i := range m.selected {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Toggle flips the index's membership (additive multi-select).
func (m *SelectionModel) Toggle(index int) {
	if m.selected[index] {
		delete(m.selected, index)
	} else {
		m.selected[index] = true
	}
}

// CollapseTo replaces the selection with the single given index.
func (m *SelectionModel) CollapseTo(index int) {
	for i := range m.selected {
		delete(m.selected, i)
	}
	m.selected[index] = true
}

// Clear empties the selection set.
func (m *SelectionModel) Clear() {
	for i := range m.selected {
		delete(m.selected, i)
	}
}

// Hovered returns the hovered index; ok is false when nothing is hovered.
func (m *SelectionModel) Hovered() (int, bool) {
	if m.hovered == noHover {
		return 0, false
	}
	return m.hovered, true
}

// SetHovered updates the hovered index. Returns true if it changed.
func (m *SelectionModel) SetHovered(index int) bool {
	if m.hovered == index {
		return false
	}
	m.hovered = index
	return true
}

// ClearHovered clears the hovered index. Returns true if it changed.
func (m *SelectionModel) ClearHovered() bool {
	return m.SetHovered(noHover)
}
