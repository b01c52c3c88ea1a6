package annotate

// History holds the finalized strokes in drawing order plus the strokes
// taken back by Undo, so they can be restored.
type History struct {
	strokes []Stroke
	undone  []Stroke
}

// Add appends a finalized stroke and forgets anything undone.
func (h *History) Add(s Stroke) {
	h.strokes = append(h.strokes, s)
	h.undone = h.undone[:0]
}

// Undo removes the most recent stroke. It reports whether there was one.
func (h *History) Undo() bool {
	if len(h.strokes) == 0 {
		return false
	}
	last := h.strokes[len(h.strokes)-1]
	h.strokes = h.strokes[:len(h.strokes)-1]
	h.undone = append(h.undone, last)
	return true
}

// Redo restores the most recently undone stroke.
func (h *History) Redo() bool {
	if len(h.undone) == 0 {
		return false
	}
	last := h.undone[len(h.undone)-1]
	h.undone = h.undone[:len(h.undone)-1]
	h.strokes = append(h.strokes, last)
	return true
}

// Strokes returns the finalized strokes. The slice must not be modified.
func (h *History) Strokes() []Stroke {
	return h.strokes
}

// Clear drops everything, including undone strokes.
func (h *History) Clear() {
	h.strokes = nil
	h.undone = nil
}
