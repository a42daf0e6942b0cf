package curve

import "github.com/lixenwraith/starlane/geom"

// Walker steps one actor through its own translated copy of a template
// Owned by a single actor, not safe for concurrent use
type Walker struct {
	path  Path
	index int
}

// NewWalker copies template relocated to origin
func NewWalker(template Path, origin geom.Point) *Walker {
	return &Walker{path: Translate(template, origin.X, origin.Y)}
}

// Next returns the current entry and advances, ok is false once exhausted
func (w *Walker) Next() (Entry, bool) {
	if w.index >= len(w.path) {
		return Entry{}, false
	}
	e := w.path[w.index]
	w.index++
	return e, true
}

// Peek returns the current entry without advancing
func (w *Walker) Peek() (Entry, bool) {
	if w.index >= len(w.path) {
		return Entry{}, false
	}
	return w.path[w.index], true
}

// Done reports whether every entry has been consumed
func (w *Walker) Done() bool {
	return w.index >= len(w.path)
}

// Index returns the position of the next entry
func (w *Walker) Index() int {
	return w.index
}

// Remaining returns how many entries are left
func (w *Walker) Remaining() int {
	return len(w.path) - w.index
}

// Path returns the walker's own path; callers must not modify it
func (w *Walker) Path() Path {
	return w.path
}
