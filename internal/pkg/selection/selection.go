// Package selection tracks a single selected position among a fixed number of options
// and notifies a listener whenever the selection changes.
package selection

import "errors"

// None is reported as the previous or next position when nothing is selected.
const None = -1

var ErrOutOfRange = errors.New("selection out of range")

type ChangeFunc func(prev, next int)

// Tracker is not safe for concurrent mutation; it belongs to a single flow.
type Tracker struct {
	size     int
	selected int
	onChange ChangeFunc
}

func NewTracker(size int) *Tracker {
	if size < 0 {
		size = 0
	}
	return &Tracker{size: size, selected: None}
}

func (t *Tracker) Size() int { return t.size }

// OnChange replaces the listener. A nil listener disables notifications.
func (t *Tracker) OnChange(fn ChangeFunc) {
	t.onChange = fn
}

// Select marks position i. Re-selecting the current position is a no-op.
func (t *Tracker) Select(i int) error {
	if i < 0 || i >= t.size {
		return ErrOutOfRange
	}
	t.set(i)
	return nil
}

func (t *Tracker) Clear() {
	t.set(None)
}

func (t *Tracker) Selected() (int, bool) {
	if t.selected == None {
		return None, false
	}
	return t.selected, true
}

// Reset clears the selection and resizes the tracker for a new set of options.
func (t *Tracker) Reset(size int) {
	if size < 0 {
		size = 0
	}
	t.Clear()
	t.size = size
}

func (t *Tracker) set(next int) {
	prev := t.selected
	if prev == next {
		return
	}
	t.selected = next
	if t.onChange != nil {
		t.onChange(prev, next)
	}
}
