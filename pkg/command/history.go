package command

import (
	"fmt"

	"github.com/wesen/diagrail/pkg/diagram"
)

// DefaultCapacity bounds the history when no capacity is configured.
const DefaultCapacity = 200

// Entry describes one history slot for display.
type Entry struct {
	Kind        Kind
	Description string
	Done        bool
}

// History is a linear undo/redo list over one model. Entries before the
// cursor are done; entries at or after it are undone and get discarded by
// the next push.
type History struct {
	model    *diagram.Model
	entries  []Command
	cursor   int
	capacity int
	onChange []func()
}

// NewHistory creates a history for m. A capacity <= 0 means unbounded.
func NewHistory(m *diagram.Model, capacity int) *History {
	return &History{model: m, capacity: capacity}
}

// OnChange registers fn to run after every push, undo, redo or clear.
func (h *History) OnChange(fn func()) {
	h.onChange = append(h.onChange, fn)
}

func (h *History) changed() {
	for _, fn := range h.onChange {
		fn()
	}
}

// Execute applies cmd and pushes it. A command whose Apply fails is not
// pushed and the error is returned.
func (h *History) Execute(cmd Command) error {
	if err := cmd.Apply(h.model); err != nil {
		return fmt.Errorf("%s: %w", cmd.Kind(), err)
	}
	h.push(cmd)
	return nil
}

// Record pushes cmd without applying it, for mutations that already
// happened live during a gesture.
func (h *History) Record(cmd Command) {
	h.push(cmd)
}

func (h *History) push(cmd Command) {
	h.entries = append(h.entries[:h.cursor], cmd)
	if h.capacity > 0 && len(h.entries) > h.capacity {
		drop := len(h.entries) - h.capacity
		h.entries = append(h.entries[:0], h.entries[drop:]...)
	}
	h.cursor = len(h.entries)
	h.changed()
}

// Undo reverts the most recent done command. It reports false when there
// is nothing to undo.
func (h *History) Undo() (bool, error) {
	if !h.CanUndo() {
		return false, nil
	}
	cmd := h.entries[h.cursor-1]
	if err := cmd.Revert(h.model); err != nil {
		return false, fmt.Errorf("undo %s: %w", cmd.Kind(), err)
	}
	h.cursor--
	h.changed()
	return true, nil
}

// Redo re-applies the first undone command.
func (h *History) Redo() (bool, error) {
	if !h.CanRedo() {
		return false, nil
	}
	cmd := h.entries[h.cursor]
	if err := cmd.Apply(h.model); err != nil {
		return false, fmt.Errorf("redo %s: %w", cmd.Kind(), err)
	}
	h.cursor++
	h.changed()
	return true, nil
}

func (h *History) CanUndo() bool { return h.cursor > 0 }

func (h *History) CanRedo() bool { return h.cursor < len(h.entries) }

// Len returns the number of entries, done or not.
func (h *History) Len() int { return len(h.entries) }

// Cursor returns the number of done entries.
func (h *History) Cursor() int { return h.cursor }

// Capacity returns the configured bound, 0 for unbounded.
func (h *History) Capacity() int { return h.capacity }

// Clear forgets every entry without touching the model.
func (h *History) Clear() {
	h.entries = nil
	h.cursor = 0
	h.changed()
}

// Entries lists the history oldest first.
func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	for i, c := range h.entries {
		out[i] = Entry{Kind: c.Kind(), Description: c.Description(), Done: i < h.cursor}
	}
	return out
}

