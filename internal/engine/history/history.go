package history

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/matteosandrin/online-pixel-font-creator/internal/engine/glyph"
)

// Entry is one recorded glyph snapshot.
type Entry struct {
	ID        string
	Codepoint glyph.Codepoint
	Snapshot  *glyph.Grid
	Timestamp time.Time
}

// OutcomeKind describes what an undo did.
type OutcomeKind uint8

const (
	// Nothing means there was no history for the codepoint, or only the
	// oldest kept snapshot of a trimmed chain remained.
	Nothing OutcomeKind = iota
	// Restored means the glyph should be set to Outcome.Snapshot.
	Restored
	// Deleted means the first snapshot was undone and the glyph should
	// be removed.
	Deleted
)

// String returns a human-readable outcome name.
func (k OutcomeKind) String() string {
	switch k {
	case Nothing:
		return "nothing"
	case Restored:
		return "restored"
	case Deleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Outcome is the result of an undo.
type Outcome struct {
	Kind OutcomeKind

	// Snapshot is a private copy of the snapshot to restore; it is only
	// set when Kind is Restored.
	Snapshot *glyph.Grid
}

// History manages the per-codepoint snapshot chains.
type History struct {
	mu sync.Mutex

	chains map[glyph.Codepoint][]*Entry
	total  int

	// trimmed marks chains that lost their first snapshot to the limit.
	trimmed map[glyph.Codepoint]bool

	// limit caps the entries kept per codepoint; 0 is unlimited.
	limit int
}

// New creates a history. limit caps the snapshots kept per codepoint;
// zero or negative means unlimited depth.
func New(limit int) *History {
	if limit < 0 {
		limit = 0
	}
	return &History{
		chains:  make(map[glyph.Codepoint][]*Entry),
		trimmed: make(map[glyph.Codepoint]bool),
		limit:   limit,
	}
}

// SetLimit changes the per-codepoint depth. Existing chains longer than
// the new limit are trimmed from the oldest end.
func (h *History) SetLimit(limit int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	h.limit = limit
	for cp := range h.chains {
		h.trimLocked(cp)
	}
}

// Commit records g for cp if it differs from the latest snapshot of cp,
// or if cp has no snapshot yet and g exists. It reports whether an entry
// was appended. A nil g means the glyph does not exist.
func (h *History) Commit(cp glyph.Codepoint, g *glyph.Grid) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.shouldCommitLocked(cp, g) {
		return false
	}

	h.chains[cp] = append(h.chains[cp], &Entry{
		ID:        uuid.New().String(),
		Codepoint: cp,
		Snapshot:  g.Clone(),
		Timestamp: time.Now(),
	})
	h.total++
	h.trimLocked(cp)
	return true
}

// shouldCommitLocked compares g with the latest snapshot cell by cell.
func (h *History) shouldCommitLocked(cp glyph.Codepoint, g *glyph.Grid) bool {
	if g == nil {
		return false
	}
	chain := h.chains[cp]
	if len(chain) == 0 {
		return true
	}
	return !chain[len(chain)-1].Snapshot.Equal(g)
}

// trimLocked enforces the per-codepoint limit.
func (h *History) trimLocked(cp glyph.Codepoint) {
	chain := h.chains[cp]
	if h.limit == 0 || len(chain) <= h.limit {
		return
	}
	excess := len(chain) - h.limit
	h.chains[cp] = chain[excess:]
	h.total -= excess
	h.trimmed[cp] = true
}

// Undo removes the latest snapshot of cp and reports how the glyph
// should be restored. Only the first snapshot ever recorded for cp yields
// Deleted; the oldest kept snapshot of a trimmed chain is never removed.
func (h *History) Undo(cp glyph.Codepoint) Outcome {
	h.mu.Lock()
	defer h.mu.Unlock()

	chain := h.chains[cp]
	switch len(chain) {
	case 0:
		return Outcome{Kind: Nothing}
	case 1:
		if h.trimmed[cp] {
			return Outcome{Kind: Nothing}
		}
		delete(h.chains, cp)
		h.total--
		return Outcome{Kind: Deleted}
	}

	chain[len(chain)-1] = nil
	chain = chain[:len(chain)-1]
	h.chains[cp] = chain
	h.total--
	return Outcome{
		Kind:     Restored,
		Snapshot: chain[len(chain)-1].Snapshot.Clone(),
	}
}

// CanUndo reports whether Undo(cp) would change anything.
func (h *History) CanUndo(cp glyph.Codepoint) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	n := len(h.chains[cp])
	return n > 1 || (n == 1 && !h.trimmed[cp])
}

// Len returns the number of snapshots recorded for cp.
func (h *History) Len(cp glyph.Codepoint) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.chains[cp])
}

// Total returns the number of snapshots across all codepoints.
func (h *History) Total() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.total
}

// Latest returns a copy of the latest entry for cp, or nil.
func (h *History) Latest(cp glyph.Codepoint) *Entry {
	h.mu.Lock()
	defer h.mu.Unlock()

	chain := h.chains[cp]
	if len(chain) == 0 {
		return nil
	}
	e := *chain[len(chain)-1]
	e.Snapshot = e.Snapshot.Clone()
	return &e
}

// Clear drops the history of cp.
func (h *History) Clear(cp glyph.Codepoint) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.total -= len(h.chains[cp])
	delete(h.chains, cp)
	delete(h.trimmed, cp)
}

// Reset drops all history.
func (h *History) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.chains = make(map[glyph.Codepoint][]*Entry)
	h.trimmed = make(map[glyph.Codepoint]bool)
	h.total = 0
}
