// Package history provides per-glyph undo for the glyph editor.
//
// History keeps one linear chain of full-grid snapshots per codepoint.
// A snapshot is recorded at the end of each stroke, but only when the
// glyph actually differs from the latest snapshot of the same codepoint:
//
//	h := history.New(0) // unlimited depth
//
//	// At stroke end
//	h.Commit(cp, store.Get(cp))
//
//	// Undo
//	switch out := h.Undo(cp); out.Kind {
//	case history.Restored:
//	    store.Put(cp, out.Snapshot)
//	case history.Deleted:
//	    store.Delete(cp)
//	}
//
// Undo restores the previous snapshot. Undoing the first snapshot of a
// codepoint deletes the glyph. There is no redo.
package history
