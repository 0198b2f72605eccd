package decoder

import (
	"github.com/dhruvbhq/lowdepthflagqec/protocol"
	"github.com/dhruvbhq/lowdepthflagqec/symplectic"
)

// Inner is the second-level table: canonical second-subround key → correction
// over data qubits.
type Inner map[string]symplectic.Vector

// Entry is one outer-table value: either a terminal correction (Inner nil)
// or an inner table selected by the second-subround record.
type Entry struct {
	Terminal symplectic.Vector
	Inner    Inner
}

// Table is the two-level lookup table: canonical first-subround key → Entry.
type Table map[string]Entry

// Decode resolves res against t.
//
// Steps:
//  1. Outer lookup on the first-subround key; miss → no correction.
//  2. Terminal entry → its correction, regardless of a second subround.
//  3. Otherwise inner lookup on the second-subround key; absent record or
//     miss → no correction.
//
// The returned vector is shared table data; callers must not mutate it.
func Decode(t Table, res protocol.Result) (symplectic.Vector, bool) {
	entry, ok := t[res.First.Key()]
	if !ok {
		return nil, false
	}
	if entry.Inner == nil {
		return entry.Terminal, entry.Terminal != nil
	}
	if res.Second == nil {
		return nil, false
	}
	corr, ok := entry.Inner[res.Second.Key()]
	return corr, ok
}
