package protocol

import "strings"

// Pair is one flagged measurement attempt: the ancilla's syndrome bit and
// the flag qubit's outcome. A Pair with Measured=false is the sentinel for a
// generator the protocol never attempted.
type Pair struct {
	Syndrome byte
	Flag     byte
	Measured bool
}

// Sentinel returns the canonical unmeasured Pair.
func Sentinel() Pair { return Pair{} }

// String renders the pair as two digits ("01" = syndrome 0, flag 1), or
// "--" for a sentinel.
func (p Pair) String() string {
	if !p.Measured {
		return "--"
	}
	return string([]byte{'0' + p.Syndrome, '0' + p.Flag})
}

// FirstRecord is the ordered first-subround record: one Pair per flagged
// generator attempt, grown monotonically within a round and padded with
// sentinels once the protocol short-circuits.
type FirstRecord []Pair

// Pad appends sentinel pairs until the record has length n.
func (r FirstRecord) Pad(n int) FirstRecord {
	for len(r) < n {
		r = append(r, Sentinel())
	}
	return r
}

// Key returns the canonical lookup key, pairs joined by single spaces,
// e.g. "00 01 -- --".
func (r FirstRecord) Key() string {
	parts := make([]string, len(r))
	for i, p := range r {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

// SecondRecord is the second-subround record: one raw syndrome bit per
// generator from the unflagged pass, present only after an escalation.
type SecondRecord []byte

// Key returns the canonical lookup key, bits concatenated, e.g. "0100".
func (r SecondRecord) Key() string {
	b := make([]byte, len(r))
	for i, bit := range r {
		b[i] = '0' + bit
	}
	return string(b)
}

// Result is one completed extraction round. Second is nil when every flagged
// attempt came back flag-clear with zero syndrome (no remeasurement).
type Result struct {
	First  FirstRecord
	Second SecondRecord
}

// Escalated reports whether the round triggered the unflagged pass.
func (r Result) Escalated() bool { return r.Second != nil }
