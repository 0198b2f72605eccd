package protocol

// Test-only exports. Kept out of the public API surface; mirrors the
// export-for-test convention used across the repo.

// RunUnflaggedPassForTest exposes the unflagged pass so tests can exercise
// its entry-status precondition directly.
func (e *Extractor) RunUnflaggedPassForTest(p float64) (SecondRecord, error) {
	return e.runUnflaggedPass(p)
}

// SetStatusForTest forces the protocol status.
func (e *Extractor) SetStatusForTest(s Status) { e.status = s }
