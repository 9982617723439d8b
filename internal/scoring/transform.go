package scoring

// SkipValue is the sentinel meaning "question skipped". It passes through
// every transform unchanged and is never added to a domain sum.
const SkipValue = -1

// Transform converts a raw answer into its stored value. Reverse-scored
// questions are inverted on the 0-4 scale before persistence so that domain
// sums can be computed by straight addition. Out-of-range values pass
// through untouched; validating them is the caller's job.
func Transform(raw int, reverse bool) int {
	if raw == SkipValue || !reverse {
		return raw
	}
	if raw < 0 || raw > 4 {
		return raw
	}
	return 4 - raw
}

// Unreverse recovers the originally selected value from a stored
// reverse-scored answer, so re-displayed answers show what the subject
// actually picked. It is its own inverse.
func Unreverse(stored int) int {
	return Transform(stored, true)
}

// Display returns the value to show when re-hydrating a saved answer.
func Display(stored int, reverse bool) int {
	if reverse {
		return Unreverse(stored)
	}
	return stored
}
