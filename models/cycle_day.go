package models

// CycleDay is a 1-based index into a shift cycle.
type CycleDay int

// Next returns the following day of a cycle of the given length,
// wrapping from the last day back to day 1.
func (d CycleDay) Next(cycleLength int) CycleDay {
	return CycleDay(int(d)%cycleLength + 1)
}

// Index returns the 0-based bucket index for the day
func (d CycleDay) Index() int {
	return int(d) - 1
}

// Within reports whether the day lies in [1, cycleLength]
func (d CycleDay) Within(cycleLength int) bool {
	return d >= 1 && int(d) <= cycleLength
}
