package bookkeeper

import "iter"

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains returns true if date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Months returns the inclusive number of calendar months the range touches.
// A range within a single month counts as 1; budgets are pro-rated with it.
func (r Range) Months() int {
	n := (r.To.Year()-r.From.Year())*12 + int(r.To.Month()-r.From.Month()) + 1
	if n < 1 {
		return 1
	}
	return n
}

// Days returns an iterator that yields each date within the range, inclusive.
func (r Range) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.From; !d.After(r.To); d = d.Add(1) {
			if !yield(d) {
				return
			}
		}
	}
}
