package domain

import "fmt"

// DateRange is an inclusive span of birth dates.
type DateRange struct {
	From BirthDate
	To   BirthDate
}

// NewDateRange creates a validated DateRange.
// Returns ErrInvalidDateRange if from is after to or either end is unset.
func NewDateRange(from, to BirthDate) (DateRange, error) {
	if from.IsZero() || to.IsZero() {
		return DateRange{}, fmt.Errorf("%w: both ends are required", ErrInvalidDateRange)
	}
	if from.After(to) {
		return DateRange{}, fmt.Errorf("%w: %s is after %s", ErrInvalidDateRange, from, to)
	}
	return DateRange{From: from, To: to}, nil
}

// ParseDateRange parses both ends with ParseBirthDate and builds the range.
func ParseDateRange(from, to string) (DateRange, error) {
	f, err := ParseBirthDate(from)
	if err != nil {
		return DateRange{}, fmt.Errorf("date_from: %w", err)
	}
	t, err := ParseBirthDate(to)
	if err != nil {
		return DateRange{}, fmt.Errorf("date_to: %w", err)
	}
	return NewDateRange(f, t)
}

// SingleDay returns the range containing exactly d.
func SingleDay(d BirthDate) DateRange {
	return DateRange{From: d, To: d}
}

// Days returns the number of calendar days in the range, both ends included.
func (r DateRange) Days() int {
	if r.From.IsZero() || r.To.IsZero() || r.From.After(r.To) {
		return 0
	}
	return r.To.dayNumber() - r.From.dayNumber() + 1
}

// Contains reports whether d falls inside the range.
func (r DateRange) Contains(d BirthDate) bool {
	return !d.Before(r.From) && !d.After(r.To)
}

// Each calls fn for every day in the range in ascending order, stopping
// early if fn returns false.
func (r DateRange) Each(fn func(BirthDate) bool) {
	n := r.Days()
	start := r.From.Time()
	for i := 0; i < n; i++ {
		t := start.AddDate(0, 0, i)
		if !fn(BirthDate{year: t.Year(), month: int(t.Month()), day: t.Day()}) {
			return
		}
	}
}

// Split partitions the range into at most parts contiguous, non-overlapping
// sub-ranges of near-equal length, in ascending order. It never returns more
// parts than there are days.
func (r DateRange) Split(parts int) []DateRange {
	days := r.Days()
	if days == 0 {
		return nil
	}
	if parts < 1 {
		parts = 1
	}
	if parts > days {
		parts = days
	}

	out := make([]DateRange, 0, parts)
	start := r.From.Time()
	offset := 0
	for i := 0; i < parts; i++ {
		size := days / parts
		if i < days%parts {
			size++
		}
		from := start.AddDate(0, 0, offset)
		to := start.AddDate(0, 0, offset+size-1)
		out = append(out, DateRange{
			From: BirthDate{year: from.Year(), month: int(from.Month()), day: from.Day()},
			To:   BirthDate{year: to.Year(), month: int(to.Month()), day: to.Day()},
		})
		offset += size
	}
	return out
}

// String formats the range as FROM..TO.
func (r DateRange) String() string {
	return r.From.String() + ".." + r.To.String()
}
