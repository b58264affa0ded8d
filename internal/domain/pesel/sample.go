package pesel

import (
	"context"
	"math/rand/v2"

	"github.com/phrazzld/pesel/internal/domain"
)

// sampleSizeHint caps the capacity reserved before the first draw. Larger
// batches grow by append.
const sampleSizeHint = 1 << 16

// sample draws random candidates until req.Count unique codes are collected.
// More than Params.FailureBudget consecutive collisions abort the batch, so
// each produced code costs at most FailureBudget+1 draws.
func (g *Generator) sample(ctx context.Context, req Request, feasible int) (*Batch, error) {
	digits := req.Sex.Digits()
	next := func() Code {
		d := randomDate(g.rng, req.Range)
		return newDatePrefix(d).code(g.rng.IntN(1000), digits[g.rng.IntN(len(digits))])
	}

	batch := newBatch(StrategySample, req, feasible)
	codes, err := collectUnique(ctx, batch, min(req.Count, feasible), g.params.FailureBudget, next)
	if err != nil {
		return nil, err
	}
	return batch.finish(codes), nil
}

// collectUnique calls next until batch.Requested distinct codes are seen or
// more than budget calls in a row return a code already seen. Draws and
// Aborted are recorded on batch.
func collectUnique(ctx context.Context, batch *Batch, sizeHint, budget int, next func() Code) ([]Code, error) {
	sizeHint = min(sizeHint, sampleSizeHint)
	seen := make(map[Code]struct{}, sizeHint)
	codes := make([]Code, 0, sizeHint)
	failures := 0

	for len(codes) < batch.Requested {
		if err := checkContext(ctx, batch.Draws); err != nil {
			return nil, err
		}

		c := next()
		batch.Draws++

		if _, dup := seen[c]; dup {
			failures++
			if failures > budget {
				batch.Aborted = true
				break
			}
			continue
		}

		seen[c] = struct{}{}
		codes = append(codes, c)
		failures = 0
	}

	return codes, nil
}

// randomDate draws a year uniformly from the range, then a month bounded by
// the range's edge months when the year is an edge year, then a day bounded
// by the edge days only when both year and month sit on that edge. The
// distribution over days is therefore not uniform for partial years.
func randomDate(rng *rand.Rand, r domain.DateRange) domain.BirthDate {
	from, to := r.From, r.To

	year := from.Year() + rng.IntN(to.Year()-from.Year()+1)

	monthLo, monthHi := 1, 12
	if year == from.Year() {
		monthLo = from.Month()
	}
	if year == to.Year() {
		monthHi = to.Month()
	}
	month := monthLo + rng.IntN(monthHi-monthLo+1)

	dayLo, dayHi := 1, domain.DaysInMonth(year, month)
	if year == from.Year() && month == from.Month() {
		dayLo = from.Day()
	}
	if year == to.Year() && month == to.Month() {
		dayHi = to.Day()
	}
	day := dayLo + rng.IntN(dayHi-dayLo+1)

	return domain.MustBirthDate(year, month, day)
}
