package pesel

import (
	"context"
	"fmt"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"

	"github.com/phrazzld/pesel/internal/domain"
)

// enumerate materializes every code for req.Sex in req.Range, shuffles the
// set and keeps the first req.Count codes. When the space is smaller than the
// request the whole space is returned and the difference is the shortfall.
func (g *Generator) enumerate(ctx context.Context, req Request, feasible int) (*Batch, error) {
	if feasible > MaxEnumeration {
		return nil, fmt.Errorf("%w: %d codes in %s exceeds %d",
			ErrEnumerationTooLarge, feasible, req.Range, MaxEnumeration)
	}

	batch := newBatch(StrategyEnumerate, req, feasible)

	all, err := enumerateSpace(ctx, req.Range, req.Sex, g.params.Workers)
	if err != nil {
		return nil, err
	}

	k := min(req.Count, len(all))
	shufflePrefix(g.rng, all, k)

	codes := make([]Code, k)
	copy(codes, all[:k])
	return batch.finish(codes), nil
}

// enumerateSpace lists the feasible space in date, sequence, sex digit order.
// With more than one worker the range is split into contiguous partitions
// enumerated concurrently and concatenated in partition order, so the result
// does not depend on the worker count.
func enumerateSpace(ctx context.Context, r domain.DateRange, sex domain.Sex, workers int) ([]Code, error) {
	if workers <= 1 {
		return enumerateRange(ctx, r, sex)
	}

	parts := r.Split(workers)
	results := make([][]Code, len(parts))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, part := range parts {
		eg.Go(func() error {
			codes, err := enumerateRange(egCtx, part, sex)
			if err != nil {
				return err
			}
			results[i] = codes
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	all := make([]Code, 0, FeasibleSize(r))
	for _, codes := range results {
		all = append(all, codes...)
	}
	return all, nil
}

func enumerateRange(ctx context.Context, r domain.DateRange, sex domain.Sex) ([]Code, error) {
	digits := sex.Digits()
	out := make([]Code, 0, r.Days()*1000*len(digits))

	var err error
	r.Each(func(d domain.BirthDate) bool {
		if cerr := ctx.Err(); cerr != nil {
			err = fmt.Errorf("generation interrupted: %w", cerr)
			return false
		}
		p := newDatePrefix(d)
		for seq := 0; seq < 1000; seq++ {
			for _, sd := range digits {
				out = append(out, p.code(seq, sd))
			}
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// shufflePrefix leaves a uniformly random k-subset of codes, in random order,
// in codes[:k]. It is a Fisher-Yates shuffle stopped after k steps.
func shufflePrefix(rng *rand.Rand, codes []Code, k int) {
	n := len(codes)
	for i := 0; i < k && i < n-1; i++ {
		j := i + rng.IntN(n-i)
		codes[i], codes[j] = codes[j], codes[i]
	}
}
