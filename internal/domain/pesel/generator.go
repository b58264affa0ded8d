package pesel

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/phrazzld/pesel/internal/domain"
)

// codesPerDay is the number of (sequence, sex digit) combinations for one
// birth date and one sex.
const codesPerDay = 1000 * 5

// ctxCheckInterval is how many loop iterations pass between context checks.
const ctxCheckInterval = 4096

// FeasibleSize returns the number of distinct codes for one sex within r.
func FeasibleSize(r domain.DateRange) int {
	return r.Days() * codesPerDay
}

// Generator produces batches of unique codes. A Generator owns its random
// source and is not safe for concurrent use; create one per goroutine.
type Generator struct {
	params *Params
	rng    *rand.Rand
	logger *slog.Logger
}

// NewGenerator creates a Generator drawing from rng. A nil logger uses slog.Default().
func NewGenerator(params *Params, rng *rand.Rand, logger *slog.Logger) *Generator {
	if params == nil {
		params = NewDefaultParams()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{params: params, rng: rng, logger: logger}
}

// Generate produces a batch for req using strategy. StrategyAuto resolves to
// enumeration when the feasible space is within Params.EnumerationLimit or
// when the request would consume the whole space, and to sampling otherwise.
func (g *Generator) Generate(ctx context.Context, req Request, strategy Strategy) (*Batch, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	feasible := FeasibleSize(req.Range)
	resolved := g.resolveStrategy(strategy, req, feasible)

	var (
		batch *Batch
		err   error
	)
	switch {
	case req.Count == 0 && (resolved == StrategyEnumerate || resolved == StrategySample):
		batch = newBatch(resolved, req, feasible).finish([]Code{})
	case resolved == StrategyEnumerate:
		batch, err = g.enumerate(ctx, req, feasible)
	case resolved == StrategySample:
		batch, err = g.sample(ctx, req, feasible)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
	if err != nil {
		return nil, err
	}

	g.logger.Debug("generated batch",
		"batch_id", batch.ID,
		"strategy", batch.Strategy,
		"sex", req.Sex,
		"range", req.Range.String(),
		"requested", batch.Requested,
		"produced", len(batch.Codes),
		"shortfall", batch.Shortfall,
		"feasible", batch.Feasible)
	if batch.Aborted {
		g.logger.Warn("failure budget exhausted, batch cut short",
			"batch_id", batch.ID,
			"failure_budget", g.params.FailureBudget,
			"produced", len(batch.Codes),
			"shortfall", batch.Shortfall)
	}
	return batch, nil
}

// Enumerate produces a batch with StrategyEnumerate.
func (g *Generator) Enumerate(ctx context.Context, req Request) (*Batch, error) {
	return g.Generate(ctx, req, StrategyEnumerate)
}

// Sample produces a batch with StrategySample.
func (g *Generator) Sample(ctx context.Context, req Request) (*Batch, error) {
	return g.Generate(ctx, req, StrategySample)
}

func (g *Generator) resolveStrategy(strategy Strategy, req Request, feasible int) Strategy {
	if strategy != StrategyAuto {
		return strategy
	}
	if feasible <= g.params.EnumerationLimit {
		return StrategyEnumerate
	}
	if req.Count >= feasible && feasible <= MaxEnumeration {
		return StrategyEnumerate
	}
	return StrategySample
}

func checkContext(ctx context.Context, i int) error {
	if i%ctxCheckInterval != 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("generation interrupted: %w", err)
	}
	return nil
}
