package pesel

import (
	"fmt"

	"github.com/google/uuid"
)

// Strategy selects how a batch is produced
type Strategy string

// Possible strategy values
const (
	// StrategyAuto picks enumeration or sampling from the expected yield.
	StrategyAuto Strategy = "auto"

	// StrategyEnumerate materializes the whole feasible space, shuffles it
	// and takes a prefix.
	StrategyEnumerate Strategy = "enumerate"

	// StrategySample draws random candidates until unseen, bounded by the
	// failure budget.
	StrategySample Strategy = "sample"
)

// ParseStrategy converts a configuration value into a Strategy. The empty
// string selects StrategyAuto.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "", StrategyAuto:
		return StrategyAuto, nil
	case StrategyEnumerate, StrategySample:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// Batch is the result of one generation call. Codes are pairwise distinct and
// owned by the caller.
type Batch struct {
	ID       uuid.UUID
	Strategy Strategy
	Codes    []Code

	// Requested is the number of codes asked for; Shortfall is how many of
	// those could not be produced.
	Requested int
	Shortfall int

	// Feasible is the size of the constrained space.
	Feasible int

	// Draws counts candidates synthesized by rejection sampling.
	Draws int

	// Aborted is set when sampling stopped on the failure budget.
	Aborted bool
}

// Complete reports whether every requested code was produced.
func (b *Batch) Complete() bool {
	return b.Shortfall == 0
}

func newBatch(strategy Strategy, req Request, feasible int) *Batch {
	return &Batch{
		ID:        uuid.New(),
		Strategy:  strategy,
		Requested: req.Count,
		Feasible:  feasible,
	}
}

func (b *Batch) finish(codes []Code) *Batch {
	b.Codes = codes
	b.Shortfall = b.Requested - len(codes)
	return b
}
