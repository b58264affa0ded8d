package pesel

// Default generation parameters
const (
	DefaultFailureBudget    = 80
	DefaultEnumerationLimit = 2_000_000
	DefaultWorkers          = 1

	// MaxEnumeration caps the number of codes a single enumeration may
	// materialize, regardless of strategy selection.
	MaxEnumeration = 50_000_000
)

// Params defines all configurable parameters for code generation
type Params struct {
	// FailureBudget is the number of consecutive collisions rejection
	// sampling tolerates before aborting the batch.
	FailureBudget int

	// EnumerationLimit is the largest feasible space StrategyAuto will
	// enumerate exhaustively.
	EnumerationLimit int

	// Workers is the number of goroutines enumeration fans out to.
	Workers int

	// Seed makes the sequence of generated batches reproducible. Zero means
	// a random seed.
	Seed uint64
}

// ParamsConfig allows overriding the default parameters when creating a new Params instance
type ParamsConfig struct {
	FailureBudget    int
	EnumerationLimit int
	Workers          int
	Seed             uint64
}

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() *Params {
	return &Params{
		FailureBudget:    DefaultFailureBudget,
		EnumerationLimit: DefaultEnumerationLimit,
		Workers:          DefaultWorkers,
	}
}

// NewParams creates a new Params instance with custom configuration.
// Zero or negative values keep the defaults.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.FailureBudget > 0 {
		params.FailureBudget = config.FailureBudget
	}
	if config.EnumerationLimit > 0 {
		params.EnumerationLimit = config.EnumerationLimit
	}
	if config.Workers > 0 {
		params.Workers = config.Workers
	}
	params.Seed = config.Seed

	return params
}
