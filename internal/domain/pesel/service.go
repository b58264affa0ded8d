package pesel

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/phrazzld/pesel/internal/domain"
)

// Service defines the interface for code generation and validation
type Service interface {
	// Generate produces a batch of unique codes matching req
	Generate(ctx context.Context, req Request, strategy Strategy) (*Batch, error)

	// Validate classifies a code against an expected sex and optional birth date
	Validate(code string, sex domain.Sex, date *domain.BirthDate) Result

	// FeasibleSize reports how many codes exist for one sex within r
	FeasibleSize(r domain.DateRange) int
}

// defaultService is the standard implementation of the Service interface.
// It is safe for concurrent use: every Generate call gets its own Generator
// and random source, and only seed derivation is shared.
type defaultService struct {
	params *Params
	logger *slog.Logger

	mu    sync.Mutex
	seeds *rand.Rand
}

// NewDefaultService creates a new service with default parameters
func NewDefaultService(logger *slog.Logger) Service {
	return NewServiceWithParams(NewDefaultParams(), logger)
}

// NewServiceWithParams creates a new service with custom parameters
func NewServiceWithParams(params *Params, logger *slog.Logger) Service {
	if params == nil {
		params = NewDefaultParams()
	}
	if logger == nil {
		logger = slog.Default()
	}

	var src rand.Source
	if params.Seed != 0 {
		src = rand.NewPCG(params.Seed, params.Seed^0x9e3779b97f4a7c15)
	} else {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}

	return &defaultService{
		params: params,
		logger: logger,
		seeds:  rand.New(src),
	}
}

// Generate implements the Service interface
func (s *defaultService) Generate(ctx context.Context, req Request, strategy Strategy) (*Batch, error) {
	return NewGenerator(s.params, s.nextRand(), s.logger).Generate(ctx, req, strategy)
}

// Validate implements the Service interface
func (s *defaultService) Validate(code string, sex domain.Sex, date *domain.BirthDate) Result {
	return Validate(code, sex, date)
}

// FeasibleSize implements the Service interface
func (s *defaultService) FeasibleSize(r domain.DateRange) int {
	return FeasibleSize(r)
}

func (s *defaultService) nextRand() *rand.Rand {
	s.mu.Lock()
	defer s.mu.Unlock()
	return rand.New(rand.NewPCG(s.seeds.Uint64(), s.seeds.Uint64()))
}
