package sampler

import (
	"context"

	log "github.com/rs/zerolog"
)

type SyntheticOptions struct {
	ctx      context.Context
	workload *Workload
	seed     int64
	logger   *log.Logger
}

type SyntheticOption func(*Synthetic)

// WithContext bounds the sampler's lifetime; a real facility never
// stops, the synthetic one ends with its demo or test.
func WithContext(ctx context.Context) SyntheticOption {
	return func(s *Synthetic) {
		s.ctx = ctx
	}
}

func WithWorkload(workload *Workload) SyntheticOption {
	return func(s *Synthetic) {
		s.workload = workload
	}
}

// WithSeed makes the weighted event sequence deterministic.
func WithSeed(seed int64) SyntheticOption {
	return func(s *Synthetic) {
		s.seed = seed
	}
}

func WithLogger(logger *log.Logger) SyntheticOption {
	return func(s *Synthetic) {
		s.logger = logger
	}
}
