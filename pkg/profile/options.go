package profile

import (
	"time"

	log "github.com/rs/zerolog"
)

type SessionOptions struct {
	sampler    Sampler
	clock      func() time.Time
	stackDepth int
	logger     *log.Logger
}

type SessionOption func(*Session)

// WithSampler wires the external sampling facility started on the
// first push.
func WithSampler(sampler Sampler) SessionOption {
	return func(s *Session) {
		s.sampler = sampler
	}
}

// WithClock replaces the wall clock, for deterministic timing in
// tests.
func WithClock(clock func() time.Time) SessionOption {
	return func(s *Session) {
		s.clock = clock
	}
}

// WithStackDepth bounds the frames requested per stack dump.
func WithStackDepth(depth int) SessionOption {
	return func(s *Session) {
		s.stackDepth = depth
	}
}

func WithLogger(logger *log.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}
