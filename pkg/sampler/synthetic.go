package sampler

import (
	"context"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/rs/zerolog"

	"github.com/zoneprof/zoneprof/pkg/profile"
)

// DefaultInterval approximates the fastest tick rate of a real
// sampling facility.
const DefaultInterval = time.Millisecond

// StackDump is a pre-rendered call stack implementing profile.Thread.
type StackDump []string

func (d StackDump) DumpStack(_ string, depth int) string {
	frames := d
	if depth > 0 && len(frames) > depth {
		frames = frames[:depth]
	}

	var b strings.Builder
	for _, frame := range frames {
		b.WriteString(frame)
		b.WriteString(profile.FrameDelimiter)
	}

	return b.String()
}

// Synthetic replays a weighted workload of canned samples at a fixed
// interval, honoring the profile.Sampler contract.
type Synthetic struct {
	rand *rand.Rand

	*SyntheticOptions
}

func NewSynthetic(opts ...SyntheticOption) *Synthetic {
	s := &Synthetic{
		SyntheticOptions: &SyntheticOptions{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.ctx == nil {
		s.ctx = context.Background()
	}
	if s.seed == 0 {
		s.seed = time.Now().UnixNano()
	}
	s.rand = rand.New(rand.NewSource(s.seed))
	if s.logger == nil {
		logger := log.New(log.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		s.logger = &logger
	}

	return s
}

// Start begins invoking cb at the workload interval. The mode
// descriptor is accepted for contract parity; the synthetic facility
// only has one speed.
func (s *Synthetic) Start(_ string, cb profile.Callback) error {
	if cb == nil {
		return ErrNoCallback
	}
	if s.workload == nil || len(s.workload.Events) == 0 {
		return ErrNoEvents
	}

	var totalWeight int
	for _, evt := range s.workload.Events {
		if evt.Weight <= 0 {
			return errors.Wrapf(ErrBadWeight, "event with vmstate %q", evt.VMState)
		}
		if len(evt.VMState) != 1 {
			return errors.Wrapf(ErrBadVMState, "vmstate %q", evt.VMState)
		}
		totalWeight += evt.Weight
	}

	interval := s.workload.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	s.logger.Debug().Int64("seed", s.seed).Dur("interval", interval).Msg("starting synthetic sampler")
	go s.loop(interval, totalWeight, cb)

	return nil
}

func (s *Synthetic) loop(interval time.Duration, totalWeight int, cb profile.Callback) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			evt := s.pick(totalWeight)
			cb(StackDump(evt.Frames), 1, evt.VMState[0])
		}
	}
}

func (s *Synthetic) pick(totalWeight int) *WorkloadEvent {
	n := s.rand.Intn(totalWeight)
	for i := range s.workload.Events {
		evt := &s.workload.Events[i]
		n -= evt.Weight
		if n < 0 {
			return evt
		}
	}

	return &s.workload.Events[len(s.workload.Events)-1]
}
