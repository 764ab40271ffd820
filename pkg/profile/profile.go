// Package profile implements a zone-based statistical sampling
// profiler: application code brackets regions of interest by pushing
// and popping named zones, an external sampling facility delivers
// periodic call-stack samples, and the accumulated per-zone statistics
// are rendered into a ranked textual report.
package profile

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"
	log "github.com/rs/zerolog"
)

// SamplerModeFastest asks the sampling facility for its maximum
// supported frequency.
const SamplerModeFastest = "fastest"

// Thread is the handle the sampling facility passes to the callback.
// DumpStack returns frame descriptors formatted per format and joined
// by the frame delimiter, at most depth frames, most recent first.
type Thread interface {
	DumpStack(format string, depth int) string
}

// Callback is invoked by the sampling facility for every batch of
// sample ticks. It must not block and must not overlap an invocation
// of itself.
type Callback func(th Thread, samples int, vmstate byte)

// Sampler abstracts the external sampling facility. Once started it
// runs for the rest of the process; there is no stop.
type Sampler interface {
	Start(mode string, cb Callback) error
}

// Session is one process-wide profiling session: the zone registry,
// the active zone stack, and the per-zone statistics and timing. The
// embedding application constructs it explicitly and passes it around;
// there is no package-level singleton.
//
// A single mutex guards all state, making the sample callback atomic
// with respect to Push, Pop and Report.
type Session struct {
	mu sync.Mutex

	registry *Registry
	active   []ZoneID
	stats    map[ZoneID]*ZoneStats
	timing   map[ZoneID]*ZoneTiming

	running   bool
	startedAt time.Time
	nextRunID int
	ticks     uint64

	*SessionOptions
}

func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		SessionOptions: &SessionOptions{},
		registry:       NewRegistry(),
		stats:          make(map[ZoneID]*ZoneStats),
		timing:         make(map[ZoneID]*ZoneTiming),
		nextRunID:      1,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	if s.stackDepth == 0 {
		s.stackDepth = DefaultStackDepth
	}
	if s.logger == nil {
		logger := log.New(log.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		s.logger = &logger
	}

	return s
}

// Push opens a zone. An empty name synthesizes a unique "Run #<n>"
// name. A name already on the active stack is rejected; a previously
// popped name may be pushed again and resumes its statistics entry.
func (s *Session) Push(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == "" {
		name = fmt.Sprintf("Run #%d", s.nextRunID)
		s.nextRunID++
	}
	if id, ok := s.registry.Lookup(name); ok && s.isActive(id) {
		return errors.Wrapf(ErrDuplicateZone, "zone %q: active zone names must be unique", name)
	}

	id := s.registry.RegisterOrGet(name)
	if _, ok := s.stats[id]; !ok {
		s.stats[id] = NewZoneStats()
		s.timing[id] = &ZoneTiming{}
	}
	s.active = append(s.active, id)

	// The sampler is a one-shot, session-level switch: the very first
	// push starts it and it keeps running for the rest of the process.
	// Later empty-to-nonempty transitions do not restart it.
	if !s.running {
		s.running = true
		s.startedAt = s.clock()
		if s.sampler != nil {
			if err := s.sampler.Start(SamplerModeFastest, s.HandleSample); err != nil {
				return errors.Wrap(err, "failed to start the sampler")
			}
		}
		s.logger.Debug().Time("started_at", s.startedAt).Msg("profiling session started")
	}

	t := s.timing[id]
	if t.start.IsZero() {
		t.start = s.clock()
	}
	s.logger.Debug().Str("zone", name).Int("active", len(s.active)).Msg("zone pushed")

	return nil
}

// Pop closes the most recently pushed zone and adds the elapsed
// interval to its accumulated duration. The sampler keeps running;
// samples arriving with no active zone are simply discarded.
func (s *Session) Pop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.active) == 0 {
		return errors.Wrap(ErrEmptyStack, "pop without a matching push: push and pop calls must be balanced")
	}

	id := s.active[len(s.active)-1]
	s.active = s.active[:len(s.active)-1]

	t := s.timing[id]
	if !t.start.IsZero() {
		t.accumulated += s.clock().Sub(t.start)
		t.start = time.Time{}
	}
	s.logger.Debug().Str("zone", s.registry.NameOf(id)).Int("active", len(s.active)).Msg("zone popped")

	return nil
}

// isActive reports whether id is anywhere on the active stack.
// Callers must hold s.mu.
func (s *Session) isActive(id ZoneID) bool {
	for _, a := range s.active {
		if a == id {
			return true
		}
	}
	return false
}

// Running reports whether the session sampler has been started.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// ActiveZones returns the number of currently active zones.
func (s *Session) ActiveZones() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active)
}

// TotalTicks returns the session-wide tick count over all attributed
// samples.
func (s *Session) TotalTicks() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticks
}
