package profile

import "time"

// ZoneStats accumulates the samples attributed to one zone.
type ZoneStats struct {
	// TotalSamples counts callback invocations attributed to the zone,
	// independent of the per-invocation tick count.
	TotalSamples uint64

	// ModeSamples counts ticks per execution mode.
	ModeSamples [numModes]uint64

	// FuncSamples counts ticks per frame identifier, charged to every
	// frame of a dump, not only the leaf. A sample in a nested call is
	// also a sample of every caller, so counts across frames overlap.
	FuncSamples map[string]uint64

	// FuncPercent is derived from FuncSamples against TotalSamples,
	// recomputed each time a report is generated.
	FuncPercent map[string]float64
}

func NewZoneStats() *ZoneStats {
	return &ZoneStats{
		FuncSamples: make(map[string]uint64),
		FuncPercent: make(map[string]float64),
	}
}

// ZoneTiming tracks the start of the current active interval and the
// accumulated duration over all past intervals of a zone. start is set
// iff the zone is on the active stack.
type ZoneTiming struct {
	start       time.Time
	accumulated time.Duration
}

// Accumulated returns the total time the zone has been active over all
// closed intervals.
func (t *ZoneTiming) Accumulated() time.Duration {
	return t.accumulated
}
