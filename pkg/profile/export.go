package profile

import (
	"encoding/json"
	"io"
	"time"
)

// ReportFileName is the default file the JSON profile report is
// written to.
const ReportFileName = "zoneprof-report.json"

type ZoneReport struct {
	Name         string            `json:"name"`
	TotalSamples uint64            `json:"total_samples"`
	ModeSamples  map[string]uint64 `json:"mode_samples"`
	FuncSamples  map[string]uint64 `json:"func_samples"`
	DurationSecs float64           `json:"duration_secs"`
}

type ProfileReport struct {
	StartedAt  time.Time    `json:"started_at"`
	TotalTicks uint64       `json:"total_ticks"`
	Zones      []ZoneReport `json:"zones"`
}

// Snapshot copies the per-zone statistics into an exportable report,
// zones in registration order.
func (s *Session) Snapshot() *ProfileReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	report := &ProfileReport{
		StartedAt:  s.startedAt,
		TotalTicks: s.ticks,
		Zones:      make([]ZoneReport, 0, s.registry.Len()),
	}
	for id := ZoneID(1); int(id) <= s.registry.Len(); id++ {
		z := s.stats[id]
		zone := ZoneReport{
			Name:         s.registry.NameOf(id),
			TotalSamples: z.TotalSamples,
			ModeSamples:  make(map[string]uint64, int(numModes)),
			FuncSamples:  make(map[string]uint64, len(z.FuncSamples)),
			DurationSecs: s.timing[id].accumulated.Seconds(),
		}
		for m := Mode(0); m < numModes; m++ {
			if n := z.ModeSamples[m]; n > 0 {
				zone.ModeSamples[m.String()] = n
			}
		}
		for name, n := range z.FuncSamples {
			zone.FuncSamples[name] = n
		}
		report.Zones = append(report.Zones, zone)
	}

	return report
}

// WriteReport encodes the report as JSON.
func (r *ProfileReport) WriteReport(w io.Writer) error {
	encoder := json.NewEncoder(w)
	return encoder.Encode(r)
}
