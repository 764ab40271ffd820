package profile

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/zoneprof/zoneprof/internal/utils"
)

const (
	colPercentage = "Percentage"
	colSamples    = "# Samples"
	colName       = "Name"

	// tailThreshold is the minimum percentage for an individual row;
	// frames below it collapse into the long-tail row.
	tailThreshold = 0.1
	tailName      = "..."
	tailPercent   = "< 0.1"

	startedAtLayout = "2006-01-02 15:04:05"
)

type reportRow struct {
	name    string
	raw     uint64
	clamped uint64
	percent float64
}

// Report renders every zone recorded so far, in registration order,
// into the ranked, column-aligned table format. Frame percentages are
// written back into the statistics entries; the computation is
// idempotent, so Report may be called repeatedly. Returns the empty
// string when no zone has ever been pushed.
func (s *Session) Report() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.registry.Len() == 0 {
		return ""
	}

	var b strings.Builder
	for id := ZoneID(1); int(id) <= s.registry.Len(); id++ {
		if id > 1 {
			b.WriteString("\n")
		}
		s.renderZone(&b, id)
	}

	return b.String()
}

// renderZone writes one zone's header block and table. Callers must
// hold s.mu.
func (s *Session) renderZone(b *strings.Builder, id ZoneID) {
	z := s.stats[id]
	t := s.timing[id]
	total := z.TotalSamples

	rows := make([]reportRow, 0, len(z.FuncSamples))
	for name, raw := range z.FuncSamples {
		var pct float64
		if total > 0 {
			pct = utils.FloorTo(float64(raw)/float64(total)*100, 3)
		}
		pct = utils.ClampF(pct, 0, 100)
		z.FuncPercent[name] = pct

		clamped := raw
		if clamped > total {
			// Nested-frame double counting can push a single function
			// past the zone event total; never report more samples for
			// one function than were taken for the zone as a whole.
			clamped = total
		}
		rows = append(rows, reportRow{name: name, raw: raw, clamped: clamped, percent: pct})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].raw != rows[j].raw {
			return rows[i].raw > rows[j].raw
		}
		return rows[i].name < rows[j].name
	})

	kept := make([]reportRow, 0, len(rows))
	var tailSum uint64
	var tailed bool
	for _, row := range rows {
		if row.percent >= tailThreshold {
			kept = append(kept, row)
			continue
		}
		tailed = true
		tailSum += row.raw
	}

	duration := utils.FloorTo(t.accumulated.Seconds(), 6)
	var perSecond uint64
	if duration > 0 {
		perSecond = uint64(math.Floor(float64(total) / duration))
	}
	var gcPct, jitPct float64
	if total > 0 {
		gcPct = float64(z.ModeSamples[ModeGC]) / float64(total) * 100
		jitPct = float64(z.ModeSamples[ModeJIT]) / float64(total) * 100
	}

	fmt.Fprintf(b, "Zone: %s\n", s.registry.NameOf(id))
	fmt.Fprintf(b, "Total samples: %d\n", total)
	fmt.Fprintf(b, "Samples/second: %d\n", perSecond)
	fmt.Fprintf(b, "Duration: %.6fs\n", duration)
	fmt.Fprintf(b, "Started: %s\n", s.startedAt.Format(startedAtLayout))
	fmt.Fprintf(b, "GC: %.2f%%\n", gcPct)
	fmt.Fprintf(b, "JIT: %.2f%%\n", jitPct)
	b.WriteString("\n")

	cells := make([][3]string, 0, len(kept)+1)
	for _, row := range kept {
		cells = append(cells, [3]string{
			fmt.Sprintf("%.2f", row.percent),
			fmt.Sprintf("%d", row.clamped),
			row.name,
		})
	}
	if tailed {
		cells = append(cells, [3]string{tailPercent, fmt.Sprintf("%d", tailSum), tailName})
	}

	// Column widths cover the headers and every row, the long-tail row
	// included.
	widths := [3]int{len(colPercentage), len(colSamples), len(colName)}
	for _, cell := range cells {
		for i := range widths {
			if len(cell[i]) > widths[i] {
				widths[i] = len(cell[i])
			}
		}
	}

	fmt.Fprintf(b, "| %-*s | %-*s | %-*s |\n", widths[0], colPercentage, widths[1], colSamples, widths[2], colName)
	fmt.Fprintf(b, "| %s | %s | %s |\n",
		strings.Repeat("-", widths[0]),
		strings.Repeat("-", widths[1]),
		strings.Repeat("-", widths[2]),
	)
	for _, cell := range cells {
		fmt.Fprintf(b, "| %-*s | %-*s | %-*s |\n", widths[0], cell[0], widths[1], cell[1], widths[2], cell[2])
	}
}
