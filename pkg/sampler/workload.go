// Package sampler provides the reference implementation of the
// sampling-facility side of the profile contract: a synthetic,
// ticker-driven sampler that replays a weighted workload of canned
// samples. It exists for demos and tests of the aggregation and
// reporting pipeline; a real embedding wires the host runtime's own
// sampling facility instead.
package sampler

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// WorkloadEvent is one canned sample: a vmstate tag and the frames of
// the dumped stack, drawn with probability proportional to Weight.
type WorkloadEvent struct {
	Weight  int      `yaml:"weight"`
	VMState string   `yaml:"vmstate"`
	Frames  []string `yaml:"frames"`
}

// Workload is the synthetic sampler's replay script.
type Workload struct {
	Interval time.Duration
	Events   []WorkloadEvent
}

type workloadYAML struct {
	Interval string          `yaml:"interval"`
	Events   []WorkloadEvent `yaml:"events"`
}

func (w *Workload) UnmarshalYAML(value *yaml.Node) error {
	var raw workloadYAML
	if err := value.Decode(&raw); err != nil {
		return err
	}

	w.Events = raw.Events
	if raw.Interval != "" {
		interval, err := time.ParseDuration(raw.Interval)
		if err != nil {
			return errors.Wrapf(err, "invalid interval %q", raw.Interval)
		}
		w.Interval = interval
	}

	return nil
}

// LoadWorkload decodes a YAML workload.
func LoadWorkload(r io.Reader) (*Workload, error) {
	var w Workload
	if err := yaml.NewDecoder(r).Decode(&w); err != nil {
		return nil, errors.Wrap(err, "failed to decode the workload")
	}

	return &w, nil
}

// DefaultWorkload models a small scripted game loop: mostly compiled
// frames, some interpreter and C calls, occasional GC pauses and trace
// compilation.
func DefaultWorkload() *Workload {
	return &Workload{
		Interval: DefaultInterval,
		Events: []WorkloadEvent{
			{Weight: 50, VMState: "N", Frames: []string{"update @ game.lua:42", "loop @ main.lua:17", "main @ main.lua:3"}},
			{Weight: 25, VMState: "I", Frames: []string{"draw @ render.lua:88", "loop @ main.lua:17", "main @ main.lua:3"}},
			{Weight: 15, VMState: "C", Frames: []string{"write @ [C]:-1", "log @ util.lua:12", "loop @ main.lua:17", "main @ main.lua:3"}},
			{Weight: 7, VMState: "G"},
			{Weight: 3, VMState: "J"},
		},
	}
}
