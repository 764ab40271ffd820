package profile

import (
	"strings"
)

// HandleSample is the callback handed to the sampling facility.
// Samples arriving while no zone is active are discarded before the
// stack is even dumped. An unrecognized vmstate tag is a contract
// violation by the facility and aborts the process.
func (s *Session) HandleSample(th Thread, samples int, vmstate byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.active) == 0 {
		return
	}

	mode, err := ParseMode(vmstate)
	if err != nil {
		s.logger.Fatal().Err(err).Msg("sampling facility violated the vmstate contract")
	}

	var stack string
	if mode.HasStack() {
		stack = th.DumpStack(StackDumpFormat, s.stackDepth)
	}
	s.attribute(stack, samples, mode)
}

// Sample feeds one callback invocation with an already dumped stack.
// It is the testable form of HandleSample: it returns ErrUnknownMode
// instead of aborting.
func (s *Session) Sample(stack string, samples int, vmstate byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.active) == 0 {
		return nil
	}

	mode, err := ParseMode(vmstate)
	if err != nil {
		return err
	}
	if !mode.HasStack() {
		stack = ""
	}
	s.attribute(stack, samples, mode)

	return nil
}

// attribute charges one callback invocation to every zone currently on
// the active stack, not only the top: overlapping zones each measure
// the full sample stream. The mode counter and every distinct frame of
// the dump are weighted by the tick count, the event total by one.
// Callers must hold s.mu.
func (s *Session) attribute(stack string, samples int, mode Mode) {
	frames := SplitFrames(stack)
	n := uint64(samples)
	for _, id := range s.active {
		z := s.stats[id]
		z.ModeSamples[mode] += n
		for _, frame := range frames {
			z.FuncSamples[frame] += n
		}
		z.TotalSamples++
	}
	s.ticks += n
}

// SplitFrames splits a raw stack dump into its distinct frame
// identifiers, preserving order. A frame repeated within one dump
// (direct recursion) appears once.
func SplitFrames(dump string) []string {
	if dump == "" {
		return nil
	}

	parts := strings.Split(dump, FrameDelimiter)
	frames := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, part := range parts {
		frame := strings.TrimSpace(part)
		if frame == "" {
			continue
		}
		if _, ok := seen[frame]; ok {
			continue
		}
		seen[frame] = struct{}{}
		frames = append(frames, frame)
	}

	return frames
}
