package profile

import (
	"github.com/pkg/errors"
)

// Mode is the execution mode reported by the sampling facility at
// sample time, keyed by the single-character vmstate tag.
type Mode uint8

const (
	// ModeCompiled marks samples taken in JIT-compiled machine code ('N').
	ModeCompiled Mode = iota
	// ModeInterpreted marks samples taken in the interpreter ('I').
	ModeInterpreted
	// ModeNative marks samples taken in native/C code ('C').
	ModeNative
	// ModeGC marks samples taken inside the garbage collector ('G').
	ModeGC
	// ModeJIT marks samples taken while compiling a trace ('J').
	ModeJIT

	numModes
)

const (
	// StackDumpFormat is the frame descriptor format requested from the
	// sampling facility: "<function> @ <file>:<line>" per frame.
	StackDumpFormat = "f @ s:l;"

	// FrameDelimiter separates frame descriptors in a stack dump.
	FrameDelimiter = ";"

	// DefaultStackDepth bounds the frames requested per dump.
	DefaultStackDepth = 64
)

// ParseMode maps a vmstate tag to its Mode.
func ParseMode(tag byte) (Mode, error) {
	switch tag {
	case 'N':
		return ModeCompiled, nil
	case 'I':
		return ModeInterpreted, nil
	case 'C':
		return ModeNative, nil
	case 'G':
		return ModeGC, nil
	case 'J':
		return ModeJIT, nil
	default:
		return 0, errors.Wrapf(ErrUnknownMode, "vmstate tag %q", tag)
	}
}

// HasStack reports whether samples in this mode carry a guest-level
// call stack. GC and trace compilation happen outside any guest frame.
func (m Mode) HasStack() bool {
	switch m {
	case ModeCompiled, ModeInterpreted, ModeNative:
		return true
	default:
		return false
	}
}

func (m Mode) String() string {
	switch m {
	case ModeCompiled:
		return "compiled"
	case ModeInterpreted:
		return "interpreted"
	case ModeNative:
		return "native"
	case ModeGC:
		return "gc"
	case ModeJIT:
		return "jit"
	}
	return "unknown"
}
