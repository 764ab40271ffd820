package sampler

import (
	"github.com/pkg/errors"
)

var (
	ErrNoEvents   = errors.New("no workload events specified")
	ErrNoCallback = errors.New("no sample callback specified")
	ErrBadWeight  = errors.New("event weight must be positive")
	ErrBadVMState = errors.New("vmstate tag must be a single character")
)
