package profile

import (
	"github.com/pkg/errors"
)

var (
	ErrDuplicateZone = errors.New("zone is already active")
	ErrEmptyStack    = errors.New("no active zone to pop")
	ErrUnknownMode   = errors.New("unknown vmstate tag")
)
