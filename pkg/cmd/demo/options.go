package demo

import (
	"time"

	"github.com/zoneprof/zoneprof/pkg/cmd/options"
)

type Options struct {
	duration     time.Duration
	workloadPath string
	zones        []string
	seed         int64
	report       bool
	status       bool

	*options.CommonOptions
}

func NewOptions(common *options.CommonOptions) *Options {
	o := new(Options)
	o.CommonOptions = common

	return o
}
