// Package options carries dependency overrides for CLI commands, used by
// tests to inject a preconfigured aggregation service.
package options

import (
	"github.com/Nirdeo/AgenticHub/internal/aggregate"
)

type CmdOption func(*CmdOptions) error

type CmdOptions struct {
	// Service, when set, replaces the service a command would otherwise
	// build from flags and environment.
	Service *aggregate.Service
}

func NewOptions(opt ...CmdOption) (CmdOptions, error) {
	opts := CmdOptions{}

	for _, o := range opt {
		if o == nil {
			continue
		}
		if err := o(&opts); err != nil {
			return CmdOptions{}, err
		}
	}

	return opts, nil
}

func WithService(s *aggregate.Service) CmdOption {
	return func(o *CmdOptions) error {
		o.Service = s
		return nil
	}
}
