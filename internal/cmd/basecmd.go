package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/Nirdeo/AgenticHub/internal/aggregate"
	"github.com/Nirdeo/AgenticHub/internal/flags"
	"github.com/Nirdeo/AgenticHub/internal/registry"
)

type BaseCmd struct {
	logger hclog.Logger
}

// SetLogger updates the command's logger
func (c *BaseCmd) SetLogger(logger hclog.Logger) {
	c.logger = logger
}

// Logger returns the current logger for the command
func (c *BaseCmd) Logger() hclog.Logger {
	if c.logger != nil {
		return c.logger
	}

	// Get log level from flags first, then environment, then default
	logLevel := flags.LogLevel
	if logLevel == "" {
		logLevel = strings.ToLower(os.Getenv(flags.EnvVarLogLevel))
		if logLevel == "" {
			logLevel = flags.DefaultLogLevel
		}
	}

	// Get log path from flags first, then environment
	logPath := flags.LogPath
	if logPath == "" {
		logPath = strings.TrimSpace(os.Getenv(flags.EnvVarLogPath))
	}

	// Configure logger output
	var output io.Writer = io.Discard
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file (%s): %v, using stderr\n", logPath, err)
		} else {
			output = f
		}
	}

	// Using flags/env for fallback logger
	c.logger = hclog.New(&hclog.LoggerOptions{
		Name:   "agentichub-default",
		Level:  hclog.LevelFromString(logLevel),
		Output: output,
	})

	return c.logger
}

// ActiveRegistryName resolves the registry selection from flags first, then
// environment, then the built-in default.
func (c *BaseCmd) ActiveRegistryName() string {
	name := strings.TrimSpace(flags.Registry)
	if name == "" {
		name = strings.TrimSpace(os.Getenv(flags.EnvVarRegistry))
	}
	if name == "" {
		name = flags.DefaultRegistry
	}
	return name
}

// CreateService builds the aggregation service pointed at the selected
// registry.
func (c *BaseCmd) CreateService() (*aggregate.Service, error) {
	l := c.Logger()

	registryClient, err := registry.NewClient(l, registry.WithActiveRegistry(c.ActiveRegistryName()))
	if err != nil {
		return nil, err
	}

	service, err := aggregate.NewService(l, aggregate.WithRegistryClient(registryClient))
	if err != nil {
		return nil, err
	}

	return service, nil
}
