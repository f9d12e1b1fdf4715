package cmd

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"

	"github.com/Nirdeo/AgenticHub/internal/flags"
)

func TestBaseCmd_Logger_UsesSetLogger(t *testing.T) {
	t.Parallel()

	c := &BaseCmd{}
	logger := hclog.NewNullLogger()
	c.SetLogger(logger)

	require.Equal(t, logger, c.Logger())
}

func TestBaseCmd_Logger_FallbackIsLazy(t *testing.T) {
	t.Parallel()

	c := &BaseCmd{}

	first := c.Logger()
	require.NotNil(t, first)

	// Subsequent calls reuse the configured fallback.
	require.Equal(t, first, c.Logger())
}

func TestBaseCmd_ActiveRegistryName_Default(t *testing.T) {
	t.Setenv(flags.EnvVarRegistry, "")
	require.Empty(t, flags.Registry)

	c := &BaseCmd{}
	require.Equal(t, flags.DefaultRegistry, c.ActiveRegistryName())
}

func TestBaseCmd_ActiveRegistryName_FlagWins(t *testing.T) {
	flags.Registry = "pulse"
	t.Cleanup(func() { flags.Registry = "" })

	c := &BaseCmd{}
	require.Equal(t, "pulse", c.ActiveRegistryName())
}

func TestBaseCmd_CreateService(t *testing.T) {
	t.Setenv(flags.EnvVarRegistry, "")

	c := &BaseCmd{}
	c.SetLogger(hclog.NewNullLogger())

	service, err := c.CreateService()
	require.NoError(t, err)
	require.Equal(t, flags.DefaultRegistry, service.Registry().Active().Name)
}

func TestBaseCmd_CreateService_UnknownRegistry(t *testing.T) {
	flags.Registry = "does-not-exist"
	t.Cleanup(func() { flags.Registry = "" })

	c := &BaseCmd{}
	c.SetLogger(hclog.NewNullLogger())

	_, err := c.CreateService()
	require.Error(t, err)
}
