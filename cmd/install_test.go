package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Nirdeo/AgenticHub/internal/clients"
	cmdopts "github.com/Nirdeo/AgenticHub/internal/cmd/options"
)

func readConfig(t *testing.T, path string) map[string]any {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

func TestInstallCmd(t *testing.T) {
	descriptor := testClientDescriptor(t)
	service := newTestService(t, descriptor)

	command, err := NewInstallCmd(newTestBase(), cmdopts.WithService(service))
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	command.SetOut(buf)
	command.SetArgs([]string{"io.github.acme/alpha", "--client", "testclient"})

	require.NoError(t, command.Execute())
	require.Contains(t, buf.String(), "Installed 'alpha' into Test Client")

	doc := readConfig(t, descriptor.ConfigPath)
	root := doc[clients.DefaultRootKey].(map[string]any)
	entry := root["alpha"].(map[string]any)
	require.Equal(t, "npx", entry["command"])
	require.Equal(t, []any{"-y", "@acme/alpha@1.2.0"}, entry["args"])
}

func TestInstallCmd_SubstringMatch(t *testing.T) {
	descriptor := testClientDescriptor(t)
	service := newTestService(t, descriptor)

	command, err := NewInstallCmd(newTestBase(), cmdopts.WithService(service))
	require.NoError(t, err)

	command.SetOut(&bytes.Buffer{})
	command.SetArgs([]string{"beta", "--client", "testclient"})

	require.NoError(t, command.Execute())

	doc := readConfig(t, descriptor.ConfigPath)
	root := doc[clients.DefaultRootKey].(map[string]any)
	entry := root["beta"].(map[string]any)
	require.Equal(t, "uvx", entry["command"])
}

func TestInstallCmd_Errors(t *testing.T) {
	descriptor := testClientDescriptor(t)
	service := newTestService(t, descriptor)

	t.Run("unknown server", func(t *testing.T) {
		command, err := NewInstallCmd(newTestBase(), cmdopts.WithService(service))
		require.NoError(t, err)

		command.SetOut(&bytes.Buffer{})
		command.SetErr(&bytes.Buffer{})
		command.SetArgs([]string{"does-not-exist", "--client", "testclient"})
		require.ErrorContains(t, command.Execute(), "no server matching")
	})

	t.Run("ambiguous query", func(t *testing.T) {
		command, err := NewInstallCmd(newTestBase(), cmdopts.WithService(service))
		require.NoError(t, err)

		command.SetOut(&bytes.Buffer{})
		command.SetErr(&bytes.Buffer{})
		command.SetArgs([]string{"acme", "--client", "testclient"})
		require.ErrorContains(t, command.Execute(), "ambiguous")
	})

	t.Run("unknown client", func(t *testing.T) {
		command, err := NewInstallCmd(newTestBase(), cmdopts.WithService(service))
		require.NoError(t, err)

		command.SetOut(&bytes.Buffer{})
		command.SetErr(&bytes.Buffer{})
		command.SetArgs([]string{"io.github.acme/alpha", "--client", "nope"})
		require.Error(t, command.Execute())
	})
}

func TestUninstallCmd_SingleClient(t *testing.T) {
	descriptor := testClientDescriptor(t)
	service := newTestService(t, descriptor)

	manager := service.Clients()
	require.NoError(t, manager.Install(descriptor, "alpha", clients.ServerEntry{Command: "npx"}))
	require.NoError(t, manager.Install(descriptor, "beta", clients.ServerEntry{Command: "uvx"}))

	command, err := NewUninstallCmd(newTestBase(), cmdopts.WithService(service))
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	command.SetOut(buf)
	command.SetArgs([]string{"alpha", "--client", "testclient"})

	require.NoError(t, command.Execute())
	require.Contains(t, buf.String(), "Removed 'alpha' from Test Client")

	doc := readConfig(t, descriptor.ConfigPath)
	root := doc[clients.DefaultRootKey].(map[string]any)
	require.NotContains(t, root, "alpha")
	require.Contains(t, root, "beta")
}

func TestUninstallCmd_AllClients(t *testing.T) {
	descriptor := testClientDescriptor(t)
	service := newTestService(t, descriptor)

	manager := service.Clients()
	require.NoError(t, manager.Install(descriptor, "alpha", clients.ServerEntry{Command: "npx"}))

	command, err := NewUninstallCmd(newTestBase(), cmdopts.WithService(service))
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	command.SetOut(buf)
	command.SetArgs([]string{"alpha"})

	require.NoError(t, command.Execute())

	doc := readConfig(t, descriptor.ConfigPath)
	root := doc[clients.DefaultRootKey].(map[string]any)
	require.NotContains(t, root, "alpha")
}

func TestUninstallCmd_AbsentServerIsNoOp(t *testing.T) {
	descriptor := testClientDescriptor(t)
	service := newTestService(t, descriptor)

	command, err := NewUninstallCmd(newTestBase(), cmdopts.WithService(service))
	require.NoError(t, err)

	command.SetOut(&bytes.Buffer{})
	command.SetArgs([]string{"never-installed", "--client", "testclient"})

	require.NoError(t, command.Execute())
}
