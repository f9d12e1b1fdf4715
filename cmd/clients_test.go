package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Nirdeo/AgenticHub/internal/clients"
	cmdopts "github.com/Nirdeo/AgenticHub/internal/cmd/options"
	"github.com/Nirdeo/AgenticHub/internal/cmd/output"
	"github.com/Nirdeo/AgenticHub/internal/printer"
)

func TestClientsCmd(t *testing.T) {
	descriptor := testClientDescriptor(t)
	service := newTestService(t, descriptor)

	require.NoError(t, service.Clients().Install(descriptor, "alpha", clients.ServerEntry{Command: "npx"}))

	command, err := NewClientsCmd(newTestBase(), cmdopts.WithService(service))
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	command.SetOut(buf)
	command.SetArgs([]string{})

	require.NoError(t, command.Execute())

	out := buf.String()
	require.Contains(t, out, "Test Client (testclient, cli)")
	require.Contains(t, out, "Servers: alpha")
	require.Contains(t, out, "Found 1 client")
}

func TestClientsCmd_JSON(t *testing.T) {
	descriptor := testClientDescriptor(t)
	service := newTestService(t, descriptor)

	command, err := NewClientsCmd(newTestBase(), cmdopts.WithService(service))
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	command.SetOut(buf)
	command.SetArgs([]string{"--format", "json"})

	require.NoError(t, command.Execute())

	var payload output.ResultsPayload[printer.ClientView]
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))
	require.Len(t, payload.Results, 1)
	require.Equal(t, "testclient", payload.Results[0].ID)
	require.Empty(t, payload.Results[0].Servers)
}

func TestRegistriesCmd(t *testing.T) {
	command, err := NewRegistriesCmd(newTestBase())
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	command.SetOut(buf)
	command.SetArgs([]string{})

	require.NoError(t, command.Execute())

	out := buf.String()
	require.Contains(t, out, "* MCP Community Registry (official)")
	require.Contains(t, out, "Smithery")
	require.Contains(t, out, "PulseMCP")
}
