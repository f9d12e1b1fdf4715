package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	cmdopts "github.com/Nirdeo/AgenticHub/internal/cmd/options"
	"github.com/Nirdeo/AgenticHub/internal/cmd/output"
	"github.com/Nirdeo/AgenticHub/internal/printer"
)

func TestSkillsCmd_Popular(t *testing.T) {
	service := newTestService(t)

	command, err := NewSkillsCmd(newTestBase(), cmdopts.WithService(service))
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	command.SetOut(buf)
	command.SetArgs([]string{})

	require.NoError(t, command.Execute())

	out := buf.String()
	require.Contains(t, out, "Agent skills")
	require.Contains(t, out, "Git Helper (acme/git-helper)")
	require.Contains(t, out, "900 installs")
	require.Contains(t, out, "Found 1 skill")
}

func TestSkillsCmd_SearchJSON(t *testing.T) {
	service := newTestService(t)

	command, err := NewSkillsCmd(newTestBase(), cmdopts.WithService(service))
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	command.SetOut(buf)
	command.SetArgs([]string{"git", "--format", "json"})

	require.NoError(t, command.Execute())

	var payload output.ResultsPayload[printer.SkillView]
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))
	require.Len(t, payload.Results, 1)
	require.Equal(t, "acme/git-helper", payload.Results[0].ID)
	require.Equal(t, 900, payload.Results[0].Installs)
}
