package cmd

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"

	"github.com/Nirdeo/AgenticHub/internal/aggregate"
	"github.com/Nirdeo/AgenticHub/internal/clients"
	"github.com/Nirdeo/AgenticHub/internal/cmd"
	"github.com/Nirdeo/AgenticHub/internal/metadata"
	"github.com/Nirdeo/AgenticHub/internal/registry"
	"github.com/Nirdeo/AgenticHub/internal/skills"
)

const testRegistryPayload = `{
	"servers": [
		{"server": {
			"name": "io.github.acme/alpha",
			"description": "Alpha time server",
			"repository": {"url": "https://github.com/acme/alpha"},
			"packages": [{"registryType": "npm", "identifier": "@acme/alpha", "version": "1.2.0"}]
		}},
		{"server": {
			"name": "io.github.acme/beta",
			"description": "Beta weather server",
			"repository": {"url": "https://github.com/acme/beta"},
			"packages": [{"registryType": "pypi", "identifier": "acme-beta"}]
		}}
	],
	"metadata": {"count": 2}
}`

const testSkillsPayload = `{
	"skills": [
		{"id": "git-helper", "name": "Git Helper", "source": "acme/skills/git", "installs": 900, "provider": "acme"}
	]
}`

func staticJSON(payload string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}
}

// newTestBase returns a BaseCmd with a quiet logger.
func newTestBase() *cmd.BaseCmd {
	base := &cmd.BaseCmd{}
	base.SetLogger(hclog.NewNullLogger())
	return base
}

// testClientDescriptor returns a JSON client rooted in a temp dir.
func testClientDescriptor(t *testing.T) clients.Descriptor {
	t.Helper()

	dir := t.TempDir()
	return clients.Descriptor{
		ID:          "testclient",
		DisplayName: "Test Client",
		Category:    clients.CategoryCLI,
		ConfigPath:  filepath.Join(dir, "config.json"),
		Format:      clients.FormatJSON,
		RootKey:     clients.DefaultRootKey,
		DetectPaths: []string{dir},
	}
}

// newTestService wires a service against local fakes. The metadata source is
// intentionally unavailable so tests exercise the degraded path.
func newTestService(t *testing.T, descriptors ...clients.Descriptor) *aggregate.Service {
	t.Helper()

	logger := hclog.NewNullLogger()

	registrySrv := httptest.NewServer(staticJSON(testRegistryPayload))
	t.Cleanup(registrySrv.Close)
	metadataSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(metadataSrv.Close)
	skillsSrv := httptest.NewServer(staticJSON(testSkillsPayload))
	t.Cleanup(skillsSrv.Close)

	registryClient, err := registry.NewClient(logger, registry.WithBaseURL(registrySrv.URL))
	require.NoError(t, err)

	metadataClient, err := metadata.NewClient(logger, metadata.WithBaseURL(metadataSrv.URL))
	require.NoError(t, err)

	skillsClient, err := skills.NewClient(logger, skills.WithBaseURL(skillsSrv.URL))
	require.NoError(t, err)

	service, err := aggregate.NewService(
		logger,
		aggregate.WithRegistryClient(registryClient),
		aggregate.WithMetadataClient(metadataClient),
		aggregate.WithSkillsClient(skillsClient),
		aggregate.WithClientManager(clients.NewManager(logger, clients.WithDescriptors(descriptors...))),
	)
	require.NoError(t, err)

	return service
}
