package aggregate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"

	"github.com/Nirdeo/AgenticHub/internal/catalog"
	"github.com/Nirdeo/AgenticHub/internal/clients"
	"github.com/Nirdeo/AgenticHub/internal/metadata"
	"github.com/Nirdeo/AgenticHub/internal/registry"
	"github.com/Nirdeo/AgenticHub/internal/skills"
)

const registryPayload = `{
	"servers": [
		{"server": {
			"name": "io.github.acme/alpha",
			"description": "Alpha time server",
			"repository": {"url": "https://github.com/acme/alpha"},
			"packages": [{"registryType": "npm", "identifier": "@acme/alpha"}]
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

const metadataPayload = `{
	"servers": [
		{"name": "io.github.acme/alpha",
		 "repository_url": "https://github.com/acme/alpha",
		 "github": {"stars": 120, "last_commit": "2026-08-01T00:00:00Z"}}
	],
	"pagination": {"has_more": false}
}`

const skillsPayload = `{
	"skills": [
		{"id": "git-helper", "name": "Git Helper", "source": "acme/skills/git", "installs": 900, "provider": "acme"}
	]
}`

func jsonHandler(payload string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}
}

// newTestService wires a Service against local fakes for every remote
// source and an empty client set.
func newTestService(t *testing.T, registryHandler, metadataHandler, skillsHandler http.HandlerFunc) *Service {
	t.Helper()

	logger := hclog.NewNullLogger()

	registrySrv := httptest.NewServer(registryHandler)
	t.Cleanup(registrySrv.Close)
	metadataSrv := httptest.NewServer(metadataHandler)
	t.Cleanup(metadataSrv.Close)
	skillsSrv := httptest.NewServer(skillsHandler)
	t.Cleanup(skillsSrv.Close)

	registryClient, err := registry.NewClient(logger, registry.WithBaseURL(registrySrv.URL))
	require.NoError(t, err)

	metadataClient, err := metadata.NewClient(logger, metadata.WithBaseURL(metadataSrv.URL))
	require.NoError(t, err)

	skillsClient, err := skills.NewClient(logger, skills.WithBaseURL(skillsSrv.URL))
	require.NoError(t, err)

	service, err := NewService(
		logger,
		WithRegistryClient(registryClient),
		WithMetadataClient(metadataClient),
		WithSkillsClient(skillsClient),
		WithClientManager(clients.NewManager(logger, clients.WithDescriptors())),
	)
	require.NoError(t, err)

	return service
}

func TestService_Refresh(t *testing.T) {
	t.Parallel()

	service := newTestService(t,
		jsonHandler(registryPayload),
		jsonHandler(metadataPayload),
		jsonHandler(skillsPayload),
	)

	snapshot, err := service.Refresh(context.Background())
	require.NoError(t, err)

	require.Len(t, snapshot.Servers, 2)
	require.Equal(t, "io.github.acme/alpha", snapshot.Servers[0].Name)
	require.True(t, snapshot.MetadataAvailable)

	require.Len(t, snapshot.Skills, 1)
	require.Equal(t, "acme/git-helper", snapshot.Skills[0].ID)

	require.Empty(t, snapshot.Installed)

	meta, ok := service.MetadataFor(snapshot.Servers[0])
	require.True(t, ok)
	require.Equal(t, 120, meta.Stars)

	_, ok = service.MetadataFor(snapshot.Servers[1])
	require.False(t, ok)
}

func TestService_Refresh_MetadataDegrades(t *testing.T) {
	t.Parallel()

	service := newTestService(t,
		jsonHandler(registryPayload),
		func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		},
		jsonHandler(skillsPayload),
	)

	snapshot, err := service.Refresh(context.Background())
	require.NoError(t, err)

	require.Len(t, snapshot.Servers, 2)
	require.False(t, snapshot.MetadataAvailable)

	_, ok := service.MetadataFor(snapshot.Servers[0])
	require.False(t, ok)
}

func TestService_Refresh_RegistryFailureIsFatal(t *testing.T) {
	t.Parallel()

	service := newTestService(t,
		func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		},
		jsonHandler(metadataPayload),
		jsonHandler(skillsPayload),
	)

	_, err := service.Refresh(context.Background())
	require.Error(t, err)
}

func TestMergeInstalled(t *testing.T) {
	t.Parallel()

	discoveries := []clients.Discovery{
		{
			Client: clients.Descriptor{ID: "cursor"},
			Servers: map[string]catalog.InstalledServerRecord{
				"foo": {Name: "foo", Command: "npx", Clients: []string{"cursor"}},
			},
		},
		{
			Client: clients.Descriptor{ID: "zed"},
			Servers: map[string]catalog.InstalledServerRecord{
				"foo": {Name: "foo", Command: "npx", Clients: []string{"zed"}},
				"bar": {Name: "bar", Command: "uvx", Clients: []string{"zed"}},
			},
		},
	}

	merged := MergeInstalled(discoveries)
	require.Len(t, merged, 2)
	require.Equal(t, []string{"cursor", "zed"}, merged["foo"].Clients)
	require.Equal(t, []string{"zed"}, merged["bar"].Clients)
}
