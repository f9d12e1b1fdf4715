package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Nirdeo/AgenticHub/internal/catalog"
)

func namedServer(name string, kinds ...catalog.RegistryKind) catalog.ServerRecord {
	record := catalog.ServerRecord{Name: name}
	for _, k := range kinds {
		record.Packages = append(record.Packages, catalog.PackageRecord{Registry: k})
	}
	return record
}

func lookupTable(table map[string]catalog.MetadataRecord) MetadataLookup {
	return func(r catalog.ServerRecord) (catalog.MetadataRecord, bool) {
		meta, ok := table[r.Name]
		return meta, ok
	}
}

func names(records []catalog.ServerRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Name
	}
	return out
}

func TestFilterServers(t *testing.T) {
	t.Parallel()

	records := []catalog.ServerRecord{
		{Name: "io.github.acme/time", Description: "Clock utilities"},
		{Name: "io.github.acme/weather", Description: "Forecast data", Title: "Weather Station"},
		{Name: "io.github.other/db", Description: "Postgres access"},
	}

	t.Run("empty query returns everything", func(t *testing.T) {
		t.Parallel()

		require.Len(t, FilterServers(records, "  "), 3)
	})

	t.Run("matches name case-insensitively", func(t *testing.T) {
		t.Parallel()

		got := FilterServers(records, "ACME")
		require.Equal(t, []string{"io.github.acme/time", "io.github.acme/weather"}, names(got))
	})

	t.Run("matches description", func(t *testing.T) {
		t.Parallel()

		got := FilterServers(records, "postgres")
		require.Equal(t, []string{"io.github.other/db"}, names(got))
	})

	t.Run("matches display name", func(t *testing.T) {
		t.Parallel()

		got := FilterServers(records, "station")
		require.Equal(t, []string{"io.github.acme/weather"}, names(got))
	})
}

func TestFilterByKind(t *testing.T) {
	t.Parallel()

	records := []catalog.ServerRecord{
		namedServer("npm-only", catalog.RegistryKindNPM),
		namedServer("both", catalog.RegistryKindNPM, catalog.RegistryKindPyPI),
		namedServer("no-packages"),
	}

	got := FilterByKind(records, catalog.RegistryKindPyPI)
	require.Equal(t, []string{"both"}, names(got))

	got = FilterByKind(records, catalog.RegistryKindNPM)
	require.Equal(t, []string{"npm-only", "both"}, names(got))
}

func TestSortByName(t *testing.T) {
	t.Parallel()

	records := []catalog.ServerRecord{
		{Name: "zeta", Title: "zeta"},
		{Name: "alpha", Title: "Alpha"},
		{Name: "beta", Title: "beta"},
	}

	got := SortByName(records)
	require.Equal(t, []string{"alpha", "beta", "zeta"}, names(got))

	// Input order untouched.
	require.Equal(t, "zeta", records[0].Name)
}

func TestSortByStars(t *testing.T) {
	t.Parallel()

	records := []catalog.ServerRecord{
		{Name: "Beta"},
		{Name: "Alpha"},
		{Name: "Gamma"},
		{Name: "NoMeta"},
	}

	lookup := lookupTable(map[string]catalog.MetadataRecord{
		"Alpha": {Stars: 100},
		"Beta":  {Stars: 100},
		"Gamma": {Stars: 500},
	})

	got := SortByStars(records, lookup)
	// Equal star counts fall back to name order, so Alpha precedes Beta.
	require.Equal(t, []string{"Gamma", "Alpha", "Beta", "NoMeta"}, names(got))
}

func TestSortByRecency(t *testing.T) {
	t.Parallel()

	old := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	records := []catalog.ServerRecord{
		{Name: "stale"},
		{Name: "fresh"},
		{Name: "unknown-b"},
		{Name: "unknown-a"},
	}

	lookup := lookupTable(map[string]catalog.MetadataRecord{
		"stale": {LastCommit: &old},
		"fresh": {LastCommit: &recent},
	})

	got := SortByRecency(records, lookup)
	require.Equal(t, []string{"fresh", "stale", "unknown-a", "unknown-b"}, names(got))
}

func TestSortByStars_NilLookup(t *testing.T) {
	t.Parallel()

	records := []catalog.ServerRecord{{Name: "b"}, {Name: "a"}}

	got := SortByStars(records, nil)
	require.Equal(t, []string{"a", "b"}, names(got))
}
