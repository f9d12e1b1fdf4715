package aggregate

import (
	"slices"
	"strings"
	"time"

	"github.com/Nirdeo/AgenticHub/internal/catalog"
	"github.com/Nirdeo/AgenticHub/internal/filter"
)

// MetadataLookup resolves the enrichment record for a server.
// Service.MetadataFor satisfies this signature.
type MetadataLookup func(catalog.ServerRecord) (catalog.MetadataRecord, bool)

// FilterServers returns the servers whose name, description or display
// name contains the query, case-insensitively. An empty query returns
// every server.
func FilterServers(records []catalog.ServerRecord, query string) []catalog.ServerRecord {
	if strings.TrimSpace(query) == "" {
		return slices.Clone(records)
	}

	out := make([]catalog.ServerRecord, 0, len(records))
	for _, r := range records {
		if filter.AnyContainsFold(query, r.Name, r.Description, r.DisplayName()) {
			out = append(out, r)
		}
	}

	return out
}

// FilterByKind returns the servers offering at least one package for the
// given registry kind.
func FilterByKind(records []catalog.ServerRecord, kind catalog.RegistryKind) []catalog.ServerRecord {
	out := make([]catalog.ServerRecord, 0, len(records))
	for _, r := range records {
		if r.HasRegistryKind(kind) {
			out = append(out, r)
		}
	}

	return out
}

// SortByName orders servers by display name, case-insensitively, with the
// raw name as tiebreak. The input slice is not modified.
func SortByName(records []catalog.ServerRecord) []catalog.ServerRecord {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b catalog.ServerRecord) int {
		if c := compareFold(a.DisplayName(), b.DisplayName()); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})

	return out
}

// SortByStars orders servers by star count descending. Servers without
// metadata sort below enriched ones; ties break on display name so the
// ordering is deterministic.
func SortByStars(records []catalog.ServerRecord, lookup MetadataLookup) []catalog.ServerRecord {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b catalog.ServerRecord) int {
		if c := starsOf(b, lookup) - starsOf(a, lookup); c != 0 {
			return c
		}
		return compareFold(a.DisplayName(), b.DisplayName())
	})

	return out
}

// SortByRecency orders servers by last-commit timestamp, most recent
// first. Servers without metadata or without a commit timestamp sort
// last, then by display name.
func SortByRecency(records []catalog.ServerRecord, lookup MetadataLookup) []catalog.ServerRecord {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b catalog.ServerRecord) int {
		ta, okA := lastCommitOf(a, lookup)
		tb, okB := lastCommitOf(b, lookup)

		switch {
		case okA && okB:
			if c := tb.Compare(ta); c != 0 {
				return c
			}
		case okA:
			return -1
		case okB:
			return 1
		}

		return compareFold(a.DisplayName(), b.DisplayName())
	})

	return out
}

func starsOf(r catalog.ServerRecord, lookup MetadataLookup) int {
	if lookup == nil {
		return 0
	}
	meta, ok := lookup(r)
	if !ok {
		return 0
	}
	return meta.Stars
}

func lastCommitOf(r catalog.ServerRecord, lookup MetadataLookup) (t time.Time, ok bool) {
	if lookup == nil {
		return time.Time{}, false
	}
	meta, found := lookup(r)
	if !found || meta.LastCommit == nil {
		return time.Time{}, false
	}
	return *meta.LastCommit, true
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
