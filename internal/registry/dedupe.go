package registry

import (
	"github.com/Nirdeo/AgenticHub/internal/catalog"
)

// Dedupe collapses a list of server records into a uniqued set.
//
// Records are grouped by their identity: the normalized repository URL when
// one is present, the raw name otherwise. Within a URL group the survivor is
// the record with the greatest version (numeric-aware comparison), then the
// one declaring more packages, then the first seen. Name-keyed groups keep
// the first record seen. The output preserves first-seen group order.
func Dedupe(records []catalog.ServerRecord) []catalog.ServerRecord {
	groups := make(map[string]catalog.ServerRecord)
	var order []string

	for _, r := range records {
		key := r.Identity()
		incumbent, seen := groups[key]
		if !seen {
			groups[key] = r
			order = append(order, key)
			continue
		}
		if r.RepositoryURL() != "" && prefer(r, incumbent) {
			groups[key] = r
		}
	}

	out := make([]catalog.ServerRecord, 0, len(order))
	for _, key := range order {
		out = append(out, groups[key])
	}

	return out
}

// prefer reports whether candidate should replace incumbent within a
// normalized-URL group. Ties on version fall back to declared package count;
// remaining ties keep the incumbent (first seen wins).
func prefer(candidate, incumbent catalog.ServerRecord) bool {
	switch cmp := CompareVersions(candidate.Version, incumbent.Version); {
	case cmp > 0:
		return true
	case cmp < 0:
		return false
	default:
		return len(candidate.Packages) > len(incumbent.Packages)
	}
}
