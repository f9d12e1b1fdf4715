package metadata

import (
	"time"

	"github.com/Nirdeo/AgenticHub/internal/catalog"
	"github.com/Nirdeo/AgenticHub/internal/filter"
)

// listOptions are the query parameters accepted by the metadata endpoint.
type listOptions struct {
	Limit      int  `url:"limit"`
	Offset     int  `url:"offset"`
	LatestOnly bool `url:"latest_only"`
}

// listResponse is the wire shape of one page of metadata entries.
type listResponse struct {
	Servers    []serverJSON   `json:"servers"`
	Pagination paginationJSON `json:"pagination"`
}

type serverJSON struct {
	Name          string      `json:"name"`
	RepositoryURL string      `json:"repository_url,omitempty"`
	GitHub        *githubJSON `json:"github,omitempty"`
}

type githubJSON struct {
	// Stars is a pointer: absence means upstream could not resolve the
	// repository and the whole entry is skipped.
	Stars      *int     `json:"stars,omitempty"`
	Forks      int      `json:"forks,omitempty"`
	OpenIssues int      `json:"open_issues,omitempty"`
	Language   string   `json:"language,omitempty"`
	Topics     []string `json:"topics,omitempty"`
	License    string   `json:"license,omitempty"`
	LastCommit string   `json:"last_commit,omitempty"`
	Archived   bool     `json:"archived,omitempty"`
}

type paginationJSON struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
}

// ToDomainType converts wire GitHub statistics into the internal domain
// representation. Topics are normalized so lookups can compare them verbatim;
// an unparsable or absent commit timestamp becomes nil.
func (g githubJSON) ToDomainType() catalog.MetadataRecord {
	record := catalog.MetadataRecord{
		Forks:      g.Forks,
		OpenIssues: g.OpenIssues,
		Language:   g.Language,
		Topics:     filter.NormalizeSlice(g.Topics),
		License:    g.License,
		Archived:   g.Archived,
	}
	if g.Stars != nil {
		record.Stars = *g.Stars
	}

	if g.LastCommit != "" {
		if ts, err := time.Parse(time.RFC3339, g.LastCommit); err == nil {
			record.LastCommit = &ts
		}
	}

	return record
}
