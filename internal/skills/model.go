package skills

import (
	"strings"

	"github.com/Nirdeo/AgenticHub/internal/catalog"
)

// searchOptions are the query parameters accepted by the skills search endpoint.
type searchOptions struct {
	Query string `url:"q"`
	Limit int    `url:"limit"`
}

// searchResponse is the wire shape of a skills search result.
type searchResponse struct {
	Skills     []skillJSON     `json:"skills"`
	Pagination *paginationJSON `json:"pagination,omitempty"`
}

type paginationJSON struct {
	Total int `json:"total"`
	Page  int `json:"page"`
}

type skillJSON struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Source        string `json:"source"`
	Installs      int    `json:"installs"`
	RepositoryURL string `json:"repositoryUrl,omitempty"`
	Provider      string `json:"provider"`
}

// ToDomainType converts a wire skill into the internal domain representation.
// The identifier is prefixed with the provider tag so that identifiers from
// different providers never collide after merging.
func (s skillJSON) ToDomainType() catalog.SkillRecord {
	id := s.ID
	if s.Provider != "" && !strings.HasPrefix(id, s.Provider+"/") {
		id = s.Provider + "/" + id
	}

	return catalog.SkillRecord{
		ID:            id,
		Name:          s.Name,
		Description:   s.Description,
		Source:        s.Source,
		Installs:      s.Installs,
		RepositoryURL: s.RepositoryURL,
		Provider:      s.Provider,
	}
}
