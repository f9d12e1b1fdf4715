package registry

import (
	"fmt"
	"strings"

	"github.com/Nirdeo/AgenticHub/internal/catalog"
)

// listOptions are the query parameters accepted by the registry listing endpoint.
type listOptions struct {
	Cursor string `url:"cursor,omitempty"`
	Limit  int    `url:"limit,omitempty"`
}

// listResponse is the wire shape of one page of server listings.
type listResponse struct {
	Servers  []serverEnvelope `json:"servers"`
	Metadata pageMetadata     `json:"metadata"`
}

type serverEnvelope struct {
	Server serverJSON `json:"server"`
}

type pageMetadata struct {
	NextCursor string `json:"nextCursor"`
	Count      int    `json:"count"`
}

type serverJSON struct {
	Name        string          `json:"name"`
	Title       string          `json:"title,omitempty"`
	Description string          `json:"description,omitempty"`
	Version     string          `json:"version,omitempty"`
	Repository  *repositoryJSON `json:"repository,omitempty"`
	WebsiteURL  string          `json:"websiteUrl,omitempty"`
	IconURL     string          `json:"iconUrl,omitempty"`
	Packages    []packageJSON   `json:"packages,omitempty"`
}

type repositoryJSON struct {
	URL    string `json:"url"`
	Source string `json:"source,omitempty"`
}

type packageJSON struct {
	RegistryType         string         `json:"registryType"`
	Identifier           string         `json:"identifier"`
	Version              string         `json:"version,omitempty"`
	Transport            *transportJSON `json:"transport,omitempty"`
	EnvironmentVariables []envVarJSON   `json:"environmentVariables,omitempty"`
}

type transportJSON struct {
	Type string `json:"type"`
	URL  string `json:"url,omitempty"`
}

type envVarJSON struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsSecret    bool   `json:"isSecret,omitempty"`
	Format      string `json:"format,omitempty"`
}

// ToDomainType converts a wire server into the internal domain representation.
// The name must be present and non-empty.
func (s serverJSON) ToDomainType() (catalog.ServerRecord, error) {
	if strings.TrimSpace(s.Name) == "" {
		return catalog.ServerRecord{}, fmt.Errorf("server listing is missing a name")
	}

	record := catalog.ServerRecord{
		Name:        s.Name,
		Title:       s.Title,
		Description: s.Description,
		Version:     s.Version,
		IconURL:     s.IconURL,
		WebsiteURL:  s.WebsiteURL,
	}

	if s.Repository != nil && strings.TrimSpace(s.Repository.URL) != "" {
		record.Repository = &catalog.Repository{
			URL:    s.Repository.URL,
			Source: s.Repository.Source,
		}
	}

	if len(s.Packages) > 0 {
		record.Packages = make([]catalog.PackageRecord, 0, len(s.Packages))
		for _, p := range s.Packages {
			record.Packages = append(record.Packages, p.ToDomainType())
		}
	}

	return record, nil
}

// ToDomainType converts a wire package into the internal domain representation.
func (p packageJSON) ToDomainType() catalog.PackageRecord {
	pkg := catalog.PackageRecord{
		Registry:   catalog.ParseRegistryKind(p.RegistryType),
		Identifier: p.Identifier,
		Version:    p.Version,
	}

	if p.Transport != nil {
		pkg.Transport = &catalog.Transport{
			Kind: catalog.ParseTransportKind(p.Transport.Type),
			URL:  p.Transport.URL,
		}
	}

	if len(p.EnvironmentVariables) > 0 {
		pkg.EnvVars = make([]catalog.EnvVar, 0, len(p.EnvironmentVariables))
		for _, e := range p.EnvironmentVariables {
			pkg.EnvVars = append(pkg.EnvVars, catalog.EnvVar{
				Name:        e.Name,
				Description: e.Description,
				Secret:      e.IsSecret,
				Format:      e.Format,
			})
		}
	}

	return pkg
}
