// Package printer renders catalog records for CLI output, both as text and
// as serializable views for structured formats.
package printer

import (
	"fmt"
	"sort"
	"time"

	"github.com/Nirdeo/AgenticHub/internal/catalog"
	"github.com/Nirdeo/AgenticHub/internal/clients"
	"github.com/Nirdeo/AgenticHub/internal/registry"
)

// ServerView is the output shape for one registry server, optionally
// enriched with repository metadata and installation state.
type ServerView struct {
	Name        string   `json:"name"                  yaml:"name"`
	DisplayName string   `json:"displayName"           yaml:"displayName"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Version     string   `json:"version,omitempty"     yaml:"version,omitempty"`
	Repository  string   `json:"repository,omitempty"  yaml:"repository,omitempty"`
	Packages    []string `json:"packages,omitempty"    yaml:"packages,omitempty"`
	Stars       *int     `json:"stars,omitempty"       yaml:"stars,omitempty"`
	Activity    string   `json:"activity,omitempty"    yaml:"activity,omitempty"`
	LastCommit  string   `json:"lastCommit,omitempty"  yaml:"lastCommit,omitempty"`
	InstalledIn []string `json:"installedIn,omitempty" yaml:"installedIn,omitempty"`
}

// NewServerView builds a ServerView. meta may be nil when no enrichment is
// available; installedIn may be nil when the server is not installed
// anywhere.
func NewServerView(record catalog.ServerRecord, meta *catalog.MetadataRecord, installedIn []string) ServerView {
	view := ServerView{
		Name:        record.Name,
		DisplayName: record.DisplayName(),
		Description: record.Description,
		Version:     record.Version,
		Repository:  record.RepositoryURL(),
		InstalledIn: installedIn,
	}

	for _, pkg := range record.Packages {
		view.Packages = append(view.Packages, fmt.Sprintf("%s:%s", pkg.Registry, pkg.Identifier))
	}

	if meta != nil {
		stars := meta.Stars
		view.Stars = &stars
		view.Activity = meta.Activity(time.Now()).String()
		if meta.LastCommit != nil {
			view.LastCommit = meta.LastCommit.Format(time.DateOnly)
		}
	}

	return view
}

// SkillView is the output shape for one agent skill.
type SkillView struct {
	ID          string `json:"id"                    yaml:"id"`
	Name        string `json:"name"                  yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Source      string `json:"source"                yaml:"source"`
	Installs    int    `json:"installs"              yaml:"installs"`
	Provider    string `json:"provider"              yaml:"provider"`
}

func NewSkillView(record catalog.SkillRecord) SkillView {
	return SkillView{
		ID:          record.ID,
		Name:        record.Name,
		Description: record.Description,
		Source:      record.Source,
		Installs:    record.Installs,
		Provider:    record.Provider,
	}
}

// ClientView is the output shape for one detected client and the servers
// configured in it.
type ClientView struct {
	ID          string   `json:"id"                   yaml:"id"`
	DisplayName string   `json:"displayName"          yaml:"displayName"`
	Category    string   `json:"category"             yaml:"category"`
	ConfigPath  string   `json:"configPath,omitempty" yaml:"configPath,omitempty"`
	Servers     []string `json:"servers,omitempty"    yaml:"servers,omitempty"`
}

func NewClientView(discovery clients.Discovery) ClientView {
	view := ClientView{
		ID:          discovery.Client.ID,
		DisplayName: discovery.Client.DisplayName,
		Category:    string(discovery.Client.Category),
		ConfigPath:  discovery.Client.ConfigPath,
	}

	for name := range discovery.Servers {
		view.Servers = append(view.Servers, name)
	}
	sort.Strings(view.Servers)

	return view
}

// RegistryView is the output shape for one known registry.
type RegistryView struct {
	Name        string `json:"name"     yaml:"name"`
	DisplayName string `json:"displayName" yaml:"displayName"`
	BaseURL     string `json:"baseUrl"  yaml:"baseUrl"`
	Category    string `json:"category" yaml:"category"`
	Official    bool   `json:"official" yaml:"official"`
	Active      bool   `json:"active"   yaml:"active"`
}

func NewRegistryView(d registry.Descriptor, active bool) RegistryView {
	return RegistryView{
		Name:        d.Name,
		DisplayName: d.DisplayName,
		BaseURL:     d.BaseURL,
		Category:    d.Category,
		Official:    d.Official,
		Active:      active,
	}
}
