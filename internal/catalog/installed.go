package catalog

import (
	"slices"
)

// InstalledServerRecord is a server entry discovered in one or more client
// configuration files, merged by name across clients.
type InstalledServerRecord struct {
	Name    string
	Command string
	Args    []string
	Env     map[string]string
	Enabled bool

	// Clients holds the sorted identifiers of every client whose
	// configuration references this server name.
	Clients []string
}

// AddClient records that another client references this server name.
// Duplicate identifiers are ignored and the set stays sorted.
func (r *InstalledServerRecord) AddClient(id string) {
	if slices.Contains(r.Clients, id) {
		return
	}
	r.Clients = append(r.Clients, id)
	slices.Sort(r.Clients)
}
