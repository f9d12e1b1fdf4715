package catalog

// SkillRecord is one entry from a skills catalog: an installable agent
// capability bundle, unrelated to MCP servers.
type SkillRecord struct {
	// ID is prefixed with the provider tag so identifiers stay unique when
	// catalogs from several providers are merged.
	ID          string
	Name        string
	Description string

	// Source locates the skill inside its repository, shaped as
	// "owner/repo" or "owner/repo/subpath".
	Source string

	Installs      int
	RepositoryURL string
	Provider      string
}
