package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Nirdeo/AgenticHub/internal/aggregate"
	"github.com/Nirdeo/AgenticHub/internal/catalog"
	"github.com/Nirdeo/AgenticHub/internal/cmd"
	cmdopts "github.com/Nirdeo/AgenticHub/internal/cmd/options"
	"github.com/Nirdeo/AgenticHub/internal/cmd/output"
	"github.com/Nirdeo/AgenticHub/internal/printer"
)

const (
	sortName    = "name"
	sortStars   = "stars"
	sortRecency = "recency"
)

type SearchCmd struct {
	*cmd.BaseCmd
	Kind    string
	Sort    string
	Format  cmd.OutputFormat
	service *aggregate.Service
}

func NewSearchCmd(baseCmd *cmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &SearchCmd{
		BaseCmd: baseCmd,
		Sort:    sortName,
		Format:  cmd.FormatText,
		service: opts.Service,
	}

	cobraCommand := &cobra.Command{
		Use:   "search [query]",
		Short: "Searches the active registry for MCP servers.",
		Long:  c.longDescription(),
		Args:  cobra.MaximumNArgs(1),
		RunE:  c.run,
	}

	cobraCommand.Flags().StringVar(
		&c.Kind,
		"kind",
		"",
		"Optional, only show servers publishing packages for this registry kind (npm, pypi, oci, mcpb)",
	)

	cobraCommand.Flags().StringVar(
		&c.Sort,
		"sort",
		sortName,
		"Optional, result ordering: name, stars or recency",
	)

	allowed := cmd.AllowedOutputFormats()
	cobraCommand.Flags().Var(
		&c.Format,
		"format",
		fmt.Sprintf("Optional, output format, one of: %s", allowed.String()),
	)

	return cobraCommand, nil
}

// longDescription returns the long version of the command description.
func (c *SearchCmd) longDescription() string {
	return `Searches the active registry for MCP servers. Without a query, lists every
server. Results are deduplicated by repository and can be enriched with
GitHub stats when the metadata source is reachable.`
}

func (c *SearchCmd) run(cobraCmd *cobra.Command, args []string) error {
	service := c.service
	if service == nil {
		var err error
		service, err = c.CreateService()
		if err != nil {
			return err
		}
	}

	snapshot, err := service.Refresh(cobraCmd.Context())
	if err != nil {
		return err
	}

	servers := snapshot.Servers
	if len(args) == 1 {
		servers = aggregate.FilterServers(servers, strings.TrimSpace(args[0]))
	}

	if c.Kind != "" {
		kind := catalog.ParseRegistryKind(c.Kind)
		if kind == catalog.RegistryKindUnknown {
			return fmt.Errorf("unknown registry kind '%s'", c.Kind)
		}
		servers = aggregate.FilterByKind(servers, kind)
	}

	switch c.Sort {
	case sortName:
		servers = aggregate.SortByName(servers)
	case sortStars:
		servers = aggregate.SortByStars(servers, service.MetadataFor)
	case sortRecency:
		servers = aggregate.SortByRecency(servers, service.MetadataFor)
	default:
		return fmt.Errorf("invalid sort '%s', must be one of: %s, %s, %s", c.Sort, sortName, sortStars, sortRecency)
	}

	views := make([]printer.ServerView, 0, len(servers))
	for _, s := range servers {
		var meta *catalog.MetadataRecord
		if m, ok := service.MetadataFor(s); ok {
			meta = &m
		}

		var installedIn []string
		if installed, ok := snapshot.Installed[s.Name]; ok {
			installedIn = installed.Clients
		}

		views = append(views, printer.NewServerView(s, meta, installedIn))
	}

	return serverHandler(c.Format, cobraCmd).HandleResults(views...)
}

// serverHandler builds the output handler for ServerViews in the selected
// format, writing to the command's stdout.
func serverHandler(format cmd.OutputFormat, cobraCmd *cobra.Command) output.Handler[printer.ServerView] {
	w := cobraCmd.OutOrStdout()

	switch format {
	case cmd.FormatJSON:
		return output.NewJSONHandler[printer.ServerView](w, 2)
	case cmd.FormatYAML:
		return output.NewYAMLHandler[printer.ServerView](w, 2)
	default:
		return output.NewTextHandler[printer.ServerView](w, printer.NewServerPrinter())
	}
}
