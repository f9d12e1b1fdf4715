package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Nirdeo/AgenticHub/internal/aggregate"
	"github.com/Nirdeo/AgenticHub/internal/catalog"
	"github.com/Nirdeo/AgenticHub/internal/clients"
	"github.com/Nirdeo/AgenticHub/internal/cmd"
	cmdopts "github.com/Nirdeo/AgenticHub/internal/cmd/options"
	"github.com/Nirdeo/AgenticHub/internal/filter"
)

type InstallCmd struct {
	*cmd.BaseCmd
	ClientID string
	service  *aggregate.Service
}

func NewInstallCmd(baseCmd *cmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &InstallCmd{
		BaseCmd: baseCmd,
		service: opts.Service,
	}

	cobraCommand := &cobra.Command{
		Use:   "install <server-name>",
		Short: "Installs a registry server into a client's configuration file.",
		Long:  c.longDescription(),
		Args:  cobra.ExactArgs(1),
		RunE:  c.run,
	}

	cobraCommand.Flags().StringVar(
		&c.ClientID,
		"client",
		"",
		"Required, the client to install the server into (e.g. cursor, zed, claude-desktop)",
	)
	_ = cobraCommand.MarkFlagRequired("client")

	return cobraCommand, nil
}

// longDescription returns the long version of the command description.
func (c *InstallCmd) longDescription() string {
	return `Installs a registry server into a client's configuration file. The launch
command is derived from the server's published packages: npm packages run
through npx, PyPI packages through uvx, OCI images through docker.`
}

func (c *InstallCmd) run(cobraCmd *cobra.Command, args []string) error {
	serverName := strings.TrimSpace(args[0])
	if serverName == "" {
		return fmt.Errorf("server name is required and cannot be empty")
	}

	service := c.service
	if service == nil {
		var err error
		service, err = c.CreateService()
		if err != nil {
			return err
		}
	}

	descriptor, err := service.Clients().Descriptor(c.ClientID)
	if err != nil {
		return err
	}

	record, err := findServer(cobraCmd, service, serverName)
	if err != nil {
		return err
	}

	entry, err := clients.ServerEntryFor(record)
	if err != nil {
		return err
	}

	key := serverKey(record)
	if err := service.Clients().Install(descriptor, key, entry); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cobraCmd.OutOrStdout(), "✅ Installed '%s' into %s (%s)\n",
		key, descriptor.DisplayName, descriptor.ConfigPath)

	return nil
}

// serverKey derives the config entry key from a server's registry name,
// e.g. "io.github.acme/time" becomes "time".
func serverKey(record catalog.ServerRecord) string {
	name := record.Name
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// findServer resolves a registry server by exact name, falling back to a
// unique substring match.
func findServer(cobraCmd *cobra.Command, service *aggregate.Service, name string) (catalog.ServerRecord, error) {
	servers, err := service.Registry().FetchAll(cobraCmd.Context())
	if err != nil {
		return catalog.ServerRecord{}, err
	}

	for _, s := range servers {
		if filter.NormalizeString(s.Name) == filter.NormalizeString(name) {
			return s, nil
		}
	}

	matches := aggregate.FilterServers(servers, name)
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return catalog.ServerRecord{}, fmt.Errorf("no server matching '%s'", name)
	default:
		names := make([]string, 0, len(matches))
		for _, m := range matches {
			names = append(names, m.Name)
		}
		return catalog.ServerRecord{}, fmt.Errorf("'%s' is ambiguous, matches: %s", name, strings.Join(names, ", "))
	}
}
