package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Nirdeo/AgenticHub/internal/aggregate"
	"github.com/Nirdeo/AgenticHub/internal/cmd"
	cmdopts "github.com/Nirdeo/AgenticHub/internal/cmd/options"
)

type UninstallCmd struct {
	*cmd.BaseCmd
	ClientID string
	service  *aggregate.Service
}

func NewUninstallCmd(baseCmd *cmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &UninstallCmd{
		BaseCmd: baseCmd,
		service: opts.Service,
	}

	cobraCommand := &cobra.Command{
		Use:   "uninstall <server-name>",
		Short: "Removes a server from a client's configuration file.",
		Long:  c.longDescription(),
		Args:  cobra.ExactArgs(1),
		RunE:  c.run,
	}

	cobraCommand.Flags().StringVar(
		&c.ClientID,
		"client",
		"",
		"Optional, the client to remove the server from; all detected clients when omitted",
	)

	return cobraCommand, nil
}

// longDescription returns the long version of the command description.
func (c *UninstallCmd) longDescription() string {
	return `Removes a server entry from a client's configuration file. Removing a server
that is not configured is not an error. Without --client, the server is
removed from every detected client.`
}

func (c *UninstallCmd) run(cobraCmd *cobra.Command, args []string) error {
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

	manager := service.Clients()

	if c.ClientID != "" {
		descriptor, err := manager.Descriptor(c.ClientID)
		if err != nil {
			return err
		}

		if err := manager.Uninstall(descriptor, serverName); err != nil {
			return err
		}

		_, _ = fmt.Fprintf(cobraCmd.OutOrStdout(), "🗑️  Removed '%s' from %s\n", serverName, descriptor.DisplayName)
		return nil
	}

	discoveries, err := manager.DiscoverAll()
	if err != nil {
		return err
	}

	for _, d := range discoveries {
		if err := manager.Uninstall(d.Client, serverName); err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintf(cobraCmd.OutOrStdout(), "🗑️  Removed '%s' from %d client%s\n",
		serverName, len(discoveries), map[bool]string{true: "s"}[len(discoveries) > 1])

	return nil
}
