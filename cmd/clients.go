package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Nirdeo/AgenticHub/internal/aggregate"
	"github.com/Nirdeo/AgenticHub/internal/cmd"
	cmdopts "github.com/Nirdeo/AgenticHub/internal/cmd/options"
	"github.com/Nirdeo/AgenticHub/internal/cmd/output"
	"github.com/Nirdeo/AgenticHub/internal/printer"
)

type ClientsCmd struct {
	*cmd.BaseCmd
	Format  cmd.OutputFormat
	service *aggregate.Service
}

func NewClientsCmd(baseCmd *cmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &ClientsCmd{
		BaseCmd: baseCmd,
		Format:  cmd.FormatText,
		service: opts.Service,
	}

	cobraCommand := &cobra.Command{
		Use:   "clients",
		Short: "Lists AI-agent clients detected on this machine and their configured servers.",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}

	allowed := cmd.AllowedOutputFormats()
	cobraCommand.Flags().Var(
		&c.Format,
		"format",
		fmt.Sprintf("Optional, output format, one of: %s", allowed.String()),
	)

	return cobraCommand, nil
}

func (c *ClientsCmd) run(cobraCmd *cobra.Command, _ []string) error {
	service := c.service
	if service == nil {
		var err error
		service, err = c.CreateService()
		if err != nil {
			return err
		}
	}

	discoveries, err := service.Clients().DiscoverAll()
	if err != nil {
		return err
	}

	views := make([]printer.ClientView, 0, len(discoveries))
	for _, d := range discoveries {
		views = append(views, printer.NewClientView(d))
	}

	return clientHandler(c.Format, cobraCmd).HandleResults(views...)
}

func clientHandler(format cmd.OutputFormat, cobraCmd *cobra.Command) output.Handler[printer.ClientView] {
	w := cobraCmd.OutOrStdout()

	switch format {
	case cmd.FormatJSON:
		return output.NewJSONHandler[printer.ClientView](w, 2)
	case cmd.FormatYAML:
		return output.NewYAMLHandler[printer.ClientView](w, 2)
	default:
		return output.NewTextHandler[printer.ClientView](w, printer.NewClientPrinter())
	}
}
