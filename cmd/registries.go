package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Nirdeo/AgenticHub/internal/cmd"
	cmdopts "github.com/Nirdeo/AgenticHub/internal/cmd/options"
	"github.com/Nirdeo/AgenticHub/internal/cmd/output"
	"github.com/Nirdeo/AgenticHub/internal/filter"
	"github.com/Nirdeo/AgenticHub/internal/printer"
	"github.com/Nirdeo/AgenticHub/internal/registry"
)

type RegistriesCmd struct {
	*cmd.BaseCmd
	Format cmd.OutputFormat
}

func NewRegistriesCmd(baseCmd *cmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	if _, err := cmdopts.NewOptions(opt...); err != nil {
		return nil, err
	}

	c := &RegistriesCmd{
		BaseCmd: baseCmd,
		Format:  cmd.FormatText,
	}

	cobraCommand := &cobra.Command{
		Use:   "registries",
		Short: "Lists known MCP registries; the active one is marked.",
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

func (c *RegistriesCmd) run(cobraCmd *cobra.Command, _ []string) error {
	active := filter.NormalizeString(c.ActiveRegistryName())

	descriptors := registry.Descriptors()
	views := make([]printer.RegistryView, 0, len(descriptors))
	for _, d := range descriptors {
		views = append(views, printer.NewRegistryView(d, filter.NormalizeString(d.Name) == active))
	}

	return registryHandler(c.Format, cobraCmd).HandleResults(views...)
}

func registryHandler(format cmd.OutputFormat, cobraCmd *cobra.Command) output.Handler[printer.RegistryView] {
	w := cobraCmd.OutOrStdout()

	switch format {
	case cmd.FormatJSON:
		return output.NewJSONHandler[printer.RegistryView](w, 2)
	case cmd.FormatYAML:
		return output.NewYAMLHandler[printer.RegistryView](w, 2)
	default:
		return output.NewTextHandler[printer.RegistryView](w, printer.NewRegistryPrinter())
	}
}
