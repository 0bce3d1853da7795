package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vpraion/homedia/internal/deps"
	"github.com/vpraion/homedia/internal/services"
)

func newToolsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "Report availability of the external tools homedia depends on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			statuses := deps.CheckBinaries(deps.Required(cfg.Encoder.FFmpegBinary, cfg.Encoder.FFprobeBinary))

			rows := make([][]string, 0, len(statuses))
			for _, status := range statuses {
				state := "ok"
				if !status.Available {
					state = "missing"
					if status.Detail != "" {
						state = "missing (" + status.Detail + ")"
					}
				}
				rows = append(rows, []string{status.Name, status.Command, state, status.Description})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Tool", "Command", "Status", "Purpose"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
			))

			if missing, ok := deps.MissingRequired(statuses); ok {
				return services.Wrap(services.ErrConfiguration, "cli", "check tools",
					fmt.Sprintf("%s unavailable", missing.Name), nil)
			}
			return nil
		},
	}
}
