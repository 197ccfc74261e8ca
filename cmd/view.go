package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"unitgen.dev/pkg/unitgen/internal/domain"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View the final report of the last run",
		Long:  "View the final-report.json written by the last run from the reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			viewArgs := domain.ViewArgs{Reports: m.Path(viper.GetString(outputFlagName))}

			if err := validateArgs(viewArgs); err != nil {
				return err
			}

			return workflow.View(cmd.Context(), viewArgs)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
