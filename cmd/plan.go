package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"unitgen.dev/pkg/unitgen/internal/domain"
)

// planCmd represents the plan command.
var planCmd = newPlanCmd()

func newPlanCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "plan <file-or-folder>",
		Short: "Print the mock plan without generating tests",
		Long:  planLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			planArgs := domain.PlanArgs{
				Input:      parseInput(args),
				IgnoreDirs: viper.GetStringSlice(ignoreConfigKey),
				Format:     format,
			}

			if err := validateArgs(planArgs); err != nil {
				return err
			}

			return workflow.Plan(cmd.Context(), planArgs)
		},
	}

	cmd.Flags().StringVarP(&format, formatFlagName, "f", defaultPlanFormat, "output format: text, json or yaml")

	return cmd
}

func init() {
	rootCmd.AddCommand(planCmd)
}
