package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"unitgen.dev/pkg/unitgen/internal/domain"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	var (
		noLLM  bool
		noJest bool
	)

	cmd := &cobra.Command{
		Use:   "run <file-or-folder>",
		Short: "Generate Jest tests",
		Long:  runLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runArgs := domain.RunArgs{
				Input:           parseInput(args),
				IgnoreDirs:      viper.GetStringSlice(ignoreConfigKey),
				GeneratedDir:    m.Path(viper.GetString(generatedDirConfigKey)),
				Reports:         m.Path(viper.GetString(outputFlagName)),
				PopulatedFields: viper.GetStringSlice(populatedFieldsConfigKey),
				LLM: domain.LLMArgs{
					Enabled:     viper.GetBool(llmEnabledKey) && !noLLM,
					Model:       viper.GetString(llmModelKey),
					Temperature: viper.GetFloat64(llmTemperatureKey),
				},
				Jest: domain.JestArgs{
					Enabled: viper.GetBool(jestEnabledKey) && !noJest,
					Config:  viper.GetString(jestConfigKey),
					WorkDir: m.Path(configFolderPath),
				},
			}

			if err := validateArgs(runArgs); err != nil {
				return err
			}

			return workflow.Run(cmd.Context(), runArgs)
		},
	}

	configureRunFlags(cmd, &noLLM, &noJest)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command, noLLM, noJest *bool) {
	cmd.Flags().String(generatedDirFlagName, viper.GetString(generatedDirConfigKey), "directory receiving the generated test files")
	bindFlagToConfig(cmd.Flags().Lookup(generatedDirFlagName), generatedDirConfigKey)

	cmd.Flags().String(modelFlagName, viper.GetString(llmModelKey), "Ollama model used to generate test cases")
	bindFlagToConfig(cmd.Flags().Lookup(modelFlagName), llmModelKey)

	cmd.Flags().Float64(temperatureFlagName, viper.GetFloat64(llmTemperatureKey), "sampling temperature for generation")
	bindFlagToConfig(cmd.Flags().Lookup(temperatureFlagName), llmTemperatureKey)

	cmd.Flags().String(jestConfigFlagName, viper.GetString(jestConfigKey), "Jest config file passed to --config")
	bindFlagToConfig(cmd.Flags().Lookup(jestConfigFlagName), jestConfigKey)

	cmd.Flags().BoolVar(noLLM, noLLMFlagName, false, "write skeletons only, without generated cases")
	cmd.Flags().BoolVar(noJest, noJestFlagName, false, "do not run Jest after generation")
}
