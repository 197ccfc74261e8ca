// Package cmd provides the root command and CLI setup for unitgen.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"unitgen.dev/pkg/unitgen/internal/adapter"
	"unitgen.dev/pkg/unitgen/internal/controller"
	"unitgen.dev/pkg/unitgen/internal/domain"
	"unitgen.dev/pkg/unitgen/internal/domain/policy"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

var parserAdapter adapter.JSParserAdapter
var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var testAdapter adapter.TestRunnerAdapter
var generatorAdapter adapter.GeneratorAdapter
var analyzer domain.Analyzer
var orchestrator domain.Orchestrator
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

// ignoreDirs is a root-level flag naming directories skipped while scanning.
var ignoreDirs []string

// verboseFlag switches the log file to debug level.
var verboseFlag bool

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	parserAdapter = adapter.NewTreeSitterJSParserAdapter()
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
	testAdapter = adapter.NewLocalTestRunnerAdapter(secondsKey(jestTimeoutKey))
	generatorAdapter = newGeneratorAdapter()

	renderer := domain.NewMockRenderer(policy.DefaultStandIns)
	analyzer = domain.NewAnalyzer(parserAdapter, policy.NewNodeBuiltins(), renderer)
	orchestrator = domain.NewOrchestrator(generatorAdapter, domain.NewSanitizer(policy.DefaultDenyList))
	workflow = domain.NewWorkflow(
		fsAdapter,
		reportStore,
		testAdapter,
		ui,
		analyzer,
		orchestrator,
	)
}

// newGeneratorAdapter stacks the response cache over the rate limiter over
// the Ollama client. Cache hits are not throttled.
func newGeneratorAdapter() adapter.GeneratorAdapter {
	client := adapter.NewOllamaGeneratorAdapter(viper.GetString(llmEndpointKey), secondsKey(llmTimeoutKey))
	limited := adapter.NewRateLimitedGeneratorAdapter(client, viper.GetInt(llmRatePerMinuteKey))

	cached, err := adapter.NewCachedGeneratorAdapter(limited, viper.GetInt(llmCacheSizeKey))
	if err != nil {
		cobra.CheckErr(fmt.Errorf("failed to create generator cache: %w", err))
	}

	return cached
}

const inputHelp = `Accepts a single .js file or a folder. Folders are scanned recursively for
.js files; node_modules, .git, dist, build, coverage, .next, .cache and out
are skipped unless --ignore says otherwise.`

const rootLongDescription = `UnitGen analyzes JavaScript functions, plans Jest mocks for the modules they
depend on and writes a runnable ESM test file per exported function. Test
cases can be filled in by a local Ollama model; every generated case is
validated before it is accepted.

` + inputHelp

const runLongDescription = `Generate Jest tests for the given file or folder, optionally fill them with
model-generated cases, run Jest and write the final report.

` + inputHelp

const planLongDescription = `Analyze the given file or folder and print the mock plan and rendered
jest.mock calls of every exported function. No file is written.

` + inputHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "unitgen",
		Short:         "Jest test generator for JavaScript functions",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger("", viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for the final report",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringSliceVarP(&ignoreDirs, ignoreFlagName, "x", viper.GetStringSlice(ignoreConfigKey), "directory names skipped while scanning folders (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(ignoreFlagName), ignoreConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "write debug logs")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parseInput(args []string) m.Path {
	if len(args) == 0 {
		return ""
	}

	return m.Path(args[0])
}
