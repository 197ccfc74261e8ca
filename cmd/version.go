package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the unitgen version",
		Long:  "Displays the unitgen build version, the Go toolchain and the default model.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			version := "unknown"
			goVersion := "unknown"

			if info, ok := debug.ReadBuildInfo(); ok {
				if info.Main.Version != "" {
					version = info.Main.Version
				}

				goVersion = info.GoVersion
			}

			cmd.Println("unitgen version\t", version)
			cmd.Println("go version\t", goVersion)
			cmd.Println("default model\t", defaultLLMModel)
		},
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
