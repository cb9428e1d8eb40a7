package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "1.1.0"

// Exit codes
const (
	ExitSuccess      = 0
	ExitRuntimeError = 1
	ExitUsageError   = 2
)

var rootCmd = &cobra.Command{
	Use:   "readme-consultant",
	Short: "AI powered tool to review and enhance READMEs",
	Long:  "Readme-consultant reviews and rewrites a repository's README using a locally hosted language model.",
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(enhanceCmd)
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print readme-consultant version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "readme-consultant version %s\n", version)
	},
}
