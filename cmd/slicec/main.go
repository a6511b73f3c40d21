// Command slicec is the CLI driver over internal/compiler (SPEC_FULL.md
// §6.1), grounded on the teacher's cmd/surge/main.go root-command shape:
// a cobra root command with global flags, three subcommands (compile,
// dump-ast, version), and a short timeout-cancellation wrapper.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"slicec/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "slicec",
	Short: "Slice IDL compiler front end",
	Long:  "slicec lexes, parses, resolves, and validates Slice IDL source files.",
}

var timeoutCancel context.CancelFunc

func main() {
	rootCmd.Version = version.String()
	rootCmd.PersistentPreRunE = applyTimeout
	rootCmd.PersistentPostRun = cleanupTimeout

	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(dumpASTCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize diagnostic output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("timings", false, "print per-stage timing after compiling")
	rootCmd.PersistentFlags().Int("timeout", 30, "command timeout in seconds")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func applyTimeout(cmd *cobra.Command, _ []string) error {
	secs, err := cmd.Root().PersistentFlags().GetInt("timeout")
	if err != nil {
		return fmt.Errorf("failed to read timeout flag: %w", err)
	}
	if secs <= 0 {
		return fmt.Errorf("timeout must be greater than zero")
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(secs)*time.Second)
	timeoutCancel = cancel
	cmd.SetContext(ctx)
	cmd.Root().SetContext(ctx)
	return nil
}

func cleanupTimeout(*cobra.Command, []string) {
	if timeoutCancel != nil {
		timeoutCancel()
		timeoutCancel = nil
	}
}
