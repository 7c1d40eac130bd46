package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"wttrloc/internal/harness"
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Run the built-in location regression cases",
	Long: `Run every built-in question through the model and compare the token with the
expected one. Failing cases are reported but do not change the exit status.`,
	RunE: runTests,
}

func runTests(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	harness.NewRunner(a.extractor, cmd.OutOrStdout(), a.log).Run(ctx, harness.DefaultCases())
	return nil
}

func SetupTestCmd() {
	rootCmd.AddCommand(testCmd)
}
