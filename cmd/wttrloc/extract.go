package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
)

var extractRaw bool

var extractCmd = &cobra.Command{
	Use:   "extract <question...>",
	Short: "Print the location token for one weather question",
	Example: `  wttrloc extract "How chilly is it at the Empire State Building?"
  wttrloc extract --raw "$(cat prompt.txt)"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		question := strings.Join(args, " ")

		var token string
		if extractRaw {
			token, err = a.extractor.Extract(ctx, question)
		} else {
			token, err = a.extractor.ExtractQuestion(ctx, question)
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func SetupExtractCmd() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().BoolVar(&extractRaw, "raw", false, "send the argument as the full prompt, without the instruction template")
}
