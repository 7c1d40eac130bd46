package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"wttrloc/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "wttrloc",
	Short: "Weather question to wttr.in location token",
	Long: `wttrloc asks a language model to pull the location out of a weather question
and normalizes it into a wttr.in token (city, IATA airport code or ~place).

Without a subcommand it runs the built-in regression cases.`,
	SilenceUsage: true,
	RunE:         runTests,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./configs/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("model", "", "model identifier sent to the inference endpoint")
	rootCmd.PersistentFlags().String("base-url", "", "inference endpoint base URL")

	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("inference.model", rootCmd.PersistentFlags().Lookup("model"))
	viper.BindPFlag("inference.base_url", rootCmd.PersistentFlags().Lookup("base-url"))
}

func initConfig() {
	config.Init(cfgFile)
}
