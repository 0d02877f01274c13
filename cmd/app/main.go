package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "drugdiscovery",
	Short: "Protein sequence → drug candidate analysis via an AI gateway",
	Long: `drugdiscovery serves an HTTP endpoint that forwards a protein sequence to an
OpenAI-compatible chat-completion gateway and returns the JSON analysis the
model produces. The analyze and tui commands are clients for that endpoint.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "optional YAML config file (env vars take precedence)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(sampleCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
