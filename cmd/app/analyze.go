package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"drugdiscovery/internal/client"
	"drugdiscovery/internal/retry"
	"drugdiscovery/internal/sequence"
	"drugdiscovery/internal/transport"
	"drugdiscovery/internal/ui"

	"github.com/spf13/cobra"
)

var (
	serverURL   string
	seqFlag     string
	fastaPath   string
	useSample   bool
	rawJSON     bool
	retries     int
	timeout     time.Duration
	renderWidth int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Submit one sequence to a running server and print the result",
	Example: `  drugdiscovery analyze --sample
  drugdiscovery analyze --fasta egfr.fa --json
  drugdiscovery analyze --sequence MKTAYIAKQRQISFVKSHFSRQLEERLGLIEVQ --retries 3`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		seq, err := resolveSequence()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		res, err := newClient(logger).Analyze(ctx, seq)
		if err != nil {
			if errors.Is(err, client.ErrEmptySequence) {
				return errors.New("please enter a protein sequence")
			}
			return fmt.Errorf("analysis failed: %w", err)
		}

		out := cmd.OutOrStdout()
		if rawJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}
		fmt.Fprintln(out, ui.RenderResult(res, renderWidth))
		fmt.Fprintf(out, "Found %d potential drug candidates\n", len(res.DrugCandidates))
		return nil
	},
}

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print the bundled sample protein sequence",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), sequence.Sample)
	},
}

func init() {
	for _, fs := range []*cobra.Command{analyzeCmd, tuiCmd} {
		fs.Flags().StringVar(&serverURL, "server", "http://localhost:8080", "base URL of the analysis server")
		fs.Flags().IntVar(&retries, "retries", 0, "extra attempts on rate limits and server errors")
		fs.Flags().DurationVar(&timeout, "timeout", 3*time.Minute, "per-analysis timeout")
	}

	analyzeCmd.Flags().StringVarP(&seqFlag, "sequence", "s", "", "protein sequence; '-' reads stdin")
	analyzeCmd.Flags().StringVarP(&fastaPath, "fasta", "f", "", "FASTA file; the first record is analyzed")
	analyzeCmd.Flags().BoolVar(&useSample, "sample", false, "analyze the bundled sample sequence")
	analyzeCmd.Flags().BoolVar(&rawJSON, "json", false, "print the result as JSON")
	analyzeCmd.Flags().IntVar(&renderWidth, "width", 100, "card width for rendered output")
	analyzeCmd.MarkFlagsMutuallyExclusive("sequence", "fasta", "sample")
}

func newClient(logger *slog.Logger) *client.Client {
	return client.New(client.Config{
		BaseURL:    serverURL,
		HTTPClient: transport.NewHTTPClient(0),
		Retry:      retry.WithAttempts(retries + 1),
		Logger:     logger,
	})
}

func resolveSequence() (string, error) {
	switch {
	case useSample:
		return sequence.Sample, nil
	case fastaPath != "":
		f, err := os.Open(fastaPath)
		if err != nil {
			return "", err
		}
		defer f.Close()
		return firstRecord(f)
	case seqFlag == "-":
		return firstRecord(os.Stdin)
	default:
		return seqFlag, nil
	}
}

func firstRecord(r io.Reader) (string, error) {
	records, err := sequence.ReadFASTA(r)
	if err != nil {
		return "", err
	}
	return records[0].Seq, nil
}
