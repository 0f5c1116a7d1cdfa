/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: decode.go
Description: Decode command implementation for the Akaylee Inspector. Runs the
full adaptive decoding pipeline over a capture envelope and renders the results
in the requested output format with per-block outcome reporting.
*/

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/akaylee-inspector/pkg/pipeline"
	"github.com/kleascm/akaylee-inspector/pkg/render"
)

// RunDecode executes the decode pipeline over the selected input document
func RunDecode(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(statusOut, "🔍 Akaylee Inspector - Decoding Capture Envelope")
	fmt.Fprintln(statusOut, "================================================")
	fmt.Fprintln(statusOut)

	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Setup logging
	if err := SetupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	format, err := render.ParseFormat(viper.GetString("output"))
	if err != nil {
		return err
	}

	document, err := readSource(viper.GetString("input"))
	if err != nil {
		return err
	}

	logger, err := NewPipelineLogger()
	if err != nil {
		return err
	}
	defer logger.Close()

	results, err := pipeline.New(logger).ProcessDocument(document)
	if err != nil {
		return fmt.Errorf("decoding failed: %w", err)
	}

	out, closeOut, err := openOutput(viper.GetString("out_file"))
	if err != nil {
		return err
	}
	defer closeOut()

	if err := render.Render(out, results, format); err != nil {
		return fmt.Errorf("failed to render results: %w", err)
	}

	printDecodeSummary(results)
	return nil
}

// printDecodeSummary reports the per-block outcomes after rendering
func printDecodeSummary(results []pipeline.BlockResult) {
	outcomes := make(map[string]int)
	for _, r := range results {
		outcomes[r.Outcome]++
	}

	fmt.Fprintln(statusOut)
	fmt.Fprintf(statusOut, "✨ Decoded %d block(s)\n", len(results))
	for outcome, count := range outcomes {
		fmt.Fprintf(statusOut, "   %s: %d\n", outcome, count)
	}
}
