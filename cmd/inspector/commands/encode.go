/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: encode.go
Description: Encode command implementation for the Akaylee Inspector. Produces a
capture envelope from a plain JSON document, the reverse path of decode, for
generating test captures and exercising the round trip.
*/

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/akaylee-inspector/pkg/envelope"
)

// RunEncode builds a capture envelope from a JSON document
func RunEncode(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(statusOut, "📦 Akaylee Inspector - Encoding Capture Envelope")
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

	document, err := readSource(viper.GetString("encode_input"))
	if err != nil {
		return err
	}

	result, err := envelope.BuildDocument([]byte(document))
	if err != nil {
		return fmt.Errorf("encoding failed: %w", err)
	}

	out, closeOut, err := openOutput(viper.GetString("encode_out_file"))
	if err != nil {
		return err
	}
	defer closeOut()

	if _, err := fmt.Fprintln(out, result); err != nil {
		return fmt.Errorf("failed to write envelope: %w", err)
	}

	fmt.Fprintln(statusOut)
	fmt.Fprintln(statusOut, "✨ Envelope encoded successfully!")
	return nil
}
