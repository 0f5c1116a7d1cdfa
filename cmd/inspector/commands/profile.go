/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: profile.go
Description: Profile command implementation for the Akaylee Inspector. Analyzes
the byte distribution of an arbitrary file and prints the classification with
frequency ranking and hex preview.
*/

package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/akaylee-inspector/pkg/profile"
)

// RunProfile analyzes the byte population of the selected file
func RunProfile(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(statusOut, "📊 Akaylee Inspector - Profiling Byte Distribution")
	fmt.Fprintln(statusOut, "==================================================")
	fmt.Fprintln(statusOut)

	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Setup logging
	if err := SetupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	data, err := readSource(viper.GetString("profile_input"))
	if err != nil {
		return err
	}

	summary := profile.Profile([]byte(data))

	out, err := json.MarshalIndent(summary.Describe(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize profile: %w", err)
	}
	fmt.Println(string(out))

	fmt.Fprintln(statusOut)
	fmt.Fprintf(statusOut, "✨ Classified as %s (%d bytes)\n", summary.Classification, summary.Length)
	return nil
}
