/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Main command-line interface for the Akaylee Inspector. Provides
comprehensive command-line options, configuration management, and beautiful
user interface for decoding, encoding and profiling capture documents with
advanced logging capabilities.
*/

package main

import (
	"fmt"
	"os"

	"github.com/kleascm/akaylee-inspector/cmd/inspector/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Configuration
	configFile string
	logLevel   string
	jsonLogs   bool

	// Input configuration
	inputPath string

	// Output configuration
	outputFormat string
	outputPath   string

	// Logging configuration
	logDir      string
	logFormat   string
	logMaxFiles int
	logMaxSize  int64
	logCompress bool
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "akaylee-inspector",
		Short: "Akaylee Inspector - Adaptive decoder for ambiguously framed capture envelopes",
		Long: `Akaylee Inspector is a resilient decoder for self-describing structured documents
wrapped in capture envelopes: header/payload block pairs carrying LZ4-compressed
MessagePack data. It tolerates ambiguous framing, damaged streams and misleading
size hints, recovering as much structure as the bytes allow.`,
		Version: "1.0.0",
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Use JSON log format")

	// Add logging-specific flags
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "./logs", "Log output directory")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "custom", "Log format (text, json, custom)")
	rootCmd.PersistentFlags().IntVar(&logMaxFiles, "log-max-files", 10, "Maximum number of log files to keep")
	rootCmd.PersistentFlags().Int64Var(&logMaxSize, "log-max-size", 100*1024*1024, "Maximum log file size in bytes")
	rootCmd.PersistentFlags().BoolVar(&logCompress, "log-compress", false, "Compress rotated log files")

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("json_logs", rootCmd.PersistentFlags().Lookup("json-logs"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_max_files", rootCmd.PersistentFlags().Lookup("log-max-files"))
	viper.BindPFlag("log_max_size", rootCmd.PersistentFlags().Lookup("log-max-size"))
	viper.BindPFlag("log_compress", rootCmd.PersistentFlags().Lookup("log-compress"))

	// Add decode command
	decodeCmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a capture envelope document",
		Long: `Decode a capture envelope into its structured content. Runs the full
adaptive pipeline: envelope parsing, size-hint decoding, the decompression
waterfall and layered value interpretation with partial recovery.`,
		RunE: commands.RunDecode,
	}

	decodeCmd.Flags().StringVar(&inputPath, "input", "", "Input document path ('-' for stdin, empty for the embedded reference capture)")
	decodeCmd.Flags().StringVar(&outputFormat, "output", "json", "Output format (json, hex, binary, human)")
	decodeCmd.Flags().StringVar(&outputPath, "out-file", "", "Write output to file instead of stdout")

	viper.BindPFlag("input", decodeCmd.Flags().Lookup("input"))
	viper.BindPFlag("output", decodeCmd.Flags().Lookup("output"))
	viper.BindPFlag("out_file", decodeCmd.Flags().Lookup("out-file"))

	rootCmd.AddCommand(decodeCmd)

	// Add encode command
	encodeCmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a JSON document into a capture envelope",
		Long: `Encode a plain JSON document into a one-block capture envelope:
MessagePack serialization, LZ4 block compression and header generation.
The reverse path of decode, useful for producing test captures.`,
		RunE: commands.RunEncode,
	}

	encodeCmd.Flags().String("input", "", "Input JSON document path ('-' for stdin, required)")
	encodeCmd.Flags().String("out-file", "", "Write envelope to file instead of stdout")

	encodeCmd.MarkFlagRequired("input")

	viper.BindPFlag("encode_input", encodeCmd.Flags().Lookup("input"))
	viper.BindPFlag("encode_out_file", encodeCmd.Flags().Lookup("out-file"))

	rootCmd.AddCommand(encodeCmd)

	// Add profile command
	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "Profile the byte distribution of a raw file",
		Long: `Analyze the byte population of a raw file: category counts, histogram
ranking, hex preview and a coarse classification separating text, zero-padded,
compressed-or-encrypted and generic binary data.`,
		RunE: commands.RunProfile,
	}

	profileCmd.Flags().String("input", "", "Input file path ('-' for stdin, required)")

	profileCmd.MarkFlagRequired("input")

	viper.BindPFlag("profile_input", profileCmd.Flags().Lookup("input"))

	rootCmd.AddCommand(profileCmd)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
