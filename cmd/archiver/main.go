// Command archiver compresses and restores files with the toolkit's codecs.
//
// The core operates on whole in-memory buffers; this command is the thin
// file I/O collaborator around it.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	archiver "github.com/Seraph-coder/lab-2-archiver-program"
	"github.com/Seraph-coder/lab-2-archiver-program/format"
)

var (
	logLevel  string
	methodArg string

	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "archiver",
	Short:         "Lossless compression toolkit (RLE, LZW, Huffman)",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogger()
	},
}

var compressCmd = &cobra.Command{
	Use:   "compress <input> <output>",
	Short: "Compress a file into a self-describing archive",
	Args:  cobra.ExactArgs(2),
	RunE:  runCompress,
}

var decompressCmd = &cobra.Command{
	Use:   "decompress <input> <output>",
	Short: "Restore a file from an archive",
	Args:  cobra.ExactArgs(2),
	RunE:  runDecompress,
}

var verifyCmd = &cobra.Command{
	Use:   "verify <archive>",
	Short: "Decompress an archive in memory and report the restored digest",
	Args:  cobra.ExactArgs(1),
	RunE:  runVerify,
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func execute() error {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	compressCmd.Flags().StringVarP(&methodArg, "method", "m", "auto", "compression method (rle, lzw, huffman, auto)")

	rootCmd.AddCommand(compressCmd)
	rootCmd.AddCommand(decompressCmd)
	rootCmd.AddCommand(verifyCmd)

	return rootCmd.Execute()
}

func setupLogger() error {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}

	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()

	return nil
}

// parseMethod maps the -m flag to a format.Method; auto reports true when
// the codec should be chosen from the input statistics.
func parseMethod(arg string) (format.Method, bool, error) {
	switch strings.ToLower(arg) {
	case "rle":
		return format.MethodRLE, false, nil
	case "lzw":
		return format.MethodLZW, false, nil
	case "huffman":
		return format.MethodHuffman, false, nil
	case "auto":
		return 0, true, nil
	default:
		return 0, false, fmt.Errorf("unknown method %q (want rle, lzw, huffman or auto)", arg)
	}
}

func runCompress(cmd *cobra.Command, args []string) error {
	inputPath, outputPath := args[0], args[1]

	method, auto, err := parseMethod(methodArg)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", inputPath, err)
	}

	var archive []byte
	if auto {
		archive, method, err = archiver.CompressAuto(data)
	} else {
		archive, err = archiver.Compress(data, method)
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, archive, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	ratio := 0.0
	if len(data) > 0 {
		ratio = float64(len(archive)) / float64(len(data)) * 100
	}
	log.Info().
		Str("input", inputPath).
		Str("output", outputPath).
		Stringer("method", method).
		Bool("auto", auto).
		Int("original_bytes", len(data)).
		Int("archive_bytes", len(archive)).
		Float64("ratio_pct", ratio).
		Msg("compressed")

	return nil
}

func runDecompress(cmd *cobra.Command, args []string) error {
	inputPath, outputPath := args[0], args[1]

	archive, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", inputPath, err)
	}

	data, err := archiver.Decompress(archive)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	log.Info().
		Str("input", inputPath).
		Str("output", outputPath).
		Int("archive_bytes", len(archive)).
		Int("restored_bytes", len(data)).
		Msg("decompressed")

	return nil
}

func runVerify(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	archive, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", inputPath, err)
	}

	data, err := archiver.Decompress(archive)
	if err != nil {
		return fmt.Errorf("archive does not decompress cleanly: %w", err)
	}

	log.Info().
		Str("archive", inputPath).
		Uint8("method_tag", archive[0]).
		Int("restored_bytes", len(data)).
		Str("xxhash64", fmt.Sprintf("%016x", archiver.Checksum(data))).
		Msg("archive verified")

	return nil
}
