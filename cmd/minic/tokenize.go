package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"minic/internal/driver"
	"minic/internal/symfmt"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.mc",
	Short: "Tokenize a mini language source file",
	Long:  `Tokenize breaks a source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	result, err := driver.Tokenize(args[0], maxDiagnostics(cmd))
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	if result.Bag.Len() > 0 {
		symfmt.WriteDiagnostics(os.Stderr, result.Bag, result.FileSet, symfmt.DiagOpts{
			Color:       useColor(cmd, os.Stderr),
			ShowContext: true,
		})
	}

	switch format {
	case "pretty":
		return symfmt.WriteTokensPretty(os.Stdout, result.Tokens, result.FileSet)
	case "json":
		return symfmt.WriteTokensJSON(os.Stdout, result.Tokens, result.FileSet)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
