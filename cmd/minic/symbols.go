package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"minic/internal/driver"
	"minic/internal/symfmt"
)

var symbolsCmd = &cobra.Command{
	Use:   "symbols [flags] file.mc",
	Short: "Show the symbol table of a source file",
	Long:  `Symbols checks one file and dumps every scope of the resulting symbol table`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSymbols,
}

func init() {
	symbolsCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	symbolsCmd.Flags().String("scope", "", "show only this scope path (pretty format)")
	symbolsCmd.Flags().Bool("hide-unused", false, "omit never-used symbols (pretty format)")
	symbolsCmd.Flags().StringP("output", "o", "", "write msgpack snapshot to a file instead of stdout")
}

func runSymbols(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	scope, _ := cmd.Flags().GetString("scope")
	hideUnused, _ := cmd.Flags().GetBool("hide-unused")
	output, _ := cmd.Flags().GetString("output")

	opts, err := checkOptions(cmd)
	if err != nil {
		return err
	}
	res, err := driver.Check(args[0], opts)
	if err != nil {
		return err
	}

	if res.Bag.Len() > 0 {
		symfmt.WriteDiagnostics(os.Stderr, res.Bag, res.FileSet, symfmt.DiagOpts{
			Color:       useColor(cmd, os.Stderr),
			ShowContext: true,
		})
	}

	switch format {
	case "pretty":
		tableOpts := symfmt.TableOpts{
			Color:      useColor(cmd, os.Stdout),
			HideUnused: hideUnused,
			Scope:      scope,
		}
		if err := symfmt.WriteTable(os.Stdout, res.Table, tableOpts); err != nil {
			return err
		}
		if !quiet(cmd) {
			symfmt.WriteStats(os.Stdout, res.Stats)
		}
		return nil
	case "json":
		return symfmt.WriteTableJSON(os.Stdout, res.Table)
	case "msgpack":
		snap := symfmt.BuildSnapshot(res.Table, res.Path, res.File.Hash)
		out := os.Stdout
		if output != "" {
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			defer f.Close()
			out = f
		}
		return symfmt.EncodeSnapshot(out, snap)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
