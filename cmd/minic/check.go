package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"minic/internal/driver"
	"minic/internal/project"
	"minic/internal/symfmt"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] file.mc...",
	Short: "Check mini language sources",
	Long:  `Check tokenizes and parses each file, reporting declaration errors and symbol statistics`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Bool("warn-unused", false, "warn about variables that are never read")
	checkCmd.Flags().Bool("stats", false, "print compilation statistics per file")
}

// checkOptions merges the minic.toml manifest with command line flags.
// An explicitly set flag wins over the manifest value.
func checkOptions(cmd *cobra.Command) (driver.CheckOptions, error) {
	manifest, err := project.Discover(".")
	if err != nil {
		return driver.CheckOptions{}, err
	}

	opts := driver.CheckOptions{
		MaxDiagnostics: manifest.Check.MaxDiagnostics,
		WarnUnused:     manifest.Check.WarnUnused,
	}
	if cmd.Root().PersistentFlags().Changed("max-diagnostics") {
		opts.MaxDiagnostics = maxDiagnostics(cmd)
	}
	if cmd.Flags().Changed("warn-unused") {
		opts.WarnUnused, _ = cmd.Flags().GetBool("warn-unused")
	}
	return opts, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	opts, err := checkOptions(cmd)
	if err != nil {
		return err
	}
	showStats, _ := cmd.Flags().GetBool("stats")

	results, err := driver.CheckMany(args, opts)
	if err != nil {
		return err
	}

	diagOpts := symfmt.DiagOpts{
		Color:       useColor(cmd, os.Stderr),
		ShowContext: true,
	}

	failed := false
	for _, res := range results {
		if res.Bag.Len() > 0 {
			symfmt.WriteDiagnostics(os.Stderr, res.Bag, res.FileSet, diagOpts)
		}
		if res.Bag.HasErrors() {
			failed = true
		}
		if showStats {
			fmt.Fprintf(os.Stdout, "%s\n", res.Path)
			symfmt.WriteStats(os.Stdout, res.Stats)
		}
	}

	if failed {
		// Diagnostics already explain the failure; exit nonzero without
		// cobra re-printing usage.
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("check failed")
	}
	if !quiet(cmd) && !showStats {
		fmt.Fprintf(os.Stdout, "checked %d file(s), no errors\n", len(results))
	}
	return nil
}
