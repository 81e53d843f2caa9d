package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"minic/internal/project"
	"minic/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "minic",
	Short: "Mini language front end and symbol table inspector",
	Long:  `minic tokenizes and checks mini language sources, tracking declarations across nested scopes`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(symbolsCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the color mode: an explicit --color flag wins, then the
// manifest's [output] color, then terminal autodetection.
func useColor(cmd *cobra.Command, target *os.File) bool {
	flags := cmd.Root().PersistentFlags()
	flagValue, _ := flags.GetString("color")
	manifest, err := project.Discover(".")
	if err != nil {
		manifest = project.Manifest{}
	}
	switch project.ResolveColor(flagValue, flags.Changed("color"), manifest) {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(target)
	}
}

func maxDiagnostics(cmd *cobra.Command) int {
	n, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	return n
}

func quiet(cmd *cobra.Command) bool {
	q, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	return q
}
