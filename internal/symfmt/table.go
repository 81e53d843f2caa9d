// Package symfmt renders symbol tables, statistics, and diagnostics for
// human and machine consumption. It only reads the table; nothing here
// mutates symbol state.
package symfmt

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"minic/internal/symtab"
)

const (
	ruleWidth     = 80
	valueColWidth = 15
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	scopeStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	unusedStyle = lipgloss.NewStyle().Faint(true)
)

// TableOpts control the pretty table rendering.
type TableOpts struct {
	Color      bool
	HideUnused bool   // drop never-used symbols from the listing
	Scope      string // render only this scope path; empty means all scopes
}

func (o TableOpts) style(s lipgloss.Style, text string) string {
	if !o.Color {
		return text
	}
	return s.Render(text)
}

// WriteTable renders every scope of the table, stale scopes included, as
// per-scope sections. Scopes sort by path and rows by name so output is
// deterministic regardless of map order.
func WriteTable(w io.Writer, table *symtab.Table, opts TableOpts) error {
	rule := repeat('=', ruleWidth)
	thin := repeat('-', ruleWidth)

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, opts.style(headerStyle, "SYMBOL TABLE"))
	fmt.Fprintln(w, rule)

	paths := table.ScopePaths()
	if opts.Scope != "" {
		if table.SymbolsInScope(opts.Scope) == nil {
			return fmt.Errorf("unknown scope %q", opts.Scope)
		}
		paths = []string{opts.Scope}
	}
	if len(paths) == 0 {
		fmt.Fprintln(w, "(empty)")
		return nil
	}
	sort.Strings(paths)

	for _, path := range paths {
		entries := table.SymbolsInScope(path)
		if len(entries) == 0 {
			continue
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

		fmt.Fprintf(w, "\n%s %s\n", opts.style(scopeStyle, "Scope:"), path)
		fmt.Fprintln(w, thin)
		fmt.Fprintln(w, opts.style(headerStyle, fmt.Sprintf("%-15s %-10s %-6s %-6s %-6s %-15s",
			"Name", "Type", "Line", "Init", "Used", "Value")))
		fmt.Fprintln(w, thin)

		for _, entry := range entries {
			if opts.HideUnused && !entry.Used {
				continue
			}
			row := fmt.Sprintf("%-15s %-10s %-6d %-6t %-6t %-15s",
				entry.Name, entry.Type, entry.Line,
				entry.Initialized, entry.Used, valueCell(entry))
			if opts.Color && !entry.Used {
				row = unusedStyle.Render(row)
			}
			fmt.Fprintln(w, row)
		}
	}

	fmt.Fprintln(w, rule)
	return nil
}

// valueCell renders the value column, truncating wide values so the column
// stays aligned.
func valueCell(entry *symtab.Entry) string {
	if !entry.HasValue {
		return "-"
	}
	return runewidth.Truncate(entry.Value, valueColWidth, "...")
}

// WriteStats renders the compilation statistics block.
func WriteStats(w io.Writer, stats symtab.Stats) {
	rule := repeat('=', ruleWidth)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "COMPILATION STATISTICS")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Total Symbols:       %d\n", stats.TotalSymbols)
	fmt.Fprintf(w, "Total Scopes:        %d\n", stats.TotalScopes)
	fmt.Fprintf(w, "Initialized Vars:    %d\n", stats.Initialized)
	fmt.Fprintf(w, "Used Vars:           %d\n", stats.Used)
	fmt.Fprintf(w, "Unused Vars:         %d\n", stats.Unused)
	fmt.Fprintln(w, rule)
}

func repeat(b byte, n int) string {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return string(out)
}
