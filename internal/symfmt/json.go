package symfmt

import (
	"encoding/json"
	"io"
	"sort"

	"minic/internal/symtab"
)

// SymbolOutput is the JSON projection of one table entry.
type SymbolOutput struct {
	Name        string            `json:"name"`
	Type        string            `json:"type"`
	Scope       string            `json:"scope"`
	Line        uint32            `json:"line"`
	Value       string            `json:"value,omitempty"`
	Initialized bool              `json:"initialized"`
	Used        bool              `json:"used"`
	Constant    bool              `json:"constant,omitempty"`
	Attrs       map[string]string `json:"attrs,omitempty"`
}

// ScopeOutput groups symbols under their scope path.
type ScopeOutput struct {
	Path    string         `json:"path"`
	Symbols []SymbolOutput `json:"symbols"`
}

// TableOutput is the machine-readable form of a full table dump.
type TableOutput struct {
	Scopes []ScopeOutput `json:"scopes"`
	Stats  StatsOutput   `json:"stats"`
}

// StatsOutput mirrors symtab.Stats with stable JSON names.
type StatsOutput struct {
	TotalSymbols int `json:"total_symbols"`
	TotalScopes  int `json:"total_scopes"`
	Initialized  int `json:"initialized"`
	Used         int `json:"used"`
	Unused       int `json:"unused"`
}

func statsOutput(s symtab.Stats) StatsOutput {
	return StatsOutput{
		TotalSymbols: s.TotalSymbols,
		TotalScopes:  s.TotalScopes,
		Initialized:  s.Initialized,
		Used:         s.Used,
		Unused:       s.Unused,
	}
}

// buildTableOutput flattens the table into sorted, JSON-ready form.
func buildTableOutput(table *symtab.Table) TableOutput {
	paths := table.ScopePaths()
	sort.Strings(paths)

	out := TableOutput{Stats: statsOutput(table.Statistics())}
	for _, path := range paths {
		entries := table.SymbolsInScope(path)
		sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

		scope := ScopeOutput{Path: path, Symbols: make([]SymbolOutput, 0, len(entries))}
		for _, entry := range entries {
			scope.Symbols = append(scope.Symbols, SymbolOutput{
				Name:        entry.Name,
				Type:        entry.Type,
				Scope:       entry.Scope,
				Line:        entry.Line,
				Value:       entry.Value,
				Initialized: entry.Initialized,
				Used:        entry.Used,
				Constant:    entry.Constant,
				Attrs:       entry.Attrs,
			})
		}
		out.Scopes = append(out.Scopes, scope)
	}
	return out
}

// WriteTableJSON dumps the full table, stale scopes included, as indented
// JSON with deterministic ordering.
func WriteTableJSON(w io.Writer, table *symtab.Table) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(buildTableOutput(table))
}
