package symfmt

import (
	"encoding/hex"
	"fmt"
	"io"
	"sort"

	"github.com/vmihailenco/msgpack/v5"

	"minic/internal/symtab"
)

// Bump when the snapshot layout changes.
const snapshotSchemaVersion uint16 = 1

// SnapshotEntry is the persisted form of one table entry.
type SnapshotEntry struct {
	Name        string            `msgpack:"name"`
	Type        string            `msgpack:"type"`
	Line        uint32            `msgpack:"line"`
	Value       string            `msgpack:"value"`
	HasValue    bool              `msgpack:"has_value"`
	Initialized bool              `msgpack:"initialized"`
	Used        bool              `msgpack:"used"`
	Constant    bool              `msgpack:"constant"`
	Attrs       map[string]string `msgpack:"attrs,omitempty"`
}

// SnapshotScope groups persisted entries under their scope path.
type SnapshotScope struct {
	Path    string          `msgpack:"path"`
	Symbols []SnapshotEntry `msgpack:"symbols"`
}

// Snapshot is a self-contained dump of one compilation's symbol table,
// suitable for artifact storage and later inspection.
type Snapshot struct {
	Schema     uint16          `msgpack:"schema"`
	SourcePath string          `msgpack:"source_path"`
	SourceHash string          `msgpack:"source_hash"` // hex sha256 of the source
	Scopes     []SnapshotScope `msgpack:"scopes"`
	Stats      symtab.Stats    `msgpack:"stats"`
}

// BuildSnapshot captures the full table, stale scopes included, with
// deterministic ordering.
func BuildSnapshot(table *symtab.Table, sourcePath string, sourceHash [32]byte) Snapshot {
	paths := table.ScopePaths()
	sort.Strings(paths)

	snap := Snapshot{
		Schema:     snapshotSchemaVersion,
		SourcePath: sourcePath,
		SourceHash: hex.EncodeToString(sourceHash[:]),
		Stats:      table.Statistics(),
	}
	for _, path := range paths {
		entries := table.SymbolsInScope(path)
		sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

		scope := SnapshotScope{Path: path, Symbols: make([]SnapshotEntry, 0, len(entries))}
		for _, entry := range entries {
			scope.Symbols = append(scope.Symbols, SnapshotEntry{
				Name:        entry.Name,
				Type:        entry.Type,
				Line:        entry.Line,
				Value:       entry.Value,
				HasValue:    entry.HasValue,
				Initialized: entry.Initialized,
				Used:        entry.Used,
				Constant:    entry.Constant,
				Attrs:       entry.Attrs,
			})
		}
		snap.Scopes = append(snap.Scopes, scope)
	}
	return snap
}

// EncodeSnapshot writes the snapshot in msgpack form.
func EncodeSnapshot(w io.Writer, snap Snapshot) error {
	if err := msgpack.NewEncoder(w).Encode(snap); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// DecodeSnapshot reads a msgpack snapshot and validates its schema version.
func DecodeSnapshot(r io.Reader) (Snapshot, error) {
	var snap Snapshot
	if err := msgpack.NewDecoder(r).Decode(&snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if snap.Schema != snapshotSchemaVersion {
		return Snapshot{}, fmt.Errorf("snapshot schema %d not supported (want %d)",
			snap.Schema, snapshotSchemaVersion)
	}
	return snap, nil
}
