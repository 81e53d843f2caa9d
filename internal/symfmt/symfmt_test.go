package symfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"minic/internal/diag"
	"minic/internal/source"
	"minic/internal/symtab"
)

func str(v string) *string { return &v }

func buildTable(t *testing.T) *symtab.Table {
	t.Helper()
	table := symtab.New()
	table.Insert("x", "int", 1, symtab.InsertOpts{Value: str("10")})
	table.Insert("name", "string", 2, symtab.InsertOpts{Value: str("a rather long string value")})
	table.EnterScope("")
	table.Insert("local", "float", 4, symtab.InsertOpts{})
	table.ExitScope()
	table.Lookup("x")
	return table
}

func TestWriteTableListsAllScopes(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTable(&buf, buildTable(t), TableOpts{}); err != nil {
		t.Fatalf("WriteTable: %v", err)
	}
	out := buf.String()

	for _, want := range []string{"SYMBOL TABLE", "Scope: global", "Scope: global.block1", "x", "local"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	// Long values are truncated to keep columns aligned.
	if strings.Contains(out, "a rather long string value") {
		t.Error("long value should be truncated")
	}
	if !strings.Contains(out, "...") {
		t.Error("expected truncation ellipsis")
	}
}

func TestWriteTableHideUnused(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTable(&buf, buildTable(t), TableOpts{HideUnused: true}); err != nil {
		t.Fatalf("WriteTable: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "x") {
		t.Error("used symbol must stay listed")
	}
	if strings.Contains(out, "local") {
		t.Error("unused symbol must be hidden")
	}
}

func TestWriteTableScopeFilter(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTable(&buf, buildTable(t), TableOpts{Scope: "global.block1"}); err != nil {
		t.Fatalf("WriteTable: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "local") || strings.Contains(out, "Scope: global\n") {
		t.Errorf("expected only the nested scope:\n%s", out)
	}

	if err := WriteTable(&buf, buildTable(t), TableOpts{Scope: "no.such"}); err == nil {
		t.Error("expected error for unknown scope")
	}
}

func TestWriteTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTable(&buf, symtab.New(), TableOpts{}); err != nil {
		t.Fatalf("WriteTable: %v", err)
	}
	if !strings.Contains(buf.String(), "(empty)") {
		t.Errorf("expected empty placeholder, got:\n%s", buf.String())
	}
}

func TestWriteTableJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTableJSON(&buf, buildTable(t)); err != nil {
		t.Fatalf("WriteTableJSON: %v", err)
	}

	var out TableOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(out.Scopes) != 2 {
		t.Fatalf("expected 2 scopes, got %d", len(out.Scopes))
	}
	if out.Scopes[0].Path != "global" || out.Scopes[1].Path != "global.block1" {
		t.Errorf("scopes must sort by path: %+v", out.Scopes)
	}
	if out.Stats.TotalSymbols != 3 || out.Stats.Used != 1 {
		t.Errorf("unexpected stats: %+v", out.Stats)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	table := buildTable(t)
	var hash [32]byte
	hash[0] = 0xab

	snap := BuildSnapshot(table, "prog.mc", hash)

	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, snap); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeSnapshot(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if got.SourcePath != "prog.mc" {
		t.Errorf("source path lost: %q", got.SourcePath)
	}
	if !strings.HasPrefix(got.SourceHash, "ab") {
		t.Errorf("unexpected hash %q", got.SourceHash)
	}
	if got.Stats != table.Statistics() {
		t.Errorf("stats mismatch: %+v vs %+v", got.Stats, table.Statistics())
	}
	if len(got.Scopes) != 2 || len(got.Scopes[0].Symbols) != 2 {
		t.Errorf("scope payload mismatch: %+v", got.Scopes)
	}
}

func TestDecodeSnapshotRejectsUnknownSchema(t *testing.T) {
	snap := BuildSnapshot(symtab.New(), "p.mc", [32]byte{})
	snap.Schema = 99

	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, snap); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := DecodeSnapshot(&buf); err == nil {
		t.Fatal("expected schema version error")
	}
}

func TestWriteStats(t *testing.T) {
	var buf bytes.Buffer
	WriteStats(&buf, symtab.Stats{TotalSymbols: 3, TotalScopes: 2, Initialized: 2, Used: 1, Unused: 2})
	out := buf.String()
	for _, want := range []string{"Total Symbols:       3", "Total Scopes:        2", "Unused Vars:         2"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("prog.mc", []byte("int x = 1;\nint x = 2;\n"))

	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SemDuplicateDecl,
		Message:  `duplicate declaration of variable "x"`,
		Primary:  source.Span{File: id, Start: 15, End: 16},
	})

	var buf bytes.Buffer
	WriteDiagnostics(&buf, bag, fs, DiagOpts{ShowContext: true})
	out := buf.String()

	if !strings.Contains(out, "prog.mc:2:5: ERROR SEM3001: duplicate declaration") {
		t.Errorf("unexpected header line:\n%s", out)
	}
	if !strings.Contains(out, "int x = 2;") {
		t.Errorf("context line missing:\n%s", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("caret missing:\n%s", out)
	}
}
