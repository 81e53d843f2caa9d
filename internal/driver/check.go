package driver

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"minic/internal/diag"
	"minic/internal/parser"
	"minic/internal/source"
	"minic/internal/symtab"
)

const defaultMaxDiagnostics = 100

// CheckOptions configure a check run.
type CheckOptions struct {
	MaxDiagnostics int  // 0 means the default limit
	WarnUnused     bool // emit a warning per never-used symbol
}

func (o CheckOptions) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return defaultMaxDiagnostics
	}
	return o.MaxDiagnostics
}

// CheckResult bundles the artifacts of analyzing one file. Every file gets
// its own symbol table; results are never shared between files.
type CheckResult struct {
	Path       string
	FileSet    *source.FileSet
	File       *source.File
	TokenCount int
	Table      *symtab.Table
	Stats      symtab.Stats
	Bag        *diag.Bag
}

// Check loads, tokenizes, and parses one file, populating a fresh symbol
// table and collecting diagnostics.
func Check(path string, opts CheckOptions) (*CheckResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return checkFile(fs, fileID, path, opts), nil
}

// CheckSource analyzes in-memory content under a virtual file name.
func CheckSource(name string, content []byte, opts CheckOptions) *CheckResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return checkFile(fs, fileID, name, opts)
}

func checkFile(fs *source.FileSet, fileID source.FileID, path string, opts CheckOptions) *CheckResult {
	tr := tokenizeFile(fs, fileID, opts.maxDiagnostics())

	p := parser.New(tr.Tokens, fs, diag.BagReporter{Bag: tr.Bag})
	table := p.Parse()

	if opts.WarnUnused {
		warnUnused(table, tr.File, tr.Bag)
	}
	tr.Bag.Sort()

	return &CheckResult{
		Path:       path,
		FileSet:    fs,
		File:       tr.File,
		TokenCount: len(tr.Tokens),
		Table:      table,
		Stats:      table.Statistics(),
		Bag:        tr.Bag,
	}
}

// warnUnused reports every symbol, in any scope, that the whole run never
// resolved. The warning points at the declaration line.
func warnUnused(table *symtab.Table, file *source.File, bag *diag.Bag) {
	rep := diag.BagReporter{Bag: bag}
	for _, entry := range table.AllSymbols() {
		if entry.Used {
			continue
		}
		off := file.LineStart(entry.Line)
		span := source.Span{File: file.ID, Start: off, End: off}
		diag.ReportWarning(rep, diag.SemUnusedVar, span,
			fmt.Sprintf("variable %q declared but never used", entry.Name))
	}
}

// CheckMany analyzes files concurrently. Each file owns an independent
// FileSet and symbol table, so no synchronization is needed beyond the
// result slice. Results keep the input order. The error reports only I/O
// failures; diagnostics stay in each result's bag.
func CheckMany(paths []string, opts CheckOptions) ([]*CheckResult, error) {
	results := make([]*CheckResult, len(paths))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		g.Go(func() error {
			res, err := Check(path, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
