// Package symtab implements the scope-hierarchical symbol table: identifier
// bindings keyed by (scope path, name), resolved through nested scopes with
// lexical shadowing, with initialization and usage state tracked as a side
// effect of resolution.
package symtab

import (
	"fmt"
)

// Table records identifier bindings per lexical scope. Each compilation owns
// its own instance; a Table must not be shared across concurrent
// compilations.
//
// Popped scopes stay in the table as history: statistics and full listings
// are defined over every scope ever entered, not just the active stack.
type Table struct {
	scopes  map[string]map[string]*Entry // scope path -> name -> entry
	stack   []string                     // active scope stack, stack[0] == RootScope
	counter int                          // instance-owned counter for anonymous blocks
}

// New creates an empty table whose active stack holds only the root scope.
// The root bucket itself is created lazily by the first insert, so a fresh
// table reports zero scopes.
func New() *Table {
	return &Table{
		scopes: make(map[string]map[string]*Entry),
		stack:  []string{RootScope},
	}
}

// CurrentScope returns the canonical path of the innermost active scope.
func (t *Table) CurrentScope() string {
	return JoinPath(t.stack)
}

// Depth returns the active stack depth; the root alone is depth 1.
func (t *Table) Depth() int {
	return len(t.stack)
}

// Insert binds name in the current scope. It returns false, without
// mutating anything, when the name is already bound in the current scope
// path; outer scopes are not consulted (shadowing is allowed).
// Initialized defaults to whether a value was supplied, unless
// opts.Initialized overrides it.
func (t *Table) Insert(name, typ string, line uint32, opts InsertOpts) bool {
	scope := t.CurrentScope()

	if _, dup := t.scopes[scope][name]; dup {
		return false
	}
	if t.scopes[scope] == nil {
		t.scopes[scope] = make(map[string]*Entry)
	}

	entry := &Entry{
		Name:     name,
		Type:     typ,
		Scope:    scope,
		Line:     line,
		Constant: opts.Constant,
		Attrs:    opts.Attrs,
	}
	if opts.Value != nil {
		entry.Value = *opts.Value
		entry.HasValue = true
	}
	if opts.Initialized != nil {
		entry.Initialized = *opts.Initialized
	} else {
		entry.Initialized = opts.Value != nil
	}

	t.scopes[scope][name] = entry
	return true
}

// Lookup resolves name through the active scope stack, innermost first, and
// returns the first binding found, or nil. As a side effect the returned
// entry is marked used; this is the resolving mode every reference from the
// statement driver goes through. Callers that need a non-marking peek must
// use LookupIn.
func (t *Table) Lookup(name string) *Entry {
	for path := range AncestorPaths(t.stack) {
		if entry, ok := t.scopes[path][name]; ok {
			entry.Used = true
			return entry
		}
	}
	return nil
}

// LookupIn checks exactly one scope path. It does not search ancestors and
// does not mark the entry used; it exists for introspection, not reference
// resolution.
func (t *Table) LookupIn(name, scope string) *Entry {
	if entry, ok := t.scopes[scope][name]; ok {
		return entry
	}
	return nil
}

// Update resolves name the same way Lookup does (marking it used) and
// applies exactly the supplied fields. It returns false when resolution
// fails.
func (t *Table) Update(name string, opts UpdateOpts) bool {
	entry := t.Lookup(name)
	if entry == nil {
		return false
	}

	if opts.Value != nil {
		entry.Value = *opts.Value
		entry.HasValue = true
	}
	if opts.Initialized != nil {
		entry.Initialized = *opts.Initialized
	}
	if opts.Used != nil {
		entry.Used = *opts.Used
	}
	if opts.Constant != nil {
		entry.Constant = *opts.Constant
	}
	if opts.Attrs != nil {
		if entry.Attrs == nil {
			entry.Attrs = make(map[string]string, len(opts.Attrs))
		}
		for k, v := range opts.Attrs {
			entry.Attrs[k] = v
		}
	}
	return true
}

// Delete removes name from the current scope path. Ancestors are not
// searched.
func (t *Table) Delete(name string) bool {
	return t.DeleteIn(name, t.CurrentScope())
}

// DeleteIn removes name from exactly the given scope path.
func (t *Table) DeleteIn(name, scope string) bool {
	if _, ok := t.scopes[scope][name]; !ok {
		return false
	}
	delete(t.scopes[scope], name)
	return true
}

// EnterScope pushes a new segment onto the active stack and returns the new
// scope path. An empty name synthesizes a fresh "block<N>" segment from an
// instance-owned counter, so sibling anonymous blocks always get distinct
// names. The new scope's bucket is created eagerly, so a just-entered scope
// lists as empty rather than absent.
func (t *Table) EnterScope(name string) string {
	if name == "" {
		t.counter++
		name = fmt.Sprintf("block%d", t.counter)
	}

	t.stack = append(t.stack, name)
	path := t.CurrentScope()
	if t.scopes[path] == nil {
		t.scopes[path] = make(map[string]*Entry)
	}
	return path
}

// ExitScope pops the innermost scope and returns the popped segment. It
// refuses to pop the root: at depth 1 it returns ("", false) and leaves the
// stack unchanged. The popped scope's bucket stays in the table.
func (t *Table) ExitScope() (string, bool) {
	if len(t.stack) <= 1 {
		return "", false
	}
	popped := t.stack[len(t.stack)-1]
	t.stack = t.stack[:len(t.stack)-1]
	return popped, true
}

// SymbolsInScope returns every entry of one scope path, in unspecified
// order. An empty scope argument means the current scope.
func (t *Table) SymbolsInScope(scope string) []*Entry {
	if scope == "" {
		scope = t.CurrentScope()
	}
	bucket, ok := t.scopes[scope]
	if !ok {
		return nil
	}
	out := make([]*Entry, 0, len(bucket))
	for _, entry := range bucket {
		out = append(out, entry)
	}
	return out
}

// AllSymbols flattens every scope bucket, including stale ones, into one
// slice. Every live entry appears exactly once; order is unspecified.
func (t *Table) AllSymbols() []*Entry {
	var out []*Entry
	for _, bucket := range t.scopes {
		for _, entry := range bucket {
			out = append(out, entry)
		}
	}
	return out
}

// ScopePaths returns every scope path the table has ever materialized,
// including exited ones, in unspecified order.
func (t *Table) ScopePaths() []string {
	out := make([]string, 0, len(t.scopes))
	for path := range t.scopes {
		out = append(out, path)
	}
	return out
}

// Stats aggregates usage counters over the whole table.
type Stats struct {
	TotalSymbols int
	TotalScopes  int
	Initialized  int
	Used         int
	Unused       int
}

// Statistics aggregates over the entire table: all scopes ever entered,
// stale ones included, not just the active stack.
func (t *Table) Statistics() Stats {
	var s Stats
	s.TotalScopes = len(t.scopes)
	for _, bucket := range t.scopes {
		s.TotalSymbols += len(bucket)
		for _, entry := range bucket {
			if entry.Initialized {
				s.Initialized++
			}
			if entry.Used {
				s.Used++
			}
		}
	}
	s.Unused = s.TotalSymbols - s.Used
	return s
}

// String summarizes the table for debug output.
func (t *Table) String() string {
	s := t.Statistics()
	return fmt.Sprintf("SymbolTable(symbols=%d, scopes=%d)", s.TotalSymbols, s.TotalScopes)
}
