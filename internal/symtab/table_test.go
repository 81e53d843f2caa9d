package symtab

import (
	"strings"
	"testing"
)

func str(v string) *string { return &v }
func boolp(v bool) *bool   { return &v }

func TestInsertAndLookup(t *testing.T) {
	st := New()

	if !st.Insert("x", "int", 1, InsertOpts{Value: str("10")}) {
		t.Fatal("insert should succeed")
	}

	entry := st.Lookup("x")
	if entry == nil {
		t.Fatal("expected to find x")
	}
	if entry.Name != "x" || entry.Type != "int" || entry.Value != "10" {
		t.Errorf("unexpected entry %+v", entry)
	}
	if !entry.Initialized {
		t.Error("value-bearing insert must default to initialized")
	}
	if entry.Scope != "global" {
		t.Errorf("expected owning scope global, got %q", entry.Scope)
	}
}

func TestDuplicateDeclarationRejected(t *testing.T) {
	st := New()

	st.Insert("x", "int", 1, InsertOpts{})
	if st.Insert("x", "float", 2, InsertOpts{}) {
		t.Fatal("duplicate insert in same scope must return false")
	}

	// The first binding must survive untouched.
	entry := st.LookupIn("x", "global")
	if entry == nil || entry.Type != "int" || entry.Line != 1 {
		t.Fatalf("first binding lost or overwritten: %+v", entry)
	}
}

func TestInsertIsNotIdempotent(t *testing.T) {
	st := New()
	if !st.Insert("x", "int", 1, InsertOpts{}) {
		t.Fatal("first insert must succeed")
	}
	if st.Insert("x", "int", 1, InsertOpts{}) {
		t.Fatal("identical second insert must still be rejected")
	}
}

func TestLookupAbsenceOnEmptyTable(t *testing.T) {
	st := New()
	if entry := st.Lookup("never_declared"); entry != nil {
		t.Fatalf("expected nil for undeclared name, got %+v", entry)
	}
}

func TestLookupMarksUsedMonotonically(t *testing.T) {
	st := New()
	st.Insert("x", "int", 1, InsertOpts{})

	if st.LookupIn("x", "global").Used {
		t.Fatal("fresh entry must start unused")
	}

	st.Lookup("x")
	if !st.LookupIn("x", "global").Used {
		t.Fatal("resolving lookup must mark used")
	}

	// Further lookups never reset the flag.
	st.Lookup("x")
	if !st.LookupIn("x", "global").Used {
		t.Fatal("used flag must be monotonic")
	}
}

func TestScopedLookupDoesNotMarkUsed(t *testing.T) {
	st := New()
	st.Insert("x", "int", 1, InsertOpts{})

	st.LookupIn("x", "global")
	if st.LookupIn("x", "global").Used {
		t.Fatal("scoped lookup must not mark used")
	}
}

func TestScopedLookupDoesNotSearchAncestors(t *testing.T) {
	st := New()
	st.Insert("x", "int", 1, InsertOpts{})
	inner := st.EnterScope("")

	if st.LookupIn("x", inner) != nil {
		t.Fatal("scoped lookup must not fall back to outer scopes")
	}
}

func TestUpdateAppliesOnlySuppliedFields(t *testing.T) {
	st := New()
	st.Insert("x", "int", 1, InsertOpts{})

	if !st.Update("x", UpdateOpts{Value: str("20"), Initialized: boolp(true)}) {
		t.Fatal("update should succeed")
	}

	entry := st.LookupIn("x", "global")
	if entry.Value != "20" || !entry.Initialized {
		t.Errorf("update not applied: %+v", entry)
	}
	if entry.Constant {
		t.Error("constant must be untouched")
	}

	// Update without fields changes nothing but still resolves.
	if !st.Update("x", UpdateOpts{}) {
		t.Fatal("empty update should still resolve")
	}
	if entry.Value != "20" {
		t.Error("empty update must not clear value")
	}
}

func TestUpdateMarksUsedThroughResolution(t *testing.T) {
	st := New()
	st.Insert("x", "int", 1, InsertOpts{})

	st.Update("x", UpdateOpts{Value: str("5")})
	if !st.LookupIn("x", "global").Used {
		t.Fatal("update must mark the target used via its resolving lookup")
	}
}

func TestUpdateMergesAttrs(t *testing.T) {
	st := New()
	st.Insert("x", "int", 1, InsertOpts{Attrs: map[string]string{"origin": "decl"}})

	st.Update("x", UpdateOpts{Attrs: map[string]string{"note": "hot"}})
	entry := st.LookupIn("x", "global")
	if entry.Attrs["origin"] != "decl" || entry.Attrs["note"] != "hot" {
		t.Fatalf("attrs must merge, got %v", entry.Attrs)
	}
}

func TestUpdateUnknownName(t *testing.T) {
	st := New()
	if st.Update("ghost", UpdateOpts{Value: str("1")}) {
		t.Fatal("update of unknown name must fail")
	}
}

func TestDeleteSymbol(t *testing.T) {
	st := New()
	st.Insert("x", "int", 1, InsertOpts{})

	if !st.Delete("x") {
		t.Fatal("delete should succeed")
	}
	if st.Lookup("x") != nil {
		t.Fatal("deleted symbol must be gone")
	}
	if st.Delete("x") {
		t.Fatal("second delete must fail")
	}
}

func TestDeleteDoesNotSearchAncestors(t *testing.T) {
	st := New()
	st.Insert("x", "int", 1, InsertOpts{})
	st.EnterScope("")

	if st.Delete("x") {
		t.Fatal("delete must target the current scope only")
	}
	if st.LookupIn("x", "global") == nil {
		t.Fatal("outer binding must survive")
	}
}

func TestScopeManagement(t *testing.T) {
	st := New()
	st.Insert("global_var", "int", 1, InsertOpts{})

	st.EnterScope("function1")
	st.Insert("local_var", "int", 2, InsertOpts{})

	if st.Lookup("global_var") == nil {
		t.Error("outer binding must be visible from inner scope")
	}
	if st.Lookup("local_var") == nil {
		t.Error("inner binding must be visible")
	}

	st.ExitScope()

	if st.Lookup("global_var") == nil {
		t.Error("outer binding must survive scope exit")
	}
	if st.Lookup("local_var") != nil {
		t.Error("inner binding must be invisible after exit")
	}
}

func TestScopeShadowing(t *testing.T) {
	st := New()
	st.Insert("x", "int", 1, InsertOpts{Value: str("10")})

	st.EnterScope("block1")
	st.Insert("x", "float", 2, InsertOpts{Value: str("3.14")})

	entry := st.Lookup("x")
	if entry.Type != "float" || entry.Value != "3.14" {
		t.Fatalf("expected inner binding, got %+v", entry)
	}

	st.ExitScope()

	entry = st.Lookup("x")
	if entry.Type != "int" || entry.Value != "10" {
		t.Fatalf("expected outer binding after exit, got %+v", entry)
	}
}

func TestNestedScopes(t *testing.T) {
	st := New()
	st.Insert("global_var", "int", 1, InsertOpts{})

	st.EnterScope("level1")
	st.Insert("level1_var", "int", 2, InsertOpts{})

	st.EnterScope("level2")
	st.Insert("level2_var", "int", 3, InsertOpts{})

	for _, name := range []string{"global_var", "level1_var", "level2_var"} {
		if st.Lookup(name) == nil {
			t.Errorf("%s must be visible at depth 3", name)
		}
	}

	st.ExitScope()
	if st.Lookup("level2_var") != nil {
		t.Error("level2_var must be invisible at depth 2")
	}
	if st.Lookup("level1_var") == nil {
		t.Error("level1_var must stay visible at depth 2")
	}

	st.ExitScope()
	if st.Lookup("level1_var") != nil {
		t.Error("level1_var must be invisible at root")
	}
	if st.Lookup("global_var") == nil {
		t.Error("global_var must stay visible at root")
	}
}

func TestRootScopeCannotBeExited(t *testing.T) {
	st := New()

	popped, ok := st.ExitScope()
	if ok || popped != "" {
		t.Fatalf("root pop must refuse, got %q ok=%v", popped, ok)
	}
	if st.Depth() != 1 || st.CurrentScope() != "global" {
		t.Fatalf("stack must be unchanged, depth=%d scope=%q", st.Depth(), st.CurrentScope())
	}
}

func TestAnonymousScopeCounterIsPerInstance(t *testing.T) {
	st := New()

	first := st.EnterScope("")
	st.ExitScope()
	second := st.EnterScope("")
	st.ExitScope()

	if first != "global.block1" {
		t.Errorf("expected global.block1, got %q", first)
	}
	// Sibling anonymous blocks at the same depth still get distinct names.
	if second != "global.block2" {
		t.Errorf("expected global.block2, got %q", second)
	}

	// A fresh table starts its own counter.
	other := New()
	if got := other.EnterScope(""); got != "global.block1" {
		t.Errorf("fresh instance should restart at block1, got %q", got)
	}
}

func TestEnterScopeReturnsFullPath(t *testing.T) {
	st := New()
	if got := st.EnterScope("function1"); got != "global.function1" {
		t.Errorf("expected global.function1, got %q", got)
	}
	if got := st.EnterScope(""); got != "global.function1.block1" {
		t.Errorf("expected nested block path, got %q", got)
	}
}

func TestSymbolsInScope(t *testing.T) {
	st := New()
	st.Insert("x", "int", 1, InsertOpts{})
	st.Insert("y", "float", 2, InsertOpts{})

	if got := st.SymbolsInScope("global"); len(got) != 2 {
		t.Fatalf("expected 2 symbols in global, got %d", len(got))
	}

	st.EnterScope("block1")
	st.Insert("local_var", "int", 3, InsertOpts{})

	// Empty scope argument means current scope.
	if got := st.SymbolsInScope(""); len(got) != 1 {
		t.Fatalf("expected 1 symbol in current scope, got %d", len(got))
	}
}

func TestJustEnteredScopeListsEmpty(t *testing.T) {
	st := New()
	st.EnterScope("")

	if got := st.SymbolsInScope(""); got == nil || len(got) != 0 {
		t.Fatalf("just-entered scope must list as empty, got %v", got)
	}
}

func TestAllSymbolsSpansStaleScopes(t *testing.T) {
	st := New()
	st.Insert("x", "int", 1, InsertOpts{})
	st.EnterScope("")
	st.Insert("local", "int", 2, InsertOpts{})
	st.ExitScope()

	all := st.AllSymbols()
	if len(all) != 2 {
		t.Fatalf("expected 2 entries including stale scope, got %d", len(all))
	}
	seen := map[string]bool{}
	for _, entry := range all {
		key := entry.Scope + "." + entry.Name
		if seen[key] {
			t.Fatalf("entry %s listed twice", key)
		}
		seen[key] = true
	}
}

func TestStatistics(t *testing.T) {
	st := New()
	st.Insert("x", "int", 1, InsertOpts{Value: str("10")})
	st.Insert("y", "float", 2, InsertOpts{})
	st.Insert("z", "string", 3, InsertOpts{Value: str("test")})

	st.Lookup("x")

	stats := st.Statistics()
	if stats.TotalSymbols != 3 {
		t.Errorf("TotalSymbols: expected 3, got %d", stats.TotalSymbols)
	}
	if stats.TotalScopes != 1 {
		t.Errorf("TotalScopes: expected 1, got %d", stats.TotalScopes)
	}
	if stats.Initialized != 2 {
		t.Errorf("Initialized: expected 2, got %d", stats.Initialized)
	}
	if stats.Used != 1 {
		t.Errorf("Used: expected 1, got %d", stats.Used)
	}
	if stats.Unused != 2 {
		t.Errorf("Unused: expected 2, got %d", stats.Unused)
	}
}

func TestStatisticsIncludeExitedScopes(t *testing.T) {
	st := New()
	st.Insert("a", "int", 1, InsertOpts{})
	st.Insert("b", "int", 2, InsertOpts{})
	st.Insert("c", "int", 3, InsertOpts{})
	st.Lookup("a")

	st.EnterScope("")
	st.Insert("inner", "int", 5, InsertOpts{})
	st.ExitScope()

	stats := st.Statistics()
	if stats.TotalScopes != 2 {
		t.Errorf("exited scope must still count, got %d scopes", stats.TotalScopes)
	}
	if stats.TotalSymbols != 4 {
		t.Errorf("exited scope's symbols must still count, got %d", stats.TotalSymbols)
	}
}

func TestFreshTableHasNoScopes(t *testing.T) {
	st := New()
	stats := st.Statistics()
	if stats.TotalScopes != 0 || stats.TotalSymbols != 0 {
		t.Fatalf("fresh table must report zero, got %+v", stats)
	}
}

func TestEntryString(t *testing.T) {
	entry := &Entry{Name: "x", Type: "int", Scope: "global", Line: 1}
	s := entry.String()
	for _, want := range []string{"x", "int", "global"} {
		if !strings.Contains(s, want) {
			t.Errorf("entry string %q should mention %q", s, want)
		}
	}
}
