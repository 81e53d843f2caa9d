package symtab

import (
	"fmt"
)

// Entry is one declared identifier instance. Entries are owned exclusively
// by the table that created them; Scope and Line never change after
// creation.
type Entry struct {
	Name        string
	Type        string // opaque type tag (int, float, string, bool)
	Scope       string // owning scope path at declaration time
	Line        uint32 // 1-based declaration line
	Value       string // textual snapshot of the last-assigned expression
	HasValue    bool
	Initialized bool
	Used        bool // monotonic: set by resolving lookup, never cleared by it
	Constant    bool // reserved for future grammar; never set by the current driver
	Attrs       map[string]string
}

func (e *Entry) String() string {
	return fmt.Sprintf("Symbol(name=%q, type=%q, scope=%q, line=%d)",
		e.Name, e.Type, e.Scope, e.Line)
}

// InsertOpts carry the optional fields of a declaration. Nil pointer fields
// mean "not supplied".
type InsertOpts struct {
	Value       *string
	Initialized *bool // defaults to "value was supplied"
	Constant    bool
	Attrs       map[string]string
}

// UpdateOpts name the fields an update should touch. Nil pointer fields are
// left untouched; Attrs entries are merged into the existing mapping.
type UpdateOpts struct {
	Value       *string
	Initialized *bool
	Used        *bool
	Constant    *bool
	Attrs       map[string]string
}
