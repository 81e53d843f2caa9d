package symtab

import (
	"iter"
	"strings"
)

// RootScope is the fixed first segment of every scope path. It is pushed at
// table construction and can never be popped.
const RootScope = "global"

// JoinPath derives the canonical dotted path for a scope stack,
// e.g. ["global", "block1"] -> "global.block1".
func JoinPath(stack []string) string {
	return strings.Join(stack, ".")
}

// AncestorPaths yields the scope paths visible from the given stack, ordered
// innermost (full stack) to outermost (root only). The sequence is a pure
// function of the stack snapshot and can be iterated any number of times.
// Its length equals the stack depth.
//
// This ordering is the contract lexical shadowing depends on: the first
// path holding a name wins.
func AncestorPaths(stack []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := len(stack); i >= 1; i-- {
			if !yield(JoinPath(stack[:i])) {
				return
			}
		}
	}
}
