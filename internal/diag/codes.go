package diag

import (
	"fmt"
)

// Code identifies a diagnostic category across phases.
type Code uint16

const (
	// UnknownCode is the fallback for uncategorized diagnostics.
	UnknownCode Code = 0

	// Lexical
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003

	// Syntactic
	SynExpectIdentifier Code = 2001
	SynExpectAssign     Code = 2002
	SynExpectSemicolon  Code = 2003
	SynUnclosedBrace    Code = 2004
	SynUnexpectedToken  Code = 2005

	// Semantic
	SemDuplicateDecl   Code = 3001
	SemUndeclaredVar   Code = 3002
	SemUnbalancedScope Code = 3003
	SemUnusedVar       Code = 3004
)

func (c Code) String() string {
	switch {
	case c >= 3000:
		return fmt.Sprintf("SEM%04d", uint16(c))
	case c >= 2000:
		return fmt.Sprintf("SYN%04d", uint16(c))
	case c >= 1000:
		return fmt.Sprintf("LEX%04d", uint16(c))
	default:
		return fmt.Sprintf("MIN%04d", uint16(c))
	}
}
