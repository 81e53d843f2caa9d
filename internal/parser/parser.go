// Package parser implements the flat statement dispatcher that drives the
// symbol table: declarations insert, assignments resolve and update, blocks
// enter and exit scopes. There is no expression tree and no AST; expressions
// are captured as token text.
package parser

import (
	"fmt"
	"strings"

	"minic/internal/diag"
	"minic/internal/source"
	"minic/internal/symtab"
	"minic/internal/token"
)

// Parser walks a token stream and populates a fresh symbol table. All
// findings go to the reporter; the parser keeps going after every error.
type Parser struct {
	tokens []token.Token
	pos    int
	fs     *source.FileSet
	table  *symtab.Table
	rep    diag.Reporter
}

// New creates a parser over tokens. The token slice is expected to end with
// an EOF token (the lexer guarantees this).
func New(tokens []token.Token, fs *source.FileSet, rep diag.Reporter) *Parser {
	return &Parser{
		tokens: tokens,
		fs:     fs,
		table:  symtab.New(),
		rep:    rep,
	}
}

// Table returns the symbol table the parser populates.
func (p *Parser) Table() *symtab.Table {
	return p.table
}

// Parse processes the whole program and returns the populated table.
func (p *Parser) Parse() *symtab.Table {
	for !p.at(token.EOF) {
		p.parseStatement()
	}
	return p.table
}

// cur returns the current token; past the end it synthesizes EOF.
func (p *Parser) cur() token.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	var span source.Span
	if len(p.tokens) > 0 {
		span = p.tokens[len(p.tokens)-1].Span
	}
	return token.Token{Kind: token.EOF, Span: span}
}

func (p *Parser) advance() {
	if p.pos < len(p.tokens) {
		p.pos++
	}
}

func (p *Parser) at(kind token.Kind) bool {
	return p.cur().Kind == kind
}

func (p *Parser) line(sp source.Span) uint32 {
	return p.fs.Line(sp)
}

func (p *Parser) errorAt(code diag.Code, sp source.Span, msg string) {
	diag.ReportError(p.rep, code, sp, msg)
}

// parseStatement dispatches on the leading token:
// declaration | block | assignment. Anything else is reported and skipped.
func (p *Parser) parseStatement() {
	switch {
	case p.cur().IsTypeKeyword():
		p.parseDeclaration()
	case p.at(token.LBrace):
		p.parseBlock()
	case p.at(token.Ident):
		p.parseAssignment()
	case p.at(token.RBrace):
		// parseBlock consumes the brace of every block it opened, so a
		// '}' seen here closes a scope that was never entered.
		p.errorAt(diag.SemUnbalancedScope, p.cur().Span, "unmatched '}'")
		p.advance()
	case p.at(token.EOF):
		return
	default:
		tok := p.cur()
		p.errorAt(diag.SynUnexpectedToken, tok.Span,
			fmt.Sprintf("unexpected token %q", tok.Text))
		p.advance()
	}
}

// parseDeclaration handles: type IDENT (= expression)? ;
// A false insert result is a duplicate declaration in the current scope;
// the first binding is kept and parsing continues.
func (p *Parser) parseDeclaration() {
	typeTok := p.cur()
	p.advance()

	if !p.at(token.Ident) {
		p.errorAt(diag.SynExpectIdentifier, p.cur().Span,
			fmt.Sprintf("expected identifier after type %q", typeTok.Text))
		return
	}
	nameTok := p.cur()
	p.advance()

	var opts symtab.InsertOpts
	if p.at(token.Assign) {
		p.advance()
		value, hasValue := p.captureExpression()
		if hasValue {
			opts.Value = &value
		}
		initialized := true
		opts.Initialized = &initialized
	}

	if !p.at(token.Semicolon) {
		p.errorAt(diag.SynExpectSemicolon, p.cur().Span,
			fmt.Sprintf("expected ';' after declaration of %q", nameTok.Text))
		return
	}
	p.advance()

	if !p.table.Insert(nameTok.Text, typeTok.Text, p.line(nameTok.Span), opts) {
		p.errorAt(diag.SemDuplicateDecl, nameTok.Span,
			fmt.Sprintf("duplicate declaration of variable %q", nameTok.Text))
	}
}

// parseAssignment handles: IDENT = expression ;
// The target is resolved, never inserted: assignment cannot create a
// binding. An unresolvable target is reported, and the rest of the
// statement is still consumed so recovery stays clean.
func (p *Parser) parseAssignment() {
	nameTok := p.cur()
	p.advance()

	target := p.table.Lookup(nameTok.Text)
	if target == nil {
		p.errorAt(diag.SemUndeclaredVar, nameTok.Span,
			fmt.Sprintf("undeclared variable %q", nameTok.Text))
	}

	if !p.at(token.Assign) {
		p.errorAt(diag.SynExpectAssign, p.cur().Span, "expected '=' in assignment")
		return
	}
	p.advance()

	value, _ := p.captureExpression()

	if !p.at(token.Semicolon) {
		p.errorAt(diag.SynExpectSemicolon, p.cur().Span, "expected ';' after assignment")
		return
	}
	p.advance()

	if target != nil {
		initialized := true
		p.table.Update(nameTok.Text, symtab.UpdateOpts{
			Value:       &value,
			Initialized: &initialized,
		})
	}
}

// parseBlock handles: { statement* }
// The scope is entered before the first statement and exited afterwards,
// including on a malformed block, so scope depth never leaks across
// statements.
func (p *Parser) parseBlock() {
	openTok := p.cur()
	p.advance()

	p.table.EnterScope("")
	defer p.table.ExitScope()

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		p.parseStatement()
	}

	if !p.at(token.RBrace) {
		p.errorAt(diag.SynUnclosedBrace, openTok.Span, "expected '}' to close block")
		return
	}
	p.advance()
}

// captureExpression joins the raw token text of an expression until ';',
// ',' or ')'. No evaluation happens; the joined text is the value snapshot
// the table stores. Every identifier inside the expression is resolved
// through the table (marking it used) and reported when undeclared.
func (p *Parser) captureExpression() (string, bool) {
	var parts []string
	for {
		tok := p.cur()
		if tok.Kind == token.EOF || tok.Kind == token.Semicolon ||
			tok.Kind == token.Comma || tok.Kind == token.RParen {
			break
		}
		if tok.Kind == token.Ident {
			if p.table.Lookup(tok.Text) == nil {
				p.errorAt(diag.SemUndeclaredVar, tok.Span,
					fmt.Sprintf("undeclared variable %q", tok.Text))
			}
		}
		parts = append(parts, tok.Text)
		p.advance()
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, " "), true
}
