// Package parser implements a recursive-descent parser that transforms a
// token stream into a list of statement AST nodes, with panic-mode error
// recovery so a single pass can report more than one syntax error.
package parser

import (
	"fmt"
	"go/scanner"
	gotoken "go/token"

	"github.com/radanskoric/golox/lang/ast"
	"github.com/radanskoric/golox/lang/token"
)

type (
	// Error is a single syntax error, positioned by line.
	Error = scanner.Error
	// ErrorList collects Errors and can sort and render them.
	ErrorList = scanner.ErrorList
)

// PrintError prints the errors in err (if it is an ErrorList) or err itself
// to w, one per line.
var PrintError = scanner.PrintError

// Parse parses a token stream (as produced by lang/scanner) into a list of
// statements. It always returns the statements successfully parsed so far;
// callers should check the returned error before executing them. The
// returned error, if non-nil, is a scanner.ErrorList sorted by position.
func Parse(tokens []token.Token) ([]ast.Stmt, error) {
	p := &parser{tokens: tokens}
	var stmts []ast.Stmt
	for !p.atEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.errs.Sort()
	return stmts, p.errs.Err()
}

type parser struct {
	tokens  []token.Token
	current int
	errs    ErrorList
}

// parseError is raised internally (via panic) to unwind to the nearest
// synchronization point; it is always recovered inside declaration().
type parseError struct{}

func (p *parser) errorAt(tok token.Token, format string, args ...interface{}) parseError {
	p.errs.Add(gotoken.Position{Line: tok.Line}, fmt.Sprintf(format, args...))
	return parseError{}
}

func (p *parser) peek() token.Token     { return p.tokens[p.current] }
func (p *parser) previous() token.Token { return p.tokens[p.current-1] }
func (p *parser) atEnd() bool           { return p.peek().Kind == token.EOF }

func (p *parser) advance() token.Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) check(k token.Kind) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Kind == k
}

func (p *parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past the expected kind or panics with a parseError
// describing what was expected.
func (p *parser) consume(k token.Kind, msg string) token.Token {
	if p.check(k) {
		return p.advance()
	}
	panic(p.errorAt(p.peek(), "%s", msg))
}

// synchronize discards tokens until it finds a likely statement boundary, so
// parsing can resume after a syntax error without producing a cascade of
// spurious follow-on errors.
func (p *parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Kind == token.SEMICOLON {
			return
		}
		switch p.peek().Kind {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}
