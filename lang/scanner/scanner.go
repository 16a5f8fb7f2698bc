// Package scanner tokenizes Lox source text for the parser to consume.
// Lexical errors are accumulated in a go/scanner.ErrorList rather than
// aborting on the first bad character, so a single pass can report every
// lexical mistake in a source file.
package scanner

import (
	"fmt"
	"go/scanner"
	gotoken "go/token"

	toklang "github.com/radanskoric/golox/lang/token"
)

type (
	// Error is a single lexical error, positioned by line.
	Error = scanner.Error
	// ErrorList collects Errors and can sort and render them.
	ErrorList = scanner.ErrorList
)

// PrintError prints the errors in err (if it is an ErrorList) or err itself
// to w, one per line.
var PrintError = scanner.PrintError

// ScanTokens tokenizes src and returns the resulting token list (always
// including the trailing EOF token, even when errors are found) along with
// any lexical errors collected. The returned error, if non-nil, is a
// scanner.ErrorList sorted by position.
func ScanTokens(src string) ([]toklang.Token, error) {
	s := &scanr{src: []byte(src), line: 1}
	s.run()
	s.errs.Sort()
	return s.tokens, s.errs.Err()
}

type scanr struct {
	src     []byte
	start   int // byte offset of the token currently being scanned
	current int // byte offset of the next unread byte
	line    int // line of s.current

	tokens []toklang.Token
	errs   ErrorList
}

func (s *scanr) run() {
	for !s.atEnd() {
		s.start = s.current
		s.scanOne()
	}
	s.tokens = append(s.tokens, toklang.Token{Kind: toklang.EOF, Line: s.line})
}

func (s *scanr) atEnd() bool { return s.current >= len(s.src) }

func (s *scanr) advance() byte {
	c := s.src[s.current]
	s.current++
	return c
}

func (s *scanr) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.current]
}

func (s *scanr) peekNext() byte {
	if s.current+1 >= len(s.src) {
		return 0
	}
	return s.src[s.current+1]
}

// match consumes the next byte and returns true only if it equals want.
func (s *scanr) match(want byte) bool {
	if s.atEnd() || s.src[s.current] != want {
		return false
	}
	s.current++
	return true
}

func (s *scanr) lexeme() string { return string(s.src[s.start:s.current]) }

func (s *scanr) add(kind toklang.Kind) {
	s.tokens = append(s.tokens, toklang.Token{Kind: kind, Lexeme: s.lexeme(), Line: s.line})
}

func (s *scanr) addLiteral(kind toklang.Kind, literal interface{}) {
	s.tokens = append(s.tokens, toklang.Token{Kind: kind, Lexeme: s.lexeme(), Literal: literal, Line: s.line})
}

func (s *scanr) errorf(line int, format string, args ...interface{}) {
	s.errs.Add(gotoken.Position{Line: line}, fmt.Sprintf(format, args...))
}

func (s *scanr) scanOne() {
	c := s.advance()
	switch c {
	case '(':
		s.add(toklang.LPAREN)
	case ')':
		s.add(toklang.RPAREN)
	case '{':
		s.add(toklang.LBRACE)
	case '}':
		s.add(toklang.RBRACE)
	case ',':
		s.add(toklang.COMMA)
	case '.':
		s.add(toklang.DOT)
	case '-':
		s.add(toklang.MINUS)
	case '+':
		s.add(toklang.PLUS)
	case ';':
		s.add(toklang.SEMICOLON)
	case '*':
		s.add(toklang.STAR)
	case '!':
		s.add(kindIf(s.match('='), toklang.BANG_EQ, toklang.BANG))
	case '=':
		s.add(kindIf(s.match('='), toklang.EQUAL_EQ, toklang.EQUAL))
	case '<':
		s.add(kindIf(s.match('='), toklang.LESS_EQ, toklang.LESS))
	case '>':
		s.add(kindIf(s.match('='), toklang.GREATER_EQ, toklang.GREATER))
	case '/':
		if s.match('/') {
			s.scanLineComment()
		} else {
			s.add(toklang.SLASH)
		}
	case ' ', '\t', '\r':
		// whitespace, ignored
	case '\n':
		s.line++
	case '"':
		s.scanString()
	default:
		switch {
		case isDigit(c):
			s.scanNumber()
		case isAlpha(c):
			s.scanIdentifier()
		default:
			s.errorf(s.line, "Unexpected character %q on line %d", string(c), s.line)
		}
	}
}

func (s *scanr) scanLineComment() {
	for s.peek() != '\n' && !s.atEnd() {
		s.advance()
	}
}

func (s *scanr) scanIdentifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	name := s.lexeme()
	if kind, ok := toklang.Keywords[name]; ok {
		s.add(kind)
		return
	}
	s.addLiteral(toklang.IDENT, name)
}

func kindIf(cond bool, ifTrue, ifFalse toklang.Kind) toklang.Kind {
	if cond {
		return ifTrue
	}
	return ifFalse
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
func isAlphaNumeric(c byte) bool { return isAlpha(c) || isDigit(c) }
