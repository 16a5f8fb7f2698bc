package scanner

import toklang "github.com/radanskoric/golox/lang/token"

// scanString consumes a double-quoted string literal. Strings may span
// multiple lines; the line counter advances for every newline encountered
// inside the string. An unterminated string (EOF reached before the closing
// quote) is reported at the line the string started on.
func (s *scanr) scanString() {
	startLine := s.line
	for s.peek() != '"' && !s.atEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}

	if s.atEnd() {
		s.errorf(startLine, `Expected string closing quote " but found none on line %d`, startLine)
		return
	}

	s.advance() // consume the closing '"'

	// strip the surrounding quotes for the literal value
	value := string(s.src[s.start+1 : s.current-1])
	s.addLiteral(toklang.STRING, value)
}
