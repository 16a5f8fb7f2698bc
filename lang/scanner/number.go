package scanner

import (
	"strconv"

	toklang "github.com/radanskoric/golox/lang/token"
)

// scanNumber consumes a sequence of digits, optionally followed by '.' and
// more digits. If a '.' is found but is not followed by a digit, it is left
// unconsumed so the next call to scanOne emits it as a separate DOT token.
func (s *scanr) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}

	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance() // consume the '.'
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	lit := s.lexeme()
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		s.errorf(s.line, "Invalid number literal %q on line %d", lit, s.line)
		return
	}
	s.addLiteral(toklang.NUMBER, v)
}
