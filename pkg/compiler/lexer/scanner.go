package lexer

import "bytes"

// Scanner performs lexical analysis on Atomic source.
type Scanner struct {
	source []byte
	cursor int
	line   int

	// lineHasTokens gates KindEOL emission: blank lines produce no tokens at all.
	lineHasTokens bool
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source []byte) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
	}
}

// Reset re-initializes the scanner with new source for pool reuse.
func (s *Scanner) Reset(source []byte) {
	s.source = source
	s.cursor = 0
	s.line = 1
	s.lineHasTokens = false
}

// Next returns the next token from the source.
func (s *Scanner) Next() Token {
	s.skipBlanks()

	if s.cursor >= len(s.source) {
		if s.lineHasTokens {
			s.lineHasTokens = false
			return Token{Kind: KindEOL, Offset: uint32(s.cursor), Line: uint32(s.line)}
		}
		return Token{Kind: KindEOF, Offset: uint32(s.cursor), Line: uint32(s.line)}
	}

	ch := s.source[s.cursor]

	if ch == '\n' {
		tok := Token{Kind: KindEOL, Offset: uint32(s.cursor), Length: 1, Line: uint32(s.line)}
		s.cursor++
		s.line++
		s.lineHasTokens = false
		return tok
	}

	s.lineHasTokens = true

	if ch == '"' {
		return s.scanString()
	}

	return s.scanWord()
}

// skipBlanks consumes horizontal whitespace and any newlines on lines
// that have produced no tokens yet.
func (s *Scanner) skipBlanks() {
	for s.cursor < len(s.source) {
		ch := s.source[s.cursor]
		if ch == ' ' || ch == '\t' || ch == '\r' {
			s.cursor++
		} else if ch == '\n' && !s.lineHasTokens {
			s.cursor++
			s.line++
		} else {
			break
		}
	}
}

// scanString captures a double-quoted literal verbatim, quotes included.
// A quote still open at end of line (or end of input) is a lex error.
func (s *Scanner) scanString() Token {
	start := s.cursor
	s.cursor++ // skip opening '"'
	for s.cursor < len(s.source) && s.source[s.cursor] != '"' && s.source[s.cursor] != '\n' {
		s.cursor++
	}

	if s.cursor >= len(s.source) || s.source[s.cursor] == '\n' {
		return Token{Kind: KindError, Offset: uint32(start), Length: uint32(s.cursor - start), Line: uint32(s.line)}
	}

	s.cursor++ // skip closing '"'
	return Token{Kind: KindString, Offset: uint32(start), Length: uint32(s.cursor - start), Line: uint32(s.line)}
}

// scanWord consumes one whitespace-delimited unit and classifies it.
func (s *Scanner) scanWord() Token {
	start := s.cursor
	for s.cursor < len(s.source) && !isBoundary(s.source[s.cursor]) {
		s.cursor++
	}

	literal := s.source[start:s.cursor]
	kind := KindWord

	switch {
	case bytes.Equal(literal, []byte("print")):
		kind = KindPrint
	case bytes.Equal(literal, []byte("add")):
		kind = KindAdd
	case bytes.Equal(literal, []byte("multiply")):
		kind = KindMultiply
	case bytes.Equal(literal, []byte("mod")):
		kind = KindMod
	case isInteger(literal):
		kind = KindNumber
	}

	return Token{Kind: kind, Offset: uint32(start), Length: uint32(len(literal)), Line: uint32(s.line)}
}

// Tokenize runs the scanner over the whole source. It is the batch
// counterpart of Scanner.Next used by the parser and the trace dump.
func Tokenize(source []byte) ([]Token, error) {
	s := NewScanner(source)
	var tokens []Token
	for {
		tok := s.Next()
		if tok.Kind == KindError {
			return nil, &Error{Line: int(tok.Line), Err: ErrUnterminatedString}
		}
		tokens = append(tokens, tok)
		if tok.Kind == KindEOF {
			return tokens, nil
		}
	}
}

// Text returns the source bytes a token spans.
func (t Token) Text(source []byte) string {
	return string(source[t.Offset : t.Offset+t.Length])
}

func isBoundary(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '"'
}

// isInteger reports whether lit is a base-10 signed integer shape.
// Range checking against int64 is the parser's job.
func isInteger(lit []byte) bool {
	if len(lit) > 0 && (lit[0] == '-' || lit[0] == '+') {
		lit = lit[1:]
	}
	if len(lit) == 0 {
		return false
	}
	for _, ch := range lit {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}
