package m3u8

// cursor is a bounded lookahead buffer over a lazy Lexer. It only moves
// forward; peeked tokens are lexed once and kept until consumed.
type cursor struct {
	lex   *Lexer
	input string
	buf   []Token
	last  Token // most recently consumed token
}

func newCursor(input string) *cursor {
	return &cursor{lex: NewLexer(input), input: input}
}

// peek returns the token n positions ahead without consuming it.
// peek(0) is the next token.
func (c *cursor) peek(n int) (Token, error) {
	for len(c.buf) <= n {
		if k := len(c.buf); k > 0 && c.buf[k-1].Kind == TokenEOF {
			return c.buf[k-1], nil
		}
		t, err := c.lex.Next()
		if err != nil {
			return Token{}, err
		}
		c.buf = append(c.buf, t)
	}
	return c.buf[n], nil
}

// next consumes and returns the next token.
func (c *cursor) next() (Token, error) {
	t, err := c.peek(0)
	if err != nil {
		return Token{}, err
	}
	if t.Kind != TokenEOF {
		c.buf = c.buf[1:]
	}
	c.last = t
	return t, nil
}

// skip consumes n tokens.
func (c *cursor) skip(n int) error {
	for i := 0; i < n; i++ {
		if _, err := c.next(); err != nil {
			return err
		}
	}
	return nil
}

// expect consumes the next token if it has kind k. Otherwise nothing is
// consumed and ok is false; the offending token is returned for error
// reporting.
func (c *cursor) expect(k TokenKind) (t Token, ok bool, err error) {
	if t, err = c.peek(0); err != nil || t.Kind != k {
		return t, false, err
	}
	t, err = c.next()
	return t, err == nil, err
}

// value consumes a separator of kind sep followed by a value token of
// one of the given kinds. On a mismatch nothing is consumed and a
// missing-value error naming field is returned.
func (c *cursor) value(field string, sep TokenKind, kinds ...TokenKind) (Token, error) {
	s, err := c.peek(0)
	if err != nil {
		return Token{}, err
	}
	if s.Kind != sep {
		return Token{}, missing(field, s)
	}
	v, err := c.peek(1)
	if err != nil {
		return Token{}, err
	}
	for _, k := range kinds {
		if v.Kind == k {
			return v, c.skip(2)
		}
	}
	return Token{}, missing(field, v)
}

// skipLine consumes the remaining tokens on line.
func (c *cursor) skipLine(line int) error {
	for {
		t, err := c.peek(0)
		if err != nil {
			return err
		}
		if t.Kind == TokenEOF || t.Line != line {
			return nil
		}
		if _, err := c.next(); err != nil {
			return err
		}
	}
}

// restOfLine consumes the remaining tokens on line and returns the source
// text they span.
func (c *cursor) restOfLine(line int) (string, error) {
	first, err := c.peek(0)
	if err != nil || first.Kind == TokenEOF || first.Line != line {
		return "", err
	}
	if err := c.skipLine(line); err != nil {
		return "", err
	}
	return c.input[first.Pos:c.last.End], nil
}

// enum is value for closed enumerations. A value with the shape of an
// enumerated string that is not of kind is rejected with ErrInvalidEnum.
func (c *cursor) enum(field string, sep, kind TokenKind) (Token, error) {
	v, err := c.value(field, sep, kind, TokenWord, TokenString, TokenMethodValue, TokenBoolValue, TokenTypeValue)
	if err != nil {
		return Token{}, err
	}
	if v.Kind != kind {
		return Token{}, unexpected(field, v, ErrInvalidEnum)
	}
	return v, nil
}

// uintValue returns the decoded integer of t, attributing a conversion
// failure to field.
func uintValue(field string, t Token) (uint64, error) {
	if t.Err != nil {
		return 0, fieldErr(field, t, t.Err)
	}
	return t.Uint, nil
}

// floatValue returns t as a float, accepting integer literals.
func floatValue(field string, t Token) (float64, error) {
	if t.Err != nil {
		return 0, fieldErr(field, t, t.Err)
	}
	if t.Kind == TokenInteger {
		return float64(t.Uint), nil
	}
	return t.Float, nil
}

// pairValue returns the two halves of a range or resolution literal.
func pairValue(field string, t Token) (uint64, uint64, error) {
	if t.Err != nil {
		return 0, 0, fieldErr(field, t, t.Err)
	}
	return t.Uint, t.Uint2, nil
}
