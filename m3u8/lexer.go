package m3u8

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Lexer tokenizes a complete playlist buffer on demand. It is not safe for
// concurrent use; each parse owns its own Lexer.
type Lexer struct {
	input     string
	pos       int
	line      int
	lineStart int
	bol       bool // nothing but whitespace seen since the last newline
	prev      TokenKind
	err       error
}

// NewLexer creates a lexer over input.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input, line: 1, bol: true}
}

// Tokenize lexes all of input eagerly. The returned slice does not
// include the trailing EOF token.
func Tokenize(input string) ([]Token, error) {
	l := NewLexer(input)
	var tokens []Token
	for {
		t, err := l.Next()
		if err != nil {
			return tokens, err
		}
		if t.Kind == TokenEOF {
			return tokens, nil
		}
		tokens = append(tokens, t)
	}
}

// Next returns the next token. Once an error is returned every later call
// returns the same error.
func (l *Lexer) Next() (Token, error) {
	if l.err != nil {
		return Token{}, l.err
	}

	for {
		l.skipWhitespace()
		if l.pos >= len(l.input) {
			return l.token(TokenEOF, l.pos), nil
		}

		start := l.pos
		c := l.input[l.pos]
		atLineStart := l.bol
		l.bol = false

		// Playlist lines that are not tags are URIs.
		if atLineStart && c != '#' {
			return l.scanURILine()
		}

		if c == '#' && atLineStart {
			l.untilAny(":,")
			name := l.input[start:l.pos]
			if !strings.HasPrefix(name, "#EXT") {
				l.skipLine()
				continue
			}
			if err := l.check(start, l.pos); err != nil {
				return Token{}, err
			}
			kind, ok := tagKinds[name]
			if !ok {
				kind = TokenUnknownTag
			}
			return l.emit(kind, start), nil
		}

		switch c {
		case ':':
			l.pos++
			return l.emit(TokenColon, start), nil
		case ',':
			l.pos++
			return l.emit(TokenComma, start), nil
		case '=':
			l.pos++
			return l.emit(TokenEquals, start), nil
		case '"':
			return l.scanString()
		}

		rest := l.input[l.pos:]
		if hasURIScheme(rest) {
			l.untilAny("")
			if err := l.check(start, l.pos); err != nil {
				return Token{}, err
			}
			return l.emit(TokenURI, start), nil
		}
		return l.scanWord()
	}
}

func hasURIScheme(s string) bool {
	for _, scheme := range []string{"http://", "https://"} {
		if len(s) > len(scheme) && strings.HasPrefix(s, scheme) && !isSpace(s[len(scheme)]) {
			return true
		}
	}
	return false
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f' || b == '\v'
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		b := l.input[l.pos]
		if !isSpace(b) {
			return
		}
		l.pos++
		if b == '\n' {
			l.line++
			l.lineStart = l.pos
			l.bol = true
		}
	}
}

// skipLine advances to the newline ending the current line, leaving it
// for skipWhitespace.
func (l *Lexer) skipLine() {
	for l.pos < len(l.input) && l.input[l.pos] != '\n' {
		l.pos++
	}
}

// untilAny advances until whitespace or any byte in delims.
func (l *Lexer) untilAny(delims string) {
	for l.pos < len(l.input) {
		b := l.input[l.pos]
		if isSpace(b) || strings.IndexByte(delims, b) >= 0 {
			return
		}
		l.pos++
	}
}

func (l *Lexer) scanURILine() (Token, error) {
	start := l.pos
	l.skipLine()
	end := l.pos
	for end > start && isSpace(l.input[end-1]) {
		end--
	}
	if err := l.check(start, end); err != nil {
		return Token{}, err
	}
	t := l.token(TokenURI, start)
	t.Text = l.input[start:end]
	t.End = end
	return t, nil
}

func (l *Lexer) scanString() (Token, error) {
	start := l.pos
	l.pos++ // opening quote
	for l.pos < len(l.input) && l.input[l.pos] != '"' && l.input[l.pos] != '\n' {
		l.pos++
	}
	if l.pos >= len(l.input) || l.input[l.pos] != '"' {
		if l.prev != TokenEquals {
			return l.scanLineRest(start)
		}
		return Token{}, l.fail(start, l.pos, "unterminated quoted string")
	}
	if err := l.check(start+1, l.pos); err != nil {
		return Token{}, err
	}
	l.pos++ // closing quote
	t := l.emit(TokenString, start)
	t.Text = l.input[start+1 : l.pos-1]
	return t, nil
}

// scanLineRest emits a stray quote and the remainder of its line as a
// single word, as found in free-text EXTINF titles.
func (l *Lexer) scanLineRest(start int) (Token, error) {
	l.skipLine()
	end := l.pos
	for end > start && isSpace(l.input[end-1]) {
		end--
	}
	if err := l.check(start, end); err != nil {
		return Token{}, err
	}
	l.pos = end
	return l.emit(TokenWord, start), nil
}

func (l *Lexer) scanWord() (Token, error) {
	start := l.pos
	l.untilAny(`:,="`)
	if err := l.check(start, l.pos); err != nil {
		return Token{}, err
	}
	word := l.input[start:l.pos]
	followedByEquals := l.pos < len(l.input) && l.input[l.pos] == '='

	t := l.emit(TokenWord, start)
	if kind, ok := keyKinds[word]; ok {
		t.Kind = kind
		return t, nil
	}
	if followedByEquals {
		t.Kind = TokenUnknownKey
		return t, nil
	}

	switch word {
	case string(CryptAES), string(CryptSampleAES), string(CryptNone):
		t.Kind, t.Method = TokenMethodValue, Method(word)
		return t, nil
	case "YES", "NO":
		t.Kind, t.Bool = TokenBoolValue, word == "YES"
		return t, nil
	case string(PlaylistVOD), string(PlaylistEvent):
		t.Kind, t.Type = TokenTypeValue, PlaylistType(word)
		return t, nil
	}

	if a, b, ok := splitDigits(word, '@'); ok {
		t.Kind = TokenRangeValue
		t.Uint, t.Uint2, t.Err = parsePair(a, b)
	} else if a, b, ok := splitDigits(word, 'x'); ok {
		t.Kind = TokenResolutionValue
		t.Uint, t.Uint2, t.Err = parsePair(a, b)
	} else if _, _, ok := splitDigits(word, '.'); ok {
		t.Kind = TokenFloat
		t.Float, t.Err = strconv.ParseFloat(word, 64)
	} else if isDigits(word) {
		t.Kind = TokenInteger
		t.Uint, t.Err = strconv.ParseUint(word, 10, 64)
	}
	return t, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// splitDigits splits s around sep and reports whether both halves are
// non-empty runs of decimal digits.
func splitDigits(s string, sep byte) (string, string, bool) {
	i := strings.IndexByte(s, sep)
	if i < 0 {
		return "", "", false
	}
	a, b := s[:i], s[i+1:]
	return a, b, isDigits(a) && isDigits(b)
}

func parsePair(a, b string) (x, y uint64, err error) {
	if x, err = strconv.ParseUint(a, 10, 64); err != nil {
		return
	}
	y, err = strconv.ParseUint(b, 10, 64)
	return
}

// check rejects invalid UTF-8 and control characters in input[start:end].
func (l *Lexer) check(start, end int) error {
	for i := start; i < end; {
		r, size := utf8.DecodeRuneInString(l.input[i:end])
		if r == utf8.RuneError && size == 1 {
			return l.fail(i, i+1, "invalid UTF-8")
		}
		if (r < 0x20 && r != '\t') || r == 0x7f {
			return l.fail(i, i+size, "unexpected character")
		}
		i += size
	}
	return nil
}

func (l *Lexer) fail(start, end int, reason string) error {
	l.err = &LexError{
		Line:   l.line,
		Col:    start - l.lineStart + 1,
		Text:   l.input[start:end],
		Reason: reason,
	}
	return l.err
}

func (l *Lexer) token(kind TokenKind, start int) Token {
	l.prev = kind
	return Token{
		Kind: kind,
		Line: l.line,
		Col:  start - l.lineStart + 1,
		Pos:  start,
		End:  l.pos,
	}
}

// emit builds a token spanning input[start:l.pos].
func (l *Lexer) emit(kind TokenKind, start int) Token {
	t := l.token(kind, start)
	t.Text = l.input[start:l.pos]
	return t
}
