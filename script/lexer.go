// Package script reads the scale card design language.
//
// A design is a sequence of commands. Each command is a word followed by
// arguments, which are numbers with an optional unit or backtick-quoted
// strings:
//
//	card-size 10cm 6cm   # plate geometry
//	pivot 50% 90%
//	span 90
//	arc 40mm
//	mark 38mm 42mm 0 25 50 75 100
//	label 34mm `0` `5` `10` 0 50 100
//
// The [Lexer] splits the source into tokens and [Parse] groups them into
// [Command] values. Positions are kept on every token so that errors can
// point at the offending text.
package script

import "iter"

// Lexer splits design source text into tokens.
//
// Whitespace, newlines and comments are consumed silently but still advance
// the line and column counters. A Lexer is not restartable.
type Lexer struct {
	src  string
	cur  int // byte offset of the next unread byte
	line int
	col  int
}

// NewLexer returns a lexer reading src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1}
}

// Next returns the next token. The second result is false once the source
// is exhausted.
func (l *Lexer) Next() (Token, bool) {
	for l.cur < len(l.src) {
		start := l.cur
		kind, end, keep := l.scan()
		n := end - start
		if kind == tokNewline {
			l.line++
			l.col = 0
			l.cur = end
			continue
		}
		tok := Token{
			Kind: TokenKind(kind),
			Text: l.src[start:end],
			Pos:  Pos{Line: l.line, Column: l.col, Offset: start, Length: n},
		}
		l.col += n
		l.cur = end
		if keep {
			return tok, true
		}
	}
	return Token{}, false
}

// All returns the remaining tokens as a sequence.
func (l *Lexer) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok, ok := l.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// Tokens returns the token sequence of src.
func Tokens(src string) iter.Seq[Token] {
	return NewLexer(src).All()
}

// internal token classes; the retained ones share values with TokenKind
const (
	tokOther   = int(TokenOther)
	tokNumber  = int(TokenNumber)
	tokWord    = int(TokenWord)
	tokString  = int(TokenString)
	tokPercent = int(TokenPercent)
	tokComment = iota + 100
	tokNewline
	tokSpace
)

// scan classifies the text at l.cur. The classes are tried in a fixed
// order and the first one that matches wins.
func (l *Lexer) scan() (kind, end int, keep bool) {
	s, i := l.src, l.cur
	c := s[i]

	if c == '#' {
		j := i + 1
		for j < len(s) && !isLineBreak(s[j]) {
			j++
		}
		return tokComment, j, false
	}
	if j := scanNumber(s, i); j > i {
		return tokNumber, j, true
	}
	if isWordByte(c) {
		j := i + 1
		for j < len(s) && isWordByte(s[j]) {
			j++
		}
		if j == i+1 && c == '%' {
			return tokPercent, j, true
		}
		return tokWord, j, true
	}
	if c == '`' {
		if j := scanString(s, i); j > i {
			return tokString, j, true
		}
	}
	if isLineBreak(c) {
		if c == '\r' && i+1 < len(s) && s[i+1] == '\n' {
			return tokNewline, i + 2, false
		}
		return tokNewline, i + 1, false
	}
	if isSpace(c) {
		j := i + 1
		for j < len(s) && isSpace(s[j]) {
			j++
		}
		return tokSpace, j, false
	}
	return tokOther, i + 1, true
}

// scanNumber matches -?(\d+(\.\d+)?|\.\d+) at i and returns the end offset,
// or i if there is no match.
func scanNumber(s string, i int) int {
	j := i
	if j < len(s) && s[j] == '-' {
		j++
	}
	digits := func(k int) int {
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		return k
	}
	switch {
	case j < len(s) && isDigit(s[j]):
		j = digits(j)
		if j+1 < len(s) && s[j] == '.' && isDigit(s[j+1]) {
			j = digits(j + 1)
		}
		return j
	case j+1 < len(s) && s[j] == '.' && isDigit(s[j+1]):
		return digits(j + 1)
	default:
		return i
	}
}

// scanString matches a backtick-quoted string starting at i and returns the
// end offset, or i if the string is not terminated. Inside the quotes a
// backtick starts an escape pair when it is followed by an escape
// character; the closing quote is the last backtick that can end the
// string.
func scanString(s string, i int) int {
	var starts []int
	j := i + 1
	for j < len(s) {
		c := s[j]
		if c == '`' {
			if j+1 < len(s) && isEscapeByte(s[j+1]) {
				starts = append(starts, j)
				j += 2
				continue
			}
			return j + 1
		}
		if isControl(c) && c != '\t' {
			break
		}
		j++
	}
	// no plain closing quote: the backtick of the latest escape pair
	// closes the string instead
	if n := len(starts); n > 0 {
		return starts[n-1] + 1
	}
	return i
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isLineBreak(c byte) bool { return 0x0a <= c && c <= 0x0d }

func isControl(c byte) bool { return 0x01 <= c && c < 0x20 }

func isSpace(c byte) bool {
	return (0x01 <= c && c <= 0x09) || (0x0e <= c && c <= 0x20)
}

func isWordByte(c byte) bool {
	return !(0x01 <= c && c <= 0x20) && !isDigit(c) && c != '.' && c != '`'
}

func isEscapeByte(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		return true
	}
	switch c {
	case '`', '.', '-', '~', '=':
		return true
	}
	return false
}
