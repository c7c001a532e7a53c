package script

import "fmt"

// TokenKind classifies a token.
type TokenKind int

const (
	// TokenOther is any character no other class accepts.
	// The parser always rejects it.
	TokenOther TokenKind = iota
	// TokenNumber is an optionally signed decimal number.
	TokenNumber
	// TokenWord is a command head or a unit name.
	TokenWord
	// TokenString is a backtick-quoted string, quotes included.
	TokenString
	// TokenPercent is a lone percent sign.
	TokenPercent
)

// String returns the name of the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokenOther:
		return "other"
	case TokenNumber:
		return "number"
	case TokenWord:
		return "word"
	case TokenString:
		return "string"
	case TokenPercent:
		return "percent"
	default:
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
}

// Pos locates a token in the source text.
type Pos struct {
	Line   int // 1-based line number
	Column int // 0-based byte column within the line
	Offset int // byte offset from the start of the source
	Length int // length of the token in bytes
}

// LineStart returns the byte offset of the first byte of the line
// containing the position.
func (p Pos) LineStart() int {
	return p.Offset - p.Column
}

// String formats the position as line:column with a 1-based column.
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column+1)
}

// Token is a classified piece of source text.
type Token struct {
	Kind TokenKind
	Text string
	Pos  Pos
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q at %s", t.Kind, t.Text, t.Pos)
}
