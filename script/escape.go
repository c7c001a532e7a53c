package script

import (
	"strings"

	"github.com/gogpu/scalecard/glyph"
)

var escapes = map[rune]rune{
	'`': '`',
	'n': '\n',
	'u': glyph.Micro,
	'R': glyph.Omega,
	'-': glyph.Hyphen,
	'.': glyph.Interpunct,
	'~': glyph.AC,
	'=': glyph.DC,
}

// Unescape returns the text of a quoted string token. The surrounding
// backticks are removed and escape pairs are replaced. An unknown escape
// keeps both the backtick and the escaped character.
func Unescape(quoted string) string {
	body := quoted
	if len(body) >= 2 && body[0] == '`' && body[len(body)-1] == '`' {
		body = body[1 : len(body)-1]
	}
	if !strings.ContainsRune(body, '`') {
		return body
	}

	var b strings.Builder
	b.Grow(len(body))
	esc := false
	for _, c := range body {
		if esc {
			esc = false
			if r, ok := escapes[c]; ok {
				b.WriteRune(r)
			} else {
				b.WriteByte('`')
				b.WriteRune(c)
			}
			continue
		}
		if c == '`' {
			esc = true
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}
