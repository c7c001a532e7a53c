package scalecard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/scalecard/script"
)

// Highlight formats err for display. Errors located in src show the line
// number and the offending line up to the word at fault, with a marker
// above that word:
//
//	wrong number of arguments on line 3 at
//	        \/
//	span 90 arc
//
// Other errors are returned as their text.
func Highlight(src string, err error) string {
	if err == nil {
		return ""
	}
	var se *script.Error
	if !errors.As(err, &se) {
		return err.Error()
	}

	pos := se.Pos
	start := min(max(pos.LineStart(), 0), len(src))
	end := min(max(pos.Offset+pos.Length, start), len(src))

	var b strings.Builder
	fmt.Fprintf(&b, "%s on line %d at\n", se.Msg, pos.Line)
	b.WriteString(strings.Repeat(" ", max(pos.Column, 0)))
	b.WriteString("\\/\n")
	b.WriteString(src[start:end])
	return b.String()
}
