package script

import (
	"fmt"
	"strconv"

	"github.com/gogpu/scalecard/unit"
)

// Kind identifies a command.
type Kind int

const (
	// KindUnknown is a command head the language does not define.
	KindUnknown Kind = iota
	KindCardSize
	KindResolution
	KindCardBorder
	KindWidth
	KindColor
	KindPivot
	KindCenter
	KindSpan
	KindOffset
	KindLine
	KindArc
	KindMonospace
	KindProportional
	KindAlignLeft
	KindAlignCenter
	KindAlignRight
	KindSize
	KindText
	KindMark
	KindLabel
)

// heads maps every accepted spelling to its command.
var heads = map[string]Kind{
	"card-size":    KindCardSize,
	"resolution":   KindResolution,
	"card-border":  KindCardBorder,
	"width":        KindWidth,
	"color":        KindColor,
	"colour":       KindColor,
	"pivot":        KindPivot,
	"center":       KindCenter,
	"centre":       KindCenter,
	"span":         KindSpan,
	"offset":       KindOffset,
	"line":         KindLine,
	"arc":          KindArc,
	"monospaced":   KindMonospace,
	"monospace":    KindMonospace,
	"proportional": KindProportional,
	"align-left":   KindAlignLeft,
	"align-center": KindAlignCenter,
	"align-centre": KindAlignCenter,
	"align-right":  KindAlignRight,
	"size":         KindSize,
	"text":         KindText,
	"mark":         KindMark,
	"label":        KindLabel,
}

var kindNames = [...]string{
	KindUnknown:      "unknown",
	KindCardSize:     "card-size",
	KindResolution:   "resolution",
	KindCardBorder:   "card-border",
	KindWidth:        "width",
	KindColor:        "color",
	KindPivot:        "pivot",
	KindCenter:       "center",
	KindSpan:         "span",
	KindOffset:       "offset",
	KindLine:         "line",
	KindArc:          "arc",
	KindMonospace:    "monospace",
	KindProportional: "proportional",
	KindAlignLeft:    "align-left",
	KindAlignCenter:  "align-center",
	KindAlignRight:   "align-right",
	KindSize:         "size",
	KindText:         "text",
	KindMark:         "mark",
	KindLabel:        "label",
}

// LookupKind returns the command for a lower-case head word.
func LookupKind(head string) Kind {
	return heads[head]
}

// String returns the canonical head word of the command.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsPlate reports whether the command sets plate geometry. Plate commands
// are only allowed before the first drawing command.
func (k Kind) IsPlate() bool {
	return k == KindCardSize || k == KindResolution || k == KindCardBorder
}

// Arg is a command argument: either a number with a unit or a string.
type Arg struct {
	// Num and Unit hold a numeric argument.
	Num  float64
	Unit unit.Unit

	// Str holds the unescaped text of a string argument.
	Str string

	// Raw is the source text of the number or quoted string.
	Raw string

	// Quoted is set for string arguments.
	Quoted bool
}

// Number returns a numeric argument.
func Number(v float64, u unit.Unit) Arg {
	return Arg{Num: v, Unit: u, Raw: strconv.FormatFloat(v, 'g', -1, 64)}
}

// String returns a string argument for the unescaped text s.
func String(s string) Arg {
	return Arg{Str: s, Raw: "`" + s + "`", Quoted: true}
}

// IsString reports whether the argument is a string.
func (a Arg) IsString() bool {
	return a.Quoted
}

// Text returns the argument as text: the string itself, or the number as
// it was written in the source.
func (a Arg) Text() string {
	if a.Quoted {
		return a.Str
	}
	return a.Raw
}

// Command is a parsed command with its arguments.
type Command struct {
	Kind Kind
	Head string // lower-case head word as written
	Args []Arg
	Pos  Pos // position of the head word
}

func (c Command) String() string {
	return fmt.Sprintf("%s/%d at %s", c.Head, len(c.Args), c.Pos)
}
