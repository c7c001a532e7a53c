package script

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/scalecard/unit"
)

func TestParseGrouping(t *testing.T) {
	cmds, err := Parse("line 1cm 2cm 3cm 4cm width 2pt")
	if err != nil {
		t.Fatal(err)
	}
	want := []Command{
		{
			Kind: KindLine,
			Head: "line",
			Args: []Arg{
				{Num: 1, Unit: unit.CM, Raw: "1"},
				{Num: 2, Unit: unit.CM, Raw: "2"},
				{Num: 3, Unit: unit.CM, Raw: "3"},
				{Num: 4, Unit: unit.CM, Raw: "4"},
			},
			Pos: Pos{Line: 1, Column: 0, Offset: 0, Length: 4},
		},
		{
			Kind: KindWidth,
			Head: "width",
			Args: []Arg{{Num: 2, Unit: unit.PT, Raw: "2"}},
			Pos:  Pos{Line: 1, Column: 21, Offset: 21, Length: 5},
		},
	}
	if diff := cmp.Diff(want, cmds); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseArguments(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []Arg
	}{
		{
			name: "bare number defaults to mm",
			src:  "width 0.5",
			want: []Arg{{Num: 0.5, Unit: unit.MM, Raw: "0.5"}},
		},
		{
			name: "unit is case-insensitive",
			src:  "size 12PT",
			want: []Arg{{Num: 12, Unit: unit.PT, Raw: "12"}},
		},
		{
			name: "percent",
			src:  "pivot 50% 90 %",
			want: []Arg{
				{Num: 50, Unit: unit.Percent, Raw: "50"},
				{Num: 90, Unit: unit.Percent, Raw: "90"},
			},
		},
		{
			name: "strings and numbers",
			src:  "text 1 2 `V``s` 3",
			want: []Arg{
				{Num: 1, Unit: unit.MM, Raw: "1"},
				{Num: 2, Unit: unit.MM, Raw: "2"},
				{Str: "V`s", Raw: "`V``s`", Quoted: true},
				{Num: 3, Unit: unit.MM, Raw: "3"},
			},
		},
		{
			name: "string does not take a unit",
			src:  "label `a` mm",
			want: []Arg{{Str: "a", Raw: "`a`", Quoted: true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmds, err := Parse(tt.src)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, cmds[0].Args); diff != "" {
				t.Errorf("Parse(%q) args mismatch (-want +got):\n%s", tt.src, diff)
			}
		})
	}
}

// TestParseUnitWordIsGreedy checks that a command named like a unit cannot
// directly follow a number: it is always read as the number's unit.
func TestParseUnitWordIsGreedy(t *testing.T) {
	cmds, err := Parse("span 90 pt offset 0")
	if err != nil {
		t.Fatal(err)
	}
	if len(cmds) != 2 {
		t.Fatalf("got %d commands, want 2", len(cmds))
	}
	if cmds[0].Args[0].Unit != unit.PT {
		t.Errorf("unit = %v, want pt", cmds[0].Args[0].Unit)
	}

	cmds, err = Parse("span 90 mark 1 2")
	if err != nil {
		t.Fatal(err)
	}
	heads := []string{cmds[0].Head, cmds[1].Head}
	if diff := cmp.Diff([]string{"span", "mark"}, heads); diff != "" {
		t.Errorf("heads mismatch (-want +got):\n%s", diff)
	}
}

func TestParseHeads(t *testing.T) {
	cmds, err := Parse("CENTRE 1 2 Align-Centre colour monospaced frobnicate")
	if err != nil {
		t.Fatal(err)
	}
	var got []Kind
	for _, c := range cmds {
		got = append(got, c.Kind)
	}
	want := []Kind{KindCenter, KindAlignCenter, KindColor, KindMonospace, KindUnknown}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}
	if cmds[0].Head != "centre" {
		t.Errorf("head = %q, want %q", cmds[0].Head, "centre")
	}
}

func TestParseSyntaxError(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want Pos
	}{
		{"number first", "12 width", Pos{Line: 1, Column: 0, Offset: 0, Length: 2}},
		{"stray dot", "width 1\n  . 2", Pos{Line: 2, Column: 2, Offset: 10, Length: 1}},
		{"string head", "`x`", Pos{Line: 1, Column: 0, Offset: 0, Length: 3}},
		{"lone percent head", "width 1\n%", Pos{Line: 2, Column: 0, Offset: 8, Length: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src)
			var perr *Error
			if !errors.As(err, &perr) {
				t.Fatalf("Parse(%q) error = %v, want *Error", tt.src, err)
			}
			if perr.Msg != "syntax error" {
				t.Errorf("Msg = %q, want %q", perr.Msg, "syntax error")
			}
			if diff := cmp.Diff(tt.want, perr.Pos); diff != "" {
				t.Errorf("Pos mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseNumberOutOfRange(t *testing.T) {
	big := "1" + strings.Repeat("0", 400)
	src := "width 1\nwidth " + big
	_, err := Parse(src)
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("Parse() error = %v, want *Error", err)
	}
	if perr.Msg != "number out of range" {
		t.Errorf("Msg = %q, want %q", perr.Msg, "number out of range")
	}
	if !errors.Is(err, strconv.ErrRange) {
		t.Errorf("Parse() error = %v, want %v", err, strconv.ErrRange)
	}
	want := Pos{Line: 2, Column: 6, Offset: 14, Length: len(big)}
	if diff := cmp.Diff(want, perr.Pos); diff != "" {
		t.Errorf("Pos mismatch (-want +got):\n%s", diff)
	}

	// Tiny values round to zero.
	cmds, err := Parse("width 0." + strings.Repeat("0", 400) + "1")
	if err != nil {
		t.Fatalf("Parse(tiny) error = %v", err)
	}
	if got := cmds[0].Args[0].Num; got != 0 {
		t.Errorf("tiny value = %v, want 0", got)
	}
}

func TestParseEmpty(t *testing.T) {
	cmds, err := Parse("  # nothing here\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(cmds) != 0 {
		t.Errorf("got %d commands, want 0", len(cmds))
	}
}
