package script

import (
	"slices"
	"strings"
	"testing"

	"github.com/go-test/deep"
)

func lex(src string) []Token {
	return slices.Collect(Tokens(src))
}

func TestLexerClasses(t *testing.T) {
	got := lex("line -1.5 .25cm 50 % `a b` .x")
	want := []Token{
		{Kind: TokenWord, Text: "line", Pos: Pos{Line: 1, Column: 0, Offset: 0, Length: 4}},
		{Kind: TokenNumber, Text: "-1.5", Pos: Pos{Line: 1, Column: 5, Offset: 5, Length: 4}},
		{Kind: TokenNumber, Text: ".25", Pos: Pos{Line: 1, Column: 10, Offset: 10, Length: 3}},
		{Kind: TokenWord, Text: "cm", Pos: Pos{Line: 1, Column: 13, Offset: 13, Length: 2}},
		{Kind: TokenNumber, Text: "50", Pos: Pos{Line: 1, Column: 16, Offset: 16, Length: 2}},
		{Kind: TokenPercent, Text: "%", Pos: Pos{Line: 1, Column: 19, Offset: 19, Length: 1}},
		{Kind: TokenString, Text: "`a b`", Pos: Pos{Line: 1, Column: 21, Offset: 21, Length: 5}},
		{Kind: TokenOther, Text: ".", Pos: Pos{Line: 1, Column: 27, Offset: 27, Length: 1}},
		{Kind: TokenWord, Text: "x", Pos: Pos{Line: 1, Column: 28, Offset: 28, Length: 1}},
	}
	if diff := deep.Equal(got, want); diff != nil {
		t.Error(diff)
	}
}

func TestLexerWords(t *testing.T) {
	tests := []struct {
		src  string
		want []string
	}{
		{"card-size", []string{"card-size"}},
		{"align-centre2", []string{"align-centre", "2"}},
		{"x-5", []string{"x-", "5"}},
		{"-", []string{"-"}},
		{"1.", []string{"1", "."}},
		{"50%", []string{"50", "%"}},
		{"10%x", []string{"10", "%x"}},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			var got []string
			for tok := range Tokens(tt.src) {
				got = append(got, tok.Text)
			}
			if diff := deep.Equal(got, tt.want); diff != nil {
				t.Errorf("Tokens(%q): %v", tt.src, diff)
			}
		})
	}
}

// TestLexerLines verifies that the k-th token after the m-th newline
// reports line m+1 and its column since that newline.
func TestLexerLines(t *testing.T) {
	src := "a bb\n  ccc # comment\r\n\n\tdd  e\rf"
	type loc struct {
		Text      string
		Line, Col int
	}
	var got []loc
	for tok := range Tokens(src) {
		got = append(got, loc{tok.Text, tok.Pos.Line, tok.Pos.Column})
		lineStart := strings.LastIndexAny(src[:tok.Pos.Offset], "\n\r") + 1
		if tok.Pos.LineStart() != lineStart {
			t.Errorf("%q: LineStart() = %d, want %d", tok.Text, tok.Pos.LineStart(), lineStart)
		}
	}
	want := []loc{
		{"a", 1, 0},
		{"bb", 1, 2},
		{"ccc", 2, 2},
		{"dd", 4, 1},
		{"e", 4, 5},
		{"f", 5, 0},
	}
	if diff := deep.Equal(got, want); diff != nil {
		t.Error(diff)
	}
}

func TestLexerComments(t *testing.T) {
	got := lex("# only a comment\nwidth 1 # trailing `x`")
	if len(got) != 2 {
		t.Fatalf("got %d tokens, want 2: %v", len(got), got)
	}
	if got[0].Text != "width" || got[0].Pos.Line != 2 {
		t.Errorf("first token = %v", got[0])
	}
}

func TestLexerStrings(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"plain", "`abc`", []string{"`abc`"}},
		{"empty", "``", []string{"``"}},
		{"escaped backtick", "`a``b`", []string{"`a``b`"}},
		{"escape pairs", "`10`uA`n`=`", []string{"`10`uA`n`=`"}},
		{"closing before space", "`a` b", []string{"`a`", "b"}},
		{"escape at end backtracks", "`ab`n", []string{"`ab`", "n"}},
		{"unterminated", "`abc", []string{"`", "abc"}},
		{"newline ends string", "`ab\ncd`", []string{"`", "ab", "cd", "`"}},
		{"tab allowed", "`a\tb`", []string{"`a\tb`"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for tok := range Tokens(tt.src) {
				got = append(got, tok.Text)
			}
			if diff := deep.Equal(got, tt.want); diff != nil {
				t.Errorf("Tokens(%q): %v", tt.src, diff)
			}
		})
	}
}

func TestLexerNotRestartable(t *testing.T) {
	l := NewLexer("a b")
	n := 0
	for range l.All() {
		n++
	}
	if n != 2 {
		t.Fatalf("first pass gave %d tokens, want 2", n)
	}
	if _, ok := l.Next(); ok {
		t.Error("Next() after exhaustion returned a token")
	}
}
