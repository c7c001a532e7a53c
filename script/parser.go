package script

import (
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/text/cases"

	"github.com/gogpu/scalecard/unit"
)

// Error is a problem with a design, located at a token in the source.
// Both syntax errors and command errors use this type.
type Error struct {
	Msg string
	Pos Pos

	// Err is the underlying error, if any.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf returns an *Error at pos with a formatted message.
func Errorf(pos Pos, format string, args ...any) *Error {
	return &Error{Msg: fmt.Sprintf(format, args...), Pos: pos}
}

// WrapError locates err at pos. The message is the text of err.
func WrapError(pos Pos, err error) *Error {
	return &Error{Msg: err.Error(), Pos: pos, Err: err}
}

// Parser groups tokens into commands.
type Parser struct {
	lex    *Lexer
	peeked *Token
	fold   cases.Caser
}

// NewParser returns a parser reading the tokens of src.
func NewParser(src string) *Parser {
	return &Parser{lex: NewLexer(src), fold: cases.Fold()}
}

// Parse parses the complete design in src.
func Parse(src string) ([]Command, error) {
	return NewParser(src).ParseAll()
}

// ParseAll reads commands until the source is exhausted. It stops at the
// first syntax error.
func (p *Parser) ParseAll() ([]Command, error) {
	var cmds []Command
	for {
		cmd, ok, err := p.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return cmds, nil
		}
		cmds = append(cmds, cmd)
	}
}

// Next parses one command. The second result is false at the end of the
// source.
//
// A command is a word followed by as many arguments as can be read. After
// a number, a word or percent sign is taken as the number's unit if it
// names one; otherwise it is left to start the next command. This means a
// word spelled like a unit can never follow a number as a command head.
func (p *Parser) Next() (Command, bool, error) {
	head, ok := p.next()
	if !ok {
		return Command{}, false, nil
	}
	if head.Kind != TokenWord {
		return Command{}, false, &Error{Msg: "syntax error", Pos: head.Pos}
	}

	name := p.fold.String(head.Text)
	cmd := Command{
		Kind: LookupKind(name),
		Head: name,
		Pos:  head.Pos,
	}
	for {
		arg, ok, err := p.arg()
		if err != nil {
			return Command{}, false, err
		}
		if !ok {
			break
		}
		cmd.Args = append(cmd.Args, arg)
	}
	return cmd, true, nil
}

func (p *Parser) arg() (Arg, bool, error) {
	tok, ok := p.peek()
	if !ok {
		return Arg{}, false, nil
	}

	switch tok.Kind {
	case TokenNumber:
		p.next()
		v, err := strconv.ParseFloat(tok.Text, 64)
		if errors.Is(err, strconv.ErrRange) {
			return Arg{}, false, &Error{Msg: "number out of range", Pos: tok.Pos, Err: err}
		}
		if err != nil {
			return Arg{}, false, &Error{Msg: "syntax error", Pos: tok.Pos, Err: err}
		}
		arg := Arg{Num: v, Unit: unit.Default, Raw: tok.Text}
		if ut, ok := p.peek(); ok && (ut.Kind == TokenWord || ut.Kind == TokenPercent) {
			if u, found := unit.Lookup(ut.Text); found {
				arg.Unit = u
				p.next()
			}
		}
		return arg, true, nil

	case TokenString:
		p.next()
		return Arg{Str: Unescape(tok.Text), Raw: tok.Text, Quoted: true}, true, nil
	}
	return Arg{}, false, nil
}

func (p *Parser) peek() (Token, bool) {
	if p.peeked == nil {
		tok, ok := p.lex.Next()
		if !ok {
			return Token{}, false
		}
		p.peeked = &tok
	}
	return *p.peeked, true
}

func (p *Parser) next() (Token, bool) {
	tok, ok := p.peek()
	p.peeked = nil
	return tok, ok
}
