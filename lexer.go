package fcalc

import (
	"io"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// A Lexer splits an input line into Parts.
type Lexer struct {
	input      string
	parts      chan Part
	action     lActionFn
	start, pos int
	width      int
	last       Part
}

type lActionFn func(l *Lexer) lActionFn

// NewLexer creates a Lexer reading input.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  input,
		start:  0,
		pos:    0,
		width:  0,
		parts:  make(chan Part, 2),
		action: lexSpace,
	}
}

// Next returns the next Part of the input, or io.EOF once the input is
// exhausted. Unrecognized fragments are returned as UndefinedPart, so
// io.EOF is the only error.
func (l *Lexer) Next() (Part, error) {
	for {
		select {
		case p := <-l.parts:
			return p, nil
		default:
			if l.action == nil {
				return nil, io.EOF
			}
			l.action = l.action(l)
		}
	}
}

// Scan returns all the Parts of input.
func Scan(input string) []Part {
	l := NewLexer(input)
	var parts []Part
	for {
		p, err := l.Next()
		if err != nil {
			return parts
		}
		parts = append(parts, p)
	}
}

const eof rune = 0

var numberRe = regexp.MustCompile(`^-?` + numberPattern)

// Actions

func lexSpace(l *Lexer) lActionFn {
	var ru rune
	for {
		ru = l.next()
		if unicode.IsSpace(ru) == false {
			break
		}
	}
	l.backup()
	l.ignore()

	switch {
	case ru == eof:
		return nil
	case ru == '(':
		l.next()
		l.emit(LeftParenthesisPart{})
		return lexSpace
	case ru == ')':
		l.next()
		l.emit(RightParenthesisPart{})
		return lexSpace
	case ru == '-' && !l.signAllowed():
		return lexOperator
	case numberRe.MatchString(l.input[l.pos:]):
		return lexNumber
	}
	return lexOperator
}

func lexNumber(l *Lexer) lActionFn {
	l.pos += len(numberRe.FindString(l.input[l.pos:]))
	value, err := ParseNumber(l.current())
	if err != nil {
		l.emit(UndefinedPart{Text: l.current()})
		return lexSpace
	}
	l.emit(NumberPart{Value: value})
	return lexSpace
}

func lexOperator(l *Lexer) lActionFn {
	rest := l.input[l.pos:]
	for _, op := range scanOrder {
		if loc := op.prefix.FindStringIndex(rest); loc != nil {
			l.pos += loc[1]
			l.emit(OperatorPart{Operator: BoundOperator{op: op, text: l.current()}})
			return lexSpace
		}
	}
	return lexUndefined
}

func lexUndefined(l *Lexer) lActionFn {
	l.next()
	for {
		ru := l.next()
		if ru == eof || unicode.IsSpace(ru) || strings.ContainsRune(delimiters, ru) {
			break
		}
	}
	l.backup()
	l.emit(UndefinedPart{Text: l.current()})
	return lexSpace
}

// static data

var delimiters = "()0123456789"

// helpers

// signAllowed reports whether a '-' at the current position is the
// sign of a number rather than a subtraction: only when nothing, an
// operator or an opening parenthesis precedes it.
func (l *Lexer) signAllowed() bool {
	switch l.last.(type) {
	case nil, OperatorPart, LeftParenthesisPart:
		return true
	}
	return false
}

func (l *Lexer) current() string {
	return l.input[l.start:l.pos]
}

func (l *Lexer) emit(p Part) {
	l.parts <- p
	l.last = p
	l.ignore()
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	var ru rune
	ru, l.width =
		utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += l.width
	return ru
}

func (l *Lexer) backup() {
	l.pos -= l.width
}

func (l *Lexer) ignore() {
	l.start = l.pos
}
