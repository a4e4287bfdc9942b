package fcalc

import "github.com/shopspring/decimal"

// A Part is a classified token of an input line. It is one of
// UndefinedPart, OperatorPart, NumberPart, LeftParenthesisPart or
// RightParenthesisPart.
type Part interface {
	String() string
	part()
}

// UndefinedPart is a fragment that is neither a number, an operator nor
// a parenthesis.
type UndefinedPart struct {
	Text string
}

// OperatorPart is a matched operator.
type OperatorPart struct {
	Operator BoundOperator
}

// NumberPart is a decimal literal, possibly negative.
type NumberPart struct {
	Value decimal.Decimal
}

type LeftParenthesisPart struct{}

type RightParenthesisPart struct{}

func (p UndefinedPart) String() string        { return p.Text }
func (p OperatorPart) String() string         { return p.Operator.Text() }
func (p NumberPart) String() string           { return p.Value.String() }
func (p LeftParenthesisPart) String() string  { return "(" }
func (p RightParenthesisPart) String() string { return ")" }

func (UndefinedPart) part()        {}
func (OperatorPart) part()         {}
func (NumberPart) part()           {}
func (LeftParenthesisPart) part()  {}
func (RightParenthesisPart) part() {}
