package fcalc

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Compile parses a single operation from a line of input. Accepted
// forms are:
//
//	number operator           5 !, 16 V[2], 2 ^3
//	number operator number    5 + 3, 10 % 4
//	operator number           ln 5, V[3] 27, log[10] 100
//
// The last form is only allowed for unary operators that can precede a
// number.
func Compile(input string) (*Calculation, error) {
	parts := Scan(input)

	for _, p := range parts {
		switch p := p.(type) {
		case UndefinedPart:
			return nil, fmt.Errorf("%w: '%s'", ErrNoOperatorMatch, p.Text)
		case LeftParenthesisPart, RightParenthesisPart:
			return nil, fmt.Errorf("%w: parentheses are not supported in '%s'", ErrMalformedCalculation, input)
		}
	}

	if calc, ok := prefixForm(parts); ok {
		return calc, nil
	}

	if len(parts) < 2 || len(parts) > 3 {
		return nil, malformed(input, parts)
	}

	first, ok := parts[0].(NumberPart)
	if ok == false {
		return nil, malformed(input, parts)
	}
	op, ok := parts[1].(OperatorPart)
	if ok == false {
		return nil, malformed(input, parts)
	}
	calc := &Calculation{First: first.Value, Operator: op.Operator}
	if len(parts) == 2 {
		return calc, nil
	}

	second, ok := parts[2].(NumberPart)
	if ok == false || op.Operator.NeedsOperand() == false {
		return nil, malformed(input, parts)
	}
	calc.Second = decimal.NewNullDecimal(second.Value)
	return calc, nil
}

func prefixForm(parts []Part) (*Calculation, bool) {
	if len(parts) != 2 {
		return nil, false
	}
	op, ok := parts[0].(OperatorPart)
	if ok == false {
		return nil, false
	}
	number, ok := parts[1].(NumberPart)
	if ok == false {
		return nil, false
	}
	o := op.Operator.Operator()
	if o.CanPrecedeNumber() == false || o.IsUnary() == false {
		return nil, false
	}
	return &Calculation{First: number.Value, Operator: op.Operator}, true
}

func malformed(input string, parts []Part) error {
	kinds := make([]string, 0, len(parts))
	for _, p := range parts {
		switch p.(type) {
		case NumberPart:
			kinds = append(kinds, "number")
		case OperatorPart:
			kinds = append(kinds, "operator")
		}
	}
	if len(kinds) == 0 {
		return fmt.Errorf("%w: nothing to calculate", ErrMalformedCalculation)
	}
	return fmt.Errorf("%w: got %s in '%s'", ErrMalformedCalculation, strings.Join(kinds, ", "), input)
}

// EvaluateLine compiles and evaluates input, and renders the result.
func EvaluateLine(input string) (string, error) {
	calc, err := Compile(input)
	if err != nil {
		return "", err
	}
	res, err := calc.Eval()
	if err != nil {
		return "", err
	}
	return res.String(), nil
}
