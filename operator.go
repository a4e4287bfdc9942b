package fcalc

import (
	"math"
	"regexp"

	"github.com/shopspring/decimal"
)

// numberPattern matches an unsigned integer or decimal literal: 4, 2.5
// or .5.
const numberPattern = `(\d+(\.\d+)?|\.\d+)`

const bracedNumberPattern = `\[` + numberPattern + `\]`

// rootTolerance is the distance under which a root is snapped to the
// nearest integer.
const rootTolerance = 2e-14

const maxFactorial = 5000

type opFlag uint

const (
	precedesNumber opFlag = 1 << iota
	unary
	withBase
)

type computeFn func(x decimal.Decimal, y decimal.NullDecimal) (decimal.Decimal, error)

// An Operator is an entry of the catalog. Operators are created once
// at initialization and never modified.
type Operator struct {
	symbol      string
	description string
	flags       opFlag

	source  string
	pattern *regexp.Regexp // whole token
	prefix  *regexp.Regexp // start of a line
	compute computeFn
}

// Symbol returns the canonical short name of the operator, like "+" or
// "log[b]".
func (o *Operator) Symbol() string { return o.symbol }

// Description returns a human readable name, like "addition".
func (o *Operator) Description() string { return o.description }

// Pattern returns the regular expression recognizing the operator.
func (o *Operator) Pattern() string { return o.source }

// CanPrecedeNumber reports whether the operator may be written
// immediately before a number.
func (o *Operator) CanPrecedeNumber() bool { return o.flags&precedesNumber != 0 }

// IsUnary reports whether the operator takes a single explicit
// operand.
func (o *Operator) IsUnary() bool { return o.flags&unary != 0 }

// HasEmbeddedBase reports whether the second value is written inside
// the operator token.
func (o *Operator) HasEmbeddedBase() bool { return o.flags&withBase != 0 }

func (o *Operator) String() string { return o.symbol }

// Usage is a symbol and its description, to build help texts.
type Usage struct {
	Symbol      string
	Description string
}

var operators []*Operator
var bySymbol = make(map[string]*Operator)

// scanOrder is the order in which the Lexer tries operators:
// operators with an embedded base go first.
var scanOrder []*Operator

func registerOperator(symbol, pattern, description string, flags opFlag, compute computeFn) {
	op := &Operator{
		symbol:      symbol,
		description: description,
		flags:       flags,
		source:      pattern,
		pattern:     regexp.MustCompile(`^(?:` + pattern + `)$`),
		prefix:      regexp.MustCompile(`^(?:` + pattern + `)`),
		compute:     compute,
	}
	if _, ok := bySymbol[symbol]; ok {
		panic("Operator " + symbol + " registered twice")
	}
	operators = append(operators, op)
	bySymbol[symbol] = op
}

func init() {
	registerOperator("+", `\+`, "addition", 0,
		binary(func(x, y decimal.Decimal) (decimal.Decimal, error) { return x.Add(y), nil }))
	registerOperator("-", `-`, "subtraction", precedesNumber,
		binary(func(x, y decimal.Decimal) (decimal.Decimal, error) { return x.Sub(y), nil }))
	registerOperator("*", `\*`, "multiplication", 0,
		binary(func(x, y decimal.Decimal) (decimal.Decimal, error) { return x.Mul(y), nil }))
	registerOperator("/", `/`, "division", 0,
		binary(func(x, y decimal.Decimal) (decimal.Decimal, error) {
			if y.IsZero() {
				return decimal.Decimal{}, ErrDivisionByZero
			}
			return x.Div(y), nil
		}))
	registerOperator("^i", `\^`+numberPattern, "exponentiation with power i", unary|withBase,
		floating(func(x, y float64) (float64, error) { return math.Pow(x, y), nil }))
	registerOperator("%", `%`, "modulus", 0,
		binary(func(x, y decimal.Decimal) (decimal.Decimal, error) {
			if y.IsZero() {
				return decimal.Decimal{}, ErrDivisionByZero
			}
			return x.Mod(y), nil
		}))
	registerOperator("V[i]", `V`+bracedNumberPattern, "root with index i", precedesNumber|unary|withBase,
		floating(nthRoot))
	registerOperator("!", `!`, "factorial", unary, factorial)
	registerOperator("log[b]", `log`+bracedNumberPattern, "logarithm with base b", precedesNumber|unary|withBase,
		floating(logarithm))
	registerOperator("ln", `ln`, "logarithm with base e", precedesNumber|unary,
		func(x decimal.Decimal, _ decimal.NullDecimal) (decimal.Decimal, error) {
			if !x.IsPositive() {
				return decimal.Decimal{}, ErrNonPositiveOperand
			}
			return fromFloat(math.Log(x.InexactFloat64()))
		})

	scanOrder = append(OperatorsWithBase(), OperatorsWithoutBase()...)
}

func binary(fn func(x, y decimal.Decimal) (decimal.Decimal, error)) computeFn {
	return func(x decimal.Decimal, y decimal.NullDecimal) (decimal.Decimal, error) {
		if !y.Valid {
			return decimal.Decimal{}, ErrMissingOperand
		}
		return fn(x, y.Decimal)
	}
}

// floating computes fn in binary floating point. Both values are
// required.
func floating(fn func(x, y float64) (float64, error)) computeFn {
	return func(x decimal.Decimal, y decimal.NullDecimal) (decimal.Decimal, error) {
		if !y.Valid {
			return decimal.Decimal{}, ErrMissingOperand
		}
		res, err := fn(x.InexactFloat64(), y.Decimal.InexactFloat64())
		if err != nil {
			return decimal.Decimal{}, err
		}
		return fromFloat(res)
	}
}

func fromFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, ErrNotFinite
	}
	return decimal.NewFromFloat(f), nil
}

func nthRoot(x, index float64) (float64, error) {
	if x < 0 {
		return 0, ErrNegativeRadicand
	}
	if index <= 0 {
		return 0, ErrInvalidBase
	}
	res := math.Exp(math.Log(x) / index)
	if rounded := math.Round(res); math.Abs(rounded-res) < rootTolerance {
		return rounded, nil
	}
	return res, nil
}

func logarithm(x, base float64) (float64, error) {
	if x <= 0 {
		return 0, ErrNonPositiveOperand
	}
	if base <= 0 || base == 1 {
		return 0, ErrInvalidBase
	}
	return math.Log(x) / math.Log(base), nil
}

func factorial(x decimal.Decimal, _ decimal.NullDecimal) (decimal.Decimal, error) {
	if x.IsNegative() || !x.IsInteger() {
		return decimal.Decimal{}, ErrNegativeOrNonIntegerOperand
	}
	if x.GreaterThan(decimal.NewFromInt(maxFactorial)) {
		return decimal.Decimal{}, ErrOperandTooLarge
	}
	res := decimal.NewFromInt(1)
	for i := int64(2); i <= x.IntPart(); i++ {
		res = res.Mul(decimal.NewFromInt(i))
	}
	return res, nil
}

// Operators returns the catalog, in declaration order.
func Operators() []*Operator {
	return append([]*Operator(nil), operators...)
}

// Lookup returns the catalog operator with the given symbol.
func Lookup(symbol string) (*Operator, bool) {
	op, ok := bySymbol[symbol]
	return op, ok
}

// Description returns the description of the operator with the given
// symbol.
func Description(symbol string) (string, bool) {
	op, ok := bySymbol[symbol]
	if !ok {
		return "", false
	}
	return op.description, true
}

// Descriptions returns a Usage for each operator, in catalog order.
func Descriptions() []Usage {
	res := make([]Usage, 0, len(operators))
	for _, op := range operators {
		res = append(res, Usage{Symbol: op.symbol, Description: op.description})
	}
	return res
}

// OperatorsWithBase returns the operators with an embedded base.
func OperatorsWithBase() []*Operator {
	return filterOperators(true)
}

// OperatorsWithoutBase returns the operators without an embedded base.
func OperatorsWithoutBase() []*Operator {
	return filterOperators(false)
}

func filterOperators(hasBase bool) []*Operator {
	var res []*Operator
	for _, op := range operators {
		if op.HasEmbeddedBase() == hasBase {
			res = append(res, op)
		}
	}
	return res
}
