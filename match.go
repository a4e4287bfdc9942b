package fcalc

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// A BoundOperator is a catalog Operator together with the text it was
// matched against. The zero value is not bound to anything.
//
// A BoundOperator is a plain value: each Match returns a new one and
// the catalog entry is never modified.
type BoundOperator struct {
	op   *Operator
	text string
}

// Match returns the first catalog operator, in declaration order, whose
// pattern matches the whole token. An empty token never matches.
func Match(token string) (BoundOperator, bool) {
	if len(token) == 0 {
		return BoundOperator{}, false
	}
	for _, op := range operators {
		if op.pattern.MatchString(token) {
			return BoundOperator{op: op, text: token}, true
		}
	}
	return BoundOperator{}, false
}

// ParseOperator is like Match but reports a failure as an error
// wrapping ErrNoOperatorMatch.
func ParseOperator(token string) (BoundOperator, error) {
	if b, ok := Match(token); ok {
		return b, nil
	}
	return BoundOperator{}, fmt.Errorf("%w: '%s'", ErrNoOperatorMatch, token)
}

// Operator returns the catalog entry, or nil if b is not bound.
func (b BoundOperator) Operator() *Operator { return b.op }

// Text returns the literal text b was matched against.
func (b BoundOperator) Text() string { return b.text }

// IsBound reports whether b results from a successful match.
func (b BoundOperator) IsBound() bool { return b.op != nil }

// NeedsOperand reports whether a second number has to be supplied to
// evaluate b.
func (b BoundOperator) NeedsOperand() bool {
	return b.op != nil && !b.op.IsUnary() && !b.op.HasEmbeddedBase()
}

func (b BoundOperator) String() string {
	if b.op == nil {
		return "<unbound>"
	}
	return b.text
}

var nonNumeric = regexp.MustCompile(`[^0-9.]`)

// Base returns the value embedded in the bound text, e.g. 3 for
// "V[3]".
func (b BoundOperator) Base() (decimal.Decimal, error) {
	if b.op == nil {
		return decimal.Decimal{}, ErrUnboundOperator
	}
	if !b.op.HasEmbeddedBase() {
		return decimal.Decimal{}, fmt.Errorf("%w: %s has no embedded base", ErrInvalidBase, b.op.description)
	}
	base, err := ParseNumber(nonNumeric.ReplaceAllString(b.text, ""))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: '%s': %s", ErrInvalidBase, b.text, err)
	}
	return base, nil
}

var literalRe = regexp.MustCompile(`^[-+]?` + numberPattern + `$`)

// ParseNumber parses a decimal literal like 4, -5.7 or .5. Exponents
// are not accepted.
func ParseNumber(s string) (decimal.Decimal, error) {
	if literalRe.MatchString(s) == false {
		return decimal.Decimal{}, fmt.Errorf("invalid number '%s'", s)
	}
	s = strings.TrimPrefix(s, "+")
	switch {
	case strings.HasPrefix(s, "."):
		s = "0" + s
	case strings.HasPrefix(s, "-."):
		s = "-0" + s[1:]
	}
	return decimal.NewFromString(s)
}
