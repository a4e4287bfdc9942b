package fcalc

import (
	"github.com/shopspring/decimal"
)

// Evaluate computes the result of op applied to first and second.
//
// If op has an embedded base, the base is the second value and second
// is ignored. Otherwise second is used as is, and may be absent for
// unary operators.
//
// Errors are *OperationError values wrapping one of the Err*
// sentinels.
func Evaluate(first decimal.Decimal, op BoundOperator, second decimal.NullDecimal) (decimal.Decimal, error) {
	if !op.IsBound() {
		return decimal.Decimal{}, ErrUnboundOperator
	}

	if op.op.HasEmbeddedBase() {
		base, err := op.Base()
		if err != nil {
			return decimal.Decimal{}, err
		}
		second = decimal.NewNullDecimal(base)
	}

	res, err := op.op.compute(first, second)
	if err != nil {
		return decimal.Decimal{}, &OperationError{
			Description: op.op.description,
			Text:        op.text,
			Err:         err,
		}
	}
	return res, nil
}

// Calculate is like Evaluate but renders the result as a plain decimal
// string, without exponent nor trailing zeros.
func Calculate(first decimal.Decimal, op BoundOperator, second decimal.NullDecimal) (string, error) {
	res, err := Evaluate(first, op, second)
	if err != nil {
		return "", err
	}
	return res.String(), nil
}
