package fcalc

import (
	"errors"
	"fmt"
)

var (
	// ErrNoOperatorMatch is returned when a token matches no catalog
	// operator.
	ErrNoOperatorMatch = errors.New("no such operator")
	// ErrMissingOperand is returned when a binary operator gets no
	// second number.
	ErrMissingOperand = errors.New("binary operation requires two operands, second number is missing")
	// ErrDivisionByZero is returned by division and modulus by 0.
	ErrDivisionByZero = errors.New("division by 0 is not allowed")
	// ErrNegativeRadicand is returned when a root of a negative
	// number is requested.
	ErrNegativeRadicand = errors.New("cannot get a root of a negative number")
	// ErrNegativeOrNonIntegerOperand is returned by factorial.
	ErrNegativeOrNonIntegerOperand = errors.New("factorial is only defined for non-negative integers")
	// ErrNonPositiveOperand is returned by logarithms of numbers <= 0.
	ErrNonPositiveOperand = errors.New("logarithm is only defined for numbers greater than 0")
	// ErrInvalidBase is returned when an embedded base cannot be used,
	// like a root with index 0 or a logarithm with base 1.
	ErrInvalidBase = errors.New("invalid base")
	// ErrOperandTooLarge is returned when a factorial would be too
	// expensive to compute.
	ErrOperandTooLarge = errors.New("operand is too large")
	// ErrNotFinite is returned when a result overflows or is not a
	// real number.
	ErrNotFinite = errors.New("result is not a finite number")
	// ErrUnboundOperator is returned when a zero BoundOperator is
	// used.
	ErrUnboundOperator = errors.New("operator is not bound to any input")
	// ErrMalformedCalculation is returned by Compile for lines that
	// are not a single operation.
	ErrMalformedCalculation = errors.New("malformed calculation")
)

// An OperationError reports a failed evaluation. It unwraps to one of
// the Err* sentinels.
type OperationError struct {
	// Description of the operator, e.g. "division".
	Description string
	// Text the operator was bound to.
	Text string
	Err  error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s '%s': %s", e.Description, e.Text, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}
