package fcalc

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// A Calculation is a single operation ready to be evaluated.
type Calculation struct {
	First    decimal.Decimal
	Operator BoundOperator
	// Second is only set for operators that need an explicit second
	// operand.
	Second decimal.NullDecimal
}

// Eval evaluates the calculation. See Evaluate.
func (c *Calculation) Eval() (decimal.Decimal, error) {
	return Evaluate(c.First, c.Operator, c.Second)
}

func (c *Calculation) String() string {
	if c.Second.Valid {
		return fmt.Sprintf("%s %s %s", c.First, c.Operator, c.Second.Decimal)
	}
	return fmt.Sprintf("%s %s", c.First, c.Operator)
}
