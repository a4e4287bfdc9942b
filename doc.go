// Copyright 2014 Alexandre Tuleu
// This file is part of go-fcalc.
//
// go-fcalc is free software: you can redistribute it and/or modify it
// under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-fcalc is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public
// License along with go-fcalc.  If not, see
// <http://www.gnu.org/licenses/>.

/*
Package fcalc provides a single operation calculator. A calculation
combines exactly one operator with one or two decimal operands, for
example "5 + 3", "27 V[3]" or "ln 10".

Operators

The operator catalog is fixed and ordered. Some operators carry their
second value in their own text (the 2 in "^2", the 3 in "V[3]", the 10
in "log[10]"): this is called an embedded base. Operators() and
Descriptions() expose the catalog, for instance to build a help text.

Matching and evaluation

Match resolves a raw operator token against the catalog and returns a
BoundOperator, which pairs the catalog entry with the text that
matched. Evaluate computes the result from a first operand, a
BoundOperator and an optional second operand.

	op, ok := fcalc.Match("V[3]")
	if !ok {
		// report and re-prompt
	}
	res, err := fcalc.Evaluate(decimal.NewFromInt(27), op, decimal.NullDecimal{})
	// res.String() == "3"

Lines

Compile scans a whole line into Parts with a Lexer and builds a
Calculation from them. EvaluateLine does both and renders the result.

All failures are returned as errors, which can be tested against the
Err* sentinels with errors.Is.
*/
package fcalc
