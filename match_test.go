package fcalc

import (
	"errors"
	"sync"

	. "gopkg.in/check.v1"
)

type MatchSuite struct{}

var _ = Suite(&MatchSuite{})

type TokenAndSymbol struct {
	token, symbol string
}

func (s *MatchSuite) TestMatchWholeTokens(c *C) {
	tests := []TokenAndSymbol{
		{"+", "+"},
		{"-", "-"},
		{"*", "*"},
		{"/", "/"},
		{"^2", "^i"},
		{"^2.5", "^i"},
		{"^.5", "^i"},
		{"%", "%"},
		{"V[3]", "V[i]"},
		{"V[0.5]", "V[i]"},
		{"!", "!"},
		{"log[10]", "log[b]"},
		{"ln", "ln"},
	}
	for i, t := range tests {
		b, ok := Match(t.token)
		if c.Check(ok, Equals, true, Commentf("[%d] %q did not match", i, t.token)) == false {
			continue
		}
		c.Check(b.Operator().Symbol(), Equals, t.symbol)
		c.Check(b.Text(), Equals, t.token)
		c.Check(b.IsBound(), Equals, true)
	}
}

func (s *MatchSuite) TestRejectsPartialOrUnknownTokens(c *C) {
	for _, token := range []string{"", "@", "++", " +", "^", "^x", "V[]", "V3", "V[3", "log10", "log[-2]", "lnn", "-5", "sqrt"} {
		b, ok := Match(token)
		c.Check(ok, Equals, false, Commentf("%q should not match", token))
		c.Check(b.IsBound(), Equals, false)

		_, err := ParseOperator(token)
		c.Check(errors.Is(err, ErrNoOperatorMatch), Equals, true, Commentf("%q: got %v", token, err))
	}
}

func (s *MatchSuite) TestMatchIsDeterministic(c *C) {
	for _, token := range []string{"+", "^3", "V[2]", "log[10]", "!"} {
		a, _ := Match(token)
		b, _ := Match(token)
		c.Check(a.Operator().Symbol(), Equals, b.Operator().Symbol())
		c.Check(a.Text(), Equals, b.Text())
		c.Check(a, Equals, b)
	}
}

func (s *MatchSuite) TestMatchDoesNotShareBindings(c *C) {
	var wg sync.WaitGroup
	tokens := []string{"V[2]", "V[3]", "V[4]", "V[5]"}
	results := make([]BoundOperator, len(tokens))
	for i, token := range tokens {
		wg.Add(1)
		go func(i int, token string) {
			defer wg.Done()
			results[i], _ = Match(token)
		}(i, token)
	}
	wg.Wait()
	for i, token := range tokens {
		c.Check(results[i].Text(), Equals, token)
		c.Check(results[i].Operator(), Equals, results[0].Operator())
	}
}

type TokenAndBase struct {
	token, base string
}

func (s *MatchSuite) TestBaseExtraction(c *C) {
	tests := []TokenAndBase{
		{"^3", "3"},
		{"^0.5", "0.5"},
		{"^.5", "0.5"},
		{"V[3]", "3"},
		{"log[10]", "10"},
		{"log[2.5]", "2.5"},
	}
	for _, t := range tests {
		b, ok := Match(t.token)
		c.Assert(ok, Equals, true)
		base, err := b.Base()
		c.Assert(err, IsNil)
		c.Check(base.String(), Equals, t.base)
	}
}

func (s *MatchSuite) TestBaseRequiresBinding(c *C) {
	_, err := BoundOperator{}.Base()
	c.Check(err, Equals, ErrUnboundOperator)

	b, _ := Match("+")
	_, err = b.Base()
	c.Check(errors.Is(err, ErrInvalidBase), Equals, true)
}

func (s *MatchSuite) TestNeedsOperand(c *C) {
	expected := map[string]bool{
		"+": true, "-": true, "*": true, "/": true, "%": true,
		"^2": false, "V[2]": false, "!": false, "log[2]": false, "ln": false,
	}
	for token, needs := range expected {
		b, ok := Match(token)
		c.Assert(ok, Equals, true)
		c.Check(b.NeedsOperand(), Equals, needs, Commentf("%s", token))
	}
	c.Check(BoundOperator{}.NeedsOperand(), Equals, false)
	c.Check(BoundOperator{}.String(), Equals, "<unbound>")
}

type NumberAndResult struct {
	input, result string
}

func (s *MatchSuite) TestParseNumber(c *C) {
	tests := []NumberAndResult{
		{"4", "4"},
		{"-5.7", "-5.7"},
		{"+2", "2"},
		{".5", "0.5"},
		{"-.25", "-0.25"},
		{"007", "7"},
	}
	for _, t := range tests {
		d, err := ParseNumber(t.input)
		c.Assert(err, IsNil, Commentf("%q", t.input))
		c.Check(d.String(), Equals, t.result)
	}

	for _, bad := range []string{"", "abc", "1e3", "5.", "--5", "1.2.3", " 4"} {
		_, err := ParseNumber(bad)
		c.Check(err, ErrorMatches, "invalid number .*", Commentf("%q", bad))
	}
}
