package main

import (
	"strings"
	"time"

	fcalc "github.com/atuleu/go-fcalc"
	. "gopkg.in/check.v1"
)

type GreetingSuite struct{}

var _ = Suite(&GreetingSuite{})

func (s *GreetingSuite) TestDayTime(c *C) {
	expected := map[int]string{
		0: "night", 5: "night",
		6: "morning", 12: "morning",
		13: "day", 18: "day",
		19: "evening", 23: "evening",
	}
	for hour, name := range expected {
		c.Check(dayTime(hour), Equals, name, Commentf("hour %d", hour))
	}
}

func (s *GreetingSuite) TestGreeting(c *C) {
	at := time.Date(2026, 10, 17, 15, 0, 0, 0, time.UTC)
	c.Check(greeting("Ada", at), Equals, "Good day, Ada! You are in zone: UTC")
	c.Check(greeting("  ", at), Equals, "Good day, - whatever your name is! You are in zone: UTC")
}

func (s *GreetingSuite) TestInstructionsListEveryOperator(c *C) {
	text := instructions()
	for _, u := range fcalc.Descriptions() {
		c.Check(strings.Contains(text, u.Symbol), Equals, true, Commentf("missing %s", u.Symbol))
		c.Check(strings.Contains(text, u.Description), Equals, true, Commentf("missing %s", u.Description))
	}
}
