package main

import (
	"fmt"
	"strings"
	"time"

	fcalc "github.com/atuleu/go-fcalc"
)

func title(version string) string {
	return fmt.Sprintf(`            FCALC
  the single operation calculator
Welcome to fcalc version %s!`, version)
}

// dayTime names the part of the day of hour, in 0-23.
func dayTime(hour int) string {
	switch {
	case hour <= 5:
		return "night"
	case hour <= 12:
		return "morning"
	case hour <= 18:
		return "day"
	}
	return "evening"
}

func greeting(name string, now time.Time) string {
	if len(strings.TrimSpace(name)) == 0 {
		name = "- whatever your name is"
	}
	zone := now.Location().String()
	if zone == "Local" {
		zone, _ = now.Zone()
	}
	return fmt.Sprintf("Good %s, %s! You are in zone: %s", dayTime(now.Hour()), name, zone)
}

func instructions() string {
	var b strings.Builder
	b.WriteString("Let's do some Math! This calculator can do following operations:\n")
	for _, u := range fcalc.Descriptions() {
		fmt.Fprintf(&b, "  %-7s -> %s\n", u.Symbol, u.Description)
	}
	b.WriteString("Operators with i or b take the number in their own text, e.g. ^2, V[3] or log[10].\n")
	b.WriteString("Please, if your number is decimal, use '.'")
	return b.String()
}
