package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/shopspring/decimal"

	fcalc "github.com/atuleu/go-fcalc"
)

const (
	firstNumberPrompt  = "Print your first number here -> |"
	secondNumberPrompt = "Print your second number here -> |"
	operatorPrompt     = "Print your operator here -> |"
	badNumberPrompt    = "Are you sure, that you printed a number? Try again! " +
		"Valid number should follow pattern: X or X.X where X is a digit (i.e. 4 or -5.7) -> |"
	badOperatorPrompt = "There is no such operator. Try again! -> |"
	exitPrompt        = "Do you want to continue calculating? (Y/N): "
	badAnswerPrompt   = "I didn't understand you. Please, type 'Y' or 'N' for 'Yes' and 'No' (Y/N): "
)

// dumper renders debug output. Stringers are used, so decimals and
// operators print as their text.
var dumper = spew.ConfigState{
	Indent:                  "  ",
	MaxDepth:                4,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// A session is an interactive calculator loop reading lines from in.
type session struct {
	in  *bufio.Scanner
	out io.Writer
	log *log.Logger
	cfg Config
	now func() time.Time
}

func newSession(in io.Reader, out io.Writer, logger *log.Logger, cfg Config) *session {
	return &session{
		in:  bufio.NewScanner(in),
		out: out,
		log: logger,
		cfg: cfg,
		now: time.Now,
	}
}

// run loops until the user stops or the input ends.
func (s *session) run(version string) error {
	fmt.Fprintln(s.out, title(version))
	if s.cfg.SkipGreeting == false {
		if err := s.greet(); err != nil {
			return ignoreEOF(err)
		}
	}
	fmt.Fprintln(s.out, instructions())

	for {
		if err := s.calculate(); err != nil {
			return ignoreEOF(err)
		}
		stop, err := s.askStop()
		if err != nil {
			return ignoreEOF(err)
		}
		if stop {
			fmt.Fprintln(s.out, "Bye!")
			return nil
		}
	}
}

func ignoreEOF(err error) error {
	if err == io.EOF {
		return nil
	}
	return err
}

func (s *session) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if s.in.Scan() == false {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		fmt.Fprintln(s.out)
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *session) greet() error {
	name := s.cfg.Name
	if len(name) == 0 {
		var err error
		if name, err = s.readLine("Please, stay calm and print your name: "); err != nil {
			return err
		}
	}
	loc, err := s.cfg.location()
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, greeting(name, s.now().In(loc)))
	return nil
}

func (s *session) readNumber(prompt string) (decimal.Decimal, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return decimal.Decimal{}, err
		}
		if d, err := fcalc.ParseNumber(line); err == nil {
			return d, nil
		}
		prompt = badNumberPrompt
	}
}

func (s *session) readOperator() (fcalc.BoundOperator, error) {
	prompt := operatorPrompt
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return fcalc.BoundOperator{}, err
		}
		if op, ok := fcalc.Match(line); ok {
			return op, nil
		}
		prompt = badOperatorPrompt
	}
}

func (s *session) calculate() error {
	calc := &fcalc.Calculation{}
	var err error
	if calc.First, err = s.readNumber(firstNumberPrompt); err != nil {
		return err
	}
	if calc.Operator, err = s.readOperator(); err != nil {
		return err
	}
	if calc.Operator.NeedsOperand() {
		second, err := s.readNumber(secondNumberPrompt)
		if err != nil {
			return err
		}
		calc.Second = decimal.NewNullDecimal(second)
	}
	if s.cfg.Debug {
		s.log.Print(dumper.Sdump(calc))
	}

	res, err := calc.Eval()
	if err != nil {
		fmt.Fprintf(s.out, "Cannot calculate %s: %s\n", calc, err)
		return nil
	}
	fmt.Fprintf(s.out, "%s = %s\n", calc, res)
	return nil
}

// askStop returns true once the user answered N.
func (s *session) askStop() (bool, error) {
	prompt := exitPrompt
	for {
		answer, err := s.readLine(prompt)
		if err != nil {
			return false, err
		}
		switch strings.ToUpper(answer) {
		case "N":
			return true, nil
		case "Y":
			return false, nil
		}
		prompt = badAnswerPrompt
	}
}

// evaluateOnce evaluates a single line, as given with -e, and returns
// the process exit code.
func evaluateOnce(out io.Writer, logger *log.Logger, cfg Config, line string) int {
	if cfg.Debug {
		logger.Print(dumper.Sdump(fcalc.Scan(line)))
	}
	res, err := fcalc.EvaluateLine(line)
	if err != nil {
		logger.Print(err)
		return 1
	}
	fmt.Fprintln(out, res)
	return 0
}
