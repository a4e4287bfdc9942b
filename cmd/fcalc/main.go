// Command fcalc is an interactive single operation calculator.
//
// Usage:
//
//	fcalc [-config file.yaml] [-debug]
//	fcalc -e "27 V[3]"
//
// Without -e, fcalc asks for a first number, an operator and, when the
// operator needs one, a second number, then prints the result.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

var version = "0.1.0"

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	line := flag.String("e", "", "evaluate a single calculation, e.g. \"5 + 3\", and exit")
	debug := flag.Bool("debug", false, "dump calculations to stderr")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	logger := log.New(os.Stderr, "fcalc: ", 0)

	if *showVersion {
		fmt.Println(version)
		return
	}

	var cfg Config
	if len(*configPath) > 0 {
		var err error
		if cfg, err = LoadConfig(*configPath); err != nil {
			logger.Fatal(err)
		}
	}
	if *debug {
		cfg.Debug = true
	}

	if len(*line) > 0 {
		os.Exit(evaluateOnce(os.Stdout, logger, cfg, *line))
	}

	if err := newSession(os.Stdin, os.Stdout, logger, cfg).run(version); err != nil {
		logger.Fatal(err)
	}
}
