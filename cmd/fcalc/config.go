package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the settings of an interactive session. It is read from
// a YAML file, e.g.:
//
//	name: Ada
//	location: Europe/Oslo
//	skip_greeting: false
//	debug: false
type Config struct {
	// Name greets the user without asking for it.
	Name string `yaml:"name,omitempty"`
	// Location is an IANA time zone used for the greeting. Empty means
	// the local time zone.
	Location     string `yaml:"location,omitempty"`
	SkipGreeting bool   `yaml:"skip_greeting,omitempty"`
	// Debug dumps every compiled calculation to the logger.
	Debug bool `yaml:"debug,omitempty"`
}

// LoadConfig reads a Config from a YAML file. Unknown keys are an
// error, an empty file gives the zero Config.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	return decodeConfig(f, path)
}

func decodeConfig(r io.Reader, name string) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("could not read configuration %s: %w", name, err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if _, err := c.location(); err != nil {
		return fmt.Errorf("invalid location %q: %w", c.Location, err)
	}
	return nil
}

func (c Config) location() (*time.Location, error) {
	if len(c.Location) == 0 {
		return time.Local, nil
	}
	return time.LoadLocation(c.Location)
}
