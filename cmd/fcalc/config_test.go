package main

import (
	"os"
	"path/filepath"
	"strings"

	. "gopkg.in/check.v1"
)

type ConfigSuite struct{}

var _ = Suite(&ConfigSuite{})

func (s *ConfigSuite) TestDecodesKnownFields(c *C) {
	cfg, err := decodeConfig(strings.NewReader(`
name: Ada
location: UTC
skip_greeting: true
debug: true
`), "test")
	c.Assert(err, IsNil)
	c.Check(cfg, Equals, Config{Name: "Ada", Location: "UTC", SkipGreeting: true, Debug: true})
}

func (s *ConfigSuite) TestEmptyConfigIsZero(c *C) {
	cfg, err := decodeConfig(strings.NewReader(""), "empty")
	c.Assert(err, IsNil)
	c.Check(cfg, Equals, Config{})
}

func (s *ConfigSuite) TestRejectsUnknownFields(c *C) {
	_, err := decodeConfig(strings.NewReader("colour: red\n"), "test")
	c.Check(err, ErrorMatches, "(?s)could not read configuration test: .*field colour not found.*")
}

func (s *ConfigSuite) TestRejectsUnknownLocation(c *C) {
	_, err := decodeConfig(strings.NewReader("location: Nowhere/Atlantis\n"), "test")
	c.Check(err, ErrorMatches, `invalid location "Nowhere/Atlantis": .*`)
}

func (s *ConfigSuite) TestLoadConfig(c *C) {
	path := filepath.Join(c.MkDir(), "fcalc.yaml")
	c.Assert(os.WriteFile(path, []byte("name: Bob\n"), 0644), IsNil)

	cfg, err := LoadConfig(path)
	c.Assert(err, IsNil)
	c.Check(cfg.Name, Equals, "Bob")

	_, err = LoadConfig(filepath.Join(c.MkDir(), "missing.yaml"))
	c.Check(os.IsNotExist(err), Equals, true)
}
