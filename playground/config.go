// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package playground

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ava-labs/avalanchego/utils/logging"
)

// Config selects which playgrounds to run, and how.
type Config struct {
	// Playgrounds are run in the order specified. Names MUST be unique and
	// known to [Lookup].
	Playgrounds []string `toml:"playgrounds"`
	// LogLevel is parsed by [logging.ToLevel].
	LogLevel string `toml:"log-level"`
	// NoColor disables coloured headings.
	NoColor bool `toml:"no-color"`
}

// DefaultConfig runs all playgrounds, logging at INFO.
func DefaultConfig() Config {
	return Config{
		Playgrounds: Names(),
		LogLevel:    logging.Info.String(),
	}
}

var (
	errNoPlaygrounds        = errors.New("no playgrounds")
	errDuplicatePlayground  = errors.New("duplicate playground")
	errInvalidLogLevel      = errors.New("invalid log level")
	errUnknownConfigOptions = errors.New("unknown config options")
)

// Validate returns an error if the config can't be run.
func (c *Config) Validate() error {
	if len(c.Playgrounds) == 0 {
		return errNoPlaygrounds
	}
	for i, name := range c.Playgrounds {
		if !slices.Contains(Names(), name) {
			return fmt.Errorf("%w %q", ErrUnknownPlayground, name)
		}
		if slices.Contains(c.Playgrounds[:i], name) {
			return fmt.Errorf("%w %q", errDuplicatePlayground, name)
		}
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the parsed [Config.LogLevel].
func (c *Config) Level() (logging.Level, error) {
	lvl, err := logging.ToLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", errInvalidLogLevel, c.LogLevel, err)
	}
	return lvl, nil
}

// Selected returns the playgrounds named by [Config.Playgrounds].
func (c *Config) Selected() ([]Playground, error) {
	pgs := make([]Playground, len(c.Playgrounds))
	for i, name := range c.Playgrounds {
		pg, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		pgs[i] = pg
	}
	return pgs, nil
}

// LoadConfig decodes a TOML file over [DefaultConfig] and validates the result.
// Options not recognised by [Config] are an error.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return Config{}, fmt.Errorf("decoding config %q: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w in %q: %s", errUnknownConfigOptions, path, strings.Join(keys, ", "))
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %q: %w", path, err)
	}
	return c, nil
}
