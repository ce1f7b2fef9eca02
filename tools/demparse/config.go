// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package demparse

import (
	"io/ioutil"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Strictness is the policy applied when a string table row fails to
// specialize.
type Strictness string

const (
	// Lenient leaves the row unspecialized and reports it in the summary.
	Lenient Strictness = "lenient"
	// Strict aborts the parse.
	Strict Strictness = "strict"
)

func (s Strictness) validate() error {
	switch s {
	case Lenient, Strict:
		return nil
	default:
		return errors.Errorf("unknown specialization policy %q (want %s or %s)", string(s), Lenient, Strict)
	}
}

// StrictnessFlag is a pflag.Value implementation that stores a Strictness.
type StrictnessFlag Strictness

var _ pflag.Value = (*StrictnessFlag)(nil)

func (sf *StrictnessFlag) String() string { return string(*sf) }

// Set implements pflag.Value.
func (sf *StrictnessFlag) Set(v string) error {
	s := Strictness(strings.ToLower(v))
	if err := s.validate(); err != nil {
		return err
	}
	*sf = StrictnessFlag(s)
	return nil
}

// Type implements pflag.Value.
func (sf *StrictnessFlag) Type() string { return "policy" }

// Value returns the Strictness held by this flag.
func (sf StrictnessFlag) Value() Strictness { return Strictness(sf) }

// Config configures a demparse run.
type Config struct {
	// Export, if not empty, is the directory to export the parsed capture to.
	Export string `yaml:"export"`
	// TempDir is where export staging directories are created. It should be
	// on the same filesystem as Export. Defaults to Export's parent.
	TempDir string `yaml:"temp_dir"`

	// Specialization is the row specialization failure policy.
	Specialization Strictness `yaml:"specialization"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`
	// MetricsAddr, if not empty, is the address to serve Prometheus metrics on
	// while parsing.
	MetricsAddr string `yaml:"metrics_addr"`

	// MaxBufferSize is the largest compressed-frame scratch buffer retained
	// for reuse.
	MaxBufferSize int `yaml:"max_buffer_size"`
	// MaxFailures is the number of specialization failures listed in the
	// summary. Negative lists none.
	MaxFailures int `yaml:"max_failures"`
}

// LoadFile reads a YAML configuration file.
func LoadFile(path string) (*Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config %q", path)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Specialization == "" {
		c.Specialization = Lenient
	}
	if c.MaxBufferSize <= 0 {
		c.MaxBufferSize = 4 * 1024 * 1024
	}
	if c.MaxFailures == 0 {
		c.MaxFailures = 10
	}
}

func (c *Config) validate() error {
	return c.Specialization.validate()
}
