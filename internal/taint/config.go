// Package taint defines the taint-tracking configuration (sources,
// sinks, transfer rules) and the taint-object bookkeeping the pointer
// analysis's overlay consults. Loading the on-disk form is ambient
// config-file tooling; the pointer analysis only ever needs the
// in-memory triple.
package taint

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"statix/internal/ir"
)

// Base and Result are sentinels used in place of a non-negative
// parameter index: BASE = -1, RESULT = -2.
const (
	Base   = -1
	Result = -2
)

// Source is a (method, declared-return-type) pair whose call sites
// fabricate a fresh taint object.
type Source struct {
	Method ir.MethodRef
	Type   ir.ClassRef
}

// Sink is a (method, parameter-index) pair flagged for taint-flow
// reporting.
type Sink struct {
	Method ir.MethodRef
	Index  int
}

// Transfer propagates taint from one call-site endpoint to another;
// From/To are either a non-negative argument index or the Base/Result
// sentinel.
type Transfer struct {
	Method ir.MethodRef
	From   int
	To     int
}

// Config is the immutable (Sources, Sinks, Transfers) triple the pointer
// analysis takes as input, indexed for O(1) lookup by declaring method.
type Config struct {
	sources   map[ir.MethodRef]Source
	sinks     map[ir.MethodRef][]int
	transfers map[ir.MethodRef][]Transfer
}

// NewConfig indexes explicit slices — used by tests and by LoadConfig.
func NewConfig(sources []Source, sinks []Sink, transfers []Transfer) *Config {
	c := &Config{
		sources:   make(map[ir.MethodRef]Source, len(sources)),
		sinks:     make(map[ir.MethodRef][]int),
		transfers: make(map[ir.MethodRef][]Transfer),
	}
	for _, s := range sources {
		c.sources[s.Method] = s
	}
	for _, s := range sinks {
		c.sinks[s.Method] = append(c.sinks[s.Method], s.Index)
	}
	for _, t := range transfers {
		c.transfers[t.Method] = append(c.transfers[t.Method], t)
	}
	return c
}

// IsSource reports whether m is a configured taint source.
func (c *Config) IsSource(m ir.MethodRef) (Source, bool) {
	s, ok := c.sources[m]
	return s, ok
}

// SinksFor returns the sink parameter indices configured for m.
func (c *Config) SinksFor(m ir.MethodRef) []int { return c.sinks[m] }

// TransfersFor returns the transfer rules configured for m.
func (c *Config) TransfersFor(m ir.MethodRef) []Transfer { return c.transfers[m] }

// yamlConfig mirrors the on-disk taint-config YAML schema:
//
//	sources:
//	  - method: "<class>.<subsignature>"
//	    type: "java.lang.String"
//	sinks:
//	  - method: "<class>.<subsignature>"
//	    index: 0
//	transfers:
//	  - method: "<class>.<subsignature>"
//	    from: "base"   # or an integer index, or "result"
//	    to: "result"
type yamlConfig struct {
	Sources []struct {
		Method string `yaml:"method"`
		Type   string `yaml:"type"`
	} `yaml:"sources"`
	Sinks []struct {
		Method string `yaml:"method"`
		Index  int    `yaml:"index"`
	} `yaml:"sinks"`
	Transfers []struct {
		Method string `yaml:"method"`
		From   string `yaml:"from"`
		To     string `yaml:"to"`
	} `yaml:"transfers"`
}

// LoadConfig parses a taint-config YAML document. Methods given in an
// unparseable "<class>.<subsig>" form are reported as an error rather
// than silently skipped. Methods are not checked against any class
// hierarchy, here or by the pointer analysis: an entry naming a method
// the analysed program lacks is kept, never matches a call site, and is
// not logged.
func LoadConfig(data []byte) (*Config, error) {
	var raw yamlConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("taint config: %w", err)
	}

	var sources []Source
	for _, s := range raw.Sources {
		m, err := parseMethodRef(s.Method)
		if err != nil {
			return nil, fmt.Errorf("taint config source %q: %w", s.Method, err)
		}
		sources = append(sources, Source{Method: m, Type: ir.ClassRef(s.Type)})
	}

	var sinks []Sink
	for _, s := range raw.Sinks {
		m, err := parseMethodRef(s.Method)
		if err != nil {
			return nil, fmt.Errorf("taint config sink %q: %w", s.Method, err)
		}
		sinks = append(sinks, Sink{Method: m, Index: s.Index})
	}

	var transfers []Transfer
	for _, t := range raw.Transfers {
		m, err := parseMethodRef(t.Method)
		if err != nil {
			return nil, fmt.Errorf("taint config transfer %q: %w", t.Method, err)
		}
		from, err := parseEndpoint(t.From)
		if err != nil {
			return nil, fmt.Errorf("taint config transfer %q: from: %w", t.Method, err)
		}
		to, err := parseEndpoint(t.To)
		if err != nil {
			return nil, fmt.Errorf("taint config transfer %q: to: %w", t.Method, err)
		}
		transfers = append(transfers, Transfer{Method: m, From: from, To: to})
	}

	return NewConfig(sources, sinks, transfers), nil
}

// parseMethodRef splits "<class>.<subsignature>" on the first dot —
// this toy domain's class names never themselves contain a dot.
func parseMethodRef(s string) (ir.MethodRef, error) {
	idx := strings.Index(s, ".")
	if idx < 0 {
		return ir.MethodRef{}, fmt.Errorf("expected \"<class>.<subsignature>\", got %q", s)
	}
	return ir.MethodRef{Class: ir.ClassRef(s[:idx]), Sig: ir.Subsignature(s[idx+1:])}, nil
}

func parseEndpoint(s string) (int, error) {
	switch strings.ToLower(s) {
	case "base":
		return Base, nil
	case "result":
		return Result, nil
	default:
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("expected \"base\", \"result\", or an integer index, got %q", s)
		}
		return n, nil
	}
}
