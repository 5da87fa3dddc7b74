package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"statix/internal/pta"
	"statix/internal/taint"
)

// cliConfig is the flag-driven configuration the CLI builds its
// pointer analysis from.
type cliConfig struct {
	IRFile          string
	Entry           string
	TaintConfigPath string
	PTA             string
}

func parseFlags(args []string) (*cliConfig, error) {
	fs := flag.NewFlagSet("statix", flag.ContinueOnError)
	cfg := &cliConfig{}
	fs.StringVar(&cfg.IRFile, "ir-text", "", "textual IR assembly file to load (see internal/irtext)")
	fs.StringVar(&cfg.Entry, "entry", "", "entry method as Class.subsignature")
	fs.StringVar(&cfg.TaintConfigPath, "taint-config", "", "path to a taint-config YAML document")
	fs.StringVar(&cfg.PTA, "pta", "insensitive", "context sensitivity: insensitive or kobject:<k>")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *cliConfig) selector() (pta.Selector, error) {
	if c.PTA == "" || c.PTA == "insensitive" {
		return pta.Insensitive{}, nil
	}
	k, err := parseKObject(c.PTA)
	if err != nil {
		return nil, err
	}
	return pta.KObject{K: k}, nil
}

func (c *cliConfig) loadTaintConfig() (*taint.Config, error) {
	if c.TaintConfigPath == "" {
		return nil, nil
	}
	data, err := os.ReadFile(c.TaintConfigPath)
	if err != nil {
		return nil, err
	}
	return taint.LoadConfig(data)
}

func parseKObject(s string) (int, error) {
	prefix, rest, ok := strings.Cut(s, ":")
	if !ok || prefix != "kobject" {
		return 0, fmt.Errorf("unrecognized -pta value %q (want \"insensitive\" or \"kobject:<k>\")", s)
	}
	k, err := strconv.Atoi(rest)
	if err != nil || k < 1 {
		return 0, fmt.Errorf("invalid kobject depth %q", rest)
	}
	return k, nil
}
