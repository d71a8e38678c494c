package main

import (
	"context"
	"flag"

	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/vuuvv/vcrc/core"
	"github.com/vuuvv/vcrc/log"
	"go.uber.org/zap"
)

type rootConfig struct {
	verbose bool
	config  string
}

func (c *rootConfig) registerFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.verbose, "v", false, "increase log verbosity")
	fs.StringVar(&c.config, "config", "", "yaml file with custom algorithms and frame rules")
}

func (c *rootConfig) Exec(context.Context, []string) error {
	return flag.ErrHelp
}

// setup installs the logger and loads the checker configuration.
func (c *rootConfig) setup() (*core.Checker, error) {
	if c.verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
		log.SetDefaultLogger(logger)
	}

	if c.config == "" {
		return core.NewChecker(), nil
	}
	checker, err := core.NewCheckerFromFile(c.config)
	if err != nil {
		return nil, err
	}
	log.Debug("Config loaded",
		zap.String("file", c.config),
		zap.Strings("frames", checker.FrameNames()),
	)
	return checker, nil
}

func newRootCmd() (*ffcli.Command, *rootConfig) {
	var cfg rootConfig

	fs := flag.NewFlagSet("vcrc", flag.ContinueOnError)
	cfg.registerFlags(fs)

	return &ffcli.Command{
		Name:       "vcrc",
		ShortUsage: "vcrc [flags] <subcommand>",
		ShortHelp:  "Compute and verify 16-bit checksums.",
		LongHelp:   vcrcLongHelp,
		FlagSet:    fs,
		Options:    []ff.Option{ff.WithEnvVarPrefix("VCRC")},
		Exec:       cfg.Exec,
	}, &cfg
}

var vcrcLongHelp = `Compute and verify 16-bit checksums.

INPUT
Data is given as arguments or read from stdin when no argument is present.
Arguments are concatenated; each one is hex by default or a typed literal:

  s'123456789'   string
  h'01 03 00 0a' hex, spaces and colons ignored
  d'4660'        decimal, minimal big-endian width
  b'1010'        binary
  o'777'         octal`
