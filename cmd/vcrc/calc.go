package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/vuuvv/errors"
	"github.com/vuuvv/vcrc/core"
	"github.com/vuuvv/vcrc/crc16"
	"github.com/vuuvv/vcrc/log"
	"go.uber.org/zap"
)

const algHacker16 = "hacker16"

type calcConfig struct {
	rootConfig *rootConfig
	in         io.Reader
	out        io.Writer
	alg        string
	init       string
	poly       string
	xorout     string
	ref        bool
	format     string
}

func (c *calcConfig) Exec(ctx context.Context, args []string) error {
	checker, err := c.rootConfig.setup()
	if err != nil {
		return err
	}
	data, err := readInput(c.in, args)
	if err != nil {
		return err
	}

	sum, err := c.compute(checker, data)
	if err != nil {
		return err
	}
	log.Debug("Checksum computed", zap.String("alg", c.alg), zap.Int("len", len(data)), zap.Uint16("sum", sum))

	s, err := formatSum(sum, c.format)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.out, s)
	return err
}

func (c *calcConfig) compute(checker *core.Checker, data []byte) (uint16, error) {
	if c.alg == algHacker16 {
		opts, err := c.hackerOptions()
		if err != nil {
			return 0, err
		}
		return crc16.Hacker16(data, opts...), nil
	}

	if c.init == "" && c.poly == "" {
		return checker.Checksum(data, c.alg)
	}

	// register or polynomial overrides only make sense for the presets
	name := strings.TrimPrefix(c.alg, core.KEY_CRC16+"_")
	v, ok := crc16.Lookup(name)
	if !ok {
		return 0, errors.Errorf("-init and -poly need a crc16 preset, got '%s'", c.alg)
	}
	seed := v.Init
	if c.init != "" {
		var err error
		if seed, err = parseUint16("init", c.init); err != nil {
			return 0, err
		}
	}
	if c.poly != "" {
		if name != crc16.KEY_IBM {
			return 0, errors.Errorf("-poly is only supported by crc16_ibm")
		}
		poly, err := parseUint16("poly", c.poly)
		if err != nil {
			return 0, err
		}
		return crc16.IBMWithPoly(data, poly, seed), nil
	}
	return v.ChecksumWithInit(data, seed), nil
}

func (c *calcConfig) hackerOptions() ([]crc16.HackerOption, error) {
	opts := []crc16.HackerOption{crc16.WithReflect(c.ref)}
	for _, f := range []struct {
		name  string
		value string
		opt   func(uint16) crc16.HackerOption
	}{
		{"poly", c.poly, crc16.WithPoly},
		{"init", c.init, crc16.WithInit},
		{"xorout", c.xorout, crc16.WithXorOut},
	} {
		if f.value == "" {
			continue
		}
		v, err := parseUint16(f.name, f.value)
		if err != nil {
			return nil, err
		}
		opts = append(opts, f.opt(v))
	}
	return opts, nil
}

func newCalcCmd(rootConfig *rootConfig, in io.Reader, out io.Writer) *ffcli.Command {
	cfg := calcConfig{
		rootConfig: rootConfig,
		in:         in,
		out:        out,
	}

	fs := flag.NewFlagSet("vcrc calc", flag.ContinueOnError)
	fs.StringVar(&cfg.alg, "alg", "crc16_modbus", "algorithm name, see list, or hacker16")
	fs.StringVar(&cfg.init, "init", "", "initial register value, eg 0xFFFF")
	fs.StringVar(&cfg.poly, "poly", "", "polynomial for hacker16 or crc16_ibm (0x8005 or 0xA001)")
	fs.StringVar(&cfg.xorout, "xorout", "", "final xor value for hacker16")
	fs.BoolVar(&cfg.ref, "ref", false, "reflect the polynomial for hacker16")
	fs.StringVar(&cfg.format, "format", "hex", "output format: hex, dec or bin")
	rootConfig.registerFlags(fs)

	return &ffcli.Command{
		Name:       "calc",
		ShortUsage: "calc [flags] [data ...]",
		ShortHelp:  "Computes the checksum of the input and prints it.",
		LongHelp:   vcrcLongHelp,
		FlagSet:    fs,
		Exec:       cfg.Exec,
	}
}
