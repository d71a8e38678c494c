package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/vuuvv/errors"
)

type frameConfig struct {
	rootConfig *rootConfig
	in         io.Reader
	out        io.Writer
	frame      string
}

func (c *frameConfig) verify(ctx context.Context, args []string) error {
	checker, err := c.rootConfig.setup()
	if err != nil {
		return err
	}
	packet, err := readInput(c.in, args)
	if err != nil {
		return err
	}
	if err = checker.Verify(c.frame, packet); err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.out, "ok")
	return err
}

func (c *frameConfig) seal(ctx context.Context, args []string) error {
	checker, err := c.rootConfig.setup()
	if err != nil {
		return err
	}
	payload, err := readInput(c.in, args)
	if err != nil {
		return err
	}
	packet, err := checker.Seal(c.frame, payload)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.out, prettyHex(packet))
	return err
}

func newFrameFlagSet(name string, cfg *frameConfig) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&cfg.frame, "frame", "", "frame rule name from the config file")
	cfg.rootConfig.registerFlags(fs)
	return fs
}

func requireFrame(cfg *frameConfig, exec func(context.Context, []string) error) func(context.Context, []string) error {
	return func(ctx context.Context, args []string) error {
		if cfg.frame == "" {
			return errors.New("-frame is required")
		}
		return exec(ctx, args)
	}
}

func newVerifyCmd(rootConfig *rootConfig, in io.Reader, out io.Writer) *ffcli.Command {
	cfg := &frameConfig{rootConfig: rootConfig, in: in, out: out}
	return &ffcli.Command{
		Name:       "verify",
		ShortUsage: "verify -config file.yaml -frame name [packet ...]",
		ShortHelp:  "Checks the checksum carried by a packet.",
		FlagSet:    newFrameFlagSet("vcrc verify", cfg),
		Exec:       requireFrame(cfg, cfg.verify),
	}
}

func newSealCmd(rootConfig *rootConfig, in io.Reader, out io.Writer) *ffcli.Command {
	cfg := &frameConfig{rootConfig: rootConfig, in: in, out: out}
	return &ffcli.Command{
		Name:       "seal",
		ShortUsage: "seal -config file.yaml -frame name [payload ...]",
		ShortHelp:  "Appends the checksum to a payload and prints the packet in hex.",
		FlagSet:    newFrameFlagSet("vcrc seal", cfg),
		Exec:       requireFrame(cfg, cfg.seal),
	}
}
