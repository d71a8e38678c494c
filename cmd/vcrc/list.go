package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/peterbourgon/ff/v3/ffcli"
)

type listConfig struct {
	rootConfig *rootConfig
	out        io.Writer
}

func (c *listConfig) Exec(ctx context.Context, _ []string) error {
	checker, err := c.rootConfig.setup()
	if err != nil {
		return err
	}
	for _, name := range checker.Names() {
		fmt.Fprintln(c.out, name)
	}
	fmt.Fprintln(c.out, algHacker16)
	for _, name := range checker.FrameNames() {
		frame, err := checker.Frame(name)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out, "frame", frame)
	}
	return nil
}

func newListCmd(rootConfig *rootConfig, out io.Writer) *ffcli.Command {
	cfg := listConfig{rootConfig: rootConfig, out: out}

	fs := flag.NewFlagSet("vcrc list", flag.ContinueOnError)
	rootConfig.registerFlags(fs)

	return &ffcli.Command{
		Name:       "list",
		ShortUsage: "list",
		ShortHelp:  "Lists the algorithm names and the configured frames.",
		FlagSet:    fs,
		Exec:       cfg.Exec,
	}
}
