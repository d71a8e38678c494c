package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/vuuvv/vcrc/crc16"
)

type tableConfig struct {
	rootConfig *rootConfig
	out        io.Writer
	poly       string
	cols       int
}

func (c *tableConfig) Exec(ctx context.Context, _ []string) error {
	if _, err := c.rootConfig.setup(); err != nil {
		return err
	}
	poly, err := parseUint16("poly", c.poly)
	if err != nil {
		return err
	}
	cols := c.cols
	if cols <= 0 {
		cols = 8
	}

	table := crc16.Table16(poly)
	fmt.Fprintf(c.out, "// poly 0x%04X, %s\n", poly, crc16.OrientationOf(poly))
	row := make([]string, 0, cols)
	for i, v := range table {
		row = append(row, fmt.Sprintf("0x%04X", v))
		if len(row) == cols || i == len(table)-1 {
			if _, err = fmt.Fprintln(c.out, strings.Join(row, ", ")+","); err != nil {
				return err
			}
			row = row[:0]
		}
	}
	return nil
}

func newTableCmd(rootConfig *rootConfig, out io.Writer) *ffcli.Command {
	cfg := tableConfig{
		rootConfig: rootConfig,
		out:        out,
	}

	fs := flag.NewFlagSet("vcrc table", flag.ContinueOnError)
	fs.StringVar(&cfg.poly, "poly", "0xA001", "polynomial in table form")
	fs.IntVar(&cfg.cols, "cols", 8, "entries per line")
	rootConfig.registerFlags(fs)

	return &ffcli.Command{
		Name:       "table",
		ShortUsage: "table [-poly 0xA001]",
		ShortHelp:  "Prints the 256 entry lookup table of a polynomial.",
		FlagSet:    fs,
		Exec:       cfg.Exec,
	}
}
