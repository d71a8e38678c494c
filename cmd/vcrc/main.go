/*
vcrc computes 16-bit checksums from the command line.

It covers the CRC-16 presets (Modbus, XMODEM, X.25, ...), a fully
parameterised CRC-16, the Internet checksum and Fletcher-16, and can verify or
seal packets described by frame rules in a yaml file.
*/
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/vuuvv/vcrc/utils"
)

func main() {
	defer utils.NormalRecover()

	var (
		in  = os.Stdin
		out = os.Stdout
		err = os.Stderr
	)

	rootCmd, cfg := newRootCmd()
	rootCmd.Subcommands = []*ffcli.Command{
		newCalcCmd(cfg, in, out),
		newTableCmd(cfg, out),
		newVerifyCmd(cfg, in, out),
		newSealCmd(cfg, in, out),
		newListCmd(cfg, out),
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if e := rootCmd.ParseAndRun(ctx, os.Args[1:]); e != nil {
		if cfg.verbose {
			fmt.Fprintf(err, "%s: %+v\n", rootCmd.Name, e)
		} else {
			fmt.Fprintf(err, "%s: %s\n", rootCmd.Name, e)
		}
		cancel()
		os.Exit(1)
	}
}
