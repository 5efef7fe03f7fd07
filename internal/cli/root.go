// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli implements the bcnum command.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/davecgh/go-spew/spew"
	"github.com/db47h/bcnum"
	"github.com/db47h/bcnum/context"
	"github.com/db47h/bcnum/internal/config"
	"github.com/db47h/bcnum/internal/sink"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// app is the state shared by all commands of a single run.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// flags without a configuration key
	cfgFile string
	dump    bool

	cfg  *config.Config
	log  *slog.Logger
	e    *bcnum.Engine
	ctx  *context.Context
	out  *sink.Writer
	stop func()
}

// Execute runs the bcnum command with the process arguments and returns
// the exit status.
func Execute() int {
	return run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if a.stop != nil {
		a.stop()
	}
	if a.out != nil {
		if ferr := a.out.Flush(); err == nil {
			err = ferr
		}
	}
	if err != nil {
		a.errorColor().Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "bcnum",
		Short: "Arbitrary precision decimal calculator",
		Long: `bcnum evaluates single arithmetic operations on arbitrary precision
decimal numbers with the semantics of the POSIX bc calculator: every result
is truncated to a scale, numbers are read in the input base and printed in
the output base.`,
		Version:           "0.1.0",
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "configuration file (yaml, toml or json)")
	pf.BoolVar(&a.dump, "dump", false, "dump the internal representation of results to stderr")
	pf.IntP("scale", "s", 0, "number of fractional digits of results")
	pf.IntP("ibase", "i", 10, "input base")
	pf.IntP("obase", "o", 10, "output base")
	pf.IntP("line-length", "l", 70, "output line length, 0 disables wrapping, -1 uses the terminal width")
	pf.Int("karatsuba-len", 0, "Karatsuba multiplication threshold in limbs (0 for the default)")
	pf.Bool("leading-zero", true, "print a 0 before the point of pure fractions")
	pf.Bool("strict-digits", false, "reject digits not valid in the input base")
	pf.String("log-level", "warn", "log level (debug, info, warn, error)")
	pf.String("color", "auto", "colorize errors (auto|on|off)")

	root.AddCommand(a.arithCommands()...)
	root.AddCommand(a.convCommands()...)
	root.AddCommand(a.mathCommands()...)
	root.AddCommand(a.randCommand())
	return root
}

// setup loads the configuration and builds the engine before any command
// runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	a.log = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
	a.e = bcnum.New(cfg.Engine(a.log))
	a.ctx = context.New(a.e, cfg.Scale).SetIbase(cfg.Ibase).SetObase(cfg.Obase)

	f, _ := a.stdout.(*os.File)
	a.out = sink.New(a.stdout, sink.Width(f, cfg.LineLength))

	sig := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sig, os.Interrupt)
	go func() {
		for {
			select {
			case <-sig:
				a.e.Interrupt()
			case <-done:
				return
			}
		}
	}()
	a.stop = func() {
		signal.Stop(sig)
		close(done)
	}

	a.log.Debug("engine ready", "scale", cfg.Scale, "ibase", cfg.Ibase, "obase", cfg.Obase,
		"karatsuba_len", a.e.Config().KaratsubaLen)
	return nil
}

func (a *app) errorColor() *color.Color {
	c := color.New(color.FgRed, color.Bold)
	mode := "auto"
	if a.cfg != nil {
		mode = a.cfg.Color
	}
	f, ok := a.stderr.(*os.File)
	if mode == "on" || mode == "auto" && ok && sink.IsTerminal(f) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// numbers parses args in the input base.
func (a *app) numbers(args []string) ([]*bcnum.Number, error) {
	xs := make([]*bcnum.Number, len(args))
	for i, s := range args {
		xs[i] = a.ctx.NewString(s)
		if err := a.ctx.Err(); err != nil {
			return nil, fmt.Errorf("argument %d %q: %w", i+1, s, err)
		}
	}
	return xs, nil
}

// print prints x in the output base followed by a newline.
func (a *app) print(x *bcnum.Number) error {
	if a.dump {
		spew.Fdump(a.stderr, x)
	}
	if err := a.e.Print(a.out, x, a.cfg.Obase); err != nil {
		return err
	}
	return a.out.Newline()
}

// result checks the context for errors then prints xs.
func (a *app) result(xs ...*bcnum.Number) error {
	if err := a.ctx.Err(); err != nil {
		return err
	}
	for _, x := range xs {
		if err := a.print(x); err != nil {
			return err
		}
	}
	return nil
}
