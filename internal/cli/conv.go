// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/db47h/bcnum"
	"github.com/db47h/bcnum/internal/sink"
	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"
)

// Serialization formats of encode and decode.
const (
	formatMsgpack = "msgpack"
	formatBinary  = "binary"
	formatText    = "text"
)

func (a *app) convCommands() []*cobra.Command {
	return []*cobra.Command{
		a.engineOp("convert X", "Print X read in the input base in the output base", 1, func(xs []*bcnum.Number) ([]*bcnum.Number, error) {
			return xs, nil
		}),
		a.exp("sci", "Print X in scientific notation", false),
		a.exp("eng", "Print X in engineering notation", true),
		{
			Use:   "stream X",
			Short: "Write the integer part of X as raw bytes, most significant first",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				xs, err := a.numbers(args)
				if err != nil {
					return err
				}
				if err := a.out.Flush(); err != nil {
					return err
				}
				raw := sink.New(a.stdout, 0)
				if err := a.e.Stream(raw, xs[0]); err != nil {
					return err
				}
				return raw.Flush()
			},
		},
		a.encodeCommand(),
		a.decodeCommand(),
	}
}

func (a *app) exp(use, short string, eng bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " X",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			xs, err := a.numbers(args)
			if err != nil {
				return err
			}
			if err := a.e.PrintExp(a.out, xs[0], eng); err != nil {
				return err
			}
			return a.out.Newline()
		},
	}
}

func marshal(x *bcnum.Number, format string) ([]byte, error) {
	switch format {
	case formatMsgpack:
		return msgpack.Marshal(x)
	case formatBinary:
		return x.MarshalBinary()
	case formatText:
		return x.MarshalText()
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

func unmarshal(z *bcnum.Number, b []byte, format string) error {
	switch format {
	case formatMsgpack:
		return msgpack.Unmarshal(b, z)
	case formatBinary:
		return z.UnmarshalBinary(b)
	case formatText:
		return z.UnmarshalText(b)
	}
	return fmt.Errorf("unknown format %q", format)
}

func (a *app) encodeCommand() *cobra.Command {
	var (
		format string
		asHex  bool
	)
	cmd := &cobra.Command{
		Use:   "encode X",
		Short: "Serialize X",
		Long: `Serialize X in the selected format. The output is hex encoded when
writing to a terminal or when --hex is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			xs, err := a.numbers(args)
			if err != nil {
				return err
			}
			b, err := marshal(xs[0], format)
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			if f, ok := a.stdout.(*os.File); ok && sink.IsTerminal(f) {
				asHex = true
			}
			if asHex {
				_, err = fmt.Fprintln(a.stdout, hex.EncodeToString(b))
			} else {
				_, err = a.stdout.Write(b)
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatMsgpack, "serialization format (msgpack, binary, text)")
	cmd.Flags().BoolVar(&asHex, "hex", false, "hex encode the output")
	return cmd
}

func (a *app) decodeCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "decode [HEX]",
		Short: "Deserialize a number and print it",
		Long: `Deserialize a number from its hex encoded argument, or from the raw
bytes read on the standard input if no argument is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var (
				b   []byte
				err error
			)
			if len(args) > 0 {
				b, err = hex.DecodeString(args[0])
			} else {
				b, err = io.ReadAll(a.stdin)
			}
			if err != nil {
				return fmt.Errorf("decode: %w", err)
			}
			z := new(bcnum.Number)
			if err := unmarshal(z, b, format); err != nil {
				return fmt.Errorf("decode: %w", err)
			}
			return a.print(z)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatMsgpack, "serialization format (msgpack, binary, text)")
	return cmd
}
