// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"strconv"

	"github.com/db47h/bcnum"
	"github.com/db47h/bcnum/context"
	"github.com/spf13/cobra"
)

type binaryOp func(c *context.Context, z, x, y *bcnum.Number) *bcnum.Number

func (a *app) binary(use, short string, op binaryOp) *cobra.Command {
	return &cobra.Command{
		Use:   use + " X Y",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			xs, err := a.numbers(args)
			if err != nil {
				return err
			}
			return a.result(op(a.ctx, a.ctx.New(), xs[0], xs[1]))
		},
	}
}

// engineOp runs an Engine operation with n numeric arguments and prints
// the numbers it returns.
func (a *app) engineOp(use, short string, n int, op func(xs []*bcnum.Number) ([]*bcnum.Number, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(n),
		RunE: func(_ *cobra.Command, args []string) error {
			xs, err := a.numbers(args)
			if err != nil {
				return err
			}
			rs, err := op(xs)
			if err != nil {
				return err
			}
			return a.result(rs...)
		},
	}
}

func (a *app) arithCommands() []*cobra.Command {
	return []*cobra.Command{
		a.binary("add", "Print X+Y", (*context.Context).Add),
		a.binary("sub", "Print X-Y", (*context.Context).Sub),
		a.binary("mul", "Print X*Y", (*context.Context).Mul),
		a.binary("div", "Print X/Y truncated to scale", (*context.Context).Div),
		a.binary("mod", "Print the remainder of X/Y", (*context.Context).Rem),
		a.binary("pow", "Print X^Y for an integer Y", (*context.Context).Pow),
		a.engineOp("divmod X Y", "Print the quotient and the remainder of X/Y", 2, func(xs []*bcnum.Number) ([]*bcnum.Number, error) {
			q, r := a.ctx.New(), a.ctx.New()
			err := a.e.DivMod(q, r, xs[0], xs[1], a.cfg.Scale)
			return []*bcnum.Number{q, r}, err
		}),
		a.engineOp("sqrt X", "Print the square root of X", 1, func(xs []*bcnum.Number) ([]*bcnum.Number, error) {
			return []*bcnum.Number{a.ctx.Sqrt(a.ctx.New(), xs[0])}, nil
		}),
		a.engineOp("modexp X Y M", "Print X^Y mod M for integers", 3, func(xs []*bcnum.Number) ([]*bcnum.Number, error) {
			return []*bcnum.Number{a.ctx.ModExp(a.ctx.New(), xs[0], xs[1], xs[2])}, nil
		}),
		a.engineOp("places X N", "Print X with exactly N fractional digits", 2, func(xs []*bcnum.Number) ([]*bcnum.Number, error) {
			z := a.ctx.New()
			return []*bcnum.Number{z}, a.e.Places(z, xs[0], xs[1])
		}),
		a.engineOp("lshift X N", "Print X*10^N", 2, func(xs []*bcnum.Number) ([]*bcnum.Number, error) {
			z := a.ctx.New()
			return []*bcnum.Number{z}, a.e.LShift(z, xs[0], xs[1])
		}),
		a.engineOp("rshift X N", "Print X/10^N", 2, func(xs []*bcnum.Number) ([]*bcnum.Number, error) {
			z := a.ctx.New()
			return []*bcnum.Number{z}, a.e.RShift(z, xs[0], xs[1])
		}),
		{
			Use:   "cmp X Y",
			Short: "Print -1, 0 or 1 as X is lower than, equal to or greater than Y",
			Args:  cobra.ExactArgs(2),
			RunE: func(_ *cobra.Command, args []string) error {
				xs, err := a.numbers(args)
				if err != nil {
					return err
				}
				if _, err := a.out.WriteString(strconv.Itoa(xs[0].Cmp(xs[1]))); err != nil {
					return err
				}
				return a.out.Newline()
			},
		},
	}
}
