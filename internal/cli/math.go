// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"github.com/db47h/bcnum"
	"github.com/db47h/bcnum/math"
	"github.com/spf13/cobra"
)

func (a *app) mathCommands() []*cobra.Command {
	return []*cobra.Command{
		{
			Use:   "pi",
			Short: "Print π truncated to scale",
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				return a.result(math.Pi(a.ctx, a.ctx.New()))
			},
		},
		a.engineOp("exp X", "Print e^X truncated to scale", 1, func(xs []*bcnum.Number) ([]*bcnum.Number, error) {
			return []*bcnum.Number{math.Exp(a.ctx, a.ctx.New(), xs[0])}, nil
		}),
		a.engineOp("ln X", "Print the natural logarithm of X truncated to scale", 1, func(xs []*bcnum.Number) ([]*bcnum.Number, error) {
			return []*bcnum.Number{math.Log(a.ctx, a.ctx.New(), xs[0])}, nil
		}),
	}
}
