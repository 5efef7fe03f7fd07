// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/db47h/bcnum"
	"github.com/spf13/cobra"
)

func (a *app) randCommand() *cobra.Command {
	var (
		seed     string
		count    int
		places   int
		showSeed bool
	)
	cmd := &cobra.Command{
		Use:   "rand [BOUND]",
		Short: "Print pseudo-random numbers",
		Long: `Print integers in [0, BOUND) or, without BOUND, numbers in [0, 1) with
--places fractional digits (the scale by default). The generator is seeded
from the system unless --seed is given; --show-seed prints a seed that
reproduces the sequence.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			xs, err := a.numbers(args)
			if err != nil {
				return err
			}
			rng := new(bcnum.RNG)
			if seed != "" {
				s, err := a.numbers([]string{seed})
				if err != nil {
					return fmt.Errorf("seed: %w", err)
				}
				if err := a.e.Seed(rng, s[0]); err != nil {
					return err
				}
			}
			if showSeed {
				s := new(bcnum.Number)
				if err := a.e.SetRNG(s, rng); err != nil {
					return err
				}
				if _, err := fmt.Fprintf(a.stderr, "seed: %s\n", s); err != nil {
					return err
				}
			}
			if places < 0 {
				places = a.cfg.Scale
			}
			z := new(bcnum.Number)
			for i := 0; i < count; i++ {
				if len(xs) > 0 {
					err = a.e.Irand(z, xs[0], rng)
				} else {
					err = a.e.Frand(z, places, rng)
				}
				if err != nil {
					return err
				}
				if err := a.print(z); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&seed, "seed", "", "seed the generator with this number")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "how many numbers to print")
	cmd.Flags().IntVarP(&places, "places", "p", -1, "fractional digits of numbers in [0, 1)")
	cmd.Flags().BoolVar(&showSeed, "show-seed", false, "print the seed of the sequence to stderr")
	return cmd
}
