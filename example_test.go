// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcnum_test

import (
	"fmt"
	"strings"

	"github.com/db47h/bcnum"
)

func ExampleEngine_Div() {
	var e bcnum.Engine
	x, y, z := new(bcnum.Number), new(bcnum.Number), new(bcnum.Number)
	_ = e.Parse(x, "1", 10)
	_ = e.Parse(y, "3", 10)
	for _, scale := range []int{0, 5, 20} {
		if err := e.Div(z, x, y, scale); err != nil {
			panic(err)
		}
		fmt.Println(z)
	}
	// Output:
	// 0
	// 0.33333
	// 0.33333333333333333333
}

func ExampleErrDivideByZero() {
	var e bcnum.Engine
	z := new(bcnum.Number).SetInt64(42)
	err := e.Div(z, z, new(bcnum.Number), 10)
	fmt.Println(bcnum.ErrDivideByZero.Has(err), z)
	// Output: true 42
}

func ExampleEngine_Sqrt() {
	var e bcnum.Engine
	x, z := new(bcnum.Number).SetInt64(2), new(bcnum.Number)
	_ = e.Sqrt(z, x, 40)
	fmt.Println(z)
	// Output: 1.4142135623730950488016887242096980785696
}

func ExampleEngine_Print() {
	var e bcnum.Engine
	x := new(bcnum.Number).SetInt64(48879)
	for _, base := range []int{2, 16, 1000} {
		var sb strings.Builder
		_ = e.Print(&sb, x, base)
		fmt.Println(sb.String())
	}
	// Output:
	// 1011111011101111
	// BEEF
	//  048 879
}

func ExampleEngine_PrintExp() {
	var e bcnum.Engine
	x := new(bcnum.Number)
	_ = e.Parse(x, "0.000012345", 10)
	var sci, eng strings.Builder
	_ = e.PrintExp(&sci, x, false)
	_ = e.PrintExp(&eng, x, true)
	fmt.Println(sci.String())
	fmt.Println(eng.String())
	// Output:
	// 1.2345e-5
	// 12.345e-6
}
