// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/logrusorgru/aurora/v4"

	"github.com/db47h/bigint"
)

type colorizer struct {
	au *aurora.Aurora
}

func newColorizer(enabled bool) colorizer {
	return colorizer{au: aurora.New(aurora.WithColors(enabled))}
}

func (c colorizer) result(x *bigint.BigInt) string {
	if x == nil {
		return ""
	}
	return c.au.Colorize(x.String(), aurora.YellowFg|aurora.BrightFg).String()
}

func (c colorizer) error(message string) string {
	return c.au.Colorize(message, aurora.RedFg|aurora.BrightFg|aurora.BoldFm).String()
}
