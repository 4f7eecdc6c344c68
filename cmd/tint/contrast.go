// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"

	"cogentcore.org/tint/colors/cam/hct"
	"cogentcore.org/tint/colors/matcolor"
	"github.com/spf13/cobra"
)

func newContrastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contrast <bg-tone> <ratio>",
		Short: "Print the foreground tone that reaches a contrast ratio against a background tone",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bg, err := parseFloat("bg-tone", args[0])
			if err != nil {
				return err
			}
			ratio, err := parseFloat("ratio", args[1])
			if err != nil {
				return err
			}
			if bg < 0 || bg > 100 {
				return fmt.Errorf("bg-tone must be in [0, 100], not %g", bg)
			}
			if ratio < 1 || ratio > 21 {
				return fmt.Errorf("ratio must be in [1, 21], not %g", ratio)
			}
			printContrast(cmd.OutOrStdout(), bg, ratio)
			return nil
		},
	}
}

func parseFloat(name, s string) (float32, error) {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	return float32(f), nil
}

func printContrast(w io.Writer, bg, ratio float32) {
	fg := matcolor.ForegroundTone(bg, ratio)
	fmt.Fprintf(w, "foreground tone: %.2f\n", fg)
	fmt.Fprintf(w, "achieved ratio:  %.2f\n", hct.ToneContrastRatio(fg, bg))
	option := func(label string, tone float32) {
		if tone == hct.Unreachable {
			fmt.Fprintf(w, "%s none\n", label)
			return
		}
		fmt.Fprintf(w, "%s %.2f\n", label, tone)
	}
	option("lighter tone:   ", hct.ContrastToneLighter(bg, ratio))
	option("darker tone:    ", hct.ContrastToneDarker(bg, ratio))
}
