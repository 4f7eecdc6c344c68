// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image/color"
	"io"

	"cogentcore.org/tint/base/logx"
	"cogentcore.org/tint/colors"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose bool
	quiet   bool
	debug   bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "tint",
		Short:         "Tint generates material color schemes with guaranteed contrast",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(flags.debug, flags.verbose, flags.quiet)
			logx.SetDefaultLogger()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Show informational log messages")
	cmd.PersistentFlags().BoolVarP(&flags.quiet, "quiet", "q", false, "Only show errors")
	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "Show debug log messages")

	cmd.AddCommand(newSchemeCmd())
	cmd.AddCommand(newContrastCmd())
	cmd.AddCommand(newWatchCmd())

	return cmd
}

// swatch returns a colored block for the given color, which is
// blank when w does not support colors.
func swatch(w io.Writer, c color.Color) string {
	out := termenv.NewOutput(w)
	return out.String("    ").Background(out.Color(colors.AsHex(c))).String()
}
