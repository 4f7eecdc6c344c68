// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"cogentcore.org/tint/colors/matcolor"
	"cogentcore.org/tint/reactive"
	"cogentcore.org/tint/theme"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file>",
		Short: "Apply a theme settings file and re-apply it whenever it changes",
		Long: "Apply a theme settings file (TOML, or YAML with a .yaml or .yml extension)\n" +
			"and re-apply it whenever it changes, printing the main roles each time.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()
			return runWatch(ctx, cmd.OutOrStdout(), args[0])
		},
	}
}

// watchRoles are the roles printed by the watch command.
var watchRoles = []*matcolor.DynamicColor{
	matcolor.Primary, matcolor.OnPrimary, matcolor.PrimaryContainer, matcolor.OnPrimaryContainer,
	matcolor.Surface, matcolor.OnSurface, matcolor.SurfaceContainer,
}

func runWatch(ctx context.Context, w io.Writer, filename string) error {
	s, err := theme.LoadSettings(filename)
	if err != nil {
		return err
	}
	rctx := reactive.NewContext()
	th := theme.New(rctx, s)
	printWatch(w, th.Scheme.Get())
	rm := th.Scheme.AddSpecificObserver(rctx.NextID(), func(s **matcolor.DynamicScheme) {
		printWatch(w, *s)
	})
	defer rm.Remove()
	return theme.Watch(ctx, th, filename, nil)
}

func printWatch(w io.Writer, s *matcolor.DynamicScheme) {
	fmt.Fprintln(w, s)
	for _, role := range watchRoles {
		printRole(w, role.Name, s.Color(role), role.GetTone(s))
	}
}
