// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"io"

	"cogentcore.org/tint/colors"
	"cogentcore.org/tint/colors/cam/hct"
	"cogentcore.org/tint/colors/matcolor"
	"github.com/spf13/cobra"
)

type schemeOptions struct {
	dark     bool
	contrast float32
	variant  string
	static   bool
}

func newSchemeCmd() *cobra.Command {
	opts := &schemeOptions{}

	cmd := &cobra.Command{
		Use:   "scheme [color]",
		Short: "Print the color roles of the scheme generated from a color",
		Long: "Print the color roles of the scheme generated from a color, given as a hex value,\n" +
			"a color name, or hct(hue, chroma, tone). The default color is #4285f4.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := "#4285f4"
			if len(args) > 0 {
				source = args[0]
			}
			return runScheme(cmd.OutOrStdout(), source, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.dark, "dark", false, "Generate a dark scheme")
	cmd.Flags().Float32Var(&opts.contrast, "contrast", 0, "Contrast level from -1 (reduced) to 1 (high)")
	cmd.Flags().StringVar(&opts.variant, "variant", matcolor.TonalSpot.String(), "Scheme variant, such as tonal-spot, vibrant or fidelity")
	cmd.Flags().BoolVar(&opts.static, "static", false, "Print the static scheme, which ignores contrast and variant")

	return cmd
}

func runScheme(w io.Writer, source string, opts *schemeOptions) error {
	src, err := colors.FromString(source)
	if err != nil {
		return err
	}
	if colors.IsNil(src) {
		return fmt.Errorf("no source color given in %q", source)
	}
	if opts.static {
		printStatic(w, src, opts.dark)
		return nil
	}
	variant, err := matcolor.VariantString(opts.variant)
	if err != nil {
		return err
	}
	s := matcolor.NewScheme(variant, hct.FromColor(src), opts.dark, opts.contrast)
	fmt.Fprintln(w, s)
	for i, role := range matcolor.Roles.Values {
		printRole(w, matcolor.Roles.Keys[i], s.Color(role), role.GetTone(s))
	}
	return nil
}

func printRole(w io.Writer, name string, c color.RGBA, tone float32) {
	fmt.Fprintf(w, "%-34s %s %6.2f %s\n", name, colors.AsHex(c), tone, swatch(w, c))
}

func printStatic(w io.Writer, src color.RGBA, dark bool) {
	argb := colors.AsARGB(src)
	s := matcolor.MaterialLightColorScheme(argb)
	mode := "light"
	if dark {
		s = matcolor.MaterialDarkColorScheme(argb)
		mode = "dark"
	}
	fmt.Fprintf(w, "static %s scheme from %s\n", mode, colors.AsHex(src))
	accents := []struct {
		name string
		a    matcolor.Accent
	}{
		{"primary", s.Primary},
		{"secondary", s.Secondary},
		{"tertiary", s.Tertiary},
		{"error", s.Error},
	}
	for _, ac := range accents {
		printStaticRole(w, ac.name, ac.a.Base)
		printStaticRole(w, "on_"+ac.name, ac.a.On)
		printStaticRole(w, ac.name+"_container", ac.a.Container)
		printStaticRole(w, "on_"+ac.name+"_container", ac.a.OnContainer)
	}
	others := []struct {
		name string
		c    color.RGBA
	}{
		{"background", s.Background},
		{"on_background", s.OnBackground},
		{"surface", s.Surface},
		{"on_surface", s.OnSurface},
		{"surface_variant", s.SurfaceVariant},
		{"on_surface_variant", s.OnSurfaceVariant},
		{"outline", s.Outline},
		{"outline_variant", s.OutlineVariant},
		{"shadow", s.Shadow},
		{"scrim", s.Scrim},
		{"inverse_surface", s.InverseSurface},
		{"inverse_on_surface", s.InverseOnSurface},
		{"inverse_primary", s.InversePrimary},
	}
	for _, o := range others {
		printStaticRole(w, o.name, o.c)
	}
}

func printStaticRole(w io.Writer, name string, c color.RGBA) {
	printRole(w, name, c, hct.FromColor(c).Tone)
}
