// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import (
	"fmt"
	"strings"
)

// Variant is the style of a [DynamicScheme], which determines how
// its palettes are derived from the source color.
type Variant int32

const (
	// Monochrome is a grayscale scheme.
	Monochrome Variant = iota

	// Neutral is a nearly grayscale scheme with a hint of the source hue.
	Neutral

	// TonalSpot is the default scheme: a calm primary with low chroma
	// secondary and tertiary palettes.
	TonalSpot

	// Vibrant uses maximum chroma for the primary palette.
	Vibrant

	// Expressive is playful, with a primary hue far from the source hue.
	Expressive

	// Fidelity keeps the primary color as close as possible to the source.
	Fidelity

	// Content is like Fidelity, with an analogous tertiary color.
	Content

	// Rainbow is playful, with grayscale neutrals.
	Rainbow

	// FruitSalad is playful, with primary and secondary hues
	// rotated away from the source hue.
	FruitSalad

	// VariantN is the number of variants.
	VariantN
)

var _VariantNames = []string{"monochrome", "neutral", "tonal-spot", "vibrant", "expressive", "fidelity", "content", "rainbow", "fruit-salad"}

// String returns the string representation of this Variant value.
func (i Variant) String() string {
	if i.IsValid() {
		return _VariantNames[i]
	}
	return fmt.Sprintf("Variant(%d)", int32(i))
}

// VariantString returns the Variant value for the given string
// representation. Matching ignores case, spaces, dashes, and underscores.
func VariantString(s string) (Variant, error) {
	norm := func(s string) string {
		return strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(s))
	}
	ns := norm(s)
	for i, n := range _VariantNames {
		if norm(n) == ns {
			return Variant(i), nil
		}
	}
	return 0, fmt.Errorf("%q is not a valid value for type Variant", s)
}

// VariantValues returns all possible values for the type Variant.
func VariantValues() []Variant {
	vs := make([]Variant, VariantN)
	for i := range vs {
		vs[i] = Variant(i)
	}
	return vs
}

// IsValid returns whether the value is a
// valid option for its enum type.
func (i Variant) IsValid() bool {
	return i >= 0 && i < VariantN
}

// SetString sets the Variant value from its string representation,
// and returns an error if the string is invalid.
func (i *Variant) SetString(s string) error {
	v, err := VariantString(s)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface for Variant
func (i Variant) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface for Variant
func (i *Variant) UnmarshalText(text []byte) error {
	return i.SetString(string(text))
}
