// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

// TonePolarity describes the relationship of the two roles
// of a [ToneDeltaPair].
type TonePolarity int32

const (
	// Darker makes role A darker than role B.
	Darker TonePolarity = iota

	// Lighter makes role A lighter than role B.
	Lighter

	// Nearer makes role A nearer to the background than role B.
	Nearer

	// Farther makes role A farther from the background than role B.
	Farther
)

func (p TonePolarity) String() string {
	switch p {
	case Darker:
		return "darker"
	case Lighter:
		return "lighter"
	case Nearer:
		return "nearer"
	case Farther:
		return "farther"
	}
	return "TonePolarity(invalid)"
}

// ToneDeltaPair constrains two roles to differ in tone by at least
// Delta, in the direction given by Polarity. Both roles must share
// the same background.
type ToneDeltaPair struct {
	RoleA, RoleB *DynamicColor

	// Delta is the minimum tone difference between the two roles
	Delta float32

	// Polarity says which of the two roles is nearer
	// to the background
	Polarity TonePolarity

	// StayTogether moves both roles out of the 50-59 band
	// when either of them lands in it
	StayTogether bool
}

// NewToneDeltaPair returns a new [ToneDeltaPair].
func NewToneDeltaPair(a, b *DynamicColor, delta float32, polarity TonePolarity, stayTogether bool) *ToneDeltaPair {
	return &ToneDeltaPair{RoleA: a, RoleB: b, Delta: delta, Polarity: polarity, StayTogether: stayTogether}
}

// aIsNearer returns whether role A is nearer to the background
// in a scheme with the given darkness.
func (tp *ToneDeltaPair) aIsNearer(isDark bool) bool {
	switch tp.Polarity {
	case Nearer:
		return true
	case Lighter:
		return !isDark
	case Darker:
		return isDark
	}
	return false
}
