// Package units converts temperatures between the Celsius, Kelvin,
// Fahrenheit and Rankine scales.
//
// Every conversion is a single affine transform and is exactly invertible in
// exact arithmetic; round trips agree to within floating-point rounding. The
// twelve ordered pairs are available both as named helpers (C2K, K2F, ...)
// and through Convert with a pair of Scale values. ConvertSlice applies the
// same transform elementwise over a slice without mutating its input.
package units

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/petrijr/dimless/pkg/constants"
)

// Scale identifies a temperature scale.
type Scale int

const (
	Celsius Scale = iota
	Kelvin
	Fahrenheit
	Rankine
)

func (s Scale) String() string {
	switch s {
	case Celsius:
		return "Celsius"
	case Kelvin:
		return "Kelvin"
	case Fahrenheit:
		return "Fahrenheit"
	case Rankine:
		return "Rankine"
	}
	return fmt.Sprintf("Scale(%d)", int(s))
}

// affine is the transform y = (x + pre)*scale + post. The pre/post split
// keeps each conversion identical, operation for operation, to its textbook
// form, so the anchor points (e.g. C2K(-40) == 233.15) are exact.
type affine struct {
	pre, scale, post float64
}

func (a affine) apply(x float64) float64 {
	return (x+a.pre)*a.scale + a.post
}

var conversions = map[[2]Scale]affine{
	{Celsius, Kelvin}:     {pre: constants.ZeroCelsius, scale: 1, post: 0},
	{Kelvin, Celsius}:     {pre: -constants.ZeroCelsius, scale: 1, post: 0},
	{Celsius, Fahrenheit}: {pre: 0, scale: 1.8, post: 32},
	{Fahrenheit, Celsius}: {pre: -32, scale: 1 / 1.8, post: 0},
	{Fahrenheit, Kelvin}:  {pre: -32, scale: 1 / 1.8, post: constants.ZeroCelsius},
	{Kelvin, Fahrenheit}:  {pre: -constants.ZeroCelsius, scale: 1.8, post: 32},
	{Celsius, Rankine}:    {pre: constants.ZeroCelsius, scale: 1.8, post: 0},
	{Rankine, Celsius}:    {pre: 0, scale: 1 / 1.8, post: -constants.ZeroCelsius},
	{Kelvin, Rankine}:     {pre: 0, scale: 1.8, post: 0},
	{Rankine, Kelvin}:     {pre: 0, scale: 1 / 1.8, post: 0},
	{Fahrenheit, Rankine}: {pre: 0, scale: 1, post: 1.8*constants.ZeroCelsius - 32},
	{Rankine, Fahrenheit}: {pre: 0, scale: 1, post: 32 - 1.8*constants.ZeroCelsius},
}

// Convert converts a single temperature from one scale to another.
// Converting a scale to itself returns the value unchanged.
func Convert(v float64, from, to Scale) (float64, error) {
	if from == to {
		return v, nil
	}
	a, ok := conversions[[2]Scale{from, to}]
	if !ok {
		return 0, fmt.Errorf("units: no conversion from %s to %s", from, to)
	}
	return a.apply(v), nil
}

// ConvertSlice converts every element of vs from one scale to another,
// returning a freshly allocated slice. The input is never mutated; the
// elementwise arithmetic is delegated to gonum's floats package.
func ConvertSlice(vs []float64, from, to Scale) ([]float64, error) {
	out := make([]float64, len(vs))
	copy(out, vs)
	if from == to {
		return out, nil
	}
	a, ok := conversions[[2]Scale{from, to}]
	if !ok {
		return nil, fmt.Errorf("units: no conversion from %s to %s", from, to)
	}
	if a.pre != 0 {
		floats.AddConst(a.pre, out)
	}
	if a.scale != 1 {
		floats.Scale(a.scale, out)
	}
	if a.post != 0 {
		floats.AddConst(a.post, out)
	}
	return out, nil
}

// C2K converts Celsius to Kelvin.
func C2K(C float64) float64 { return C + constants.ZeroCelsius }

// K2C converts Kelvin to Celsius.
func K2C(K float64) float64 { return K - constants.ZeroCelsius }

// C2F converts Celsius to Fahrenheit.
func C2F(C float64) float64 { return 1.8*C + 32 }

// F2C converts Fahrenheit to Celsius.
func F2C(F float64) float64 { return (F - 32) / 1.8 }

// F2K converts Fahrenheit to Kelvin.
func F2K(F float64) float64 { return (F-32)/1.8 + constants.ZeroCelsius }

// K2F converts Kelvin to Fahrenheit.
func K2F(K float64) float64 { return 1.8*(K-constants.ZeroCelsius) + 32 }

// C2R converts Celsius to Rankine.
func C2R(C float64) float64 { return 1.8 * (C + constants.ZeroCelsius) }

// R2C converts Rankine to Celsius.
func R2C(Ra float64) float64 { return Ra/1.8 - constants.ZeroCelsius }

// K2R converts Kelvin to Rankine.
func K2R(K float64) float64 { return 1.8 * K }

// R2K converts Rankine to Kelvin.
func R2K(Ra float64) float64 { return Ra / 1.8 }

// F2R converts Fahrenheit to Rankine.
func F2R(F float64) float64 { return F - 32 + 1.8*constants.ZeroCelsius }

// R2F converts Rankine to Fahrenheit.
func R2F(Ra float64) float64 { return Ra - 1.8*constants.ZeroCelsius + 32 }
