// Package constants holds the physical constants shared by the correlation
// packages. All values are SI (CODATA 2018 where applicable) and read-only;
// functions that depend on gravity accept a per-call override instead of
// mutating anything here.
package constants

// Fundamental constants.
const (
	// G is standard gravitational acceleration, [m/s^2].
	G = 9.80665

	// R is the molar gas constant, [J/(mol*K)].
	R = 8.31446261815324
)

// Temperature-scale anchors.
const (
	// ZeroCelsius is 0 degrees Celsius expressed in Kelvin.
	ZeroCelsius = 273.15

	// DegreeFahrenheit is the size of one Fahrenheit degree in Kelvin.
	// Valid for temperature differences only, not absolute temperatures.
	DegreeFahrenheit = 1.0 / 1.8
)
