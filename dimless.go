package dimless

import (
	"github.com/petrijr/dimless/pkg/groups"
	"github.com/petrijr/dimless/pkg/losses"
	"github.com/petrijr/dimless/pkg/units"
)

// Re-export key types so users don't need to dig into pkg/groups.

type (
	Option            = groups.Option
	MissingInputError = groups.MissingInputError
)

var (
	ErrMissingInput = groups.ErrMissingInput
	IsMissingInput  = groups.IsMissingInput
)

// Optional physical inputs and mode flags for the multi-route calculations.

var (
	Rho     = groups.Rho
	Mu      = groups.Mu
	Nu      = groups.Nu
	Cp      = groups.Cp
	K       = groups.K
	Alpha   = groups.Alpha
	Gravity = groups.Gravity
	Squared = groups.Squared
	Light   = groups.Light
)

// The dimensionless-group catalog.

var (
	Reynolds          = groups.Reynolds
	Prandtl           = groups.Prandtl
	Grashof           = groups.Grashof
	Rayleigh          = groups.Rayleigh
	Nusselt           = groups.Nusselt
	Sherwood          = groups.Sherwood
	Schmidt           = groups.Schmidt
	Lewis             = groups.Lewis
	PecletHeat        = groups.PecletHeat
	PecletMass        = groups.PecletMass
	FourierHeat       = groups.FourierHeat
	FourierMass       = groups.FourierMass
	GraetzHeat        = groups.GraetzHeat
	Weber             = groups.Weber
	Mach              = groups.Mach
	Knudsen           = groups.Knudsen
	Bond              = groups.Bond
	Dean              = groups.Dean
	Morton            = groups.Morton
	Confinement       = groups.Confinement
	Froude            = groups.Froude
	FroudeDensimetric = groups.FroudeDensimetric
	Strouhal          = groups.Strouhal
	Biot              = groups.Biot
	Stanton           = groups.Stanton
	Euler             = groups.Euler
	Cavitation        = groups.Cavitation
	Eckert            = groups.Eckert
	Jakob             = groups.Jakob
	PowerNumber       = groups.PowerNumber
	StokesNumber      = groups.StokesNumber
	Drag              = groups.Drag
	Capillary         = groups.Capillary
	Archimedes        = groups.Archimedes
	Ohnesorge         = groups.Ohnesorge
	Suratman          = groups.Suratman
	Hagen             = groups.Hagen
	BejanL            = groups.BejanL
	BejanP            = groups.BejanP
	Boiling           = groups.Boiling
)

// Historical synonyms, kept as plain bindings to the same functions.

var (
	Pr     = groups.Prandtl
	Eotvos = groups.Bond
)

// Fluid properties and local gravity.

var (
	ThermalDiffusivity = groups.ThermalDiffusivity
	SpeedOfSound       = groups.SpeedOfSound
	NuMuConverter      = groups.NuMuConverter
	LocalGravity       = groups.LocalGravity
)

// Loss-coefficient, head and pressure relations. The gravity override for
// this family is losses.Gravity; Fd and Roughness override the defaulted
// friction factor and pipe roughness.

var (
	KFromF            = losses.KFromF
	KFromLEquiv       = losses.KFromLEquiv
	LEquivFromK       = losses.LEquivFromK
	LFromK            = losses.LFromK
	DPFromK           = losses.DPFromK
	HeadFromK         = losses.HeadFromK
	HeadFromP         = losses.HeadFromP
	PFromHead         = losses.PFromHead
	RelativeRoughness = losses.RelativeRoughness

	Fd        = losses.Fd
	Roughness = losses.Roughness
)

// Temperature conversions.

type Scale = units.Scale

const (
	Celsius    = units.Celsius
	Kelvin     = units.Kelvin
	Fahrenheit = units.Fahrenheit
	Rankine    = units.Rankine
)

var (
	Convert      = units.Convert
	ConvertSlice = units.ConvertSlice

	C2K = units.C2K
	K2C = units.K2C
	C2F = units.C2F
	F2C = units.F2C
	F2K = units.F2K
	K2F = units.K2F
	C2R = units.C2R
	R2C = units.R2C
	K2R = units.K2R
	R2K = units.R2K
	F2R = units.F2R
	R2F = units.R2F
)
