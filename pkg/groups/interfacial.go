package groups

import (
	"math"

	"github.com/petrijr/dimless/pkg/constants"
)

// Bond calculates the Bond number (also named Eotvos number) for a liquid of
// density rhol against a gas of density rhog over length L, with surface
// tension sigma [N/m]:
//
//	Bo = g*(rhol-rhog)*L^2/sigma
func Bond(rhol, rhog, sigma, L float64) float64 {
	return constants.G * (rhol - rhog) * L * L / sigma
}

// Morton calculates the Morton number for bubble/drop dynamics:
//
//	Mo = g*mul^4*(rhol-rhog)/(rhol^2*sigma^3)
//
// Gravity overrides g.
func Morton(rhol, rhog, mul, sigma float64, opts ...Option) float64 {
	in := resolve(opts)
	mul2 := mul * mul
	return in.g * mul2 * mul2 * (rhol - rhog) / (rhol * rhol * sigma * sigma * sigma)
}

// Confinement calculates the confinement number of a channel of diameter D:
//
//	Co = sqrt(sigma/(g*(rhol-rhog)))/D
//
// Gravity overrides g.
func Confinement(D, rhol, rhog, sigma float64, opts ...Option) float64 {
	in := resolve(opts)
	return math.Sqrt(sigma/(in.g*(rhol-rhog))) / D
}

// Capillary calculates the capillary number, the ratio of viscous to
// surface-tension forces:
//
//	Ca = V*mu/sigma
func Capillary(V, mu, sigma float64) float64 {
	return V * mu / sigma
}

// Ohnesorge calculates the Ohnesorge number:
//
//	Oh = mu/sqrt(L*rho*sigma)
func Ohnesorge(L, rho, mu, sigma float64) float64 {
	return mu / math.Sqrt(L*rho*sigma)
}

// Suratman calculates the Suratman number, the inverse square of Ohnesorge:
//
//	Su = rho*sigma*L/mu^2
func Suratman(L, rho, mu, sigma float64) float64 {
	return rho * sigma * L / (mu * mu)
}

// Archimedes calculates the Archimedes number for a particle of density rhop
// settling in a fluid of density rhof:
//
//	Ar = L^3*rhof*(rhop-rhof)*g/mu^2
//
// Gravity overrides g.
func Archimedes(L, rhof, rhop, mu float64, opts ...Option) float64 {
	in := resolve(opts)
	return L * L * L * rhof * (rhop - rhof) * in.g / (mu * mu)
}
