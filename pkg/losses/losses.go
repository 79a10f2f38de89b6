// Package losses relates pressure drop, head and loss coefficients for pipe
// flow fittings.
//
// A loss coefficient K is the dimensionless factor relating pressure drop to
// velocity head; head is pressure expressed as an equivalent column height of
// fluid. All relations are single closed-form expressions; the equivalent
// length forms default to a turbulent friction factor of 0.015 unless
// overridden with Fd.
package losses

import "github.com/petrijr/dimless/pkg/constants"

// defaultFd is the Darcy friction factor assumed by the equivalent-length
// relations when none is given.
const defaultFd = 0.015

// defaultRoughness is the absolute roughness of clean commercial steel pipe,
// [m].
const defaultRoughness = 1.52e-6

// Option overrides a defaulted parameter of a loss relation.
type Option func(*params)

type params struct {
	g         float64
	fd        float64
	roughness float64
}

func resolve(opts []Option) *params {
	p := &params{g: constants.G, fd: defaultFd, roughness: defaultRoughness}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Gravity overrides the gravitational acceleration, [m/s^2].
func Gravity(g float64) Option {
	return func(p *params) { p.g = g }
}

// Fd overrides the Darcy friction factor used by the equivalent-length
// relations.
func Fd(fd float64) Option {
	return func(p *params) { p.fd = fd }
}

// Roughness overrides the absolute roughness, [m].
func Roughness(roughness float64) Option {
	return func(p *params) { p.roughness = roughness }
}

// KFromF calculates the loss coefficient of a straight pipe of length L and
// diameter D with Darcy friction factor fd:
//
//	K = fd*L/D
func KFromF(fd, L, D float64) float64 {
	return fd * L / D
}

// KFromLEquiv converts an equivalent length ratio L/D to a loss coefficient.
func KFromLEquiv(LD float64, opts ...Option) float64 {
	p := resolve(opts)
	return p.fd * LD
}

// LEquivFromK converts a loss coefficient to an equivalent length ratio L/D.
func LEquivFromK(K float64, opts ...Option) float64 {
	p := resolve(opts)
	return K / p.fd
}

// LFromK converts a loss coefficient to the length of straight pipe of
// diameter D with the same loss.
func LFromK(K, D float64, opts ...Option) float64 {
	p := resolve(opts)
	return K * D / p.fd
}

// DPFromK calculates the pressure drop across a fitting of loss coefficient
// K at velocity V:
//
//	dP = K*0.5*rho*V^2
//
//	DPFromK(10, 1000, 3) // 45000 Pa
func DPFromK(K, rho, V float64) float64 {
	return K * 0.5 * rho * V * V
}

// HeadFromK calculates the head loss across a fitting of loss coefficient K,
// [m]. Gravity overrides g.
func HeadFromK(K, V float64, opts ...Option) float64 {
	p := resolve(opts)
	return K * 0.5 * V * V / p.g
}

// HeadFromP converts a pressure [Pa] to head [m] of a fluid of density rho.
// Gravity overrides g.
func HeadFromP(P, rho float64, opts ...Option) float64 {
	p := resolve(opts)
	return P / rho / p.g
}

// PFromHead converts a head [m] of a fluid of density rho to pressure [Pa].
// Gravity overrides g.
func PFromHead(head, rho float64, opts ...Option) float64 {
	p := resolve(opts)
	return head * rho * p.g
}

// RelativeRoughness calculates the roughness-to-diameter ratio of a pipe.
// The default roughness is that of clean commercial steel.
func RelativeRoughness(D float64, opts ...Option) float64 {
	p := resolve(opts)
	return p.roughness / D
}
