// Package groups calculates the dimensionless groups of fluid dynamics and
// heat/mass transfer, together with a few closely related fluid properties.
//
// Every function is a pure O(1) transform of its arguments; there is no
// shared mutable state and all functions are safe for concurrent use.
//
// # Input routes
//
// Several groups can be formed from alternative sets of physical inputs that
// are dimensionally equivalent routes to the same intermediate quantity. For
// example the Reynolds number needs a kinematic viscosity, which may be given
// directly or derived from density and dynamic viscosity. These optional
// inputs are supplied as options:
//
//	Re, err := groups.Reynolds(2.5, 0.25, groups.Rho(1.1613), groups.Mu(1.9e-5))
//	Re, err := groups.Reynolds(2.5, 0.25, groups.Nu(1.636e-5))
//
// Routes are checked in a fixed priority order documented on each function;
// the first route whose inputs are all present wins, even when a later
// route's inputs were also supplied. Exactly one route is ever evaluated.
// An option counts as present whatever its value, including zero. When no
// route is satisfied the function returns a *MissingInputError listing the
// accepted sets.
//
// # Domain errors
//
// Physical plausibility is not validated. Out-of-domain arithmetic (a
// negative square-root argument, a zero denominator) follows IEEE-754
// semantics and yields NaN or Inf; it never panics and is never reported as
// an error. Preconditions are documented on the affected functions.
package groups

import "github.com/petrijr/dimless/pkg/constants"

// Option supplies one optional physical input, or a mode flag, to a
// calculation. Options are evaluated before any route is chosen; supplying
// the same option twice keeps the last value.
type Option func(*inputs)

type inputs struct {
	rho, mu, nu, cp, k, alpha float64

	hasRho, hasMu, hasNu, hasCp, hasK, hasAlpha bool

	g       float64
	squared bool
	light   bool
}

func resolve(opts []Option) *inputs {
	in := &inputs{g: constants.G}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Rho supplies a density, [kg/m^3].
func Rho(rho float64) Option {
	return func(in *inputs) { in.rho, in.hasRho = rho, true }
}

// Mu supplies a dynamic viscosity, [Pa*s].
func Mu(mu float64) Option {
	return func(in *inputs) { in.mu, in.hasMu = mu, true }
}

// Nu supplies a kinematic viscosity, [m^2/s].
func Nu(nu float64) Option {
	return func(in *inputs) { in.nu, in.hasNu = nu, true }
}

// Cp supplies a constant-pressure heat capacity, [J/(kg*K)].
func Cp(cp float64) Option {
	return func(in *inputs) { in.cp, in.hasCp = cp, true }
}

// K supplies a thermal conductivity, [W/(m*K)].
func K(k float64) Option {
	return func(in *inputs) { in.k, in.hasK = k, true }
}

// Alpha supplies a thermal diffusivity, [m^2/s].
func Alpha(alpha float64) Option {
	return func(in *inputs) { in.alpha, in.hasAlpha = alpha, true }
}

// Gravity overrides the gravitational acceleration used by a calculation,
// [m/s^2]. The default is standard gravity, constants.G.
func Gravity(g float64) Option {
	return func(in *inputs) { in.g = g }
}

// Squared makes Froude return the square of the Froude number.
func Squared() Option {
	return func(in *inputs) { in.squared = true }
}

// Light makes FroudeDensimetric take the second, lighter density as the
// reference phase instead of the first.
func Light() Option {
	return func(in *inputs) { in.light = true }
}

// kinematicViscosity resolves nu from (Rho, Mu) or directly from Nu,
// in that order.
func (in *inputs) kinematicViscosity(calc string) (float64, error) {
	switch {
	case in.hasRho && in.hasMu:
		return in.mu / in.rho, nil
	case in.hasNu:
		return in.nu, nil
	}
	return 0, &MissingInputError{
		Calculation: calc,
		Accepted:    [][]string{{"Rho", "Mu"}, {"Nu"}},
	}
}

// thermalDiffusivity resolves alpha from (Rho, Cp, K) or directly from
// Alpha, in that order.
func (in *inputs) thermalDiffusivity(calc string) (float64, error) {
	switch {
	case in.hasRho && in.hasCp && in.hasK:
		return in.k / (in.rho * in.cp), nil
	case in.hasAlpha:
		return in.alpha, nil
	}
	return 0, &MissingInputError{
		Calculation: calc,
		Accepted:    [][]string{{"Rho", "Cp", "K"}, {"Alpha"}},
	}
}
