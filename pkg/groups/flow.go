package groups

import "math"

// Reynolds calculates the Reynolds number for velocity V [m/s] and
// characteristic length D [m]:
//
//	Re = V*D/nu
//
// The kinematic viscosity is resolved from (Rho, Mu) or directly from Nu, in
// that order.
//
//	Re, _ := Reynolds(2.5, 0.25, Rho(1.1613), Mu(1.9e-5)) // 38200.6...
//	Re, _ := Reynolds(2.5, 0.25, Nu(1.636e-5))            // 38202.9...
func Reynolds(V, D float64, opts ...Option) (float64, error) {
	in := resolve(opts)
	nu, err := in.kinematicViscosity("Reynolds")
	if err != nil {
		return 0, err
	}
	return V * D / nu, nil
}

// Froude calculates the Froude number for velocity V [m/s] and characteristic
// length L [m]:
//
//	Fr = V/sqrt(L*g)
//
// Gravity overrides g; Squared returns Fr^2 instead, the form used in open
// channel flow.
func Froude(V, L float64, opts ...Option) float64 {
	in := resolve(opts)
	Fr := V / math.Sqrt(L*in.g)
	if in.squared {
		Fr *= Fr
	}
	return Fr
}

// FroudeDensimetric calculates the densimetric Froude number for two-phase
// flow with densities rho1 and rho2 [kg/m^3]:
//
//	Fr = V/sqrt(g*L) * sqrt(rho/(rho1-rho2))
//
// The numerator density is rho1 unless the Light option selects rho2.
// The result is NaN when the density difference makes the square-root
// argument negative; typical usage has rho1 >= rho2.
func FroudeDensimetric(V, L, rho1, rho2 float64, opts ...Option) float64 {
	in := resolve(opts)
	rho := rho1
	if in.light {
		rho = rho2
	}
	return V / math.Sqrt(in.g*L) * math.Sqrt(rho/(rho1-rho2))
}

// Weber calculates the Weber number, the ratio of inertial to surface-tension
// forces:
//
//	We = V^2*L*rho/sigma
func Weber(V, L, rho, sigma float64) float64 {
	return V * V * L * rho / sigma
}

// Mach calculates the Mach number, V/c, for speed of sound c [m/s].
func Mach(V, c float64) float64 {
	return V / c
}

// Knudsen calculates the Knudsen number from mean free path and
// characteristic length, both [m].
func Knudsen(path, L float64) float64 {
	return path / L
}

// Strouhal calculates the Strouhal number for vortex shedding at frequency f
// [Hz]:
//
//	St = f*L/V
func Strouhal(f, L, V float64) float64 {
	return f * L / V
}

// Euler calculates the Euler number from pressure drop dP [Pa]:
//
//	Eu = dP/(rho*V^2)
func Euler(dP, rho, V float64) float64 {
	return dP / (rho * V * V)
}

// Cavitation calculates the cavitation number from local pressure P and
// saturation pressure Psat, both [Pa]:
//
//	Ca = (P - Psat)/(0.5*rho*V^2)
func Cavitation(P, Psat, rho, V float64) float64 {
	return (P - Psat) / (0.5 * rho * V * V)
}

// Dean calculates the Dean number for flow in a curved pipe of diameter Di
// inside a bend of curvature diameter D:
//
//	De = sqrt(Di/D)*Re
func Dean(Re, Di, D float64) float64 {
	return math.Sqrt(Di/D) * Re
}

// Hagen calculates the Hagen number from the Reynolds number and Darcy
// friction factor:
//
//	Hg = 0.5*fd*Re^2
func Hagen(Re, fd float64) float64 {
	return 0.5 * fd * Re * Re
}

// Drag calculates the drag coefficient from drag force F [N] and projected
// area A [m^2]:
//
//	Cd = F/(A*rho*V^2/2)
func Drag(F, A, V, rho float64) float64 {
	return F / (A * rho * V * V / 2.0)
}

// PowerNumber calculates the power number of an agitator from power draw P
// [W], impeller diameter L [m] and speed N [1/s]:
//
//	Po = P/(rho*N^3*L^5)
func PowerNumber(P, L, N, rho float64) float64 {
	L2 := L * L
	return P / (rho * N * N * N * L2 * L2 * L)
}

// StokesNumber calculates the Stokes number of a particle of diameter Dp and
// density rhop in a flow with characteristic length D:
//
//	Stk = rhop*V*Dp^2/(18*mu*D)
func StokesNumber(V, Dp, D, rhop, mu float64) float64 {
	return rhop * V * (Dp * Dp) / (18.0 * mu * D)
}

// BejanL calculates the Bejan number of a length L:
//
//	Be = dP*L^2/(alpha*mu)
func BejanL(dP, L, mu, alpha float64) float64 {
	return dP * L * L / (alpha * mu)
}

// BejanP calculates the Bejan number of a permeability K [m^2]:
//
//	Be = dP*K/(alpha*mu)
func BejanP(dP, K, mu, alpha float64) float64 {
	return dP * K / (alpha * mu)
}
