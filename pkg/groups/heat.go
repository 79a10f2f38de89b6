package groups

import "math"

// Prandtl calculates the Prandtl number, the ratio of momentum to thermal
// diffusivity:
//
//	Pr = Cp*mu/k = nu/alpha
//
// Routes, in priority order: (Cp, K, Mu) giving Cp*mu/k; (Nu, Rho, Cp, K)
// giving nu*rho*Cp/k; (Nu, Alpha) giving nu/alpha.
//
//	Pr, _ := Prandtl(Cp(1637.), K(0.010), Mu(4.61e-6)) // 0.754657
func Prandtl(opts ...Option) (float64, error) {
	in := resolve(opts)
	switch {
	case in.hasCp && in.hasK && in.hasMu:
		return in.cp * in.mu / in.k, nil
	case in.hasNu && in.hasRho && in.hasCp && in.hasK:
		return in.nu * in.rho * in.cp / in.k, nil
	case in.hasNu && in.hasAlpha:
		return in.nu / in.alpha, nil
	}
	return 0, &MissingInputError{
		Calculation: "Prandtl",
		Accepted: [][]string{
			{"Cp", "K", "Mu"},
			{"Nu", "Rho", "Cp", "K"},
			{"Nu", "Alpha"},
		},
	}
}

// Grashof calculates the Grashof number for natural convection over a body of
// characteristic length L with volumetric expansion coefficient beta [1/K]
// between temperatures T1 and T2 [K]:
//
//	Gr = g*beta*|T2-T1|*L^3/nu^2
//
// The kinematic viscosity is resolved from (Rho, Mu) or Nu, in that order;
// Gravity overrides g. A zero temperature difference gives Gr = 0.
func Grashof(L, beta, T1, T2 float64, opts ...Option) (float64, error) {
	in := resolve(opts)
	nu, err := in.kinematicViscosity("Grashof")
	if err != nil {
		return 0, err
	}
	return in.g * beta * math.Abs(T2-T1) * L * L * L / (nu * nu), nil
}

// Rayleigh calculates the Rayleigh number as the product of the Prandtl and
// Grashof numbers.
func Rayleigh(Pr, Gr float64) float64 {
	return Pr * Gr
}

// PecletHeat calculates the heat-transfer Peclet number for velocity V [m/s]
// and characteristic length L [m]:
//
//	Pe = V*L/alpha
//
// The thermal diffusivity is resolved from (Rho, Cp, K) or directly from
// Alpha, in that order.
func PecletHeat(V, L float64, opts ...Option) (float64, error) {
	in := resolve(opts)
	alpha, err := in.thermalDiffusivity("PecletHeat")
	if err != nil {
		return 0, err
	}
	return V * L / alpha, nil
}

// FourierHeat calculates the heat-transfer Fourier number, dimensionless time
// for conduction over length L during time t [s]:
//
//	Fo = t*alpha/L^2
//
// Same route resolution as PecletHeat.
func FourierHeat(t, L float64, opts ...Option) (float64, error) {
	in := resolve(opts)
	alpha, err := in.thermalDiffusivity("FourierHeat")
	if err != nil {
		return 0, err
	}
	return t * alpha / (L * L), nil
}

// GraetzHeat calculates the Graetz number for developing laminar flow in a
// duct of diameter D at axial distance x [m]:
//
//	Gz = V*D^2/(x*alpha)
//
// Same route resolution as PecletHeat.
func GraetzHeat(V, D, x float64, opts ...Option) (float64, error) {
	in := resolve(opts)
	alpha, err := in.thermalDiffusivity("GraetzHeat")
	if err != nil {
		return 0, err
	}
	return V * D * D / (x * alpha), nil
}

// Nusselt calculates the Nusselt number from heat-transfer coefficient h
// [W/(m^2*K)] and the fluid's thermal conductivity:
//
//	Nu = h*L/k
func Nusselt(h, L, k float64) float64 {
	return h * L / k
}

// Biot calculates the Biot number. Same form as Nusselt, but k is the
// conductivity of the solid body, not the fluid.
func Biot(h, L, k float64) float64 {
	return h * L / k
}

// Stanton calculates the Stanton number:
//
//	St = h/(V*rho*Cp)
func Stanton(h, V, rho, Cp float64) float64 {
	return h / (V * rho * Cp)
}

// Eckert calculates the Eckert number from a temperature difference dT [K]:
//
//	Ec = V^2/(Cp*dT)
func Eckert(V, Cp, dT float64) float64 {
	return V * V / (Cp * dT)
}

// Jakob calculates the Jakob number for a wall superheat Te [K] and heat of
// vaporization Hvap [J/kg]:
//
//	Ja = Cp*Te/Hvap
func Jakob(Cp, Hvap, Te float64) float64 {
	return Cp * Te / Hvap
}

// Boiling calculates the boiling number from mass flux G [kg/(m^2*s)] and
// heat flux q [W/m^2]:
//
//	Bg = q/(G*Hvap)
func Boiling(G, q, Hvap float64) float64 {
	return q / (G * Hvap)
}
