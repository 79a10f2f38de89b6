package groups

// Schmidt calculates the Schmidt number, the ratio of momentum to mass
// diffusivity, for diffusion coefficient D [m^2/s]:
//
//	Sc = nu/D = mu/(rho*D)
//
// Routes, in priority order: (Rho, Mu) giving mu/(rho*D); Nu giving nu/D.
func Schmidt(D float64, opts ...Option) (float64, error) {
	in := resolve(opts)
	switch {
	case in.hasRho && in.hasMu:
		return in.mu / (in.rho * D), nil
	case in.hasNu:
		return in.nu / D, nil
	}
	return 0, &MissingInputError{
		Calculation: "Schmidt",
		Accepted:    [][]string{{"Rho", "Mu"}, {"Nu"}},
	}
}

// Lewis calculates the Lewis number, the ratio of thermal to mass
// diffusivity, for diffusion coefficient D [m^2/s]:
//
//	Le = alpha/D
//
// The thermal diffusivity is resolved from (K, Cp, Rho) or directly from
// Alpha, in that order.
func Lewis(D float64, opts ...Option) (float64, error) {
	in := resolve(opts)
	alpha, err := in.thermalDiffusivity("Lewis")
	if err != nil {
		return 0, err
	}
	return alpha / D, nil
}

// Sherwood calculates the Sherwood number from mass-transfer coefficient K
// [m/s] and diffusion coefficient D [m^2/s]:
//
//	Sh = K*L/D
func Sherwood(K, L, D float64) float64 {
	return K * L / D
}

// PecletMass calculates the mass-transfer Peclet number:
//
//	Pe = V*L/D
func PecletMass(V, L, D float64) float64 {
	return V * L / D
}

// FourierMass calculates the mass-transfer Fourier number for diffusion over
// length L during time t [s]:
//
//	Fo = t*D/L^2
func FourierMass(t, L, D float64) float64 {
	return t * D / (L * L)
}
