package groups

import (
	"math"

	"github.com/petrijr/dimless/pkg/constants"
)

// ThermalDiffusivity calculates alpha = k/(rho*Cp), [m^2/s].
func ThermalDiffusivity(k, rho, Cp float64) float64 {
	return k / (rho * Cp)
}

// SpeedOfSound calculates the speed of sound in an ideal gas at temperature T
// [K] with isentropic exponent k and molecular weight MW [g/mol]:
//
//	c = sqrt(k*Rspecific*T), Rspecific = R*1000/MW
//
//	SpeedOfSound(303, 1.4, 28.96) // 348.98... m/s for air
func SpeedOfSound(T, k, MW float64) float64 {
	Rspecific := constants.R * 1000.0 / MW
	return math.Sqrt(k * Rspecific * T)
}

// NuMuConverter converts between dynamic and kinematic viscosity at density
// rho. Exactly one of Mu or Nu must be supplied: Mu returns the kinematic
// viscosity mu/rho, Nu returns the dynamic viscosity nu*rho. Supplying both
// or neither returns a *MissingInputError.
func NuMuConverter(rho float64, opts ...Option) (float64, error) {
	in := resolve(opts)
	if in.hasMu == in.hasNu {
		return 0, &MissingInputError{
			Calculation: "NuMuConverter",
			Accepted:    [][]string{{"Mu"}, {"Nu"}},
		}
	}
	if in.hasMu {
		return in.mu / rho, nil
	}
	return in.nu * rho, nil
}

// LocalGravity calculates the local gravitational acceleration [m/s^2] from
// an empirical polynomial in latitude [degrees] with a linear correction for
// altitude H [m].
func LocalGravity(latitude, H float64) float64 {
	lat := latitude * math.Pi / 180.0
	sinLat := math.Sin(lat)
	sin2Lat := math.Sin(2.0 * lat)
	return 9.780356*(1.0+0.0052885*sinLat*sinLat-0.0000059*sin2Lat*sin2Lat) - 3.086e-6*H
}
