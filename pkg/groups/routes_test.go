package groups

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestReynoldsRoutePriority verifies that the (Rho, Mu) route wins even when
// a Nu that would give a different answer is also supplied.
func TestReynoldsRoutePriority(t *testing.T) {
	t.Parallel()

	fromRhoMu, err := Reynolds(2.5, 0.25, Rho(1.1613), Mu(1.9e-5))
	require.NoError(t, err)

	// A deliberately wrong Nu must be ignored when Rho and Mu are present.
	all, err := Reynolds(2.5, 0.25, Rho(1.1613), Mu(1.9e-5), Nu(1.0))
	require.NoError(t, err)
	require.Equal(t, fromRhoMu, all)

	fromNu, err := Reynolds(2.5, 0.25, Nu(1.636e-5))
	require.NoError(t, err)
	require.NotEqual(t, fromRhoMu, fromNu)
}

func TestPrandtlRoutePriority(t *testing.T) {
	t.Parallel()

	first, err := Prandtl(Cp(1637.), K(0.010), Mu(4.61e-6))
	require.NoError(t, err)
	require.InDelta(t, 0.754657, first, 1e-12)

	second, err := Prandtl(Cp(1637.), K(0.010), Nu(6.4e-7), Rho(7.1))
	require.NoError(t, err)
	require.InDelta(t, 0.7438528, second, 1e-12)

	third, err := Prandtl(Nu(6.3e-7), Alpha(9e-7))
	require.NoError(t, err)
	require.InDelta(t, 0.7, third, 1e-12)

	// With every input present the first-listed route is evaluated.
	all, err := Prandtl(Cp(1637.), K(0.010), Mu(4.61e-6), Nu(6.4e-7), Rho(7.1), Alpha(9e-7))
	require.NoError(t, err)
	require.Equal(t, first, all)
}

func TestMissingInput(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		call func() (float64, error)
	}{
		{"Reynolds", func() (float64, error) { return Reynolds(2.5, 0.25) }},
		{"Prandtl", func() (float64, error) { return Prandtl() }},
		{"PrandtlPartialRoute", func() (float64, error) { return Prandtl(Cp(1637.), K(0.010)) }},
		{"PecletHeat", func() (float64, error) { return PecletHeat(1.5, 2) }},
		{"FourierHeat", func() (float64, error) { return FourierHeat(1.5, 2) }},
		{"GraetzHeat", func() (float64, error) { return GraetzHeat(1.5, 0.25, 5) }},
		{"Schmidt", func() (float64, error) { return Schmidt(2e-6, Mu(4.61e-6)) }},
		{"Lewis", func() (float64, error) { return Lewis(22.6e-6, K(0.2), Cp(2200)) }},
		{"Grashof", func() (float64, error) { return Grashof(0.9144, 0.000933, 178.2, 0, Rho(1.1613)) }},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := tc.call()
			require.Error(t, err)
			require.ErrorIs(t, err, ErrMissingInput)
			require.True(t, IsMissingInput(err))

			var mi *MissingInputError
			require.True(t, errors.As(err, &mi))
			require.NotEmpty(t, mi.Accepted)
		})
	}
}

// TestMissingInputMessage checks that the message enumerates the accepted
// input sets verbatim, so callers can self-correct.
func TestMissingInputMessage(t *testing.T) {
	t.Parallel()

	_, err := Reynolds(2.5, 0.25)
	require.EqualError(t, err,
		"groups: Reynolds: insufficient input combination; accepted: (Rho, Mu) or (Nu)")

	_, err = Prandtl()
	require.EqualError(t, err,
		"groups: Prandtl: insufficient input combination; accepted: (Cp, K, Mu) or (Nu, Rho, Cp, K) or (Nu, Alpha)")
}

// TestZeroValuedInputIsPresent verifies that an option supplied as zero still
// satisfies its route; presence is decided by the option, not the value.
func TestZeroValuedInputIsPresent(t *testing.T) {
	t.Parallel()

	// Zero kinematic viscosity routes normally and divides through to +Inf.
	re, err := Reynolds(2.5, 0.25, Nu(0))
	require.NoError(t, err)
	require.True(t, math.IsInf(re, 1))

	// A zero temperature difference is a legitimate input, not a missing one.
	gr, err := Grashof(0.9144, 0.000933, 178.2, 178.2, Nu(1.636e-5))
	require.NoError(t, err)
	require.Zero(t, gr)
}

func TestNuMuConverter(t *testing.T) {
	t.Parallel()

	mu, err := NuMuConverter(998., Nu(1.0e-6))
	require.NoError(t, err)
	require.InDelta(t, 0.000998, mu, 1e-15)

	nu, err := NuMuConverter(998., Mu(0.000998))
	require.NoError(t, err)
	require.InDelta(t, 1.0e-6, nu, 1e-18)

	_, err = NuMuConverter(998.)
	require.ErrorIs(t, err, ErrMissingInput)

	_, err = NuMuConverter(998., Mu(0.000998), Nu(1.0e-6))
	require.ErrorIs(t, err, ErrMissingInput)
}

// TestPurity confirms repeated calls with identical inputs are bit-identical.
func TestPurity(t *testing.T) {
	t.Parallel()

	a, err := Reynolds(2.5, 0.25, Rho(1.1613), Mu(1.9e-5))
	require.NoError(t, err)
	b, err := Reynolds(2.5, 0.25, Rho(1.1613), Mu(1.9e-5))
	require.NoError(t, err)
	require.Equal(t, math.Float64bits(a), math.Float64bits(b))
}
