package losses

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLossRelations(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		got, want float64
	}{
		{"KFromF", KFromF(0.018, 100., .3), 6.0},
		{"KFromLEquivDefault", KFromLEquiv(240), 3.6},
		{"LEquivFromKDefault", LEquivFromK(3.6), 240.0},
		{"LFromK", LFromK(6, .3, Fd(0.018)), 100.0},
		{"LFromKDefault", LFromK(6, .3), 120.0},
		{"DPFromK", DPFromK(10, 1000, 3), 45000.0},
		{"HeadFromK", HeadFromK(10, 1.5), 1.1471807396001694},
		{"HeadFromP", HeadFromP(98066.5, 1000), 10.0},
		{"PFromHead", PFromHead(5., 800.), 39226.6},
		{"RelativeRoughness", RelativeRoughness(0.5, Roughness(1e-4)), 0.0002},
		{"RelativeRoughnessDefault", RelativeRoughness(0.0254), 1.52e-6 / 0.0254},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tc.want, tc.got, 1e-9)
		})
	}
}

// TestEquivalentLengthInverse checks K -> L/D -> K is the identity for any
// shared friction factor.
func TestEquivalentLengthInverse(t *testing.T) {
	t.Parallel()

	for _, k := range []float64{0.5, 3.6, 10} {
		require.InDelta(t, k, KFromLEquiv(LEquivFromK(k)), 1e-12)
		require.InDelta(t, k, KFromLEquiv(LEquivFromK(k, Fd(0.02)), Fd(0.02)), 1e-12)
	}
}

// TestHeadPressureInverse checks head and pressure conversions invert each
// other, including under a gravity override.
func TestHeadPressureInverse(t *testing.T) {
	t.Parallel()

	require.InDelta(t, 5., HeadFromP(PFromHead(5., 800.), 800.), 1e-12)

	moon := Gravity(1.625)
	require.InDelta(t, 5., HeadFromP(PFromHead(5., 800., moon), 800., moon), 1e-12)
	require.InDelta(t, PFromHead(5., 800., moon), 5.*800.*1.625, 1e-9)
}

func TestHeadFromKGravityOverride(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 10*0.5*1.5*1.5/1.625, HeadFromK(10, 1.5, Gravity(1.625)), 1e-12)
}
