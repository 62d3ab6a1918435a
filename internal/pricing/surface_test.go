package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"QuantDesk/internal/model"
)

func baseParams() model.OptionParameters {
	return model.OptionParameters{
		Strike:   110,
		Maturity: 1,
		RiskFree: 0.05,
	}
}

func TestSurface_DimensionsAndCorners(t *testing.T) {
	grids, err := Surface(baseParams(), 50, 150, 0.1, 0.5, 12)
	require.NoError(t, err)

	require.Len(t, grids.Call, 12)
	require.Len(t, grids.Put, 12)
	for i := range grids.Call {
		require.Len(t, grids.Call[i], 12)
		require.Len(t, grids.Put[i], 12)
	}

	assert.Equal(t, 50.0, grids.Spots[0])
	assert.Equal(t, 150.0, grids.Spots[len(grids.Spots)-1])
	assert.Equal(t, 0.1, grids.Sigmas[0])
	assert.Equal(t, 0.5, grids.Sigmas[len(grids.Sigmas)-1])

	// grids[0][0] must be the price at (minSpot, minSigma).
	p := baseParams()
	p.Spot, p.Volatility, p.Type = 50, 0.1, model.Call
	corner, err := Price(p)
	require.NoError(t, err)
	assert.InDelta(t, corner, grids.Call[0][0], 1e-12)
}

func TestSurface_CallMonotonicInSpot(t *testing.T) {
	grids, err := Surface(baseParams(), 50, 150, 0.1, 0.5, 10)
	require.NoError(t, err)

	for j := 0; j < len(grids.Sigmas); j++ {
		for i := 1; i < len(grids.Spots); i++ {
			assert.GreaterOrEqualf(t, grids.Call[i][j], grids.Call[i-1][j],
				"call price decreased from spot %g to %g at sigma %g",
				grids.Spots[i-1], grids.Spots[i], grids.Sigmas[j])
		}
	}
}

func TestSurface_DefaultGridSize(t *testing.T) {
	grids, err := Surface(baseParams(), 50, 150, 0.1, 0.5, 0)
	require.NoError(t, err)
	assert.Len(t, grids.Call, DefaultGridSize)
	assert.Len(t, grids.Call[0], DefaultGridSize)
}

func TestSurface_InvalidBounds(t *testing.T) {
	cases := []struct {
		name                             string
		minS, maxS, minSigma, maxSigma   float64
	}{
		{"inverted spot", 150, 50, 0.1, 0.5},
		{"equal spot", 100, 100, 0.1, 0.5},
		{"inverted sigma", 50, 150, 0.5, 0.1},
		{"equal sigma", 50, 150, 0.3, 0.3},
		{"negative sigma", 50, 150, -0.1, 0.5},
		{"zero spot bound", 0, 150, 0.1, 0.5},
		{"negative spot bound", -50, 150, 0.1, 0.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Surface(baseParams(), tc.minS, tc.maxS, tc.minSigma, tc.maxSigma, 10)
			require.Error(t, err)
			assert.Equal(t, model.KindInvalidParameter, model.KindOf(err))
		})
	}
}
