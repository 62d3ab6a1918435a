package pricing

import "QuantDesk/internal/model"

// DefaultGridSize matches the visualization density of a typical heatmap.
const DefaultGridSize = 10

// SurfaceGrids holds the call and put price lattices over (spot, volatility).
// Rows follow spot ascending, columns follow volatility ascending, so
// Call[0][0] is the price at (minSpot, minSigma).
type SurfaceGrids struct {
	Spots  []float64   `json:"spots"`
	Sigmas []float64   `json:"sigmas"`
	Call   [][]float64 `json:"call"`
	Put    [][]float64 `json:"put"`
}

// Surface evaluates the pricer on a regular gridSize x gridSize lattice
// spanning [minSpot,maxSpot] x [minSigma,maxSigma], with strike, maturity
// and risk-free rate fixed from base. A gridSize <= 1 selects the default.
func Surface(base model.OptionParameters, minSpot, maxSpot, minSigma, maxSigma float64, gridSize int) (*SurfaceGrids, error) {
	if gridSize <= 1 {
		gridSize = DefaultGridSize
	}
	// The pricer requires spot > 0, so a lattice touching zero could never
	// be evaluated; reject it up front rather than failing mid-grid.
	if minSpot <= 0 {
		return nil, model.Errorf(model.KindInvalidParameter, "minimum spot must be positive, got %g", minSpot)
	}
	if minSigma < 0 {
		return nil, model.Errorf(model.KindInvalidParameter, "minimum volatility must be non-negative, got %g", minSigma)
	}
	if minSpot >= maxSpot {
		return nil, model.Errorf(model.KindInvalidParameter, "spot bounds inverted: min %g >= max %g", minSpot, maxSpot)
	}
	if minSigma >= maxSigma {
		return nil, model.Errorf(model.KindInvalidParameter, "volatility bounds inverted: min %g >= max %g", minSigma, maxSigma)
	}

	grids := &SurfaceGrids{
		Spots:  linspace(minSpot, maxSpot, gridSize),
		Sigmas: linspace(minSigma, maxSigma, gridSize),
		Call:   make([][]float64, gridSize),
		Put:    make([][]float64, gridSize),
	}

	p := base
	for i, spot := range grids.Spots {
		grids.Call[i] = make([]float64, gridSize)
		grids.Put[i] = make([]float64, gridSize)
		for j, sigma := range grids.Sigmas {
			p.Spot = spot
			p.Volatility = sigma

			p.Type = model.Call
			call, err := Price(p)
			if err != nil {
				return nil, err
			}
			p.Type = model.Put
			put, err := Price(p)
			if err != nil {
				return nil, err
			}

			grids.Call[i][j] = call
			grids.Put[i][j] = put
		}
	}
	return grids, nil
}

// linspace returns n evenly spaced values from lo to hi inclusive.
func linspace(lo, hi float64, n int) []float64 {
	vals := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range vals {
		vals[i] = lo + float64(i)*step
	}
	vals[n-1] = hi
	return vals
}
