package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"QuantDesk/internal/model"
	"QuantDesk/internal/pricing"
	"QuantDesk/internal/provider"
)

type errorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps failures onto the endpoint contract: 400 for client-side
// invalid input (including unknown symbols), 500 for upstream fetch failure.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	kind := model.KindOf(err)
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, provider.ErrUnavailable):
		status = http.StatusInternalServerError
	case kind == model.KindUnknown:
		status = http.StatusInternalServerError
	}
	if status == http.StatusInternalServerError {
		s.log.Error().Err(err).Msg("request failed")
	}
	writeJSON(w, status, errorBody{Error: err.Error(), Kind: kind.String()})
}

type statsRequest struct {
	Symbol       string `json:"symbol"`
	PeriodInDays int    `json:"period_in_days"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	var req statsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "malformed request body"})
		return
	}
	if req.Symbol == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "symbol is required"})
		return
	}
	if req.PeriodInDays < 0 {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "period_in_days must be non-negative"})
		return
	}

	stats, err := s.svc.AssetStatistics(r.Context(), req.Symbol, req.PeriodInDays)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

type optionRequest struct {
	Spot       float64 `json:"spot"`
	Strike     float64 `json:"strike"`
	Maturity   float64 `json:"maturity"`
	RiskFree   float64 `json:"risk_free"`
	Volatility float64 `json:"volatility"`
}

func (r optionRequest) params(t model.OptionType) model.OptionParameters {
	return model.OptionParameters{
		Spot:       r.Spot,
		Strike:     r.Strike,
		Maturity:   r.Maturity,
		RiskFree:   r.RiskFree,
		Volatility: r.Volatility,
		Type:       t,
	}
}

type optionResponse struct {
	Call float64 `json:"call"`
	Put  float64 `json:"put"`
}

func (s *Server) handleOptionPrice(w http.ResponseWriter, r *http.Request) {
	var req optionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "malformed request body"})
		return
	}

	call, err := pricing.Price(req.params(model.Call))
	if err != nil {
		s.writeError(w, err)
		return
	}
	put, err := pricing.Price(req.params(model.Put))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, optionResponse{Call: call, Put: put})
}

type surfaceRequest struct {
	optionRequest
	MinSpot  float64 `json:"min_spot"`
	MaxSpot  float64 `json:"max_spot"`
	MinSigma float64 `json:"min_sigma"`
	MaxSigma float64 `json:"max_sigma"`
	GridSize int     `json:"grid_size"`
}

func (s *Server) handleOptionSurface(w http.ResponseWriter, r *http.Request) {
	var req surfaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "malformed request body"})
		return
	}
	gridSize := req.GridSize
	if gridSize == 0 {
		gridSize = s.gridSize
	}

	grids, err := pricing.Surface(req.params(model.Call), req.MinSpot, req.MaxSpot, req.MinSigma, req.MaxSigma, gridSize)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, grids)
}

type portfolioRequest struct {
	Holdings     []model.Holding `json:"holdings"`
	PeriodInDays int             `json:"period_in_days"`
}

func (s *Server) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	var req portfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "malformed request body"})
		return
	}

	metrics, err := s.svc.PortfolioMetrics(r.Context(), req.Holdings, req.PeriodInDays)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, metrics)
}
