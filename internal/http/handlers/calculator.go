// Package handlers exposes the HTTP surface over the core services.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mrhealth/nutrition-platform/internal/health"
	"github.com/mrhealth/nutrition-platform/pkg/logging"
)

// CalculatorHandler serves metric calculations without persisting anything.
type CalculatorHandler struct {
	logger *logging.Logger
}

// NewCalculatorHandler creates a calculator handler.
func NewCalculatorHandler(logger *logging.Logger) *CalculatorHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &CalculatorHandler{logger: logger}
}

// CalculateResponse carries the derived metrics plus display-only advisory
// bands recomputed from them.
type CalculateResponse struct {
	health.Metrics
	BMIBand     string `json:"bmiBand,omitempty"`
	BMRBand     string `json:"bmrBand,omitempty"`
	BodyFatBand string `json:"bodyFatBand,omitempty"`
}

// Calculate handles POST /calculate. Non-positive inputs leave the affected
// metrics undefined rather than erroring.
func (h *CalculatorHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var m health.Measurement
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		h.logger.Error("failed to decode measurement", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	metrics := health.Compute(m)
	resp := CalculateResponse{Metrics: metrics}
	if metrics.BMI != nil {
		resp.BMIBand = health.BMIBand(*metrics.BMI)
	}
	if metrics.BMR != nil {
		resp.BMRBand = health.BMRBand(*metrics.BMR, m.Gender)
	}
	if metrics.BodyFatPct != nil {
		resp.BodyFatBand = health.BodyFatBand(*metrics.BodyFatPct, m.Gender)
	}

	writeJSON(w, http.StatusOK, resp)
}
