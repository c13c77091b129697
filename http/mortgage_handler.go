package http

import (
	"encoding/json"
	"net/http"
	"time"

	"mortgage-engine/domain"
	"mortgage-engine/metrics"
	"mortgage-engine/service"
)

type MortgageHandler struct {
	service *service.AmortizationService
	metrics *metrics.Metrics
}

func NewMortgageHandler(service *service.AmortizationService, m *metrics.Metrics) *MortgageHandler {
	return &MortgageHandler{service: service, metrics: m}
}

func (h *MortgageHandler) CalculateSchedule(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.LoanInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	start := time.Now()
	result, err := h.service.Calculate(r.Context(), input)
	if h.metrics != nil {
		h.metrics.CalculationDuration.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		if h.metrics != nil {
			h.metrics.CalculationsTotal.WithLabelValues("error").Inc()
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if h.metrics != nil {
		h.metrics.CalculationsTotal.WithLabelValues("ok").Inc()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
