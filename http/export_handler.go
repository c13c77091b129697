package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"mortgage-engine/domain"
	"mortgage-engine/export"
	"mortgage-engine/metrics"
	"mortgage-engine/service"
)

type ExportHandler struct {
	service *service.AmortizationService
	metrics *metrics.Metrics
}

func NewExportHandler(service *service.AmortizationService, m *metrics.Metrics) *ExportHandler {
	return &ExportHandler{service: service, metrics: m}
}

// ExportSchedule computes a schedule and returns it as a downloadable
// file. The format query parameter selects csv (default), xlsx or pdf.
func (h *ExportHandler) ExportSchedule(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}

	var input domain.LoanInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Calculate(r.Context(), input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var data []byte
	var contentType string
	switch format {
	case "csv":
		data, err = export.RenderCSV(result)
		contentType = "text/csv"
	case "xlsx":
		data, err = export.BuildScheduleXLSX(input, result)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case "pdf":
		data, err = export.BuildSchedulePDF(input, result)
		contentType = "application/pdf"
	default:
		http.Error(w, fmt.Sprintf("unsupported format %q", format), http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	if h.metrics != nil {
		h.metrics.ExportsTotal.WithLabelValues(format).Inc()
	}

	filename := fmt.Sprintf("mortgage_schedule_%s.%s", time.Now().Format("20060102"), format)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(data)
}
