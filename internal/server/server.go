// Package server hosts the web form and the JSON API it recomputes
// schedules through. Every change in the form re-posts the full plan and the
// prior table is replaced wholesale; nothing is persisted between requests.
package server

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/avelis/paydown/internal/config"
	"github.com/avelis/paydown/internal/schedule"
	"github.com/avelis/paydown/pkg/constants"
	"github.com/avelis/paydown/pkg/datetime"
	"github.com/avelis/paydown/pkg/format"
	"github.com/avelis/paydown/pkg/output"
	"github.com/avelis/paydown/pkg/sanitize"
	"github.com/avelis/paydown/pkg/validation"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed static
var staticFiles embed.FS

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the web form and the
// schedule API.
func NewHandler(logger *zap.Logger, maxBodySize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxBodySize: maxBodySize, version: trimmedVersion}

	r := mux.NewRouter()

	// Schedule recomputation endpoint for form-driven updates
	r.HandleFunc("/api/schedule", h.handleSchedule).Methods(http.MethodPost)

	// Plan serialization endpoint for form downloads
	r.HandleFunc("/api/schedule/export", h.handleExport).Methods(http.MethodPost)

	// Version endpoint for form metadata
	r.HandleFunc("/api/version", h.handleVersion).Methods(http.MethodGet)

	// Static assets (the form itself). Exact paths only; wrong-method API
	// requests return 405 rather than falling through to the file server.
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	fileServer := http.FileServer(http.FS(sub))
	r.Handle("/", fileServer).Methods(http.MethodGet)
	r.Handle("/index.html", fileServer).Methods(http.MethodGet)

	return r
}

// planPayload mirrors the form fields. Scalar fields accept either JSON
// numbers or the raw text of the input element; raw text is sanitized
// server-side the same way the form sanitizes it client-side.
type planPayload struct {
	Principal         interface{}   `json:"principal"`
	AnnualRatePercent interface{}   `json:"annualRatePercent"`
	Months            interface{}   `json:"months"`
	DefaultPayment    interface{}   `json:"defaultPayment"`
	Payments          []interface{} `json:"payments"`
	StartDate         string        `json:"startDate"`
}

type scheduleRequest struct {
	Plan planPayload `json:"plan"`
}

type scheduleResponse struct {
	Rows          []scheduleRow `json:"rows"`
	TotalInterest float64       `json:"totalInterest"`
	PayoffMonth   *int          `json:"payoffMonth,omitempty"`
	RemainingDebt float64       `json:"remainingDebt"`
	Summary       string        `json:"summary"`
	CSV           string        `json:"csv"`
	Warnings      []string      `json:"warnings,omitempty"`
	Duration      string        `json:"duration"`
}

type scheduleRow struct {
	Month          int        `json:"month"`
	Label          string     `json:"label,omitempty"`
	StartDebt      float64    `json:"startDebt"`
	Interest       float64    `json:"interest"`
	PaymentPlanned float64    `json:"paymentPlanned"`
	PaymentApplied float64    `json:"paymentApplied"`
	EndDebt        float64    `json:"endDebt"`
	Display        rowDisplay `json:"display"`
}

type rowDisplay struct {
	StartDebt      string `json:"startDebt"`
	Interest       string `json:"interest"`
	PaymentPlanned string `json:"paymentPlanned"`
	PaymentApplied string `json:"paymentApplied"`
	EndDebt        string `json:"endDebt"`
}

func (h *handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	plan, ok := h.decodePlan(w, r, "server.handleSchedule")
	if !ok {
		return
	}

	warnings := validation.PlanWarnings(plan.Principal, plan.AnnualRatePercent, plan.Months, plan.Payments, plan.StartDate)
	result := plan.Parameters().Compute(h.logger, plan.NormalizedPayments())
	labels := datetime.MonthLabels(plan.StartDate, len(result.Rows))

	elapsed := time.Since(start)

	response := scheduleResponse{
		Rows:          buildRows(result, labels),
		TotalInterest: result.TotalInterest,
		RemainingDebt: result.RemainingDebt,
		Summary:       output.Summary(result, labels),
		CSV:           output.CsvString(result, labels),
		Warnings:      warnings,
		Duration:      elapsed.String(),
	}
	if result.PaidOff() {
		payoff := result.PayoffMonth
		response.PayoffMonth = &payoff
	}

	h.logger.Info("schedule computed",
		zap.String("op", "server.handleSchedule"),
		zap.Int("rows", len(response.Rows)),
		zap.Bool("paidOff", result.PaidOff()),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleExport(w http.ResponseWriter, r *http.Request) {
	plan, ok := h.decodePlan(w, r, "server.handleExport")
	if !ok {
		return
	}

	// Export the normalized plan so the downloaded file is a complete,
	// month-for-month config rather than a sparse one.
	exported := *plan
	exported.Payments = plan.NormalizedPayments()
	exported.Months = plan.MonthCount()

	yamlBytes, err := yaml.Marshal(config.Configuration{Plan: exported})
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode plan: %v", err), "server.handleExport")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"planYaml": string(yamlBytes),
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// decodePlan reads the request body into a config.Plan, coercing raw form
// strings through the sanitize package. A false return means the response
// has already been written.
func (h *handler) decodePlan(w http.ResponseWriter, r *http.Request, op string) (*config.Plan, bool) {
	if h.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}

	var payload scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodySize), op)
			return nil, false
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode plan: %v", err), op)
		return nil, false
	}

	plan := &config.Plan{
		Principal:         coerceAmount(payload.Plan.Principal),
		AnnualRatePercent: coercePercent(payload.Plan.AnnualRatePercent),
		Months:            coerceMonths(payload.Plan.Months),
		DefaultPayment:    coerceAmount(payload.Plan.DefaultPayment),
		StartDate:         strings.TrimSpace(payload.Plan.StartDate),
	}
	for _, entry := range payload.Plan.Payments {
		plan.Payments = append(plan.Payments, coerceAmount(entry))
	}
	return plan, true
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("schedule request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

func buildRows(result schedule.Result, labels []string) []scheduleRow {
	rows := make([]scheduleRow, 0, len(result.Rows))
	for _, row := range result.Rows {
		var label string
		if row.Month >= 1 && row.Month <= len(labels) {
			label = labels[row.Month-1]
		}
		rows = append(rows, scheduleRow{
			Month:          row.Month,
			Label:          label,
			StartDebt:      row.StartDebt,
			Interest:       row.Interest,
			PaymentPlanned: row.PaymentPlanned,
			PaymentApplied: row.PaymentApplied,
			EndDebt:        row.EndDebt,
			Display: rowDisplay{
				StartDebt:      format.Currency(row.StartDebt),
				Interest:       format.Currency(row.Interest),
				PaymentPlanned: format.Currency(row.PaymentPlanned),
				PaymentApplied: format.Currency(row.PaymentApplied),
				EndDebt:        format.Currency(row.EndDebt),
			},
		})
	}
	return rows
}

func coerceAmount(value interface{}) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case string:
		return sanitize.Amount(v)
	case json.Number:
		if parsed, err := strconv.ParseFloat(v.String(), 64); err == nil {
			return parsed
		}
	}
	return 0
}

func coercePercent(value interface{}) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case string:
		return sanitize.Percent(v)
	case json.Number:
		if parsed, err := strconv.ParseFloat(v.String(), 64); err == nil {
			return parsed
		}
	}
	return 0
}

func coerceMonths(value interface{}) int {
	switch v := value.(type) {
	case float64:
		return int(v)
	case string:
		return sanitize.MonthCount(v)
	case json.Number:
		if parsed, err := strconv.ParseFloat(v.String(), 64); err == nil {
			return int(parsed)
		}
	}
	return constants.MinMonthCount
}
