package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rgehrsitz/finhealth/internal/advisor"
	"github.com/rgehrsitz/finhealth/internal/calculation"
	"github.com/rgehrsitz/finhealth/internal/compare"
	"github.com/rgehrsitz/finhealth/internal/config"
	"github.com/rgehrsitz/finhealth/internal/domain"
	"github.com/rgehrsitz/finhealth/internal/logging"
	"github.com/rgehrsitz/finhealth/internal/output"
	"github.com/rgehrsitz/finhealth/internal/transform"
	"github.com/rs/zerolog"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	evaluator *calculation.HealthEvaluator
	compare   *compare.CompareEngine
	advisor   advisor.Advisor
	parser    *config.InputParser

	templates  *transform.TemplateRegistry
	transforms *transform.TransformRegistry
}

func NewHandler(evaluator *calculation.HealthEvaluator, adv advisor.Advisor) *Handler {
	if evaluator == nil {
		evaluator = calculation.NewHealthEvaluator()
	}
	if adv == nil {
		adv = advisor.Disabled{}
	}
	return &Handler{
		evaluator: evaluator,
		compare:   compare.NewCompareEngine(evaluator),
		advisor:   adv,
		parser:    config.NewInputParser(),

		templates:  transform.CreateBuiltInTemplates(),
		transforms: transform.NewTransformRegistry(),
	}
}

// EvaluateResponse pairs the submitted snapshot with its result
type EvaluateResponse struct {
	Data   domain.FinancialData    `json:"data"`
	Result *domain.FinancialResult `json:"result"`
}

// CompareRequest carries inline profiles and the names to compare.
// WhatIf entries (template names or transform specs) replace With.
type CompareRequest struct {
	Profiles []domain.Profile `json:"profiles"`
	Base     string           `json:"base"`
	With     []string         `json:"with"`
	WhatIf   []string         `json:"whatIf,omitempty"`
}

// ChatRequest carries the snapshot, earlier turns and the new question
type ChatRequest struct {
	Data     domain.FinancialData `json:"data"`
	History  []advisor.Message    `json:"history"`
	Question string               `json:"question"`
}

// ChatResponse is always returned with 200; Fallback marks a canned reply
type ChatResponse struct {
	Reply    string            `json:"reply"`
	Fallback bool              `json:"fallback"`
	History  []advisor.Message `json:"history"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var data domain.FinancialData
	if err := decode(w, r, &data); err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	result := h.evaluator.Evaluate(data)
	writeJSON(w, r, http.StatusOK, EvaluateResponse{Data: data, Result: result})
}

func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}
	formatter := output.GetFormatterByName(format)
	if formatter == nil {
		writeError(w, r, http.StatusBadRequest, fmt.Errorf("unsupported format %q (available: %s)",
			format, strings.Join(output.AvailableFormatterNames(), ", ")))
		return
	}

	var data domain.FinancialData
	if err := decode(w, r, &data); err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	result, bd := h.evaluator.EvaluateWithBreakdown(data)
	report := output.NewReport(r.URL.Query().Get("profile"), data, result)
	if formatter.Name() == "console-verbose" {
		report.WithBreakdown(bd)
	}

	body, err := formatter.Format(report)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, fmt.Errorf("failed to render report: %w", err))
		return
	}

	w.Header().Set("Content-Type", output.ContentType(formatter.Name()))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to write report")
	}
}

func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	cfg := &domain.Configuration{Profiles: req.Profiles}
	if err := h.parser.ValidateConfiguration(cfg); err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	var set *compare.ComparisonSet
	var err error
	if len(req.WhatIf) > 0 {
		templates, rerr := transform.Resolve(h.templates, h.transforms, req.WhatIf)
		if rerr != nil {
			writeError(w, r, http.StatusBadRequest, rerr)
			return
		}
		set, err = h.compare.CompareWhatIf(r.Context(), cfg, req.Base, templates)
	} else {
		set, err = h.compare.Compare(r.Context(), cfg, req.Base, req.With)
	}
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, r, http.StatusOK, set)
}

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		writeError(w, r, http.StatusBadRequest, errors.New("question is required"))
		return
	}

	logger := zerolog.Ctx(r.Context())
	result := h.evaluator.Evaluate(req.Data)

	session := advisor.RestoreSession(h.advisor, req.Data, result, req.History)
	session.SetLogger(logging.NewAdapter(*logger))

	reply, err := session.Ask(r.Context(), req.Question)
	writeJSON(w, r, http.StatusOK, ChatResponse{
		Reply:    reply,
		Fallback: err != nil,
		History:  session.History(),
	})
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	logger := zerolog.Ctx(r.Context())
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Msg("request failed")
	} else {
		logger.Debug().Err(err).Msg("bad request")
	}
	writeJSON(w, r, status, errorResponse{Error: err.Error()})
}
