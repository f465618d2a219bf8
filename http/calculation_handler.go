package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"petrocalc/service"
)

// parameterValues accepts parameter values as JSON strings or numbers and
// keeps them as text, since parsing is the evaluator's job.
type parameterValues map[string]string

func (p *parameterValues) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(parameterValues, len(raw))
	for key, value := range raw {
		var s string
		if err := json.Unmarshal(value, &s); err == nil {
			out[key] = s
			continue
		}
		var n json.Number
		if err := json.Unmarshal(value, &n); err == nil {
			out[key] = n.String()
			continue
		}
		return fmt.Errorf("parameter %q must be a string or a number", key)
	}
	*p = out
	return nil
}

type evaluateRequest struct {
	Parameters parameterValues `json:"parameters"`
}

type calculationList struct {
	Count        int `json:"count"`
	Calculations any `json:"calculations"`
}

type CalculationHandler struct {
	service *service.CalculationService
}

func NewCalculationHandler(service *service.CalculationService) *CalculationHandler {
	return &CalculationHandler{service: service}
}

func (h *CalculationHandler) ListCalculations(w http.ResponseWriter, r *http.Request) {
	infos := h.service.List()
	writeJSON(w, http.StatusOK, calculationList{Count: len(infos), Calculations: infos})
}

func (h *CalculationHandler) DescribeCalculation(w http.ResponseWriter, r *http.Request) {
	name := calculationName(r)

	info, err := h.service.Describe(name)
	if err != nil {
		writeCalculationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (h *CalculationHandler) EvaluateCalculation(w http.ResponseWriter, r *http.Request) {
	if !requireJSON(w, r) {
		return
	}

	var input evaluateRequest
	if !decodeJSON(w, r, &input, true) {
		return
	}

	strict := false
	if v := r.URL.Query().Get("strict"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "strict must be a boolean")
			return
		}
		strict = parsed
	}

	name := calculationName(r)
	evaluate := h.service.Evaluate
	if strict {
		evaluate = h.service.EvaluateStrict
	}

	result, err := evaluate(r.Context(), name, input.Parameters)
	if err != nil {
		writeCalculationError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func calculationName(r *http.Request) string {
	name := chi.URLParam(r, "name")
	if unescaped, err := url.PathUnescape(name); err == nil {
		return unescaped
	}
	return name
}

func writeCalculationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUnknownCalculation):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrMissingParameter),
		errors.Is(err, service.ErrMalformedParameter),
		errors.Is(err, service.ErrNonFiniteResult):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		log.Printf("Error evaluating calculation: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
