package http

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"petrocalc/domain"
	"petrocalc/service"
)

// AccountHandler relays account requests to the dashboard backend with the
// caller's bearer token.
type AccountHandler struct {
	service *service.AccountService
}

func NewAccountHandler(service *service.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

func (h *AccountHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	token, ok := bearerToken(w, r)
	if !ok {
		return
	}

	profile, err := h.service.CurrentUser(r.Context(), token)
	if err != nil {
		writeAccountError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// SubmitReport forwards a complaint. Reports may be anonymous, so the token
// is passed on only when the caller sent one.
func (h *AccountHandler) SubmitReport(w http.ResponseWriter, r *http.Request) {
	if !requireJSON(w, r) {
		return
	}
	token, _ := parseBearer(r)

	var complaint domain.Complaint
	if !decodeJSON(w, r, &complaint, false) {
		return
	}

	if err := h.service.SubmitComplaint(r.Context(), token, complaint); err != nil {
		writeAccountError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "submitted"})
}

func (h *AccountHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	token, ok := bearerToken(w, r)
	if !ok || !requireJSON(w, r) {
		return
	}

	var update domain.SettingsUpdate
	if !decodeJSON(w, r, &update, false) {
		return
	}

	profile, err := h.service.UpdateSettings(r.Context(), token, update)
	if err != nil {
		writeAccountError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func bearerToken(w http.ResponseWriter, r *http.Request) (string, bool) {
	token, ok := parseBearer(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing bearer token")
	}
	return token, ok
}

func parseBearer(r *http.Request) (string, bool) {
	const prefix = "Bearer "
	header := r.Header.Get("Authorization")
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

func writeAccountError(w http.ResponseWriter, err error) {
	var upstream *service.UpstreamError
	switch {
	case errors.Is(err, service.ErrAccountServiceDisabled):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, service.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrEmptyComplaint), errors.Is(err, service.ErrEmptyUsername):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &upstream):
		log.Printf("Account service error: %v", err)
		writeError(w, http.StatusBadGateway, "account service error")
	default:
		log.Printf("Error calling account service: %v", err)
		writeError(w, http.StatusBadGateway, "account service unavailable")
	}
}
