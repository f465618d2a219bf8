package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"petrocalc/domain"
)

func newAccountBackend(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/user/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(domain.UserProfile{Username: "driller", Email: "d@example.com", Role: "engineer"})
	})
	mux.HandleFunc("/api/report/", func(w http.ResponseWriter, r *http.Request) {
		var c domain.Complaint
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("/api/settings/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		var u domain.SettingsUpdate
		if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if u.Username == "taken" {
			http.Error(w, "username already in use", http.StatusConflict)
			return
		}
		json.NewEncoder(w).Encode(domain.UserProfile{Username: u.Username, Email: "d@example.com", Role: "engineer"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestAccountService_CurrentUser(t *testing.T) {
	srv := newAccountBackend(t)
	svc := NewAccountService(srv.URL+"/", 5*time.Second)

	profile, err := svc.CurrentUser(context.Background(), "good-token")
	require.NoError(t, err)
	require.Equal(t, "driller", profile.Username)
	require.Equal(t, "engineer", profile.Role)

	_, err = svc.CurrentUser(context.Background(), "bad-token")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestAccountService_SubmitComplaint(t *testing.T) {
	srv := newAccountBackend(t)
	svc := NewAccountService(srv.URL, 5*time.Second)

	require.NoError(t, svc.SubmitComplaint(context.Background(), "good-token", domain.Complaint{Complaint: "pump chart is wrong"}))
	require.ErrorIs(t, svc.SubmitComplaint(context.Background(), "good-token", domain.Complaint{Complaint: "   "}), ErrEmptyComplaint)
}

func TestAccountService_UpdateSettings(t *testing.T) {
	srv := newAccountBackend(t)
	svc := NewAccountService(srv.URL, 5*time.Second)

	profile, err := svc.UpdateSettings(context.Background(), "good-token", domain.SettingsUpdate{Username: "mudlogger", Password: "secret"})
	require.NoError(t, err)
	require.Equal(t, "mudlogger", profile.Username)

	_, err = svc.UpdateSettings(context.Background(), "good-token", domain.SettingsUpdate{Username: ""})
	require.ErrorIs(t, err, ErrEmptyUsername)

	_, err = svc.UpdateSettings(context.Background(), "good-token", domain.SettingsUpdate{Username: "taken"})
	var upstream *UpstreamError
	require.True(t, errors.As(err, &upstream))
	require.Equal(t, http.StatusConflict, upstream.StatusCode)
	require.Equal(t, "username already in use", upstream.Body)
}

func TestAccountService_Disabled(t *testing.T) {
	svc := NewAccountService("", time.Second)
	require.False(t, svc.Enabled())

	_, err := svc.CurrentUser(context.Background(), "any")
	require.ErrorIs(t, err, ErrAccountServiceDisabled)
}
