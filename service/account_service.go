package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"petrocalc/domain"
)

var (
	ErrAccountServiceDisabled = errors.New("account service not configured")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrEmptyComplaint         = errors.New("complaint cannot be empty")
	ErrEmptyUsername          = errors.New("username cannot be empty")
)

// UpstreamError is returned when the account backend answers with an
// unexpected status.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("account service returned %d: %s", e.StatusCode, e.Body)
}

// maxUpstreamErrorBody bounds how much of an error body is kept.
const maxUpstreamErrorBody = 512

// AccountService talks to the dashboard backend that owns users, reports and
// settings. It forwards the caller's bearer token unchanged.
type AccountService struct {
	baseURL    string
	enabled    bool
	httpClient *http.Client
}

func NewAccountService(baseURL string, timeout time.Duration) *AccountService {
	return &AccountService{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		enabled: baseURL != "",
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (s *AccountService) Enabled() bool {
	return s.enabled
}

// CurrentUser fetches the profile of the token's owner.
func (s *AccountService) CurrentUser(ctx context.Context, token string) (domain.UserProfile, error) {
	var profile domain.UserProfile
	if err := s.do(ctx, http.MethodGet, "/api/user/", token, nil, &profile); err != nil {
		return domain.UserProfile{}, err
	}
	return profile, nil
}

// SubmitComplaint files a free-text report.
func (s *AccountService) SubmitComplaint(ctx context.Context, token string, complaint domain.Complaint) error {
	if strings.TrimSpace(complaint.Complaint) == "" {
		return ErrEmptyComplaint
	}
	return s.do(ctx, http.MethodPost, "/api/report/", token, complaint, nil)
}

// UpdateSettings changes username and password and returns the updated profile.
func (s *AccountService) UpdateSettings(
	ctx context.Context,
	token string,
	update domain.SettingsUpdate,
) (domain.UserProfile, error) {
	if strings.TrimSpace(update.Username) == "" {
		return domain.UserProfile{}, ErrEmptyUsername
	}
	var profile domain.UserProfile
	if err := s.do(ctx, http.MethodPut, "/api/settings/", token, update, &profile); err != nil {
		return domain.UserProfile{}, err
	}
	return profile, nil
}

func (s *AccountService) do(
	ctx context.Context,
	method, path, token string,
	body any,
	out any,
) error {
	if !s.enabled {
		return ErrAccountServiceDisabled
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error marshaling request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error calling account service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxUpstreamErrorBody))
		return &UpstreamError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error decoding account response: %w", err)
	}
	return nil
}
