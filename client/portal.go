// Package client is a programmatic API client for the portal, used by admin
// tooling and batch scripts that talk to a running instance.
package client

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	// roleUpdateMaxRetries is the number of retries after the initial attempt
	roleUpdateMaxRetries = 3
	// roleUpdateRetryDelay is the fixed pause between attempts
	roleUpdateRetryDelay = 1 * time.Second
)

// PortalClient talks to the portal's HTTP API with an admin bearer token
type PortalClient struct {
	http       *resty.Client
	baseURL    string
	retryDelay time.Duration
}

// apiEnvelope mirrors the server's uniform response shape
type apiEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// retryableData is the payload shape of a transient failure
type retryableData struct {
	Retryable bool `json:"retryable"`
}

// New builds a client against the given base URL
func New(baseURL, token string) *PortalClient {
	http := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json")

	return &PortalClient{
		http:       http,
		baseURL:    baseURL,
		retryDelay: roleUpdateRetryDelay,
	}
}

// SetRetryDelay overrides the pause between role-update attempts
func (pc *PortalClient) SetRetryDelay(d time.Duration) {
	pc.retryDelay = d
}

// UpdateMemberRole changes a member's role. Transient failures (the server
// answers with retryable: true) are retried up to 3 times with a fixed
// delay; the final error is returned after the last attempt. Non-retryable
// failures are surfaced immediately.
func (pc *PortalClient) UpdateMemberRole(memberID uint, role string) error {
	var lastErr error

	for attempt := 0; attempt <= roleUpdateMaxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(pc.retryDelay)
		}

		resp, err := pc.http.R().
			SetBody(map[string]string{"role": role}).
			Put(fmt.Sprintf("/admin/members/%d/role", memberID))
		if err != nil {
			lastErr = err
			continue
		}

		var envelope apiEnvelope
		if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
			return fmt.Errorf("invalid response from portal: %w", err)
		}

		if envelope.Status {
			return nil
		}

		lastErr = fmt.Errorf("role update failed: %s", envelope.Message)

		var data retryableData
		if len(envelope.Data) > 0 {
			_ = json.Unmarshal(envelope.Data, &data)
		}
		if !data.Retryable {
			return lastErr
		}
	}

	return lastErr
}

// Member is the subset of member fields the tooling needs
type Member struct {
	ID    uint   `json:"ID"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ListMembers fetches one page of the member list
func (pc *PortalClient) ListMembers(page, limit int) ([]Member, error) {
	resp, err := pc.http.R().
		SetQueryParam("page", fmt.Sprintf("%d", page)).
		SetQueryParam("limit", fmt.Sprintf("%d", limit)).
		Get("/admin/members")
	if err != nil {
		return nil, err
	}

	var envelope apiEnvelope
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("invalid response from portal: %w", err)
	}
	if !envelope.Status {
		return nil, fmt.Errorf("member list failed: %s", envelope.Message)
	}

	var data struct {
		Members []Member `json:"members"`
	}
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		return nil, fmt.Errorf("invalid member list payload: %w", err)
	}

	return data.Members, nil
}
