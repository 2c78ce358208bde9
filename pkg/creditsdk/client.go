package creditsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a typed client for the credits service. Token holds a Bearer JWT
// for user-scoped calls; ServiceKey, when set, authenticates admin calls as a
// trusted backend instead.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	Token      string
	ServiceKey string
}

// NewClient creates a credits service client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// WithToken returns a shallow copy using the given Bearer token.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.Token = token
	return &clone
}

// Consume spends credits for the authenticated user.
func (c *Client) Consume(ctx context.Context, req ConsumeRequest) (ConsumeResponse, error) {
	var resp ConsumeResponse
	err := c.do(ctx, http.MethodPost, "/v1/credits/consume", req, &resp)
	return resp, err
}

// Balance returns the authenticated user's spendable credit total.
func (c *Client) Balance(ctx context.Context) (BalanceResponse, error) {
	var resp BalanceResponse
	err := c.do(ctx, http.MethodGet, "/v1/credits/balance", nil, &resp)
	return resp, err
}

// DailyLimit returns the authenticated user's standing against their cap.
func (c *Client) DailyLimit(ctx context.Context) (DailyLimitResponse, error) {
	var resp DailyLimitResponse
	err := c.do(ctx, http.MethodGet, "/v1/credits/limit", nil, &resp)
	return resp, err
}

// AddCredits issues credits to a user. Requires admin scope or a service key.
func (c *Client) AddCredits(ctx context.Context, req AddCreditsRequest) (AddCreditsResponse, error) {
	var resp AddCreditsResponse
	err := c.do(ctx, http.MethodPost, "/v1/admin/credits", req, &resp)
	return resp, err
}

// RegisterUser records a platform account with the engine. Admin only.
func (c *Client) RegisterUser(ctx context.Context, req RegisterUserRequest) (UserResponse, error) {
	var resp UserResponse
	err := c.do(ctx, http.MethodPost, "/v1/admin/users", req, &resp)
	return resp, err
}

// CreateInvite mints a new invite code. Admin only.
func (c *Client) CreateInvite(ctx context.Context, req CreateInviteRequest) (InviteCodeResponse, error) {
	var resp InviteCodeResponse
	err := c.do(ctx, http.MethodPost, "/v1/invites", req, &resp)
	return resp, err
}

// ListInvites returns every invite code, newest first. Admin only.
func (c *Client) ListInvites(ctx context.Context) (ListInvitesResponse, error) {
	var resp ListInvitesResponse
	err := c.do(ctx, http.MethodGet, "/v1/invites", nil, &resp)
	return resp, err
}

// InviteAnalytics returns one code's redemption summary. Admin only.
func (c *Client) InviteAnalytics(ctx context.Context, code string) (InviteAnalyticsResponse, error) {
	var resp InviteAnalyticsResponse
	err := c.do(ctx, http.MethodGet, "/v1/invites/"+url.PathEscape(code)+"/analytics", nil, &resp)
	return resp, err
}

// DeactivateInvite turns a code off. Admin only.
func (c *Client) DeactivateInvite(ctx context.Context, code string) error {
	return c.do(ctx, http.MethodPost, "/v1/invites/"+url.PathEscape(code)+"/deactivate", nil, nil)
}

// ValidateInvite checks a code for the authenticated user without redeeming.
func (c *Client) ValidateInvite(ctx context.Context, code string) (ValidateInviteResponse, error) {
	var resp ValidateInviteResponse
	err := c.do(ctx, http.MethodPost, "/v1/invites/validate", ValidateInviteRequest{Code: code}, &resp)
	return resp, err
}

// RedeemInvite exchanges a code for its credit grant.
func (c *Client) RedeemInvite(ctx context.Context, code string) (RedeemInviteResponse, error) {
	var resp RedeemInviteResponse
	err := c.do(ctx, http.MethodPost, "/v1/invites/redeem", RedeemInviteRequest{Code: code}, &resp)
	return resp, err
}

// Livez reports whether the service process is up.
func (c *Client) Livez(ctx context.Context) (HealthResponse, error) {
	var resp HealthResponse
	err := c.do(ctx, http.MethodGet, "/livez", nil, &resp)
	return resp, err
}

// Readyz reports whether the service can reach its database.
func (c *Client) Readyz(ctx context.Context) (HealthResponse, error) {
	var resp HealthResponse
	err := c.do(ctx, http.MethodGet, "/readyz", nil, &resp)
	return resp, err
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.ServiceKey != "" {
		req.Header.Set("X-Service-Key", c.ServiceKey)
	} else if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Code: CodeDatabaseError}
		var errResp ErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errResp); decodeErr == nil && errResp.Error != "" {
			apiErr.Code = errResp.Error
			apiErr.Description = errResp.ErrorDescription
		} else if resp.StatusCode == http.StatusUnauthorized {
			apiErr.Code = CodeUnauthorized
		} else if resp.StatusCode == http.StatusForbidden {
			apiErr.Code = CodeAdminRequired
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
