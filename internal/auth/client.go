package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/HamzaHajMtir1/Elite-Shop/internal/service"

	"github.com/google/uuid"
)

// Client wraps the external auth service's HTTP API. The storefront does not
// store credentials itself; it delegates login and receives a signed access
// token plus the user id.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	UserID string `json:"user_id"`
	Tokens struct {
		AccessToken string `json:"access_token"`
	} `json:"tokens"`
}

func (c *Client) Authenticate(ctx context.Context, email, password string) (uuid.UUID, string, error) {
	body, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return uuid.Nil, "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", bytes.NewReader(body))
	if err != nil {
		return uuid.Nil, "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return uuid.Nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return uuid.Nil, "", service.ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return uuid.Nil, "", fmt.Errorf("auth service returned %d", resp.StatusCode)
	}

	var out loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return uuid.Nil, "", err
	}
	uid, err := uuid.Parse(out.UserID)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("auth service returned bad user id: %w", err)
	}
	return uid, out.Tokens.AccessToken, nil
}
