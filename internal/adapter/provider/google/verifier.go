// Package google verifies Google Sign-In ID tokens.
package google

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/heartmarshall/tringgo-backend/internal/auth"
)

// Overridden in tests.
var tokeninfoURL = "https://oauth2.googleapis.com/tokeninfo"

var validIssuers = map[string]bool{
	"accounts.google.com":         true,
	"https://accounts.google.com": true,
}

// Verifier checks ID tokens against Google's tokeninfo endpoint.
type Verifier struct {
	clientID   string
	httpClient *http.Client
	log        *slog.Logger
}

// NewVerifier creates a verifier that accepts tokens issued for clientID.
func NewVerifier(clientID string, logger *slog.Logger) *Verifier {
	return &Verifier{
		clientID:   clientID,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "google_signin"),
	}
}

type tokeninfoResponse struct {
	Issuer        string `json:"iss"`
	Subject       string `json:"sub"`
	Audience      string `json:"aud"`
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
	Name          string `json:"name"`
	Expiry        string `json:"exp"`
}

// VerifyIDToken returns the identity carried by idToken. Tokens Google
// rejects, tokens for another client and unverified emails all give
// auth.ErrInvalidIdentityToken.
func (v *Verifier) VerifyIDToken(ctx context.Context, idToken string) (*auth.OAuthIdentity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		tokeninfoURL+"?"+url.Values{"id_token": {idToken}}.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("google: build tokeninfo request: %w", err)
	}

	resp, err := v.doWithRetry(ctx, req)
	if err != nil {
		v.log.ErrorContext(ctx, "google tokeninfo failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("google: unavailable: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		return nil, auth.ErrInvalidIdentityToken
	case resp.StatusCode != http.StatusOK:
		v.log.ErrorContext(ctx, "google tokeninfo failed", slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("google: unavailable: status %d", resp.StatusCode)
	}

	var info tokeninfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("google: decode tokeninfo: %w", err)
	}

	if info.Audience != v.clientID || !validIssuers[info.Issuer] || info.Subject == "" {
		v.log.WarnContext(ctx, "google token rejected",
			slog.String("aud", info.Audience), slog.String("iss", info.Issuer))
		return nil, auth.ErrInvalidIdentityToken
	}
	if info.Email == "" || info.EmailVerified != "true" {
		return nil, auth.ErrInvalidIdentityToken
	}

	return &auth.OAuthIdentity{
		ProviderID: info.Subject,
		Email:      info.Email,
		Name:       info.Name,
	}, nil
}

// doWithRetry retries once after 500ms on a network error or a 5xx.
func (v *Verifier) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := v.httpClient.Do(req)
	if err == nil && resp.StatusCode < 500 {
		return resp, nil
	}
	if resp != nil {
		resp.Body.Close()
	}

	select {
	case <-time.After(500 * time.Millisecond):
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return v.httpClient.Do(req)
}
