package auth

import "errors"

// ErrInvalidIdentityToken is returned by identity verifiers when the
// provider rejects a token or the token was issued for another client.
var ErrInvalidIdentityToken = errors.New("invalid identity token")

// OAuthIdentity represents user information vouched for by an identity provider.
type OAuthIdentity struct {
	ProviderID string
	Email      string
	Name       string
}
