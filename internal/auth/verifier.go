// Package auth models delegated identity verification. The backend
// never verifies credentials itself; it trusts an external identity
// provider and only needs a way to turn a token into a user id.
package auth

import (
	"context"
	"errors"
	"strings"
)

// ErrInvalidToken is returned when a token cannot be resolved to a
// user identity.
var ErrInvalidToken = errors.New("invalid identity token")

// Verifier resolves an identity-provider token to an opaque user id.
type Verifier interface {
	Verify(ctx context.Context, token string) (userID string, err error)
}

// Trusted treats the token itself as the verified user id. This mirrors
// a deployment where verification happens at the edge and the backend
// receives an already-authenticated identifier.
type Trusted struct{}

func NewTrusted() Trusted { return Trusted{} }

func (Trusted) Verify(_ context.Context, token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrInvalidToken
	}
	return token, nil
}
