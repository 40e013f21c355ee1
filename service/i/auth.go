// Package i declares the interfaces the service layer is wired through.
package i

import (
	"time"

	"github.com/beka-birhanu/mazegen-api/domain"
)

// Authenticator manages account registration and sign-in.
type Authenticator interface {
	// Register creates a new account from a username and plain password.
	Register(username, password string) error

	// SignIn verifies credentials and returns the user plus a signed token.
	SignIn(username, password string) (*domain.User, string, error)
}

// Tokenizer generates and decodes signed tokens.
type Tokenizer interface {
	// Generate creates a token carrying the given claims, valid for expTime.
	Generate(claims map[string]interface{}, expTime time.Duration) (string, error)

	// Decode validates a token and returns its claims.
	Decode(token string) (map[string]interface{}, error)
}
