// Package identity is the boundary to the managed identity provider. It
// forwards credentials and reports failures as classified *Error values; it
// never inspects passwords or tokens.
package identity

import "context"

// Credentials as submitted by the client. Email doubles as the username.
type Credentials struct {
	Email    string
	Password string
}

// Tokens is the bearer token bundle returned by a successful authentication.
// Any field may be nil when the provider omits it.
type Tokens struct {
	IDToken      *string
	AccessToken  *string
	RefreshToken *string
}

// Provider is the capability the handlers depend on. Every non-nil error
// returned by an implementation is an *Error.
type Provider interface {
	SignUp(ctx context.Context, creds Credentials) error
	Authenticate(ctx context.Context, creds Credentials) (*Tokens, error)
}
