package client

import "time"

// Option is a functional option applied to a Builder by New.
type Option func(*Builder) error

// WithEndpoint sets the endpoint.
func WithEndpoint(endpoint string) Option {
	return func(b *Builder) error {
		return b.SetEndpoint(endpoint)
	}
}

// WithCredential sets the credential.
func WithCredential(credential string) Option {
	return func(b *Builder) error {
		return b.SetCredential(credential)
	}
}

// WithAPIKey is an alias for WithCredential.
func WithAPIKey(apiKey string) Option {
	return WithCredential(apiKey)
}

// WithTimeout sets the timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(b *Builder) error {
		return b.SetTimeout(timeout)
	}
}

// New applies opts in order to a fresh Builder and builds it. The first
// failing option stops construction.
func New(opts ...Option) (*Client, error) {
	b := NewBuilder()
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}
	return b.Build()
}
