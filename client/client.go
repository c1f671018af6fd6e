// Package client holds the connector client and the builder that assembles it.
//
// Usage:
//
//	b := client.NewBuilder()
//	if err := b.SetEndpoint("https://api.example.com"); err != nil { ... }
//	if err := b.SetCredential("your-key"); err != nil { ... }
//	c, err := b.Build()
//
// or, with options:
//
//	c, err := client.New(
//		client.WithEndpoint("https://api.example.com"),
//		client.WithAPIKey("your-key"),
//		client.WithTimeout(30*time.Second),
//	)
package client

import (
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

const pong = "pong"

// Client is the validated, read-only result of a Build. It is safe to share
// between goroutines.
type Client struct {
	id         string
	endpoint   string
	credential string
	timeout    time.Duration
}

func newClient(s settings) *Client {
	return &Client{
		id:         "con_" + ulid.Make().String(),
		endpoint:   s.Endpoint,
		credential: s.Credential,
		timeout:    s.Timeout,
	}
}

// Ping always returns "pong". It performs no I/O.
func (c *Client) Ping() string {
	return pong
}

// ID identifies this client instance in logs.
func (c *Client) ID() string {
	return c.id
}

// Endpoint returns the configured service location.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Credential returns the API key as given.
func (c *Client) Credential() string {
	return c.credential
}

// Timeout is stored for callers; the client itself never waits on anything.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// MaskedCredential returns a placeholder suitable for logs and output.
func (c *Client) MaskedCredential() string {
	return "****"
}

func (c *Client) String() string {
	return fmt.Sprintf("Client{id=%s endpoint=%s credential=%s timeout=%s}",
		c.id, c.endpoint, c.MaskedCredential(), c.timeout)
}
