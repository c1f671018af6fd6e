package client

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultTimeout is used when SetTimeout is never called.
const DefaultTimeout = 10 * time.Second

var validate = validator.New(validator.WithRequiredStructEnabled())

// settings is the staged state validated by Build.
type settings struct {
	Endpoint   string        `validate:"required"`
	Credential string        `validate:"required"`
	Timeout    time.Duration `validate:"gt=0"`
}

// Builder accumulates client settings. It is meant for a single owner during
// setup and is not safe for concurrent use. The zero value is ready to use and
// builds with DefaultTimeout.
type Builder struct {
	s     settings
	built bool
}

// NewBuilder returns a builder with the default timeout.
func NewBuilder() *Builder {
	return &Builder{
		s: settings{Timeout: DefaultTimeout},
	}
}

// SetEndpoint sets the remote service location. The value is not parsed.
func (b *Builder) SetEndpoint(endpoint string) error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	if endpoint == "" {
		return &FieldError{Field: "endpoint", Err: ErrNullArgument}
	}
	b.s.Endpoint = endpoint
	return nil
}

// SetCredential sets the API key.
func (b *Builder) SetCredential(credential string) error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	if credential == "" {
		return &FieldError{Field: "credential", Err: ErrNullArgument}
	}
	b.s.Credential = credential
	return nil
}

// SetTimeout overrides DefaultTimeout. Zero and negative durations count as absent.
func (b *Builder) SetTimeout(timeout time.Duration) error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	if timeout <= 0 {
		return &FieldError{Field: "timeout", Err: ErrNullArgument}
	}
	b.s.Timeout = timeout
	return nil
}

// Build validates the staged settings and returns an immutable Client.
// A failed Build leaves the builder untouched so the missing fields can be
// supplied and Build called again. A successful Build closes the builder.
func (b *Builder) Build() (*Client, error) {
	if err := b.checkOpen(); err != nil {
		return nil, err
	}

	s := b.s
	if s.Timeout == 0 {
		s.Timeout = DefaultTimeout
	}

	if err := validate.Struct(s); err != nil {
		return nil, invalidStateError(err)
	}

	b.built = true
	return newClient(s), nil
}

func (b *Builder) checkOpen() error {
	if b.built {
		return fmt.Errorf("%w: builder already built", ErrInvalidState)
	}
	return nil
}

func invalidStateError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidState, err)
	}

	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		missing = append(missing, strings.ToLower(fe.Field()))
	}
	return fmt.Errorf("%w: %s required", ErrInvalidState, strings.Join(missing, " and "))
}
