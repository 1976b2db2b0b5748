package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	// Authenticate checks a key/secret pair against the active credentials.
	Authenticate(ctx context.Context, key, secret string) error
	List(ctx context.Context) ([]Response, error)
	Create(ctx context.Context, req CreateRequest) (*SecretResponse, error)
	Deactivate(ctx context.Context, id string) error
}

// CreateRequest issues a credential. Key and Secret may be supplied by the
// administrator; blank values are generated.
type CreateRequest struct {
	Name   string `json:"name"`
	Notes  string `json:"notes"`
	Key    string `json:"api_key"`
	Secret string `json:"secret_key"`
}

type Response struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SecretResponse carries the pair exactly once, on creation.
type SecretResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Key    string `json:"api_key"`
	Secret string `json:"secret_key"`
}

var (
	ErrMissingCredentials = errors.New("missing_credentials")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidName        = errors.New("invalid_name")
	ErrInvalidID          = errors.New("invalid_id")
	ErrNotFound           = errors.New("not_found")
)
