package domain

import (
	"context"
	"errors"
	"fmt"
)

type Service interface {
	Create(ctx context.Context, req CreateContactRequest) (Contact, error)
	// Update patches an existing contact located by its SAP secondary
	// identifier. Only supplied fields are written; id_secondary itself
	// is never modified.
	Update(ctx context.Context, req UpdateContactRequest) (Contact, error)
	GetByIDSecondary(ctx context.Context, idSecondary int64) (Contact, error)
}

type CreateContactRequest struct {
	IDSecondary int64
	Name        string
	Email       string
	Phone       string

	Active          *bool
	CompanyType     *string
	ParentID        *int64
	Street          *string
	Street2         *string
	CityID          *int64
	City            *string
	StateID         *int64
	Zip             *string
	CountryID       *int64
	VAT             *string
	EdiUsage        *string
	FiscalRegime    *string
	PaymentMethodID *int64
	PaymentTermID   *int64
	PricelistID     *int64
	SalespersonID   *int64
	Lang            *string
	Ref             *string
	Metadata        map[string]any
}

type UpdateContactRequest struct {
	IDSecondary int64
	Name        string

	Email           *string
	Phone           *string
	Active          *bool
	CompanyType     *string
	ParentID        *int64
	Street          *string
	Street2         *string
	CityID          *int64
	City            *string
	StateID         *int64
	Zip             *string
	CountryID       *int64
	VAT             *string
	EdiUsage        *string
	FiscalRegime    *string
	PaymentMethodID *int64
	PaymentTermID   *int64
	PricelistID     *int64
	SalespersonID   *int64
	Lang            *string
	Ref             *string
	Metadata        map[string]any
}

// NotFoundError reports a missing contact by its SAP identifier.
type NotFoundError struct {
	IDSecondary int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Contact with id_secondary %d not found", e.IDSecondary)
}

var (
	ErrInvalidName        = errors.New("invalid_name")
	ErrInvalidEmail       = errors.New("invalid_email")
	ErrInvalidPhone       = errors.New("invalid_phone")
	ErrInvalidIDSecondary = errors.New("invalid_id_secondary")
)
