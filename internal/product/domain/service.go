package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

type Service interface {
	// Create persists a product sent by SAP. Classification resolution
	// happens before the write; the product row, its tax set and any
	// initial stock adjustment commit in one transaction.
	Create(ctx context.Context, req CreateProductRequest) (CreateProductResult, error)
	GetByIDSecundarioSAP(ctx context.Context, idSecundarioSAP string) (Product, []int64, error)
}

// CreateProductRequest carries the SAP payload. Which optional fields a
// given SAP export supplies varies per integration version; absent fields
// keep their documented defaults.
type CreateProductRequest struct {
	Name            string
	IDSecundarioSAP string

	SaleOK          *bool
	PurchaseOK      *bool
	Type            *string
	InvoicePolicy   *string
	ListPrice       *decimal.Decimal
	StandardPrice   *decimal.Decimal
	UomID           *int64
	TaxIDs          []int64
	CategID         *int64
	DefaultCode     *string
	UnspscCodeSAT   string
	IsStorable      *bool
	QtyAvailable    *decimal.Decimal
	PronosticadoSAP *decimal.Decimal
	Metadata        map[string]any
}

type CreateProductResult struct {
	Product      Product
	AdjustmentID string
}

// NotFoundError reports a missing product by its SAP identifier.
type NotFoundError struct {
	IDSecundarioSAP string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Product with id_secundario_sap %s not found", e.IDSecundarioSAP)
}

var (
	ErrInvalidName            = errors.New("invalid_name")
	ErrInvalidIDSecundarioSAP = errors.New("invalid_id_secundario_sap")
)
