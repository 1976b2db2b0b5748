package domain

import (
	"context"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultLocationName is the fixed stock location initial quantities post to.
const DefaultLocationName = "WH/Stock"

type Service interface {
	// AdjustInitial posts an initial on-hand quantity for a freshly created
	// product. It runs on the caller's transaction so the product create and
	// the adjustment commit or roll back together.
	AdjustInitial(ctx context.Context, tx *gorm.DB, productID snowflake.ID, qty decimal.Decimal) (snowflake.ID, error)
}

// LocationNotFoundError reports a missing stock location.
type LocationNotFoundError struct {
	Name string
}

func (e *LocationNotFoundError) Error() string {
	return fmt.Sprintf("Stock location %s not found", e.Name)
}
