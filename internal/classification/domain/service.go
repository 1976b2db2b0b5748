package domain

import (
	"context"
	"fmt"

	"github.com/bwmarrin/snowflake"
)

type Resolver interface {
	// Resolve maps an external SAT code to the internal classification row.
	// An empty code resolves to zero with no error; an unknown code is a
	// hard failure, never a silent skip.
	Resolve(ctx context.Context, satCode string) (snowflake.ID, error)
}

// CodeNotFoundError reports a normalized code with no matching reference row.
type CodeNotFoundError struct {
	Code string
}

func (e *CodeNotFoundError) Error() string {
	return fmt.Sprintf("UNSPSC code %s not found in unspsc_codes table", e.Code)
}
