package queries

import (
	"errors"

	"trattoria/internal/core/domain/model/kernel"
	"trattoria/internal/pkg/guard"
)

var (
	ErrGetAwardsQueryIsNotConstructed = errors.New(
		"GetAwardsQuery must be created via NewGetAwardsQuery constructor",
	)
)

// GetAwardsQuery retrieves the awards and recognitions shown on the
// about page.
type GetAwardsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAwardsQuery creates a query for the awards list.
// This is a parameterless query.
func NewGetAwardsQuery() GetAwardsQuery {
	return GetAwardsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAwardsQuery) Validate() error {
	return q.guard.Validate(ErrGetAwardsQueryIsNotConstructed)
}

// AwardResponse represents one award or recognition.
type AwardResponse struct {
	ID           kernel.UUID
	Title        string
	Organization string
	Year         string
	Position     int
}
