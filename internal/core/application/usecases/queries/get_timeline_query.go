package queries

import (
	"errors"

	"trattoria/internal/core/domain/model/kernel"
	"trattoria/internal/pkg/guard"
)

var (
	ErrGetTimelineQueryIsNotConstructed = errors.New(
		"GetTimelineQuery must be created via NewGetTimelineQuery constructor",
	)
)

// GetTimelineQuery retrieves the restaurant history entries shown on the
// about page.
type GetTimelineQuery struct {
	guard guard.ConstructorGuard
}

// NewGetTimelineQuery creates a query for the history timeline.
// This is a parameterless query.
func NewGetTimelineQuery() GetTimelineQuery {
	return GetTimelineQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetTimelineQuery) Validate() error {
	return q.guard.Validate(ErrGetTimelineQueryIsNotConstructed)
}

// TimelineEntryResponse represents one milestone of the restaurant's history.
type TimelineEntryResponse struct {
	ID          kernel.UUID
	Year        string
	Title       string
	Description string
	Position    int
}
