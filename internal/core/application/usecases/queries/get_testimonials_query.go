package queries

import (
	"errors"
	"time"

	"trattoria/internal/core/domain/model/kernel"
	"trattoria/internal/pkg/guard"
)

var (
	ErrGetTestimonialsQueryIsNotConstructed = errors.New(
		"GetTestimonialsQuery must be created via NewGetTestimonialsQuery constructor",
	)
)

// GetTestimonialsQuery retrieves customer reviews. The public site only
// sees approved ones; the moderation dashboard sees everything.
//
// Example:
//
//	public := NewGetTestimonialsQuery(true)
//	all := NewGetTestimonialsQuery(false)
type GetTestimonialsQuery struct {
	approvedOnly bool

	guard guard.ConstructorGuard
}

// NewGetTestimonialsQuery creates a query for reviews. With approvedOnly
// set, unmoderated reviews are filtered out.
func NewGetTestimonialsQuery(approvedOnly bool) GetTestimonialsQuery {
	return GetTestimonialsQuery{
		approvedOnly: approvedOnly,
		guard:        guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetTestimonialsQuery) Validate() error {
	return q.guard.Validate(ErrGetTestimonialsQueryIsNotConstructed)
}

// ApprovedOnly reports whether unapproved reviews are filtered out.
func (q GetTestimonialsQuery) ApprovedOnly() bool {
	return q.approvedOnly
}

// TestimonialResponse represents one customer review.
type TestimonialResponse struct {
	ID           kernel.UUID
	CustomerName string
	Rating       int
	Comment      string
	Approved     bool
	CreatedAt    time.Time
}
