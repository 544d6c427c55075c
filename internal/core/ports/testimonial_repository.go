package ports

import (
	"context"

	"trattoria/internal/core/domain/model/kernel"
	"trattoria/internal/core/domain/model/testimonial"
)

// TestimonialRepository defines the persistence contract for testimonial aggregates.
type TestimonialRepository interface {
	// Add persists a new testimonial.
	Add(ctx context.Context, aggregate *testimonial.Testimonial) error

	// Update persists changes to an existing testimonial.
	Update(ctx context.Context, aggregate *testimonial.Testimonial) error

	// Get retrieves a testimonial by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*testimonial.Testimonial, error)
}
