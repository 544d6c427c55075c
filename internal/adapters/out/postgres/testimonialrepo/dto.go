// Package testimonialrepo provides data transfer objects and mapping
// functions for testimonial persistence.
package testimonialrepo

import (
	"time"

	"trattoria/internal/core/domain/model/kernel"
	"trattoria/internal/core/domain/model/testimonial"

	"github.com/google/uuid"
)

// TestimonialDTO represents the database structure for persisting
// testimonial aggregates.
type TestimonialDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerName string    `gorm:"column:customer_name"`
	Rating       int
	Comment      string
	Approved     bool `gorm:"index"`
	CreatedAt    time.Time
}

// TableName specifies the database table name for testimonial entities.
func (TestimonialDTO) TableName() string {
	return "testimonials"
}

// fromDomain converts a testimonial aggregate to its database representation.
func fromDomain(aggregate *testimonial.Testimonial) TestimonialDTO {
	return TestimonialDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerName: aggregate.CustomerName(),
		Rating:       aggregate.Rating(),
		Comment:      aggregate.Comment(),
		Approved:     aggregate.Approved(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a testimonial aggregate.
func toDomain(dto TestimonialDTO) (*testimonial.Testimonial, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return testimonial.RestoreTestimonial(
		id, dto.CustomerName, dto.Rating, dto.Comment,
		dto.Approved, dto.CreatedAt,
	)
}
