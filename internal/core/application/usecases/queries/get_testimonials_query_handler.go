package queries

import (
	"context"

	"trattoria/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTestimonialsQueryHandler retrieves customer reviews from the database.
type GetTestimonialsQueryHandler struct {
	db *gorm.DB
}

// NewGetTestimonialsQueryHandler creates a handler for review queries.
// Requires a GORM database connection for query execution.
func NewGetTestimonialsQueryHandler(db *gorm.DB) GetTestimonialsQueryHandler {
	return GetTestimonialsQueryHandler{db: db}
}

// Handle executes the review query, newest first.
func (h GetTestimonialsQueryHandler) Handle(
	ctx context.Context,
	query GetTestimonialsQuery,
) ([]TestimonialResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			customer_name,
			rating,
			comment,
			approved,
			created_at
		FROM testimonials
	`
	if query.ApprovedOnly() {
		sql += ` WHERE approved = TRUE`
	}
	sql += ` ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	testimonials := make([]TestimonialResponse, 0)

	for rows.Next() {
		var (
			testimonialResp TestimonialResponse
			id              uuid.UUID
		)

		err = rows.Scan(
			&id,
			&testimonialResp.CustomerName,
			&testimonialResp.Rating,
			&testimonialResp.Comment,
			&testimonialResp.Approved,
			&testimonialResp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		testimonialID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		testimonialResp.ID = testimonialID
		testimonials = append(testimonials, testimonialResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return testimonials, nil
}
