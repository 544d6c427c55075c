package testimonialrepo

import (
	"context"
	"errors"

	"trattoria/internal/core/domain/model/kernel"
	"trattoria/internal/core/domain/model/testimonial"
	"trattoria/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTestimonialRepository implements TestimonialRepository using GORM.
type GormTestimonialRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTestimonialRepository creates a new GORM testimonial repository.
func NewGormTestimonialRepository(db *gorm.DB, tracker aggregateTracker) *GormTestimonialRepository {
	return &GormTestimonialRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new testimonial to the database.
func (r *GormTestimonialRepository) Add(ctx context.Context, aggregate *testimonial.Testimonial) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing testimonial to the database.
// Select forces the approved flag through even when it flips back to false,
// which gorm's zero-value handling would otherwise skip.
func (r *GormTestimonialRepository) Update(ctx context.Context, aggregate *testimonial.Testimonial) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&TestimonialDTO{}).
		Where("id = ?", dto.ID).
		Select("CustomerName", "Rating", "Comment", "Approved").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a testimonial by ID.
func (r *GormTestimonialRepository) Get(ctx context.Context, id kernel.UUID) (*testimonial.Testimonial, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TestimonialDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("testimonial", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
