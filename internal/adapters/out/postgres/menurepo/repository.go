package menurepo

import (
	"context"

	"trattoria/internal/core/domain/model/menu"

	"gorm.io/gorm"
)

// GormMenuRepository loads catalog content into the database.
// Used by the seed command; reads go through the query handlers.
type GormMenuRepository struct {
	db *gorm.DB
}

// NewGormMenuRepository creates a new GORM catalog repository.
func NewGormMenuRepository(db *gorm.DB) *GormMenuRepository {
	return &GormMenuRepository{db: db}
}

// IsSeeded reports whether the catalog already holds menu items.
// The seed command uses it to stay idempotent across restarts.
func (r *GormMenuRepository) IsSeeded(ctx context.Context) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&MenuItemDTO{}).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// SeedMenuItems inserts the given dishes.
func (r *GormMenuRepository) SeedMenuItems(ctx context.Context, items []menu.Item) error {
	if len(items) == 0 {
		return nil
	}

	dtos := make([]MenuItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, menuItemFromDomain(item))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// SeedTimeline inserts the given history milestones.
func (r *GormMenuRepository) SeedTimeline(ctx context.Context, entries []menu.TimelineEntry) error {
	if len(entries) == 0 {
		return nil
	}

	dtos := make([]TimelineEntryDTO, 0, len(entries))
	for _, entry := range entries {
		dtos = append(dtos, timelineEntryFromDomain(entry))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// SeedAwards inserts the given awards.
func (r *GormMenuRepository) SeedAwards(ctx context.Context, awards []menu.Award) error {
	if len(awards) == 0 {
		return nil
	}

	dtos := make([]AwardDTO, 0, len(awards))
	for _, award := range awards {
		dtos = append(dtos, awardFromDomain(award))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}
