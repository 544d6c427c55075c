package queries

import (
	"context"

	"trattoria/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAwardsQueryHandler retrieves awards from the database.
type GetAwardsQueryHandler struct {
	db *gorm.DB
}

// NewGetAwardsQueryHandler creates a handler for award queries.
// Requires a GORM database connection for query execution.
func NewGetAwardsQueryHandler(db *gorm.DB) GetAwardsQueryHandler {
	return GetAwardsQueryHandler{db: db}
}

// Handle executes the awards query ordered by display position.
func (h GetAwardsQueryHandler) Handle(
	ctx context.Context,
	query GetAwardsQuery,
) ([]AwardResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			title,
			organization,
			year,
			position
		FROM awards
		ORDER BY position
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	awards := make([]AwardResponse, 0)

	for rows.Next() {
		var (
			award AwardResponse
			id    uuid.UUID
		)

		err = rows.Scan(&id, &award.Title, &award.Organization, &award.Year, &award.Position)
		if err != nil {
			return nil, err
		}

		awardID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		award.ID = awardID
		awards = append(awards, award)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return awards, nil
}
