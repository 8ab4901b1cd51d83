package availabilityRepo

import (
	"context"

	"github.com/Codekiller51/brandconnect-server/models"
)

// AvailabilityRepository persists each creative's recurring weekly schedule.
// GetByCreativeID returns (nil, nil) when no schedule has been saved yet.
type AvailabilityRepository interface {
	GetByCreativeID(ctx context.Context, creativeID string) (*models.AvailabilitySettings, error)
	Upsert(ctx context.Context, settings *models.AvailabilitySettings) error
	Delete(ctx context.Context, creativeID string) error
}
