package scheduling

import (
	"context"
	"fmt"

	"github.com/Codekiller51/brandconnect-server/models"
	"github.com/Codekiller51/brandconnect-server/utils"

	"go.uber.org/zap"
)

// ScheduleSource supplies a creative's availability settings.
// A nil result with nil error means no schedule has been set up yet.
type ScheduleSource interface {
	GetByCreativeID(ctx context.Context, creativeID string) (*models.AvailabilitySettings, error)
}

// BookingSource supplies the active (pending/confirmed) booking windows for a
// creative on a date.
type BookingSource interface {
	ActiveWindows(ctx context.Context, creativeID, date string) ([]models.BookingWindow, error)
}

// ServiceSource resolves a creative's service offering, used to size slots.
type ServiceSource interface {
	GetService(ctx context.Context, creativeID, serviceID string) (*models.Service, error)
}

// Engine computes the bookable slots for a creative on a date: generate
// candidates from the weekly schedule, then drop the ones that collide with
// active bookings. It holds no state of its own; every call reads fresh.
type Engine struct {
	Schedules ScheduleSource
	Bookings  BookingSource
	Services  ServiceSource
}

// AvailableSlots returns the filtered slot list for (creativeID, date).
// serviceID selects the slot length from the service's duration; when empty
// or unresolvable the default 60-minute length is used.
func (e *Engine) AvailableSlots(ctx context.Context, creativeID, date, serviceID string) ([]models.Slot, error) {
	settings, err := e.Schedules.GetByCreativeID(ctx, creativeID)
	if err != nil {
		return nil, fmt.Errorf("fetch availability for creative %s: %w", creativeID, err)
	}
	if settings == nil {
		// No availability record is a valid empty state, not an error.
		return nil, nil
	}

	slotMinutes := DefaultSlotMinutes
	if serviceID != "" && e.Services != nil {
		svc, err := e.Services.GetService(ctx, creativeID, serviceID)
		if err != nil {
			utils.GetLogger().Warn("AvailableSlots: service lookup failed, using default slot length",
				zap.String("creativeID", creativeID), zap.String("serviceID", serviceID), zap.Error(err))
		} else if svc != nil && svc.DurationMinutes > 0 {
			slotMinutes = svc.DurationMinutes
		}
	}

	candidates, err := SlotsForDate(*settings, date, slotMinutes)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	busy, err := e.Bookings.ActiveWindows(ctx, creativeID, date)
	if err != nil {
		return nil, fmt.Errorf("fetch bookings for creative %s on %s: %w", creativeID, date, err)
	}
	return FilterConflicts(candidates, busy), nil
}
