package creative

import (
	"context"
	"fmt"
	"time"

	"github.com/Codekiller51/brandconnect-server/config"
	"github.com/Codekiller51/brandconnect-server/models"
)

var validDayKeys = map[string]bool{
	"0": true, "1": true, "2": true, "3": true, "4": true, "5": true, "6": true,
}

func (s *DefaultCreativeService) GetAvailability(ctx context.Context, creativeID string) (*models.AvailabilitySettings, error) {
	return s.schedule.GetByCreativeID(ctx, creativeID)
}

// SetAvailability validates and saves a creative's weekly schedule. The whole
// document is replaced on every save.
func (s *DefaultCreativeService) SetAvailability(ctx context.Context, creativeID string, settings models.AvailabilitySettings) (*models.AvailabilitySettings, error) {
	if settings.BufferMinutes < 0 {
		return nil, fmt.Errorf("buffer minutes cannot be negative")
	}

	for key, win := range settings.Recurring {
		if !validDayKeys[key] {
			return nil, fmt.Errorf("invalid day key %q: expected \"0\" (Sunday) through \"6\" (Saturday)", key)
		}
		if !win.IsAvailable {
			continue
		}
		if err := validateClock(win.Start); err != nil {
			return nil, fmt.Errorf("day %s start: %w", key, err)
		}
		if err := validateClock(win.End); err != nil {
			return nil, fmt.Errorf("day %s end: %w", key, err)
		}
		// Zero-padded "HH:mm" strings order lexicographically.
		if win.Start >= win.End {
			return nil, fmt.Errorf("day %s: start %s must be before end %s", key, win.Start, win.End)
		}
	}

	if settings.Timezone == "" {
		settings.Timezone = config.AppConfig.DefaultTimezone
	}
	if _, err := time.LoadLocation(settings.Timezone); err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", settings.Timezone, err)
	}

	settings.CreativeID = creativeID
	if err := s.schedule.Upsert(ctx, &settings); err != nil {
		return nil, fmt.Errorf("SetAvailability: %w", err)
	}
	return &settings, nil
}

func validateClock(v string) error {
	if len(v) != 5 {
		return fmt.Errorf("invalid time %q: expected zero-padded \"HH:mm\"", v)
	}
	if _, err := time.Parse("15:04", v); err != nil {
		return fmt.Errorf("invalid time %q: expected \"HH:mm\"", v)
	}
	return nil
}
