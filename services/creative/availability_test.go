package creative

import (
	"context"
	"strings"
	"testing"

	availabilityRepo "github.com/Codekiller51/brandconnect-server/database/repository/availability"
	"github.com/Codekiller51/brandconnect-server/models"
)

type fakeSchedules struct {
	availabilityRepo.AvailabilityRepository
	saved *models.AvailabilitySettings
}

func (f *fakeSchedules) Upsert(ctx context.Context, settings *models.AvailabilitySettings) error {
	f.saved = settings
	return nil
}

func (f *fakeSchedules) GetByCreativeID(ctx context.Context, creativeID string) (*models.AvailabilitySettings, error) {
	return f.saved, nil
}

func availabilityService(schedules *fakeSchedules) *DefaultCreativeService {
	return NewDefaultCreativeService(nil, schedules, nil)
}

func TestSetAvailabilitySavesValidSchedule(t *testing.T) {
	schedules := &fakeSchedules{}
	svc := availabilityService(schedules)

	saved, err := svc.SetAvailability(context.Background(), "cr1", models.AvailabilitySettings{
		Recurring: map[string]models.DayWindow{
			"1": {Start: "09:00", End: "17:00", IsAvailable: true},
			"2": {IsAvailable: false},
		},
		BufferMinutes: 30,
		Timezone:      "Africa/Dar_es_Salaam",
	})
	if err != nil {
		t.Fatalf("SetAvailability returned error: %v", err)
	}
	if saved.CreativeID != "cr1" {
		t.Errorf("creativeID = %s, want cr1", saved.CreativeID)
	}
	if schedules.saved == nil {
		t.Fatal("schedule was not persisted")
	}
}

func TestSetAvailabilityRejectsInvertedWindow(t *testing.T) {
	svc := availabilityService(&fakeSchedules{})

	_, err := svc.SetAvailability(context.Background(), "cr1", models.AvailabilitySettings{
		Recurring: map[string]models.DayWindow{
			"3": {Start: "17:00", End: "09:00", IsAvailable: true},
		},
		Timezone: "Africa/Dar_es_Salaam",
	})
	if err == nil || !strings.Contains(err.Error(), "before end") {
		t.Fatalf("err = %v, want inverted window error", err)
	}
}

func TestSetAvailabilityRejectsBadDayKey(t *testing.T) {
	svc := availabilityService(&fakeSchedules{})

	_, err := svc.SetAvailability(context.Background(), "cr1", models.AvailabilitySettings{
		Recurring: map[string]models.DayWindow{
			"monday": {Start: "09:00", End: "17:00", IsAvailable: true},
		},
		Timezone: "Africa/Dar_es_Salaam",
	})
	if err == nil {
		t.Fatal("expected error for non-numeric day key")
	}
}

func TestSetAvailabilityRejectsUnpaddedTime(t *testing.T) {
	svc := availabilityService(&fakeSchedules{})

	_, err := svc.SetAvailability(context.Background(), "cr1", models.AvailabilitySettings{
		Recurring: map[string]models.DayWindow{
			"1": {Start: "9:00", End: "17:00", IsAvailable: true},
		},
		Timezone: "Africa/Dar_es_Salaam",
	})
	if err == nil {
		t.Fatal("expected error for unpadded start time")
	}
}

func TestSetAvailabilityRejectsNegativeBuffer(t *testing.T) {
	svc := availabilityService(&fakeSchedules{})

	_, err := svc.SetAvailability(context.Background(), "cr1", models.AvailabilitySettings{
		BufferMinutes: -15,
		Timezone:      "Africa/Dar_es_Salaam",
	})
	if err == nil {
		t.Fatal("expected error for negative buffer")
	}
}

func TestSetAvailabilityRejectsBadTimezone(t *testing.T) {
	svc := availabilityService(&fakeSchedules{})

	_, err := svc.SetAvailability(context.Background(), "cr1", models.AvailabilitySettings{
		Recurring: map[string]models.DayWindow{
			"1": {Start: "09:00", End: "17:00", IsAvailable: true},
		},
		Timezone: "Mars/Olympus_Mons",
	})
	if err == nil {
		t.Fatal("expected error for unknown timezone")
	}
}

func TestSetAvailabilityIgnoresTimesOnClosedDays(t *testing.T) {
	schedules := &fakeSchedules{}
	svc := availabilityService(schedules)

	// Closed days may carry empty or stale times; they are not validated.
	_, err := svc.SetAvailability(context.Background(), "cr1", models.AvailabilitySettings{
		Recurring: map[string]models.DayWindow{
			"0": {Start: "", End: "", IsAvailable: false},
		},
		Timezone: "Africa/Dar_es_Salaam",
	})
	if err != nil {
		t.Fatalf("SetAvailability returned error: %v", err)
	}
}
