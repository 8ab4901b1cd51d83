package scheduling

import (
	"context"
	"testing"

	"github.com/Codekiller51/brandconnect-server/models"
)

type fakeScheduleSource struct {
	settings *models.AvailabilitySettings
	err      error
}

func (f *fakeScheduleSource) GetByCreativeID(_ context.Context, _ string) (*models.AvailabilitySettings, error) {
	return f.settings, f.err
}

type fakeBookingSource struct {
	windows map[string][]models.BookingWindow // keyed by date
	err     error
}

func (f *fakeBookingSource) ActiveWindows(_ context.Context, _ string, date string) ([]models.BookingWindow, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.windows[date], nil
}

type fakeServiceSource struct {
	service *models.Service
}

func (f *fakeServiceSource) GetService(_ context.Context, _, _ string) (*models.Service, error) {
	return f.service, nil
}

// mondaySettings: Monday 09:00-12:00, no buffer. 2026-03-02 is a Monday.
func mondaySettings() *models.AvailabilitySettings {
	return &models.AvailabilitySettings{
		CreativeID: "creative-1",
		Recurring: map[string]models.DayWindow{
			"1": {Start: "09:00", End: "12:00", IsAvailable: true},
		},
		BufferMinutes: 0,
		Timezone:      "Africa/Dar_es_Salaam",
	}
}

func TestEngine_AvailableSlots_NoBookings(t *testing.T) {
	engine := &Engine{
		Schedules: &fakeScheduleSource{settings: mondaySettings()},
		Bookings:  &fakeBookingSource{},
	}

	slots, err := engine.AvailableSlots(context.Background(), "creative-1", "2026-03-02", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []models.Slot{
		{Start: "09:00", End: "10:00"},
		{Start: "10:00", End: "11:00"},
		{Start: "11:00", End: "12:00"},
	}
	if len(slots) != len(want) {
		t.Fatalf("expected %d slots, got %d: %v", len(want), len(slots), slots)
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Errorf("slot %d: expected %v, got %v", i, want[i], slots[i])
		}
	}
}

func TestEngine_AvailableSlots_PendingBookingRemovesSlot(t *testing.T) {
	bookings := &fakeBookingSource{windows: map[string][]models.BookingWindow{}}
	engine := &Engine{
		Schedules: &fakeScheduleSource{settings: mondaySettings()},
		Bookings:  bookings,
	}
	ctx := context.Background()

	before, err := engine.AvailableSlots(ctx, "creative-1", "2026-03-02", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(before) != 3 {
		t.Fatalf("expected 3 slots before booking, got %d", len(before))
	}

	// A concurrent client books 10:00-11:00 (status pending counts as active).
	bookings.windows["2026-03-02"] = []models.BookingWindow{
		{StartTime: "10:00", EndTime: "11:00"},
	}

	after, err := engine.AvailableSlots(ctx, "creative-1", "2026-03-02", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(after) != 2 {
		t.Fatalf("expected 2 slots after booking, got %d: %v", len(after), after)
	}
	for _, s := range after {
		if s.Start == "10:00" {
			t.Errorf("booked slot still offered: %v", s)
		}
	}
}

func TestEngine_AvailableSlots_NoScheduleIsEmptyNotError(t *testing.T) {
	engine := &Engine{
		Schedules: &fakeScheduleSource{settings: nil},
		Bookings:  &fakeBookingSource{},
	}
	slots, err := engine.AvailableSlots(context.Background(), "creative-1", "2026-03-02", "")
	if err != nil {
		t.Fatalf("missing schedule must not be an error, got %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected empty result, got %v", slots)
	}
}

func TestEngine_AvailableSlots_ServiceDurationSizesSlots(t *testing.T) {
	engine := &Engine{
		Schedules: &fakeScheduleSource{settings: mondaySettings()},
		Bookings:  &fakeBookingSource{},
		Services:  &fakeServiceSource{service: &models.Service{ID: "svc-1", DurationMinutes: 90}},
	}
	slots, err := engine.AvailableSlots(context.Background(), "creative-1", "2026-03-02", "svc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("expected 2 ninety-minute slots, got %d: %v", len(slots), slots)
	}
	if slots[0].End != "10:30" {
		t.Errorf("expected first slot to end 10:30, got %s", slots[0].End)
	}
}
