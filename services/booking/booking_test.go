package booking

import (
	"context"
	"errors"
	"testing"

	availabilityRepo "github.com/Codekiller51/brandconnect-server/database/repository/availability"
	bookingRepo "github.com/Codekiller51/brandconnect-server/database/repository/booking"
	creativeRepo "github.com/Codekiller51/brandconnect-server/database/repository/creative"
	"github.com/Codekiller51/brandconnect-server/models"
	"github.com/Codekiller51/brandconnect-server/utils"
)

// Fakes embed the repository interfaces so only the methods a test exercises
// need implementations.

type fakeCreatives struct {
	creativeRepo.CreativeRepository
	creative *models.Creative
	service  *models.Service
}

func (f *fakeCreatives) GetByID(ctx context.Context, id string) (*models.Creative, error) {
	if f.creative != nil && f.creative.ID == id {
		return f.creative, nil
	}
	return nil, nil
}

func (f *fakeCreatives) GetService(ctx context.Context, creativeID, serviceID string) (*models.Service, error) {
	if f.service != nil && f.service.ID == serviceID {
		return f.service, nil
	}
	return nil, errors.New("service not found")
}

type fakeBookings struct {
	bookingRepo.BookingRepository
	active   map[string][]models.BookingWindow // keyed by date
	created  []*models.Booking
	existing *models.Booking
	statuses map[string]string
	failWith error
}

func (f *fakeBookings) ActiveWindows(ctx context.Context, creativeID, date string) ([]models.BookingWindow, error) {
	return f.active[date], nil
}

func (f *fakeBookings) CreateIfFree(ctx context.Context, b *models.Booking) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.created = append(f.created, b)
	return nil
}

func (f *fakeBookings) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	if f.existing != nil && f.existing.ID == id {
		return f.existing, nil
	}
	return nil, nil
}

func (f *fakeBookings) UpdateStatus(ctx context.Context, id, status string) error {
	if f.statuses == nil {
		f.statuses = map[string]string{}
	}
	f.statuses[id] = status
	return nil
}

type fakeSchedules struct {
	availabilityRepo.AvailabilityRepository
	settings *models.AvailabilitySettings
	lookups  int
}

func (f *fakeSchedules) GetByCreativeID(ctx context.Context, creativeID string) (*models.AvailabilitySettings, error) {
	f.lookups++
	return f.settings, nil
}

func approvedCreative() *models.Creative {
	return &models.Creative{ID: "cr1", FullName: "Asha", Status: models.CreativeStatusApproved}
}

// mondaySchedule opens 09:00-12:00 with no buffer on Mondays.
func mondaySchedule() *models.AvailabilitySettings {
	return &models.AvailabilitySettings{
		CreativeID: "cr1",
		Recurring: map[string]models.DayWindow{
			"1": {Start: "09:00", End: "12:00", IsAvailable: true},
		},
		Timezone: "Africa/Dar_es_Salaam",
	}
}

func newTestService(bookings *fakeBookings, creatives *fakeCreatives, schedules *fakeSchedules) *DefaultBookingService {
	return NewDefaultBookingService(bookings, creatives, schedules, nil, nil)
}

func TestCreateBooksAnOfferedSlot(t *testing.T) {
	bookings := &fakeBookings{}
	creatives := &fakeCreatives{
		creative: approvedCreative(),
		service:  &models.Service{ID: "svc1", Name: "Shoot", DurationMinutes: 60, Price: 50000, Currency: "TZS"},
	}
	svc := newTestService(bookings, creatives, &fakeSchedules{settings: mondaySchedule()})

	// 2020-03-02 is a Monday; far enough in the past that no reminder fires.
	result, err := svc.Create(context.Background(), "client1", models.CreateBookingRequest{
		CreativeID: "cr1",
		ServiceID:  "svc1",
		Date:       "2020-03-02",
		StartTime:  "10:00",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	b := result.Booking
	if b.EndTime != "11:00" {
		t.Errorf("end time = %s, want 11:00", b.EndTime)
	}
	if b.Status != models.BookingStatusPending {
		t.Errorf("status = %s, want pending", b.Status)
	}
	if b.TotalAmount != 50000 || b.Currency != "TZS" {
		t.Errorf("amount = %v %s, want 50000 TZS", b.TotalAmount, b.Currency)
	}
	if len(bookings.created) != 1 {
		t.Fatalf("created %d bookings, want 1", len(bookings.created))
	}
}

func TestCreateRejectsUnofferedSlot(t *testing.T) {
	creatives := &fakeCreatives{
		creative: approvedCreative(),
		service:  &models.Service{ID: "svc1", DurationMinutes: 60, Price: 50000, Currency: "TZS"},
	}
	svc := newTestService(&fakeBookings{}, creatives, &fakeSchedules{settings: mondaySchedule()})

	// 10:30 is not a generated slot boundary for a 60-minute walk from 09:00.
	_, err := svc.Create(context.Background(), "client1", models.CreateBookingRequest{
		CreativeID: "cr1",
		ServiceID:  "svc1",
		Date:       "2020-03-02",
		StartTime:  "10:30",
	})
	if !errors.Is(err, ErrSlotNotAvailable) {
		t.Fatalf("err = %v, want ErrSlotNotAvailable", err)
	}
}

func TestCreateRejectsConflictingSlot(t *testing.T) {
	bookings := &fakeBookings{
		active: map[string][]models.BookingWindow{
			"2020-03-02": {{StartTime: "10:00", EndTime: "11:00"}},
		},
	}
	creatives := &fakeCreatives{
		creative: approvedCreative(),
		service:  &models.Service{ID: "svc1", DurationMinutes: 60, Price: 50000, Currency: "TZS"},
	}
	svc := newTestService(bookings, creatives, &fakeSchedules{settings: mondaySchedule()})

	_, err := svc.Create(context.Background(), "client1", models.CreateBookingRequest{
		CreativeID: "cr1",
		ServiceID:  "svc1",
		Date:       "2020-03-02",
		StartTime:  "10:00",
	})
	if !errors.Is(err, ErrSlotNotAvailable) {
		t.Fatalf("err = %v, want ErrSlotNotAvailable", err)
	}
}

func TestCreateSurfacesLostRace(t *testing.T) {
	bookings := &fakeBookings{failWith: bookingRepo.ErrSlotTaken}
	creatives := &fakeCreatives{
		creative: approvedCreative(),
		service:  &models.Service{ID: "svc1", DurationMinutes: 60, Price: 50000, Currency: "TZS"},
	}
	svc := newTestService(bookings, creatives, &fakeSchedules{settings: mondaySchedule()})

	_, err := svc.Create(context.Background(), "client1", models.CreateBookingRequest{
		CreativeID: "cr1",
		ServiceID:  "svc1",
		Date:       "2020-03-02",
		StartTime:  "09:00",
	})
	if !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("err = %v, want ErrSlotTaken", err)
	}
}

func TestCreateRejectsUnapprovedCreative(t *testing.T) {
	pending := approvedCreative()
	pending.Status = models.CreativeStatusPending
	creatives := &fakeCreatives{creative: pending}
	svc := newTestService(&fakeBookings{}, creatives, &fakeSchedules{settings: mondaySchedule()})

	_, err := svc.Create(context.Background(), "client1", models.CreateBookingRequest{
		CreativeID: "cr1",
		ServiceID:  "svc1",
		Date:       "2020-03-02",
		StartTime:  "09:00",
	})
	if err == nil {
		t.Fatal("expected error for unapproved creative")
	}
}

func TestUpdateStatusLifecycle(t *testing.T) {
	cases := []struct {
		name      string
		from, to  string
		actorID   string
		actorRole string
		wantErr   error
	}{
		{"creative confirms pending", models.BookingStatusPending, models.BookingStatusConfirmed, "cr1", utils.RoleCreative, nil},
		{"client cancels pending", models.BookingStatusPending, models.BookingStatusCancelled, "client1", utils.RoleClient, nil},
		{"creative starts confirmed", models.BookingStatusConfirmed, models.BookingStatusInProgress, "cr1", utils.RoleCreative, nil},
		{"creative completes in_progress", models.BookingStatusInProgress, models.BookingStatusCompleted, "cr1", utils.RoleCreative, nil},
		{"client may not confirm", models.BookingStatusPending, models.BookingStatusConfirmed, "client1", utils.RoleClient, ErrForbidden},
		{"pending cannot complete", models.BookingStatusPending, models.BookingStatusCompleted, "cr1", utils.RoleCreative, ErrInvalidTransition},
		{"completed is terminal", models.BookingStatusCompleted, models.BookingStatusCancelled, "cr1", utils.RoleCreative, ErrInvalidTransition},
		{"stranger may not touch", models.BookingStatusPending, models.BookingStatusCancelled, "other", utils.RoleClient, ErrForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bookings := &fakeBookings{
				existing: &models.Booking{
					ID:         "b1",
					CreativeID: "cr1",
					ClientID:   "client1",
					Date:       "2020-03-02",
					StartTime:  "10:00",
					EndTime:    "11:00",
					Status:     tc.from,
				},
			}
			svc := newTestService(bookings, &fakeCreatives{}, &fakeSchedules{})

			b, err := svc.UpdateStatus(context.Background(), "b1", tc.actorID, tc.actorRole, tc.to)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("err = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("UpdateStatus returned error: %v", err)
			}
			if b.Status != tc.to {
				t.Errorf("status = %s, want %s", b.Status, tc.to)
			}
			if bookings.statuses["b1"] != tc.to {
				t.Errorf("persisted status = %s, want %s", bookings.statuses["b1"], tc.to)
			}
		})
	}
}

// Reminder scheduling resolves the creative's timezone through the schedule
// repository, so a lookup there is the observable trace of it running.
func TestRemindersScheduledOnConfirmationOnly(t *testing.T) {
	pendingBooking := func() *models.Booking {
		return &models.Booking{
			ID:         "b1",
			CreativeID: "cr1",
			ClientID:   "client1",
			Date:       "2020-03-02",
			StartTime:  "10:00",
			EndTime:    "11:00",
			Status:     models.BookingStatusPending,
		}
	}

	schedules := &fakeSchedules{settings: mondaySchedule()}
	svc := newTestService(&fakeBookings{existing: pendingBooking()}, &fakeCreatives{}, schedules)
	if _, err := svc.UpdateStatus(context.Background(), "b1", "cr1", utils.RoleCreative, models.BookingStatusConfirmed); err != nil {
		t.Fatalf("confirm returned error: %v", err)
	}
	if schedules.lookups == 0 {
		t.Error("expected reminder scheduling on confirmation")
	}

	schedules = &fakeSchedules{settings: mondaySchedule()}
	svc = newTestService(&fakeBookings{existing: pendingBooking()}, &fakeCreatives{}, schedules)
	if _, err := svc.UpdateStatus(context.Background(), "b1", "client1", utils.RoleClient, models.BookingStatusCancelled); err != nil {
		t.Fatalf("cancel returned error: %v", err)
	}
	if schedules.lookups != 0 {
		t.Error("no reminder scheduling expected on cancellation")
	}
}

func TestAvailableSlotsRejectsBadDate(t *testing.T) {
	svc := newTestService(&fakeBookings{}, &fakeCreatives{}, &fakeSchedules{})
	if _, err := svc.AvailableSlots(context.Background(), "cr1", "02-03-2020", ""); err == nil {
		t.Fatal("expected error for malformed date")
	}
}
