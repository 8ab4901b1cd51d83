package cron

import (
	"context"
	"encoding/json"
	"testing"

	bookingRepo "github.com/Codekiller51/brandconnect-server/database/repository/booking"
	"github.com/Codekiller51/brandconnect-server/models"
	"github.com/Codekiller51/brandconnect-server/services/notification"
	"github.com/Codekiller51/brandconnect-server/utils"

	"github.com/hibiken/asynq"
)

type fakeBookings struct {
	bookingRepo.BookingRepository
	booking *models.Booking
}

func (f *fakeBookings) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	if f.booking != nil && f.booking.ID == id {
		return f.booking, nil
	}
	return nil, nil
}

type fakeNotifier struct {
	notification.NotificationService
	sent []*models.Notification
}

func (f *fakeNotifier) Notify(ctx context.Context, n *models.Notification) error {
	f.sent = append(f.sent, n)
	return nil
}

func reminderTask(t *testing.T, bookingID string) *asynq.Task {
	t.Helper()
	payload, err := json.Marshal(models.ReminderPayload{
		BookingID:     bookingID,
		RecipientID:   "client1",
		RecipientRole: utils.RoleClient,
		Title:         "Upcoming booking",
		Body:          "Reminder: booking on 2026-09-02 at 10:00.",
		FireDate:      "2026-09-01T10:00:00Z",
	})
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return asynq.NewTask(TypeReminderSend, payload)
}

func TestReminderFiresForConfirmedBooking(t *testing.T) {
	notifier := &fakeNotifier{}
	bookings := &fakeBookings{booking: &models.Booking{ID: "b1", Status: models.BookingStatusConfirmed}}

	handler := handleReminderTask(notifier, bookings)
	if err := handler(context.Background(), reminderTask(t, "b1")); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if len(notifier.sent) != 1 {
		t.Fatalf("sent %d notifications, want 1", len(notifier.sent))
	}
	n := notifier.sent[0]
	if n.Type != models.NotificationBookingReminder || n.RecipientID != "client1" {
		t.Errorf("notification = %+v, want booking_reminder to client1", n)
	}
}

func TestReminderSkipsCancelledBooking(t *testing.T) {
	notifier := &fakeNotifier{}
	bookings := &fakeBookings{booking: &models.Booking{ID: "b1", Status: models.BookingStatusCancelled}}

	handler := handleReminderTask(notifier, bookings)
	if err := handler(context.Background(), reminderTask(t, "b1")); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if len(notifier.sent) != 0 {
		t.Fatalf("sent %d notifications for a cancelled booking, want 0", len(notifier.sent))
	}
}

func TestReminderSkipsMissingBooking(t *testing.T) {
	notifier := &fakeNotifier{}

	handler := handleReminderTask(notifier, &fakeBookings{})
	if err := handler(context.Background(), reminderTask(t, "gone")); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if len(notifier.sent) != 0 {
		t.Fatalf("sent %d notifications for a missing booking, want 0", len(notifier.sent))
	}
}
