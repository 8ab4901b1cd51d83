package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/Codekiller51/brandconnect-server/config"
	"github.com/Codekiller51/brandconnect-server/cron"
	"github.com/Codekiller51/brandconnect-server/models"
	"github.com/Codekiller51/brandconnect-server/utils"

	"go.uber.org/zap"
)

// reminderLead is how far ahead of the booking start the reminder fires.
const reminderLead = 24 * time.Hour

// scheduleReminders queues a reminder for both parties once a booking is
// confirmed. Failures are logged only; the booking stands either way. The
// worker re-checks the booking status at fire time, so a later cancellation
// needs no revocation here.
func (s *DefaultBookingService) scheduleReminders(b *models.Booking) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	startAt, err := s.bookingStart(ctx, b)
	if err != nil {
		utils.GetLogger().Warn("scheduleReminders: could not resolve booking start",
			zap.String("bookingID", b.ID), zap.Error(err))
		return
	}
	fireAt := startAt.Add(-reminderLead)
	if fireAt.Before(time.Now()) {
		// Short-notice booking; skip rather than ping immediately.
		return
	}

	body := fmt.Sprintf("Reminder: booking on %s at %s.", b.Date, b.StartTime)
	targets := []struct {
		id, role string
	}{
		{b.ClientID, utils.RoleClient},
		{b.CreativeID, utils.RoleCreative},
	}
	for _, t := range targets {
		p := models.ReminderPayload{
			BookingID:     b.ID,
			RecipientID:   t.id,
			RecipientRole: t.role,
			Title:         "Upcoming booking",
			Body:          body,
			FireDate:      fireAt.Format(time.RFC3339),
		}
		if err := cron.ScheduleReminder(p, fireAt); err != nil {
			utils.GetLogger().Warn("scheduleReminders: enqueue failed",
				zap.String("bookingID", b.ID), zap.String("recipientID", t.id), zap.Error(err))
		}
	}
}

// bookingStart resolves the booking's wall-clock start in the creative's
// timezone.
func (s *DefaultBookingService) bookingStart(ctx context.Context, b *models.Booking) (time.Time, error) {
	tz := config.AppConfig.DefaultTimezone
	settings, err := s.schedules.GetByCreativeID(ctx, b.CreativeID)
	if err == nil && settings != nil && settings.Timezone != "" {
		tz = settings.Timezone
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.UTC
	}
	return time.ParseInLocation("2006-01-02 15:04", b.Date+" "+b.StartTime, loc)
}
