package cron

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Codekiller51/brandconnect-server/models"

	"github.com/hibiken/asynq"
)

// ScheduleReminder enqueues a reminder task to fire at the given time.
// Times already in the past are delivered immediately.
func ScheduleReminder(p models.ReminderPayload, fireAt time.Time) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal reminder payload: %w", err)
	}

	client := asynq.NewClient(redisOpts())
	defer client.Close()

	task := asynq.NewTask(TypeReminderSend, payload)
	opts := []asynq.Option{asynq.MaxRetry(3)}
	if d := time.Until(fireAt); d > 0 {
		opts = append(opts, asynq.ProcessIn(d))
	}
	if _, err := client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("enqueue reminder for booking %s: %w", p.BookingID, err)
	}
	return nil
}
