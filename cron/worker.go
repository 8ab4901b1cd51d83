package cron

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Codekiller51/brandconnect-server/config"
	bookingRepo "github.com/Codekiller51/brandconnect-server/database/repository/booking"
	"github.com/Codekiller51/brandconnect-server/models"
	"github.com/Codekiller51/brandconnect-server/services/notification"
	"github.com/Codekiller51/brandconnect-server/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeReminderSend = "reminder:send"

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(notifSvc notification.NotificationService, bookings bookingRepo.BookingRepository) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderSend, handleReminderTask(notifSvc, bookings))

	go func() {
		logger := utils.GetLogger()
		logger.Info("ReminderWorker: starting async worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("ReminderWorker: failed to start worker",
					zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
				if attempts == maxAttempts {
					logger.Fatal("ReminderWorker: max retry attempts reached")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(notifSvc notification.NotificationService, bookings bookingRepo.BookingRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			utils.GetLogger().Error("ReminderHandler: invalid payload", zap.Error(err))
			return err
		}

		// The booking may have moved on since the reminder was queued. Only a
		// still-confirmed session gets a ping.
		b, err := bookings.GetByID(ctx, p.BookingID)
		if err != nil {
			utils.GetLogger().Error("ReminderHandler: booking lookup failed",
				zap.String("bookingID", p.BookingID), zap.Error(err))
			return err
		}
		if b == nil || b.Status != models.BookingStatusConfirmed {
			utils.GetLogger().Info("ReminderHandler: booking no longer confirmed, skipping",
				zap.String("bookingID", p.BookingID))
			return nil
		}

		utils.GetLogger().Info("ReminderHandler: firing reminder",
			zap.String("bookingID", p.BookingID),
			zap.String("recipientID", p.RecipientID),
			zap.String("fireDate", p.FireDate))

		return notifSvc.Notify(ctx, &models.Notification{
			RecipientID:   p.RecipientID,
			RecipientRole: p.RecipientRole,
			Type:          models.NotificationBookingReminder,
			Title:         p.Title,
			Body:          p.Body,
			Data: map[string]string{
				"bookingId": p.BookingID,
				"fireDate":  p.FireDate,
			},
		})
	}
}
