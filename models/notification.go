package models

import "time"

// Notification event types.
const (
	NotificationBookingCreated  = "booking_created"
	NotificationBookingStatus   = "booking_status"
	NotificationBookingReminder = "booking_reminder"
	NotificationNewMessage      = "new_message"
	NotificationProfileReview   = "profile_review"
)

// Notification is an in-app notification record. Email, SMS and push
// deliveries fan out from the same event but are not persisted here.
type Notification struct {
	ID            string            `bson:"id" json:"id"`
	RecipientID   string            `bson:"recipientId" json:"recipientId"`
	RecipientRole string            `bson:"recipientRole" json:"recipientRole"` // "client", "creative" or "admin"
	Type          string            `bson:"type" json:"type"`
	Title         string            `bson:"title" json:"title"`
	Body          string            `bson:"body" json:"body"`
	Data          map[string]string `bson:"data,omitempty" json:"data,omitempty"`
	Read          bool              `bson:"read" json:"read"`
	CreatedAt     time.Time         `bson:"createdAt" json:"createdAt"`
}

// ReminderPayload is the asynq task payload for scheduled booking reminders.
type ReminderPayload struct {
	BookingID     string `json:"bookingId"`
	RecipientID   string `json:"recipientId"`
	RecipientRole string `json:"recipientRole"`
	Title         string `json:"title"`
	Body          string `json:"body"`
	FireDate      string `json:"fireDate"`
}
