package models

import "time"

// Booking status lifecycle: pending -> confirmed|cancelled,
// confirmed -> in_progress|cancelled, in_progress -> completed.
const (
	BookingStatusPending    = "pending"
	BookingStatusConfirmed  = "confirmed"
	BookingStatusInProgress = "in_progress"
	BookingStatusCompleted  = "completed"
	BookingStatusCancelled  = "cancelled"
)

// ActiveBookingStatuses are the statuses that make a time window unavailable.
var ActiveBookingStatuses = []string{BookingStatusPending, BookingStatusConfirmed}

// Booking represents a client's booking of a creative's service.
// Date is "YYYY-MM-DD"; StartTime/EndTime are "HH:mm" in the creative's timezone.
type Booking struct {
	ID          string    `bson:"id" json:"id"`
	CreativeID  string    `bson:"creative_id" json:"creative_id"`
	ClientID    string    `bson:"client_id" json:"client_id"`
	ServiceID   string    `bson:"service_id" json:"service_id"`
	Date        string    `bson:"date" json:"booking_date"`
	StartTime   string    `bson:"start_time" json:"start_time"`
	EndTime     string    `bson:"end_time" json:"end_time"`
	TotalAmount float64   `bson:"total_amount" json:"total_amount"`
	Currency    string    `bson:"currency" json:"currency"`
	Notes       string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Status      string    `bson:"status" json:"status"`
	PaymentID   string    `bson:"payment_id,omitempty" json:"payment_id,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// Window returns the booking's time range for conflict checks.
func (b Booking) Window() BookingWindow {
	return BookingWindow{StartTime: b.StartTime, EndTime: b.EndTime}
}

// CreateBookingRequest is the payload for creating a booking.
type CreateBookingRequest struct {
	CreativeID string `json:"creative_id" binding:"required"`
	ServiceID  string `json:"service_id" binding:"required"`
	Date       string `json:"booking_date" binding:"required"`
	StartTime  string `json:"start_time" binding:"required"`
	Notes      string `json:"notes"`
}
