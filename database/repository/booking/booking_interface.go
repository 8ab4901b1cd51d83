package bookingRepo

import (
	"context"
	"errors"

	"github.com/Codekiller51/brandconnect-server/models"
)

// ErrSlotTaken is returned by CreateIfFree when the requested window collides
// with an active booking for the same creative and date.
var ErrSlotTaken = errors.New("requested time slot is no longer available")

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	// CreateIfFree inserts the booking only if no active booking overlaps its
	// window. The check and insert run in one transaction.
	CreateIfFree(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
	SetPaymentID(ctx context.Context, id, paymentID string) error
	ActiveWindows(ctx context.Context, creativeID, date string) ([]models.BookingWindow, error)
	ListByClient(ctx context.Context, clientID string, page, pageSize int) ([]models.Booking, error)
	ListByCreative(ctx context.Context, creativeID string, page, pageSize int) ([]models.Booking, error)
	ListByCreativeAndDate(ctx context.Context, creativeID, date string) ([]models.Booking, error)
	Count(ctx context.Context) (int64, error)
	CountCreatedSince(ctx context.Context, since string) (int64, error)
	CompletedRevenue(ctx context.Context) (float64, error)
}
