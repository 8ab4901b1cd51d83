package booking

import (
	"context"
	"errors"

	bookingRepo "github.com/Codekiller51/brandconnect-server/database/repository/booking"
	"github.com/Codekiller51/brandconnect-server/models"
)

var (
	// ErrSlotTaken means the conflict re-check at insert time found an active
	// booking already holding the window.
	ErrSlotTaken = bookingRepo.ErrSlotTaken
	// ErrSlotNotAvailable means the requested window is not among the slots
	// the schedule currently offers.
	ErrSlotNotAvailable = errors.New("requested time is not an available slot")
	// ErrInvalidTransition is returned for a status change the lifecycle does
	// not allow.
	ErrInvalidTransition = errors.New("invalid booking status transition")
	// ErrForbidden is returned when the caller is not a participant of the
	// booking or the role may not perform the change.
	ErrForbidden = errors.New("not allowed to modify this booking")
)

// BookingResult is a created booking plus the client secret of its deposit
// payment intent, when a deposit was set up.
type BookingResult struct {
	Booking       *models.Booking `json:"booking"`
	PaymentSecret string          `json:"paymentSecret,omitempty"`
}

// BookingService creates bookings and walks them through their lifecycle.
type BookingService interface {
	AvailableSlots(ctx context.Context, creativeID, date, serviceID string) ([]models.Slot, error)
	Create(ctx context.Context, clientID string, req models.CreateBookingRequest) (*BookingResult, error)
	UpdateStatus(ctx context.Context, bookingID, actorID, actorRole, newStatus string) (*models.Booking, error)
	GetByID(ctx context.Context, bookingID, actorID, actorRole string) (*models.Booking, error)
	ListForClient(ctx context.Context, clientID string, page, pageSize int) ([]models.Booking, error)
	ListForCreative(ctx context.Context, creativeID string, page, pageSize int) ([]models.Booking, error)
}
