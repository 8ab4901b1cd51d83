package booking

import (
	"context"
	"fmt"

	"github.com/Codekiller51/brandconnect-server/models"
	"github.com/Codekiller51/brandconnect-server/utils"

	"go.uber.org/zap"
)

// allowedTransitions is the booking lifecycle. Completed and cancelled are
// terminal.
var allowedTransitions = map[string][]string{
	models.BookingStatusPending:    {models.BookingStatusConfirmed, models.BookingStatusCancelled},
	models.BookingStatusConfirmed:  {models.BookingStatusInProgress, models.BookingStatusCancelled},
	models.BookingStatusInProgress: {models.BookingStatusCompleted},
}

func transitionAllowed(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// roleMayTransition says which side of the marketplace may move a booking into
// each status. Cancellation is open to both parties; the rest of the
// lifecycle is driven by the creative.
func roleMayTransition(role, to string) bool {
	switch to {
	case models.BookingStatusCancelled:
		return role == utils.RoleClient || role == utils.RoleCreative || role == utils.RoleAdmin
	case models.BookingStatusConfirmed, models.BookingStatusInProgress, models.BookingStatusCompleted:
		return role == utils.RoleCreative || role == utils.RoleAdmin
	default:
		return false
	}
}

// UpdateStatus applies one lifecycle step and notifies the other party. When
// the change frees or holds calendar time, a change event goes out so open
// calendars refresh.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, bookingID, actorID, actorRole, newStatus string) (*models.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("UpdateStatus: %w", err)
	}
	if b == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	if !s.isParticipant(b, actorID, actorRole) {
		return nil, ErrForbidden
	}
	if !transitionAllowed(b.Status, newStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.Status, newStatus)
	}
	if !roleMayTransition(actorRole, newStatus) {
		return nil, ErrForbidden
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		return nil, fmt.Errorf("UpdateStatus: %w", err)
	}
	prev := b.Status
	b.Status = newStatus

	utils.GetLogger().Info("booking status changed",
		zap.String("bookingID", b.ID),
		zap.String("from", prev),
		zap.String("to", newStatus),
		zap.String("actorRole", actorRole))

	// Cancelling releases the window; a pending/confirmed flip does not change
	// what is bookable but confirmed bookings still hold their slot. Only the
	// cancel path changes slot availability.
	if newStatus == models.BookingStatusCancelled {
		s.afterChange(ctx, b)
	}
	// Reminders are queued once the creative commits to the session.
	if newStatus == models.BookingStatusConfirmed {
		s.scheduleReminders(b)
	}
	s.notifyStatusChange(ctx, b, actorRole)

	return b, nil
}

func (s *DefaultBookingService) isParticipant(b *models.Booking, actorID, actorRole string) bool {
	switch actorRole {
	case utils.RoleClient:
		return b.ClientID == actorID
	case utils.RoleCreative:
		return b.CreativeID == actorID
	case utils.RoleAdmin:
		return true
	default:
		return false
	}
}

// notifyStatusChange tells the party who did not make the change.
func (s *DefaultBookingService) notifyStatusChange(ctx context.Context, b *models.Booking, actorRole string) {
	if s.notifier == nil {
		return
	}
	recipientID, recipientRole := b.ClientID, utils.RoleClient
	if actorRole == utils.RoleClient {
		recipientID, recipientRole = b.CreativeID, utils.RoleCreative
	}

	err := s.notifier.Notify(ctx, &models.Notification{
		RecipientID:   recipientID,
		RecipientRole: recipientRole,
		Type:          models.NotificationBookingStatus,
		Title:         "Booking update",
		Body:          fmt.Sprintf("Your booking on %s at %s is now %s.", b.Date, b.StartTime, b.Status),
		Data:          map[string]string{"bookingId": b.ID, "status": b.Status},
	})
	if err != nil {
		utils.GetLogger().Warn("notifyStatusChange: notification failed",
			zap.String("bookingID", b.ID), zap.Error(err))
	}
}

func (s *DefaultBookingService) GetByID(ctx context.Context, bookingID, actorID, actorRole string) (*models.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}
	if !s.isParticipant(b, actorID, actorRole) {
		return nil, ErrForbidden
	}
	return b, nil
}

func (s *DefaultBookingService) ListForClient(ctx context.Context, clientID string, page, pageSize int) ([]models.Booking, error) {
	return s.bookings.ListByClient(ctx, clientID, page, pageSize)
}

func (s *DefaultBookingService) ListForCreative(ctx context.Context, creativeID string, page, pageSize int) ([]models.Booking, error) {
	return s.bookings.ListByCreative(ctx, creativeID, page, pageSize)
}
