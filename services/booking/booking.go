package booking

import (
	"context"
	"fmt"
	"time"

	availabilityRepo "github.com/Codekiller51/brandconnect-server/database/repository/availability"
	bookingRepo "github.com/Codekiller51/brandconnect-server/database/repository/booking"
	creativeRepo "github.com/Codekiller51/brandconnect-server/database/repository/creative"
	"github.com/Codekiller51/brandconnect-server/events"
	"github.com/Codekiller51/brandconnect-server/models"
	"github.com/Codekiller51/brandconnect-server/services/notification"
	"github.com/Codekiller51/brandconnect-server/services/scheduling"
	"github.com/Codekiller51/brandconnect-server/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService is the production implementation of BookingService.
type DefaultBookingService struct {
	bookings  bookingRepo.BookingRepository
	creatives creativeRepo.CreativeRepository
	schedules availabilityRepo.AvailabilityRepository
	engine    *scheduling.Engine
	publisher *events.Publisher
	notifier  notification.NotificationService
}

func NewDefaultBookingService(
	bookings bookingRepo.BookingRepository,
	creatives creativeRepo.CreativeRepository,
	schedules availabilityRepo.AvailabilityRepository,
	publisher *events.Publisher,
	notifier notification.NotificationService,
) *DefaultBookingService {
	return &DefaultBookingService{
		bookings:  bookings,
		creatives: creatives,
		schedules: schedules,
		engine: &scheduling.Engine{
			Schedules: schedules,
			Bookings:  bookings,
			Services:  creatives,
		},
		publisher: publisher,
		notifier:  notifier,
	}
}

// AvailableSlots exposes the slot computation for the public calendar view.
func (s *DefaultBookingService) AvailableSlots(ctx context.Context, creativeID, date, serviceID string) ([]models.Slot, error) {
	if err := scheduling.ValidDate(date); err != nil {
		return nil, err
	}
	return s.engine.AvailableSlots(ctx, creativeID, date, serviceID)
}

// Create books a slot. The slot must be one the schedule currently offers, and
// the insert re-checks for conflicts transactionally so a concurrent booking
// of the same window loses with ErrSlotTaken.
func (s *DefaultBookingService) Create(ctx context.Context, clientID string, req models.CreateBookingRequest) (*BookingResult, error) {
	if err := scheduling.ValidDate(req.Date); err != nil {
		return nil, err
	}

	c, err := s.creatives.GetByID(ctx, req.CreativeID)
	if err != nil {
		return nil, fmt.Errorf("Create: creative lookup failed: %w", err)
	}
	if c == nil || c.Status != models.CreativeStatusApproved || c.Suspended {
		return nil, fmt.Errorf("creative %s is not accepting bookings", req.CreativeID)
	}

	svc, err := s.creatives.GetService(ctx, req.CreativeID, req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("Create: %w", err)
	}

	endTime, err := scheduling.AddMinutes(req.StartTime, svc.DurationMinutes)
	if err != nil {
		return nil, err
	}

	slots, err := s.engine.AvailableSlots(ctx, req.CreativeID, req.Date, req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("Create: slot computation failed: %w", err)
	}
	if !containsSlot(slots, req.StartTime, endTime) {
		return nil, ErrSlotNotAvailable
	}

	now := time.Now()
	b := &models.Booking{
		ID:          uuid.New().String(),
		CreativeID:  req.CreativeID,
		ClientID:    clientID,
		ServiceID:   req.ServiceID,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     endTime,
		TotalAmount: svc.Price,
		Currency:    svc.Currency,
		Notes:       req.Notes,
		Status:      models.BookingStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.bookings.CreateIfFree(ctx, b); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("booking created",
		zap.String("bookingID", b.ID),
		zap.String("creativeID", b.CreativeID),
		zap.String("date", b.Date),
		zap.String("start", b.StartTime))

	secret := s.setupDeposit(ctx, b)
	s.afterChange(ctx, b)
	s.notifyCreated(ctx, b, c.FullName)

	return &BookingResult{Booking: b, PaymentSecret: secret}, nil
}

func containsSlot(slots []models.Slot, start, end string) bool {
	for _, slot := range slots {
		if slot.Start == start && slot.End == end {
			return true
		}
	}
	return false
}

// afterChange fans out a change event for the booking's calendar day.
func (s *DefaultBookingService) afterChange(ctx context.Context, b *models.Booking) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(ctx, events.BookingChange{CreativeID: b.CreativeID, Date: b.Date})
}

func (s *DefaultBookingService) notifyCreated(ctx context.Context, b *models.Booking, creativeName string) {
	if s.notifier == nil {
		return
	}
	err := s.notifier.Notify(ctx, &models.Notification{
		RecipientID:   b.CreativeID,
		RecipientRole: utils.RoleCreative,
		Type:          models.NotificationBookingCreated,
		Title:         "New booking request",
		Body:          fmt.Sprintf("You have a new booking on %s at %s.", b.Date, b.StartTime),
		Data:          map[string]string{"bookingId": b.ID, "date": b.Date},
	})
	if err != nil {
		utils.GetLogger().Warn("notifyCreated: notification failed",
			zap.String("bookingID", b.ID), zap.Error(err))
	}
}
