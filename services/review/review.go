package review

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "github.com/Codekiller51/brandconnect-server/database/repository/booking"
	creativeRepo "github.com/Codekiller51/brandconnect-server/database/repository/creative"
	reviewRepo "github.com/Codekiller51/brandconnect-server/database/repository/review"
	"github.com/Codekiller51/brandconnect-server/models"
	"github.com/Codekiller51/brandconnect-server/services/notification"
	"github.com/Codekiller51/brandconnect-server/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrNotReviewable means the booking is missing, not the client's, or not
	// completed yet.
	ErrNotReviewable = errors.New("booking cannot be reviewed")
	// ErrAlreadyReviewed means the booking already carries a review.
	ErrAlreadyReviewed = errors.New("booking has already been reviewed")
)

// ReviewService manages ratings of completed bookings.
type ReviewService interface {
	Create(ctx context.Context, clientID string, req models.CreateReviewRequest) (*models.Review, error)
	ListForCreative(ctx context.Context, creativeID string, page, pageSize int) ([]models.Review, error)
	Reply(ctx context.Context, creativeID, reviewID, reply string) (*models.Review, error)
	SetHidden(ctx context.Context, reviewID string, hidden bool) error
}

// DefaultReviewService is the production implementation.
type DefaultReviewService struct {
	reviews   reviewRepo.ReviewRepository
	bookings  bookingRepo.BookingRepository
	creatives creativeRepo.CreativeRepository
	notifier  notification.NotificationService
}

func NewDefaultReviewService(
	reviews reviewRepo.ReviewRepository,
	bookings bookingRepo.BookingRepository,
	creatives creativeRepo.CreativeRepository,
	notifier notification.NotificationService,
) *DefaultReviewService {
	return &DefaultReviewService{reviews: reviews, bookings: bookings, creatives: creatives, notifier: notifier}
}

// Create records a review for a completed booking and refreshes the
// creative's rating aggregate. One review per booking.
func (s *DefaultReviewService) Create(ctx context.Context, clientID string, req models.CreateReviewRequest) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}

	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("Create: booking lookup failed: %w", err)
	}
	if b == nil || b.ClientID != clientID || b.Status != models.BookingStatusCompleted {
		return nil, ErrNotReviewable
	}

	existing, err := s.reviews.GetByBookingID(ctx, req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("Create: review lookup failed: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyReviewed
	}

	now := time.Now()
	r := &models.Review{
		ID:         uuid.New().String(),
		BookingID:  b.ID,
		CreativeID: b.CreativeID,
		ClientID:   clientID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.reviews.Create(ctx, r); err != nil {
		return nil, fmt.Errorf("Create: %w", err)
	}

	s.refreshAggregate(ctx, b.CreativeID)
	s.notifyCreative(ctx, r)
	return r, nil
}

func (s *DefaultReviewService) ListForCreative(ctx context.Context, creativeID string, page, pageSize int) ([]models.Review, error) {
	return s.reviews.ListByCreative(ctx, creativeID, false, page, pageSize)
}

// Reply lets the reviewed creative answer once, publicly.
func (s *DefaultReviewService) Reply(ctx context.Context, creativeID, reviewID, reply string) (*models.Review, error) {
	r, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if r == nil || r.CreativeID != creativeID {
		return nil, fmt.Errorf("review %s not found", reviewID)
	}
	if err := s.reviews.SetReply(ctx, reviewID, reply); err != nil {
		return nil, fmt.Errorf("Reply: %w", err)
	}
	r.Reply = reply
	return r, nil
}

// SetHidden moderates a review in or out of the public listing and refreshes
// the affected creative's aggregate.
func (s *DefaultReviewService) SetHidden(ctx context.Context, reviewID string, hidden bool) error {
	r, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("review %s not found", reviewID)
	}
	if err := s.reviews.SetHidden(ctx, reviewID, hidden); err != nil {
		return fmt.Errorf("SetHidden: %w", err)
	}
	s.refreshAggregate(ctx, r.CreativeID)
	return nil
}

func (s *DefaultReviewService) refreshAggregate(ctx context.Context, creativeID string) {
	avg, count, err := s.reviews.Aggregate(ctx, creativeID)
	if err != nil {
		utils.GetLogger().Warn("refreshAggregate: aggregate failed",
			zap.String("creativeID", creativeID), zap.Error(err))
		return
	}
	if err := s.creatives.ApplyRating(ctx, creativeID, avg, count); err != nil {
		utils.GetLogger().Warn("refreshAggregate: rating write failed",
			zap.String("creativeID", creativeID), zap.Error(err))
	}
}

func (s *DefaultReviewService) notifyCreative(ctx context.Context, r *models.Review) {
	if s.notifier == nil {
		return
	}
	err := s.notifier.Notify(ctx, &models.Notification{
		RecipientID:   r.CreativeID,
		RecipientRole: utils.RoleCreative,
		Type:          models.NotificationProfileReview,
		Title:         "New review",
		Body:          fmt.Sprintf("You received a %d-star review.", r.Rating),
		Data:          map[string]string{"reviewId": r.ID, "bookingId": r.BookingID},
	})
	if err != nil {
		utils.GetLogger().Warn("notifyCreative: notification failed",
			zap.String("reviewID", r.ID), zap.Error(err))
	}
}
