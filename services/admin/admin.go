package admin

import (
	"context"
	"fmt"
	"time"

	bookingRepo "github.com/Codekiller51/brandconnect-server/database/repository/booking"
	creativeRepo "github.com/Codekiller51/brandconnect-server/database/repository/creative"
	reviewRepo "github.com/Codekiller51/brandconnect-server/database/repository/review"
	userRepo "github.com/Codekiller51/brandconnect-server/database/repository/user"
	"github.com/Codekiller51/brandconnect-server/models"
	"github.com/Codekiller51/brandconnect-server/services/notification"
	"github.com/Codekiller51/brandconnect-server/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// AdminService covers moderation and the platform dashboard.
type AdminService interface {
	PendingCreatives(ctx context.Context, page, pageSize int) ([]models.Creative, error)
	SetCreativeStatus(ctx context.Context, creativeID, status string) error
	SetUserSuspended(ctx context.Context, userID string, suspended bool) error
	SetCreativeSuspended(ctx context.Context, creativeID string, suspended bool) error
	Stats(ctx context.Context) (*models.PlatformStats, error)
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	users     userRepo.UserRepository
	creatives creativeRepo.CreativeRepository
	bookings  bookingRepo.BookingRepository
	reviews   reviewRepo.ReviewRepository
	notifier  notification.NotificationService
}

func NewDefaultAdminService(
	users userRepo.UserRepository,
	creatives creativeRepo.CreativeRepository,
	bookings bookingRepo.BookingRepository,
	reviews reviewRepo.ReviewRepository,
	notifier notification.NotificationService,
) *DefaultAdminService {
	return &DefaultAdminService{
		users:     users,
		creatives: creatives,
		bookings:  bookings,
		reviews:   reviews,
		notifier:  notifier,
	}
}

// PendingCreatives is the approval queue, oldest first from the repo's sort.
func (s *DefaultAdminService) PendingCreatives(ctx context.Context, page, pageSize int) ([]models.Creative, error) {
	return s.creatives.ListByStatus(ctx, models.CreativeStatusPending, page, pageSize)
}

// SetCreativeStatus approves or rejects a pending profile and tells the
// creative the outcome.
func (s *DefaultAdminService) SetCreativeStatus(ctx context.Context, creativeID, status string) error {
	if status != models.CreativeStatusApproved && status != models.CreativeStatusRejected {
		return fmt.Errorf("invalid creative status %q", status)
	}

	c, err := s.creatives.GetByID(ctx, creativeID)
	if err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("creative %s not found", creativeID)
	}

	if err := s.creatives.UpdateFields(ctx, creativeID, bson.M{"status": status}); err != nil {
		return fmt.Errorf("SetCreativeStatus: %w", err)
	}

	utils.GetLogger().Info("creative status changed",
		zap.String("creativeID", creativeID), zap.String("status", status))

	body := "Your profile has been approved. You are now visible to clients."
	if status == models.CreativeStatusRejected {
		body = "Your profile was not approved. Contact support for details."
	}
	if s.notifier != nil {
		err := s.notifier.Notify(ctx, &models.Notification{
			RecipientID:   creativeID,
			RecipientRole: utils.RoleCreative,
			Type:          models.NotificationProfileReview,
			Title:         "Profile review",
			Body:          body,
		})
		if err != nil {
			utils.GetLogger().Warn("SetCreativeStatus: notification failed",
				zap.String("creativeID", creativeID), zap.Error(err))
		}
	}
	return nil
}

// SetUserSuspended flips a client account's suspension and kills its session.
func (s *DefaultAdminService) SetUserSuspended(ctx context.Context, userID string, suspended bool) error {
	fields := bson.M{"suspended": suspended}
	if suspended {
		fields["tokenHash"] = ""
	}
	if err := s.users.UpdateFields(ctx, userID, fields); err != nil {
		return fmt.Errorf("SetUserSuspended: %w", err)
	}
	if suspended {
		s.dropSession(ctx, userID)
	}
	return nil
}

// SetCreativeSuspended flips a creative account's suspension and kills its
// session. A suspended creative disappears from search immediately.
func (s *DefaultAdminService) SetCreativeSuspended(ctx context.Context, creativeID string, suspended bool) error {
	fields := bson.M{"suspended": suspended}
	if suspended {
		fields["tokenHash"] = ""
	}
	if err := s.creatives.UpdateFields(ctx, creativeID, fields); err != nil {
		return fmt.Errorf("SetCreativeSuspended: %w", err)
	}
	if suspended {
		s.dropSession(ctx, creativeID)
	}
	return nil
}

func (s *DefaultAdminService) dropSession(ctx context.Context, accountID string) {
	if err := utils.GetAuthCacheClient().Del(ctx, utils.AuthCachePrefix+accountID).Err(); err != nil {
		utils.GetLogger().Warn("dropSession: auth cache delete failed",
			zap.String("accountID", accountID), zap.Error(err))
	}
}

// Stats assembles the dashboard summary.
func (s *DefaultAdminService) Stats(ctx context.Context) (*models.PlatformStats, error) {
	stats := &models.PlatformStats{}
	var err error

	if stats.TotalUsers, err = s.users.Count(ctx); err != nil {
		return nil, fmt.Errorf("Stats: users: %w", err)
	}
	if stats.TotalCreatives, err = s.creatives.Count(ctx); err != nil {
		return nil, fmt.Errorf("Stats: creatives: %w", err)
	}
	if stats.PendingCreatives, err = s.creatives.CountByStatus(ctx, models.CreativeStatusPending); err != nil {
		return nil, fmt.Errorf("Stats: pending creatives: %w", err)
	}
	if stats.TotalBookings, err = s.bookings.Count(ctx); err != nil {
		return nil, fmt.Errorf("Stats: bookings: %w", err)
	}

	now := time.Now()
	week := now.AddDate(0, 0, -7).Format("2006-01-02")
	month := now.AddDate(0, 0, -30).Format("2006-01-02")
	if stats.NewBookings7d, err = s.bookings.CountCreatedSince(ctx, week); err != nil {
		return nil, fmt.Errorf("Stats: weekly bookings: %w", err)
	}
	if stats.NewBookings30d, err = s.bookings.CountCreatedSince(ctx, month); err != nil {
		return nil, fmt.Errorf("Stats: monthly bookings: %w", err)
	}
	if stats.CompletedRevenue, err = s.bookings.CompletedRevenue(ctx); err != nil {
		return nil, fmt.Errorf("Stats: revenue: %w", err)
	}
	if stats.AverageRating, err = s.reviews.AverageRatingAll(ctx); err != nil {
		return nil, fmt.Errorf("Stats: rating: %w", err)
	}
	return stats, nil
}
