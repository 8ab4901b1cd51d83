package creative

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	availabilityRepo "github.com/Codekiller51/brandconnect-server/database/repository/availability"
	creativeRepo "github.com/Codekiller51/brandconnect-server/database/repository/creative"
	"github.com/Codekiller51/brandconnect-server/models"
	"github.com/Codekiller51/brandconnect-server/services/storage"
	"github.com/Codekiller51/brandconnect-server/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

var (
	// ErrInvalidCredentials is returned for a bad email/password pair.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrAccountSuspended is returned when a suspended account tries to sign in.
	ErrAccountSuspended = errors.New("account suspended")
	// ErrNotApproved is returned when a profile is requested publicly before
	// an admin has approved it.
	ErrNotApproved = errors.New("creative profile not available")
)

// DefaultCreativeService is the production implementation of CreativeService.
type DefaultCreativeService struct {
	repo     creativeRepo.CreativeRepository
	schedule availabilityRepo.AvailabilityRepository
	storage  storage.StorageService
}

func NewDefaultCreativeService(
	repo creativeRepo.CreativeRepository,
	schedule availabilityRepo.AvailabilityRepository,
	storageSvc storage.StorageService,
) *DefaultCreativeService {
	return &DefaultCreativeService{repo: repo, schedule: schedule, storage: storageSvc}
}

func (s *DefaultCreativeService) Register(ctx context.Context, data models.CreativeRegistrationData) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(data.Email))

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("Register: lookup failed: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("an account with email %s already exists", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("Register: failed to hash password: %w", err)
	}

	now := time.Now()
	c := &models.Creative{
		ID:           uuid.New().String(),
		FullName:     data.FullName,
		BusinessName: data.BusinessName,
		Email:        email,
		PhoneNumber:  data.PhoneNumber,
		PasswordHash: string(hash),
		Category:     data.Category,
		Region:       data.Region,
		Bio:          data.Bio,
		Status:       models.CreativeStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	token, err := s.issueSession(ctx, c)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("Register: failed to create creative: %w", err)
	}

	utils.GetLogger().Info("creative registered, pending approval",
		zap.String("creativeID", c.ID), zap.String("category", c.Category))
	return &models.AuthResponse{
		ID:       c.ID,
		FullName: c.FullName,
		Email:    c.Email,
		Role:     utils.RoleCreative,
		Token:    token,
	}, nil
}

func (s *DefaultCreativeService) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	c, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("Login: lookup failed: %w", err)
	}
	if c == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if c.Suspended {
		return nil, ErrAccountSuspended
	}

	token, err := s.issueSession(ctx, c)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateFields(ctx, c.ID, bson.M{"tokenHash": c.TokenHash}); err != nil {
		return nil, fmt.Errorf("Login: failed to persist session: %w", err)
	}

	return &models.AuthResponse{
		ID:       c.ID,
		FullName: c.FullName,
		Email:    c.Email,
		Role:     utils.RoleCreative,
		Token:    token,
	}, nil
}

func (s *DefaultCreativeService) issueSession(ctx context.Context, c *models.Creative) (string, error) {
	token, err := utils.GenerateToken(c.ID, c.Email, utils.RoleCreative, tokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	c.TokenHash = utils.HashToken(token)

	if err := utils.GetAuthCacheClient().Set(ctx, utils.AuthCachePrefix+c.ID, c.TokenHash, tokenTTL).Err(); err != nil {
		utils.GetLogger().Warn("issueSession: auth cache write failed", zap.String("creativeID", c.ID), zap.Error(err))
	}
	return token, nil
}

func (s *DefaultCreativeService) Logout(ctx context.Context, creativeID string) error {
	if err := s.repo.UpdateFields(ctx, creativeID, bson.M{"tokenHash": ""}); err != nil {
		return fmt.Errorf("Logout: failed to clear session: %w", err)
	}
	if err := utils.GetAuthCacheClient().Del(ctx, utils.AuthCachePrefix+creativeID).Err(); err != nil {
		utils.GetLogger().Warn("Logout: auth cache delete failed", zap.String("creativeID", creativeID), zap.Error(err))
	}
	return nil
}

func (s *DefaultCreativeService) GetByID(ctx context.Context, id string) (*models.Creative, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("creative %s not found", id)
	}
	return c, nil
}

// GetPublicProfile returns an approved creative's profile for public viewing.
// Pending, rejected and suspended profiles are invisible to clients.
func (s *DefaultCreativeService) GetPublicProfile(ctx context.Context, id string) (*models.Creative, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil || c.Status != models.CreativeStatusApproved || c.Suspended {
		return nil, ErrNotApproved
	}
	return c, nil
}

func (s *DefaultCreativeService) Search(ctx context.Context, q models.CreativeSearchQuery) ([]models.Creative, error) {
	return s.repo.Search(ctx, q)
}

func (s *DefaultCreativeService) UpdateProfile(ctx context.Context, creativeID string, updates map[string]interface{}) (*models.Creative, error) {
	allowed := map[string]bool{
		"fullName": true, "businessName": true, "phoneNumber": true,
		"category": true, "region": true, "bio": true, "profileImage": true,
	}
	fields := bson.M{}
	for k, v := range updates {
		if allowed[k] {
			fields[k] = v
		}
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("no updatable fields provided")
	}
	if err := s.repo.UpdateFields(ctx, creativeID, fields); err != nil {
		return nil, fmt.Errorf("UpdateProfile: %w", err)
	}
	return s.GetByID(ctx, creativeID)
}

func (s *DefaultCreativeService) UpdateFCMToken(ctx context.Context, creativeID, token string) error {
	return s.repo.UpdateFields(ctx, creativeID, bson.M{"fcmToken": token})
}

// UpsertService adds or replaces one service offering on the profile.
func (s *DefaultCreativeService) UpsertService(ctx context.Context, creativeID string, svc models.Service) (*models.Service, error) {
	if svc.Name == "" {
		return nil, fmt.Errorf("service name is required")
	}
	if svc.DurationMinutes <= 0 {
		return nil, fmt.Errorf("service duration must be positive")
	}
	if svc.Price < 0 {
		return nil, fmt.Errorf("service price cannot be negative")
	}
	if svc.Currency == "" {
		svc.Currency = "TZS"
	}

	c, err := s.GetByID(ctx, creativeID)
	if err != nil {
		return nil, err
	}

	services := c.Services
	if svc.ID == "" {
		svc.ID = uuid.New().String()
		services = append(services, svc)
	} else {
		replaced := false
		for i := range services {
			if services[i].ID == svc.ID {
				services[i] = svc
				replaced = true
				break
			}
		}
		if !replaced {
			return nil, fmt.Errorf("service %s not found", svc.ID)
		}
	}

	if err := s.repo.UpdateFields(ctx, creativeID, bson.M{"services": services}); err != nil {
		return nil, fmt.Errorf("UpsertService: %w", err)
	}
	return &svc, nil
}

func (s *DefaultCreativeService) RemoveService(ctx context.Context, creativeID, serviceID string) error {
	c, err := s.GetByID(ctx, creativeID)
	if err != nil {
		return err
	}

	services := make([]models.Service, 0, len(c.Services))
	found := false
	for _, svc := range c.Services {
		if svc.ID == serviceID {
			found = true
			continue
		}
		services = append(services, svc)
	}
	if !found {
		return fmt.Errorf("service %s not found", serviceID)
	}
	return s.repo.UpdateFields(ctx, creativeID, bson.M{"services": services})
}

// AddPortfolioItem uploads the file to media storage and records it on the
// profile.
func (s *DefaultCreativeService) AddPortfolioItem(ctx context.Context, creativeID, title string, file multipart.File) (*models.PortfolioItem, error) {
	url, publicID, err := s.storage.UploadFile(ctx, file, "portfolio/"+creativeID)
	if err != nil {
		return nil, fmt.Errorf("AddPortfolioItem: upload failed: %w", err)
	}

	item := models.PortfolioItem{
		ID:        uuid.New().String(),
		Title:     title,
		URL:       url,
		PublicID:  publicID,
		CreatedAt: time.Now(),
	}
	if err := s.repo.AddPortfolioItem(ctx, creativeID, item); err != nil {
		// Roll back the orphaned upload.
		if delErr := s.storage.DeleteFile(ctx, publicID); delErr != nil {
			utils.GetLogger().Warn("AddPortfolioItem: orphaned upload cleanup failed",
				zap.String("publicID", publicID), zap.Error(delErr))
		}
		return nil, fmt.Errorf("AddPortfolioItem: %w", err)
	}
	return &item, nil
}

func (s *DefaultCreativeService) RemovePortfolioItem(ctx context.Context, creativeID, itemID string) error {
	c, err := s.GetByID(ctx, creativeID)
	if err != nil {
		return err
	}

	var publicID string
	for _, item := range c.Portfolio {
		if item.ID == itemID {
			publicID = item.PublicID
			break
		}
	}
	if publicID == "" {
		return fmt.Errorf("portfolio item %s not found", itemID)
	}

	if err := s.repo.RemovePortfolioItem(ctx, creativeID, itemID); err != nil {
		return fmt.Errorf("RemovePortfolioItem: %w", err)
	}
	if err := s.storage.DeleteFile(ctx, publicID); err != nil {
		utils.GetLogger().Warn("RemovePortfolioItem: storage delete failed",
			zap.String("publicID", publicID), zap.Error(err))
	}
	return nil
}
