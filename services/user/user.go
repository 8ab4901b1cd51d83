package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	userRepo "github.com/Codekiller51/brandconnect-server/database/repository/user"
	"github.com/Codekiller51/brandconnect-server/models"
	"github.com/Codekiller51/brandconnect-server/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL is how long a session token stays valid.
const tokenTTL = 72 * time.Hour

// ErrInvalidCredentials is returned for a bad email/password pair. The caller
// maps it to 401 without leaking which half was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrAccountSuspended is returned when a suspended account tries to sign in.
var ErrAccountSuspended = errors.New("account suspended")

// DefaultUserService is the production implementation of UserService.
type DefaultUserService struct {
	repo userRepo.UserRepository
}

func NewDefaultUserService(repo userRepo.UserRepository) *DefaultUserService {
	return &DefaultUserService{repo: repo}
}

func (s *DefaultUserService) Register(ctx context.Context, data models.UserRegistrationData) (*models.AuthResponse, error) {
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
	u := &models.User{
		ID:           uuid.New().String(),
		FullName:     data.FullName,
		Email:        email,
		PhoneNumber:  data.PhoneNumber,
		PasswordHash: string(hash),
		Region:       data.Region,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	token, err := s.issueSession(ctx, u)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("Register: failed to create user: %w", err)
	}

	utils.GetLogger().Info("user registered", zap.String("userID", u.ID))
	return &models.AuthResponse{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Role:     utils.RoleClient,
		Token:    token,
	}, nil
}

func (s *DefaultUserService) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("Login: lookup failed: %w", err)
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if u.Suspended {
		return nil, ErrAccountSuspended
	}

	token, err := s.issueSession(ctx, u)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateFields(ctx, u.ID, bson.M{"tokenHash": u.TokenHash}); err != nil {
		return nil, fmt.Errorf("Login: failed to persist session: %w", err)
	}

	return &models.AuthResponse{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Role:     utils.RoleClient,
		Token:    token,
	}, nil
}

// issueSession mints a JWT, stores its hash on the account struct and mirrors
// it into the auth cache.
func (s *DefaultUserService) issueSession(ctx context.Context, u *models.User) (string, error) {
	token, err := utils.GenerateToken(u.ID, u.Email, utils.RoleClient, tokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	u.TokenHash = utils.HashToken(token)

	if err := utils.GetAuthCacheClient().Set(ctx, utils.AuthCachePrefix+u.ID, u.TokenHash, tokenTTL).Err(); err != nil {
		utils.GetLogger().Warn("issueSession: auth cache write failed", zap.String("userID", u.ID), zap.Error(err))
	}
	return token, nil
}

func (s *DefaultUserService) Logout(ctx context.Context, userID string) error {
	if err := s.repo.UpdateFields(ctx, userID, bson.M{"tokenHash": ""}); err != nil {
		return fmt.Errorf("Logout: failed to clear session: %w", err)
	}
	if err := utils.GetAuthCacheClient().Del(ctx, utils.AuthCachePrefix+userID).Err(); err != nil {
		utils.GetLogger().Warn("Logout: auth cache delete failed", zap.String("userID", userID), zap.Error(err))
	}
	return nil
}

func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("user %s not found", id)
	}
	return u, nil
}

// UpdateProfile applies a whitelisted set of profile fields.
func (s *DefaultUserService) UpdateProfile(ctx context.Context, userID string, updates map[string]interface{}) (*models.User, error) {
	allowed := map[string]bool{"fullName": true, "phoneNumber": true, "region": true}
	fields := bson.M{}
	for k, v := range updates {
		if allowed[k] {
			fields[k] = v
		}
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("no updatable fields provided")
	}
	if err := s.repo.UpdateFields(ctx, userID, fields); err != nil {
		return nil, fmt.Errorf("UpdateProfile: %w", err)
	}
	return s.GetByID(ctx, userID)
}

func (s *DefaultUserService) UpdateFCMToken(ctx context.Context, userID, token string) error {
	return s.repo.UpdateFields(ctx, userID, bson.M{"fcmToken": token})
}

func (s *DefaultUserService) Delete(ctx context.Context, userID string) error {
	if err := s.repo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if err := utils.GetAuthCacheClient().Del(ctx, utils.AuthCachePrefix+userID).Err(); err != nil {
		utils.GetLogger().Warn("Delete: auth cache delete failed", zap.String("userID", userID), zap.Error(err))
	}
	return nil
}
