package user

import (
	"context"

	"github.com/Codekiller51/brandconnect-server/models"
)

// UserService manages client accounts and authentication.
type UserService interface {
	Register(ctx context.Context, data models.UserRegistrationData) (*models.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Logout(ctx context.Context, userID string) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, updates map[string]interface{}) (*models.User, error)
	UpdateFCMToken(ctx context.Context, userID, token string) error
	Delete(ctx context.Context, userID string) error
}
