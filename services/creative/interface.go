package creative

import (
	"context"
	"mime/multipart"

	"github.com/Codekiller51/brandconnect-server/models"
)

// CreativeService manages creative accounts: authentication, public profile,
// service offerings, weekly availability and portfolio media.
type CreativeService interface {
	Register(ctx context.Context, data models.CreativeRegistrationData) (*models.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Logout(ctx context.Context, creativeID string) error
	GetByID(ctx context.Context, id string) (*models.Creative, error)
	GetPublicProfile(ctx context.Context, id string) (*models.Creative, error)
	Search(ctx context.Context, q models.CreativeSearchQuery) ([]models.Creative, error)
	UpdateProfile(ctx context.Context, creativeID string, updates map[string]interface{}) (*models.Creative, error)
	UpdateFCMToken(ctx context.Context, creativeID, token string) error

	UpsertService(ctx context.Context, creativeID string, svc models.Service) (*models.Service, error)
	RemoveService(ctx context.Context, creativeID, serviceID string) error

	GetAvailability(ctx context.Context, creativeID string) (*models.AvailabilitySettings, error)
	SetAvailability(ctx context.Context, creativeID string, settings models.AvailabilitySettings) (*models.AvailabilitySettings, error)

	AddPortfolioItem(ctx context.Context, creativeID, title string, file multipart.File) (*models.PortfolioItem, error)
	RemovePortfolioItem(ctx context.Context, creativeID, itemID string) error
}
