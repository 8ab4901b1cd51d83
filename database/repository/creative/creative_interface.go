package creativeRepo

import (
	"context"

	"github.com/Codekiller51/brandconnect-server/models"

	"go.mongodb.org/mongo-driver/bson"
)

// CreativeRepository defines persistence operations for creative profiles.
type CreativeRepository interface {
	Create(ctx context.Context, creative *models.Creative) error
	GetByID(ctx context.Context, id string) (*models.Creative, error)
	GetByEmail(ctx context.Context, email string) (*models.Creative, error)
	GetByIDWithProjection(ctx context.Context, id string, projection bson.M) (*models.Creative, error)
	Update(ctx context.Context, creative *models.Creative) error
	UpdateFields(ctx context.Context, id string, fields bson.M) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, q models.CreativeSearchQuery) ([]models.Creative, error)
	ListByStatus(ctx context.Context, status string, page, pageSize int) ([]models.Creative, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	Count(ctx context.Context) (int64, error)

	GetService(ctx context.Context, creativeID, serviceID string) (*models.Service, error)
	AddPortfolioItem(ctx context.Context, creativeID string, item models.PortfolioItem) error
	RemovePortfolioItem(ctx context.Context, creativeID, itemID string) error
	ApplyRating(ctx context.Context, creativeID string, rating float64, reviewCount int) error
}
