package userRepo

import (
	"context"

	"github.com/Codekiller51/brandconnect-server/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines persistence operations for client accounts.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByIDWithProjection(ctx context.Context, id string, projection bson.M) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	UpdateFields(ctx context.Context, id string, fields bson.M) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, page, pageSize int) ([]models.User, error)
	Count(ctx context.Context) (int64, error)
}
