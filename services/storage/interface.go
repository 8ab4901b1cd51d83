package storage

import (
	"context"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService handles media uploads for profile images and portfolio work.
type StorageService interface {
	UploadFile(ctx context.Context, file multipart.File, destFolder string) (url, publicID string, err error)
	DeleteFile(ctx context.Context, publicID string) error
}

// StorageServiceImpl is the Cloudinary-backed implementation.
type StorageServiceImpl struct {
	cld *cloudinary.Cloudinary
}
