package storage

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/Codekiller51/brandconnect-server/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// NewStorageService creates a new StorageServiceImpl instance. Credentials
// come from the configured Cloudinary URL, falling back to the CLOUDINARY_URL
// environment variable when unset.
func NewStorageService() (StorageService, error) {
	var (
		cld *cloudinary.Cloudinary
		err error
	)
	if url := config.AppConfig.CloudinaryURL; url != "" {
		cld, err = cloudinary.NewFromURL(url)
	} else {
		cld, err = cloudinary.New()
	}
	if err != nil {
		return nil, fmt.Errorf("StorageServiceImpl: failed to init cloudinary: %w", err)
	}
	return &StorageServiceImpl{cld: cld}, nil
}

// UploadFile uploads a file into the specified folder and returns its public
// URL plus the permanent identifier used for later deletion.
func (s *StorageServiceImpl) UploadFile(ctx context.Context, file multipart.File, destFolder string) (string, string, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder: destFolder,
	})
	if err != nil {
		return "", "", fmt.Errorf("StorageServiceImpl: failed to upload file: %w", err)
	}
	if result.PublicID == "" {
		return "", "", fmt.Errorf("StorageServiceImpl: no public ID returned")
	}
	return result.SecureURL, result.PublicID, nil
}

// DeleteFile deletes a file given its public ID.
func (s *StorageServiceImpl) DeleteFile(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("StorageServiceImpl: failed to delete file: %w", err)
	}
	return nil
}
