package creative

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	creativeRepo "github.com/Codekiller51/brandconnect-server/database/repository/creative"
	"github.com/Codekiller51/brandconnect-server/models"
)

type fakeCreatives struct {
	creativeRepo.CreativeRepository
	items    []models.PortfolioItem
	failWith error
}

func (f *fakeCreatives) AddPortfolioItem(ctx context.Context, creativeID string, item models.PortfolioItem) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.items = append(f.items, item)
	return nil
}

type fakeStorage struct {
	uploads int
	deleted []string
}

func (f *fakeStorage) UploadFile(ctx context.Context, file multipart.File, destFolder string) (string, string, error) {
	f.uploads++
	return "https://cdn.example/" + destFolder + "/asset.jpg", destFolder + "/asset", nil
}

func (f *fakeStorage) DeleteFile(ctx context.Context, publicID string) error {
	f.deleted = append(f.deleted, publicID)
	return nil
}

func TestAddPortfolioItemRecordsUpload(t *testing.T) {
	repo := &fakeCreatives{}
	store := &fakeStorage{}
	svc := NewDefaultCreativeService(repo, nil, store)

	item, err := svc.AddPortfolioItem(context.Background(), "cr1", "Wedding shoot", nil)
	if err != nil {
		t.Fatalf("AddPortfolioItem returned error: %v", err)
	}
	if item.Title != "Wedding shoot" || item.URL == "" || item.PublicID == "" {
		t.Errorf("item = %+v, want title, URL and public ID set", item)
	}
	if len(repo.items) != 1 {
		t.Fatalf("recorded %d items, want 1", len(repo.items))
	}
	if store.uploads != 1 {
		t.Errorf("uploads = %d, want 1", store.uploads)
	}
}

func TestAddPortfolioItemCleansUpOnRecordFailure(t *testing.T) {
	repo := &fakeCreatives{failWith: errors.New("write failed")}
	store := &fakeStorage{}
	svc := NewDefaultCreativeService(repo, nil, store)

	if _, err := svc.AddPortfolioItem(context.Background(), "cr1", "Wedding shoot", nil); err == nil {
		t.Fatal("expected error when the profile write fails")
	}
	if len(store.deleted) != 1 {
		t.Fatalf("deleted %d uploads, want the orphaned one removed", len(store.deleted))
	}
}
