package review

import (
	"context"
	"errors"
	"testing"

	bookingRepo "github.com/Codekiller51/brandconnect-server/database/repository/booking"
	creativeRepo "github.com/Codekiller51/brandconnect-server/database/repository/creative"
	reviewRepo "github.com/Codekiller51/brandconnect-server/database/repository/review"
	"github.com/Codekiller51/brandconnect-server/models"
)

type fakeReviews struct {
	reviewRepo.ReviewRepository
	byBooking map[string]*models.Review
	created   []*models.Review
	avg       float64
	count     int
}

func (f *fakeReviews) GetByBookingID(ctx context.Context, bookingID string) (*models.Review, error) {
	return f.byBooking[bookingID], nil
}

func (f *fakeReviews) Create(ctx context.Context, r *models.Review) error {
	f.created = append(f.created, r)
	return nil
}

func (f *fakeReviews) Aggregate(ctx context.Context, creativeID string) (float64, int, error) {
	return f.avg, f.count, nil
}

type fakeBookings struct {
	bookingRepo.BookingRepository
	booking *models.Booking
}

func (f *fakeBookings) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	if f.booking != nil && f.booking.ID == id {
		return f.booking, nil
	}
	return nil, nil
}

type fakeCreatives struct {
	creativeRepo.CreativeRepository
	ratings map[string]float64
	counts  map[string]int
}

func (f *fakeCreatives) ApplyRating(ctx context.Context, creativeID string, rating float64, reviewCount int) error {
	if f.ratings == nil {
		f.ratings = map[string]float64{}
		f.counts = map[string]int{}
	}
	f.ratings[creativeID] = rating
	f.counts[creativeID] = reviewCount
	return nil
}

func completedBooking() *models.Booking {
	return &models.Booking{
		ID:         "b1",
		CreativeID: "cr1",
		ClientID:   "client1",
		Status:     models.BookingStatusCompleted,
	}
}

func TestCreateReviewUpdatesAggregate(t *testing.T) {
	reviews := &fakeReviews{avg: 4.5, count: 2}
	creatives := &fakeCreatives{}
	svc := NewDefaultReviewService(reviews, &fakeBookings{booking: completedBooking()}, creatives, nil)

	r, err := svc.Create(context.Background(), "client1", models.CreateReviewRequest{
		BookingID: "b1",
		Rating:    5,
		Comment:   "Great work",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if r.CreativeID != "cr1" || r.Rating != 5 {
		t.Errorf("review = %+v, want creative cr1 rating 5", r)
	}
	if len(reviews.created) != 1 {
		t.Fatalf("created %d reviews, want 1", len(reviews.created))
	}
	if creatives.ratings["cr1"] != 4.5 || creatives.counts["cr1"] != 2 {
		t.Errorf("aggregate = %v/%d, want 4.5/2", creatives.ratings["cr1"], creatives.counts["cr1"])
	}
}

func TestCreateReviewRequiresCompletedBooking(t *testing.T) {
	b := completedBooking()
	b.Status = models.BookingStatusConfirmed
	svc := NewDefaultReviewService(&fakeReviews{}, &fakeBookings{booking: b}, &fakeCreatives{}, nil)

	_, err := svc.Create(context.Background(), "client1", models.CreateReviewRequest{BookingID: "b1", Rating: 4})
	if !errors.Is(err, ErrNotReviewable) {
		t.Fatalf("err = %v, want ErrNotReviewable", err)
	}
}

func TestCreateReviewRequiresOwnBooking(t *testing.T) {
	svc := NewDefaultReviewService(&fakeReviews{}, &fakeBookings{booking: completedBooking()}, &fakeCreatives{}, nil)

	_, err := svc.Create(context.Background(), "someone-else", models.CreateReviewRequest{BookingID: "b1", Rating: 4})
	if !errors.Is(err, ErrNotReviewable) {
		t.Fatalf("err = %v, want ErrNotReviewable", err)
	}
}

func TestCreateReviewOncePerBooking(t *testing.T) {
	reviews := &fakeReviews{
		byBooking: map[string]*models.Review{"b1": {ID: "r1", BookingID: "b1"}},
	}
	svc := NewDefaultReviewService(reviews, &fakeBookings{booking: completedBooking()}, &fakeCreatives{}, nil)

	_, err := svc.Create(context.Background(), "client1", models.CreateReviewRequest{BookingID: "b1", Rating: 4})
	if !errors.Is(err, ErrAlreadyReviewed) {
		t.Fatalf("err = %v, want ErrAlreadyReviewed", err)
	}
}

func TestCreateReviewRejectsOutOfRangeRating(t *testing.T) {
	svc := NewDefaultReviewService(&fakeReviews{}, &fakeBookings{booking: completedBooking()}, &fakeCreatives{}, nil)

	for _, rating := range []int{0, 6, -1} {
		if _, err := svc.Create(context.Background(), "client1", models.CreateReviewRequest{BookingID: "b1", Rating: rating}); err == nil {
			t.Errorf("rating %d: expected error", rating)
		}
	}
}
