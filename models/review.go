package models

import "time"

// Review is a client's rating of a completed booking. One review per booking.
type Review struct {
	ID         string    `bson:"id" json:"id"`
	BookingID  string    `bson:"bookingId" json:"bookingId"`
	CreativeID string    `bson:"creativeId" json:"creativeId"`
	ClientID   string    `bson:"clientId" json:"clientId"`
	Rating     int       `bson:"rating" json:"rating"` // 1..5
	Comment    string    `bson:"comment,omitempty" json:"comment,omitempty"`
	Reply      string    `bson:"reply,omitempty" json:"reply,omitempty"`
	Hidden     bool      `bson:"hidden" json:"hidden"` // set by admin moderation
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CreateReviewRequest is the payload for leaving a review.
type CreateReviewRequest struct {
	BookingID string `json:"bookingId" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}
