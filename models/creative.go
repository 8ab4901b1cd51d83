package models

import "time"

// Creative approval lifecycle. Only approved creatives are listed publicly.
const (
	CreativeStatusPending  = "pending"
	CreativeStatusApproved = "approved"
	CreativeStatusRejected = "rejected"
)

// Creative is a creative professional's account and public profile.
type Creative struct {
	ID           string          `bson:"id" json:"id"`
	FullName     string          `bson:"fullName" json:"fullName"`
	BusinessName string          `bson:"businessName,omitempty" json:"businessName,omitempty"`
	Email        string          `bson:"email" json:"email"`
	PhoneNumber  string          `bson:"phoneNumber" json:"phoneNumber"`
	Password     string          `bson:"-" json:"password,omitempty"`
	PasswordHash string          `bson:"passwordHash" json:"-"`
	TokenHash    string          `bson:"tokenHash" json:"-"`
	FCMToken     string          `bson:"fcmToken,omitempty" json:"fcmToken,omitempty"`
	Category     string          `bson:"category" json:"category"` // e.g. "photography", "graphic-design"
	Region       string          `bson:"region" json:"region"`     // e.g. "Dar es Salaam", "Arusha"
	Bio          string          `bson:"bio,omitempty" json:"bio,omitempty"`
	ProfileImage string          `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	Portfolio    []PortfolioItem `bson:"portfolio,omitempty" json:"portfolio,omitempty"`
	Services     []Service       `bson:"services,omitempty" json:"services,omitempty"`
	Status       string          `bson:"status" json:"status"`
	Rating       float64         `bson:"rating" json:"rating"`
	ReviewCount  int             `bson:"reviewCount" json:"reviewCount"`
	Suspended    bool            `bson:"suspended" json:"suspended"`
	CreatedAt    time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// PortfolioItem is one uploaded work sample.
type PortfolioItem struct {
	ID        string    `bson:"id" json:"id"`
	Title     string    `bson:"title,omitempty" json:"title,omitempty"`
	URL       string    `bson:"url" json:"url"`
	PublicID  string    `bson:"publicId" json:"-"` // storage handle used for deletion
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Service is a bookable offering on a creative's profile.
type Service struct {
	ID              string  `bson:"id" json:"id"`
	Name            string  `bson:"name" json:"name"`
	Description     string  `bson:"description,omitempty" json:"description,omitempty"`
	DurationMinutes int     `bson:"durationMinutes" json:"durationMinutes"`
	Price           float64 `bson:"price" json:"price"`
	Currency        string  `bson:"currency" json:"currency"` // e.g. "TZS"
}

// CreativeRegistrationData carries the fields required to open a creative account.
type CreativeRegistrationData struct {
	FullName     string `json:"fullName" binding:"required"`
	BusinessName string `json:"businessName"`
	Email        string `json:"email" binding:"required,email"`
	PhoneNumber  string `json:"phoneNumber" binding:"required"`
	Password     string `json:"password" binding:"required"`
	Category     string `json:"category" binding:"required"`
	Region       string `json:"region" binding:"required"`
	Bio          string `json:"bio"`
}

// CreativeSearchQuery captures the browse/search filters.
type CreativeSearchQuery struct {
	Category  string `form:"category"`
	Region    string `form:"region"`
	Text      string `form:"q"`
	MinRating float64 `form:"minRating"`
	Page      int    `form:"page"`
	PageSize  int    `form:"pageSize"`
}
