package models

import "time"

// User roles.
const (
	RoleUser     = "user"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

// User represents a platform account. A user is promoted to the provider
// role when a Provider profile is created for them.
type User struct {
	ID           UserID    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	Pincode      string    `bson:"pincode,omitempty" json:"pincode,omitempty"`
	Avatar       string    `bson:"avatar,omitempty" json:"avatar,omitempty"`
	IsBlocked    bool      `bson:"isBlocked" json:"isBlocked"`
	Rating       float64   `bson:"rating" json:"rating"`
	TotalReviews int       `bson:"totalReviews" json:"totalReviews"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
