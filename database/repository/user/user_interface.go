package userRepo

import "fixify/models"

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create inserts a new user document.
	Create(user *models.User) error
	// GetByID retrieves a user by its unique ID. Returns (nil, nil) when absent.
	GetByID(id models.UserID) (*models.User, error)
	// GetByEmail retrieves a user by email. Returns (nil, nil) when absent.
	GetByEmail(email string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll() ([]models.User, error)
	// SetRole updates the role of a user.
	SetRole(id models.UserID, role string) error
	// SetBlocked flips the blocked flag of a user.
	SetBlocked(id models.UserID, blocked bool) error
	// SetRating updates the aggregate rating and review count of a user.
	SetRating(id models.UserID, rating float64, totalReviews int) error
}
