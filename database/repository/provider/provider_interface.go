package providerRepo

import "fixify/models"

// SearchFilter narrows provider search results. Zero values match everything.
type SearchFilter struct {
	Pincode string
	Service string
}

// ProviderRepository defines methods for provider profile data access.
// Catalogue mutations are targeted update operators so a single entry change
// never rewrites the whole document.
type ProviderRepository interface {
	// Create inserts a new provider profile.
	Create(provider *models.Provider) error
	// GetByID retrieves a profile by its id. Returns (nil, nil) when absent.
	GetByID(id models.ProviderID) (*models.Provider, error)
	// GetByUserID retrieves the profile owned by the given user.
	// Returns (nil, nil) when absent.
	GetByUserID(userID models.UserID) (*models.Provider, error)
	// GetAll retrieves all provider profiles.
	GetAll() ([]models.Provider, error)
	// Search retrieves verified providers matching the filter; the service
	// name matches approved catalogue entries only.
	Search(filter SearchFilter) ([]models.Provider, error)
	// AppendService adds a catalogue entry and clears the verified flag.
	AppendService(id models.ProviderID, svc models.Service) error
	// UpdateServicePrice sets the price of one catalogue entry.
	UpdateServicePrice(id models.ProviderID, serviceID string, price float64) error
	// RemoveService deletes one catalogue entry.
	RemoveService(id models.ProviderID, serviceID string) error
	// ApproveService flips one catalogue entry's approval flag to true.
	ApproveService(id models.ProviderID, serviceID string) error
	// SetVerifiedApproveAll marks the provider verified and approves every
	// catalogue entry.
	SetVerifiedApproveAll(id models.ProviderID) error
	// SetOnline sets the online flag.
	SetOnline(id models.ProviderID, online bool) error
	// SetBlocked sets the blocked flag.
	SetBlocked(id models.ProviderID, blocked bool) error
	// SetPincodesExperience updates operating areas and experience.
	SetPincodesExperience(id models.ProviderID, pincodes []string, experience int) error
}
