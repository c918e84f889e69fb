package provider

import (
	"context"
	"fmt"
	"strings"
	"time"

	providerRepo "fixify/database/repository/provider"
	userRepo "fixify/database/repository/user"
	"fixify/models"
	"fixify/utils"

	"github.com/google/uuid"
)

var (
	errPincodesRequired = utils.ValidationError{Msg: "at least one pincode is required"}
	errServiceRequired  = utils.ValidationError{Msg: "service name and category are required"}
	errProfileExists    = utils.StateConflictError{Msg: "provider profile already exists"}
)

const tokenTTL = 24 * time.Hour

// AddServiceInput carries a new catalogue entry.
type AddServiceInput struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
}

// CreateProfileResult returns the new profile together with a token carrying
// the provider role, so the caller can use provider endpoints without logging
// in again.
type CreateProfileResult struct {
	Provider *models.Provider `json:"provider"`
	Token    string           `json:"token"`
}

// Service manages provider profiles and their service catalogues.
type Service interface {
	CreateProfile(ctx context.Context, userID models.UserID, pincodes []string, experience int) (*CreateProfileResult, error)
	GetMyProfile(ctx context.Context, userID models.UserID) (*models.Provider, error)
	UpdateProfile(ctx context.Context, userID models.UserID, pincodes []string, experience int) (*models.Provider, error)
	AddService(ctx context.Context, userID models.UserID, in AddServiceInput) (*models.Service, error)
	UpdateServicePrice(ctx context.Context, userID models.UserID, serviceID string, price float64) error
	RemoveService(ctx context.Context, userID models.UserID, serviceID string) error
	ToggleAvailability(ctx context.Context, userID models.UserID) (bool, error)
	Search(ctx context.Context, pincode, service string) ([]models.Provider, error)
}

// DefaultProviderService implements Service.
type DefaultProviderService struct {
	Repo  providerRepo.ProviderRepository
	Users userRepo.UserRepository
}

// CreateProfile creates the one provider profile for a user and promotes the
// account to the provider role.
func (s *DefaultProviderService) CreateProfile(ctx context.Context, userID models.UserID, pincodes []string, experience int) (*CreateProfileResult, error) {
	if len(pincodes) == 0 {
		return nil, errPincodesRequired
	}

	existing, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errProfileExists
	}

	if err := s.Users.SetRole(userID, models.RoleProvider); err != nil {
		return nil, fmt.Errorf("failed to promote user %s: %w", userID, err)
	}

	p := &models.Provider{
		ID:         models.ProviderID(uuid.New().String()),
		UserID:     userID,
		Services:   []models.Service{},
		Pincodes:   pincodes,
		Experience: experience,
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, fmt.Errorf("failed to create provider profile: %w", err)
	}

	token, err := utils.GenerateToken(string(userID), models.RoleProvider, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue provider token: %w", err)
	}
	return &CreateProfileResult{Provider: p, Token: token}, nil
}

// GetMyProfile returns the caller's provider profile.
func (s *DefaultProviderService) GetMyProfile(ctx context.Context, userID models.UserID) (*models.Provider, error) {
	return s.requireProfile(userID)
}

// UpdateProfile updates operating areas and experience.
func (s *DefaultProviderService) UpdateProfile(ctx context.Context, userID models.UserID, pincodes []string, experience int) (*models.Provider, error) {
	p, err := s.requireProfile(userID)
	if err != nil {
		return nil, err
	}
	if len(pincodes) == 0 {
		pincodes = p.Pincodes
	}
	if err := s.Repo.SetPincodesExperience(p.ID, pincodes, experience); err != nil {
		return nil, err
	}
	p.Pincodes = pincodes
	p.Experience = experience
	return p, nil
}

// AddService appends an unapproved catalogue entry. The provider drops back
// to unverified until an admin approves again.
func (s *DefaultProviderService) AddService(ctx context.Context, userID models.UserID, in AddServiceInput) (*models.Service, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Category) == "" {
		return nil, errServiceRequired
	}

	p, err := s.requireProfile(userID)
	if err != nil {
		return nil, err
	}

	svc := models.Service{
		ID:         uuid.New().String(),
		Name:       in.Name,
		Category:   in.Category,
		Price:      in.Price,
		Image:      in.Image,
		IsApproved: false,
	}
	if err := s.Repo.AppendService(p.ID, svc); err != nil {
		return nil, fmt.Errorf("failed to add service: %w", err)
	}
	return &svc, nil
}

// UpdateServicePrice sets the price of one catalogue entry.
func (s *DefaultProviderService) UpdateServicePrice(ctx context.Context, userID models.UserID, serviceID string, price float64) error {
	p, err := s.requireProfile(userID)
	if err != nil {
		return err
	}
	if p.ServiceByID(serviceID) == nil {
		return utils.NotFoundError{Resource: "service"}
	}
	return s.Repo.UpdateServicePrice(p.ID, serviceID, price)
}

// RemoveService deletes one catalogue entry. Past bookings keep their
// snapshot of it.
func (s *DefaultProviderService) RemoveService(ctx context.Context, userID models.UserID, serviceID string) error {
	p, err := s.requireProfile(userID)
	if err != nil {
		return err
	}
	if p.ServiceByID(serviceID) == nil {
		return utils.NotFoundError{Resource: "service"}
	}
	return s.Repo.RemoveService(p.ID, serviceID)
}

// ToggleAvailability flips the online flag and returns the new state.
func (s *DefaultProviderService) ToggleAvailability(ctx context.Context, userID models.UserID) (bool, error) {
	p, err := s.requireProfile(userID)
	if err != nil {
		return false, err
	}
	next := !p.IsOnline
	if err := s.Repo.SetOnline(p.ID, next); err != nil {
		return false, err
	}
	return next, nil
}

// Search returns verified providers, optionally narrowed by operating pincode
// and an approved-service name match.
func (s *DefaultProviderService) Search(ctx context.Context, pincode, service string) ([]models.Provider, error) {
	return s.Repo.Search(providerRepo.SearchFilter{
		Pincode: strings.TrimSpace(pincode),
		Service: strings.TrimSpace(service),
	})
}

func (s *DefaultProviderService) requireProfile(userID models.UserID) (*models.Provider, error) {
	p, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, utils.NotFoundError{Resource: "provider profile"}
	}
	return p, nil
}
