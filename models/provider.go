package models

import "time"

// Service is an entry in a provider's catalogue. Each entry keeps a stable
// identifier and its own approval flag so a single price change or approval
// never rewrites the whole catalogue.
type Service struct {
	ID         string  `bson:"id" json:"id"`
	Name       string  `bson:"name" json:"name"`
	Category   string  `bson:"category" json:"category"`
	Price      float64 `bson:"price,omitempty" json:"price,omitempty"`
	Image      string  `bson:"image,omitempty" json:"image,omitempty"`
	IsApproved bool    `bson:"isApproved" json:"isApproved"`
}

// Provider is the service-provider business profile, one per owning User.
type Provider struct {
	ID           ProviderID `bson:"id" json:"id"`
	UserID       UserID     `bson:"userId" json:"userId"`
	Services     []Service  `bson:"services" json:"services"`
	Pincodes     []string   `bson:"pincodes" json:"pincodes"`
	Experience   int        `bson:"experience" json:"experience"`
	Rating       float64    `bson:"rating" json:"rating"`
	TotalReviews int        `bson:"totalReviews" json:"totalReviews"`
	IsVerified   bool       `bson:"isVerified" json:"isVerified"`
	IsOnline     bool       `bson:"isOnline" json:"isOnline"`
	IsBlocked    bool       `bson:"isBlocked" json:"isBlocked"`
	CreatedAt    time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// ServiceByID returns the catalogue entry with the given id, or nil.
func (p *Provider) ServiceByID(serviceID string) *Service {
	for i := range p.Services {
		if p.Services[i].ID == serviceID {
			return &p.Services[i]
		}
	}
	return nil
}
