package providerRepo

import (
	"context"
	"fmt"
	"time"

	"fixify/database"
	"fixify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoProviderRepo implements ProviderRepository using MongoDB.
type MongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo creates a new instance of ProviderRepository using MongoDB.
func NewMongoProviderRepo() ProviderRepository {
	repo := &MongoProviderRepo{coll: database.Collection("providers")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoProviderRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "pincodes", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new provider profile.
func (r *MongoProviderRepo) Create(provider *models.Provider) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	provider.CreatedAt = now
	provider.UpdatedAt = now
	if provider.Services == nil {
		provider.Services = []models.Service{}
	}

	_, err := r.coll.InsertOne(ctx, provider)
	if err != nil {
		return fmt.Errorf("failed to create provider: %w", err)
	}
	return nil
}

// GetByID retrieves a profile by its id.
func (r *MongoProviderRepo) GetByID(id models.ProviderID) (*models.Provider, error) {
	return r.findOne(bson.M{"id": id})
}

// GetByUserID retrieves the profile owned by the given user.
func (r *MongoProviderRepo) GetByUserID(userID models.UserID) (*models.Provider, error) {
	return r.findOne(bson.M{"userId": userID})
}

func (r *MongoProviderRepo) findOne(filter bson.M) (*models.Provider, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var provider models.Provider
	if err := r.coll.FindOne(ctx, filter).Decode(&provider); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch provider: %w", err)
	}
	return &provider, nil
}

// GetAll retrieves all provider profiles.
func (r *MongoProviderRepo) GetAll() ([]models.Provider, error) {
	return r.find(bson.M{})
}

// Search retrieves verified providers matching the filter.
func (r *MongoProviderRepo) Search(filter SearchFilter) ([]models.Provider, error) {
	query := bson.M{"isVerified": true, "isBlocked": false}

	if filter.Pincode != "" {
		query["pincodes"] = bson.M{"$in": []string{filter.Pincode}}
	}

	if filter.Service != "" {
		query["services"] = bson.M{"$elemMatch": bson.M{
			"name":       primitive.Regex{Pattern: filter.Service, Options: "i"},
			"isApproved": true,
		}}
	} else {
		// Still require at least one approved service.
		query["services.isApproved"] = true
	}

	return r.find(query)
}

func (r *MongoProviderRepo) find(query bson.M) ([]models.Provider, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve providers: %w", err)
	}
	defer cursor.Close(ctx)

	var providers []models.Provider
	if err := cursor.All(ctx, &providers); err != nil {
		return nil, fmt.Errorf("failed to decode providers: %w", err)
	}
	return providers, nil
}

// AppendService adds a catalogue entry and clears the verified flag until an
// admin re-approves.
func (r *MongoProviderRepo) AppendService(id models.ProviderID, svc models.Service) error {
	return r.updateOne(id, bson.M{
		"$push": bson.M{"services": svc},
		"$set":  bson.M{"isVerified": false, "updatedAt": time.Now()},
	})
}

// UpdateServicePrice sets the price of one catalogue entry.
func (r *MongoProviderRepo) UpdateServicePrice(id models.ProviderID, serviceID string, price float64) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "services.id": serviceID}
	update := bson.M{"$set": bson.M{"services.$.price": price, "updatedAt": time.Now()}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update service price for provider %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("provider %s has no service %s", id, serviceID)
	}
	return nil
}

// RemoveService deletes one catalogue entry.
func (r *MongoProviderRepo) RemoveService(id models.ProviderID, serviceID string) error {
	return r.updateOne(id, bson.M{
		"$pull": bson.M{"services": bson.M{"id": serviceID}},
		"$set":  bson.M{"updatedAt": time.Now()},
	})
}

// ApproveService flips one catalogue entry's approval flag to true.
func (r *MongoProviderRepo) ApproveService(id models.ProviderID, serviceID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "services.id": serviceID}
	update := bson.M{"$set": bson.M{"services.$.isApproved": true, "updatedAt": time.Now()}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to approve service for provider %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("provider %s has no service %s", id, serviceID)
	}
	return nil
}

// SetVerifiedApproveAll marks the provider verified and approves every entry.
func (r *MongoProviderRepo) SetVerifiedApproveAll(id models.ProviderID) error {
	return r.updateOne(id, bson.M{"$set": bson.M{
		"isVerified":              true,
		"services.$[].isApproved": true,
		"updatedAt":               time.Now(),
	}})
}

// SetOnline sets the online flag.
func (r *MongoProviderRepo) SetOnline(id models.ProviderID, online bool) error {
	return r.updateOne(id, bson.M{"$set": bson.M{"isOnline": online, "updatedAt": time.Now()}})
}

// SetBlocked sets the blocked flag.
func (r *MongoProviderRepo) SetBlocked(id models.ProviderID, blocked bool) error {
	return r.updateOne(id, bson.M{"$set": bson.M{"isBlocked": blocked, "updatedAt": time.Now()}})
}

// SetPincodesExperience updates operating areas and experience.
func (r *MongoProviderRepo) SetPincodesExperience(id models.ProviderID, pincodes []string, experience int) error {
	return r.updateOne(id, bson.M{"$set": bson.M{
		"pincodes":   pincodes,
		"experience": experience,
		"updatedAt":  time.Now(),
	}})
}

func (r *MongoProviderRepo) updateOne(id models.ProviderID, update bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update provider with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("provider with id %s not found", id)
	}
	return nil
}
