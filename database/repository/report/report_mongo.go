package reportRepo

import (
	"context"
	"fmt"
	"time"

	"fixify/database"
	"fixify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoReportRepo implements ReportRepository using MongoDB.
type MongoReportRepo struct {
	coll *mongo.Collection
}

// NewMongoReportRepo creates a new instance of ReportRepository using MongoDB.
func NewMongoReportRepo() ReportRepository {
	repo := &MongoReportRepo{coll: database.Collection("reports")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoReportRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	// One report per (reporter, booking) pair.
	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "reporterId", Value: 1}, {Key: "bookingId", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new report document.
func (r *MongoReportRepo) Create(report *models.Report) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	report.CreatedAt = time.Now()
	_, err := r.coll.InsertOne(ctx, report)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

// GetByID retrieves a report by id.
func (r *MongoReportRepo) GetByID(id string) (*models.Report, error) {
	return r.findOne(bson.M{"id": id})
}

// GetByReporterAndBooking retrieves the report a user filed for a booking.
func (r *MongoReportRepo) GetByReporterAndBooking(reporterID models.UserID, bookingID string) (*models.Report, error) {
	return r.findOne(bson.M{"reporterId": reporterID, "bookingId": bookingID})
}

func (r *MongoReportRepo) findOne(filter bson.M) (*models.Report, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var report models.Report
	if err := r.coll.FindOne(ctx, filter).Decode(&report); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch report: %w", err)
	}
	return &report, nil
}

// GetAll retrieves all reports, newest first.
func (r *MongoReportRepo) GetAll() ([]models.Report, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reports: %w", err)
	}
	defer cursor.Close(ctx)

	var reports []models.Report
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, fmt.Errorf("failed to decode reports: %w", err)
	}
	return reports, nil
}

// Resolve moves a report to the resolved state.
func (r *MongoReportRepo) Resolve(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{"status": models.ReportResolved}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to resolve report %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("report with id %s not found", id)
	}
	return nil
}
