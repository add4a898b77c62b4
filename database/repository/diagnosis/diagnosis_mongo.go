package diagnosisRepo

import (
	"context"
	"fmt"
	"time"

	"diagnotech/database"
	"diagnotech/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDiagnosisRepo implements DiagnosisRepository using MongoDB.
type MongoDiagnosisRepo struct {
	coll *mongo.Collection
}

// NewMongoDiagnosisRepo creates a new instance of DiagnosisRepository using MongoDB.
func NewMongoDiagnosisRepo() DiagnosisRepository {
	coll := database.MongoClient.Database("diagnotech").Collection("diagnoses")
	repo := &MongoDiagnosisRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoDiagnosisRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new diagnosis document.
func (r *MongoDiagnosisRepo) Create(diag *models.Diagnosis) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	diag.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, diag); err != nil {
		return fmt.Errorf("failed to create diagnosis: %w", err)
	}
	return nil
}

// GetByUser retrieves a user's diagnoses, newest first.
func (r *MongoDiagnosisRepo) GetByUser(userID string) ([]models.Diagnosis, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve diagnoses for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var diagnoses []models.Diagnosis
	if err := cursor.All(ctx, &diagnoses); err != nil {
		return nil, fmt.Errorf("failed to decode diagnoses: %w", err)
	}
	return diagnoses, nil
}

// GetByID retrieves one diagnosis scoped to its owner.
func (r *MongoDiagnosisRepo) GetByID(userID, id string) (*models.Diagnosis, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var diag models.Diagnosis
	err := r.coll.FindOne(ctx, bson.M{"id": id, "user_id": userID}).Decode(&diag)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch diagnosis %s: %w", id, err)
	}
	return &diag, nil
}

// Count returns the number of diagnosis documents.
func (r *MongoDiagnosisRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count diagnoses: %w", err)
	}
	return n, nil
}
