package mongo

import (
	"alcyxob/wodadapt/internal/domain"
	"alcyxob/wodadapt/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mediaCollectionName = "media_uploads"

// mongoMediaRepository implements repository.MediaRepository
type mongoMediaRepository struct {
	collection *mongo.Collection
}

// NewMongoMediaRepository creates a new Media repository backed by MongoDB.
func NewMongoMediaRepository(db *mongo.Database) repository.MediaRepository {
	return &mongoMediaRepository{
		collection: db.Collection(mediaCollectionName),
	}
}

// Create records metadata for a newly requested demo-media upload.
func (r *mongoMediaRepository) Create(ctx context.Context, upload *domain.MediaUpload) (primitive.ObjectID, error) {
	if upload.MovementID == "" || upload.ObjectKey == "" {
		return primitive.NilObjectID, errors.New("movement ID and object key are required")
	}

	upload.ID = primitive.NewObjectID()
	upload.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, upload)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByMovementID returns the most recent upload record for a movement.
func (r *mongoMediaRepository) GetByMovementID(ctx context.Context, movementID string) (*domain.MediaUpload, error) {
	findOptions := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var upload domain.MediaUpload
	err := r.collection.FindOne(ctx, bson.M{"movementId": movementID}, findOptions).Decode(&upload)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &upload, nil
}

// EnsureMediaIndexes creates necessary indexes for the media collection.
func EnsureMediaIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "movementId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
