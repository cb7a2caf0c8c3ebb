package mongo

import (
	"alcyxob/wodadapt/internal/domain"
	"alcyxob/wodadapt/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const movementCollectionName = "movements"

// mongoMovementRepository implements repository.MovementRepository
type mongoMovementRepository struct {
	collection *mongo.Collection
}

// NewMongoMovementRepository creates a new Movement repository backed by MongoDB.
func NewMongoMovementRepository(db *mongo.Database) repository.MovementRepository {
	return &mongoMovementRepository{
		collection: db.Collection(movementCollectionName),
	}
}

// List returns all movements sorted by creation time then ID. The sort is
// what gives the in-memory catalog its stable iteration order, which the
// engine's tie-breaking depends on.
func (r *mongoMovementRepository) List(ctx context.Context) ([]domain.Movement, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var movements []domain.Movement
	if err = cursor.All(ctx, &movements); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return movements, nil
}

// GetByID retrieves a movement by its slug identifier.
func (r *mongoMovementRepository) GetByID(ctx context.Context, id string) (*domain.Movement, error) {
	var movement domain.Movement
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&movement)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &movement, nil
}

// Create inserts a new movement into the catalog collection.
func (r *mongoMovementRepository) Create(ctx context.Context, movement *domain.Movement) error {
	if movement.ID == "" || movement.Name == "" {
		return errors.New("movement id and name are required")
	}

	now := time.Now().UTC()
	movement.CreatedAt = now
	movement.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, movement)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateKey
		}
		return err
	}
	return nil
}

// Update replaces the mutable fields of an existing movement.
func (r *mongoMovementRepository) Update(ctx context.Context, movement *domain.Movement) error {
	if movement.ID == "" {
		return errors.New("movement id is required for update")
	}

	update := bson.M{
		"$set": bson.M{
			"name":             movement.Name,
			"equipment":        movement.Equipment,
			"primaryRegions":   movement.PrimaryRegions,
			"secondaryRegions": movement.SecondaryRegions,
			"muscleGroups":     movement.MuscleGroups,
			"modality":         movement.Modality,
			"difficulty":       movement.Difficulty,
			"tags":             movement.Tags,
			"loadType":         movement.LoadType,
			"substitutions":    movement.Substitutions,
			"defaultLoads":     movement.DefaultLoads,
			"mediaObjectKey":   movement.MediaObjectKey,
			"updatedAt":        time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": movement.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a movement from the catalog collection.
func (r *mongoMovementRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Count returns the number of movements in the collection.
func (r *mongoMovementRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// InsertMany bulk-inserts movements, used to seed an empty catalog. Ordered
// inserts keep the creation-order invariant List sorts on.
func (r *mongoMovementRepository) InsertMany(ctx context.Context, movements []domain.Movement) error {
	if len(movements) == 0 {
		return nil
	}

	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(movements))
	for i := range movements {
		m := movements[i]
		m.CreatedAt = now.Add(time.Duration(i) * time.Millisecond)
		m.UpdatedAt = m.CreatedAt
		docs = append(docs, m)
	}

	_, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	return err
}

// EnsureMovementIndexes creates necessary indexes for the movements collection.
func EnsureMovementIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "modality", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "muscleGroups", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "tags", Value: 1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
