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

const workoutCollectionName = "workouts"

// mongoWorkoutRepository implements repository.WorkoutRepository
type mongoWorkoutRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutRepository creates a new Workout repository backed by MongoDB.
func NewMongoWorkoutRepository(db *mongo.Database) repository.WorkoutRepository {
	return &mongoWorkoutRepository{
		collection: db.Collection(workoutCollectionName),
	}
}

// Create inserts a new workout into the library.
func (r *mongoWorkoutRepository) Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	if workout.Name == "" || workout.Slug == "" {
		return primitive.NilObjectID, errors.New("workout name and slug are required")
	}
	if workout.CoachID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("coach ID is required")
	}

	workout.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	workout.CreatedAt = now
	workout.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, workout)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, repository.ErrDuplicateKey
		}
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByID retrieves a workout by its ID.
func (r *mongoWorkoutRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	var workout domain.Workout
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&workout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

// GetBySlug retrieves a workout by its stable slug.
func (r *mongoWorkoutRepository) GetBySlug(ctx context.Context, slug string) (*domain.Workout, error) {
	var workout domain.Workout
	err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&workout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

// List returns all workouts in the library, newest first.
func (r *mongoWorkoutRepository) List(ctx context.Context) ([]domain.Workout, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var workouts []domain.Workout
	if err = cursor.All(ctx, &workouts); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return workouts, nil
}

// Update replaces the mutable fields of an existing workout. The CoachID is
// deliberately not part of the update.
func (r *mongoWorkoutRepository) Update(ctx context.Context, workout *domain.Workout) error {
	if workout.ID == primitive.NilObjectID {
		return errors.New("workout ID is required for update")
	}

	update := bson.M{
		"$set": bson.M{
			"name":          workout.Name,
			"description":   workout.Description,
			"prescriptions": workout.Prescriptions,
			"updatedAt":     time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": workout.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a workout, ensuring it belongs to the given coach. The
// combined filter enforces ownership at the DB level.
func (r *mongoWorkoutRepository) Delete(ctx context.Context, id primitive.ObjectID, coachID primitive.ObjectID) error {
	filter := bson.M{
		"_id":     id,
		"coachId": coachID,
	}

	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureWorkoutIndexes creates necessary indexes for the workouts collection.
func EnsureWorkoutIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "coachId", Value: 1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
