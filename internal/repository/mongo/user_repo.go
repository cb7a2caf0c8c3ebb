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

const userCollectionName = "users"

// mongoUserRepository implements repository.UserRepository
type mongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a new User repository backed by MongoDB.
func NewMongoUserRepository(db *mongo.Database) repository.UserRepository {
	return &mongoUserRepository{
		collection: db.Collection(userCollectionName),
	}
}

// Create inserts a new user into the database.
func (r *mongoUserRepository) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	if user.Email == "" || user.PasswordHash == "" {
		return primitive.NilObjectID, errors.New("user email and password hash are required")
	}

	user.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, user)
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

// GetByEmail retrieves a user by their unique email.
func (r *mongoUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByID retrieves a user by their ID.
func (r *mongoUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	var user domain.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// SetEquipment replaces the athlete's equipment inventory wholesale.
// Equipment is a set, so a full replace keeps the semantics simple.
func (r *mongoUserRepository) SetEquipment(ctx context.Context, userID primitive.ObjectID, equipment []domain.Equipment) error {
	update := bson.M{
		"$set": bson.M{
			"equipment": equipment,
			"updatedAt": time.Now().UTC(),
		},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// AddImpediment appends an impediment record to the athlete's profile.
func (r *mongoUserRepository) AddImpediment(ctx context.Context, userID primitive.ObjectID, imp *domain.Impediment) (primitive.ObjectID, error) {
	imp.ID = primitive.NewObjectID()
	imp.CreatedAt = time.Now().UTC()

	update := bson.M{
		"$push": bson.M{"impediments": imp},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if result.MatchedCount == 0 {
		return primitive.NilObjectID, repository.ErrNotFound
	}
	return imp.ID, nil
}

// RemoveImpediment deletes one impediment record from the athlete's profile.
func (r *mongoUserRepository) RemoveImpediment(ctx context.Context, userID, impedimentID primitive.ObjectID) error {
	update := bson.M{
		"$pull": bson.M{"impediments": bson.M{"_id": impedimentID}},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	if result.ModifiedCount == 0 {
		// Matched the user but pulled nothing: unknown impediment ID.
		return repository.ErrNotFound
	}
	return nil
}

// EnsureUserIndexes creates necessary indexes for the users collection.
func EnsureUserIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
