package auth

import (
	"context"
	"time"
	"vasavimart-service/internal/app/models"
	"vasavimart-service/internal/pkg/constvars"
	"vasavimart-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserMongoRepository struct {
	Collection *mongo.Collection
}

func NewUserMongoRepository(db *mongo.Client, dbName string) UserRepository {
	return &UserMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionUsers),
	}
}

func (r *UserMongoRepository) EnsureIndexes(ctx context.Context, retention time.Duration) error {
	_, err := r.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "phoneNumber", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "createdAt", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(int32(retention.Seconds())),
		},
	})
	return err
}

func (r *UserMongoRepository) FindByPhoneNumber(ctx context.Context, phoneNumber string) (*models.User, error) {
	var user models.User
	err := r.Collection.FindOne(ctx, bson.M{"phoneNumber": phoneNumber}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &user, nil
}

func (r *UserMongoRepository) FindByPhoneAndUsername(ctx context.Context, phoneNumber, username string) (*models.User, error) {
	var user models.User
	filter := bson.M{
		"phoneNumber": phoneNumber,
		"username":    username,
	}

	err := r.Collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &user, nil
}

func (r *UserMongoRepository) CreateIfAbsent(ctx context.Context, user *models.User) (*models.User, error) {
	if user.ID == "" {
		user.ID = primitive.NewObjectID().Hex()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	_, err := r.Collection.InsertOne(ctx, user)
	if err == nil {
		return user, nil
	}
	if !mongo.IsDuplicateKeyError(err) {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}

	// Lost the race on the unique phoneNumber index. Converge on the stored
	// record, refreshing the username when the caller sent a new one.
	existing, findErr := r.FindByPhoneNumber(ctx, user.PhoneNumber)
	if findErr != nil {
		return nil, findErr
	}
	if existing == nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	if existing.Username != user.Username {
		_, updateErr := r.Collection.UpdateOne(ctx,
			bson.M{"_id": existing.ID},
			bson.M{"$set": bson.M{"username": user.Username}},
		)
		if updateErr != nil {
			return nil, exceptions.ErrMongoDBUpdateDocument(updateErr)
		}
		existing.Username = user.Username
	}
	return existing, nil
}
