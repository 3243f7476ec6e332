package pushtokens

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

type ExpoTokenMongoRepository struct {
	Collection *mongo.Collection
}

func NewExpoTokenMongoRepository(db *mongo.Client, dbName string) *ExpoTokenMongoRepository {
	return &ExpoTokenMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionExpoTokens),
	}
}

// EnsureIndexes creates the unique phoneNumber index. Without it two racing
// upserts for a new phone number can both take the insert branch and leave
// duplicate documents behind.
func (r *ExpoTokenMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "phoneNumber", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *ExpoTokenMongoRepository) Upsert(ctx context.Context, phoneNumber, expoPushToken string) error {
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"expoPushToken": expoPushToken,
			"updatedAt":     now,
		},
		"$setOnInsert": bson.M{
			"_id":       primitive.NewObjectID().Hex(),
			"createdAt": now,
		},
	}

	_, err := r.Collection.UpdateOne(ctx, bson.M{"phoneNumber": phoneNumber}, update, options.Update().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *ExpoTokenMongoRepository) FindByPhoneNumber(ctx context.Context, phoneNumber string) (*models.ExpoToken, error) {
	var token models.ExpoToken
	err := r.Collection.FindOne(ctx, bson.M{"phoneNumber": phoneNumber}).Decode(&token)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &token, nil
}

// ResolveToken satisfies contracts.ExpoTokenResolver for the push worker.
func (r *ExpoTokenMongoRepository) ResolveToken(ctx context.Context, phoneNumber string) (string, error) {
	token, err := r.FindByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		return "", err
	}
	if token == nil {
		return "", nil
	}
	return token.ExpoPushToken, nil
}
