package pushtokens

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestExpoTokenMongoRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("ensure indexes creates the unique phone index", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		repo := &ExpoTokenMongoRepository{Collection: mt.Coll}

		assert.NoError(mt, repo.EnsureIndexes(context.Background()))
	})

	mt.Run("upsert succeeds", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		repo := &ExpoTokenMongoRepository{Collection: mt.Coll}

		assert.NoError(mt, repo.Upsert(context.Background(), "+919876543210", "ExponentPushToken[abc]"))
	})

	mt.Run("resolve token returns the registered device", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "vasavimart.expo_tokens", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "token-1"},
			{Key: "phoneNumber", Value: "+919876543210"},
			{Key: "expoPushToken", Value: "ExponentPushToken[abc]"},
			{Key: "createdAt", Value: primitive.NewDateTimeFromTime(time.Now().UTC())},
			{Key: "updatedAt", Value: primitive.NewDateTimeFromTime(time.Now().UTC())},
		}))

		repo := &ExpoTokenMongoRepository{Collection: mt.Coll}
		token, err := repo.ResolveToken(context.Background(), "+919876543210")

		assert.NoError(mt, err)
		assert.Equal(mt, "ExponentPushToken[abc]", token)
	})

	mt.Run("resolve token is empty when no device is registered", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "vasavimart.expo_tokens", mtest.FirstBatch))

		repo := &ExpoTokenMongoRepository{Collection: mt.Coll}
		token, err := repo.ResolveToken(context.Background(), "+919876543210")

		assert.NoError(mt, err)
		assert.Empty(mt, token)
	})
}
