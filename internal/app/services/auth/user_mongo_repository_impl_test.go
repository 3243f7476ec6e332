package auth

import (
	"context"
	"testing"
	"time"
	"vasavimart-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestCreateIfAbsent(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("insert wins for a new phone number", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		repo := &UserMongoRepository{Collection: mt.Coll}
		user, err := repo.CreateIfAbsent(context.Background(), &models.User{
			PhoneNumber: "+919876543210",
			Username:    "ravi",
		})

		assert.NoError(mt, err)
		assert.NotEmpty(mt, user.ID)
		assert.Equal(mt, "ravi", user.Username)
		assert.False(mt, user.CreatedAt.IsZero())
	})

	mt.Run("duplicate key converges on the stored record", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateWriteErrorsResponse(mtest.WriteError{
				Index:   0,
				Code:    11000,
				Message: "E11000 duplicate key error collection: vasavimart.users index: phoneNumber_1",
			}),
			mtest.CreateCursorResponse(0, "vasavimart.users", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: "user-1"},
				{Key: "phoneNumber", Value: "+919876543210"},
				{Key: "username", Value: "ravi"},
				{Key: "createdAt", Value: primitive.NewDateTimeFromTime(time.Now().UTC())},
			}),
		)

		repo := &UserMongoRepository{Collection: mt.Coll}
		user, err := repo.CreateIfAbsent(context.Background(), &models.User{
			PhoneNumber: "+919876543210",
			Username:    "ravi",
		})

		assert.NoError(mt, err)
		assert.Equal(mt, "user-1", user.ID)
		assert.Equal(mt, "ravi", user.Username)
	})

	mt.Run("duplicate key refreshes a changed username", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateWriteErrorsResponse(mtest.WriteError{
				Index:   0,
				Code:    11000,
				Message: "E11000 duplicate key error collection: vasavimart.users index: phoneNumber_1",
			}),
			mtest.CreateCursorResponse(0, "vasavimart.users", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: "user-1"},
				{Key: "phoneNumber", Value: "+919876543210"},
				{Key: "username", Value: "old name"},
				{Key: "createdAt", Value: primitive.NewDateTimeFromTime(time.Now().UTC())},
			}),
			mtest.CreateSuccessResponse(),
		)

		repo := &UserMongoRepository{Collection: mt.Coll}
		user, err := repo.CreateIfAbsent(context.Background(), &models.User{
			PhoneNumber: "+919876543210",
			Username:    "ravi",
		})

		assert.NoError(mt, err)
		assert.Equal(mt, "user-1", user.ID)
		assert.Equal(mt, "ravi", user.Username)
	})

	mt.Run("non duplicate insert failure surfaces", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    121,
			Message: "Document failed validation",
		}))

		repo := &UserMongoRepository{Collection: mt.Coll}
		_, err := repo.CreateIfAbsent(context.Background(), &models.User{
			PhoneNumber: "+919876543210",
			Username:    "ravi",
		})

		assert.Error(mt, err)
	})
}
