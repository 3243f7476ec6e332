package orders

import (
	"context"
	"time"
	"vasavimart-service/internal/app/models"
	"vasavimart-service/internal/pkg/constvars"
	"vasavimart-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrderMongoRepository struct {
	Collection *mongo.Collection
}

func NewOrderMongoRepository(db *mongo.Client, dbName string) OrderRepository {
	return &OrderMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionOrders),
	}
}

func (r *OrderMongoRepository) Create(ctx context.Context, order *models.Order) error {
	_, err := r.Collection.InsertOne(ctx, order)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *OrderMongoRepository) FindByID(ctx context.Context, orderID string) (*models.Order, error) {
	var order models.Order
	err := r.Collection.FindOne(ctx, bson.M{"_id": orderID}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &order, nil
}

func (r *OrderMongoRepository) FindByPhoneAndStatuses(ctx context.Context, phoneNumber string, statuses []string) ([]models.Order, error) {
	filter := bson.M{
		"phoneNumber": phoneNumber,
		"orderStatus": bson.M{"$in": statuses},
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return orders, nil
}

func (r *OrderMongoRepository) UpdateStatus(ctx context.Context, orderID, status string) error {
	update := bson.M{"$set": bson.M{
		"orderStatus": status,
		"updatedAt":   time.Now().UTC(),
	}}

	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": orderID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrOrderNotFound(mongo.ErrNoDocuments)
	}
	return nil
}
