package products

import (
	"context"
	"vasavimart-service/internal/app/models"
	"vasavimart-service/internal/pkg/constvars"
	"vasavimart-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProductMongoRepository struct {
	Collection *mongo.Collection
}

func NewProductMongoRepository(db *mongo.Client, dbName string) ProductRepository {
	return &ProductMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionProducts),
	}
}

func sortSpec(sortKey string) bson.D {
	switch sortKey {
	case constvars.ProductSortDiscountLowHigh:
		return bson.D{{Key: "discountPrice", Value: 1}}
	case constvars.ProductSortDiscountHighLow:
		return bson.D{{Key: "discountPrice", Value: -1}}
	case constvars.ProductSortNewest:
		return bson.D{{Key: "updatedAt", Value: -1}}
	case constvars.ProductSortPopularity:
		return bson.D{{Key: "discountPercentage", Value: -1}}
	default:
		// relevance and anything unrecognized keep insertion order.
		return bson.D{{Key: "_id", Value: 1}}
	}
}

func (r *ProductMongoRepository) FindPaged(ctx context.Context, sortKey string, page, pageSize int) ([]models.Product, int, error) {
	if page < 1 {
		page = 1
	}

	total, err := r.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	opts := options.Find().
		SetSort(sortSpec(sortKey)).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return products, int(total), nil
}

func (r *ProductMongoRepository) FindByID(ctx context.Context, productID string) (*models.Product, error) {
	objectID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var product models.Product
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &product, nil
}

func (r *ProductMongoRepository) FindByCategoryID(ctx context.Context, categoryID primitive.ObjectID) ([]models.Product, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"category": categoryID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return products, nil
}
