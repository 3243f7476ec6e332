package categories

import (
	"context"
	"vasavimart-service/internal/app/models"
	"vasavimart-service/internal/pkg/constvars"
	"vasavimart-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CategoryMongoRepository struct {
	Collection *mongo.Collection
}

func NewCategoryMongoRepository(db *mongo.Client, dbName string) CategoryRepository {
	return &CategoryMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionCategories),
	}
}

func (r *CategoryMongoRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return categories, nil
}

func (r *CategoryMongoRepository) FindByName(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	err := r.Collection.FindOne(ctx, bson.M{"name": name}).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &category, nil
}

func (r *CategoryMongoRepository) FindByID(ctx context.Context, categoryID string) (*models.Category, error) {
	objectID, err := primitive.ObjectIDFromHex(categoryID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var category models.Category
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &category, nil
}
