package classes

import (
	"context"

	"timetable-service/internal/app/contracts"
	"timetable-service/internal/app/models"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ClassMongoRepository struct {
	Collection *mongo.Collection
}

func NewClassMongoRepository(db *mongo.Client, dbName string) contracts.ClassRepository {
	return &ClassMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionClasses),
	}
}

func (r *ClassMongoRepository) FindByID(ctx context.Context, classID string) (*models.Class, error) {
	var class models.Class
	err := r.Collection.FindOne(ctx, bson.M{"_id": classID}).Decode(&class)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &class, nil
}
