package settings

import (
	"context"

	"timetable-service/internal/app/contracts"
	"timetable-service/internal/app/models"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SchoolSettingsMongoRepository reads the per-school calendar document. The
// settings service owns writes; the scheduler fetches the document fresh on
// every request so timing changes take effect immediately.
type SchoolSettingsMongoRepository struct {
	Collection *mongo.Collection
}

func NewSchoolSettingsMongoRepository(db *mongo.Client, dbName string) contracts.SchoolSettingsRepository {
	return &SchoolSettingsMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSchoolSettings),
	}
}

func (r *SchoolSettingsMongoRepository) GetSchoolCalendar(ctx context.Context) (*models.SchoolCalendar, error) {
	var calendar models.SchoolCalendar
	err := r.Collection.FindOne(ctx, bson.M{}).Decode(&calendar)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &calendar, nil
}
