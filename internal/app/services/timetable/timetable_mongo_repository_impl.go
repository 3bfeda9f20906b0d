package timetable

import (
	"context"
	"errors"
	"time"

	"timetable-service/internal/app/contracts"
	"timetable-service/internal/app/models"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

// Slot _ids are ObjectID hex strings generated at insert time so decoded
// documents keep string identifiers end to end.
type TimetableMongoRepository struct {
	Collection *mongo.Collection
}

func NewTimetableMongoRepository(db *mongo.Client, dbName string) contracts.TimetableRepository {
	return &TimetableMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTimetableSlots),
	}
}

func (r *TimetableMongoRepository) FindByClass(ctx context.Context, classID string) ([]models.TimetableSlot, error) {
	filter := bson.M{
		"classId": classID,
		"status":  constvars.SlotStatusActive,
	}
	return r.findSlots(ctx, filter, options.Find().SetSort(bson.D{{Key: "period", Value: 1}}))
}

func (r *TimetableMongoRepository) FindByClassDay(ctx context.Context, classID, day string) ([]models.TimetableSlot, error) {
	filter := bson.M{
		"classId": classID,
		"day":     day,
		"status":  constvars.SlotStatusActive,
	}
	return r.findSlots(ctx, filter, options.Find().SetSort(bson.D{{Key: "period", Value: 1}}))
}

func (r *TimetableMongoRepository) FindByTeacherDay(ctx context.Context, teacherID, day string) ([]models.TimetableSlot, error) {
	filter := bson.M{
		"teacherId": teacherID,
		"day":       day,
		"status":    constvars.SlotStatusActive,
	}
	return r.findSlots(ctx, filter, options.Find().SetSort(bson.D{{Key: "startMinutes", Value: 1}}))
}

func (r *TimetableMongoRepository) FindAtSameTime(ctx context.Context, classID, day string, startMinutes, endMinutes int) (*models.TimetableSlot, error) {
	var slot models.TimetableSlot
	filter := bson.M{
		"classId":      classID,
		"day":          day,
		"startMinutes": startMinutes,
		"endMinutes":   endMinutes,
		"status":       constvars.SlotStatusActive,
	}
	err := r.Collection.FindOne(ctx, filter).Decode(&slot)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &slot, nil
}

func (r *TimetableMongoRepository) FindByPosition(ctx context.Context, classID, day string, period int) (*models.TimetableSlot, error) {
	var slot models.TimetableSlot
	filter := bson.M{
		"classId": classID,
		"day":     day,
		"period":  period,
		"status":  constvars.SlotStatusActive,
	}
	err := r.Collection.FindOne(ctx, filter).Decode(&slot)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &slot, nil
}

func (r *TimetableMongoRepository) Insert(ctx context.Context, slot *models.TimetableSlot) (string, error) {
	if slot.ID == "" {
		slot.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Collection.InsertOne(ctx, slot)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return slot.ID, nil
}

func (r *TimetableMongoRepository) Upsert(ctx context.Context, slot *models.TimetableSlot) error {
	filter := bson.M{
		"classId": slot.ClassID,
		"day":     slot.Day,
		"period":  slot.Period,
	}
	update := bson.M{
		"$set": slot.ConvertToBsonM(),
		"$setOnInsert": bson.M{
			"_id":       primitive.NewObjectID().Hex(),
			"createdAt": time.Now(),
		},
	}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *TimetableMongoRepository) DeleteByID(ctx context.Context, slotID string) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": slotID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *TimetableMongoRepository) DeleteAllForClass(ctx context.Context, classID string) (int64, error) {
	result, err := r.Collection.DeleteMany(ctx, bson.M{"classId": classID})
	if err != nil {
		return 0, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount, nil
}

// RunInTransaction executes fn inside a mongo multi-document transaction with
// majority read/write concerns. Concurrent assignments racing to book the
// same teacher serialize here: the losing transaction aborts on write
// conflict and the caller re-runs its conflict check against committed state.
func (r *TimetableMongoRepository) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := r.Collection.Database().Client().StartSession()
	if err != nil {
		return exceptions.ErrMongoDBTransaction(err)
	}
	defer session.EndSession(ctx)

	txnOptions := options.Transaction().
		SetReadConcern(readconcern.Majority()).
		SetWriteConcern(writeconcern.Majority())

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, fn(sessCtx)
	}, txnOptions)
	if err != nil {
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) {
			return err
		}
		if IsTransientTransactionError(err) {
			return err
		}
		return exceptions.ErrMongoDBTransaction(err)
	}
	return nil
}

// IsTransientTransactionError reports whether the transaction aborted on a
// condition worth retrying once, such as a write conflict with a concurrent
// assignment or an unacknowledged commit.
func IsTransientTransactionError(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.HasErrorLabel("TransientTransactionError") ||
			cmdErr.HasErrorLabel("UnknownTransactionCommitResult")
	}
	return false
}

func (r *TimetableMongoRepository) findSlots(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.TimetableSlot, error) {
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var slots []models.TimetableSlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return slots, nil
}
