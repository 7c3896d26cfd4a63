package recordstore

import (
	"afiatrack-service/internal/app/contracts"
	"afiatrack-service/internal/app/models"
	"afiatrack-service/internal/pkg/exceptions"
	"afiatrack-service/internal/pkg/utils"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoStore[T models.Record] struct {
	coll *mongo.Collection
}

func NewMongoStore[T models.Record](db *mongo.Database, collection string) contracts.RecordStore[T] {
	return &MongoStore[T]{
		coll: db.Collection(collection),
	}
}

func (r *MongoStore[T]) Collection() string {
	return r.coll.Name()
}

func (r *MongoStore[T]) List(ctx context.Context, userID string) ([]T, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

func (r *MongoStore[T]) ListAll(ctx context.Context) ([]T, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoStore[T]) Create(ctx context.Context, userID string, record T) (T, error) {
	var zero T
	if record.GetID() == "" {
		record.SetID(utils.GenerateRecordID())
	}
	record.SetUserID(userID)

	_, err := r.coll.InsertOne(ctx, record)
	if mongo.IsDuplicateKeyError(err) {
		return zero, exceptions.ErrRecordAlreadyExists(err, record.GetID(), r.Collection())
	}
	if err != nil {
		return zero, exceptions.ErrMongoDBInsertDocument(err)
	}
	return record, nil
}

func (r *MongoStore[T]) Update(ctx context.Context, userID string, record T) (T, error) {
	var zero T
	record.SetUserID(userID)
	filter := bson.M{"_id": record.GetID(), "userId": userID}

	result, err := r.coll.ReplaceOne(ctx, filter, record)
	if err != nil {
		return zero, exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return zero, exceptions.ErrRecordNotFound(nil, record.GetID(), r.Collection())
	}
	return record, nil
}

func (r *MongoStore[T]) Delete(ctx context.Context, userID, id string) (bool, error) {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return false, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount > 0, nil
}

func (r *MongoStore[T]) find(ctx context.Context, filter bson.M) ([]T, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	records := make([]T, 0)
	err = cursor.All(ctx, &records)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return records, nil
}
