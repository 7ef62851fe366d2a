package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sciodb/internal/domain"
	"sciodb/internal/storage"
)

// Entity is the contract every persisted type satisfies: it knows its
// collection and the field linking it to its parent entity.
type Entity interface {
	CollectionName() string
	ParentField() string
}

// hideObjectID excludes the Mongo-internal _id from all decoded documents.
var hideObjectID = bson.M{"_id": 0}

// Find returns all documents matching the filter.
func Find[T Entity](ctx context.Context, s *Store, filter bson.M) ([]T, error) {
	cursor, err := collection[T](s).Find(ctx, filter,
		options.Find().SetProjection(hideObjectID))
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", entityName[T](), err)
	}

	var results []T
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decode %s: %w", entityName[T](), err)
	}
	return results, nil
}

// FindByParent returns all documents whose parent field references the
// given parent id.
func FindByParent[T Entity](ctx context.Context, s *Store, parentID string) ([]T, error) {
	var zero T
	field := zero.ParentField()
	if field == "" {
		return nil, fmt.Errorf("%w: %s has no parent", storage.ErrInvalidInput, entityName[T]())
	}
	return Find[T](ctx, s, bson.M{field: parentID})
}

// FindOne returns the single document matching the filter, or
// storage.ErrNotFound.
func FindOne[T Entity](ctx context.Context, s *Store, filter bson.M) (*T, error) {
	var result T
	err := collection[T](s).FindOne(ctx, filter,
		options.FindOne().SetProjection(hideObjectID)).Decode(&result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%s: %w", entityName[T](), storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find one %s: %w", entityName[T](), err)
	}
	return &result, nil
}

// FindByID returns the document with the given entity id.
func FindByID[T Entity](ctx context.Context, s *Store, id string) (*T, error) {
	return FindOne[T](ctx, s, bson.M{"id": id})
}

// Insert stores the document and reads it back by its entity id. Reading
// back returns the document exactly as persisted.
func Insert[T Entity](ctx context.Context, s *Store, doc *T, id string) (*T, error) {
	if _, err := collection[T](s).InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert %s: %w", entityName[T](), err)
	}
	return FindByID[T](ctx, s, id)
}

// UpdateOne applies the update to the first document matching the filter.
func UpdateOne[T Entity](ctx context.Context, s *Store, filter, update bson.M) error {
	if _, err := collection[T](s).UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("update %s: %w", entityName[T](), err)
	}
	return nil
}

// UpdateMany applies the update to every document matching the filter.
func UpdateMany[T Entity](ctx context.Context, s *Store, filter, update bson.M) error {
	if _, err := collection[T](s).UpdateMany(ctx, filter, update); err != nil {
		return fmt.Errorf("update many %s: %w", entityName[T](), err)
	}
	return nil
}

// FindAndUpdate atomically applies the update and returns the post-update
// document.
func FindAndUpdate[T Entity](ctx context.Context, s *Store, filter, update bson.M) (*T, error) {
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(hideObjectID)

	var result T
	err := collection[T](s).FindOneAndUpdate(ctx, filter, update, opts).Decode(&result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%s: %w", entityName[T](), storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find and update %s: %w", entityName[T](), err)
	}
	return &result, nil
}

// DeleteOne removes the first document matching the filter.
func DeleteOne[T Entity](ctx context.Context, s *Store, filter bson.M) error {
	if _, err := collection[T](s).DeleteOne(ctx, filter); err != nil {
		return fmt.Errorf("delete %s: %w", entityName[T](), err)
	}
	return nil
}

// DeleteMany removes every document matching the filter.
func DeleteMany[T Entity](ctx context.Context, s *Store, filter bson.M) error {
	if _, err := collection[T](s).DeleteMany(ctx, filter); err != nil {
		return fmt.Errorf("delete many %s: %w", entityName[T](), err)
	}
	return nil
}

// SetStatus updates the lifecycle status of the document with the given id.
// A missing document is reported as not-found so that delete cascades on
// unknown ids fail up front instead of silently succeeding.
func SetStatus[T Entity](ctx context.Context, s *Store, id string, status domain.Status) error {
	res, err := collection[T](s).UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return fmt.Errorf("update %s: %w", entityName[T](), err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%s %s: %w", entityName[T](), id, storage.ErrNotFound)
	}
	return nil
}

// entityName returns the collection name of the entity type, used in error
// messages.
func entityName[T Entity]() string {
	var zero T
	return zero.CollectionName()
}
