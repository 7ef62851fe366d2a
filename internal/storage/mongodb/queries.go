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

// FindObject looks up a single embedded object across all revisions. The
// positional projection narrows the matched revision down to the one
// embedded object, so only that object is decoded.
func FindObject(ctx context.Context, s *Store, objectID string) (*domain.Object, error) {
	var zero domain.ObjectGroupRevision
	coll := s.db.Collection(zero.CollectionName())

	opts := options.FindOne().SetProjection(bson.M{
		"_id":       0,
		"objects.$": 1,
	})

	var result struct {
		Objects []domain.Object `bson:"objects"`
	}
	err := coll.FindOne(ctx, bson.M{"objects.id": objectID}, opts).Decode(&result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("object %s: %w", objectID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find object: %w", err)
	}
	if len(result.Objects) == 0 {
		return nil, fmt.Errorf("object %s: %w", objectID, storage.ErrNotFound)
	}
	// The positional projection narrows the document to the one matched
	// element; anything else means the projection is broken.
	if len(result.Objects) != 1 {
		return nil, fmt.Errorf("object %s: positional lookup returned %d objects", objectID, len(result.Objects))
	}
	return &result.Objects[0], nil
}

// RevisionForObject returns the revision that embeds the given object.
func RevisionForObject(ctx context.Context, s *Store, objectID string) (*domain.ObjectGroupRevision, error) {
	return FindOne[domain.ObjectGroupRevision](ctx, s, bson.M{"objects.id": objectID})
}

// AddUser adds a user with read and write rights to a project. Adding an
// already present member is a no-op.
func AddUser(ctx context.Context, s *Store, projectID, userID string) error {
	user := domain.User{
		UserID: userID,
		Rights: []domain.Right{domain.RightRead, domain.RightWrite},
	}
	return UpdateOne[domain.Project](ctx, s,
		bson.M{"id": projectID},
		bson.M{"$addToSet": bson.M{"users": user}},
	)
}

// SetObjectUploadID records the multipart upload id on an embedded object.
func SetObjectUploadID(ctx context.Context, s *Store, objectID, uploadID string) error {
	return UpdateOne[domain.ObjectGroupRevision](ctx, s,
		bson.M{"objects.id": objectID},
		bson.M{"$set": bson.M{"objects.$.upload_id": uploadID}},
	)
}
