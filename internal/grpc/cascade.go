package grpc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/sync/errgroup"

	"sciodb/internal/domain"
	"sciodb/internal/storage/mongodb"
)

// cascadeConcurrency bounds how many child deletes run at once during a
// cascade, including payload deletes against the object store.
const cascadeConcurrency = 100

// deleteDatasetCascade removes a dataset and everything below it. The
// dataset's released versions go first so that their pins on revisions are
// released before the object groups are deleted; then the object groups
// with all their revisions and payloads; then the dataset itself. The
// dataset is marked Deleting first so concurrent readers see the pending
// removal.
func deleteDatasetCascade(ctx context.Context, deps Deps, datasetID string) error {
	if err := mongodb.SetStatus[domain.Dataset](ctx, deps.Store, datasetID, domain.StatusDeleting); err != nil {
		return err
	}

	versions, err := mongodb.FindByParent[domain.DatasetVersion](ctx, deps.Store, datasetID)
	if err != nil {
		return err
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cascadeConcurrency)
	for i := range versions {
		g.Go(func() error {
			return deleteDatasetVersionCascade(gctx, deps, versions[i].ID)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	groups, err := mongodb.FindByParent[domain.ObjectGroup](ctx, deps.Store, datasetID)
	if err != nil {
		return err
	}
	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(cascadeConcurrency)
	for i := range groups {
		g.Go(func() error {
			return deleteObjectGroupCascade(gctx, deps, groups[i].ID)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return mongodb.DeleteOne[domain.Dataset](ctx, deps.Store, bson.M{"id": datasetID})
}

// deleteDatasetVersionCascade removes a released dataset version and pulls
// its pin from every revision it referenced.
func deleteDatasetVersionCascade(ctx context.Context, deps Deps, versionID string) error {
	if err := mongodb.SetStatus[domain.DatasetVersion](ctx, deps.Store, versionID, domain.StatusDeleting); err != nil {
		return err
	}

	err := mongodb.UpdateMany[domain.ObjectGroupRevision](ctx, deps.Store,
		bson.M{"dataset_versions": versionID},
		bson.M{"$pull": bson.M{"dataset_versions": versionID}},
	)
	if err != nil {
		return err
	}

	return mongodb.DeleteOne[domain.DatasetVersion](ctx, deps.Store, bson.M{"id": versionID})
}

// deleteObjectGroupCascade removes an object group with all its revisions
// and their payloads. A revision still pinned by a dataset version aborts
// the cascade before anything is removed.
func deleteObjectGroupCascade(ctx context.Context, deps Deps, groupID string) error {
	revisions, err := mongodb.Find[domain.ObjectGroupRevision](ctx, deps.Store, bson.M{"object_group_id": groupID})
	if err != nil {
		return err
	}

	for i := range revisions {
		if len(revisions[i].DatasetVersions) > 0 {
			return domain.ErrRevisionReferenced
		}
	}

	if err := mongodb.SetStatus[domain.ObjectGroup](ctx, deps.Store, groupID, domain.StatusDeleting); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cascadeConcurrency)
	for i := range revisions {
		g.Go(func() error {
			return deleteRevisionCascade(gctx, deps, &revisions[i])
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return mongodb.DeleteOne[domain.ObjectGroup](ctx, deps.Store, bson.M{"id": groupID})
}

// deleteRevisionCascade removes a single revision and its payloads. Pin
// checks are the caller's business.
func deleteRevisionCascade(ctx context.Context, deps Deps, revision *domain.ObjectGroupRevision) error {
	if err := mongodb.SetStatus[domain.ObjectGroupRevision](ctx, deps.Store, revision.ID, domain.StatusDeleting); err != nil {
		return err
	}
	if err := deleteRevisionObjects(ctx, deps, revision); err != nil {
		return err
	}
	return mongodb.DeleteOne[domain.ObjectGroupRevision](ctx, deps.Store, bson.M{"id": revision.ID})
}

// deleteRevisionObjects removes the payloads of all objects embedded in a
// revision from the object store.
func deleteRevisionObjects(ctx context.Context, deps Deps, revision *domain.ObjectGroupRevision) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cascadeConcurrency)

	for i := range revision.Objects {
		loc := revision.Objects[i].Location
		g.Go(func() error {
			return deps.Objects.Delete(gctx, loc)
		})
	}
	return g.Wait()
}
