package auth

import (
	"context"
	"fmt"

	"sciodb/internal/domain"
	"sciodb/internal/storage"
	"sciodb/internal/storage/mongodb"
)

// ResolveProjectID walks a resource up the hierarchy to its owning project.
// Any failure on the way up is reported as ErrCannotResolveProject so
// callers cannot distinguish a missing resource from one they may not see.
func ResolveProjectID(ctx context.Context, store *mongodb.Store, resource domain.Resource, id string) (string, error) {
	if id == "" {
		return "", fmt.Errorf("%w: empty %s id", domain.ErrCannotResolveProject, resource)
	}

	switch resource {
	case domain.ResourceProject:
		return id, nil

	case domain.ResourceDataset:
		dataset, err := mongodb.FindByID[domain.Dataset](ctx, store, id)
		if err != nil {
			return "", resolveErr(resource, id, err)
		}
		return dataset.ProjectID, nil

	case domain.ResourceObjectGroup:
		group, err := mongodb.FindByID[domain.ObjectGroup](ctx, store, id)
		if err != nil {
			return "", resolveErr(resource, id, err)
		}
		return ResolveProjectID(ctx, store, domain.ResourceDataset, group.DatasetID)

	case domain.ResourceRevision:
		revision, err := mongodb.FindByID[domain.ObjectGroupRevision](ctx, store, id)
		if err != nil {
			return "", resolveErr(resource, id, err)
		}
		return ResolveProjectID(ctx, store, domain.ResourceDataset, revision.DatasetID)

	case domain.ResourceDatasetVersion:
		version, err := mongodb.FindByID[domain.DatasetVersion](ctx, store, id)
		if err != nil {
			return "", resolveErr(resource, id, err)
		}
		return ResolveProjectID(ctx, store, domain.ResourceDataset, version.DatasetID)

	case domain.ResourceObject:
		revision, err := mongodb.RevisionForObject(ctx, store, id)
		if err != nil {
			return "", resolveErr(resource, id, err)
		}
		return ResolveProjectID(ctx, store, domain.ResourceDataset, revision.DatasetID)

	default:
		return "", fmt.Errorf("%w: unknown resource %q", domain.ErrCannotResolveProject, resource)
	}
}

func resolveErr(resource domain.Resource, id string, err error) error {
	if storage.IsNotFound(err) {
		return fmt.Errorf("%w: %s %s", domain.ErrCannotResolveProject, resource, id)
	}
	return fmt.Errorf("resolve project for %s %s: %w", resource, id, err)
}
