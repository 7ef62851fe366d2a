// Package grpc provides gRPC service implementations for the sciodb daemon.
package grpc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/sync/errgroup"

	models "sciodb/api/gen/go/sciodb/v1/models"
	services "sciodb/api/gen/go/sciodb/v1/services"
	"sciodb/internal/domain"
	"sciodb/internal/storage/mongodb"
)

// releasePinBatchSize is how many revisions a single update_many pins per
// round when releasing a dataset version.
const releasePinBatchSize = 1000

// revisionCheckConcurrency bounds how many revision lookups run at once
// when validating a release request.
const revisionCheckConcurrency = 100

// DatasetServiceServer implements the DatasetService gRPC service.
type DatasetServiceServer struct {
	services.UnimplementedDatasetServiceServer
	deps Deps
}

// NewDatasetServiceServer creates a new DatasetServiceServer.
func NewDatasetServiceServer(deps Deps) *DatasetServiceServer {
	return &DatasetServiceServer{deps: deps}
}

// CreateDataset creates a new dataset within a project.
func (s *DatasetServiceServer) CreateDataset(ctx context.Context, req *services.CreateDatasetRequest) (*models.Dataset, error) {
	if err := s.deps.Auth.Authorize(ctx, domain.ResourceProject, domain.RightWrite, req.GetProjectId()); err != nil {
		return nil, MapDomainError(err)
	}

	create := &domain.CreateDatasetRequest{
		Name:        req.GetName(),
		Description: req.GetDescription(),
		ProjectID:   req.GetProjectId(),
		IsPublic:    req.GetIsPublic(),
		Labels:      domain.LabelsFromProto(req.GetLabels()),
		Metadata:    domain.MetadataFromProto(req.GetMetadata()),
	}
	if err := create.Validate(); err != nil {
		return nil, MapDomainError(err)
	}

	dataset := domain.NewDataset(create)
	stored, err := mongodb.Insert(ctx, s.deps.Store, dataset, dataset.ID)
	if err != nil {
		return nil, MapDomainError(err)
	}
	return stored.ToProto(), nil
}

// GetDataset returns a single dataset.
func (s *DatasetServiceServer) GetDataset(ctx context.Context, req *models.Id) (*models.Dataset, error) {
	if err := s.deps.Auth.Authorize(ctx, domain.ResourceDataset, domain.RightRead, req.GetId()); err != nil {
		return nil, MapDomainError(err)
	}

	dataset, err := mongodb.FindByID[domain.Dataset](ctx, s.deps.Store, req.GetId())
	if err != nil {
		return nil, MapDomainError(err)
	}
	return dataset.ToProto(), nil
}

// GetDatasetVersions returns all released versions of a dataset.
func (s *DatasetServiceServer) GetDatasetVersions(ctx context.Context, req *models.Id) (*services.DatasetVersionList, error) {
	if err := s.deps.Auth.Authorize(ctx, domain.ResourceDataset, domain.RightRead, req.GetId()); err != nil {
		return nil, MapDomainError(err)
	}

	versions, err := mongodb.FindByParent[domain.DatasetVersion](ctx, s.deps.Store, req.GetId())
	if err != nil {
		return nil, MapDomainError(err)
	}

	list := make([]*models.DatasetVersion, 0, len(versions))
	for i := range versions {
		list = append(list, versions[i].ToProto())
	}
	return &services.DatasetVersionList{DatasetVersion: list}, nil
}

// GetDatasetObjectGroups returns all object groups of a dataset.
func (s *DatasetServiceServer) GetDatasetObjectGroups(ctx context.Context, req *models.Id) (*services.ObjectGroupList, error) {
	if err := s.deps.Auth.Authorize(ctx, domain.ResourceDataset, domain.RightRead, req.GetId()); err != nil {
		return nil, MapDomainError(err)
	}

	groups, err := mongodb.FindByParent[domain.ObjectGroup](ctx, s.deps.Store, req.GetId())
	if err != nil {
		return nil, MapDomainError(err)
	}

	list := make([]*models.ObjectGroup, 0, len(groups))
	for i := range groups {
		list = append(list, groups[i].ToProto())
	}
	return &services.ObjectGroupList{ObjectGroups: list}, nil
}

// GetCurrentObjectGroupRevisions returns the head revision of every object
// group in a dataset. Groups without a revision yet are skipped.
func (s *DatasetServiceServer) GetCurrentObjectGroupRevisions(ctx context.Context, req *models.Id) (*services.ObjectGroupRevisions, error) {
	if err := s.deps.Auth.Authorize(ctx, domain.ResourceDataset, domain.RightRead, req.GetId()); err != nil {
		return nil, MapDomainError(err)
	}

	groups, err := mongodb.FindByParent[domain.ObjectGroup](ctx, s.deps.Store, req.GetId())
	if err != nil {
		return nil, MapDomainError(err)
	}

	results := make([]*domain.ObjectGroupRevision, len(groups))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(revisionCheckConcurrency)
	for i := range groups {
		if groups[i].RevisionCounter == 0 {
			continue
		}
		g.Go(func() error {
			revision, err := mongodb.FindOne[domain.ObjectGroupRevision](gctx, s.deps.Store, bson.M{
				"object_group_id": groups[i].ID,
				"revision":        groups[i].CurrentRevision(),
			})
			if err != nil {
				return err
			}
			results[i] = revision
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, MapDomainError(err)
	}

	list := make([]*models.ObjectGroupRevision, 0, len(results))
	for _, r := range results {
		if r != nil {
			list = append(list, r.ToProto())
		}
	}
	return &services.ObjectGroupRevisions{ObjectGroupRevision: list}, nil
}

// ReleaseDatasetVersion releases an immutable dataset version pinning the
// given revisions. Every pinned revision records the version id so it
// cannot be deleted while the version exists.
func (s *DatasetServiceServer) ReleaseDatasetVersion(ctx context.Context, req *services.ReleaseDatasetVersionRequest) (*models.DatasetVersion, error) {
	if err := s.deps.Auth.Authorize(ctx, domain.ResourceDataset, domain.RightWrite, req.GetDatasetId()); err != nil {
		return nil, MapDomainError(err)
	}

	release := &domain.ReleaseDatasetVersionRequest{
		DatasetID:   req.GetDatasetId(),
		Description: req.GetDescription(),
		Version:     domain.VersionFromProto(req.GetVersion()),
		Labels:      domain.LabelsFromProto(req.GetLabels()),
		Metadata:    domain.MetadataFromProto(req.GetMetadata()),
		RevisionIDs: req.GetRevisionIds(),
	}
	if err := release.Validate(); err != nil {
		return nil, MapDomainError(err)
	}

	// Every pinned revision must exist and belong to the released dataset.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(revisionCheckConcurrency)
	for _, revisionID := range release.RevisionIDs {
		g.Go(func() error {
			revision, err := mongodb.FindByID[domain.ObjectGroupRevision](gctx, s.deps.Store, revisionID)
			if err != nil {
				return err
			}
			if revision.DatasetID != release.DatasetID {
				return domain.ErrInvalidRevisionRef
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, MapDomainError(err)
	}

	version := domain.NewDatasetVersion(release)
	stored, err := mongodb.Insert(ctx, s.deps.Store, version, version.ID)
	if err != nil {
		return nil, MapDomainError(err)
	}

	// Pin the revisions in chunks, all chunks in flight at once. $addToSet
	// is idempotent, so a failed release can be re-run safely.
	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(revisionCheckConcurrency)
	for start := 0; start < len(release.RevisionIDs); start += releasePinBatchSize {
		chunk := release.RevisionIDs[start:min(start+releasePinBatchSize, len(release.RevisionIDs))]
		g.Go(func() error {
			return mongodb.UpdateMany[domain.ObjectGroupRevision](gctx, s.deps.Store,
				bson.M{"id": bson.M{"$in": chunk}},
				bson.M{"$addToSet": bson.M{"dataset_versions": version.ID}},
			)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, MapDomainError(err)
	}

	return stored.ToProto(), nil
}

// GetDatasetVersion returns a single released dataset version.
func (s *DatasetServiceServer) GetDatasetVersion(ctx context.Context, req *models.Id) (*models.DatasetVersion, error) {
	if err := s.deps.Auth.Authorize(ctx, domain.ResourceDatasetVersion, domain.RightRead, req.GetId()); err != nil {
		return nil, MapDomainError(err)
	}

	version, err := mongodb.FindByID[domain.DatasetVersion](ctx, s.deps.Store, req.GetId())
	if err != nil {
		return nil, MapDomainError(err)
	}
	return version.ToProto(), nil
}

// GetDatasetVersionRevisions returns the revisions pinned by a released
// dataset version.
func (s *DatasetServiceServer) GetDatasetVersionRevisions(ctx context.Context, req *models.Id) (*services.ObjectGroupRevisions, error) {
	if err := s.deps.Auth.Authorize(ctx, domain.ResourceDatasetVersion, domain.RightRead, req.GetId()); err != nil {
		return nil, MapDomainError(err)
	}

	version, err := mongodb.FindByID[domain.DatasetVersion](ctx, s.deps.Store, req.GetId())
	if err != nil {
		return nil, MapDomainError(err)
	}

	revisions, err := mongodb.Find[domain.ObjectGroupRevision](ctx, s.deps.Store,
		bson.M{"id": bson.M{"$in": version.ObjectGroupIDs}})
	if err != nil {
		return nil, MapDomainError(err)
	}

	list := make([]*models.ObjectGroupRevision, 0, len(revisions))
	for i := range revisions {
		list = append(list, revisions[i].ToProto())
	}
	return &services.ObjectGroupRevisions{ObjectGroupRevision: list}, nil
}

// UpdateDatasetField updates a single mutable field of a dataset. Only the
// name and description can be changed after creation.
func (s *DatasetServiceServer) UpdateDatasetField(ctx context.Context, req *models.UpdateFieldsRequest) (*models.Dataset, error) {
	if err := s.deps.Auth.Authorize(ctx, domain.ResourceDataset, domain.RightWrite, req.GetId()); err != nil {
		return nil, MapDomainError(err)
	}

	switch req.GetField() {
	case "name", "description":
	default:
		return nil, NewValidationError("field is not updatable", map[string]string{
			"field": "must be one of: name, description",
		})
	}

	err := mongodb.UpdateOne[domain.Dataset](ctx, s.deps.Store,
		bson.M{"id": req.GetId()},
		bson.M{"$set": bson.M{req.GetField(): req.GetValue()}},
	)
	if err != nil {
		return nil, MapDomainError(err)
	}

	dataset, err := mongodb.FindByID[domain.Dataset](ctx, s.deps.Store, req.GetId())
	if err != nil {
		return nil, MapDomainError(err)
	}
	return dataset.ToProto(), nil
}

// DeleteDataset deletes a dataset with all its object groups, revisions,
// payloads and released versions.
func (s *DatasetServiceServer) DeleteDataset(ctx context.Context, req *models.Id) (*models.Empty, error) {
	if err := s.deps.Auth.Authorize(ctx, domain.ResourceDataset, domain.RightWrite, req.GetId()); err != nil {
		return nil, MapDomainError(err)
	}

	if err := deleteDatasetCascade(ctx, s.deps, req.GetId()); err != nil {
		return nil, MapDomainError(err)
	}
	return &models.Empty{}, nil
}

// DeleteDatasetVersion deletes a released dataset version and unpins the
// revisions it referenced.
func (s *DatasetServiceServer) DeleteDatasetVersion(ctx context.Context, req *models.Id) (*models.Empty, error) {
	if err := s.deps.Auth.Authorize(ctx, domain.ResourceDatasetVersion, domain.RightWrite, req.GetId()); err != nil {
		return nil, MapDomainError(err)
	}

	if err := deleteDatasetVersionCascade(ctx, s.deps, req.GetId()); err != nil {
		return nil, MapDomainError(err)
	}
	return &models.Empty{}, nil
}
