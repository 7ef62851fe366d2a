// Package grpc provides gRPC service implementations for the sciodb daemon.
package grpc

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson"

	models "sciodb/api/gen/go/sciodb/v1/models"
	services "sciodb/api/gen/go/sciodb/v1/services"
	"sciodb/internal/domain"
	"sciodb/internal/storage/mongodb"
)

// ObjectGroupServiceServer implements the ObjectGroupService gRPC service.
type ObjectGroupServiceServer struct {
	services.UnimplementedObjectGroupServiceServer
	deps Deps
}

// NewObjectGroupServiceServer creates a new ObjectGroupServiceServer.
func NewObjectGroupServiceServer(deps Deps) *ObjectGroupServiceServer {
	return &ObjectGroupServiceServer{deps: deps}
}

// CreateObjectGroup creates an object group and, if revision data is
// supplied, its first revision in one call.
func (s *ObjectGroupServiceServer) CreateObjectGroup(ctx context.Context, req *services.CreateObjectGroupWithRevisionRequest) (*services.GetObjectGroupRevisionResponse, error) {
	groupReq := req.GetObjectGroup()
	if groupReq == nil {
		return nil, NewValidationError("object group is required", map[string]string{
			"object_group": "must not be empty",
		})
	}
	if err := s.deps.Auth.Authorize(ctx, domain.ResourceDataset, domain.RightWrite, groupReq.GetDatasetId()); err != nil {
		return nil, MapDomainError(err)
	}

	create := &domain.CreateObjectGroupRequest{
		Name:      groupReq.GetName(),
		DatasetID: groupReq.GetDatasetId(),
		Labels:    domain.LabelsFromProto(groupReq.GetLabels()),
		Metadata:  domain.MetadataFromProto(groupReq.GetMetadata()),
	}
	if err := create.Validate(); err != nil {
		return nil, MapDomainError(err)
	}

	group := domain.NewObjectGroup(create)
	stored, err := mongodb.Insert(ctx, s.deps.Store, group, group.ID)
	if err != nil {
		return nil, MapDomainError(err)
	}

	resp := &services.GetObjectGroupRevisionResponse{ObjectGroup: stored.ToProto()}
	if req.GetObjectGroupVersion() != nil {
		revision, updated, err := s.addRevision(ctx, stored.ID, req.GetObjectGroupVersion())
		if err != nil {
			return nil, MapDomainError(err)
		}
		resp.ObjectGroup = updated.ToProto()
		resp.ObjectGroupRevision = revision.ToProto()
	}
	return resp, nil
}

// AddRevisionToObjectGroup appends a new revision to an existing group.
func (s *ObjectGroupServiceServer) AddRevisionToObjectGroup(ctx context.Context, req *services.AddRevisionToObjectGroupRequest) (*services.GetObjectGroupRevisionResponse, error) {
	if err := s.deps.Auth.Authorize(ctx, domain.ResourceObjectGroup, domain.RightWrite, req.GetObjectGroupId()); err != nil {
		return nil, MapDomainError(err)
	}
	if req.GetGroupVersion() == nil {
		return nil, NewValidationError("revision data is required", map[string]string{
			"group_version": "must not be empty",
		})
	}

	revision, group, err := s.addRevision(ctx, req.GetObjectGroupId(), req.GetGroupVersion())
	if err != nil {
		return nil, MapDomainError(err)
	}
	return &services.GetObjectGroupRevisionResponse{
		ObjectGroup:         group.ToProto(),
		ObjectGroupRevision: revision.ToProto(),
	}, nil
}

// addRevision atomically claims the next revision number from the group's
// counter and stores the new revision as its head. Concurrent callers each
// see their own post-increment counter, so revision numbers never collide.
func (s *ObjectGroupServiceServer) addRevision(ctx context.Context, groupID string, req *services.CreateObjectGroupRevisionRequest) (*domain.ObjectGroupRevision, *domain.ObjectGroup, error) {
	group, err := mongodb.FindAndUpdate[domain.ObjectGroup](ctx, s.deps.Store,
		bson.M{"id": groupID},
		bson.M{"$inc": bson.M{"revision_counter": 1}},
	)
	if err != nil {
		return nil, nil, err
	}
	revisionNumber := group.RevisionCounter - 1

	create := &domain.CreateRevisionRequest{
		Objects:  objectRequestsFromProto(req.GetObjects()),
		Labels:   domain.LabelsFromProto(req.GetLabels()),
		Metadata: domain.MetadataFromProto(req.GetMetadata()),
	}
	revision := domain.NewObjectGroupRevision(create, group, revisionNumber, s.deps.Objects.Bucket())

	stored, err := mongodb.Insert(ctx, s.deps.Store, revision, revision.ID)
	if err != nil {
		return nil, nil, err
	}

	err = mongodb.UpdateOne[domain.ObjectGroup](ctx, s.deps.Store,
		bson.M{"id": groupID},
		bson.M{"$set": bson.M{"head_id": stored.ID}},
	)
	if err != nil {
		return nil, nil, err
	}
	group.HeadID = stored.ID

	return stored, group, nil
}

// GetObjectGroup returns a single object group.
func (s *ObjectGroupServiceServer) GetObjectGroup(ctx context.Context, req *models.Id) (*models.ObjectGroup, error) {
	if err := s.deps.Auth.Authorize(ctx, domain.ResourceObjectGroup, domain.RightRead, req.GetId()); err != nil {
		return nil, MapDomainError(err)
	}

	group, err := mongodb.FindByID[domain.ObjectGroup](ctx, s.deps.Store, req.GetId())
	if err != nil {
		return nil, MapDomainError(err)
	}
	return group.ToProto(), nil
}

// GetObjectGroupRevision returns a revision addressed either directly by
// its id or by group id and revision number.
func (s *ObjectGroupServiceServer) GetObjectGroupRevision(ctx context.Context, req *services.GetObjectGroupRevisionRequest) (*models.ObjectGroupRevision, error) {
	switch req.GetReferenceType() {
	case services.ObjectGroupRevisionReferenceType_OBJECT_GROUP_REVISION_REFERENCE_TYPE_ID:
		if err := s.deps.Auth.Authorize(ctx, domain.ResourceRevision, domain.RightRead, req.GetId()); err != nil {
			return nil, MapDomainError(err)
		}
		revision, err := mongodb.FindByID[domain.ObjectGroupRevision](ctx, s.deps.Store, req.GetId())
		if err != nil {
			return nil, MapDomainError(err)
		}
		return revision.ToProto(), nil

	case services.ObjectGroupRevisionReferenceType_OBJECT_GROUP_REVISION_REFERENCE_TYPE_REVISION:
		if err := s.deps.Auth.Authorize(ctx, domain.ResourceObjectGroup, domain.RightRead, req.GetId()); err != nil {
			return nil, MapDomainError(err)
		}
		revision, err := mongodb.FindOne[domain.ObjectGroupRevision](ctx, s.deps.Store, bson.M{
			"object_group_id": req.GetId(),
			"revision":        req.GetRevision(),
		})
		if err != nil {
			return nil, MapDomainError(err)
		}
		return revision.ToProto(), nil

	default:
		return nil, MapDomainError(domain.ErrInvalidRevisionRef)
	}
}

// GetObjectGroupRevisions returns all revisions of an object group.
func (s *ObjectGroupServiceServer) GetObjectGroupRevisions(ctx context.Context, req *models.Id) (*services.ObjectGroupRevisions, error) {
	if err := s.deps.Auth.Authorize(ctx, domain.ResourceObjectGroup, domain.RightRead, req.GetId()); err != nil {
		return nil, MapDomainError(err)
	}

	revisions, err := mongodb.Find[domain.ObjectGroupRevision](ctx, s.deps.Store,
		bson.M{"object_group_id": req.GetId()})
	if err != nil {
		return nil, MapDomainError(err)
	}
	sort.Slice(revisions, func(i, j int) bool {
		return revisions[i].Revision < revisions[j].Revision
	})

	list := make([]*models.ObjectGroupRevision, 0, len(revisions))
	for i := range revisions {
		list = append(list, revisions[i].ToProto())
	}
	return &services.ObjectGroupRevisions{ObjectGroupRevision: list}, nil
}

// GetCurrentObjectGroupRevision returns the head revision of a group.
func (s *ObjectGroupServiceServer) GetCurrentObjectGroupRevision(ctx context.Context, req *models.Id) (*models.ObjectGroupRevision, error) {
	if err := s.deps.Auth.Authorize(ctx, domain.ResourceObjectGroup, domain.RightRead, req.GetId()); err != nil {
		return nil, MapDomainError(err)
	}

	group, err := mongodb.FindByID[domain.ObjectGroup](ctx, s.deps.Store, req.GetId())
	if err != nil {
		return nil, MapDomainError(err)
	}
	if group.RevisionCounter == 0 {
		return nil, MapDomainError(domain.ErrRevisionNotFound)
	}

	revision, err := mongodb.FindOne[domain.ObjectGroupRevision](ctx, s.deps.Store, bson.M{
		"object_group_id": group.ID,
		"revision":        group.CurrentRevision(),
	})
	if err != nil {
		return nil, MapDomainError(err)
	}
	return revision.ToProto(), nil
}

// FinishObjectGroupUpload marks an object group as Available. It is the
// caller's signal that every object payload across the group's revisions
// has been uploaded. Revisions never become Available on their own; the
// group's status speaks for them.
func (s *ObjectGroupServiceServer) FinishObjectGroupUpload(ctx context.Context, req *models.Id) (*models.Empty, error) {
	if err := s.deps.Auth.Authorize(ctx, domain.ResourceObjectGroup, domain.RightWrite, req.GetId()); err != nil {
		return nil, MapDomainError(err)
	}

	if err := mongodb.SetStatus[domain.ObjectGroup](ctx, s.deps.Store, req.GetId(), domain.StatusAvailable); err != nil {
		return nil, MapDomainError(err)
	}
	return &models.Empty{}, nil
}

// DeleteObjectGroup deletes a group with all its revisions and payloads.
// A revision still pinned by a dataset version blocks the delete.
func (s *ObjectGroupServiceServer) DeleteObjectGroup(ctx context.Context, req *models.Id) (*models.Empty, error) {
	if err := s.deps.Auth.Authorize(ctx, domain.ResourceObjectGroup, domain.RightWrite, req.GetId()); err != nil {
		return nil, MapDomainError(err)
	}

	if err := deleteObjectGroupCascade(ctx, s.deps, req.GetId()); err != nil {
		return nil, MapDomainError(err)
	}
	return &models.Empty{}, nil
}

// DeleteObjectGroupRevision deletes a single revision and its payloads. A
// revision pinned by a dataset version cannot be deleted.
func (s *ObjectGroupServiceServer) DeleteObjectGroupRevision(ctx context.Context, req *models.Id) (*models.Empty, error) {
	if err := s.deps.Auth.Authorize(ctx, domain.ResourceRevision, domain.RightWrite, req.GetId()); err != nil {
		return nil, MapDomainError(err)
	}

	revision, err := mongodb.FindByID[domain.ObjectGroupRevision](ctx, s.deps.Store, req.GetId())
	if err != nil {
		return nil, MapDomainError(err)
	}
	if len(revision.DatasetVersions) > 0 {
		return nil, MapDomainError(domain.ErrRevisionReferenced)
	}

	if err := deleteRevisionCascade(ctx, s.deps, revision); err != nil {
		return nil, MapDomainError(err)
	}

	// If the group head pointed at the deleted revision, move it back to
	// the newest remaining one.
	if err := s.repointHead(ctx, revision.ObjectGroupID, revision.ID); err != nil {
		return nil, MapDomainError(err)
	}
	return &models.Empty{}, nil
}

// repointHead resets a group's head to its newest remaining revision after
// the revision with deletedID was removed.
func (s *ObjectGroupServiceServer) repointHead(ctx context.Context, groupID, deletedID string) error {
	group, err := mongodb.FindByID[domain.ObjectGroup](ctx, s.deps.Store, groupID)
	if err != nil {
		return err
	}
	if group.HeadID != deletedID {
		return nil
	}

	remaining, err := mongodb.Find[domain.ObjectGroupRevision](ctx, s.deps.Store,
		bson.M{"object_group_id": groupID})
	if err != nil {
		return err
	}

	headID := ""
	var newest int64 = -1
	for i := range remaining {
		if remaining[i].Revision > newest {
			newest = remaining[i].Revision
			headID = remaining[i].ID
		}
	}

	return mongodb.UpdateOne[domain.ObjectGroup](ctx, s.deps.Store,
		bson.M{"id": groupID},
		bson.M{"$set": bson.M{"head_id": headID}},
	)
}

// objectRequestsFromProto converts the object create payloads of a
// revision request.
func objectRequestsFromProto(objects []*services.CreateObjectRequest) []*domain.CreateObjectRequest {
	out := make([]*domain.CreateObjectRequest, 0, len(objects))
	for _, o := range objects {
		out = append(out, &domain.CreateObjectRequest{
			Filename:   o.GetFilename(),
			Filetype:   o.GetFiletype(),
			ContentLen: o.GetContentLen(),
			Labels:     domain.LabelsFromProto(o.GetLabels()),
			Metadata:   domain.MetadataFromProto(o.GetMetadata()),
		})
	}
	return out
}
