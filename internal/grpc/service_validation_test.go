package grpc

import (
	"context"
	"testing"

	models "sciodb/api/gen/go/sciodb/v1/models"
	services "sciodb/api/gen/go/sciodb/v1/services"
	"sciodb/internal/auth"
	"sciodb/internal/domain"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// recordingAuth denies every request after recording what was asked of it.
type recordingAuth struct {
	resource domain.Resource
	right    domain.Right
	id       string
}

func (r *recordingAuth) UserID(context.Context) (string, error) {
	return "testuser", nil
}

func (r *recordingAuth) Authorize(_ context.Context, resource domain.Resource, right domain.Right, id string) error {
	r.resource, r.right, r.id = resource, right, id
	return domain.ErrPermissionDenied
}

// deniedAuth rejects every request.
type deniedAuth struct{}

func (deniedAuth) UserID(context.Context) (string, error) {
	return "", domain.ErrUnauthenticated
}

func (deniedAuth) Authorize(context.Context, domain.Resource, domain.Right, string) error {
	return domain.ErrPermissionDenied
}

// allowDeps builds service dependencies that pass authorization. The store
// fields stay nil; the tests below only exercise paths that fail before
// touching storage.
func allowDeps() Deps {
	return Deps{Auth: auth.NewDebugAuthenticator()}
}

func denyDeps() Deps {
	return Deps{Auth: deniedAuth{}}
}

// ==================== Project Service Tests ====================

func TestCreateProjectRejectsEmptyName(t *testing.T) {
	s := NewProjectServiceServer(allowDeps())

	_, err := s.CreateProject(context.Background(), &services.CreateProjectRequest{})
	if got := status.Code(err); got != codes.InvalidArgument {
		t.Errorf("expected InvalidArgument, got %v", got)
	}
}

func TestAddUserToProjectRejectsEmptyUser(t *testing.T) {
	s := NewProjectServiceServer(allowDeps())

	_, err := s.AddUserToProject(context.Background(), &services.AddUserToProjectRequest{
		ProjectId: "p1",
	})
	if got := status.Code(err); got != codes.InvalidArgument {
		t.Errorf("expected InvalidArgument, got %v", got)
	}
}

func TestGetProjectDenied(t *testing.T) {
	s := NewProjectServiceServer(denyDeps())

	_, err := s.GetProject(context.Background(), &models.Id{Id: "p1"})
	if got := status.Code(err); got != codes.PermissionDenied {
		t.Errorf("expected PermissionDenied, got %v", got)
	}
}

// ==================== Dataset Service Tests ====================

func TestCreateDatasetRejectsEmptyName(t *testing.T) {
	s := NewDatasetServiceServer(allowDeps())

	_, err := s.CreateDataset(context.Background(), &services.CreateDatasetRequest{
		ProjectId: "p1",
	})
	if got := status.Code(err); got != codes.InvalidArgument {
		t.Errorf("expected InvalidArgument, got %v", got)
	}
}

func TestUpdateDatasetFieldRejectsUnknownField(t *testing.T) {
	s := NewDatasetServiceServer(allowDeps())

	_, err := s.UpdateDatasetField(context.Background(), &models.UpdateFieldsRequest{
		Id:    "d1",
		Field: "status",
		Value: "AVAILABLE",
	})
	if got := status.Code(err); got != codes.InvalidArgument {
		t.Errorf("expected InvalidArgument, got %v", got)
	}
}

func TestReleaseDatasetVersionRejectsEmptyDataset(t *testing.T) {
	s := NewDatasetServiceServer(allowDeps())

	_, err := s.ReleaseDatasetVersion(context.Background(), &services.ReleaseDatasetVersionRequest{})
	if got := status.Code(err); got != codes.InvalidArgument {
		t.Errorf("expected InvalidArgument, got %v", got)
	}
}

func TestDeleteDatasetDenied(t *testing.T) {
	s := NewDatasetServiceServer(denyDeps())

	_, err := s.DeleteDataset(context.Background(), &models.Id{Id: "d1"})
	if got := status.Code(err); got != codes.PermissionDenied {
		t.Errorf("expected PermissionDenied, got %v", got)
	}
}

// ==================== Object Group Service Tests ====================

func TestCreateObjectGroupRequiresGroupPayload(t *testing.T) {
	s := NewObjectGroupServiceServer(allowDeps())

	_, err := s.CreateObjectGroup(context.Background(), &services.CreateObjectGroupWithRevisionRequest{})
	if got := status.Code(err); got != codes.InvalidArgument {
		t.Errorf("expected InvalidArgument, got %v", got)
	}
}

func TestCreateObjectGroupRequiresDataset(t *testing.T) {
	s := NewObjectGroupServiceServer(allowDeps())

	_, err := s.CreateObjectGroup(context.Background(), &services.CreateObjectGroupWithRevisionRequest{
		ObjectGroup: &services.CreateObjectGroupRequest{Name: "g"},
	})
	if got := status.Code(err); got != codes.InvalidArgument {
		t.Errorf("expected InvalidArgument, got %v", got)
	}
}

func TestAddRevisionRequiresPayload(t *testing.T) {
	s := NewObjectGroupServiceServer(allowDeps())

	_, err := s.AddRevisionToObjectGroup(context.Background(), &services.AddRevisionToObjectGroupRequest{
		ObjectGroupId: "g1",
	})
	if got := status.Code(err); got != codes.InvalidArgument {
		t.Errorf("expected InvalidArgument, got %v", got)
	}
}

func TestGetObjectGroupRevisionRejectsVersionReference(t *testing.T) {
	s := NewObjectGroupServiceServer(allowDeps())

	// Addressing revisions through dataset versions is not supported;
	// version contents come from GetDatasetVersionRevisions.
	_, err := s.GetObjectGroupRevision(context.Background(), &services.GetObjectGroupRevisionRequest{
		Id:            "v1",
		ReferenceType: services.ObjectGroupRevisionReferenceType_OBJECT_GROUP_REVISION_REFERENCE_TYPE_VERSION,
	})
	if got := status.Code(err); got != codes.InvalidArgument {
		t.Errorf("expected InvalidArgument, got %v", got)
	}
}

func TestFinishObjectGroupUploadTargetsGroup(t *testing.T) {
	// The request carries an object group id, so authorization has to
	// resolve it as a group, not as a revision.
	rec := &recordingAuth{}
	s := NewObjectGroupServiceServer(Deps{Auth: rec})

	_, err := s.FinishObjectGroupUpload(context.Background(), &models.Id{Id: "g1"})
	if got := status.Code(err); got != codes.PermissionDenied {
		t.Fatalf("expected PermissionDenied, got %v", got)
	}
	if rec.resource != domain.ResourceObjectGroup {
		t.Errorf("expected authorization on %v, got %v", domain.ResourceObjectGroup, rec.resource)
	}
	if rec.right != domain.RightWrite {
		t.Errorf("expected Write right, got %v", rec.right)
	}
	if rec.id != "g1" {
		t.Errorf("expected authorization on id g1, got %q", rec.id)
	}
}

// ==================== Object Load Service Tests ====================

func TestCreateUploadLinkDenied(t *testing.T) {
	s := NewObjectLoadServiceServer(denyDeps())

	_, err := s.CreateUploadLink(context.Background(), &models.Id{Id: "o1"})
	if got := status.Code(err); got != codes.PermissionDenied {
		t.Errorf("expected PermissionDenied, got %v", got)
	}
}

func TestCompleteMultipartUploadDenied(t *testing.T) {
	s := NewObjectLoadServiceServer(denyDeps())

	_, err := s.CompleteMultipartUpload(context.Background(), &services.CompleteMultipartRequest{
		ObjectId: "o1",
	})
	if got := status.Code(err); got != codes.PermissionDenied {
		t.Errorf("expected PermissionDenied, got %v", got)
	}
}
