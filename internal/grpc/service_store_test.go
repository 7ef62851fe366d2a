package grpc

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	models "sciodb/api/gen/go/sciodb/v1/models"
	services "sciodb/api/gen/go/sciodb/v1/services"
	"sciodb/internal/auth"
	"sciodb/internal/domain"
	"sciodb/internal/storage"
	"sciodb/internal/storage/mongodb"
	"sciodb/internal/storage/s3"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// storeDeps connects to the MongoDB instance named by SCIODB_TEST_MONGO_URI
// and returns service dependencies backed by a throwaway database. Tests
// are skipped when the variable is unset. The object store handle is a
// zero-value client; the tests below only delete revisions without object
// payloads, so it is never dialed.
func storeDeps(t *testing.T) (Deps, context.Context) {
	t.Helper()

	uri := os.Getenv("SCIODB_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("SCIODB_TEST_MONGO_URI not set, skipping MongoDB integration tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	dbName := fmt.Sprintf("sciodb_test_%s", uuid.New().String()[:8])
	store := mongodb.NewStoreFromClient(client, dbName)

	t.Cleanup(func() {
		_ = store.Database().Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})

	return Deps{
		Store:   store,
		Objects: &s3.Store{},
		Auth:    auth.NewDebugAuthenticator(),
	}, ctx
}

// createDataset creates a dataset through the service and returns its id.
func createDataset(t *testing.T, ctx context.Context, deps Deps) string {
	t.Helper()

	s := NewDatasetServiceServer(deps)
	dataset, err := s.CreateDataset(ctx, &services.CreateDatasetRequest{
		Name:      "measurements",
		ProjectId: "p1",
	})
	if err != nil {
		t.Fatalf("create dataset: %v", err)
	}
	return dataset.GetId()
}

// createGroupWithRevision creates an object group with one revision and
// returns the group and revision ids.
func createGroupWithRevision(t *testing.T, ctx context.Context, deps Deps, datasetID string) (string, string) {
	t.Helper()

	s := NewObjectGroupServiceServer(deps)
	resp, err := s.CreateObjectGroup(ctx, &services.CreateObjectGroupWithRevisionRequest{
		ObjectGroup: &services.CreateObjectGroupRequest{
			Name:      "readings",
			DatasetId: datasetID,
		},
		ObjectGroupVersion: &services.CreateObjectGroupRevisionRequest{},
	})
	if err != nil {
		t.Fatalf("create object group: %v", err)
	}
	return resp.GetObjectGroup().GetId(), resp.GetObjectGroupRevision().GetId()
}

// ==================== Upload Finish Tests ====================

func TestFinishObjectGroupUploadMarksGroupAvailable(t *testing.T) {
	deps, ctx := storeDeps(t)
	datasetID := createDataset(t, ctx, deps)
	groupID, _ := createGroupWithRevision(t, ctx, deps, datasetID)

	s := NewObjectGroupServiceServer(deps)
	if _, err := s.FinishObjectGroupUpload(ctx, &models.Id{Id: groupID}); err != nil {
		t.Fatalf("finish upload: %v", err)
	}

	group, err := mongodb.FindByID[domain.ObjectGroup](ctx, deps.Store, groupID)
	if err != nil {
		t.Fatalf("find group: %v", err)
	}
	if group.Status != domain.StatusAvailable {
		t.Errorf("expected group status %v, got %v", domain.StatusAvailable, group.Status)
	}
}

func TestFinishObjectGroupUploadUnknownGroup(t *testing.T) {
	deps, ctx := storeDeps(t)

	s := NewObjectGroupServiceServer(deps)
	_, err := s.FinishObjectGroupUpload(ctx, &models.Id{Id: "no-such-group"})
	if got := status.Code(err); got != codes.NotFound {
		t.Errorf("expected NotFound, got %v", got)
	}
}

// ==================== Revision Numbering Tests ====================

func TestRevisionNumbersStayWithinCounter(t *testing.T) {
	deps, ctx := storeDeps(t)
	datasetID := createDataset(t, ctx, deps)
	groupID, _ := createGroupWithRevision(t, ctx, deps, datasetID)

	s := NewObjectGroupServiceServer(deps)
	second, err := s.AddRevisionToObjectGroup(ctx, &services.AddRevisionToObjectGroupRequest{
		ObjectGroupId: groupID,
		GroupVersion:  &services.CreateObjectGroupRevisionRequest{},
	})
	if err != nil {
		t.Fatalf("add revision: %v", err)
	}
	if got := second.GetObjectGroupRevision().GetRevision(); got != 1 {
		t.Errorf("expected second revision number 1, got %d", got)
	}

	group, err := mongodb.FindByID[domain.ObjectGroup](ctx, deps.Store, groupID)
	if err != nil {
		t.Fatalf("find group: %v", err)
	}
	if group.RevisionCounter != 2 {
		t.Errorf("expected revision counter 2, got %d", group.RevisionCounter)
	}

	list, err := s.GetObjectGroupRevisions(ctx, &models.Id{Id: groupID})
	if err != nil {
		t.Fatalf("list revisions: %v", err)
	}
	revisions := list.GetObjectGroupRevision()
	if len(revisions) != 2 {
		t.Fatalf("expected 2 revisions, got %d", len(revisions))
	}
	seen := make(map[int64]bool)
	for i, r := range revisions {
		n := r.GetRevision()
		if n < 0 || n >= group.RevisionCounter {
			t.Errorf("revision number %d outside [0, %d)", n, group.RevisionCounter)
		}
		if seen[n] {
			t.Errorf("duplicate revision number %d", n)
		}
		seen[n] = true
		if i > 0 && revisions[i-1].GetRevision() >= n {
			t.Errorf("revisions not in increasing order at index %d", i)
		}
	}
}

// ==================== Release and Pin Tests ====================

func TestReleaseRecordsBackPointers(t *testing.T) {
	deps, ctx := storeDeps(t)
	datasetID := createDataset(t, ctx, deps)
	_, revisionID := createGroupWithRevision(t, ctx, deps, datasetID)

	s := NewDatasetServiceServer(deps)
	version, err := s.ReleaseDatasetVersion(ctx, &services.ReleaseDatasetVersionRequest{
		DatasetId:   datasetID,
		RevisionIds: []string{revisionID},
	})
	if err != nil {
		t.Fatalf("release: %v", err)
	}

	revision, err := mongodb.FindByID[domain.ObjectGroupRevision](ctx, deps.Store, revisionID)
	if err != nil {
		t.Fatalf("find revision: %v", err)
	}
	var pinned bool
	for _, v := range revision.DatasetVersions {
		if v == version.GetId() {
			pinned = true
		}
	}
	if !pinned {
		t.Errorf("revision does not point back at version %s", version.GetId())
	}
}

func TestPinnedRevisionBlocksDelete(t *testing.T) {
	deps, ctx := storeDeps(t)
	datasetID := createDataset(t, ctx, deps)
	_, revisionID := createGroupWithRevision(t, ctx, deps, datasetID)

	datasetSvc := NewDatasetServiceServer(deps)
	version, err := datasetSvc.ReleaseDatasetVersion(ctx, &services.ReleaseDatasetVersionRequest{
		DatasetId:   datasetID,
		RevisionIds: []string{revisionID},
	})
	if err != nil {
		t.Fatalf("release: %v", err)
	}

	groupSvc := NewObjectGroupServiceServer(deps)
	_, err = groupSvc.DeleteObjectGroupRevision(ctx, &models.Id{Id: revisionID})
	if got := status.Code(err); got != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument for pinned revision, got %v", got)
	}
	if _, err := mongodb.FindByID[domain.ObjectGroupRevision](ctx, deps.Store, revisionID); err != nil {
		t.Fatalf("pinned revision must survive the failed delete: %v", err)
	}

	// Dropping the version releases the pin and the delete goes through.
	if _, err := datasetSvc.DeleteDatasetVersion(ctx, &models.Id{Id: version.GetId()}); err != nil {
		t.Fatalf("delete version: %v", err)
	}
	if _, err := groupSvc.DeleteObjectGroupRevision(ctx, &models.Id{Id: revisionID}); err != nil {
		t.Fatalf("delete unpinned revision: %v", err)
	}
	_, err = mongodb.FindByID[domain.ObjectGroupRevision](ctx, deps.Store, revisionID)
	if !storage.IsNotFound(err) {
		t.Errorf("expected revision to be gone, got %v", err)
	}
}

// ==================== Delete Cascade Tests ====================

func TestDeleteDatasetTwiceReturnsNotFound(t *testing.T) {
	deps, ctx := storeDeps(t)
	datasetID := createDataset(t, ctx, deps)

	s := NewDatasetServiceServer(deps)
	if _, err := s.DeleteDataset(ctx, &models.Id{Id: datasetID}); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	_, err := s.DeleteDataset(ctx, &models.Id{Id: datasetID})
	if got := status.Code(err); got != codes.NotFound {
		t.Errorf("expected NotFound on second delete, got %v", got)
	}
}

func TestDeleteObjectGroupUnknownReturnsNotFound(t *testing.T) {
	deps, ctx := storeDeps(t)

	s := NewObjectGroupServiceServer(deps)
	_, err := s.DeleteObjectGroup(ctx, &models.Id{Id: "no-such-group"})
	if got := status.Code(err); got != codes.NotFound {
		t.Errorf("expected NotFound, got %v", got)
	}
}

func TestDeleteDatasetCascadeReleasesPins(t *testing.T) {
	deps, ctx := storeDeps(t)
	datasetID := createDataset(t, ctx, deps)
	groupID, revisionID := createGroupWithRevision(t, ctx, deps, datasetID)

	datasetSvc := NewDatasetServiceServer(deps)
	if _, err := datasetSvc.ReleaseDatasetVersion(ctx, &services.ReleaseDatasetVersionRequest{
		DatasetId:   datasetID,
		RevisionIds: []string{revisionID},
	}); err != nil {
		t.Fatalf("release: %v", err)
	}

	// The cascade removes the version first, so the pinned revision does
	// not block the group delete.
	if _, err := datasetSvc.DeleteDataset(ctx, &models.Id{Id: datasetID}); err != nil {
		t.Fatalf("delete dataset: %v", err)
	}

	if _, err := mongodb.FindByID[domain.Dataset](ctx, deps.Store, datasetID); !storage.IsNotFound(err) {
		t.Errorf("expected dataset to be gone, got %v", err)
	}
	if _, err := mongodb.FindByID[domain.ObjectGroup](ctx, deps.Store, groupID); !storage.IsNotFound(err) {
		t.Errorf("expected object group to be gone, got %v", err)
	}
	if _, err := mongodb.FindByID[domain.ObjectGroupRevision](ctx, deps.Store, revisionID); !storage.IsNotFound(err) {
		t.Errorf("expected revision to be gone, got %v", err)
	}
	versions, err := mongodb.FindByParent[domain.DatasetVersion](ctx, deps.Store, datasetID)
	if err != nil {
		t.Fatalf("list versions: %v", err)
	}
	if len(versions) != 0 {
		t.Errorf("expected no versions left, got %d", len(versions))
	}
}
