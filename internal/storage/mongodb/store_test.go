package mongodb

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sciodb/internal/domain"
	"sciodb/internal/storage"
)

// testStore connects to the MongoDB instance named by SCIODB_TEST_MONGO_URI
// and returns a store backed by a throwaway database. Tests are skipped
// when the variable is unset.
func testStore(t *testing.T) (*Store, context.Context) {
	t.Helper()

	uri := os.Getenv("SCIODB_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("SCIODB_TEST_MONGO_URI not set, skipping MongoDB integration tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)

	dbName := fmt.Sprintf("sciodb_test_%s", uuid.New().String()[:8])
	store := NewStoreFromClient(client, dbName)

	t.Cleanup(func() {
		_ = store.Database().Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})

	return store, ctx
}

func TestInsertAndFindByID(t *testing.T) {
	store, ctx := testStore(t)

	p := domain.NewProject(&domain.CreateProjectRequest{Name: "genomics"}, "alice")
	inserted, err := Insert(ctx, store, p, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, inserted.ID)
	assert.Equal(t, "genomics", inserted.Name)
	assert.True(t, inserted.HasUser("alice"))

	found, err := FindByID[domain.Project](ctx, store, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, found.ID)
}

func TestFindOneNotFound(t *testing.T) {
	store, ctx := testStore(t)

	_, err := FindByID[domain.Project](ctx, store, "does-not-exist")
	assert.True(t, storage.IsNotFound(err))
}

func TestFindByParent(t *testing.T) {
	store, ctx := testStore(t)

	for i := 0; i < 3; i++ {
		d := domain.NewDataset(&domain.CreateDatasetRequest{
			Name:      fmt.Sprintf("ds-%d", i),
			ProjectID: "p1",
		})
		_, err := Insert(ctx, store, d, d.ID)
		require.NoError(t, err)
	}
	other := domain.NewDataset(&domain.CreateDatasetRequest{Name: "other", ProjectID: "p2"})
	_, err := Insert(ctx, store, other, other.ID)
	require.NoError(t, err)

	datasets, err := FindByParent[domain.Dataset](ctx, store, "p1")
	require.NoError(t, err)
	assert.Len(t, datasets, 3)
}

func TestFindByParentRejectsRootEntity(t *testing.T) {
	store, ctx := testStore(t)

	_, err := FindByParent[domain.Project](ctx, store, "anything")
	assert.Error(t, err)
}

func TestFindAndUpdateIncrementsCounter(t *testing.T) {
	store, ctx := testStore(t)

	g := domain.NewObjectGroup(&domain.CreateObjectGroupRequest{Name: "g", DatasetID: "d1"})
	_, err := Insert(ctx, store, g, g.ID)
	require.NoError(t, err)

	// Two atomic increments; each caller sees its own post-image.
	first, err := FindAndUpdate[domain.ObjectGroup](ctx, store,
		bson.M{"id": g.ID},
		bson.M{"$inc": bson.M{"revision_counter": 1}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.RevisionCounter)

	second, err := FindAndUpdate[domain.ObjectGroup](ctx, store,
		bson.M{"id": g.ID},
		bson.M{"$inc": bson.M{"revision_counter": 1}})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.RevisionCounter)
}

func TestSetStatus(t *testing.T) {
	store, ctx := testStore(t)

	d := domain.NewDataset(&domain.CreateDatasetRequest{Name: "ds", ProjectID: "p1"})
	_, err := Insert(ctx, store, d, d.ID)
	require.NoError(t, err)

	require.NoError(t, SetStatus[domain.Dataset](ctx, store, d.ID, domain.StatusDeleting))

	found, err := FindByID[domain.Dataset](ctx, store, d.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDeleting, found.Status)
}

func TestFindObjectPositionalProjection(t *testing.T) {
	store, ctx := testStore(t)

	g := domain.NewObjectGroup(&domain.CreateObjectGroupRequest{Name: "g", DatasetID: "d1"})
	rev := domain.NewObjectGroupRevision(&domain.CreateRevisionRequest{
		Objects: []*domain.CreateObjectRequest{
			{Filename: "a.bin", ContentLen: 1},
			{Filename: "b.bin", ContentLen: 2},
		},
	}, g, 0, "bucket")
	_, err := Insert(ctx, store, rev, rev.ID)
	require.NoError(t, err)

	// The lookup must return the matched object, not the first one.
	want := rev.Objects[1]
	obj, err := FindObject(ctx, store, want.ID)
	require.NoError(t, err)
	assert.Equal(t, want.ID, obj.ID)
	assert.Equal(t, "b.bin", obj.Filename)

	_, err = FindObject(ctx, store, "missing")
	assert.True(t, storage.IsNotFound(err))
}

func TestAddUserIsIdempotent(t *testing.T) {
	store, ctx := testStore(t)

	p := domain.NewProject(&domain.CreateProjectRequest{Name: "p"}, "alice")
	_, err := Insert(ctx, store, p, p.ID)
	require.NoError(t, err)

	require.NoError(t, AddUser(ctx, store, p.ID, "bob"))
	require.NoError(t, AddUser(ctx, store, p.ID, "bob"))

	found, err := FindByID[domain.Project](ctx, store, p.ID)
	require.NoError(t, err)
	assert.Len(t, found.Users, 2)
	assert.True(t, found.HasUser("bob"))
}

func TestSetObjectUploadID(t *testing.T) {
	store, ctx := testStore(t)

	g := domain.NewObjectGroup(&domain.CreateObjectGroupRequest{Name: "g", DatasetID: "d1"})
	rev := domain.NewObjectGroupRevision(&domain.CreateRevisionRequest{
		Objects: []*domain.CreateObjectRequest{{Filename: "big.dat"}},
	}, g, 0, "bucket")
	_, err := Insert(ctx, store, rev, rev.ID)
	require.NoError(t, err)

	objectID := rev.Objects[0].ID
	require.NoError(t, SetObjectUploadID(ctx, store, objectID, "upload-123"))

	obj, err := FindObject(ctx, store, objectID)
	require.NoError(t, err)
	assert.Equal(t, "upload-123", obj.UploadID)
}

func TestUpdateManyAndDelete(t *testing.T) {
	store, ctx := testStore(t)

	g := domain.NewObjectGroup(&domain.CreateObjectGroupRequest{Name: "g", DatasetID: "d1"})
	var ids []string
	for i := 0; i < 3; i++ {
		rev := domain.NewObjectGroupRevision(&domain.CreateRevisionRequest{}, g, int64(i), "bucket")
		_, err := Insert(ctx, store, rev, rev.ID)
		require.NoError(t, err)
		ids = append(ids, rev.ID)
	}

	err := UpdateMany[domain.ObjectGroupRevision](ctx, store,
		bson.M{"id": bson.M{"$in": ids}},
		bson.M{"$addToSet": bson.M{"dataset_versions": "v1"}})
	require.NoError(t, err)

	revs, err := Find[domain.ObjectGroupRevision](ctx, store, bson.M{"dataset_versions": "v1"})
	require.NoError(t, err)
	assert.Len(t, revs, 3)

	require.NoError(t, DeleteMany[domain.ObjectGroupRevision](ctx, store, bson.M{"object_group_id": g.ID}))
	revs, err = Find[domain.ObjectGroupRevision](ctx, store, bson.M{})
	require.NoError(t, err)
	assert.Empty(t, revs)
}
