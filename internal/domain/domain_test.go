package domain

import (
	"strings"
	"testing"

	models "sciodb/api/gen/go/sciodb/v1/models"
)

// ==================== Status Tests ====================

func TestStatusRoundTrip(t *testing.T) {
	statuses := []Status{
		StatusInitializing, StatusAvailable, StatusUpdating,
		StatusArchived, StatusDeleting,
	}
	for _, s := range statuses {
		if !s.IsValid() {
			t.Errorf("status %q should be valid", s)
		}
		if got := StatusFromProto(s.ToProto()); got != s {
			t.Errorf("round trip of %q gave %q", s, got)
		}
	}
	if Status("bogus").IsValid() {
		t.Error("unknown status should be invalid")
	}
}

func TestStatusProtoMapping(t *testing.T) {
	if StatusInitializing.ToProto() != models.Status_STATUS_INITIATING {
		t.Error("Initializing should map to STATUS_INITIATING")
	}
	if StatusDeleting.ToProto() != models.Status_STATUS_DELETING {
		t.Error("Deleting should map to STATUS_DELETING")
	}
}

func TestRightRoundTrip(t *testing.T) {
	for _, r := range []Right{RightRead, RightWrite} {
		if !r.IsValid() {
			t.Errorf("right %q should be valid", r)
		}
		if got := RightFromProto(r.ToProto()); got != r {
			t.Errorf("round trip of %q gave %q", r, got)
		}
	}
}

// ==================== Project Tests ====================

func TestNewProject(t *testing.T) {
	req := &CreateProjectRequest{Name: "proteomics", Description: "mass spec runs"}
	if err := req.Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	p := NewProject(req, "alice")
	if p.ID == "" {
		t.Error("expected generated id")
	}
	if p.Status != StatusAvailable {
		t.Errorf("expected Available status, got %q", p.Status)
	}
	if !p.HasUser("alice") {
		t.Error("creator should be a member")
	}
	rights := p.UserRights("alice")
	if len(rights) != 2 {
		t.Fatalf("creator should have read and write, got %v", rights)
	}
	if p.HasUser("bob") {
		t.Error("bob should not be a member")
	}
	if p.UserRights("bob") != nil {
		t.Error("non-member should have no rights")
	}
}

func TestCreateProjectRequestValidate(t *testing.T) {
	req := &CreateProjectRequest{}
	if err := req.Validate(); err != ErrInvalidName {
		t.Errorf("expected ErrInvalidName, got %v", err)
	}
}

// ==================== Dataset Tests ====================

func TestNewDataset(t *testing.T) {
	req := &CreateDatasetRequest{Name: "runs-2026", ProjectID: "p1", IsPublic: true}
	if err := req.Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	d := NewDataset(req)
	if d.ID == "" {
		t.Error("expected generated id")
	}
	if d.ProjectID != "p1" {
		t.Errorf("expected project id 'p1', got %q", d.ProjectID)
	}
	if !d.IsPublic {
		t.Error("expected public dataset")
	}
	if d.Created.IsZero() {
		t.Error("expected creation timestamp")
	}

	pb := d.ToProto()
	if pb.GetId() != d.ID || pb.GetProjectId() != "p1" {
		t.Error("proto conversion lost fields")
	}
	if pb.GetCreated() == nil {
		t.Error("proto conversion should carry the creation time")
	}
}

func TestCreateDatasetRequestValidate(t *testing.T) {
	if err := (&CreateDatasetRequest{ProjectID: "p1"}).Validate(); err != ErrInvalidName {
		t.Errorf("expected ErrInvalidName, got %v", err)
	}
	if err := (&CreateDatasetRequest{Name: "x"}).Validate(); err != ErrInvalidID {
		t.Errorf("expected ErrInvalidID, got %v", err)
	}
}

// ==================== Object Group Tests ====================

func TestNewObjectGroup(t *testing.T) {
	g := NewObjectGroup(&CreateObjectGroupRequest{Name: "samples", DatasetID: "d1"})
	if g.Status != StatusInitializing {
		t.Errorf("new group should be Initializing, got %q", g.Status)
	}
	if g.RevisionCounter != 0 {
		t.Errorf("new group should have counter 0, got %d", g.RevisionCounter)
	}
	if g.CurrentRevision() != -1 {
		t.Errorf("group without revisions should report -1, got %d", g.CurrentRevision())
	}

	g.RevisionCounter = 3
	if g.CurrentRevision() != 2 {
		t.Errorf("expected current revision 2, got %d", g.CurrentRevision())
	}
	if g.ToProto().GetCurrentRevision() != 2 {
		t.Error("proto conversion should expose the head revision number")
	}
}

func TestNewObjectGroupRevision(t *testing.T) {
	g := NewObjectGroup(&CreateObjectGroupRequest{Name: "samples", DatasetID: "d1"})
	req := &CreateRevisionRequest{
		Objects: []*CreateObjectRequest{
			{Filename: "run.raw", Filetype: "raw", ContentLen: 1024},
			{Filename: "meta.json", Filetype: "json", ContentLen: 64},
		},
	}

	rev := NewObjectGroupRevision(req, g, 0, "test-bucket")
	if rev.Revision != 0 {
		t.Errorf("expected revision 0, got %d", rev.Revision)
	}
	if rev.Status != StatusInitializing {
		t.Errorf("new revision should be Initializing, got %q", rev.Status)
	}
	if rev.DatasetID != "d1" {
		t.Error("revision should carry the dataset id of the group")
	}
	if rev.ObjectGroupID != g.ID {
		t.Error("revision should reference its group")
	}
	if len(rev.Objects) != 2 {
		t.Fatalf("expected 2 objects, got %d", len(rev.Objects))
	}
	if rev.DatasetVersions == nil || len(rev.DatasetVersions) != 0 {
		t.Error("new revision should have an empty dataset_versions list")
	}

	obj := rev.Objects[0]
	if obj.Location.Bucket != "test-bucket" {
		t.Errorf("expected bucket 'test-bucket', got %q", obj.Location.Bucket)
	}
	wantKey := "d1/" + obj.ID + "/run.raw"
	if obj.Location.Key != wantKey {
		t.Errorf("expected key %q, got %q", wantKey, obj.Location.Key)
	}
}

func TestRevisionFindObject(t *testing.T) {
	g := NewObjectGroup(&CreateObjectGroupRequest{DatasetID: "d1"})
	rev := NewObjectGroupRevision(&CreateRevisionRequest{
		Objects: []*CreateObjectRequest{{Filename: "a.bin"}},
	}, g, 0, "b")

	id := rev.Objects[0].ID
	if obj, ok := rev.FindObject(id); !ok || obj.Filename != "a.bin" {
		t.Error("expected to find embedded object by id")
	}
	if _, ok := rev.FindObject("missing"); ok {
		t.Error("expected miss for unknown object id")
	}
}

func TestObjectKey(t *testing.T) {
	if got := ObjectKey("d1", "o1", "f.txt"); got != "d1/o1/f.txt" {
		t.Errorf("unexpected object key %q", got)
	}
}

// ==================== Dataset Version Tests ====================

func TestNewDatasetVersion(t *testing.T) {
	req := &ReleaseDatasetVersionRequest{
		DatasetID:   "d1",
		Version:     Version{Major: 1, Minor: 2, Patch: 3},
		RevisionIDs: []string{"r1", "r2", "r3"},
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	v := NewDatasetVersion(req)
	if v.ObjectCount != 3 {
		t.Errorf("expected object count 3, got %d", v.ObjectCount)
	}
	if v.Status != StatusAvailable {
		t.Errorf("expected Available status, got %q", v.Status)
	}

	pb := v.ToProto()
	if pb.GetVersion().GetMajor() != 1 || pb.GetVersion().GetPatch() != 3 {
		t.Error("proto conversion lost version fields")
	}
	if len(pb.GetObjectGroupIds()) != 3 {
		t.Error("proto conversion lost revision ids")
	}
}

// ==================== API Token Tests ====================

func TestNewAPIToken(t *testing.T) {
	tok, err := NewAPIToken("alice", "p1")
	if err != nil {
		t.Fatalf("NewAPIToken failed: %v", err)
	}
	if len(tok.Token) != tokenLength {
		t.Errorf("expected %d character secret, got %d", tokenLength, len(tok.Token))
	}
	for _, c := range tok.Token {
		if !strings.ContainsRune(tokenCharset, c) {
			t.Errorf("secret contains character %q outside the charset", c)
		}
	}
	if !tok.HasRight(RightRead) || !tok.HasRight(RightWrite) {
		t.Error("new token should hold read and write")
	}
	if tok.ProjectID != "p1" || tok.UserID != "alice" {
		t.Error("token should carry its project and user")
	}
}

func TestAPITokenSecretsDiffer(t *testing.T) {
	a, err := NewAPIToken("u", "p")
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewAPIToken("u", "p")
	if err != nil {
		t.Fatal(err)
	}
	if a.Token == b.Token {
		t.Error("two minted tokens should not share a secret")
	}
}

// ==================== Collection Descriptor Tests ====================

func TestCollectionNames(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{(Project{}).CollectionName(), "project"},
		{(Dataset{}).CollectionName(), "Dataset"},
		{(ObjectGroup{}).CollectionName(), "ObjectGroup"},
		{(ObjectGroupRevision{}).CollectionName(), "ObjectGroupRevision"},
		{(DatasetVersion{}).CollectionName(), "DatasetVersion"},
		{(APIToken{}).CollectionName(), "APIToken"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("collection name %q, want %q", tt.got, tt.want)
		}
	}
}

func TestParentFields(t *testing.T) {
	if (Project{}).ParentField() != "" {
		t.Error("project has no parent")
	}
	if (Dataset{}).ParentField() != "project_id" {
		t.Error("dataset parent field should be project_id")
	}
	if (ObjectGroup{}).ParentField() != "dataset_id" {
		t.Error("object group parent field should be dataset_id")
	}
	if (ObjectGroupRevision{}).ParentField() != "dataset_id" {
		t.Error("revision parent field should be dataset_id")
	}
	if (DatasetVersion{}).ParentField() != "dataset_id" {
		t.Error("dataset version parent field should be dataset_id")
	}
	if (APIToken{}).ParentField() != "project_id" {
		t.Error("api token parent field should be project_id")
	}
}
