package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	models "sciodb/api/gen/go/sciodb/v1/models"
)

// ObjectGroup is a logical bundle of objects within a dataset. The group
// itself is mutable; its contents are captured as immutable revisions.
type ObjectGroup struct {
	// ID is the unique identifier for the group.
	ID string `bson:"id" json:"id"`

	// Name is the human-readable name.
	Name string `bson:"name" json:"name"`

	// DatasetID is the owning dataset.
	DatasetID string `bson:"dataset_id" json:"dataset_id"`

	// Labels are searchable key/value pairs.
	Labels []Label `bson:"labels" json:"labels"`

	// Metadata holds opaque metadata blobs.
	Metadata []Metadata `bson:"metadata" json:"metadata"`

	// Status is the lifecycle state.
	Status Status `bson:"status" json:"status"`

	// HeadID is the id of the most recently added revision.
	HeadID string `bson:"head_id" json:"head_id"`

	// RevisionCounter is incremented atomically for every revision added.
	// The next revision gets number RevisionCounter before the increment,
	// so the current head revision is RevisionCounter-1.
	RevisionCounter int64 `bson:"revision_counter" json:"revision_counter"`
}

// CollectionName returns the MongoDB collection the entity is stored in.
func (ObjectGroup) CollectionName() string {
	return "ObjectGroup"
}

// ParentField returns the document field referencing the parent entity.
func (ObjectGroup) ParentField() string {
	return "dataset_id"
}

// CurrentRevision returns the revision number of the head revision, or -1
// when no revision has been added yet.
func (g *ObjectGroup) CurrentRevision() int64 {
	return g.RevisionCounter - 1
}

// CreateObjectGroupRequest carries the validated fields of a group create call.
type CreateObjectGroupRequest struct {
	Name      string
	DatasetID string
	Labels    []Label
	Metadata  []Metadata
}

// Validate validates the create request.
func (r *CreateObjectGroupRequest) Validate() error {
	if r.DatasetID == "" {
		return ErrInvalidID
	}
	return nil
}

// NewObjectGroup creates an object group from a create request. The group
// starts in Initializing state with no revisions.
func NewObjectGroup(req *CreateObjectGroupRequest) *ObjectGroup {
	return &ObjectGroup{
		ID:              uuid.New().String(),
		Name:            req.Name,
		DatasetID:       req.DatasetID,
		Labels:          req.Labels,
		Metadata:        req.Metadata,
		Status:          StatusInitializing,
		HeadID:          "",
		RevisionCounter: 0,
	}
}

// ToProto converts the object group to its wire representation.
func (g *ObjectGroup) ToProto() *models.ObjectGroup {
	return &models.ObjectGroup{
		Id:              g.ID,
		Name:            g.Name,
		DatasetId:       g.DatasetID,
		Labels:          LabelsToProto(g.Labels),
		Metadata:        MetadataToProto(g.Metadata),
		Status:          g.Status.ToProto(),
		HeadId:          g.HeadID,
		CurrentRevision: g.CurrentRevision(),
	}
}

// Object is a single stored file. Objects are embedded in the revision that
// created them; they are not a standalone collection.
type Object struct {
	// ID is the unique identifier for the object.
	ID string `bson:"id" json:"id"`

	// Filename is the original file name.
	Filename string `bson:"filename" json:"filename"`

	// Filetype is the declared content type.
	Filetype string `bson:"filetype" json:"filetype"`

	// ContentLen is the declared size in bytes.
	ContentLen int64 `bson:"content_len" json:"content_len"`

	// Location is where the payload lives in object storage.
	Location Location `bson:"location" json:"location"`

	// Created is when the object was registered.
	Created time.Time `bson:"created" json:"created"`

	// UploadID is the multipart upload id, set once a multipart upload
	// has been started for the object.
	UploadID string `bson:"upload_id" json:"upload_id"`

	// Metadata holds opaque metadata blobs.
	Metadata []Metadata `bson:"metadata" json:"metadata"`
}

// CreateObjectRequest carries the validated fields of an object create call.
type CreateObjectRequest struct {
	Filename   string
	Filetype   string
	ContentLen int64
	Labels     []Label
	Metadata   []Metadata
}

// NewObject creates an object within the given dataset and bucket. The
// object key encodes the dataset and object ids so payloads never collide.
func NewObject(req *CreateObjectRequest, datasetID, bucket string) *Object {
	id := uuid.New().String()
	return &Object{
		ID:         id,
		Filename:   req.Filename,
		Filetype:   req.Filetype,
		ContentLen: req.ContentLen,
		Location: Location{
			Bucket: bucket,
			Key:    ObjectKey(datasetID, id, req.Filename),
		},
		Created:  time.Now().UTC(),
		Metadata: req.Metadata,
	}
}

// ObjectKey builds the object storage key for an object.
func ObjectKey(datasetID, objectID, filename string) string {
	return fmt.Sprintf("%s/%s/%s", datasetID, objectID, filename)
}

// ToProto converts the object to its wire representation.
func (o *Object) ToProto() *models.Object {
	return &models.Object{
		Id:         o.ID,
		Filename:   o.Filename,
		Filetype:   o.Filetype,
		ContentLen: o.ContentLen,
		Created:    timestampProto(o.Created),
		UploadId:   o.UploadID,
		Metadata:   MetadataToProto(o.Metadata),
	}
}

// ObjectGroupRevision is an immutable snapshot of an object group's
// contents. Revisions are numbered per group starting at 0.
type ObjectGroupRevision struct {
	// ID is the unique identifier for the revision.
	ID string `bson:"id" json:"id"`

	// DatasetID is the owning dataset, denormalized from the group so
	// revisions can be queried per dataset directly.
	DatasetID string `bson:"dataset_id" json:"dataset_id"`

	// ObjectGroupID is the group this revision belongs to.
	ObjectGroupID string `bson:"object_group_id" json:"object_group_id"`

	// Created is when the revision was created.
	Created time.Time `bson:"created" json:"created"`

	// Labels are searchable key/value pairs.
	Labels []Label `bson:"labels" json:"labels"`

	// Metadata holds opaque metadata blobs.
	Metadata []Metadata `bson:"metadata" json:"metadata"`

	// Objects are the objects captured by this revision.
	Objects []Object `bson:"objects" json:"objects"`

	// Revision is the per-group revision number.
	Revision int64 `bson:"revision" json:"revision"`

	// DatasetVersions are the ids of dataset versions pinning this
	// revision. A revision cannot be deleted while non-empty.
	DatasetVersions []string `bson:"dataset_versions" json:"dataset_versions"`

	// Status is the lifecycle state.
	Status Status `bson:"status" json:"status"`
}

// CollectionName returns the MongoDB collection the entity is stored in.
func (ObjectGroupRevision) CollectionName() string {
	return "ObjectGroupRevision"
}

// ParentField returns the document field referencing the parent entity.
func (ObjectGroupRevision) ParentField() string {
	return "dataset_id"
}

// CreateRevisionRequest carries the validated fields of a revision create call.
type CreateRevisionRequest struct {
	Objects  []*CreateObjectRequest
	Labels   []Label
	Metadata []Metadata
}

// NewObjectGroupRevision creates a revision for the given group with the
// given revision number. Objects are created alongside, keyed under the
// group's dataset.
func NewObjectGroupRevision(req *CreateRevisionRequest, group *ObjectGroup, revision int64, bucket string) *ObjectGroupRevision {
	objects := make([]Object, 0, len(req.Objects))
	for _, o := range req.Objects {
		objects = append(objects, *NewObject(o, group.DatasetID, bucket))
	}
	return &ObjectGroupRevision{
		ID:              uuid.New().String(),
		DatasetID:       group.DatasetID,
		ObjectGroupID:   group.ID,
		Created:         time.Now().UTC(),
		Labels:          req.Labels,
		Metadata:        req.Metadata,
		Objects:         objects,
		Revision:        revision,
		DatasetVersions: []string{},
		Status:          StatusInitializing,
	}
}

// FindObject returns the embedded object with the given id, if present.
func (r *ObjectGroupRevision) FindObject(objectID string) (*Object, bool) {
	for i := range r.Objects {
		if r.Objects[i].ID == objectID {
			return &r.Objects[i], true
		}
	}
	return nil, false
}

// ToProto converts the revision to its wire representation.
func (r *ObjectGroupRevision) ToProto() *models.ObjectGroupRevision {
	objects := make([]*models.Object, 0, len(r.Objects))
	for i := range r.Objects {
		objects = append(objects, r.Objects[i].ToProto())
	}
	return &models.ObjectGroupRevision{
		Id:              r.ID,
		DatasetId:       r.DatasetID,
		ObjectGroupId:   r.ObjectGroupID,
		Created:         timestampProto(r.Created),
		Labels:          LabelsToProto(r.Labels),
		Metadata:        MetadataToProto(r.Metadata),
		Objects:         objects,
		Revision:        r.Revision,
		DatasetVersions: r.DatasetVersions,
		Status:          r.Status.ToProto(),
	}
}
