package domain

import (
	"time"

	"github.com/google/uuid"

	models "sciodb/api/gen/go/sciodb/v1/models"
)

// Dataset is a collection of object groups within a project.
type Dataset struct {
	// ID is the unique identifier for the dataset.
	ID string `bson:"id" json:"id"`

	// Name is the human-readable name.
	Name string `bson:"name" json:"name"`

	// Description provides details about the dataset.
	Description string `bson:"description" json:"description"`

	// Created is when the dataset was created.
	Created time.Time `bson:"created" json:"created"`

	// Labels are searchable key/value pairs.
	Labels []Label `bson:"labels" json:"labels"`

	// Metadata holds opaque metadata blobs.
	Metadata []Metadata `bson:"metadata" json:"metadata"`

	// ProjectID is the owning project.
	ProjectID string `bson:"project_id" json:"project_id"`

	// IsPublic marks the dataset readable without project membership.
	IsPublic bool `bson:"is_public" json:"is_public"`

	// Status is the lifecycle state.
	Status Status `bson:"status" json:"status"`
}

// CollectionName returns the MongoDB collection the entity is stored in.
func (Dataset) CollectionName() string {
	return "Dataset"
}

// ParentField returns the document field referencing the parent entity.
func (Dataset) ParentField() string {
	return "project_id"
}

// CreateDatasetRequest carries the validated fields of a dataset create call.
type CreateDatasetRequest struct {
	Name        string
	Description string
	ProjectID   string
	IsPublic    bool
	Labels      []Label
	Metadata    []Metadata
}

// Validate validates the create request.
func (r *CreateDatasetRequest) Validate() error {
	if r.Name == "" {
		return ErrInvalidName
	}
	if r.ProjectID == "" {
		return ErrInvalidID
	}
	return nil
}

// NewDataset creates a dataset from a create request.
func NewDataset(req *CreateDatasetRequest) *Dataset {
	return &Dataset{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		Created:     time.Now().UTC(),
		Labels:      req.Labels,
		Metadata:    req.Metadata,
		ProjectID:   req.ProjectID,
		IsPublic:    req.IsPublic,
		Status:      StatusAvailable,
	}
}

// ToProto converts the dataset to its wire representation.
func (d *Dataset) ToProto() *models.Dataset {
	return &models.Dataset{
		Id:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Created:     timestampProto(d.Created),
		Labels:      LabelsToProto(d.Labels),
		Metadata:    MetadataToProto(d.Metadata),
		ProjectId:   d.ProjectID,
		IsPublic:    d.IsPublic,
		Status:      d.Status.ToProto(),
	}
}

// DatasetVersion is an immutable, named set of object group revisions
// released from a dataset.
type DatasetVersion struct {
	// ID is the unique identifier for the version.
	ID string `bson:"id" json:"id"`

	// DatasetID is the dataset the version was released from.
	DatasetID string `bson:"dataset_id" json:"dataset_id"`

	// Description provides details about the release.
	Description string `bson:"description" json:"description"`

	// Created is when the version was released.
	Created time.Time `bson:"created" json:"created"`

	// Version is the semantic version of the release.
	Version Version `bson:"version" json:"version"`

	// Labels are searchable key/value pairs.
	Labels []Label `bson:"labels" json:"labels"`

	// Metadata holds opaque metadata blobs.
	Metadata []Metadata `bson:"metadata" json:"metadata"`

	// ObjectGroupIDs are the revision ids pinned by this release.
	ObjectGroupIDs []string `bson:"object_group_ids" json:"object_group_ids"`

	// ObjectCount is the number of revisions pinned by this release.
	ObjectCount int64 `bson:"object_count" json:"object_count"`

	// Status is the lifecycle state.
	Status Status `bson:"status" json:"status"`
}

// CollectionName returns the MongoDB collection the entity is stored in.
func (DatasetVersion) CollectionName() string {
	return "DatasetVersion"
}

// ParentField returns the document field referencing the parent entity.
func (DatasetVersion) ParentField() string {
	return "dataset_id"
}

// ReleaseDatasetVersionRequest carries the validated fields of a release call.
type ReleaseDatasetVersionRequest struct {
	DatasetID   string
	Description string
	Version     Version
	Labels      []Label
	Metadata    []Metadata
	RevisionIDs []string
}

// Validate validates the release request.
func (r *ReleaseDatasetVersionRequest) Validate() error {
	if r.DatasetID == "" {
		return ErrInvalidID
	}
	return nil
}

// NewDatasetVersion creates a dataset version from a release request.
func NewDatasetVersion(req *ReleaseDatasetVersionRequest) *DatasetVersion {
	return &DatasetVersion{
		ID:             uuid.New().String(),
		DatasetID:      req.DatasetID,
		Description:    req.Description,
		Created:        time.Now().UTC(),
		Version:        req.Version,
		Labels:         req.Labels,
		Metadata:       req.Metadata,
		ObjectGroupIDs: req.RevisionIDs,
		ObjectCount:    int64(len(req.RevisionIDs)),
		Status:         StatusAvailable,
	}
}

// ToProto converts the dataset version to its wire representation.
func (v *DatasetVersion) ToProto() *models.DatasetVersion {
	return &models.DatasetVersion{
		Id:             v.ID,
		DatasetId:      v.DatasetID,
		Description:    v.Description,
		Created:        timestampProto(v.Created),
		Version:        v.Version.ToProto(),
		Labels:         LabelsToProto(v.Labels),
		Metadata:       MetadataToProto(v.Metadata),
		ObjectGroupIds: v.ObjectGroupIDs,
		ObjectCount:    v.ObjectCount,
		Status:         v.Status.ToProto(),
	}
}
