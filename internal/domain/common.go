// Package domain defines the persisted entities of the artifact catalog:
// projects, datasets, object groups, their revisions, and the objects they
// contain. Entities are stored in MongoDB and converted to their wire
// representation on the way out.
package domain

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	models "sciodb/api/gen/go/sciodb/v1/models"
)

// Status represents the lifecycle state of an entity.
type Status string

const (
	StatusInitializing Status = "Initializing"
	StatusAvailable    Status = "Available"
	StatusUpdating     Status = "Updating"
	StatusArchived     Status = "Archived"
	StatusDeleting     Status = "Deleting"
)

// IsValid checks if the status is valid.
func (s Status) IsValid() bool {
	switch s {
	case StatusInitializing, StatusAvailable, StatusUpdating, StatusArchived, StatusDeleting:
		return true
	default:
		return false
	}
}

// ToProto converts the status to its wire representation.
func (s Status) ToProto() models.Status {
	switch s {
	case StatusInitializing:
		return models.Status_STATUS_INITIATING
	case StatusAvailable:
		return models.Status_STATUS_AVAILABLE
	case StatusUpdating:
		return models.Status_STATUS_UPDATING
	case StatusArchived:
		return models.Status_STATUS_ARCHIVED
	case StatusDeleting:
		return models.Status_STATUS_DELETING
	default:
		return models.Status_STATUS_INITIATING
	}
}

// StatusFromProto converts a wire status to its domain representation.
func StatusFromProto(s models.Status) Status {
	switch s {
	case models.Status_STATUS_INITIATING:
		return StatusInitializing
	case models.Status_STATUS_AVAILABLE:
		return StatusAvailable
	case models.Status_STATUS_UPDATING:
		return StatusUpdating
	case models.Status_STATUS_ARCHIVED:
		return StatusArchived
	case models.Status_STATUS_DELETING:
		return StatusDeleting
	default:
		return StatusInitializing
	}
}

// Right is a permission a user or API token holds on a project.
type Right string

const (
	RightRead  Right = "Read"
	RightWrite Right = "Write"
)

// IsValid checks if the right is valid.
func (r Right) IsValid() bool {
	return r == RightRead || r == RightWrite
}

// ToProto converts the right to its wire representation.
func (r Right) ToProto() models.Right {
	if r == RightWrite {
		return models.Right_RIGHT_WRITE
	}
	return models.Right_RIGHT_READ
}

// RightFromProto converts a wire right to its domain representation.
func RightFromProto(r models.Right) Right {
	if r == models.Right_RIGHT_WRITE {
		return RightWrite
	}
	return RightRead
}

// RightsToProto converts a slice of rights.
func RightsToProto(rights []Right) []models.Right {
	out := make([]models.Right, 0, len(rights))
	for _, r := range rights {
		out = append(out, r.ToProto())
	}
	return out
}

// RightsFromProto converts a slice of wire rights.
func RightsFromProto(rights []models.Right) []Right {
	out := make([]Right, 0, len(rights))
	for _, r := range rights {
		out = append(out, RightFromProto(r))
	}
	return out
}

// Label is a searchable key/value pair attached to an entity.
type Label struct {
	Key   string `bson:"key" json:"key"`
	Value string `bson:"value" json:"value"`
}

// ToProto converts the label to its wire representation.
func (l Label) ToProto() *models.Label {
	return &models.Label{Key: l.Key, Value: l.Value}
}

// LabelsToProto converts a slice of labels.
func LabelsToProto(labels []Label) []*models.Label {
	out := make([]*models.Label, 0, len(labels))
	for _, l := range labels {
		out = append(out, l.ToProto())
	}
	return out
}

// LabelsFromProto converts a slice of wire labels.
func LabelsFromProto(labels []*models.Label) []Label {
	out := make([]Label, 0, len(labels))
	for _, l := range labels {
		if l == nil {
			continue
		}
		out = append(out, Label{Key: l.GetKey(), Value: l.GetValue()})
	}
	return out
}

// Metadata is an opaque metadata blob attached to an entity.
type Metadata struct {
	Key      string  `bson:"key" json:"key"`
	Labels   []Label `bson:"labels" json:"labels"`
	Metadata []byte  `bson:"metadata" json:"metadata"`
}

// ToProto converts the metadata entry to its wire representation.
func (m Metadata) ToProto() *models.Metadata {
	return &models.Metadata{
		Key:      m.Key,
		Labels:   LabelsToProto(m.Labels),
		Metadata: m.Metadata,
	}
}

// MetadataToProto converts a slice of metadata entries.
func MetadataToProto(metadata []Metadata) []*models.Metadata {
	out := make([]*models.Metadata, 0, len(metadata))
	for _, m := range metadata {
		out = append(out, m.ToProto())
	}
	return out
}

// MetadataFromProto converts a slice of wire metadata entries.
func MetadataFromProto(metadata []*models.Metadata) []Metadata {
	out := make([]Metadata, 0, len(metadata))
	for _, m := range metadata {
		if m == nil {
			continue
		}
		out = append(out, Metadata{
			Key:      m.GetKey(),
			Labels:   LabelsFromProto(m.GetLabels()),
			Metadata: m.GetMetadata(),
		})
	}
	return out
}

// Version is a semantic version attached to a released dataset version.
type Version struct {
	Major    int32 `bson:"major" json:"major"`
	Minor    int32 `bson:"minor" json:"minor"`
	Patch    int32 `bson:"patch" json:"patch"`
	Revision int32 `bson:"revision" json:"revision"`
}

// ToProto converts the version to its wire representation.
func (v Version) ToProto() *models.Version {
	return &models.Version{
		Major:    v.Major,
		Minor:    v.Minor,
		Patch:    v.Patch,
		Revision: v.Revision,
	}
}

// VersionFromProto converts a wire version to its domain representation.
func VersionFromProto(v *models.Version) Version {
	if v == nil {
		return Version{}
	}
	return Version{
		Major:    v.GetMajor(),
		Minor:    v.GetMinor(),
		Patch:    v.GetPatch(),
		Revision: v.GetRevision(),
	}
}

// User is a project member together with the rights they hold.
type User struct {
	UserID string  `bson:"user_id" json:"user_id"`
	Rights []Right `bson:"rights" json:"rights"`
}

// ToProto converts the user to its wire representation.
func (u User) ToProto() *models.User {
	return &models.User{
		UserId: u.UserID,
		Rights: RightsToProto(u.Rights),
	}
}

// HasRight checks whether the user holds the given right.
func (u User) HasRight(right Right) bool {
	for _, r := range u.Rights {
		if r == right {
			return true
		}
	}
	return false
}

// IndexLocation is a byte range within a stored object.
type IndexLocation struct {
	StartByte int64 `bson:"start_byte" json:"start_byte"`
	EndByte   int64 `bson:"end_byte" json:"end_byte"`
}

// Location describes where an object's payload lives in object storage.
type Location struct {
	Bucket        string        `bson:"bucket" json:"bucket"`
	Key           string        `bson:"key" json:"key"`
	URL           string        `bson:"url" json:"url"`
	IndexLocation IndexLocation `bson:"index_location" json:"index_location"`
}

// ToProto converts the location to its wire representation.
func (l Location) ToProto() *models.Location {
	return &models.Location{
		Bucket: l.Bucket,
		Key:    l.Key,
		Url:    l.URL,
		IndexLocation: &models.IndexLocation{
			StartByte: l.IndexLocation.StartByte,
			EndByte:   l.IndexLocation.EndByte,
		},
	}
}

// timestampProto converts a time to its wire representation, mapping the
// zero time to nil.
func timestampProto(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}
