package domain

import (
	"github.com/google/uuid"

	models "sciodb/api/gen/go/sciodb/v1/models"
)

// Project is the top-level ownership boundary. Every other entity resolves
// to exactly one project for authorization.
type Project struct {
	// ID is the unique identifier for the project.
	ID string `bson:"id" json:"id"`

	// Name is the human-readable name.
	Name string `bson:"name" json:"name"`

	// Description provides details about the project.
	Description string `bson:"description" json:"description"`

	// Users are the members of the project and their rights.
	Users []User `bson:"users" json:"users"`

	// Labels are searchable key/value pairs.
	Labels []Label `bson:"labels" json:"labels"`

	// Metadata holds opaque metadata blobs.
	Metadata []Metadata `bson:"metadata" json:"metadata"`

	// Status is the lifecycle state.
	Status Status `bson:"status" json:"status"`
}

// CollectionName returns the MongoDB collection the entity is stored in.
func (Project) CollectionName() string {
	return "project"
}

// ParentField returns the document field referencing the parent entity.
// Projects are the root of the hierarchy and have no parent.
func (Project) ParentField() string {
	return ""
}

// NewProject creates a project from a create request. The creating user
// becomes the first member with read and write rights.
func NewProject(req *CreateProjectRequest, userID string) *Project {
	return &Project{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		Users: []User{
			{UserID: userID, Rights: []Right{RightRead, RightWrite}},
		},
		Labels:   req.Labels,
		Metadata: req.Metadata,
		Status:   StatusAvailable,
	}
}

// CreateProjectRequest carries the validated fields of a project create call.
type CreateProjectRequest struct {
	Name        string
	Description string
	Labels      []Label
	Metadata    []Metadata
}

// Validate validates the create request.
func (r *CreateProjectRequest) Validate() error {
	if r.Name == "" {
		return ErrInvalidName
	}
	return nil
}

// HasUser checks whether the given user is a member of the project.
func (p *Project) HasUser(userID string) bool {
	for _, u := range p.Users {
		if u.UserID == userID {
			return true
		}
	}
	return false
}

// UserRights returns the rights the given user holds on the project.
func (p *Project) UserRights(userID string) []Right {
	for _, u := range p.Users {
		if u.UserID == userID {
			return u.Rights
		}
	}
	return nil
}

// ToProto converts the project to its wire representation.
func (p *Project) ToProto() *models.Project {
	users := make([]*models.User, 0, len(p.Users))
	for _, u := range p.Users {
		users = append(users, u.ToProto())
	}
	return &models.Project{
		Id:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Users:       users,
		Labels:      LabelsToProto(p.Labels),
		Metadata:    MetadataToProto(p.Metadata),
		Status:      p.Status.ToProto(),
	}
}
