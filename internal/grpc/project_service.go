// Package grpc provides gRPC service implementations for the sciodb daemon.
package grpc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	models "sciodb/api/gen/go/sciodb/v1/models"
	services "sciodb/api/gen/go/sciodb/v1/services"
	"sciodb/internal/domain"
	"sciodb/internal/storage/mongodb"
)

// ProjectServiceServer implements the ProjectService gRPC service.
type ProjectServiceServer struct {
	services.UnimplementedProjectServiceServer
	deps Deps
}

// NewProjectServiceServer creates a new ProjectServiceServer.
func NewProjectServiceServer(deps Deps) *ProjectServiceServer {
	return &ProjectServiceServer{deps: deps}
}

// CreateProject creates a new project. The calling user becomes the first
// member with read and write rights.
func (s *ProjectServiceServer) CreateProject(ctx context.Context, req *services.CreateProjectRequest) (*models.Project, error) {
	userID, err := s.deps.Auth.UserID(ctx)
	if err != nil {
		return nil, MapDomainError(err)
	}

	create := &domain.CreateProjectRequest{
		Name:        req.GetName(),
		Description: req.GetDescription(),
		Labels:      domain.LabelsFromProto(req.GetLabels()),
		Metadata:    domain.MetadataFromProto(req.GetMetadata()),
	}
	if err := create.Validate(); err != nil {
		return nil, MapDomainError(err)
	}

	project := domain.NewProject(create, userID)
	stored, err := mongodb.Insert(ctx, s.deps.Store, project, project.ID)
	if err != nil {
		return nil, MapDomainError(err)
	}
	return stored.ToProto(), nil
}

// GetProject returns a single project.
func (s *ProjectServiceServer) GetProject(ctx context.Context, req *models.Id) (*models.Project, error) {
	if err := s.deps.Auth.Authorize(ctx, domain.ResourceProject, domain.RightRead, req.GetId()); err != nil {
		return nil, MapDomainError(err)
	}

	project, err := mongodb.FindByID[domain.Project](ctx, s.deps.Store, req.GetId())
	if err != nil {
		return nil, MapDomainError(err)
	}
	return project.ToProto(), nil
}

// GetUserProjects returns all projects the calling user is a member of.
func (s *ProjectServiceServer) GetUserProjects(ctx context.Context, _ *models.Empty) (*services.ProjectList, error) {
	userID, err := s.deps.Auth.UserID(ctx)
	if err != nil {
		return nil, MapDomainError(err)
	}

	projects, err := mongodb.Find[domain.Project](ctx, s.deps.Store, bson.M{"users.user_id": userID})
	if err != nil {
		return nil, MapDomainError(err)
	}

	list := make([]*models.Project, 0, len(projects))
	for i := range projects {
		list = append(list, projects[i].ToProto())
	}
	return &services.ProjectList{Projects: list}, nil
}

// GetProjectDatasets returns all datasets of a project.
func (s *ProjectServiceServer) GetProjectDatasets(ctx context.Context, req *models.Id) (*services.DatasetList, error) {
	if err := s.deps.Auth.Authorize(ctx, domain.ResourceProject, domain.RightRead, req.GetId()); err != nil {
		return nil, MapDomainError(err)
	}

	datasets, err := mongodb.FindByParent[domain.Dataset](ctx, s.deps.Store, req.GetId())
	if err != nil {
		return nil, MapDomainError(err)
	}

	list := make([]*models.Dataset, 0, len(datasets))
	for i := range datasets {
		list = append(list, datasets[i].ToProto())
	}
	return &services.DatasetList{Dataset: list}, nil
}

// AddUserToProject adds a user as a project member with read and write
// rights. Adding an existing member is a no-op.
func (s *ProjectServiceServer) AddUserToProject(ctx context.Context, req *services.AddUserToProjectRequest) (*models.Project, error) {
	if req.GetUserId() == "" {
		return nil, NewValidationError("user id is required", map[string]string{
			"user_id": "must not be empty",
		})
	}
	if err := s.deps.Auth.Authorize(ctx, domain.ResourceProject, domain.RightWrite, req.GetProjectId()); err != nil {
		return nil, MapDomainError(err)
	}

	if err := mongodb.AddUser(ctx, s.deps.Store, req.GetProjectId(), req.GetUserId()); err != nil {
		return nil, MapDomainError(err)
	}

	project, err := mongodb.FindByID[domain.Project](ctx, s.deps.Store, req.GetProjectId())
	if err != nil {
		return nil, MapDomainError(err)
	}
	return project.ToProto(), nil
}

// DeleteProject deletes a project and everything below it. The project is
// marked Deleting first so readers see the pending removal, then datasets,
// versions, API tokens and finally the project itself are removed.
func (s *ProjectServiceServer) DeleteProject(ctx context.Context, req *models.Id) (*models.Empty, error) {
	if err := s.deps.Auth.Authorize(ctx, domain.ResourceProject, domain.RightWrite, req.GetId()); err != nil {
		return nil, MapDomainError(err)
	}

	if err := mongodb.SetStatus[domain.Project](ctx, s.deps.Store, req.GetId(), domain.StatusDeleting); err != nil {
		return nil, MapDomainError(err)
	}

	datasets, err := mongodb.FindByParent[domain.Dataset](ctx, s.deps.Store, req.GetId())
	if err != nil {
		return nil, MapDomainError(err)
	}
	for i := range datasets {
		if err := deleteDatasetCascade(ctx, s.deps, datasets[i].ID); err != nil {
			return nil, MapDomainError(err)
		}
	}

	if err := mongodb.DeleteMany[domain.APIToken](ctx, s.deps.Store, bson.M{"project_id": req.GetId()}); err != nil {
		return nil, MapDomainError(err)
	}
	if err := mongodb.DeleteOne[domain.Project](ctx, s.deps.Store, bson.M{"id": req.GetId()}); err != nil {
		return nil, MapDomainError(err)
	}
	return &models.Empty{}, nil
}

// CreateApiToken mints an API token for the calling user scoped to the
// given project.
func (s *ProjectServiceServer) CreateApiToken(ctx context.Context, req *models.Id) (*models.ApiToken, error) {
	if err := s.deps.Auth.Authorize(ctx, domain.ResourceProject, domain.RightWrite, req.GetId()); err != nil {
		return nil, MapDomainError(err)
	}
	userID, err := s.deps.Auth.UserID(ctx)
	if err != nil {
		return nil, MapDomainError(err)
	}

	token, err := domain.NewAPIToken(userID, req.GetId())
	if err != nil {
		return nil, MapDomainError(err)
	}
	stored, err := mongodb.Insert(ctx, s.deps.Store, token, token.ID)
	if err != nil {
		return nil, MapDomainError(err)
	}
	return stored.ToProto(), nil
}

// GetApiToken returns all API tokens of the calling user.
func (s *ProjectServiceServer) GetApiToken(ctx context.Context, _ *models.Empty) (*services.ApiTokenList, error) {
	userID, err := s.deps.Auth.UserID(ctx)
	if err != nil {
		return nil, MapDomainError(err)
	}

	tokens, err := mongodb.Find[domain.APIToken](ctx, s.deps.Store, bson.M{"user_id": userID})
	if err != nil {
		return nil, MapDomainError(err)
	}

	list := make([]*models.ApiToken, 0, len(tokens))
	for i := range tokens {
		list = append(list, tokens[i].ToProto())
	}
	return &services.ApiTokenList{Token: list}, nil
}

// DeleteApiToken revokes one of the calling user's API tokens.
func (s *ProjectServiceServer) DeleteApiToken(ctx context.Context, req *models.Id) (*models.Empty, error) {
	userID, err := s.deps.Auth.UserID(ctx)
	if err != nil {
		return nil, MapDomainError(err)
	}

	token, err := mongodb.FindByID[domain.APIToken](ctx, s.deps.Store, req.GetId())
	if err != nil {
		return nil, MapDomainError(err)
	}
	if token.UserID != userID {
		return nil, MapDomainError(domain.ErrPermissionDenied)
	}

	if err := mongodb.DeleteOne[domain.APIToken](ctx, s.deps.Store, bson.M{"id": req.GetId()}); err != nil {
		return nil, MapDomainError(err)
	}
	return &models.Empty{}, nil
}
