// Package grpc provides gRPC service implementations for the sciodb daemon.
package grpc

import (
	"context"

	models "sciodb/api/gen/go/sciodb/v1/models"
	services "sciodb/api/gen/go/sciodb/v1/services"
	"sciodb/internal/domain"
	"sciodb/internal/storage/mongodb"
	"sciodb/internal/storage/s3"
)

// ObjectLoadServiceServer implements the ObjectLoadService gRPC service.
// Payload bytes never pass through the daemon; every RPC hands the client
// a presigned URL to up- or download against directly.
type ObjectLoadServiceServer struct {
	services.UnimplementedObjectLoadServiceServer
	deps Deps
}

// NewObjectLoadServiceServer creates a new ObjectLoadServiceServer.
func NewObjectLoadServiceServer(deps Deps) *ObjectLoadServiceServer {
	return &ObjectLoadServiceServer{deps: deps}
}

// CreateUploadLink returns a presigned single-shot upload URL for an object.
func (s *ObjectLoadServiceServer) CreateUploadLink(ctx context.Context, req *models.Id) (*services.CreateLinkResponse, error) {
	object, err := s.authorizedObject(ctx, req.GetId(), domain.RightWrite)
	if err != nil {
		return nil, MapDomainError(err)
	}

	url, err := s.deps.Objects.PresignPut(ctx, object.Location)
	if err != nil {
		return nil, MapDomainError(err)
	}
	return &services.CreateLinkResponse{
		Object:     object.ToProto(),
		UploadLink: url,
	}, nil
}

// CreateDownloadLink returns a presigned download URL for an object.
func (s *ObjectLoadServiceServer) CreateDownloadLink(ctx context.Context, req *models.Id) (*services.CreateLinkResponse, error) {
	object, err := s.authorizedObject(ctx, req.GetId(), domain.RightRead)
	if err != nil {
		return nil, MapDomainError(err)
	}

	url, err := s.deps.Objects.PresignGet(ctx, object.Location)
	if err != nil {
		return nil, MapDomainError(err)
	}
	return &services.CreateLinkResponse{
		Object:     object.ToProto(),
		UploadLink: url,
	}, nil
}

// StartMultipartUpload starts a multipart upload for an object and records
// the upload id on it.
func (s *ObjectLoadServiceServer) StartMultipartUpload(ctx context.Context, req *models.Id) (*models.Object, error) {
	object, err := s.authorizedObject(ctx, req.GetId(), domain.RightWrite)
	if err != nil {
		return nil, MapDomainError(err)
	}

	uploadID, err := s.deps.Objects.InitMultipartUpload(ctx, object.Location)
	if err != nil {
		return nil, MapDomainError(err)
	}

	if err := mongodb.SetObjectUploadID(ctx, s.deps.Store, object.ID, uploadID); err != nil {
		return nil, MapDomainError(err)
	}
	object.UploadID = uploadID
	return object.ToProto(), nil
}

// GetMultipartUploadLink returns a presigned URL for one part of a running
// multipart upload.
func (s *ObjectLoadServiceServer) GetMultipartUploadLink(ctx context.Context, req *services.GetMultipartUploadLinkRequest) (*services.CreateLinkResponse, error) {
	object, err := s.authorizedObject(ctx, req.GetObjectId(), domain.RightWrite)
	if err != nil {
		return nil, MapDomainError(err)
	}

	url, err := s.deps.Objects.PresignUploadPart(ctx, object.Location, object.UploadID, int32(req.GetUploadPart()))
	if err != nil {
		return nil, MapDomainError(err)
	}
	return &services.CreateLinkResponse{
		Object:     object.ToProto(),
		UploadLink: url,
	}, nil
}

// CompleteMultipartUpload assembles the uploaded parts into the final
// object.
func (s *ObjectLoadServiceServer) CompleteMultipartUpload(ctx context.Context, req *services.CompleteMultipartRequest) (*models.Empty, error) {
	object, err := s.authorizedObject(ctx, req.GetObjectId(), domain.RightWrite)
	if err != nil {
		return nil, MapDomainError(err)
	}

	parts := make([]s3.CompletedPart, 0, len(req.GetParts()))
	for _, p := range req.GetParts() {
		parts = append(parts, s3.CompletedPart{
			ETag:       p.GetEtag(),
			PartNumber: int32(p.GetPart()),
		})
	}

	if err := s.deps.Objects.CompleteMultipartUpload(ctx, object.Location, object.UploadID, parts); err != nil {
		return nil, MapDomainError(err)
	}
	return &models.Empty{}, nil
}

// authorizedObject authorizes the caller on the object and loads it.
func (s *ObjectLoadServiceServer) authorizedObject(ctx context.Context, objectID string, right domain.Right) (*domain.Object, error) {
	if err := s.deps.Auth.Authorize(ctx, domain.ResourceObject, right, objectID); err != nil {
		return nil, err
	}
	return mongodb.FindObject(ctx, s.deps.Store, objectID)
}
