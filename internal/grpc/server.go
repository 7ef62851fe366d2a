// Package grpc provides gRPC service implementations for the sciodb daemon.
package grpc

import (
	services "sciodb/api/gen/go/sciodb/v1/services"

	"google.golang.org/grpc"
)

// ServiceServers holds all the service server instances.
type ServiceServers struct {
	Project     *ProjectServiceServer
	Dataset     *DatasetServiceServer
	ObjectGroup *ObjectGroupServiceServer
	ObjectLoad  *ObjectLoadServiceServer
}

// NewServiceServers creates all service server instances sharing the given
// dependencies.
func NewServiceServers(deps Deps) *ServiceServers {
	return &ServiceServers{
		Project:     NewProjectServiceServer(deps),
		Dataset:     NewDatasetServiceServer(deps),
		ObjectGroup: NewObjectGroupServiceServer(deps),
		ObjectLoad:  NewObjectLoadServiceServer(deps),
	}
}

// Register registers all services with the given gRPC server.
func (ss *ServiceServers) Register(s *grpc.Server) {
	services.RegisterProjectServiceServer(s, ss.Project)
	services.RegisterDatasetServiceServer(s, ss.Dataset)
	services.RegisterObjectGroupServiceServer(s, ss.ObjectGroup)
	services.RegisterObjectLoadServiceServer(s, ss.ObjectLoad)
}
