package service

import (
	"context"

	"github.com/lakesidedc/club-server/internal/domain/entity"
)

type directoryCollegeStorage interface {
	GetAll(ctx context.Context) ([]entity.College, error)
}

type directoryTagStorage interface {
	GetAll(ctx context.Context) ([]entity.Tag, error)
}

type directoryRoleStorage interface {
	GetAll(ctx context.Context) ([]entity.Role, error)
}

type directoryPermissionStorage interface {
	GetAll(ctx context.Context) ([]entity.Permission, error)
}

// DirectoryService serves the reference lists the frontend needs to render
// forms: colleges, tags, roles and the permission catalog.
type DirectoryService struct {
	collegeStorage    directoryCollegeStorage
	tagStorage        directoryTagStorage
	roleStorage       directoryRoleStorage
	permissionStorage directoryPermissionStorage
}

func NewDirectoryService(
	collegeStorage directoryCollegeStorage,
	tagStorage directoryTagStorage,
	roleStorage directoryRoleStorage,
	permissionStorage directoryPermissionStorage,
) *DirectoryService {
	return &DirectoryService{
		collegeStorage:    collegeStorage,
		tagStorage:        tagStorage,
		roleStorage:       roleStorage,
		permissionStorage: permissionStorage,
	}
}

func (s *DirectoryService) Colleges(ctx context.Context) ([]entity.College, error) {
	return s.collegeStorage.GetAll(ctx)
}

func (s *DirectoryService) Tags(ctx context.Context) ([]entity.Tag, error) {
	return s.tagStorage.GetAll(ctx)
}

func (s *DirectoryService) Roles(ctx context.Context) ([]entity.Role, error) {
	return s.roleStorage.GetAll(ctx)
}

func (s *DirectoryService) Permissions(ctx context.Context) ([]entity.Permission, error) {
	return s.permissionStorage.GetAll(ctx)
}
