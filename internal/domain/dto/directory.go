package dto

import "github.com/lakesidedc/club-server/internal/domain/entity"

type TagInfo struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	JoinPolicy string `json:"join_policy"`
	ViewPolicy string `json:"view_policy"`
}

func NewTagInfoFromEntity(tag entity.Tag) TagInfo {
	return TagInfo{
		ID:         tag.ID,
		Name:       tag.Name,
		JoinPolicy: string(tag.JoinPolicy),
		ViewPolicy: string(tag.ViewPolicy),
	}
}

type RoleInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
	ManagedTags []string `json:"managed_tags"`
}

func NewRoleInfoFromEntity(role entity.Role) RoleInfo {
	info := RoleInfo{
		ID:          role.ID,
		Name:        role.Name,
		Permissions: make([]string, 0, len(role.Permissions)),
		ManagedTags: make([]string, 0, len(role.ManagedTags)),
	}
	for _, permission := range role.Permissions {
		info.Permissions = append(info.Permissions, permission.Slug)
	}
	for _, tag := range role.ManagedTags {
		info.ManagedTags = append(info.ManagedTags, tag.Name)
	}
	return info
}
