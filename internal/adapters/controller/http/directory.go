package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lakesidedc/club-server/internal/domain/dto"
)

func (s *Server) handleColleges(c *fiber.Ctx) error {
	colleges, err := s.directory.Colleges(c.Context())
	if err != nil {
		return err
	}
	names := make([]fiber.Map, 0, len(colleges))
	for _, college := range colleges {
		names = append(names, fiber.Map{"id": college.ID, "name": college.Name})
	}
	return c.JSON(fiber.Map{
		"colleges": names,
	})
}

func (s *Server) handleTags(c *fiber.Ctx) error {
	tags, err := s.directory.Tags(c.Context())
	if err != nil {
		return err
	}
	infos := make([]dto.TagInfo, 0, len(tags))
	for _, tag := range tags {
		infos = append(infos, dto.NewTagInfoFromEntity(tag))
	}
	return c.JSON(fiber.Map{
		"tags": infos,
	})
}

func (s *Server) handleRoles(c *fiber.Ctx) error {
	roles, err := s.directory.Roles(c.Context())
	if err != nil {
		return err
	}
	infos := make([]dto.RoleInfo, 0, len(roles))
	for _, role := range roles {
		infos = append(infos, dto.NewRoleInfoFromEntity(role))
	}
	return c.JSON(fiber.Map{
		"roles": infos,
	})
}

func (s *Server) handlePermissions(c *fiber.Ctx) error {
	permissions, err := s.directory.Permissions(c.Context())
	if err != nil {
		return err
	}
	slugs := make([]fiber.Map, 0, len(permissions))
	for _, permission := range permissions {
		slugs = append(slugs, fiber.Map{
			"slug":        permission.Slug,
			"description": permission.Description,
		})
	}
	return c.JSON(fiber.Map{
		"permissions": slugs,
	})
}
