package http

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lakesidedc/club-server/internal/domain/common/errorz"
	"github.com/lakesidedc/club-server/internal/domain/entity"
	"github.com/lakesidedc/club-server/pkg/generator"
	"gorm.io/gorm"
)

const (
	sessionHeader = "X-Session-Token"
	sessionTTL    = 24 * time.Hour
)

// SessionStore maps opaque session tokens to user IDs.
type SessionStore interface {
	Set(ctx context.Context, token, userID string, ttl time.Duration) error
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(c *fiber.Ctx) error {
	if s.sessions == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "sessions unavailable",
		})
	}

	var request loginRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "malformed login request",
		})
	}

	user, err := s.users.Authenticate(c.Context(), request.Email, request.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid credentials",
		})
	}

	token, err := generator.Token(32)
	if err != nil {
		return err
	}
	if err = s.sessions.Set(c.Context(), token, user.ID, sessionTTL); err != nil {
		return err
	}
	s.logger.Infof("session opened for %s", user.Email)
	return c.JSON(fiber.Map{
		"token": token,
	})
}

func (s *Server) handleLogout(c *fiber.Ctx) error {
	token := c.Get(sessionHeader)
	if s.sessions == nil || token == "" {
		return deny(c, errorz.Unauthorized)
	}
	if err := s.sessions.Delete(c.Context(), token); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// requireAdmin resolves the session token on the request and returns the
// user behind it, failing with Unauthorized for missing or stale tokens
// and Forbidden for non-admin users.
func (s *Server) requireAdmin(c *fiber.Ctx) (*entity.User, error) {
	if s.sessions == nil {
		return nil, errorz.Unauthorized
	}
	token := c.Get(sessionHeader)
	if token == "" {
		return nil, errorz.Unauthorized
	}

	userID, err := s.sessions.Get(c.Context(), token)
	if err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, errorz.Unauthorized
	}

	user, err := s.users.Get(c.Context(), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.Unauthorized
		}
		return nil, err
	}
	if !user.IsAdmin {
		return nil, errorz.Forbidden
	}
	return user, nil
}

// deny translates auth errors into their HTTP responses.
func deny(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errorz.Unauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "unauthorized",
		})
	case errors.Is(err, errorz.Forbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "forbidden",
		})
	default:
		return err
	}
}
