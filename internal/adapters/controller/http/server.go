package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/lakesidedc/club-server/internal/domain/service"
	"github.com/lakesidedc/club-server/pkg/logger/types"
)

// Server exposes the API consumed by the frontend: the slide picker
// endpoints, the events listing, member profiles, the reference
// directories, plus session login and the admin write endpoints.
type Server struct {
	app    *fiber.App
	logger *types.Logger

	slides    *service.SlideService
	events    *service.EventService
	attendees *service.EventAttendeeService
	members   *service.MemberService
	directory *service.DirectoryService
	users     *service.UserService
	sessions  SessionStore
}

func New(
	logger *types.Logger,
	slides *service.SlideService,
	events *service.EventService,
	attendees *service.EventAttendeeService,
	members *service.MemberService,
	directory *service.DirectoryService,
	users *service.UserService,
	sessions SessionStore,
) *Server {
	server := &Server{
		logger:    logger,
		slides:    slides,
		events:    events,
		attendees: attendees,
		members:   members,
		directory: directory,
		users:     users,
		sessions:  sessions,
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Get("/api/slides/count", server.handleSlideCount)
	app.Get("/api/slides/random", server.handleSlideRandom)
	app.Get("/api/slides/:index", server.handleSlideAt)
	app.Get("/api/slides", server.handleSlideList)

	app.Post("/api/auth/login", server.handleLogin)
	app.Post("/api/auth/logout", server.handleLogout)

	app.Get("/api/events/calendar.ics", server.handleEventCalendar)
	app.Get("/api/events", server.handleEventList)
	app.Post("/api/events", server.handleEventCreate)
	app.Get("/api/events/:id/attendees", server.handleEventAttendees)

	app.Get("/api/members/:id/transactions", server.handleMemberTransactions)
	app.Post("/api/members/:id/transactions", server.handleMemberRecordTransaction)
	app.Get("/api/members/:id/swim-history", server.handleMemberSwimHistory)
	app.Post("/api/members/:id/swim-history", server.handleMemberRecordSwim)
	app.Get("/api/members/:id", server.handleMemberProfile)

	app.Get("/api/colleges", server.handleColleges)
	app.Get("/api/tags", server.handleTags)
	app.Get("/api/roles", server.handleRoles)
	app.Get("/api/permissions", server.handlePermissions)

	server.app = app
	return server
}

// Serve blocks listening on the configured address.
func (s *Server) Serve(host string, port int) error {
	return s.app.Listen(fmt.Sprintf("%s:%d", host, port))
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": message,
	})
}
