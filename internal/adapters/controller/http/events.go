package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lakesidedc/club-server/internal/domain/dto"
	"github.com/lakesidedc/club-server/internal/domain/entity"
	"github.com/lakesidedc/club-server/internal/domain/utils/calendar"
	"gorm.io/gorm"
)

type eventCreateRequest struct {
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Location       string     `json:"location"`
	StartTime      time.Time  `json:"start_time"`
	EndTime        time.Time  `json:"end_time"`
	MaxAttendees   int        `json:"max_attendees"`
	Cost           int        `json:"cost"`
	RefundCutoff   *time.Time `json:"upfront_refund_cutoff"`
	EnableWaitlist bool       `json:"enable_waitlist"`
}

// handleEventCreate adds an event to the calendar. Admin only.
func (s *Server) handleEventCreate(c *fiber.Ctx) error {
	if _, err := s.requireAdmin(c); err != nil {
		return deny(c, err)
	}

	var request eventCreateRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "malformed event",
		})
	}

	event, err := s.events.Create(c.Context(), &entity.Event{
		Title:               request.Title,
		Description:         request.Description,
		Location:            request.Location,
		StartTime:           request.StartTime,
		EndTime:             request.EndTime,
		MaxAttendees:        request.MaxAttendees,
		Cost:                request.Cost,
		UpfrontRefundCutoff: request.RefundCutoff,
		EnableWaitlist:      request.EnableWaitlist,
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewEventSummaryFromEntity(*event, 0))
}

// handleEventList returns upcoming events for the next four weeks with their
// live attendee counts.
func (s *Server) handleEventList(c *fiber.Ctx) error {
	events, err := s.events.GetUpcoming(c.Context(), time.Now().AddDate(0, 0, 28))
	if err != nil {
		return err
	}

	summaries := make([]dto.EventSummary, 0, len(events))
	for _, event := range events {
		attending, countErr := s.attendees.CountAttending(c.Context(), event.ID)
		if countErr != nil {
			return countErr
		}
		summaries = append(summaries, dto.NewEventSummaryFromEntity(event, attending))
	}
	return c.JSON(fiber.Map{
		"events": summaries,
	})
}

// handleEventCalendar serves the upcoming calendar as an iCal feed.
func (s *Server) handleEventCalendar(c *fiber.Ctx) error {
	events, err := s.events.GetUpcoming(c.Context(), time.Now().AddDate(0, 3, 0))
	if err != nil {
		return err
	}
	feed, err := calendar.ExportEventsToICS(events)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "text/calendar")
	return c.Send(feed)
}

func (s *Server) handleEventAttendees(c *fiber.Ctx) error {
	eventID := c.Params("id")
	if _, err := s.events.Get(c.Context(), eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "event not found")
		}
		return err
	}

	attendees, err := s.attendees.Attendees(c.Context(), eventID)
	if err != nil {
		return err
	}
	waiting, err := s.attendees.WaitingList(c.Context(), eventID)
	if err != nil {
		return err
	}

	attending := make([]string, 0, len(attendees))
	for _, a := range attendees {
		if a.IsAttending {
			attending = append(attending, a.UserID)
		}
	}
	waitingIDs := make([]string, 0, len(waiting))
	for _, w := range waiting {
		waitingIDs = append(waitingIDs, w.UserID)
	}

	return c.JSON(fiber.Map{
		"attending":    attending,
		"waiting_list": waitingIDs,
	})
}
