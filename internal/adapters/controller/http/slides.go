package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/lakesidedc/club-server/internal/domain/common/errorz"
)

func (s *Server) handleSlideCount(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"count": s.slides.Count(),
	})
}

func (s *Server) handleSlideList(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"slides": s.slides.List(),
	})
}

func (s *Server) handleSlideAt(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return notFound(c, "invalid slide index")
	}

	slide, err := s.slides.At(index)
	if err != nil {
		if errors.Is(err, errorz.NoSlides) || errors.Is(err, errorz.SlideOutOfRange) {
			return notFound(c, err.Error())
		}
		return err
	}
	return c.JSON(fiber.Map{
		"slide": slide,
	})
}

func (s *Server) handleSlideRandom(c *fiber.Ctx) error {
	slide, err := s.slides.Random()
	if err != nil {
		if errors.Is(err, errorz.NoSlides) {
			return notFound(c, err.Error())
		}
		return err
	}
	return c.JSON(fiber.Map{
		"slide": slide,
	})
}
