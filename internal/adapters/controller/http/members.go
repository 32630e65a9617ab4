package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lakesidedc/club-server/internal/domain/dto"
	"gorm.io/gorm"
)

func (s *Server) handleMemberProfile(c *fiber.Ctx) error {
	profile, err := s.members.Profile(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "member not found")
		}
		return err
	}
	return c.JSON(profile)
}

func (s *Server) handleMemberTransactions(c *fiber.Ctx) error {
	transactions, err := s.members.Transactions(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "member not found")
		}
		return err
	}

	entries := make([]dto.TransactionEntry, 0, len(transactions))
	for _, transaction := range transactions {
		entries = append(entries, dto.NewTransactionEntryFromEntity(transaction))
	}
	return c.JSON(fiber.Map{
		"transactions": entries,
	})
}

func (s *Server) handleMemberSwimHistory(c *fiber.Ctx) error {
	records, err := s.members.SwimHistory(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "member not found")
		}
		return err
	}

	entries := make([]dto.SwimHistoryEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, dto.NewSwimHistoryEntryFromEntity(record))
	}
	return c.JSON(fiber.Map{
		"swim_history": entries,
	})
}

type swimRecordRequest struct {
	Lengths           int `json:"lengths"`
	LengthsUnderwater int `json:"lengths_underwater"`
}

// handleMemberRecordSwim appends a swim-test record for a member,
// attributed to the admin making the call.
func (s *Server) handleMemberRecordSwim(c *fiber.Ctx) error {
	admin, err := s.requireAdmin(c)
	if err != nil {
		return deny(c, err)
	}

	var request swimRecordRequest
	if err = c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "malformed swim record",
		})
	}

	record, err := s.members.RecordSwim(c.Context(), c.Params("id"), admin.ID, request.Lengths, request.LengthsUnderwater)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "member not found")
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewSwimHistoryEntryFromEntity(*record))
}

type transactionRequest struct {
	Amount      int    `json:"amount"`
	Description string `json:"description"`
}

// handleMemberRecordTransaction appends a signed ledger entry for a
// member. Admin only.
func (s *Server) handleMemberRecordTransaction(c *fiber.Ctx) error {
	if _, err := s.requireAdmin(c); err != nil {
		return deny(c, err)
	}

	var request transactionRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "malformed transaction",
		})
	}

	transaction, err := s.members.RecordTransaction(c.Context(), c.Params("id"), request.Amount, request.Description)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "member not found")
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewTransactionEntryFromEntity(*transaction))
}
