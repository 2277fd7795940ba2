package handlers

import (
	"errors"

	"Fitlog-Backend/domain"
	"Fitlog-Backend/internal/api/presenters"
	"Fitlog-Backend/pkg/coach"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CoachHandler interface {
		AskCoach(c *fiber.Ctx) error
	}

	coachHandler struct {
		coachService coach.CoachService
		validator    *validator.Validate
	}
)

func NewCoachHandler(coachService coach.CoachService, validator *validator.Validate) CoachHandler {
	return &coachHandler{
		coachService: coachService,
		validator:    validator,
	}
}

func (h *coachHandler) AskCoach(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AskCoachRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAskCoach, err)
	}

	res, err := h.coachService.AskCoach(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrPremiumRequired) {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedAskCoach, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAskCoach, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAskCoach)
}
