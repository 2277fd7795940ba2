package handlers

import (
	"errors"
	"strconv"

	"Fitlog-Backend/domain"
	"Fitlog-Backend/internal/api/presenters"
	"Fitlog-Backend/pkg/measurement"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MeasurementHandler interface {
		AddMeasurement(c *fiber.Ctx) error
		GetMeasurements(c *fiber.Ctx) error
		DeleteMeasurement(c *fiber.Ctx) error
	}

	measurementHandler struct {
		measurementService measurement.MeasurementService
		validator          *validator.Validate
	}
)

func NewMeasurementHandler(measurementService measurement.MeasurementService, validator *validator.Validate) MeasurementHandler {
	return &measurementHandler{
		measurementService: measurementService,
		validator:          validator,
	}
}

func (h *measurementHandler) AddMeasurement(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddMeasurementRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddMeasurement, err)
	}

	res, err := h.measurementService.AddMeasurement(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddMeasurement, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddMeasurement)
}

func (h *measurementHandler) GetMeasurements(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "30"))
	if err != nil || limit < 1 {
		limit = 30
	}

	measurements, count, err := h.measurementService.GetMeasurements(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMeasurements, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"measurements": measurements,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetMeasurements)
}

func (h *measurementHandler) DeleteMeasurement(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	measurementID := c.Params("id")

	if err := h.measurementService.DeleteMeasurement(c.Context(), measurementID, userID); err != nil {
		if errors.Is(err, domain.ErrMeasurementNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteMeasurement, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteMeasurement, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMeasurement)
}
