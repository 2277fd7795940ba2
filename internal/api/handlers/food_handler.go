package handlers

import (
	"errors"
	"strconv"

	"Fitlog-Backend/domain"
	"Fitlog-Backend/internal/api/presenters"
	"Fitlog-Backend/pkg/food"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		AddFoodRecord(c *fiber.Ctx) error
		UpdateFoodRecord(c *fiber.Ctx) error
		DeleteFoodRecord(c *fiber.Ctx) error
		GetFoodRecords(c *fiber.Ctx) error
		GetFoodRecordDetails(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService food.FoodService
		validator   *validator.Validate
	}
)

func NewFoodHandler(foodService food.FoodService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		foodService: foodService,
		validator:   validator,
	}
}

func (h *foodHandler) AddFoodRecord(c *fiber.Ctx) error {
	req := new(domain.AddFoodRecordRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodRecord, err)
	}

	res, err := h.foodService.AddFoodRecord(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodRecord, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFoodRecord)
}

func (h *foodHandler) UpdateFoodRecord(c *fiber.Ctx) error {
	recordID := c.Params("id")
	req := new(domain.UpdateFoodRecordRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFoodRecord, err)
	}

	if err := h.foodService.UpdateFoodRecord(c.Context(), recordID, *req); err != nil {
		if errors.Is(err, domain.ErrFoodRecordNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateFoodRecord, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFoodRecord, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateFoodRecord)
}

func (h *foodHandler) DeleteFoodRecord(c *fiber.Ctx) error {
	recordID := c.Params("id")

	if err := h.foodService.DeleteFoodRecord(c.Context(), recordID); err != nil {
		if errors.Is(err, domain.ErrFoodRecordNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteFoodRecord, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteFoodRecord, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFoodRecord)
}

func (h *foodHandler) GetFoodRecords(c *fiber.Ctx) error {
	search := c.Query("search", "")

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	records, count, err := h.foodService.GetFoodRecords(c.Context(), search, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoodRecords, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"records": records,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetFoodRecords)
}

func (h *foodHandler) GetFoodRecordDetails(c *fiber.Ctx) error {
	recordID := c.Params("id")

	res, err := h.foodService.GetFoodRecordByID(c.Context(), recordID)
	if err != nil {
		if errors.Is(err, domain.ErrFoodRecordNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetFoodRecords, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoodRecords, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFoodRecords)
}
