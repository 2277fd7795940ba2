package handlers

import (
	"errors"
	"strconv"
	"time"

	"Fitlog-Backend/domain"
	"Fitlog-Backend/internal/api/presenters"
	"Fitlog-Backend/pkg/entry"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	EntryHandler interface {
		LogEntry(c *fiber.Ctx) error
		LogPhotoEntry(c *fiber.Ctx) error
		GetEntries(c *fiber.Ctx) error
		GetEntryDetails(c *fiber.Ctx) error
		DeleteEntry(c *fiber.Ctx) error
		GetDailySummary(c *fiber.Ctx) error
		UploadEntryMedia(c *fiber.Ctx) error
	}

	entryHandler struct {
		entryService entry.EntryService
		validator    *validator.Validate
	}
)

func NewEntryHandler(entryService entry.EntryService, validator *validator.Validate) EntryHandler {
	return &entryHandler{
		entryService: entryService,
		validator:    validator,
	}
}

func (h *entryHandler) LogEntry(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.LogEntryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogEntry, err)
	}

	res, err := h.entryService.LogEntry(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNoItemsExtracted) {
			return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedExtractItems, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogEntry, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessLogEntry)
}

func (h *entryHandler) LogPhotoEntry(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.LogPhotoEntryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	file, err := c.FormFile("photo")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Photo = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogEntry, err)
	}

	res, err := h.entryService.LogPhotoEntry(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNoItemsExtracted) {
			return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedExtractItems, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogEntry, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessLogEntry)
}

func (h *entryHandler) GetEntries(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	entries, count, err := h.entryService.GetEntries(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetEntries, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"entries": entries,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetEntries)
}

func (h *entryHandler) GetEntryDetails(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	entryID := c.Params("id")

	res, err := h.entryService.GetEntryByID(c.Context(), entryID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetEntry, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetEntry, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetEntry)
}

func (h *entryHandler) DeleteEntry(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	entryID := c.Params("id")

	if err := h.entryService.DeleteEntry(c.Context(), entryID, userID); err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteEntry, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteEntry, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteEntry)
}

func (h *entryHandler) GetDailySummary(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	date := c.Query("date", time.Now().Format("2006-01-02"))

	res, err := h.entryService.GetDailySummary(c.Context(), userID, date)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDailySummary, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessDailySummary)
}

func (h *entryHandler) UploadEntryMedia(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	entryID := c.Params("id")
	req := new(domain.UploadEntryMediaRequest)

	file, err := c.FormFile("media")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Media = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadMedia, err)
	}

	res, err := h.entryService.UploadEntryMedia(c.Context(), entryID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadMedia, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadMedia)
}
