package measurement

import (
	"context"
	"errors"
	"time"

	"Fitlog-Backend/domain"
	"Fitlog-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MeasurementService interface {
		AddMeasurement(ctx context.Context, req domain.AddMeasurementRequest, userID string) (domain.MeasurementResponse, error)
		GetMeasurements(ctx context.Context, userID string, page, limit int) ([]domain.MeasurementResponse, int64, error)
		DeleteMeasurement(ctx context.Context, id string, userID string) error
	}

	measurementService struct {
		measurementRepository MeasurementRepository
	}
)

func NewMeasurementService(measurementRepository MeasurementRepository) MeasurementService {
	return &measurementService{measurementRepository: measurementRepository}
}

func (s *measurementService) AddMeasurement(ctx context.Context, req domain.AddMeasurementRequest, userID string) (domain.MeasurementResponse, error) {
	if req.WeightKg <= 0 {
		return domain.MeasurementResponse{}, domain.ErrInvalidWeight
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.MeasurementResponse{}, domain.ErrParseUUID
	}

	measuredAt := time.Now()
	if req.MeasuredAt != "" {
		measuredAt, err = time.Parse(time.RFC3339, req.MeasuredAt)
		if err != nil {
			return domain.MeasurementResponse{}, domain.ErrInvalidLoggedAt
		}
	}

	measurement := &entities.BodyMeasurement{
		ID:         uuid.New(),
		UserID:     userUUID,
		MeasuredAt: measuredAt,
		WeightKg:   req.WeightKg,
		BodyFatPct: req.BodyFatPct,
		Notes:      req.Notes,
	}

	if err := s.measurementRepository.AddMeasurement(ctx, measurement); err != nil {
		return domain.MeasurementResponse{}, err
	}

	return toMeasurementResponse(measurement), nil
}

func (s *measurementService) GetMeasurements(ctx context.Context, userID string, page, limit int) ([]domain.MeasurementResponse, int64, error) {
	measurements, count, err := s.measurementRepository.GetMeasurements(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.MeasurementResponse
	for _, measurement := range measurements {
		response = append(response, toMeasurementResponse(measurement))
	}
	return response, count, nil
}

func (s *measurementService) DeleteMeasurement(ctx context.Context, id string, userID string) error {
	measurement, err := s.measurementRepository.GetMeasurementByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMeasurementNotFound
		}
		return err
	}

	if measurement.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}

	return s.measurementRepository.DeleteMeasurement(ctx, id)
}

func toMeasurementResponse(measurement *entities.BodyMeasurement) domain.MeasurementResponse {
	return domain.MeasurementResponse{
		ID:         measurement.ID.String(),
		MeasuredAt: measurement.MeasuredAt,
		WeightKg:   measurement.WeightKg,
		BodyFatPct: measurement.BodyFatPct,
		Notes:      measurement.Notes,
	}
}
