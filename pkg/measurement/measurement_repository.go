package measurement

import (
	"context"

	"Fitlog-Backend/entities"

	"gorm.io/gorm"
)

type (
	MeasurementRepository interface {
		AddMeasurement(ctx context.Context, measurement *entities.BodyMeasurement) error
		GetMeasurementByID(ctx context.Context, id string) (*entities.BodyMeasurement, error)
		GetMeasurements(ctx context.Context, userID string, page, limit int) ([]*entities.BodyMeasurement, int64, error)
		DeleteMeasurement(ctx context.Context, id string) error
	}

	measurementRepository struct {
		db *gorm.DB
	}
)

func NewMeasurementRepository(db *gorm.DB) MeasurementRepository {
	return &measurementRepository{db: db}
}

func (r *measurementRepository) AddMeasurement(ctx context.Context, measurement *entities.BodyMeasurement) error {
	return r.db.WithContext(ctx).Create(measurement).Error
}

func (r *measurementRepository) GetMeasurementByID(ctx context.Context, id string) (*entities.BodyMeasurement, error) {
	var measurement entities.BodyMeasurement
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&measurement).Error; err != nil {
		return nil, err
	}
	return &measurement, nil
}

func (r *measurementRepository) GetMeasurements(ctx context.Context, userID string, page, limit int) ([]*entities.BodyMeasurement, int64, error) {
	var measurements []*entities.BodyMeasurement
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.BodyMeasurement{}).Where("user_id = ?", userID)

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("measured_at desc").Find(&measurements).Error; err != nil {
		return nil, 0, err
	}

	return measurements, count, nil
}

func (r *measurementRepository) DeleteMeasurement(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.BodyMeasurement{}).Error
}
