package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddMeasurement    = "measurement added successfully"
	MessageSuccessGetMeasurements   = "measurements retrieved successfully"
	MessageSuccessDeleteMeasurement = "measurement deleted successfully"

	MessageFailedAddMeasurement    = "failed to add measurement"
	MessageFailedGetMeasurements   = "failed to retrieve measurements"
	MessageFailedDeleteMeasurement = "failed to delete measurement"

	ErrMeasurementNotFound = errors.New("measurement not found")
	ErrInvalidWeight       = errors.New("weight must be positive")
)

type (
	AddMeasurementRequest struct {
		WeightKg   float64  `json:"weight_kg" validate:"required,gt=0"`
		BodyFatPct *float64 `json:"body_fat_pct" validate:"omitempty,gt=0,lt=100"`
		MeasuredAt string   `json:"measured_at" validate:"omitempty"`
		Notes      string   `json:"notes" validate:"omitempty"`
	}

	MeasurementResponse struct {
		ID         string    `json:"id"`
		MeasuredAt time.Time `json:"measured_at"`
		WeightKg   float64   `json:"weight_kg"`
		BodyFatPct *float64  `json:"body_fat_pct,omitempty"`
		Notes      string    `json:"notes,omitempty"`
	}
)
