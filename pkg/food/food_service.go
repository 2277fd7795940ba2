package food

import (
	"context"
	"errors"

	"Fitlog-Backend/domain"
	"Fitlog-Backend/entities"
	"Fitlog-Backend/pkg/nutrition"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FoodService interface {
		AddFoodRecord(ctx context.Context, req domain.AddFoodRecordRequest) (domain.FoodRecordResponse, error)
		UpdateFoodRecord(ctx context.Context, id string, req domain.UpdateFoodRecordRequest) error
		DeleteFoodRecord(ctx context.Context, id string) error
		GetFoodRecords(ctx context.Context, search string, page, limit int) ([]domain.FoodRecordResponse, int64, error)
		GetFoodRecordByID(ctx context.Context, id string) (domain.FoodRecordResponse, error)
	}

	foodService struct {
		foodRepository FoodRepository
	}
)

func NewFoodService(foodRepository FoodRepository) FoodService {
	return &foodService{foodRepository: foodRepository}
}

// EngineRecord maps a catalog row to the conversion engine's food record.
func EngineRecord(record *entities.FoodRecord) *nutrition.FoodRecord {
	if record == nil {
		return nil
	}
	return &nutrition.FoodRecord{
		Name:        record.Name,
		ServingSize: record.ServingSize,
		ServingUnit: record.ServingUnit,

		Calories: record.Calories,
		ProteinG: record.ProteinG,
		CarbsG:   record.CarbsG,
		FatG:     record.FatG,
		FiberG:   record.FiberG,
		SugarG:   record.SugarG,
		SodiumMg: record.SodiumMg,

		DensityGPerML: record.DensityGPerML,
		CupSizeG:      record.CupSizeG,
		ScoopSizeG:    record.ScoopSizeG,
		PieceWeightG:  record.PieceWeightG,
		SliceWeightG:  record.SliceWeightG,
	}
}

func toResponse(record *entities.FoodRecord) domain.FoodRecordResponse {
	return domain.FoodRecordResponse{
		ID:          record.ID.String(),
		Name:        record.Name,
		Brand:       record.Brand,
		ServingSize: record.ServingSize,
		ServingUnit: record.ServingUnit,

		Calories: record.Calories,
		ProteinG: record.ProteinG,
		CarbsG:   record.CarbsG,
		FatG:     record.FatG,
		FiberG:   record.FiberG,
		SugarG:   record.SugarG,
		SodiumMg: record.SodiumMg,

		DensityGPerML: record.DensityGPerML,
		CupSizeG:      record.CupSizeG,
		ScoopSizeG:    record.ScoopSizeG,
		PieceWeightG:  record.PieceWeightG,
		SliceWeightG:  record.SliceWeightG,

		Verified: record.Verified,
	}
}

func (s *foodService) AddFoodRecord(ctx context.Context, req domain.AddFoodRecordRequest) (domain.FoodRecordResponse, error) {
	if req.ServingSize <= 0 {
		return domain.FoodRecordResponse{}, domain.ErrInvalidServingSize
	}

	record := &entities.FoodRecord{
		ID:          uuid.New(),
		Name:        req.Name,
		Brand:       req.Brand,
		ServingSize: req.ServingSize,
		ServingUnit: req.ServingUnit,

		Calories: req.Calories,
		ProteinG: req.ProteinG,
		CarbsG:   req.CarbsG,
		FatG:     req.FatG,
		FiberG:   req.FiberG,
		SugarG:   req.SugarG,
		SodiumMg: req.SodiumMg,

		DensityGPerML: req.DensityGPerML,
		CupSizeG:      req.CupSizeG,
		ScoopSizeG:    req.ScoopSizeG,
		PieceWeightG:  req.PieceWeightG,
		SliceWeightG:  req.SliceWeightG,
	}

	if err := s.foodRepository.AddFoodRecord(ctx, record); err != nil {
		return domain.FoodRecordResponse{}, err
	}

	return toResponse(record), nil
}

func (s *foodService) UpdateFoodRecord(ctx context.Context, id string, req domain.UpdateFoodRecordRequest) error {
	record, err := s.foodRepository.GetFoodRecordByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodRecordNotFound
		}
		return err
	}

	if req.Name != "" {
		record.Name = req.Name
	}
	if req.Brand != "" {
		record.Brand = req.Brand
	}
	if req.ServingSize != 0 {
		if req.ServingSize < 0 {
			return domain.ErrInvalidServingSize
		}
		record.ServingSize = req.ServingSize
	}
	if req.ServingUnit != "" {
		record.ServingUnit = req.ServingUnit
	}

	if req.Calories != nil {
		record.Calories = req.Calories
	}
	if req.ProteinG != nil {
		record.ProteinG = req.ProteinG
	}
	if req.CarbsG != nil {
		record.CarbsG = req.CarbsG
	}
	if req.FatG != nil {
		record.FatG = req.FatG
	}
	if req.FiberG != nil {
		record.FiberG = req.FiberG
	}
	if req.SugarG != nil {
		record.SugarG = req.SugarG
	}
	if req.SodiumMg != nil {
		record.SodiumMg = req.SodiumMg
	}

	if req.DensityGPerML != nil {
		record.DensityGPerML = req.DensityGPerML
	}
	if req.CupSizeG != nil {
		record.CupSizeG = req.CupSizeG
	}
	if req.ScoopSizeG != nil {
		record.ScoopSizeG = req.ScoopSizeG
	}
	if req.PieceWeightG != nil {
		record.PieceWeightG = req.PieceWeightG
	}
	if req.SliceWeightG != nil {
		record.SliceWeightG = req.SliceWeightG
	}

	return s.foodRepository.UpdateFoodRecord(ctx, record)
}

func (s *foodService) DeleteFoodRecord(ctx context.Context, id string) error {
	if _, err := s.foodRepository.GetFoodRecordByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodRecordNotFound
		}
		return err
	}
	return s.foodRepository.DeleteFoodRecord(ctx, id)
}

func (s *foodService) GetFoodRecords(ctx context.Context, search string, page, limit int) ([]domain.FoodRecordResponse, int64, error) {
	records, count, err := s.foodRepository.GetFoodRecords(ctx, search, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.FoodRecordResponse
	for _, record := range records {
		response = append(response, toResponse(record))
	}
	return response, count, nil
}

func (s *foodService) GetFoodRecordByID(ctx context.Context, id string) (domain.FoodRecordResponse, error) {
	record, err := s.foodRepository.GetFoodRecordByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodRecordResponse{}, domain.ErrFoodRecordNotFound
		}
		return domain.FoodRecordResponse{}, err
	}
	return toResponse(record), nil
}
