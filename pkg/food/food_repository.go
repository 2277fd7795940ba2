package food

import (
	"context"
	"errors"

	"Fitlog-Backend/entities"

	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		AddFoodRecord(ctx context.Context, record *entities.FoodRecord) error
		GetFoodRecordByID(ctx context.Context, id string) (*entities.FoodRecord, error)
		UpdateFoodRecord(ctx context.Context, record *entities.FoodRecord) error
		DeleteFoodRecord(ctx context.Context, id string) error
		GetFoodRecords(ctx context.Context, search string, page, limit int) ([]*entities.FoodRecord, int64, error)
		FindByName(ctx context.Context, name string) (*entities.FoodRecord, error)
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) AddFoodRecord(ctx context.Context, record *entities.FoodRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *foodRepository) GetFoodRecordByID(ctx context.Context, id string) (*entities.FoodRecord, error) {
	var record entities.FoodRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *foodRepository) UpdateFoodRecord(ctx context.Context, record *entities.FoodRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *foodRepository) DeleteFoodRecord(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FoodRecord{}).Error
}

func (r *foodRepository) GetFoodRecords(ctx context.Context, search string, page, limit int) ([]*entities.FoodRecord, int64, error) {
	var records []*entities.FoodRecord
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.FoodRecord{})
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("name asc").Find(&records).Error; err != nil {
		return nil, 0, err
	}

	return records, count, nil
}

// FindByName prefers an exact case-insensitive match, then falls back to a
// substring match with verified records first.
func (r *foodRepository) FindByName(ctx context.Context, name string) (*entities.FoodRecord, error) {
	var record entities.FoodRecord

	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		Order("verified desc").
		First(&record).Error
	if err == nil {
		return &record, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+name+"%").
		Order("verified desc, length(name) asc").
		First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}
