package entry

import (
	"context"
	"time"

	"Fitlog-Backend/entities"

	"gorm.io/gorm"
)

type (
	EntryRepository interface {
		CreateEntry(ctx context.Context, entry *entities.QuickEntry) error
		GetEntryByID(ctx context.Context, id string) (*entities.QuickEntry, error)
		UpdateEntry(ctx context.Context, entry *entities.QuickEntry) error
		DeleteEntry(ctx context.Context, id string) error
		GetEntries(ctx context.Context, userID string, page, limit int) ([]*entities.QuickEntry, int64, error)
		GetEntriesBetween(ctx context.Context, userID string, start, end time.Time) ([]*entities.QuickEntry, error)
	}

	entryRepository struct {
		db *gorm.DB
	}
)

func NewEntryRepository(db *gorm.DB) EntryRepository {
	return &entryRepository{db: db}
}

func (r *entryRepository) CreateEntry(ctx context.Context, entry *entities.QuickEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *entryRepository) GetEntryByID(ctx context.Context, id string) (*entities.QuickEntry, error) {
	var entry entities.QuickEntry
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *entryRepository) UpdateEntry(ctx context.Context, entry *entities.QuickEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *entryRepository) DeleteEntry(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quick_entry_id = ?", id).Delete(&entities.EntryItem{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.QuickEntry{}).Error
	})
}

func (r *entryRepository) GetEntries(ctx context.Context, userID string, page, limit int) ([]*entities.QuickEntry, int64, error) {
	var entries []*entities.QuickEntry
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.QuickEntry{}).Where("user_id = ?", userID)

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("Items").
		Offset(offset).Limit(limit).
		Order("logged_at desc").
		Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, count, nil
}

func (r *entryRepository) GetEntriesBetween(ctx context.Context, userID string, start, end time.Time) ([]*entities.QuickEntry, error) {
	var entries []*entities.QuickEntry
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, start, end).
		Order("logged_at asc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
