package subscription

import (
	"context"
	"time"

	"Fitlog-Backend/entities"

	"gorm.io/gorm"
)

type (
	SubscriptionRepository interface {
		CreateSubscription(ctx context.Context, subscription *entities.Subscription) error
		GetSubscriptionByOrderID(ctx context.Context, orderID string) (*entities.Subscription, error)
		UpdateSubscription(ctx context.Context, subscription *entities.Subscription) error
		GetActiveSubscription(ctx context.Context, userID string, now time.Time) (*entities.Subscription, error)
		GetLatestSubscription(ctx context.Context, userID string) (*entities.Subscription, error)
	}

	subscriptionRepository struct {
		db *gorm.DB
	}
)

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) CreateSubscription(ctx context.Context, subscription *entities.Subscription) error {
	return r.db.WithContext(ctx).Create(subscription).Error
}

func (r *subscriptionRepository) GetSubscriptionByOrderID(ctx context.Context, orderID string) (*entities.Subscription, error) {
	var subscription entities.Subscription
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&subscription).Error; err != nil {
		return nil, err
	}
	return &subscription, nil
}

func (r *subscriptionRepository) UpdateSubscription(ctx context.Context, subscription *entities.Subscription) error {
	return r.db.WithContext(ctx).Save(subscription).Error
}

func (r *subscriptionRepository) GetActiveSubscription(ctx context.Context, userID string, now time.Time) (*entities.Subscription, error) {
	var subscription entities.Subscription
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ? AND expires_at > ?", userID, "active", now).
		Order("expires_at desc").
		First(&subscription).Error; err != nil {
		return nil, err
	}
	return &subscription, nil
}

func (r *subscriptionRepository) GetLatestSubscription(ctx context.Context, userID string) (*entities.Subscription, error) {
	var subscription entities.Subscription
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		First(&subscription).Error; err != nil {
		return nil, err
	}
	return &subscription, nil
}
