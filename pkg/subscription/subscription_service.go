package subscription

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Fitlog-Backend/domain"
	"Fitlog-Backend/entities"
	"Fitlog-Backend/pkg/midtrans"
	"Fitlog-Backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Prices in IDR, matched by the plan's duration.
const (
	pricePremiumMonthly int64 = 49000
	pricePremiumYearly  int64 = 490000
)

type (
	SubscriptionService interface {
		CreateSubscription(ctx context.Context, req domain.CreateSubscriptionRequest, userID string) (domain.CreateSubscriptionResponse, error)
		GetMySubscription(ctx context.Context, userID string) (domain.SubscriptionResponse, error)
		HandleNotification(ctx context.Context, req domain.MidtransNotificationRequest) error
		IsPremium(ctx context.Context, userID string) (bool, error)
	}

	subscriptionService struct {
		subscriptionRepository SubscriptionRepository
		userRepository         user.UserRepository
		midtransService        midtrans.MidtransService
	}
)

func NewSubscriptionService(
	subscriptionRepository SubscriptionRepository,
	userRepository user.UserRepository,
	midtransService midtrans.MidtransService,
) SubscriptionService {
	return &subscriptionService{
		subscriptionRepository: subscriptionRepository,
		userRepository:         userRepository,
		midtransService:        midtransService,
	}
}

func (s *subscriptionService) CreateSubscription(ctx context.Context, req domain.CreateSubscriptionRequest, userID string) (domain.CreateSubscriptionResponse, error) {
	var amount int64
	switch req.Plan {
	case "premium_monthly":
		amount = pricePremiumMonthly
	case "premium_yearly":
		amount = pricePremiumYearly
	default:
		return domain.CreateSubscriptionResponse{}, domain.ErrUnknownPlan
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CreateSubscriptionResponse{}, domain.ErrParseUUID
	}

	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CreateSubscriptionResponse{}, domain.ErrUserNotFound
		}
		return domain.CreateSubscriptionResponse{}, err
	}

	orderID := fmt.Sprintf("FITLOG-%s", uuid.New().String())

	subscription := &entities.Subscription{
		ID:      uuid.New(),
		UserID:  userUUID,
		OrderID: orderID,
		Plan:    req.Plan,
		Status:  "pending",
		Amount:  amount,
	}

	if err := s.subscriptionRepository.CreateSubscription(ctx, subscription); err != nil {
		return domain.CreateSubscriptionResponse{}, err
	}

	payment, err := s.midtransService.CreateTransaction(ctx, domain.MidtransPaymentRequest{
		OrderID: orderID,
		Amount:  amount,
		Email:   u.Email,
	})
	if err != nil {
		return domain.CreateSubscriptionResponse{}, err
	}

	return domain.CreateSubscriptionResponse{
		OrderID:     orderID,
		RedirectURL: payment.RedirectURL,
		Token:       payment.Token,
	}, nil
}

func (s *subscriptionService) GetMySubscription(ctx context.Context, userID string) (domain.SubscriptionResponse, error) {
	subscription, err := s.subscriptionRepository.GetLatestSubscription(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SubscriptionResponse{}, domain.ErrSubscriptionNotFound
		}
		return domain.SubscriptionResponse{}, err
	}

	return domain.SubscriptionResponse{
		OrderID:   subscription.OrderID,
		Plan:      subscription.Plan,
		Status:    subscription.Status,
		ExpiresAt: subscription.ExpiresAt,
	}, nil
}

// HandleNotification applies a Midtrans payment notification. Activation
// extends from the later of now and the current expiry so renewals stack.
func (s *subscriptionService) HandleNotification(ctx context.Context, req domain.MidtransNotificationRequest) error {
	subscription, err := s.subscriptionRepository.GetSubscriptionByOrderID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrSubscriptionNotFound
		}
		return err
	}

	switch req.TransactionStatus {
	case "capture", "settlement":
		if req.FraudStatus == "challenge" || req.FraudStatus == "deny" {
			subscription.Status = "cancelled"
			break
		}
		start := time.Now()
		if current, err := s.subscriptionRepository.GetActiveSubscription(ctx, subscription.UserID.String(), start); err == nil && current.ExpiresAt != nil {
			start = *current.ExpiresAt
		}
		var expiresAt time.Time
		if subscription.Plan == "premium_yearly" {
			expiresAt = start.AddDate(1, 0, 0)
		} else {
			expiresAt = start.AddDate(0, 1, 0)
		}
		subscription.Status = "active"
		subscription.ExpiresAt = &expiresAt
	case "deny", "cancel", "failure":
		subscription.Status = "cancelled"
	case "expire":
		subscription.Status = "expired"
	default:
		// "pending" and anything unrecognized leave the row untouched
		return nil
	}

	return s.subscriptionRepository.UpdateSubscription(ctx, subscription)
}

func (s *subscriptionService) IsPremium(ctx context.Context, userID string) (bool, error) {
	if _, err := s.subscriptionRepository.GetActiveSubscription(ctx, userID, time.Now()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
