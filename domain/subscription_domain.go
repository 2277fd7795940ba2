package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateSubscription = "subscription transaction created successfully"
	MessageSuccessGetSubscription    = "subscription retrieved successfully"
	MessageSuccessWebhook            = "webhook processed successfully"

	MessageFailedCreateSubscription = "failed to create subscription transaction"
	MessageFailedGetSubscription    = "failed to retrieve subscription"
	MessageFailedWebhook            = "failed to process webhook"

	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrUnknownPlan          = errors.New("unknown subscription plan")
)

type (
	CreateSubscriptionRequest struct {
		Plan string `json:"plan" validate:"required,oneof=premium_monthly premium_yearly"`
	}

	CreateSubscriptionResponse struct {
		OrderID     string `json:"order_id"`
		RedirectURL string `json:"redirect_url"`
		Token       string `json:"token"`
	}

	SubscriptionResponse struct {
		OrderID   string     `json:"order_id"`
		Plan      string     `json:"plan"`
		Status    string     `json:"status"`
		ExpiresAt *time.Time `json:"expires_at,omitempty"`
	}

	MidtransPaymentRequest struct {
		OrderID string
		Amount  int64
		Email   string
	}

	MidtransPaymentResponse struct {
		Token       string `json:"token"`
		RedirectURL string `json:"redirect_url"`
	}

	MidtransNotificationRequest struct {
		OrderID           string `json:"order_id" validate:"required"`
		TransactionStatus string `json:"transaction_status" validate:"required"`
		FraudStatus       string `json:"fraud_status"`
	}
)
