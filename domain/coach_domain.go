package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAskCoach = "coach answered successfully"

	MessageFailedAskCoach = "failed to get coach answer"

	ErrCoachProcessingFailed = errors.New("coach processing failed")
	ErrPremiumRequired       = errors.New("premium subscription required")
	ErrEmptyQuestion         = errors.New("question is empty")
)

type (
	AskCoachRequest struct {
		Question string `json:"question" validate:"required"`
		Days     int    `json:"days" validate:"omitempty,min=1,max=90"` // history window, default 7
	}

	AskCoachResponse struct {
		Answer      string    `json:"answer"`
		EntriesUsed int       `json:"entries_used"`
		AnsweredAt  time.Time `json:"answered_at"`
	}
)
