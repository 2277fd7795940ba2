package coach

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"Fitlog-Backend/domain"
	"Fitlog-Backend/entities"
	"Fitlog-Backend/internal/utils"
	"Fitlog-Backend/pkg/entry"
	"Fitlog-Backend/pkg/subscription"
	"Fitlog-Backend/pkg/user"

	"gorm.io/gorm"
)

const coachPrompt = `You are a supportive nutrition and fitness coach. Answer the user's question using only the logged data provided. Be concrete, reference their actual numbers, and keep the answer under 200 words. Plain text only, no markdown.`

type (
	CoachService interface {
		AskCoach(ctx context.Context, req domain.AskCoachRequest, userID string) (domain.AskCoachResponse, error)
	}

	coachService struct {
		entryRepository     entry.EntryRepository
		userRepository      user.UserRepository
		subscriptionService subscription.SubscriptionService
		httpClient          *http.Client
	}
)

func NewCoachService(
	entryRepository entry.EntryRepository,
	userRepository user.UserRepository,
	subscriptionService subscription.SubscriptionService,
) CoachService {
	return &coachService{
		entryRepository:     entryRepository,
		userRepository:      userRepository,
		subscriptionService: subscriptionService,
		httpClient:          &http.Client{Timeout: 60 * time.Second},
	}
}

func (s *coachService) AskCoach(ctx context.Context, req domain.AskCoachRequest, userID string) (domain.AskCoachResponse, error) {
	if strings.TrimSpace(req.Question) == "" {
		return domain.AskCoachResponse{}, domain.ErrEmptyQuestion
	}

	premium, err := s.subscriptionService.IsPremium(ctx, userID)
	if err != nil {
		return domain.AskCoachResponse{}, err
	}
	if !premium {
		return domain.AskCoachResponse{}, domain.ErrPremiumRequired
	}

	days := req.Days
	if days <= 0 {
		days = 7
	}

	end := time.Now()
	start := end.AddDate(0, 0, -days)

	entries, err := s.entryRepository.GetEntriesBetween(ctx, userID, start, end)
	if err != nil {
		return domain.AskCoachResponse{}, err
	}

	contextText := s.buildContext(ctx, userID, entries, days)

	answer, err := s.callGemini(ctx, contextText, req.Question)
	if err != nil {
		return domain.AskCoachResponse{}, err
	}

	return domain.AskCoachResponse{
		Answer:      answer,
		EntriesUsed: len(entries),
		AnsweredAt:  time.Now(),
	}, nil
}

// buildContext flattens the user's goals and logged entries into the plain
// text block the model reasons over.
func (s *coachService) buildContext(ctx context.Context, userID string, entries []*entities.QuickEntry, days int) string {
	var b strings.Builder

	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err == nil {
		fmt.Fprintf(&b, "User: %s.", u.Name)
		if u.DailyKcal > 0 {
			fmt.Fprintf(&b, " Daily calorie goal: %d kcal.", u.DailyKcal)
		}
		if u.ProteinGoal > 0 {
			fmt.Fprintf(&b, " Daily protein goal: %.0f g.", u.ProteinGoal)
		}
		if u.WeightKg > 0 {
			fmt.Fprintf(&b, " Current weight: %.1f kg.", u.WeightKg)
		}
		b.WriteString("\n")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		b.WriteString("User profile unavailable.\n")
	}

	fmt.Fprintf(&b, "Logged entries from the last %d days:\n", days)
	if len(entries) == 0 {
		b.WriteString("(no entries logged)\n")
	}
	for _, e := range entries {
		fmt.Fprintf(&b, "- %s: %q, %.0f kcal, %.1fg protein, %.1fg carbs, %.1fg fat",
			e.LoggedAt.Format("2006-01-02 15:04"), e.RawText,
			e.TotalCalories, e.TotalProteinG, e.TotalCarbsG, e.TotalFatG)
		if e.Estimated {
			b.WriteString(" (estimated)")
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (s *coachService) callGemini(ctx context.Context, contextText, question string) (string, error) {
	geminiAPIKey := utils.GetConfig("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	geminiModel := utils.GetConfig("GEMINI_MODEL")
	if geminiModel == "" {
		return "", fmt.Errorf("GEMINI_MODEL environment variable not set")
	}

	geminiURL := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s", geminiModel, geminiAPIKey)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{"text": coachPrompt},
					{"text": contextText},
					{"text": fmt.Sprintf("Question: %s", question)},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.4,
			"topP":        0.9,
			"topK":        40,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", geminiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", err
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", domain.ErrCoachProcessingFailed
	}

	return strings.TrimSpace(geminiResp.Candidates[0].Content.Parts[0].Text), nil
}
