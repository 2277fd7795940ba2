package extract

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"Fitlog-Backend/domain"
	"Fitlog-Backend/internal/utils"
)

const extractPrompt = `You are a nutrition logging assistant. Extract every food or drink mentioned in the user's text. Respond ONLY with a valid JSON object containing exactly one field: 'items', an array of objects with these fields: 'food_name' (string, singular generic name), 'quantity' (number), 'unit' (string, e.g. 'g', 'cup', 'scoop', 'piece', or '' when the user gave no unit), and 'confidence' (string: 'high', 'medium', or 'low'). If a quantity is not stated, use 1 with unit ''. Do not include any explanations, markdown formatting, or extra text.`

type (
	ExtractService interface {
		ExtractFromText(ctx context.Context, text string) ([]domain.ExtractedItem, error)
		ExtractFromImage(ctx context.Context, imageFile *multipart.FileHeader) ([]domain.ExtractedItem, error)
	}

	extractService struct {
		httpClient *http.Client
	}
)

func NewExtractService() ExtractService {
	return &extractService{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *extractService) ExtractFromText(ctx context.Context, text string) ([]domain.ExtractedItem, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrEmptyEntryText
	}

	parts := []map[string]interface{}{
		{"text": extractPrompt},
		{"text": fmt.Sprintf("User entry: %s", text)},
	}

	return s.callGemini(ctx, parts)
}

func (s *extractService) ExtractFromImage(ctx context.Context, imageFile *multipart.FileHeader) ([]domain.ExtractedItem, error) {
	file, err := imageFile.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	fileData, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	base64Image := base64.StdEncoding.EncodeToString(fileData)

	mimeType := imageFile.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
		switch strings.ToLower(filepath.Ext(imageFile.Filename)) {
		case ".png":
			mimeType = "image/png"
		case ".jpg", ".jpeg":
			mimeType = "image/jpeg"
		case ".webp":
			mimeType = "image/webp"
		}
	}

	parts := []map[string]interface{}{
		{"text": extractPrompt + " The entry is a photo of a meal; identify the foods and estimate portions."},
		{
			"inline_data": map[string]interface{}{
				"mime_type": mimeType,
				"data":      base64Image,
			},
		},
	}

	return s.callGemini(ctx, parts)
}

func (s *extractService) callGemini(ctx context.Context, parts []map[string]interface{}) ([]domain.ExtractedItem, error) {
	geminiAPIKey := utils.GetConfig("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	geminiModel := utils.GetConfig("GEMINI_MODEL")
	if geminiModel == "" {
		return nil, fmt.Errorf("GEMINI_MODEL environment variable not set")
	}

	geminiURL := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s", geminiModel, geminiAPIKey)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": parts},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.1,
			"topP":        0.8,
			"topK":        40,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", geminiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
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
		return nil, err
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return nil, domain.ErrGeminiProcessingFailed
	}

	responseText := geminiResp.Candidates[0].Content.Parts[0].Text
	return parseItems(responseText)
}

// parseItems tolerates markdown fences and stray prose around the JSON body.
func parseItems(responseText string) ([]domain.ExtractedItem, error) {
	jsonPattern := regexp.MustCompile(`(?s)\{.*\}`)
	if matches := jsonPattern.FindString(responseText); matches != "" {
		responseText = matches
	}

	responseText = strings.TrimSpace(responseText)
	if strings.HasPrefix(responseText, "```json") {
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimSuffix(responseText, "```")
	} else if strings.HasPrefix(responseText, "```") {
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
	}
	responseText = strings.TrimSpace(responseText)

	var parsed struct {
		Items []domain.ExtractedItem `json:"items"`
	}
	if err := json.Unmarshal([]byte(responseText), &parsed); err != nil {
		// Some model variants return a bare array instead of the wrapper object.
		var bare []domain.ExtractedItem
		if altErr := json.Unmarshal([]byte(responseText), &bare); altErr != nil {
			return nil, fmt.Errorf("failed to parse gemini response: %v - raw response: %s", err, responseText)
		}
		parsed.Items = bare
	}

	if len(parsed.Items) == 0 {
		return nil, domain.ErrNoItemsExtracted
	}

	for i := range parsed.Items {
		item := &parsed.Items[i]
		item.FoodName = strings.TrimSpace(item.FoodName)
		switch item.Confidence {
		case "high", "medium", "low":
		default:
			item.Confidence = "medium"
		}
		if item.Quantity <= 0 {
			// Keep the model's value; a non-positive quantity is rejected per
			// item downstream rather than rewritten into a guessed portion.
			item.Confidence = "low"
		}
	}

	return parsed.Items, nil
}
