package entry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"Fitlog-Backend/domain"
	"Fitlog-Backend/entities"
	"Fitlog-Backend/internal/utils/storage"
	"Fitlog-Backend/pkg/extract"
	"Fitlog-Backend/pkg/food"
	"Fitlog-Backend/pkg/nutrition"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	EntryService interface {
		LogEntry(ctx context.Context, req domain.LogEntryRequest, userID string) (domain.EntryResponse, error)
		LogPhotoEntry(ctx context.Context, req domain.LogPhotoEntryRequest, userID string) (domain.EntryResponse, error)
		GetEntries(ctx context.Context, userID string, page, limit int) ([]domain.EntryResponse, int64, error)
		GetEntryByID(ctx context.Context, id string, userID string) (domain.EntryResponse, error)
		DeleteEntry(ctx context.Context, id string, userID string) error
		GetDailySummary(ctx context.Context, userID string, date string) (domain.DailySummaryResponse, error)
		UploadEntryMedia(ctx context.Context, id string, req domain.UploadEntryMediaRequest, userID string) (domain.EntryResponse, error)
	}

	entryService struct {
		entryRepository EntryRepository
		foodRepository  food.FoodRepository
		extractService  extract.ExtractService
		s3              storage.AwsS3
	}
)

func NewEntryService(
	entryRepository EntryRepository,
	foodRepository food.FoodRepository,
	extractService extract.ExtractService,
	s3 storage.AwsS3,
) EntryService {
	return &entryService{
		entryRepository: entryRepository,
		foodRepository:  foodRepository,
		extractService:  extractService,
		s3:              s3,
	}
}

func (s *entryService) LogEntry(ctx context.Context, req domain.LogEntryRequest, userID string) (domain.EntryResponse, error) {
	if strings.TrimSpace(req.Text) == "" {
		return domain.EntryResponse{}, domain.ErrEmptyEntryText
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.EntryResponse{}, domain.ErrParseUUID
	}

	loggedAt := time.Now()
	if req.LoggedAt != "" {
		loggedAt, err = time.Parse(time.RFC3339, req.LoggedAt)
		if err != nil {
			return domain.EntryResponse{}, domain.ErrInvalidLoggedAt
		}
	}

	source := req.Source
	if source == "" {
		source = "text"
	}

	extracted, err := s.extractService.ExtractFromText(ctx, req.Text)
	if err != nil {
		return domain.EntryResponse{}, err
	}

	entryID := uuid.New()
	var engineItems []nutrition.Item
	var entryItems []*entities.EntryItem

	for _, ex := range extracted {
		item, entityItem := s.resolveItem(ctx, entryID, ex)
		engineItems = append(engineItems, item)
		entryItems = append(entryItems, entityItem)
	}

	totals := nutrition.Aggregate(engineItems)

	entry := &entities.QuickEntry{
		ID:        entryID,
		UserID:    userUUID,
		RawText:   req.Text,
		EntryType: "meal",
		Source:    source,
		LoggedAt:  loggedAt,

		TotalCalories: totals.Calories,
		TotalProteinG: totals.ProteinG,
		TotalCarbsG:   totals.CarbsG,
		TotalFatG:     totals.FatG,
		TotalFiberG:   totals.FiberG,
		TotalSugarG:   totals.SugarG,
		TotalSodiumMg: totals.SodiumMg,
		Estimated:     totals.Estimated,
		Caveats:       strings.Join(totals.Caveats, "\n"),

		Items: entryItems,
	}

	if err := s.entryRepository.CreateEntry(ctx, entry); err != nil {
		return domain.EntryResponse{}, err
	}

	return entryToResponse(entry), nil
}

// LogPhotoEntry extracts foods from a meal photo instead of text. The photo
// itself is stored and linked as the entry's media.
func (s *entryService) LogPhotoEntry(ctx context.Context, req domain.LogPhotoEntryRequest, userID string) (domain.EntryResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.EntryResponse{}, domain.ErrParseUUID
	}

	loggedAt := time.Now()
	if req.LoggedAt != "" {
		loggedAt, err = time.Parse(time.RFC3339, req.LoggedAt)
		if err != nil {
			return domain.EntryResponse{}, domain.ErrInvalidLoggedAt
		}
	}

	extracted, err := s.extractService.ExtractFromImage(ctx, req.Photo)
	if err != nil {
		return domain.EntryResponse{}, err
	}

	entryID := uuid.New()
	var engineItems []nutrition.Item
	var entryItems []*entities.EntryItem
	var names []string

	for _, ex := range extracted {
		item, entityItem := s.resolveItem(ctx, entryID, ex)
		engineItems = append(engineItems, item)
		entryItems = append(entryItems, entityItem)
		names = append(names, ex.FoodName)
	}

	totals := nutrition.Aggregate(engineItems)

	mediaURL := ""
	fileName := fmt.Sprintf("entry-%s", entryID.String())
	if objectKey, err := s.s3.UploadFile(fileName, req.Photo, "entry-media", storage.AllowImage...); err == nil {
		mediaURL = s.s3.GetPublicLinkKey(objectKey)
	}

	entry := &entities.QuickEntry{
		ID:        entryID,
		UserID:    userUUID,
		RawText:   strings.Join(names, ", "),
		EntryType: "meal",
		Source:    "photo",
		MediaURL:  mediaURL,
		LoggedAt:  loggedAt,

		TotalCalories: totals.Calories,
		TotalProteinG: totals.ProteinG,
		TotalCarbsG:   totals.CarbsG,
		TotalFatG:     totals.FatG,
		TotalFiberG:   totals.FiberG,
		TotalSugarG:   totals.SugarG,
		TotalSodiumMg: totals.SodiumMg,
		Estimated:     totals.Estimated,
		Caveats:       strings.Join(totals.Caveats, "\n"),

		Items: entryItems,
	}

	if err := s.entryRepository.CreateEntry(ctx, entry); err != nil {
		return domain.EntryResponse{}, err
	}

	return entryToResponse(entry), nil
}

// resolveItem runs one extracted food line through catalog lookup, gram
// conversion and nutrition scaling. A line that cannot be matched or
// converted degrades on its own; it never fails the sibling lines.
func (s *entryService) resolveItem(ctx context.Context, entryID uuid.UUID, ex domain.ExtractedItem) (nutrition.Item, *entities.EntryItem) {
	var record *entities.FoodRecord
	if ex.FoodName != "" {
		found, err := s.foodRepository.FindByName(ctx, ex.FoodName)
		if err == nil {
			record = found
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			// treat lookup failures like a miss; the caveat surfaces it
			record = nil
		}
	}

	engineRecord := food.EngineRecord(record)

	conv, err := nutrition.Convert(ex.Quantity, ex.Unit, engineRecord)
	if err != nil {
		unit, _ := nutrition.ParseUnit(ex.Unit)
		if errors.Is(err, nutrition.ErrInvalidQuantity) {
			// A non-positive quantity is rejected, never coerced: the line is
			// kept on the entry with its validation error, excluded from the
			// totals, and the sibling lines still resolve.
			return s.invalidItem(entryID, ex, record, unit, err)
		}
		// serving references without a resolvable basis fall back to a
		// low-accuracy gram guess so the rest of the entry still totals
		conv = nutrition.ConversionResult{
			Grams:    ex.Quantity,
			Method:   nutrition.MethodUnknownFallback,
			Accuracy: nutrition.AccuracyLow,
			Unit:     unit,
		}
	}

	var scaled nutrition.ScaledNutrition
	if engineRecord != nil {
		if sn, err := nutrition.Scale(engineRecord, conv.Grams); err == nil {
			scaled = sn
		}
	}

	item := nutrition.Item{
		FoodName:    ex.FoodName,
		Conversion:  conv,
		Nutrition:   scaled,
		MissingFood: record == nil,
	}

	entityItem := &entities.EntryItem{
		ID:           uuid.New(),
		QuickEntryID: entryID,
		FoodName:     ex.FoodName,
		Quantity:     ex.Quantity,
		Unit:         string(conv.Unit),

		Grams:            conv.Grams,
		ConversionMethod: string(conv.Method),
		AccuracyHint:     string(conv.Accuracy),

		Calories: scaled.Calories,
		ProteinG: scaled.ProteinG,
		CarbsG:   scaled.CarbsG,
		FatG:     scaled.FatG,
		FiberG:   scaled.FiberG,
		SugarG:   scaled.SugarG,
		SodiumMg: scaled.SodiumMg,
	}
	if record != nil {
		id := record.ID
		entityItem.FoodRecordID = &id
	}

	return item, entityItem
}

// invalidItem records one food line that failed quantity validation. No
// conversion or scaling happens for it.
func (s *entryService) invalidItem(entryID uuid.UUID, ex domain.ExtractedItem, record *entities.FoodRecord, unit nutrition.Unit, cause error) (nutrition.Item, *entities.EntryItem) {
	item := nutrition.Item{
		FoodName:        ex.FoodName,
		Conversion:      nutrition.ConversionResult{Unit: unit},
		InvalidQuantity: true,
		MissingFood:     record == nil,
	}

	entityItem := &entities.EntryItem{
		ID:           uuid.New(),
		QuickEntryID: entryID,
		FoodName:     ex.FoodName,
		Quantity:     ex.Quantity,
		Unit:         string(unit),
		ItemError:    cause.Error(),
	}
	if record != nil {
		id := record.ID
		entityItem.FoodRecordID = &id
	}

	return item, entityItem
}

func (s *entryService) GetEntries(ctx context.Context, userID string, page, limit int) ([]domain.EntryResponse, int64, error) {
	entries, count, err := s.entryRepository.GetEntries(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.EntryResponse
	for _, entry := range entries {
		response = append(response, entryToResponse(entry))
	}
	return response, count, nil
}

func (s *entryService) GetEntryByID(ctx context.Context, id string, userID string) (domain.EntryResponse, error) {
	entry, err := s.getOwnedEntry(ctx, id, userID)
	if err != nil {
		return domain.EntryResponse{}, err
	}
	return entryToResponse(entry), nil
}

func (s *entryService) DeleteEntry(ctx context.Context, id string, userID string) error {
	if _, err := s.getOwnedEntry(ctx, id, userID); err != nil {
		return err
	}
	return s.entryRepository.DeleteEntry(ctx, id)
}

func (s *entryService) GetDailySummary(ctx context.Context, userID string, date string) (domain.DailySummaryResponse, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return domain.DailySummaryResponse{}, domain.ErrInvalidLoggedAt
	}

	start := day
	end := day.AddDate(0, 0, 1)

	entries, err := s.entryRepository.GetEntriesBetween(ctx, userID, start, end)
	if err != nil {
		return domain.DailySummaryResponse{}, err
	}

	summary := domain.DailySummaryResponse{Date: date}
	for _, entry := range entries {
		summary.TotalCalories += entry.TotalCalories
		summary.TotalProteinG += entry.TotalProteinG
		summary.TotalCarbsG += entry.TotalCarbsG
		summary.TotalFatG += entry.TotalFatG
		summary.EntryCount++
		if entry.Estimated {
			summary.AnyEstimated = true
		}
	}

	return summary, nil
}

func (s *entryService) UploadEntryMedia(ctx context.Context, id string, req domain.UploadEntryMediaRequest, userID string) (domain.EntryResponse, error) {
	entry, err := s.getOwnedEntry(ctx, id, userID)
	if err != nil {
		return domain.EntryResponse{}, err
	}

	allowed := append(append([]string{}, storage.AllowImage...), storage.AllowAudio...)
	fileName := fmt.Sprintf("entry-%s", entry.ID.String())

	var objectKey string
	if entry.MediaURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(entry.MediaURL)
		if existingKey != "" {
			objectKey, err = s.s3.UpdateFile(existingKey, req.Media, allowed...)
		} else {
			objectKey, err = s.s3.UploadFile(fileName, req.Media, "entry-media", allowed...)
		}
	} else {
		objectKey, err = s.s3.UploadFile(fileName, req.Media, "entry-media", allowed...)
	}
	if err != nil {
		return domain.EntryResponse{}, err
	}

	entry.MediaURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.entryRepository.UpdateEntry(ctx, entry); err != nil {
		return domain.EntryResponse{}, err
	}

	return entryToResponse(entry), nil
}

func (s *entryService) getOwnedEntry(ctx context.Context, id string, userID string) (*entities.QuickEntry, error) {
	entry, err := s.entryRepository.GetEntryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, err
	}
	if entry.UserID.String() != userID {
		return nil, domain.ErrUserNotAllowed
	}
	return entry, nil
}

func entryToResponse(entry *entities.QuickEntry) domain.EntryResponse {
	totals := nutrition.EntryTotal{
		Calories:  entry.TotalCalories,
		ProteinG:  entry.TotalProteinG,
		CarbsG:    entry.TotalCarbsG,
		FatG:      entry.TotalFatG,
		FiberG:    entry.TotalFiberG,
		SugarG:    entry.TotalSugarG,
		SodiumMg:  entry.TotalSodiumMg,
		Estimated: entry.Estimated,
	}
	if entry.Caveats != "" {
		totals.Caveats = strings.Split(entry.Caveats, "\n")
	}

	var items []domain.EntryItemResponse
	for _, item := range entry.Items {
		items = append(items, domain.EntryItemResponse{
			FoodName:         item.FoodName,
			Quantity:         item.Quantity,
			Unit:             item.Unit,
			Grams:            item.Grams,
			ConversionMethod: item.ConversionMethod,
			AccuracyHint:     item.AccuracyHint,
			Matched:          item.FoodRecordID != nil,
			Error:            item.ItemError,
			Calories:         item.Calories,
			ProteinG:         item.ProteinG,
			CarbsG:           item.CarbsG,
			FatG:             item.FatG,
			FiberG:           item.FiberG,
			SugarG:           item.SugarG,
			SodiumMg:         item.SodiumMg,
		})
	}

	return domain.EntryResponse{
		ID:        entry.ID.String(),
		RawText:   entry.RawText,
		EntryType: entry.EntryType,
		Source:    entry.Source,
		MediaURL:  entry.MediaURL,
		LoggedAt:  entry.LoggedAt,
		Totals:    totals,
		Items:     items,
		CreatedAt: entry.CreatedAt,
	}
}
