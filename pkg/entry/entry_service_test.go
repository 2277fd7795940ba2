package entry_test

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"testing"
	"time"

	"Fitlog-Backend/domain"
	"Fitlog-Backend/entities"
	"Fitlog-Backend/pkg/entry"
	"Fitlog-Backend/pkg/nutrition"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func ptr(v float64) *float64 { return &v }

type fakeExtract struct {
	items []domain.ExtractedItem
	err   error
}

func (f *fakeExtract) ExtractFromText(ctx context.Context, text string) ([]domain.ExtractedItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func (f *fakeExtract) ExtractFromImage(ctx context.Context, imageFile *multipart.FileHeader) ([]domain.ExtractedItem, error) {
	return f.ExtractFromText(ctx, "")
}

type fakeFoodRepo struct {
	records map[string]*entities.FoodRecord
}

func (f *fakeFoodRepo) AddFoodRecord(ctx context.Context, record *entities.FoodRecord) error {
	f.records[strings.ToLower(record.Name)] = record
	return nil
}

func (f *fakeFoodRepo) GetFoodRecordByID(ctx context.Context, id string) (*entities.FoodRecord, error) {
	for _, record := range f.records {
		if record.ID.String() == id {
			return record, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeFoodRepo) UpdateFoodRecord(ctx context.Context, record *entities.FoodRecord) error {
	return nil
}

func (f *fakeFoodRepo) DeleteFoodRecord(ctx context.Context, id string) error { return nil }

func (f *fakeFoodRepo) GetFoodRecords(ctx context.Context, search string, page, limit int) ([]*entities.FoodRecord, int64, error) {
	return nil, 0, nil
}

func (f *fakeFoodRepo) FindByName(ctx context.Context, name string) (*entities.FoodRecord, error) {
	if record, ok := f.records[strings.ToLower(name)]; ok {
		return record, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeEntryRepo struct {
	entries map[string]*entities.QuickEntry
}

func (f *fakeEntryRepo) CreateEntry(ctx context.Context, e *entities.QuickEntry) error {
	f.entries[e.ID.String()] = e
	return nil
}

func (f *fakeEntryRepo) GetEntryByID(ctx context.Context, id string) (*entities.QuickEntry, error) {
	if e, ok := f.entries[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEntryRepo) UpdateEntry(ctx context.Context, e *entities.QuickEntry) error {
	f.entries[e.ID.String()] = e
	return nil
}

func (f *fakeEntryRepo) DeleteEntry(ctx context.Context, id string) error {
	delete(f.entries, id)
	return nil
}

func (f *fakeEntryRepo) GetEntries(ctx context.Context, userID string, page, limit int) ([]*entities.QuickEntry, int64, error) {
	var out []*entities.QuickEntry
	for _, e := range f.entries {
		if e.UserID.String() == userID {
			out = append(out, e)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeEntryRepo) GetEntriesBetween(ctx context.Context, userID string, start, end time.Time) ([]*entities.QuickEntry, error) {
	var out []*entities.QuickEntry
	for _, e := range f.entries {
		if e.UserID.String() != userID {
			continue
		}
		if e.LoggedAt.Before(start) || !e.LoggedAt.Before(end) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

type fakeS3 struct{}

func (f *fakeS3) UploadFile(fileName string, file *multipart.FileHeader, dir string, allowedExt ...string) (string, error) {
	return dir + "/" + fileName, nil
}

func (f *fakeS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowedExt ...string) (string, error) {
	return objectKey, nil
}

func (f *fakeS3) DeleteFile(objectKey string) error { return nil }

func (f *fakeS3) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.s3.region.amazonaws.com/" + objectKey
}

func (f *fakeS3) GetObjectKeyFromLink(link string) string {
	return strings.TrimPrefix(link, "https://bucket.s3.region.amazonaws.com/")
}

func newService(extracted []domain.ExtractedItem, records ...*entities.FoodRecord) (entry.EntryService, *fakeEntryRepo) {
	foodRepo := &fakeFoodRepo{records: map[string]*entities.FoodRecord{}}
	for _, record := range records {
		foodRepo.records[strings.ToLower(record.Name)] = record
	}
	entryRepo := &fakeEntryRepo{entries: map[string]*entities.QuickEntry{}}
	svc := entry.NewEntryService(entryRepo, foodRepo, &fakeExtract{items: extracted}, &fakeS3{})
	return svc, entryRepo
}

func chickenRecord() *entities.FoodRecord {
	return &entities.FoodRecord{
		ID:          uuid.New(),
		Name:        "chicken breast",
		ServingSize: 100,
		ServingUnit: "g",
		Calories:    ptr(165),
		ProteinG:    ptr(31),
	}
}

func TestLogEntryComputesTotals(t *testing.T) {
	t.Parallel()

	svc, repo := newService(
		[]domain.ExtractedItem{{FoodName: "chicken breast", Quantity: 200, Unit: "g", Confidence: "high"}},
		chickenRecord(),
	)

	userID := uuid.New().String()
	resp, err := svc.LogEntry(context.Background(), domain.LogEntryRequest{Text: "200g chicken breast"}, userID)
	if err != nil {
		t.Fatalf("LogEntry returned error: %v", err)
	}

	if resp.Totals.Calories != 330 {
		t.Errorf("expected 330 calories, got %v", resp.Totals.Calories)
	}
	if resp.Totals.ProteinG != 62 {
		t.Errorf("expected 62g protein, got %v", resp.Totals.ProteinG)
	}
	if resp.Totals.Estimated {
		t.Error("fully matched gram entry should not be estimated")
	}
	if len(resp.Items) != 1 || !resp.Items[0].Matched {
		t.Fatalf("expected one matched item, got %+v", resp.Items)
	}
	if resp.Items[0].ConversionMethod != string(nutrition.MethodIdentity) {
		t.Errorf("expected identity conversion, got %s", resp.Items[0].ConversionMethod)
	}
	if len(repo.entries) != 1 {
		t.Fatalf("expected entry persisted, got %d", len(repo.entries))
	}
}

func TestLogEntryMissingFoodDoesNotFailSiblings(t *testing.T) {
	t.Parallel()

	svc, _ := newService(
		[]domain.ExtractedItem{
			{FoodName: "chicken breast", Quantity: 100, Unit: "g", Confidence: "high"},
			{FoodName: "dragonfruit smoothie", Quantity: 1, Unit: "cup", Confidence: "medium"},
		},
		chickenRecord(),
	)

	resp, err := svc.LogEntry(context.Background(), domain.LogEntryRequest{Text: "chicken and a smoothie"}, uuid.New().String())
	if err != nil {
		t.Fatalf("LogEntry returned error: %v", err)
	}

	if resp.Totals.Calories != 165 {
		t.Errorf("unmatched item must contribute nothing; expected 165, got %v", resp.Totals.Calories)
	}
	if !resp.Totals.Estimated {
		t.Error("entry with an unmatched food should be estimated")
	}

	foundCaveat := false
	for _, c := range resp.Totals.Caveats {
		if c == nutrition.CaveatMissingFood {
			foundCaveat = true
		}
	}
	if !foundCaveat {
		t.Errorf("expected missing-food caveat, got %v", resp.Totals.Caveats)
	}

	if len(resp.Items) != 2 {
		t.Fatalf("both items should persist, got %d", len(resp.Items))
	}
	smoothie := resp.Items[1]
	if smoothie.Matched {
		t.Error("unmatched item should not be marked matched")
	}
	if smoothie.Calories != nil {
		t.Error("unmatched item must not carry fabricated nutrition")
	}
}

func TestLogEntryInvalidQuantityDoesNotFailSiblings(t *testing.T) {
	t.Parallel()

	svc, _ := newService(
		[]domain.ExtractedItem{
			{FoodName: "chicken breast", Quantity: 0, Unit: "g", Confidence: "low"},
			{FoodName: "chicken breast", Quantity: 100, Unit: "g", Confidence: "high"},
		},
		chickenRecord(),
	)

	resp, err := svc.LogEntry(context.Background(), domain.LogEntryRequest{Text: "0g chicken, 100g chicken"}, uuid.New().String())
	if err != nil {
		t.Fatalf("LogEntry returned error: %v", err)
	}

	if resp.Totals.Calories != 165 {
		t.Errorf("rejected item must contribute nothing; expected 165, got %v", resp.Totals.Calories)
	}
	if !resp.Totals.Estimated {
		t.Error("entry with a rejected item should be estimated")
	}

	foundCaveat := false
	for _, c := range resp.Totals.Caveats {
		if c == nutrition.CaveatInvalidQuantity {
			foundCaveat = true
		}
	}
	if !foundCaveat {
		t.Errorf("expected invalid-quantity caveat, got %v", resp.Totals.Caveats)
	}

	if len(resp.Items) != 2 {
		t.Fatalf("both items should persist, got %d", len(resp.Items))
	}
	rejected := resp.Items[0]
	if rejected.Error == "" {
		t.Error("rejected item should carry its validation error")
	}
	if rejected.Grams != 0 {
		t.Errorf("rejected item must not fabricate grams, got %v", rejected.Grams)
	}
	if rejected.Calories != nil {
		t.Error("rejected item must not carry nutrition")
	}
	if resp.Items[1].Error != "" || resp.Items[1].Grams != 100 {
		t.Errorf("sibling item should resolve normally, got %+v", resp.Items[1])
	}
}

func TestLogEntryServingWithoutRecordFallsBack(t *testing.T) {
	t.Parallel()

	svc, _ := newService(
		[]domain.ExtractedItem{{FoodName: "mystery stew", Quantity: 2, Unit: "serving", Confidence: "low"}},
	)

	resp, err := svc.LogEntry(context.Background(), domain.LogEntryRequest{Text: "2 servings of stew"}, uuid.New().String())
	if err != nil {
		t.Fatalf("LogEntry returned error: %v", err)
	}

	item := resp.Items[0]
	if item.ConversionMethod != string(nutrition.MethodUnknownFallback) {
		t.Errorf("expected unknown_fallback, got %s", item.ConversionMethod)
	}
	if item.Grams != 2 {
		t.Errorf("fallback should use quantity as grams, got %v", item.Grams)
	}
	if item.AccuracyHint != string(nutrition.AccuracyLow) {
		t.Errorf("expected low accuracy, got %s", item.AccuracyHint)
	}
	if !resp.Totals.Estimated {
		t.Error("fallback entry should be estimated")
	}
}

func TestLogEntryEmptyText(t *testing.T) {
	t.Parallel()

	svc, _ := newService(nil)
	_, err := svc.LogEntry(context.Background(), domain.LogEntryRequest{Text: "   "}, uuid.New().String())
	if !errors.Is(err, domain.ErrEmptyEntryText) {
		t.Fatalf("expected ErrEmptyEntryText, got %v", err)
	}
}

func TestLogEntryInvalidLoggedAt(t *testing.T) {
	t.Parallel()

	svc, _ := newService([]domain.ExtractedItem{{FoodName: "rice", Quantity: 100, Unit: "g"}})
	_, err := svc.LogEntry(context.Background(), domain.LogEntryRequest{
		Text:     "100g rice",
		LoggedAt: "yesterday at noon",
	}, uuid.New().String())
	if !errors.Is(err, domain.ErrInvalidLoggedAt) {
		t.Fatalf("expected ErrInvalidLoggedAt, got %v", err)
	}
}

func TestGetDailySummary(t *testing.T) {
	t.Parallel()

	svc, repo := newService(nil)
	userID := uuid.New()

	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	repo.entries["a"] = &entities.QuickEntry{
		ID: uuid.New(), UserID: userID, LoggedAt: day.Add(8 * time.Hour),
		TotalCalories: 400, TotalProteinG: 30, Estimated: false,
	}
	repo.entries["b"] = &entities.QuickEntry{
		ID: uuid.New(), UserID: userID, LoggedAt: day.Add(19 * time.Hour),
		TotalCalories: 600, TotalProteinG: 40, Estimated: true,
	}
	repo.entries["c"] = &entities.QuickEntry{
		ID: uuid.New(), UserID: userID, LoggedAt: day.AddDate(0, 0, 1),
		TotalCalories: 999,
	}

	summary, err := svc.GetDailySummary(context.Background(), userID.String(), "2025-06-10")
	if err != nil {
		t.Fatalf("GetDailySummary returned error: %v", err)
	}

	if summary.TotalCalories != 1000 {
		t.Errorf("expected 1000 calories for the day, got %v", summary.TotalCalories)
	}
	if summary.TotalProteinG != 70 {
		t.Errorf("expected 70g protein, got %v", summary.TotalProteinG)
	}
	if summary.EntryCount != 2 {
		t.Errorf("expected 2 entries, got %d", summary.EntryCount)
	}
	if !summary.AnyEstimated {
		t.Error("expected AnyEstimated when one entry is estimated")
	}
}

func TestDeleteEntryOwnership(t *testing.T) {
	t.Parallel()

	svc, repo := newService(nil)
	owner := uuid.New()
	e := &entities.QuickEntry{ID: uuid.New(), UserID: owner}
	repo.entries[e.ID.String()] = e

	err := svc.DeleteEntry(context.Background(), e.ID.String(), uuid.New().String())
	if !errors.Is(err, domain.ErrUserNotAllowed) {
		t.Fatalf("expected ErrUserNotAllowed, got %v", err)
	}

	if err := svc.DeleteEntry(context.Background(), e.ID.String(), owner.String()); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if len(repo.entries) != 0 {
		t.Error("entry should be deleted")
	}
}
