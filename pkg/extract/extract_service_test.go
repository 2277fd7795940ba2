package extract

import (
	"errors"
	"testing"

	"Fitlog-Backend/domain"
)

func TestParseItemsPlainJSON(t *testing.T) {
	t.Parallel()

	items, err := parseItems(`{"items":[{"food_name":"oatmeal","quantity":1.5,"unit":"cup","confidence":"high"}]}`)
	if err != nil {
		t.Fatalf("parseItems returned error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].FoodName != "oatmeal" || items[0].Quantity != 1.5 || items[0].Unit != "cup" {
		t.Fatalf("unexpected item %+v", items[0])
	}
}

func TestParseItemsStripsMarkdownFence(t *testing.T) {
	t.Parallel()

	raw := "```json\n{\"items\":[{\"food_name\":\"banana\",\"quantity\":1,\"unit\":\"\",\"confidence\":\"high\"}]}\n```"
	items, err := parseItems(raw)
	if err != nil {
		t.Fatalf("parseItems returned error: %v", err)
	}
	if items[0].FoodName != "banana" {
		t.Fatalf("expected banana, got %q", items[0].FoodName)
	}
}

func TestParseItemsSurroundingProse(t *testing.T) {
	t.Parallel()

	raw := `Here is the extraction: {"items":[{"food_name":"rice","quantity":200,"unit":"g","confidence":"high"}]} Hope that helps!`
	items, err := parseItems(raw)
	if err != nil {
		t.Fatalf("parseItems returned error: %v", err)
	}
	if items[0].Quantity != 200 {
		t.Fatalf("expected quantity 200, got %v", items[0].Quantity)
	}
}

func TestParseItemsNormalizesBadFields(t *testing.T) {
	t.Parallel()

	items, err := parseItems(`{"items":[{"food_name":"  coffee ","quantity":2,"unit":"cup","confidence":"certain"}]}`)
	if err != nil {
		t.Fatalf("parseItems returned error: %v", err)
	}
	item := items[0]
	if item.FoodName != "coffee" {
		t.Errorf("expected trimmed name, got %q", item.FoodName)
	}
	if item.Confidence != "medium" {
		t.Errorf("unknown confidence should default to medium, got %q", item.Confidence)
	}
}

func TestParseItemsKeepsNonPositiveQuantity(t *testing.T) {
	t.Parallel()

	items, err := parseItems(`{"items":[{"food_name":"coffee","quantity":0,"unit":"cup","confidence":"high"}]}`)
	if err != nil {
		t.Fatalf("parseItems returned error: %v", err)
	}
	item := items[0]
	if item.Quantity != 0 || item.Unit != "cup" {
		t.Errorf("non-positive quantity must not be rewritten, got %v %q", item.Quantity, item.Unit)
	}
	if item.Confidence != "low" {
		t.Errorf("non-positive quantity should demote confidence to low, got %q", item.Confidence)
	}
}

func TestParseItemsEmpty(t *testing.T) {
	t.Parallel()

	if _, err := parseItems(`{"items":[]}`); !errors.Is(err, domain.ErrNoItemsExtracted) {
		t.Fatalf("expected ErrNoItemsExtracted, got %v", err)
	}
}

func TestParseItemsGarbage(t *testing.T) {
	t.Parallel()

	if _, err := parseItems("not json at all"); err == nil {
		t.Fatal("expected error for unparseable response")
	}
}
