package grocery

import (
	"fmt"
	"strings"
	"testing"
)

func TestToggleIsInvertible(t *testing.T) {
	l := Sample()
	before := l.Items[0].Checked

	l.Toggle("1")
	if l.Items[0].Checked == before {
		t.Error("Expected toggle to flip the checked state")
	}
	l.Toggle("1")
	if l.Items[0].Checked != before {
		t.Error("Expected double toggle to restore the original state")
	}

	// Only the targeted item changes.
	for i, item := range l.Items[1:] {
		if item.Checked != Sample().Items[i+1].Checked {
			t.Errorf("Item %s changed unexpectedly", item.ID)
		}
	}
}

func TestToggleAbsentIDIsNoOp(t *testing.T) {
	l := Sample()
	l.Toggle("does-not-exist")
	if len(l.Items) != 8 || l.CheckedCount() != 2 {
		t.Errorf("Expected list unchanged, got %d items with %d checked", len(l.Items), l.CheckedCount())
	}
}

func TestRemove(t *testing.T) {
	l := Sample()
	l.Remove("3")
	if len(l.Items) != 7 {
		t.Fatalf("Expected 7 items after removal, got %d", len(l.Items))
	}
	for _, item := range l.Items {
		if item.ID == "3" {
			t.Error("Removed item still present")
		}
	}

	// Absent id leaves the list identical.
	snapshot := fmt.Sprintf("%+v", l.Items)
	l.Remove("3")
	l.Remove("nope")
	if fmt.Sprintf("%+v", l.Items) != snapshot {
		t.Error("Expected removal of an absent id to be a no-op")
	}
}

func TestRemovePreservesOrder(t *testing.T) {
	l := Sample()
	l.Remove("2")
	want := []string{"1", "3", "4", "5", "6", "7", "8"}
	for i, item := range l.Items {
		if item.ID != want[i] {
			t.Errorf("Expected id %s at position %d, got %s", want[i], i, item.ID)
		}
	}
}

func TestFilterByCategory(t *testing.T) {
	l := Sample()

	all := l.FilterByCategory("All")
	if len(all) != 8 {
		t.Errorf("Expected All to return every item, got %d", len(all))
	}

	produce := l.FilterByCategory("Produce")
	if len(produce) != 3 {
		t.Errorf("Expected 3 produce items, got %d", len(produce))
	}
	for _, item := range produce {
		if item.Category != "Produce" {
			t.Errorf("Non-produce item in filter result: %+v", item)
		}
	}

	if frozen := l.FilterByCategory("Frozen"); len(frozen) != 0 {
		t.Errorf("Expected no frozen items, got %d", len(frozen))
	}

	// Filtering never mutates the underlying order.
	if l.Items[0].ID != "1" || len(l.Items) != 8 {
		t.Error("Filter mutated the underlying list")
	}
}

func TestCategoryCountsOmitEmpty(t *testing.T) {
	l := Sample()
	counts := l.CategoryCounts()
	if counts["Produce"] != 3 || counts["Pantry"] != 3 || counts["Dairy & Eggs"] != 1 || counts["Meat & Seafood"] != 1 {
		t.Errorf("Unexpected counts: %v", counts)
	}
	if _, present := counts["Frozen"]; present {
		t.Error("Expected empty categories to be omitted")
	}
}

func TestCompletionPercent(t *testing.T) {
	l := Sample()
	if got := l.CompletionPercent(); got != 25 {
		t.Errorf("Expected 25%% with 2 of 8 checked, got %d", got)
	}

	empty := List{}
	if got := empty.CompletionPercent(); got != 0 {
		t.Errorf("Expected 0%% for an empty list, got %d", got)
	}
}

func TestNewItemDefaults(t *testing.T) {
	item := NewItem("Mystery", "Aisle 9", "1", -3.50, false)
	if item.Category != "Other" {
		t.Errorf("Expected unknown category to become Other, got %s", item.Category)
	}
	if item.Price != 0 {
		t.Errorf("Expected negative price clamped to 0, got %f", item.Price)
	}
	if item.ID == "" {
		t.Error("Expected a generated id")
	}
}

func TestExportTextRoundTrip(t *testing.T) {
	l := Sample()
	text := l.ExportText("$")

	lines := strings.Split(text, "\n")
	if len(lines) != len(l.Items) {
		t.Fatalf("Expected %d lines, got %d", len(l.Items), len(lines))
	}
	for i, line := range lines {
		item := l.Items[i]
		checked := strings.HasPrefix(line, "✓")
		if checked != item.Checked {
			t.Errorf("Line %d: glyph says checked=%v, item says %v", i, checked, item.Checked)
		}
		if !strings.Contains(line, item.Name) || !strings.Contains(line, item.Quantity) {
			t.Errorf("Line %d missing name or quantity: %s", i, line)
		}
		if !strings.Contains(line, fmt.Sprintf("($%.2f)", item.Price)) {
			t.Errorf("Line %d missing formatted price: %s", i, line)
		}
	}

	var emptyList List
	if empty := emptyList.ExportText("$"); empty != "" {
		t.Errorf("Expected empty export for empty list, got %q", empty)
	}
}

func TestExportTextUsesCurrencySymbol(t *testing.T) {
	l := List{Items: []Item{{ID: "1", Name: "Rice", Quantity: "1 bag", Price: 3.5}}}
	text := l.ExportText("₹")
	if text != "☐ Rice - 1 bag (₹3.50)" {
		t.Errorf("Unexpected export line: %q", text)
	}
}
