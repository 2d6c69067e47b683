package grocery

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"platewise/internal/meal"
)

// Categories is the fixed set of grocery categories.
var Categories = []string{
	"Produce",
	"Meat & Seafood",
	"Dairy & Eggs",
	"Pantry",
	"Frozen",
	"Beverages",
	"Snacks",
	"Other",
}

// Item is a single grocery list entry.
type Item struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Quantity  string  `json:"quantity"`
	Price     float64 `json:"price"`
	Checked   bool    `json:"checked"`
	Essential bool    `json:"essential"`
}

// List holds grocery items in insertion order.
type List struct {
	Items []Item `json:"items"`
}

// NewItem builds an Item with a fresh id. Unknown categories become "Other"
// and a negative price becomes 0.
func NewItem(name, category, quantity string, price float64, essential bool) Item {
	if !validCategory(category) {
		category = "Other"
	}
	if price < 0 {
		price = 0
	}
	return Item{
		ID:        uuid.NewString(),
		Name:      name,
		Category:  category,
		Quantity:  quantity,
		Price:     price,
		Essential: essential,
	}
}

// Add appends an item to the end of the list.
func (l *List) Add(item Item) {
	l.Items = append(l.Items, item)
}

// Toggle flips the checked state of the item with the given id, leaving all
// other items untouched. An absent id is a no-op.
func (l *List) Toggle(id string) {
	for i := range l.Items {
		if l.Items[i].ID == id {
			l.Items[i].Checked = !l.Items[i].Checked
			return
		}
	}
}

// Remove deletes the item with the given id. Removing an absent id is a
// no-op.
func (l *List) Remove(id string) {
	for i := range l.Items {
		if l.Items[i].ID == id {
			l.Items = append(l.Items[:i], l.Items[i+1:]...)
			return
		}
	}
}

// FilterByCategory returns the items in a category, preserving list order.
// "All" returns every item. The underlying list is never mutated.
func (l *List) FilterByCategory(category string) []Item {
	if category == "All" {
		return append([]Item(nil), l.Items...)
	}
	var filtered []Item
	for _, item := range l.Items {
		if item.Category == category {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// CategoryCounts returns item counts per category, omitting categories with
// no items.
func (l *List) CategoryCounts() map[string]int {
	counts := map[string]int{}
	for _, item := range l.Items {
		counts[item.Category]++
	}
	return counts
}

// TotalPrice sums the prices of all items.
func (l *List) TotalPrice() float64 {
	total := 0.0
	for _, item := range l.Items {
		total += item.Price
	}
	return total
}

// CheckedCount returns the number of checked items.
func (l *List) CheckedCount() int {
	count := 0
	for _, item := range l.Items {
		if item.Checked {
			count++
		}
	}
	return count
}

// CompletionPercent is the rounded percentage of checked items; 0 for an
// empty list.
func (l *List) CompletionPercent() int {
	return meal.Percent(l.CheckedCount(), len(l.Items))
}

// ExportText renders the list as plain text, one item per line in list
// order, with a checkbox glyph and the price in the given currency symbol.
func (l *List) ExportText(symbol string) string {
	lines := make([]string, 0, len(l.Items))
	for _, item := range l.Items {
		glyph := "☐"
		if item.Checked {
			glyph = "✓"
		}
		lines = append(lines, fmt.Sprintf("%s %s - %s (%s%.2f)", glyph, item.Name, item.Quantity, symbol, item.Price))
	}
	return strings.Join(lines, "\n")
}

// Sample returns the starter list a fresh account is seeded with.
func Sample() List {
	return List{Items: []Item{
		{ID: "1", Name: "Greek Yogurt", Category: "Dairy & Eggs", Quantity: "2 containers", Price: 6.99, Essential: true},
		{ID: "2", Name: "Quinoa", Category: "Pantry", Quantity: "1 bag", Price: 4.50, Essential: true},
		{ID: "3", Name: "Salmon Fillet", Category: "Meat & Seafood", Quantity: "1 lb", Price: 12.99, Essential: true},
		{ID: "4", Name: "Avocados", Category: "Produce", Quantity: "3 pieces", Price: 3.99, Checked: true},
		{ID: "5", Name: "Cherry Tomatoes", Category: "Produce", Quantity: "1 container", Price: 2.99},
		{ID: "6", Name: "Asparagus", Category: "Produce", Quantity: "1 bunch", Price: 3.49, Essential: true},
		{ID: "7", Name: "Coconut Milk", Category: "Pantry", Quantity: "2 cans", Price: 3.98, Essential: true},
		{ID: "8", Name: "Olive Oil", Category: "Pantry", Quantity: "1 bottle", Price: 8.99, Checked: true},
	}}
}

func validCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
