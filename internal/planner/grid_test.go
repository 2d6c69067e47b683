package planner

import (
	"testing"

	"platewise/internal/meal"
)

func TestSetMealLastWriteWins(t *testing.T) {
	g := NewGrid()
	g.SetMeal("Monday", "Breakfast", meal.Meal{Name: "Oatmeal", Calories: 300}, "8:00 AM")
	g.SetMeal("Monday", "Breakfast", meal.Meal{Name: "Greek Yogurt Bowl", Calories: 320}, "8:30 AM")

	pm, ok := g.MealAt("Monday", "Breakfast")
	if !ok {
		t.Fatal("Expected an occupied cell")
	}
	if pm.Meal.Name != "Greek Yogurt Bowl" || pm.Time != "8:30 AM" {
		t.Errorf("Expected the second write to win, got %+v", pm)
	}

	stats := g.Stats()
	if stats.TotalMeals != 1 {
		t.Errorf("Expected 1 meal after overwrite, got %d", stats.TotalMeals)
	}
}

func TestSetMealIgnoresUnknownSlots(t *testing.T) {
	g := NewGrid()
	g.SetMeal("Funday", "Breakfast", meal.Meal{Calories: 100}, "")
	g.SetMeal("Monday", "Brunch", meal.Meal{Calories: 100}, "")

	if stats := g.Stats(); stats.TotalMeals != 0 {
		t.Errorf("Expected an empty grid, got %d meals", stats.TotalMeals)
	}
}

func TestRemoveMeal(t *testing.T) {
	g := NewGrid()
	g.SetMeal("Tuesday", "Lunch", meal.Meal{Name: "Thai Curry", Calories: 350}, "12:30 PM")
	g.RemoveMeal("Tuesday", "Lunch")

	if _, ok := g.MealAt("Tuesday", "Lunch"); ok {
		t.Error("Expected cell to be empty after removal")
	}
	// Removing again must be a no-op.
	g.RemoveMeal("Tuesday", "Lunch")
	g.RemoveMeal("Sunday", "Snack")
}

func TestWeeklyStatsFixedDenominator(t *testing.T) {
	g := NewGrid()
	g.SetMeal("Monday", "Breakfast", meal.Meal{Calories: 320}, "8:00 AM")
	g.SetMeal("Tuesday", "Lunch", meal.Meal{Calories: 450}, "12:30 PM")

	stats := g.Stats()
	if stats.TotalMeals != 2 {
		t.Errorf("Expected 2 meals, got %d", stats.TotalMeals)
	}
	if stats.TotalCalories != 770 {
		t.Errorf("Expected 770 calories, got %d", stats.TotalCalories)
	}
	// Average divides by the full 7-day week, not by planned days.
	if stats.AvgCalories != 110 {
		t.Errorf("Expected average of 110, got %d", stats.AvgCalories)
	}
	if stats.CompletionPercent != 7 {
		t.Errorf("Expected 7%% completion, got %d", stats.CompletionPercent)
	}
}

func TestStatsNeverExceedSlotCount(t *testing.T) {
	g := NewGrid()
	for _, day := range DaysOfWeek {
		for _, mt := range MealTypes {
			g.SetMeal(day, mt, meal.Meal{Calories: 100}, "")
		}
	}
	stats := g.Stats()
	if stats.TotalMeals != TotalSlots {
		t.Errorf("Expected %d meals on a full grid, got %d", TotalSlots, stats.TotalMeals)
	}
	if stats.CompletionPercent != 100 {
		t.Errorf("Expected 100%% completion, got %d", stats.CompletionPercent)
	}
}

func TestDayCaloriesEmptyDay(t *testing.T) {
	g := NewGrid()
	if got := g.DayCalories("Wednesday"); got != 0 {
		t.Errorf("Expected 0 calories for an unplanned day, got %d", got)
	}
}
