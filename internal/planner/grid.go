package planner

import (
	"math"

	"platewise/internal/meal"
)

// DaysOfWeek is the fixed Monday-first week.
var DaysOfWeek = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// MealTypes are the four slots of a planned day.
var MealTypes = []string{"Breakfast", "Lunch", "Dinner", "Snack"}

// TotalSlots is the number of cells in a weekly grid.
const TotalSlots = 28

// PlannedMeal is an occupied grid cell: a meal copy plus its display time.
type PlannedMeal struct {
	Meal meal.Meal `json:"meal"`
	Time string    `json:"time"`
}

// Grid is the sparse 7-day by meal-type matrix of planned meals. At most one
// meal occupies a (day, mealType) cell.
type Grid struct {
	Days map[string]map[string]PlannedMeal `json:"days"`
}

// WeeklyStats aggregates a grid. AvgCalories always divides by the fixed
// 7-day week, not by the number of days with meals planned.
type WeeklyStats struct {
	TotalMeals        int `json:"totalMeals"`
	TotalCalories     int `json:"totalCalories"`
	AvgCalories       int `json:"avgCalories"`
	CompletionPercent int `json:"completionPercent"`
}

// NewGrid returns an empty grid.
func NewGrid() *Grid {
	return &Grid{Days: map[string]map[string]PlannedMeal{}}
}

// ValidDay reports whether day names one of the seven week days.
func ValidDay(day string) bool {
	for _, d := range DaysOfWeek {
		if d == day {
			return true
		}
	}
	return false
}

// ValidMealType reports whether mealType names one of the four slots.
func ValidMealType(mealType string) bool {
	for _, t := range MealTypes {
		if t == mealType {
			return true
		}
	}
	return false
}

// SetMeal places a meal in the (day, mealType) cell, unconditionally
// overwriting any existing content. Unknown days or meal types are ignored.
func (g *Grid) SetMeal(day, mealType string, m meal.Meal, displayTime string) {
	if !ValidDay(day) || !ValidMealType(mealType) {
		return
	}
	if g.Days == nil {
		g.Days = map[string]map[string]PlannedMeal{}
	}
	if g.Days[day] == nil {
		g.Days[day] = map[string]PlannedMeal{}
	}
	g.Days[day][mealType] = PlannedMeal{Meal: m, Time: displayTime}
}

// RemoveMeal clears the (day, mealType) cell. Clearing an empty cell is a
// no-op.
func (g *Grid) RemoveMeal(day, mealType string) {
	if g.Days == nil || g.Days[day] == nil {
		return
	}
	delete(g.Days[day], mealType)
	if len(g.Days[day]) == 0 {
		delete(g.Days, day)
	}
}

// MealAt returns the cell content and whether the cell is occupied.
func (g *Grid) MealAt(day, mealType string) (PlannedMeal, bool) {
	if g.Days == nil {
		return PlannedMeal{}, false
	}
	pm, ok := g.Days[day][mealType]
	return pm, ok
}

// DayCalories sums the calories planned for a day, treating empty slots as 0.
func (g *Grid) DayCalories(day string) int {
	total := 0
	for _, pm := range g.Days[day] {
		total += pm.Meal.Calories
	}
	return total
}

// Stats computes the weekly aggregates over all 28 cells.
func (g *Grid) Stats() WeeklyStats {
	totalMeals := 0
	totalCalories := 0
	for _, day := range DaysOfWeek {
		totalMeals += len(g.Days[day])
		totalCalories += g.DayCalories(day)
	}
	return WeeklyStats{
		TotalMeals:        totalMeals,
		TotalCalories:     totalCalories,
		AvgCalories:       int(math.Round(float64(totalCalories) / 7)),
		CompletionPercent: meal.Percent(totalMeals, TotalSlots),
	}
}
