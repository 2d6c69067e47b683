// Package tracker computes weekly adherence and nutrition summaries for the
// tracker view.
package tracker

import (
	"platewise/internal/meal"
)

// MacroProgress compares actual intake of one macronutrient against its
// weekly target, in grams.
type MacroProgress struct {
	Target int `json:"target"`
	Actual int `json:"actual"`
}

// DayBreakdown is one row of the daily breakdown table.
type DayBreakdown struct {
	Day      string `json:"day"`
	Planned  int    `json:"planned"`
	Consumed int    `json:"consumed"`
	Calories int    `json:"calories"`
}

// WeekSummary is the tracker view model for a single week.
type WeekSummary struct {
	Planned        int                      `json:"planned"`
	Consumed       int                      `json:"consumed"`
	CalorieTarget  int                      `json:"calorieTarget"`
	CalorieActual  int                      `json:"calorieActual"`
	Macros         map[string]MacroProgress `json:"macros"`
	AdherencePct   int                      `json:"adherence"`
	StreakDays     int                      `json:"streak"`
	DailyBreakdown []DayBreakdown           `json:"dailyBreakdown"`
}

// Adherence is the percentage of planned meals actually consumed; 0 when
// nothing was planned.
func Adherence(consumed, planned int) int {
	return meal.Percent(consumed, planned)
}

// CalorieProgress returns the actual/target calorie ratio clamped for
// display. The raw numbers stay available on the summary.
func (w WeekSummary) CalorieProgress() float64 {
	return meal.ClampPercent(meal.Ratio(w.CalorieActual, w.CalorieTarget))
}

// ProgressPct returns the clamped display ratio for one macro.
func (m MacroProgress) ProgressPct() float64 {
	return meal.ClampPercent(meal.Ratio(m.Actual, m.Target))
}

// SampleWeek produces the demo week shown before any real tracking data
// exists. The calorie target scales with the user's daily goal.
func SampleWeek(calorieGoal int) WeekSummary {
	breakdown := []DayBreakdown{
		{Day: "Mon", Planned: 3, Consumed: 3, Calories: 1950},
		{Day: "Tue", Planned: 3, Consumed: 2, Calories: 1800},
		{Day: "Wed", Planned: 2, Consumed: 2, Calories: 2100},
		{Day: "Thu", Planned: 3, Consumed: 3, Calories: 1950},
		{Day: "Fri", Planned: 3, Consumed: 2, Calories: 1850},
		{Day: "Sat", Planned: 2, Consumed: 2, Calories: 2000},
		{Day: "Sun", Planned: 2, Consumed: 1, Calories: 2000},
	}
	planned, consumed := 0, 0
	for _, d := range breakdown {
		planned += d.Planned
		consumed += d.Consumed
	}
	return WeekSummary{
		Planned:       planned,
		Consumed:      consumed,
		CalorieTarget: calorieGoal * 7,
		CalorieActual: 13650,
		Macros: map[string]MacroProgress{
			"protein": {Target: 140, Actual: 125},
			"carbs":   {Target: 250, Actual: 230},
			"fat":     {Target: 80, Actual: 75},
		},
		AdherencePct:   Adherence(consumed, planned),
		StreakDays:     7,
		DailyBreakdown: breakdown,
	}
}
