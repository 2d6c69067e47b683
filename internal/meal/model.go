package meal

import "math"

// Difficulty is the preparation difficulty of a meal.
type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// Meal represents a single recommended or planned food item. Meals are
// immutable once produced and are copied by value into plan slots.
type Meal struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Calories    int        `json:"calories"`
	PrepTime    int        `json:"prepTime"`
	Servings    int        `json:"servings"`
	Difficulty  Difficulty `json:"difficulty"`
	Tags        []string   `json:"tags"`
	Ingredients []string   `json:"ingredients"`
	Price       float64    `json:"price"`
}

// New builds a Meal, clamping out-of-range numeric fields instead of
// rejecting them: negative calories, prep time and price become 0, servings
// below 1 become 1, and an unknown difficulty becomes Easy.
func New(name, description string, calories, prepTime, servings int, difficulty Difficulty, tags, ingredients []string, price float64) Meal {
	if calories < 0 {
		calories = 0
	}
	if prepTime < 0 {
		prepTime = 0
	}
	if servings < 1 {
		servings = 1
	}
	if price < 0 {
		price = 0
	}
	switch difficulty {
	case Easy, Medium, Hard:
	default:
		difficulty = Easy
	}
	return Meal{
		Name:        name,
		Description: description,
		Calories:    calories,
		PrepTime:    prepTime,
		Servings:    servings,
		Difficulty:  difficulty,
		Tags:        tags,
		Ingredients: ingredients,
		Price:       price,
	}
}

// Placeholder is the canonical fallback meal substituted when recommendation
// parsing fails.
func Placeholder() Meal {
	return Meal{
		Name:        "AI-Generated Healthy Bowl",
		Description: "A nutritious bowl tailored to your preferences",
		Calories:    400,
		PrepTime:    25,
		Servings:    2,
		Difficulty:  Easy,
		Tags:        []string{"Healthy", "Balanced", "AI-Recommended"},
		Ingredients: []string{"Mixed vegetables", "Protein source", "Whole grains"},
		Price:       10.0,
	}
}

// TotalCalories sums the calories of the given meals.
func TotalCalories(meals []Meal) int {
	total := 0
	for _, m := range meals {
		total += m.Calories
	}
	return total
}

// TotalPrice sums the prices of the given meals.
func TotalPrice(meals []Meal) float64 {
	total := 0.0
	for _, m := range meals {
		total += m.Price
	}
	return total
}

// Percent returns round(part/whole*100), or 0 when whole is 0.
func Percent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}

// Ratio returns actual/target*100 without clamping; callers comparing intake
// against a goal may legitimately exceed 100.
func Ratio(actual, target int) float64 {
	if target == 0 {
		return 0
	}
	return float64(actual) / float64(target) * 100
}

// ClampPercent bounds a ratio to [0, 100] for display.
func ClampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
