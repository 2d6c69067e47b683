package prefs

// UserPreferences represents a user's dietary profile. The record is always
// saved wholesale; there is no partial patch.
type UserPreferences struct {
	DietaryType        string   `json:"dietaryType"`
	CalorieGoal        int      `json:"calorieGoal"`
	Allergies          []string `json:"allergies"`
	CuisinePreferences []string `json:"cuisinePreferences"`
	Country            string   `json:"country"`
	Currency           string   `json:"currency"`
}

// DefaultCalorieGoal is used when a saved record carries no calorie goal.
const DefaultCalorieGoal = 2000

const (
	MinCalorieGoal = 1000
	MaxCalorieGoal = 5000
)

// DietaryTypes lists the supported dietary profiles.
var DietaryTypes = []string{
	"Standard",
	"Vegetarian",
	"Vegan",
	"Keto",
	"Paleo",
	"Mediterranean",
	"Low-Carb",
	"High-Protein",
	"Gluten-Free",
	"Dairy-Free",
}

// CuisineTypes lists the cuisines a user can mark as preferred.
var CuisineTypes = []string{
	"Italian",
	"Mexican",
	"Chinese",
	"Indian",
	"Japanese",
	"Thai",
	"Mediterranean",
	"American",
	"French",
	"Korean",
	"Middle Eastern",
}

// CommonAllergies lists the allergies a user can flag.
var CommonAllergies = []string{"Nuts", "Shellfish", "Dairy", "Eggs", "Soy", "Gluten", "Fish", "Sesame"}

// Country pairs a country code with its display name and currency.
type Country struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Currency string `json:"currency"`
}

// Countries is the fixed table of supported countries.
var Countries = []Country{
	{Code: "US", Name: "United States", Currency: "USD"},
	{Code: "CA", Name: "Canada", Currency: "CAD"},
	{Code: "GB", Name: "United Kingdom", Currency: "GBP"},
	{Code: "EU", Name: "European Union", Currency: "EUR"},
	{Code: "AU", Name: "Australia", Currency: "AUD"},
	{Code: "IN", Name: "India", Currency: "INR"},
	{Code: "JP", Name: "Japan", Currency: "JPY"},
}

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"CAD": "C$",
	"AUD": "A$",
	"INR": "₹",
	"JPY": "¥",
}

// CurrencyFor returns the currency for a country code, or "USD" for an
// unknown code.
func CurrencyFor(countryCode string) string {
	for _, c := range Countries {
		if c.Code == countryCode {
			return c.Currency
		}
	}
	return "USD"
}

// SymbolFor returns the display symbol for a currency code. Unknown codes
// fall back to "$"; no error is ever raised.
func SymbolFor(currency string) string {
	if sym, ok := currencySymbols[currency]; ok {
		return sym
	}
	return "$"
}

// Normalize brings a preference record into its valid form: the calorie goal
// defaults to DefaultCalorieGoal when unset and is clamped to
// [MinCalorieGoal, MaxCalorieGoal], unknown enum values are dropped, an
// unknown country falls back to "US", and the currency is always re-derived
// from the country. Invalid input is never an error.
func (p *UserPreferences) Normalize() {
	if p.CalorieGoal == 0 {
		p.CalorieGoal = DefaultCalorieGoal
	}
	if p.CalorieGoal < MinCalorieGoal {
		p.CalorieGoal = MinCalorieGoal
	}
	if p.CalorieGoal > MaxCalorieGoal {
		p.CalorieGoal = MaxCalorieGoal
	}

	if !contains(DietaryTypes, p.DietaryType) {
		p.DietaryType = "Standard"
	}
	p.Allergies = keepKnown(p.Allergies, CommonAllergies)
	p.CuisinePreferences = keepKnown(p.CuisinePreferences, CuisineTypes)

	if !knownCountry(p.Country) {
		p.Country = "US"
	}
	p.Currency = CurrencyFor(p.Country)
}

// Default returns the preference record a user starts with before their
// first save.
func Default() UserPreferences {
	return UserPreferences{
		DietaryType:        "Standard",
		CalorieGoal:        DefaultCalorieGoal,
		Allergies:          []string{},
		CuisinePreferences: []string{},
		Country:            "US",
		Currency:           "USD",
	}
}

func knownCountry(code string) bool {
	for _, c := range Countries {
		if c.Code == code {
			return true
		}
	}
	return false
}

func contains(allowed []string, v string) bool {
	for _, a := range allowed {
		if a == v {
			return true
		}
	}
	return false
}

func keepKnown(values, allowed []string) []string {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if contains(allowed, v) {
			kept = append(kept, v)
		}
	}
	return kept
}
