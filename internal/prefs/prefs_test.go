package prefs

import "testing"

func TestNormalizeDerivesCurrencyFromCountry(t *testing.T) {
	p := UserPreferences{
		DietaryType:        "Vegan",
		CalorieGoal:        1800,
		Allergies:          []string{"Nuts"},
		CuisinePreferences: []string{"Thai"},
		Country:            "CA",
		Currency:           "JPY", // stale, must be overwritten
	}
	p.Normalize()

	if p.Currency != "CAD" {
		t.Errorf("Expected currency CAD, got %s", p.Currency)
	}
	if SymbolFor(p.Currency) != "C$" {
		t.Errorf("Expected symbol C$, got %s", SymbolFor(p.Currency))
	}
}

func TestNormalizeClampsCalorieGoal(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{0, 2000},
		{500, 1000},
		{9999, 5000},
		{2500, 2500},
	}
	for _, c := range cases {
		p := UserPreferences{CalorieGoal: c.in}
		p.Normalize()
		if p.CalorieGoal != c.want {
			t.Errorf("CalorieGoal %d: expected %d, got %d", c.in, c.want, p.CalorieGoal)
		}
	}
}

func TestNormalizeDropsUnknownEnumValues(t *testing.T) {
	p := UserPreferences{
		DietaryType:        "Carnivore",
		Allergies:          []string{"Nuts", "Pollen"},
		CuisinePreferences: []string{"Thai", "Martian"},
		Country:            "XX",
	}
	p.Normalize()

	if p.DietaryType != "Standard" {
		t.Errorf("Expected dietary type Standard, got %s", p.DietaryType)
	}
	if len(p.Allergies) != 1 || p.Allergies[0] != "Nuts" {
		t.Errorf("Expected allergies [Nuts], got %v", p.Allergies)
	}
	if len(p.CuisinePreferences) != 1 || p.CuisinePreferences[0] != "Thai" {
		t.Errorf("Expected cuisines [Thai], got %v", p.CuisinePreferences)
	}
	if p.Country != "US" || p.Currency != "USD" {
		t.Errorf("Expected US/USD fallback, got %s/%s", p.Country, p.Currency)
	}
}

func TestSymbolForUnknownCurrency(t *testing.T) {
	if sym := SymbolFor("XYZ"); sym != "$" {
		t.Errorf("Expected $ fallback, got %s", sym)
	}
}

func TestCurrencyForEveryCountry(t *testing.T) {
	for _, c := range Countries {
		if CurrencyFor(c.Code) != c.Currency {
			t.Errorf("CurrencyFor(%s): expected %s, got %s", c.Code, c.Currency, CurrencyFor(c.Code))
		}
		if SymbolFor(c.Currency) == "" {
			t.Errorf("No symbol for %s", c.Currency)
		}
	}
	if CurrencyFor("ZZ") != "USD" {
		t.Errorf("Expected USD fallback for unknown country")
	}
}
