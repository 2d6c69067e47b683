package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"platewise/internal/meal"
	"platewise/internal/prefs"
)

// Client is a client for the Gemini API.
type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewClient creates a new Gemini client.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	model := client.GenerativeModel("gemini-1.5-flash")
	model.SetTemperature(0.7)
	return &Client{client: client, model: model}, nil
}

// Close closes the underlying Gemini client.
func (c *Client) Close() error {
	return c.client.Close()
}

// mealPayload mirrors the JSON schema the model is asked for. Numeric fields
// are float64 so a model emitting "400.0" still decodes.
type mealPayload struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Calories    float64  `json:"calories"`
	PrepTime    float64  `json:"prepTime"`
	Servings    float64  `json:"servings"`
	Difficulty  string   `json:"difficulty"`
	Tags        []string `json:"tags"`
	Ingredients []string `json:"ingredients"`
	Price       float64  `json:"price"`
}

// GenerateRecommendations asks the model for 4 meals matching the given
// preferences. A transport-level failure is returned as an error. When the
// model responds but the text cannot be parsed into the expected schema, the
// failure is swallowed and the canonical placeholder meal is returned as a
// single-element list.
func (c *Client) GenerateRecommendations(ctx context.Context, p prefs.UserPreferences) ([]meal.Meal, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(buildPrompt(p)))
	if err != nil {
		return nil, fmt.Errorf("recommendation request failed: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("empty response from Gemini")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return nil, fmt.Errorf("unexpected response format from Gemini")
	}

	return ParseRecommendations(string(text)), nil
}

// ParseRecommendations extracts the JSON meal array from model output, which
// may be wrapped in markdown. Any parse failure yields the placeholder list;
// it never returns an empty slice or an error.
func ParseRecommendations(text string) []meal.Meal {
	startIndex := strings.Index(text, "[")
	endIndex := strings.LastIndex(text, "]")
	if startIndex == -1 || endIndex == -1 || startIndex > endIndex {
		return []meal.Meal{meal.Placeholder()}
	}

	var payloads []mealPayload
	if err := json.Unmarshal([]byte(text[startIndex:endIndex+1]), &payloads); err != nil {
		return []meal.Meal{meal.Placeholder()}
	}
	if len(payloads) == 0 {
		return []meal.Meal{meal.Placeholder()}
	}

	meals := make([]meal.Meal, 0, len(payloads))
	for _, p := range payloads {
		meals = append(meals, meal.New(
			p.Name,
			p.Description,
			int(p.Calories),
			int(p.PrepTime),
			int(p.Servings),
			meal.Difficulty(p.Difficulty),
			p.Tags,
			p.Ingredients,
			p.Price,
		))
	}
	return meals
}

func buildPrompt(p prefs.UserPreferences) string {
	allergies := strings.Join(p.Allergies, ", ")
	if allergies == "" {
		allergies = "None"
	}
	cuisines := strings.Join(p.CuisinePreferences, ", ")
	if cuisines == "" {
		cuisines = "Any"
	}

	return fmt.Sprintf(`Generate 4 personalized meal recommendations based on these preferences:
- Dietary Type: %s
- Calorie Goal: %d
- Allergies: %s
- Cuisine Preferences: %s
- Country: %s

For each meal, provide:
1. Name
2. Description (1-2 sentences)
3. Estimated calories
4. Prep time in minutes
5. Number of servings
6. Difficulty level (Easy/Medium/Hard)
7. 3-5 relevant tags
8. Main ingredients list
9. Estimated cost in local currency

Format as a JSON array with these exact fields: name, description, calories, prepTime, servings, difficulty, tags, ingredients, price. The response should be clean JSON and not contain any markdown formatting (e.g., `+"```json"+`).`,
		p.DietaryType, p.CalorieGoal, allergies, cuisines, p.Country)
}
