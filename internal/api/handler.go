package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"platewise/internal/account"
	"platewise/internal/grocery"
	"platewise/internal/meal"
	"platewise/internal/planner"
	"platewise/internal/platform/logger"
	"platewise/internal/prefs"
	"platewise/internal/session"
	"platewise/internal/tracker"
)

// RecommendationClient defines the interface for the meal recommendation
// service.
type RecommendationClient interface {
	GenerateRecommendations(ctx context.Context, p prefs.UserPreferences) ([]meal.Meal, error)
}

// Handler handles HTTP requests.
type Handler struct {
	Recommender RecommendationClient
	Accounts    account.Store
	Sessions    *session.Manager
	Log         *logger.Logger
}

// NewHandler creates a new Handler.
func NewHandler(recommender RecommendationClient, accounts account.Store, sessions *session.Manager, log *logger.Logger) *Handler {
	return &Handler{Recommender: recommender, Accounts: accounts, Sessions: sessions, Log: log}
}

// Register attaches all routes to the router.
func (h *Handler) Register(r *gin.Engine) {
	r.POST("/auth/login", h.Login)
	r.POST("/auth/register", h.RegisterUser)

	authed := r.Group("/", h.AuthRequired())
	authed.POST("/auth/logout", h.Logout)
	authed.GET("/preferences", h.GetPreferences)
	authed.PUT("/preferences", h.SavePreferences)
	authed.POST("/recommendations", h.Recommendations)
	authed.GET("/plan", h.GetPlan)
	authed.GET("/plan/stats", h.PlanStats)
	authed.PUT("/plan/:day/:mealType", h.SetPlanMeal)
	authed.DELETE("/plan/:day/:mealType", h.RemovePlanMeal)
	authed.GET("/grocery", h.GetGroceries)
	authed.GET("/grocery/summary", h.GrocerySummary)
	authed.GET("/grocery/export", h.ExportGroceries)
	authed.POST("/grocery", h.AddGroceryItem)
	authed.POST("/grocery/:id/toggle", h.ToggleGroceryItem)
	authed.DELETE("/grocery/:id", h.RemoveGroceryItem)
	authed.GET("/tracker", h.Tracker)
}

const userKey = "sessionUser"

// AuthRequired resolves the bearer token to a session user.
func (h *Handler) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		user, err := h.Sessions.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
			return
		}
		c.Set(userKey, user)
		c.Next()
	}
}

func (h *Handler) sessionUser(c *gin.Context) session.User {
	return c.MustGet(userKey).(session.User)
}

// record loads the caller's account record, responding with an error when it
// cannot be found.
func (h *Handler) record(c *gin.Context) (*account.Record, bool) {
	user := h.sessionUser(c)
	rec, err := h.Accounts.Get(c.Request.Context(), user.ID)
	if err != nil {
		h.Log.Error("failed to load account", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage error"})
		return nil, false
	}
	if rec == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "account not found"})
		return nil, false
	}
	if rec.Plan == nil {
		rec.Plan = planner.NewGrid()
	}
	return rec, true
}

// save replaces the caller's stored record wholesale.
func (h *Handler) save(c *gin.Context, rec *account.Record) bool {
	if err := h.Accounts.Save(c.Request.Context(), rec); err != nil {
		h.Log.Error("failed to save account", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage error"})
		return false
	}
	return true
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Login signs a user in. Authentication is mocked: any email/password pair
// is accepted and the identity is derived from the email alone.
func (h *Handler) Login(c *gin.Context) {
	var creds credentials
	if err := c.ShouldBindJSON(&creds); err != nil || creds.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	user := session.NewUser(creds.Email, "")
	rec, err := h.Accounts.Get(c.Request.Context(), user.ID)
	if err != nil {
		h.Log.Error("failed to load account", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage error"})
		return
	}
	if rec == nil {
		rec = account.NewRecord(user)
		if err := h.Accounts.Save(c.Request.Context(), rec); err != nil {
			h.Log.Error("failed to create account", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "storage error"})
			return
		}
	}

	token, err := h.Sessions.Issue(rec.User)
	if err != nil {
		h.Log.Error("failed to issue token", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start session"})
		return
	}

	h.Log.Info("user logged in", "user_id", rec.User.ID)
	c.JSON(http.StatusOK, gin.H{"token": token, "user": rec.User})
}

// RegisterUser creates a fresh account. Like login, no real credential
// checking takes place; a re-registration resets the stored record.
func (h *Handler) RegisterUser(c *gin.Context) {
	var creds credentials
	if err := c.ShouldBindJSON(&creds); err != nil || creds.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	user := session.NewUser(creds.Email, creds.Name)
	rec := account.NewRecord(user)
	if !h.save(c, rec) {
		return
	}

	token, err := h.Sessions.Issue(user)
	if err != nil {
		h.Log.Error("failed to issue token", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start session"})
		return
	}

	h.Log.Info("user registered", "user_id", user.ID)
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// Logout deletes the stored account record wholesale, mirroring the original
// client clearing its single storage key.
func (h *Handler) Logout(c *gin.Context) {
	user := h.sessionUser(c)
	if err := h.Accounts.Delete(c.Request.Context(), user.ID); err != nil {
		h.Log.Error("failed to delete account", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// GetPreferences returns the stored preference record, or the defaults when
// the user has never saved one.
func (h *Handler) GetPreferences(c *gin.Context) {
	rec, ok := h.record(c)
	if !ok {
		return
	}
	if rec.User.Preferences == nil {
		c.JSON(http.StatusOK, prefs.Default())
		return
	}
	c.JSON(http.StatusOK, rec.User.Preferences)
}

// SavePreferences replaces the whole preference record. A save always
// supplies every field; invalid values are silently normalized.
func (h *Handler) SavePreferences(c *gin.Context) {
	var p prefs.UserPreferences
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid preferences payload"})
		return
	}
	p.Normalize()

	rec, ok := h.record(c)
	if !ok {
		return
	}
	rec.User.Preferences = &p
	if !h.save(c, rec) {
		return
	}
	c.JSON(http.StatusOK, p)
}

type recommendationRequest struct {
	Preferences *prefs.UserPreferences `json:"preferences"`
}

// Recommendations generates AI meal recommendations. Preferences supplied in
// the body win over the stored record; with neither, the defaults are used.
func (h *Handler) Recommendations(c *gin.Context) {
	rec, ok := h.record(c)
	if !ok {
		return
	}

	var req recommendationRequest
	_ = c.ShouldBindJSON(&req) // empty body is fine

	p := prefs.Default()
	if rec.User.Preferences != nil {
		p = *rec.User.Preferences
	}
	if req.Preferences != nil {
		p = *req.Preferences
		p.Normalize()
	}

	// Create a context with a 45-second timeout for the external call
	ctx, cancel := context.WithTimeout(c.Request.Context(), 45*time.Second)
	defer cancel()

	meals, err := h.Recommender.GenerateRecommendations(ctx, p)
	if err != nil {
		h.Log.Error("recommendation request failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate recommendations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": meals})
}

// GetPlan returns the weekly meal plan grid.
func (h *Handler) GetPlan(c *gin.Context) {
	rec, ok := h.record(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, rec.Plan)
}

// PlanStats returns the weekly aggregates.
func (h *Handler) PlanStats(c *gin.Context) {
	rec, ok := h.record(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, rec.Plan.Stats())
}

type setMealRequest struct {
	Meal meal.Meal `json:"meal"`
	Time string    `json:"time"`
}

// SetPlanMeal places a meal in a grid cell, overwriting unconditionally.
func (h *Handler) SetPlanMeal(c *gin.Context) {
	day := c.Param("day")
	mealType := c.Param("mealType")
	if !planner.ValidDay(day) || !planner.ValidMealType(mealType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown plan slot %s/%s", day, mealType)})
		return
	}

	var req setMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal payload"})
		return
	}

	rec, ok := h.record(c)
	if !ok {
		return
	}
	m := meal.New(req.Meal.Name, req.Meal.Description, req.Meal.Calories, req.Meal.PrepTime,
		req.Meal.Servings, req.Meal.Difficulty, req.Meal.Tags, req.Meal.Ingredients, req.Meal.Price)
	rec.Plan.SetMeal(day, mealType, m, req.Time)
	if !h.save(c, rec) {
		return
	}
	c.JSON(http.StatusOK, rec.Plan)
}

// RemovePlanMeal clears a grid cell; clearing an empty cell succeeds.
func (h *Handler) RemovePlanMeal(c *gin.Context) {
	day := c.Param("day")
	mealType := c.Param("mealType")
	if !planner.ValidDay(day) || !planner.ValidMealType(mealType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown plan slot %s/%s", day, mealType)})
		return
	}

	rec, ok := h.record(c)
	if !ok {
		return
	}
	rec.Plan.RemoveMeal(day, mealType)
	if !h.save(c, rec) {
		return
	}
	c.JSON(http.StatusOK, rec.Plan)
}

// GetGroceries returns the grocery list, optionally filtered by category.
func (h *Handler) GetGroceries(c *gin.Context) {
	rec, ok := h.record(c)
	if !ok {
		return
	}
	category := c.Query("category")
	if category == "" {
		category = "All"
	}
	items := rec.Groceries.FilterByCategory(category)
	if items == nil {
		items = []grocery.Item{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GrocerySummary returns list-level aggregates for the summary cards.
func (h *Handler) GrocerySummary(c *gin.Context) {
	rec, ok := h.record(c)
	if !ok {
		return
	}
	currency := "USD"
	if rec.User.Preferences != nil {
		currency = rec.User.Preferences.Currency
	}
	c.JSON(http.StatusOK, gin.H{
		"totalItems":        len(rec.Groceries.Items),
		"checkedItems":      rec.Groceries.CheckedCount(),
		"completionPercent": rec.Groceries.CompletionPercent(),
		"totalPrice":        rec.Groceries.TotalPrice(),
		"currency":          currency,
		"symbol":            prefs.SymbolFor(currency),
		"categoryCounts":    rec.Groceries.CategoryCounts(),
	})
}

type addItemRequest struct {
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Quantity  string  `json:"quantity"`
	Price     float64 `json:"price"`
	Essential bool    `json:"essential"`
}

// AddGroceryItem appends an item to the list.
func (h *Handler) AddGroceryItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item name is required"})
		return
	}

	rec, ok := h.record(c)
	if !ok {
		return
	}
	item := grocery.NewItem(req.Name, req.Category, req.Quantity, req.Price, req.Essential)
	rec.Groceries.Add(item)
	if !h.save(c, rec) {
		return
	}
	c.JSON(http.StatusOK, item)
}

// ToggleGroceryItem flips the checked state of one item. Unknown ids are a
// no-op, not an error.
func (h *Handler) ToggleGroceryItem(c *gin.Context) {
	rec, ok := h.record(c)
	if !ok {
		return
	}
	rec.Groceries.Toggle(c.Param("id"))
	if !h.save(c, rec) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": rec.Groceries.Items})
}

// RemoveGroceryItem deletes one item by id. Unknown ids are a no-op.
func (h *Handler) RemoveGroceryItem(c *gin.Context) {
	rec, ok := h.record(c)
	if !ok {
		return
	}
	rec.Groceries.Remove(c.Param("id"))
	if !h.save(c, rec) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": rec.Groceries.Items})
}

// ExportGroceries downloads the list as a plain-text file.
func (h *Handler) ExportGroceries(c *gin.Context) {
	rec, ok := h.record(c)
	if !ok {
		return
	}
	currency := "USD"
	if rec.User.Preferences != nil {
		currency = rec.User.Preferences.Currency
	}
	text := rec.Groceries.ExportText(prefs.SymbolFor(currency))

	c.Header("Content-Disposition", `attachment; filename="grocery-list.txt"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}

// Tracker returns the weekly adherence summary. Until real consumption
// tracking lands this serves the sample week scaled to the user's goal.
func (h *Handler) Tracker(c *gin.Context) {
	rec, ok := h.record(c)
	if !ok {
		return
	}
	goal := prefs.DefaultCalorieGoal
	if rec.User.Preferences != nil {
		goal = rec.User.Preferences.CalorieGoal
	}
	c.JSON(http.StatusOK, tracker.SampleWeek(goal))
}
