package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/mealcraft/backend/internal/models"
	"github.com/pageza/mealcraft/backend/internal/service"
	"github.com/pageza/mealcraft/backend/internal/spoonacular"
)

// PlanHandler serves the JSON API.
type PlanHandler struct {
	planner service.IPlanService
}

func NewPlanHandler(planner service.IPlanService) *PlanHandler {
	return &PlanHandler{planner: planner}
}

func (h *PlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/bmi", h.EvaluateBMI)
	router.POST("/plan", h.CreatePlan)
	router.GET("/options", h.ListOptions)
}

// EvaluateBMI computes the health report for a profile.
func (h *PlanHandler) EvaluateBMI(c *gin.Context) {
	var req BMIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(models.NewValidationError("body", "%v", err))
		return
	}

	report, err := h.planner.Evaluate(req.Profile())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, BMIResponse{Report: report})
}

// CreatePlan runs a full submission. Failures are reported through the
// error middleware.
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req service.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(models.NewValidationError("body", "%v", err))
		return
	}

	plan := h.planner.Plan(c.Request.Context(), &req)
	if plan.Err != nil {
		_ = c.Error(plan.Err)
		return
	}
	c.JSON(http.StatusOK, PlanResponse{Plan: plan})
}

// ListOptions returns the accepted vocabularies.
func (h *PlanHandler) ListOptions(c *gin.Context) {
	c.JSON(http.StatusOK, Options())
}

// Options collects the vocabularies shown on the form.
func Options() OptionsResponse {
	return OptionsResponse{
		Genders:        models.Genders(),
		ActivityLevels: models.ActivityLevels(),
		Conditions:     models.Conditions(),
		Allergies:      models.Allergies(),
		DietTypes:      models.DietTypes(),
		MealTypes:      spoonacular.MealTypes(),
	}
}
