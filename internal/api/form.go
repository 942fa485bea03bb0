package api

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/mealcraft/backend/internal/middleware"
	"github.com/pageza/mealcraft/backend/internal/models"
	"github.com/pageza/mealcraft/backend/internal/service"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const formTemplate = "index.tmpl"

// FormPage is the data rendered by the form template.
type FormPage struct {
	Options OptionsResponse
	Input   FormInput
	Plan    *service.Plan
	Error   string
}

// FormHandler serves the server-rendered form.
type FormHandler struct {
	planner service.IPlanService
}

func NewFormHandler(planner service.IPlanService) *FormHandler {
	return &FormHandler{planner: planner}
}

// Templates parses the embedded HTML templates.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"hasLabel": hasLabel,
	}).ParseFS(templateFS, "templates/*.tmpl"))
}

func (h *FormHandler) RegisterRoutes(router *gin.Engine) {
	router.SetHTMLTemplate(Templates())
	router.GET("/", h.ShowForm)
	router.POST("/", h.SubmitForm)
}

// ShowForm renders an empty form.
func (h *FormHandler) ShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, formTemplate, FormPage{
		Options: Options(),
		Input:   FormInput{DietType: models.DietBoth},
	})
}

// SubmitForm renders the health report and diet plan for a submission, or
// the error that stopped it.
func (h *FormHandler) SubmitForm(c *gin.Context) {
	page := FormPage{Options: Options()}

	if err := c.ShouldBind(&page.Input); err != nil {
		vErr := models.NewValidationError("form", "%v", err)
		page.Error = vErr.Error()
		c.HTML(http.StatusBadRequest, formTemplate, page)
		return
	}

	plan := h.planner.Plan(c.Request.Context(), page.Input.Request())
	page.Plan = plan
	if plan.Err != nil {
		page.Error = plan.Error
		c.HTML(middleware.StatusFor(plan.Err), formTemplate, page)
		return
	}
	c.HTML(http.StatusOK, formTemplate, page)
}

// hasLabel reports whether label is among the selected checkbox values.
func hasLabel(selected any, label any) bool {
	want := fmt.Sprint(label)
	switch values := selected.(type) {
	case []models.Condition:
		for _, v := range values {
			if string(v) == want {
				return true
			}
		}
	case []models.Allergy:
		for _, v := range values {
			if string(v) == want {
				return true
			}
		}
	}
	return false
}
