package controllers

import (
	"net/http"
	"strconv"

	"github.com/BakhatBug/Keto-Slim/middlewares"
	"github.com/BakhatBug/Keto-Slim/models"
	"github.com/BakhatBug/Keto-Slim/services"

	"github.com/gin-gonic/gin"
)

type FormController struct {
	forms *services.FormService
}

func NewFormController(forms *services.FormService) *FormController {
	return &FormController{forms: forms}
}

// CreateFormInput carries the quiz answers. The binding tags are the domain
// contract: anything the engine later consumes has already passed these
// ranges.
type CreateFormInput struct {
	Gender     string   `json:"gender" binding:"required,oneof=male female"`
	FatScale   *float64 `json:"fatScale" binding:"required,gte=0,lte=100"`
	BMI        *float64 `json:"bmi" binding:"required,gte=10,lte=60"`
	Calorie    *float64 `json:"calorie" binding:"required,gte=1000,lte=5000"`
	Water      *float64 `json:"water" binding:"required,gte=0.5,lte=10"`
	WeightLoss *float64 `json:"weightLoss" binding:"required,gt=0,lte=100"`
	Days       *int     `json:"days" binding:"required,gte=7,lte=365"`
}

func (fc *FormController) CreateForm(c *gin.Context) {
	var input CreateFormInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	form, err := fc.forms.CreateFormSubmission(models.FormSubmission{
		Gender:     input.Gender,
		FatScale:   *input.FatScale,
		BMI:        *input.BMI,
		Calorie:    *input.Calorie,
		Water:      *input.Water,
		WeightLoss: *input.WeightLoss,
		Days:       *input.Days,
	}, middlewares.CurrentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"form": form})
}

func (fc *FormController) GetFormByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	form, err := fc.forms.GetFormSubmissionByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"form": form})
}

func (fc *FormController) GetMyForms(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)
	if userID == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	forms, err := fc.forms.GetUserFormSubmissions(*userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": len(forms), "forms": forms})
}

// GetAllForms is the paginated admin listing.
func (fc *FormController) GetAllForms(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	forms, total, pages, err := fc.forms.GetAllFormSubmissions(page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"forms": forms,
		"total": total,
		"pages": pages,
	})
}

func (fc *FormController) DeleteForm(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := fc.forms.DeleteFormSubmission(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "form submission deleted"})
}
