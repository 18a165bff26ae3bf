package controllers

import (
	"net/http"

	"github.com/BakhatBug/Keto-Slim/middlewares"
	"github.com/BakhatBug/Keto-Slim/services"

	"github.com/gin-gonic/gin"
)

type ResultController struct {
	results *services.ResultService
}

func NewResultController(results *services.ResultService) *ResultController {
	return &ResultController{results: results}
}

type GenerateResultInput struct {
	FormSubmissionID uint `json:"formSubmissionId" binding:"required"`
}

// GenerateResult computes (or returns the already-computed) plan for a form
// submission.
func (rc *ResultController) GenerateResult(c *gin.Context) {
	var input GenerateResultInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "formSubmissionId is required"})
		return
	}

	result, err := rc.results.GenerateResult(input.FormSubmissionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": result})
}

func (rc *ResultController) GetResultByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := rc.results.GetResultByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// GetResultByFormID never triggers computation; 404 when no result exists
// yet.
func (rc *ResultController) GetResultByFormID(c *gin.Context) {
	formID, ok := parseIDParam(c, "formId")
	if !ok {
		return
	}

	result, err := rc.results.GetResultByFormID(formID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if result == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "result not found for this form submission"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

func (rc *ResultController) GetMyResults(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)
	if userID == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	results, err := rc.results.GetUserResults(*userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": len(results), "results": results})
}

func (rc *ResultController) DeleteResult(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := rc.results.DeleteResult(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "result deleted"})
}
