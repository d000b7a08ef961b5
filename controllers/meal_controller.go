package controllers

import (
	"errors"
	"net/http"

	"github.com/berkaykan001/MacroBalance/models"
	"github.com/berkaykan001/MacroBalance/services"
	"github.com/gin-gonic/gin"
)

// MealController exposes meal slots and the logged meal plans.
type MealController struct {
	plans *services.MealPlanService
}

func NewMealController(plans *services.MealPlanService) *MealController {
	return &MealController{plans: plans}
}

// GET /meals returns slot definitions with today's completion flags.
func (mc *MealController) List(c *gin.Context) {
	c.JSON(http.StatusOK, mc.plans.Meals())
}

type logMealRequest struct {
	SelectedFoods []models.SelectedFood `json:"selectedFoods" binding:"required,dive"`
}

// POST /meals/:id/log
func (mc *MealController) Log(c *gin.Context) {
	var req logMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	plan, err := mc.plans.LogMeal(c.Param("id"), req.SelectedFoods)
	if err != nil {
		if errors.Is(err, services.ErrUnknownMeal) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// GET /mealplans/today
func (mc *MealController) Today(c *gin.Context) {
	c.JSON(http.StatusOK, mc.plans.TodaysPlans())
}

// PUT /mealplans/:id replaces the selection and recomputes macros.
func (mc *MealController) Update(c *gin.Context) {
	var req logMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	plan, err := mc.plans.UpdateMealPlan(c.Param("id"), req.SelectedFoods)
	if err != nil {
		if errors.Is(err, services.ErrMealPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plan)
}

// DELETE /mealplans/:id
func (mc *MealController) Delete(c *gin.Context) {
	mc.plans.DeleteMealPlan(c.Param("id"))
	c.Status(http.StatusNoContent)
}
