package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/berkaykan001/MacroBalance/models"
	"github.com/berkaykan001/MacroBalance/services"
	"github.com/gin-gonic/gin"
)

// FoodController exposes the food catalog to the presentation layer.
type FoodController struct {
	catalog *services.CatalogService
}

func NewFoodController(catalog *services.CatalogService) *FoodController {
	return &FoodController{catalog: catalog}
}

// GET /foods?q=chicken
// With q present the term is remembered as the active filter; without it
// the current filter state is returned.
func (fc *FoodController) List(c *gin.Context) {
	if q, ok := c.GetQuery("q"); ok {
		c.JSON(http.StatusOK, fc.catalog.Search(q))
		return
	}
	c.JSON(http.StatusOK, fc.catalog.Filtered())
}

// GET /foods/recent?limit=5
func (fc *FoodController) Recent(c *gin.Context) {
	limit := 0
	if v, ok := c.GetQuery("limit"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
		limit = n
	}
	c.JSON(http.StatusOK, fc.catalog.RecentlyUsed(limit))
}

// GET /foods/categories
func (fc *FoodController) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, fc.catalog.Categories())
}

// GET /foods/category/:category
func (fc *FoodController) ByCategory(c *gin.Context) {
	c.JSON(http.StatusOK, fc.catalog.GetByCategory(c.Param("category")))
}

// GET /foods/:id
func (fc *FoodController) Get(c *gin.Context) {
	food, ok := fc.catalog.GetByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
		return
	}
	c.JSON(http.StatusOK, food)
}

type addFoodRequest struct {
	Name             string           `json:"name" binding:"required"`
	Category         string           `json:"category" binding:"required"`
	NutritionPer100g models.Nutrition `json:"nutritionPer100g"`
}

// POST /foods
func (fc *FoodController) Add(c *gin.Context) {
	var req addFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	food := fc.catalog.Add(models.Food{
		Name:             req.Name,
		Category:         req.Category,
		NutritionPer100g: req.NutritionPer100g,
	})
	c.JSON(http.StatusCreated, food)
}

// PATCH /foods/:id
// Merge patch: absent fields keep their value. Patching an unknown id is
// a no-op by design, so this always answers 204.
func (fc *FoodController) Update(c *gin.Context) {
	var patch models.FoodPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fc.catalog.Update(c.Param("id"), patch)
	c.Status(http.StatusNoContent)
}

// DELETE /foods/:id
func (fc *FoodController) Delete(c *gin.Context) {
	fc.catalog.Remove(c.Param("id"))
	c.Status(http.StatusNoContent)
}

type createDishRequest struct {
	Name        string              `json:"name" binding:"required"`
	Ingredients []models.Ingredient `json:"ingredients" binding:"required,min=1,dive"`
}

// POST /foods/dishes
func (fc *FoodController) CreateDish(c *gin.Context) {
	var req createDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	dish, err := fc.catalog.CreateDish(req.Name, req.Ingredients)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, services.ErrUnknownIngredient) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dish)
}
