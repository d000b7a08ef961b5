package controllers

import (
	"net/http"

	"github.com/berkaykan001/MacroBalance/models"
	"github.com/berkaykan001/MacroBalance/services"
	"github.com/gin-gonic/gin"
)

// TargetController exposes the active target profile.
type TargetController struct {
	targets *services.TargetService
}

func NewTargetController(targets *services.TargetService) *TargetController {
	return &TargetController{targets: targets}
}

// GET /targets
func (tc *TargetController) Get(c *gin.Context) {
	c.JSON(http.StatusOK, tc.targets.Profile())
}

// PUT /targets replaces the whole profile.
func (tc *TargetController) Update(c *gin.Context) {
	var profile models.TargetProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tc.targets.Update(profile)
	c.Status(http.StatusNoContent)
}
