package controllers

import (
	"net/http"

	"github.com/berkaykan001/MacroBalance/services"
	"github.com/gin-gonic/gin"
)

// ProgressController serves the daily progress view.
type ProgressController struct {
	progress *services.ProgressService
}

func NewProgressController(progress *services.ProgressService) *ProgressController {
	return &ProgressController{progress: progress}
}

// GET /progress/daily
func (pc *ProgressController) Daily(c *gin.Context) {
	c.JSON(http.StatusOK, pc.progress.Daily())
}

// GET /progress/breakdown
func (pc *ProgressController) Breakdown(c *gin.Context) {
	c.JSON(http.StatusOK, pc.progress.Breakdown())
}
