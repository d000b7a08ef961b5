package routes

import (
	"github.com/berkaykan001/MacroBalance/controllers"
	"github.com/berkaykan001/MacroBalance/services"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires the HTTP surface over the stores. Handlers hold their
// service dependencies explicitly; no package-level state.
func SetupRouter(
	catalog *services.CatalogService,
	plans *services.MealPlanService,
	targets *services.TargetService,
	progress *services.ProgressService,
	analytics *services.AnalyticsService,
) *gin.Engine {
	r := gin.Default()

	foodCtl := controllers.NewFoodController(catalog)
	mealCtl := controllers.NewMealController(plans)
	targetCtl := controllers.NewTargetController(targets)
	progressCtl := controllers.NewProgressController(progress)
	analyticsCtl := controllers.NewAnalyticsController(analytics)

	foods := r.Group("/foods")
	{
		foods.GET("", foodCtl.List)
		foods.GET("/recent", foodCtl.Recent)
		foods.GET("/categories", foodCtl.Categories)
		foods.GET("/category/:category", foodCtl.ByCategory)
		foods.GET("/:id", foodCtl.Get)
		foods.POST("", foodCtl.Add)
		foods.PATCH("/:id", foodCtl.Update)
		foods.DELETE("/:id", foodCtl.Delete)
		foods.POST("/dishes", foodCtl.CreateDish)
	}

	r.GET("/meals", mealCtl.List)
	r.POST("/meals/:id/log", mealCtl.Log)

	mealplans := r.Group("/mealplans")
	{
		mealplans.GET("/today", mealCtl.Today)
		mealplans.PUT("/:id", mealCtl.Update)
		mealplans.DELETE("/:id", mealCtl.Delete)
	}

	r.GET("/targets", targetCtl.Get)
	r.PUT("/targets", targetCtl.Update)

	r.GET("/progress/daily", progressCtl.Daily)
	r.GET("/progress/breakdown", progressCtl.Breakdown)

	r.GET("/analytics/daily", analyticsCtl.Daily)
	r.GET("/analytics/summary", analyticsCtl.Summary)

	return r
}
