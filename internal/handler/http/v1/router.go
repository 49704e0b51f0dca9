package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all API v1 routes.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
	}

	points := api.Group("/points")
	points.Use(JWTAuthMiddleware(h.cfg, h.logger))
	{
		points.GET("", h.listPoints)
		points.POST("", h.createPoint)
		points.GET("/geojson", h.getGeoJSON)
		points.GET("/user/my-points", h.getMyPoints)
		points.GET("/:id", h.getPoint)
		points.PUT("/:id", h.updatePoint)
		points.DELETE("/:id", h.deletePoint)
	}

	api.GET("/system/health", h.healthCheck)
}
