package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	auth := APIKeyAuthMiddleware(h.cfg, h.logger)

	// Маршруты для треков туристов
	locations := api.Group("/locations")
	{
		locations.POST("/update", h.updateLocation)
		locations.GET("/latest", auth, h.latestPositions)
	}

	// Тревожная кнопка доступна без ключа
	api.POST("/panic", h.triggerPanic)

	// Маршруты для оповещений участков
	api.GET("/alerts/station/:stationId", auth, h.alertsByStation)

	// Маршруты для управления туристами
	tourists := api.Group("/tourists", auth)
	{
		tourists.POST("", h.createTourist)
		tourists.GET("", h.listTourists)
		tourists.GET("/stats", h.getStats)
		tourists.GET("/:touristId", h.getTourist)
		tourists.PATCH("/:touristId/safety-score", h.adjustSafetyScore)
	}

	// Маршруты для управления зонами риска
	zones := api.Group("/risk-zones", auth)
	{
		zones.POST("", h.createRiskZone)
		zones.GET("", h.listRiskZones)
		zones.GET("/:id", h.getRiskZone)
		zones.DELETE("/:id", h.deleteRiskZone)
	}

	// Маршруты для управления полицейскими участками
	stations := api.Group("/police-stations", auth)
	{
		stations.POST("", h.createPoliceStation)
		stations.GET("", h.listPoliceStations)
		stations.GET("/nearby", h.nearbyPoliceStations)
		stations.GET("/:id", h.getPoliceStation)
		stations.GET("/:id/tourists", h.touristsInJurisdiction)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
