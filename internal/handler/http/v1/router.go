package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует маршруты сервиса
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/send-sos", h.sendSOS)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
