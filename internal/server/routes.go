package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fashionshop-ai-gateway/internal/api"
)

func RegisterRoutes(r *gin.Engine, chatHandler *api.ChatHandler) {
	r.Use(api.CORSMiddleware())
	r.Use(api.RequestIDMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/chat", chatHandler.HandleChat)
}
