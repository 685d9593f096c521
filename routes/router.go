package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukti-cloud/gpu-advisor/handlers"
	"github.com/yukti-cloud/gpu-advisor/middleware"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handlers) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/register", h.Auth.Register)
	r.POST("/login", h.Auth.Login)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.POST("/recommendations", h.Recommend.Recommend)

		requests := auth.Group("/requests")
		{
			requests.POST("", h.Request.CreateRequest)
			requests.GET("", h.Request.ListRequests)
		}

		auth.POST("/chat", h.Chat.Chat)
		auth.GET("/chat/ws", h.Chat.ChatWS)
	}
}
