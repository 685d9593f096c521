package testutils

import (
	"github.com/gin-gonic/gin"
	"github.com/yukti-cloud/gpu-advisor/handlers"
	"github.com/yukti-cloud/gpu-advisor/routes"
)

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutes(r, h)
	return r
}
