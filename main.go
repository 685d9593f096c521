package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yukti-cloud/gpu-advisor/config"
	"github.com/yukti-cloud/gpu-advisor/db"
	"github.com/yukti-cloud/gpu-advisor/handlers"
	"github.com/yukti-cloud/gpu-advisor/llm"
	"github.com/yukti-cloud/gpu-advisor/logging"
	"github.com/yukti-cloud/gpu-advisor/middleware"
	"github.com/yukti-cloud/gpu-advisor/pricing"
	"github.com/yukti-cloud/gpu-advisor/repositories"
	"github.com/yukti-cloud/gpu-advisor/routes"
	"github.com/yukti-cloud/gpu-advisor/services"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()

	if err := logging.Init(config.LogLevel); err != nil {
		logging.Log.Fatal("failed to initialize logger", zap.Error(err))
	}
	defer logging.Sync()

	middleware.Init()
	db.Init()

	pricingClient := pricing.NewClient(config.PricingURL, 30*time.Second)
	llmClient := llm.NewClient(
		config.LLMEndpoint,
		config.LLMAPIKey,
		config.LLMModel,
		config.LLMTemperature,
		config.LLMMaxTokens,
		60*time.Second,
	)

	repos := repositories.New()
	svc := services.New(repos, pricingClient, llmClient, llmClient)
	h := handlers.New(svc)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(router, h)

	port := ":" + config.ServerPort
	logging.Log.Info("starting API server", zap.String("addr", port))
	if err := router.Run(port); err != nil {
		logging.Log.Fatal("server exited", zap.Error(err))
	}
}
