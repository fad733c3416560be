package routes

import (
	"log"
	_ "pengadaan_monitor/docs" // This will be auto-generated
	"pengadaan_monitor/internal/adapter/http/handlers"
	"pengadaan_monitor/internal/infrastructure/sheets"
	"pengadaan_monitor/internal/metrics"
	"pengadaan_monitor/internal/usecase"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus scrape endpoint
	router.GET("/metrics", metrics.Handler())

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	gateway, err := sheets.NewGatewayFromEnv()
	if err != nil {
		log.Fatalf("Sheets gateway not configured: %v", err)
	}

	if os.Getenv("ENGINEERING_KEY") == "" {
		log.Printf("[routes] ENGINEERING_KEY is not set; engineering login will be unavailable")
	}

	requestUseCase := usecase.NewRequestUseCase(gateway)
	authUseCase := usecase.NewAuthUseCase(os.Getenv("ENGINEERING_KEY"))

	requestHandler := handlers.NewRequestHandler(requestUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler)
	addProcurementRoutes(v1, requestHandler, authUseCase)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(metrics.Middleware())
}
