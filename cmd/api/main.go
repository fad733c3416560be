package main

import (
	_ "pengadaan_monitor/docs"
	"pengadaan_monitor/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Procurement Monitoring API
// @version         1.0
// @description     Monitoring service for ship procurement requests (submission + seven-stage approval pipeline), backed by a spreadsheet web app.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the engineering session token.

func main() {
	routes.Run()
}
