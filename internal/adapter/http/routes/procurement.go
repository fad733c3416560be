package routes

import (
	"pengadaan_monitor/internal/adapter/http/handlers"
	"pengadaan_monitor/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	PathRequests = "/requests"
	PathAuth     = "/auth"
)

func addProcurementRoutes(rg *gin.RouterGroup, requestHandler *handlers.RequestHandler, auth usecase.IAuthUseCase) {
	requests := rg.Group(PathRequests)
	{
		// Ship actor: public submission.
		requests.POST("", requestHandler.SubmitRequest)

		// Engineering actor: monitoring and stage updates, behind login.
		guarded := requests.Group("", RequireSession(auth))
		{
			guarded.GET("", requestHandler.ListRequests)
			guarded.GET("/:request_id", requestHandler.GetRequest)
			guarded.PATCH("/:request_id/stages", requestHandler.UpdateStages)
		}
	}
}

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
	}
}
