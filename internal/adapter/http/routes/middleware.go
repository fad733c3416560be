package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pengadaan_monitor/internal/adapter/http/handlers"
	"pengadaan_monitor/internal/usecase"
	"pengadaan_monitor/pkg"
)

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Engineering login required", http.StatusUnauthorized)

// RequireSession guards engineering routes: a valid bearer token must
// resolve to a live session. The session value is stored on the context so
// handlers can stay ignorant of how it was obtained.
func RequireSession(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := handlers.BearerToken(c)
		session, ok := auth.Validate(token)
		if !ok || !session.Authenticated {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		c.Set("session", session)
		c.Next()
	}
}
