package response

import (
	"time"

	"pengadaan_monitor/internal/usecase"
)

type LoginResponse struct {
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

func FromSession(s usecase.Session) LoginResponse {
	return LoginResponse{Token: s.Token, CreatedAt: s.CreatedAt}
}

// SubmitResponse answers a successful submission with the backend-assigned
// request id.
type SubmitResponse struct {
	RequestID string `json:"request_id"`
}
