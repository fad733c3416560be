package request

// LoginRequest carries the engineering actor's shared password.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}
