package usecase

import (
	"crypto/subtle"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"pengadaan_monitor/internal/metrics"
)

var (
	ErrAuthNotConfigured = errors.New("engineering key not configured")
	ErrInvalidPassword   = errors.New("invalid password")
)

// Session is the capability issued to a logged-in engineering user. It is an
// explicit value passed around via bearer token, not ambient state; the
// domain and normalization layers never see it.
type Session struct {
	Token         string
	Authenticated bool
	CreatedAt     time.Time
}

// sessionTTL bounds how long an engineering login stays valid.
const sessionTTL = 12 * time.Hour

// IAuthUseCase handles the single shared-key login of the engineering actor.
type IAuthUseCase interface {
	Login(password string) (Session, error)
	Validate(token string) (Session, bool)
	Logout(token string)
}

// AuthUseCase keeps the session registry in memory. Sessions do not survive
// a restart; the service holds no durable state of any kind.
type AuthUseCase struct {
	key      string
	mu       sync.Mutex
	sessions map[string]Session
	now      func() time.Time
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(engineeringKey string) *AuthUseCase {
	return &AuthUseCase{
		key:      engineeringKey,
		sessions: make(map[string]Session),
		now:      time.Now,
	}
}

// Login compares the password against the shared engineering key and issues
// a bearer token on success.
func (u *AuthUseCase) Login(password string) (Session, error) {
	if u.key == "" {
		return Session{}, ErrAuthNotConfigured
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(u.key)) != 1 {
		metrics.LoginsTotal.WithLabelValues("denied").Inc()
		return Session{}, ErrInvalidPassword
	}

	s := Session{
		Token:         uuid.NewString(),
		Authenticated: true,
		CreatedAt:     u.now().UTC(),
	}

	u.mu.Lock()
	u.sessions[s.Token] = s
	u.mu.Unlock()

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	log.Printf("[auth][usecase] login success token=%s...", s.Token[:8])
	return s, nil
}

// Validate resolves a bearer token to its session. Expired sessions are
// dropped on sight.
func (u *AuthUseCase) Validate(token string) (Session, bool) {
	if token == "" {
		return Session{}, false
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	s, ok := u.sessions[token]
	if !ok {
		return Session{}, false
	}
	if u.now().UTC().Sub(s.CreatedAt) > sessionTTL {
		delete(u.sessions, token)
		return Session{}, false
	}
	return s, true
}

// Logout drops the session. Unknown tokens are a no-op.
func (u *AuthUseCase) Logout(token string) {
	u.mu.Lock()
	delete(u.sessions, token)
	u.mu.Unlock()
}
