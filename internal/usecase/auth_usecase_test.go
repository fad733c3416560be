package usecase

import (
	"errors"
	"testing"
	"time"
)

func TestAuthUseCase_Login(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		uc := NewAuthUseCase("")
		_, err := uc.Login("anything")
		if !errors.Is(err, ErrAuthNotConfigured) {
			t.Fatalf("expected ErrAuthNotConfigured, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		uc := NewAuthUseCase("rahasia")
		_, err := uc.Login("salah")
		if !errors.Is(err, ErrInvalidPassword) {
			t.Fatalf("expected ErrInvalidPassword, got %v", err)
		}
	})

	t.Run("success issues a distinct token per login", func(t *testing.T) {
		uc := NewAuthUseCase("rahasia")

		s1, err := uc.Login("rahasia")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s1.Token == "" || !s1.Authenticated {
			t.Fatalf("unexpected session: %+v", s1)
		}

		s2, _ := uc.Login("rahasia")
		if s1.Token == s2.Token {
			t.Fatal("expected distinct tokens")
		}
	})
}

func TestAuthUseCase_Validate(t *testing.T) {
	t.Run("unknown and empty tokens", func(t *testing.T) {
		uc := NewAuthUseCase("rahasia")
		if _, ok := uc.Validate(""); ok {
			t.Fatal("empty token validated")
		}
		if _, ok := uc.Validate("nope"); ok {
			t.Fatal("unknown token validated")
		}
	})

	t.Run("valid session", func(t *testing.T) {
		uc := NewAuthUseCase("rahasia")
		s, _ := uc.Login("rahasia")

		got, ok := uc.Validate(s.Token)
		if !ok || !got.Authenticated || got.Token != s.Token {
			t.Fatalf("unexpected validation result: %+v ok=%v", got, ok)
		}
	})

	t.Run("expired session is dropped", func(t *testing.T) {
		uc := NewAuthUseCase("rahasia")
		now := time.Now()
		uc.now = func() time.Time { return now }

		s, _ := uc.Login("rahasia")

		uc.now = func() time.Time { return now.Add(sessionTTL + time.Minute) }
		if _, ok := uc.Validate(s.Token); ok {
			t.Fatal("expired session validated")
		}
		// Second lookup misses outright: the expired entry is gone.
		if _, ok := uc.Validate(s.Token); ok {
			t.Fatal("expired session still present")
		}
	})
}

func TestAuthUseCase_Logout(t *testing.T) {
	uc := NewAuthUseCase("rahasia")
	s, _ := uc.Login("rahasia")

	uc.Logout(s.Token)
	if _, ok := uc.Validate(s.Token); ok {
		t.Fatal("logged-out session validated")
	}

	// Unknown token logout is a no-op.
	uc.Logout("nope")
}
