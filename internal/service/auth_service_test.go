package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/raisultan/elj-backend/internal/config"
	"golang.org/x/crypto/bcrypt"
)

func testAuthService(secret string) *AuthService {
	cfg := &config.Config{
		JWTSecret:  secret,
		JWTExpiry:  time.Hour,
		BcryptCost: bcrypt.MinCost,
	}
	return NewAuthService(cfg, nil)
}

func signTestToken(t *testing.T, secret string, teacherID int, expiresAt time.Time) string {
	t.Helper()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "test-jti",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID: teacherID,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestValidateToken(t *testing.T) {
	svc := testAuthService("test-secret")

	token := signTestToken(t, "test-secret", 42, time.Now().Add(time.Hour))
	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.ID != "test-jti" {
		t.Errorf("JTI = %q, want %q", claims.ID, "test-jti")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := testAuthService("test-secret")

	token := signTestToken(t, "other-secret", 42, time.Now().Add(time.Hour))
	if _, err := svc.ValidateToken(token); err == nil {
		t.Fatal("token signed with a different secret should be rejected")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	svc := testAuthService("test-secret")

	token := signTestToken(t, "test-secret", 42, time.Now().Add(-time.Minute))
	if _, err := svc.ValidateToken(token); err == nil {
		t.Fatal("expired token should be rejected")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := testAuthService("test-secret")

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := svc.ValidateToken(token); err == nil {
			t.Errorf("ValidateToken(%q) expected error", token)
		}
	}
}

func TestPasswordHashing(t *testing.T) {
	svc := testAuthService("test-secret")

	hash, err := svc.HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if err := svc.CheckPassword(hash, "password123"); err != nil {
		t.Errorf("CheckPassword with correct password: %v", err)
	}

	err = svc.CheckPassword(hash, "wrong-password")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("CheckPassword with wrong password = %v, want ErrInvalidCredentials", err)
	}
}
