package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/restoration-backend/internal/domain"
)

const (
	testSecret = "test-secret-at-least-32-chars-long-for-security"
	testIssuer = "restoration-test"
)

func TestJWTManager_IssueAndValidate(t *testing.T) {
	t.Parallel()

	for _, role := range []domain.UserRole{domain.UserRoleOperator, domain.UserRoleAdmin} {
		t.Run(role.String(), func(t *testing.T) {
			t.Parallel()

			manager := NewJWTManager(testSecret, testIssuer, 15*time.Minute)
			operatorID := uuid.New()

			token, expiresAt, err := manager.IssueToken(operatorID, role)
			if err != nil {
				t.Fatalf("IssueToken failed: %v", err)
			}
			if time.Until(expiresAt) <= 14*time.Minute {
				t.Errorf("expiresAt = %v, want about 15m from now", expiresAt)
			}

			gotID, gotRole, err := manager.ValidateToken(context.Background(), token)
			if err != nil {
				t.Fatalf("ValidateToken failed: %v", err)
			}
			if gotID != operatorID {
				t.Errorf("operator id = %s, want %s", gotID, operatorID)
			}
			if gotRole != role.String() {
				t.Errorf("role = %q, want %q", gotRole, role)
			}
		})
	}
}

func TestJWTManager_IssueToken_InvalidRole(t *testing.T) {
	t.Parallel()

	manager := NewJWTManager(testSecret, testIssuer, time.Minute)
	_, _, err := manager.IssueToken(uuid.New(), "superuser")
	if !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("got %v, want ErrInvalidRole", err)
	}
}

func TestJWTManager_ValidateAccessToken_Expired(t *testing.T) {
	t.Parallel()

	manager := NewJWTManager(testSecret, testIssuer, -time.Hour)
	token, _, err := manager.IssueToken(uuid.New(), domain.UserRoleOperator)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	_, _, err = manager.ValidateAccessToken(token)
	if err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected expiry error, got: %v", err)
	}
}

func TestJWTManager_ValidateAccessToken_InvalidSignature(t *testing.T) {
	t.Parallel()

	issuer := NewJWTManager(testSecret, testIssuer, time.Minute)
	other := NewJWTManager("different-secret-32-chars-long-for-security!!", testIssuer, time.Minute)

	token, _, err := issuer.IssueToken(uuid.New(), domain.UserRoleOperator)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}
	if _, _, err := other.ValidateAccessToken(token); err == nil {
		t.Fatal("expected error for invalid signature, got nil")
	}
}

func TestJWTManager_ValidateAccessToken_Malformed(t *testing.T) {
	t.Parallel()

	manager := NewJWTManager(testSecret, testIssuer, time.Minute)
	for _, token := range []string{"not.a.jwt", "invalid-token", "header.payload"} {
		if _, _, err := manager.ValidateAccessToken(token); err == nil {
			t.Errorf("expected error for malformed token %q, got nil", token)
		}
	}
}

func TestJWTManager_ValidateAccessToken_WrongIssuer(t *testing.T) {
	t.Parallel()

	issuer := NewJWTManager(testSecret, testIssuer, time.Minute)
	other := NewJWTManager(testSecret, "wrong-issuer", time.Minute)

	token, _, err := issuer.IssueToken(uuid.New(), domain.UserRoleOperator)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	_, _, err = other.ValidateAccessToken(token)
	if !errors.Is(err, jwt.ErrTokenInvalidIssuer) {
		t.Errorf("expected invalid issuer error, got: %v", err)
	}
}

func TestJWTManager_ValidateAccessToken_UnknownRole(t *testing.T) {
	t.Parallel()

	claims := operatorClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			Issuer:    testIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
		Role: "superuser",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	manager := NewJWTManager(testSecret, testIssuer, time.Minute)
	if _, _, err := manager.ValidateAccessToken(token); !errors.Is(err, ErrInvalidRole) {
		t.Errorf("got %v, want ErrInvalidRole", err)
	}
}

func TestJWTManager_ValidateAccessToken_EmptyString(t *testing.T) {
	t.Parallel()

	manager := NewJWTManager(testSecret, testIssuer, time.Minute)
	_, _, err := manager.ValidateAccessToken("")
	if err == nil || !strings.Contains(err.Error(), "empty") {
		t.Errorf("expected 'empty' error, got: %v", err)
	}
}
