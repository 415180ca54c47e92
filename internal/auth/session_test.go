package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lexhub_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-session-secret"

func TestParseSessionToken_RoundTrip(t *testing.T) {
	token, err := IssueSessionToken(testSecret, SessionClaims{
		Email:            "user@example.com",
		Name:             "Sam",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
	}, time.Hour)
	require.NoError(t, err)

	claims, err := ParseSessionToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.NotNil(t, claims.IssuedAt)
}

func TestParseSessionToken_Rejects(t *testing.T) {
	valid := SessionClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"}}

	wrongSecret, _ := IssueSessionToken("other-secret", valid, time.Hour)
	expired, _ := IssueSessionToken(testSecret, SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}, time.Hour)
	anonymous, _ := IssueSessionToken(testSecret, SessionClaims{}, time.Hour)

	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, valid)
	noExpToken, _ := noExp.SignedString([]byte(testSecret))

	hs512 := jwt.NewWithClaims(jwt.SigningMethodHS512, SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	})
	hs512Token, _ := hs512.SignedString([]byte(testSecret))

	cases := map[string]string{
		"empty":        "",
		"garbage":      "not-a-jwt",
		"wrong secret": wrongSecret,
		"expired":      expired,
		"no subject":   anonymous,
		"no exp":       noExpToken,
		"wrong alg":    hs512Token,
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseSessionToken(token, testSecret)
			assert.True(t, errors.Is(err, ErrInvalidSession), "got %v", err)
		})
	}
}

func TestTokenFromRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer abc")
	r.AddCookie(&http.Cookie{Name: "session-token", Value: "cookie-token"})
	assert.Equal(t, "abc", TokenFromRequest(r, "session-token"))

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "session-token", Value: "cookie-token"})
	assert.Equal(t, "cookie-token", TokenFromRequest(r, "session-token"))

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Basic xyz")
	assert.Equal(t, "", TokenFromRequest(r, "session-token"))
}

func TestAllows(t *testing.T) {
	assert.True(t, Allows(AdminOnly, models.UserRolePlatformAdmin))
	assert.False(t, Allows(AdminOnly, models.UserRoleLawyer))
	assert.True(t, Allows(LawyerOrAdmin, models.UserRoleFirmAdmin))
	assert.False(t, Allows(LawyerOrFirmAdmin, models.UserRoleClient))
	assert.False(t, Allows([]models.UserRole{"SUPERUSER"}, "SUPERUSER"))
	assert.False(t, Allows(nil, models.UserRoleClient))
}

func TestIdentityContext(t *testing.T) {
	_, ok := IdentityFromContext(context.Background())
	assert.False(t, ok)

	identity := NewIdentity(&models.User{
		BaseModel: models.BaseModel{ID: "u-1"},
		Role:      models.UserRoleLawyer,
		Status:    models.UserStatusActive,
	})
	ctx := WithIdentity(context.Background(), identity)

	got, ok := IdentityFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "u-1", got.UserID)
	assert.True(t, got.HasRole(models.UserRoleLawyer))
	assert.True(t, got.HasAnyRole(LawyerOrAdmin...))
	assert.False(t, got.HasAnyRole(ClientOnly...))

	var nilIdentity *Identity
	assert.False(t, nilIdentity.HasRole(models.UserRoleLawyer))
}
