package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService("", time.Hour)
	assert.Error(t, err)
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc, err := NewJWTService("test-secret", time.Hour)
	require.NoError(t, err)

	token, err := svc.GenerateAdminJWT("0190f1a2-0000-7000-8000-000000000001", "ada@modeva.com")
	require.NoError(t, err)

	claims, err := svc.VerifyAdminJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "0190f1a2-0000-7000-8000-000000000001", claims.AdminID)
	assert.Equal(t, "ada@modeva.com", claims.Email)
	assert.Equal(t, AdminTokenIssuer, claims.Issuer)
}

func TestJWTService_Expired(t *testing.T) {
	svc, err := NewJWTService("test-secret", time.Hour)
	require.NoError(t, err)
	issued := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	token, err := svc.GenerateAdminJWT("admin-1", "ada@modeva.com")
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = svc.VerifyAdminJWT(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, _ := NewJWTService("secret-a", time.Hour)
	verifier, _ := NewJWTService("secret-b", time.Hour)

	token, err := issuer.GenerateAdminJWT("admin-1", "ada@modeva.com")
	require.NoError(t, err)

	_, err = verifier.VerifyAdminJWT(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsForeignIssuerAndAlg(t *testing.T) {
	svc, _ := NewJWTService("test-secret", time.Hour)
	now := time.Now()

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, AdminJWTClaims{
		AdminID: "admin-1",
		Email:   "ada@modeva.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	})
	signed, err := foreign.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = svc.VerifyAdminJWT(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)

	hs512 := jwt.NewWithClaims(jwt.SigningMethodHS512, AdminJWTClaims{
		AdminID: "admin-1",
		Email:   "ada@modeva.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    AdminTokenIssuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	})
	signed, err = hs512.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = svc.VerifyAdminJWT(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_MissingClaims(t *testing.T) {
	svc, _ := NewJWTService("test-secret", time.Hour)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, AdminJWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    AdminTokenIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.VerifyAdminJWT(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
