package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

const AdminTokenCookie = "admin_token"

// ExtractBearerToken extracts the token from an Authorization header
// Format: "Bearer <token>"
func ExtractBearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errors.New("authorization header is empty")
	}

	scheme, token, ok := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", errors.New("authorization header must start with 'Bearer '")
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", errors.New("token is empty")
	}
	return token, nil
}

// HashToken returns the hex SHA-256 of a token. Sessions are keyed by this
// hash so raw tokens never reach the database.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
