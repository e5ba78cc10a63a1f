package utils

import (
	"testing"
	"time"

	"coursehub/backend/config"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func TestJWTRoundTrip(t *testing.T) {
	cfg := &config.Config{JWTSecret: "testsecret"}

	token, err := GenerateJWTToken(42, cfg)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := ParseJWTToken(token, cfg)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWTToken(42, &config.Config{JWTSecret: "testsecret"})
	assert.NoError(t, err)

	_, err = ParseJWTToken(token, &config.Config{JWTSecret: "othersecret"})
	assert.Error(t, err)
}

func TestJWTExpired(t *testing.T) {
	cfg := &config.Config{JWTSecret: "testsecret"}

	claims := jwt.MapClaims{
		"user_id": float64(42),
		"exp":     time.Now().Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
	assert.NoError(t, err)

	_, err = ParseJWTToken(token, cfg)
	assert.Error(t, err)
}

func TestJWTGarbage(t *testing.T) {
	cfg := &config.Config{JWTSecret: "testsecret"}

	_, err := ParseJWTToken("not-a-token", cfg)
	assert.Error(t, err)
}
