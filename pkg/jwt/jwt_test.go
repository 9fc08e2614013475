package jwt

import (
	"errors"
	"testing"
	"time"

	gjwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService("secret", time.Minute, 2*time.Minute)
	userID := uuid.New()

	pair, err := svc.GenerateTokenPair(userID, "dewi@washloop.io", "customer")
	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	claims, err := svc.ValidateToken(pair.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "dewi@washloop.io", claims.Email)
	assert.Equal(t, "customer", claims.Role)
}

func TestJWTService_ValidateInvalidToken(t *testing.T) {
	svc := NewJWTService("secret", time.Minute, 2*time.Minute)

	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_ValidateExpiredToken(t *testing.T) {
	svc := NewJWTService("secret", -time.Second, -time.Second)

	pair, err := svc.GenerateTokenPair(uuid.New(), "expired@washloop.io", "merchant")
	assert.NoError(t, err)

	_, err = svc.ValidateToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_ValidateWrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", time.Minute, 2*time.Minute)
	verifier := NewJWTService("secret-b", time.Minute, 2*time.Minute)

	pair, err := issuer.GenerateTokenPair(uuid.New(), "x@washloop.io", "customer")
	assert.NoError(t, err)

	_, err = verifier.ValidateToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_ValidateWrongSigningMethod(t *testing.T) {
	svc := NewJWTService("secret", time.Minute, 2*time.Minute)

	claims := gjwt.MapClaims{
		"userId": uuid.NewString(),
		"email":  "x@washloop.io",
		"role":   "customer",
		"exp":    time.Now().Add(time.Minute).Unix(),
	}
	unsigned := gjwt.NewWithClaims(gjwt.SigningMethodNone, claims)
	tokenString, err := unsigned.SignedString(gjwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, err = svc.ValidateToken(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_GenerateTokenPair_SigningFailure(t *testing.T) {
	orig := signJWTToken
	t.Cleanup(func() { signJWTToken = orig })
	signJWTToken = func(*gjwt.Token, []byte) (string, error) {
		return "", errors.New("sign failed")
	}

	svc := NewJWTService("secret", time.Minute, 2*time.Minute)
	_, err := svc.GenerateTokenPair(uuid.New(), "x@washloop.io", "customer")
	assert.Error(t, err)
}
