package jwt

import (
	"testing"
	"time"

	"medical-appointment-api/config"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(secret string, expiry time.Duration, now time.Time) *JWTService {
	s := NewJWTService(config.JWTConfig{Secret: secret, AccessExpiry: expiry})
	s.now = func() time.Time { return now }
	return s
}

func TestGenerateAndValidate(t *testing.T) {
	now := time.Now()
	s := newService("secret", 24*time.Hour, now)
	userID := uuid.New()

	issued, err := s.GenerateAccessToken(userID, "ana@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, issued.Token)
	assert.WithinDuration(t, now.Add(24*time.Hour), issued.ExpiresAt, time.Second)

	claims, err := s.ValidateToken(issued.Token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, issued.TokenID, claims.TokenID)
}

func TestValidateToken_Expired(t *testing.T) {
	issuedAt := time.Now().Add(-48 * time.Hour)
	issuer := newService("secret", 24*time.Hour, issuedAt)
	issued, err := issuer.GenerateAccessToken(uuid.New(), "ana@example.com")
	require.NoError(t, err)

	_, err = newService("secret", 24*time.Hour, time.Now()).ValidateToken(issued.Token)
	assert.ErrorIs(t, err, gojwt.ErrTokenExpired)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issued, err := newService("secret", time.Hour, time.Now()).GenerateAccessToken(uuid.New(), "a@example.com")
	require.NoError(t, err)

	_, err = newService("other", time.Hour, time.Now()).ValidateToken(issued.Token)
	assert.ErrorIs(t, err, gojwt.ErrTokenSignatureInvalid)
}

func TestValidateToken_RejectsNoneAlgorithm(t *testing.T) {
	claims := Claims{
		UserID:  uuid.New(),
		Email:   "a@example.com",
		TokenID: "id",
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	raw, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, claims).SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = newService("secret", time.Hour, time.Now()).ValidateToken(raw)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := newService("secret", time.Hour, time.Now()).ValidateToken("not.a.token")
	assert.Error(t, err)
}
