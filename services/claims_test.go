package services

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signTestToken(t *testing.T, claims jwt.MapClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(settingsData.JWT_SECRET_KEY))
	require.NoError(t, err)
	return signed
}

func TestExtractToken(t *testing.T) {
	token, err := ExtractToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractToken("abc.def.ghi")
	assert.Error(t, err)

	_, err = ExtractToken("")
	assert.Error(t, err)
}

func TestVerifyTokenAndMapClaims(t *testing.T) {
	signed := signTestToken(t, jwt.MapClaims{
		"_id":       "637d5de216f58bc8ec7f7f51",
		"username":  "xiu",
		"name":      "Xiu Ling",
		"user_type": "student",
		"is_staff":  false,
		"exp":       float64(time.Now().Add(time.Hour).Unix()),
	})

	token, err := VerifyToken(signed)
	require.NoError(t, err)

	claims, err := MapClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "xiu", claims.Username)
	assert.Equal(t, "student", claims.UserType)
	assert.False(t, claims.IsStaff)
}

func TestVerifyTokenExpired(t *testing.T) {
	signed := signTestToken(t, jwt.MapClaims{
		"username": "xiu",
		"exp":      float64(time.Now().Add(-time.Hour).Unix()),
	})

	_, err := VerifyToken(signed)
	assert.Error(t, err)
}

func TestVerifyTokenRejectsBadSignature(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "xiu",
	})
	signed, err := token.SignedString([]byte("otro-secreto"))
	require.NoError(t, err)

	_, err = VerifyToken(signed)
	assert.Error(t, err)
}

func TestNewServiceToken(t *testing.T) {
	signed, err := NewServiceToken("credentials_service_user")
	require.NoError(t, err)

	token, err := VerifyToken(signed)
	require.NoError(t, err)
	claims, err := MapClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "credentials_service_user", claims.Username)
	assert.Equal(t, "service", claims.UserType)
}
