package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

type Claims struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	UserType string `json:"user_type"`
	IsStaff  bool   `json:"is_staff"`
	jwt.StandardClaims
}

func VerifyToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(settingsData.JWT_SECRET_KEY), nil
	})
	if err != nil {
		return nil, err
	}
	return token, nil
}

func NewClaimsFromContext(ctx *gin.Context) (*Claims, bool) {
	value, exists := ctx.Get("user")
	if !exists {
		return nil, false
	}
	claims, ok := value.(*Claims)
	return claims, ok
}

func ExtractToken(authorization string) (string, error) {
	if !strings.HasPrefix(authorization, "Bearer ") {
		return "", fmt.Errorf("no bearer token")
	}
	return strings.TrimPrefix(authorization, "Bearer "), nil
}

func MapClaims(token *jwt.Token) (*Claims, error) {
	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	claims := &Claims{}
	if id, ok := mapClaims["_id"].(string); ok {
		claims.ID = id
	}
	if username, ok := mapClaims["username"].(string); ok {
		claims.Username = username
	}
	if name, ok := mapClaims["name"].(string); ok {
		claims.Name = name
	}
	if userType, ok := mapClaims["user_type"].(string); ok {
		claims.UserType = userType
	}
	if isStaff, ok := mapClaims["is_staff"].(bool); ok {
		claims.IsStaff = isStaff
	}
	if exp, ok := mapClaims["exp"].(float64); ok {
		if time.Now().Unix() > int64(exp) {
			return nil, fmt.Errorf("token expired")
		}
	}
	return claims, nil
}

// NewServiceToken signs a short-lived token to authenticate against the
// credentials service as the configured service user.
func NewServiceToken(username string) (string, error) {
	claims := &Claims{
		Username: username,
		UserType: "service",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * 5).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(settingsData.JWT_SECRET_KEY))
}
