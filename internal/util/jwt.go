package util

import (
	"errors"
	"time"

	"workshop_hub_backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// 两类令牌共用同一密钥，靠 purpose 声明区分，
// 防止报名链接令牌被当成登录令牌使用
const (
	tokenPurposeAuth       = "auth"
	tokenPurposeEnrollment = "enrollment"
)

type Claims struct {
	UserID  uint           `json:"user_id"`
	Email   string         `json:"email"`
	Roles   model.RoleList `json:"roles"`
	Purpose string         `json:"purpose"`
	jwt.RegisteredClaims
}

func GenerateJWT(user *model.User, secret string, expiration time.Duration) (string, error) {
	expirationTime := time.Now().Add(expiration)

	claims := &Claims{
		UserID:  user.ID,
		Email:   user.Email,
		Roles:   user.Roles,
		Purpose: tokenPurposeAuth,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseJWT(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid && claims.Purpose == tokenPurposeAuth {
		return claims, nil
	}

	return nil, errors.New("invalid token claims")
}

// EnrollmentClaims 报名链接令牌，仅携带工作坊ID
type EnrollmentClaims struct {
	WorkshopID uint   `json:"workshop_id"`
	Purpose    string `json:"purpose"`
	jwt.RegisteredClaims
}

func GenerateEnrollmentToken(workshopID uint, secret string, expiration time.Duration) (string, error) {
	claims := &EnrollmentClaims{
		WorkshopID: workshopID,
		Purpose:    tokenPurposeEnrollment,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseEnrollmentToken(tokenString, secret string) (*EnrollmentClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &EnrollmentClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*EnrollmentClaims); ok && token.Valid && claims.Purpose == tokenPurposeEnrollment {
		return claims, nil
	}

	return nil, errors.New("invalid enrollment token")
}

func GetUserFromContext(c *gin.Context) *Claims {
	user, exists := c.Get("user")
	if !exists {
		return nil
	}
	claims, ok := user.(*Claims)
	if !ok {
		return nil
	}
	return claims
}
