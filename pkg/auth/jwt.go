package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// Issuer is the issuer expected on operator tokens.
const Issuer = "finboard"

type JWTServiceInterface interface {
	GenerateJWT(operatorID string, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	OperatorID string `json:"operator_id"`
	jwt.StandardClaims
}

type JWTService struct {
	secretKey []byte
}

func NewJWTService(secret string) *JWTService {
	return &JWTService{secretKey: []byte(secret)}
}

func (s *JWTService) GenerateJWT(operatorID string, expirationTime time.Time) (string, error) {
	claims := Claims{
		OperatorID: operatorID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			Issuer:    Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.OperatorID == "" || claims.Issuer != Issuer {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
