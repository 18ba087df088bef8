package jwt

import (
	"errors"

	"docrech/config"

	"github.com/golang-jwt/jwt/v5"
)

// Roles the hosted data service puts in the keys it issues
const (
	RoleAnon          = "anon"
	RoleAuthenticated = "authenticated"
	RoleServiceRole   = "service_role"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrRoleNotAllowed = errors.New("role not allowed")
)

// Claims are the claims of an API key issued by the hosted data service
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService verifies API keys. It never issues them.
type JWTService struct {
	config config.AuthConfig
}

func NewJWTService(cfg config.AuthConfig) *JWTService {
	return &JWTService{config: cfg}
}

// Enabled reports whether a signing secret is configured
func (s *JWTService) Enabled() bool {
	return s.config.JWTSecret != ""
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.config.JWTSecret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// ValidateAPIKey validates the key and checks it carries a client role.
// Service role keys are refused.
func (s *JWTService) ValidateAPIKey(tokenString string) (*Claims, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	switch claims.Role {
	case RoleAnon, RoleAuthenticated:
		return claims, nil
	default:
		return nil, ErrRoleNotAllowed
	}
}
