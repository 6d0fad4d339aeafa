package service

import (
	"fmt"
	"time"

	"go-finance-api/logger"
	"go-finance-api/model"

	"github.com/golang-jwt/jwt/v5"
)

// AuthService verifies the HS256 tokens issued by the identity provider.
type AuthService struct {
	secret []byte
	issuer string
}

func NewAuthService(secret, issuer string) *AuthService {
	return &AuthService{secret: []byte(secret), issuer: issuer}
}

// ParseToken validates the signature and expiry and returns the claims. Any
// failure is reported as ErrUnauthorized.
func (s *AuthService) ParseToken(tokenString string) (*model.AppClaims, error) {
	claims := &model.AppClaims{}
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, opts...)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: invalid token", ErrUnauthorized)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: token has no subject", ErrUnauthorized)
	}
	return claims, nil
}

// GenerateToken signs a token for subject. Production tokens come from the
// identity provider; this serves local development and tests.
func (s *AuthService) GenerateToken(subject, name, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &model.AppClaims{
		Name:  name,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		logger.Log.WithError(err).WithField("subject", subject).Error("Failed to sign JWT")
		return "", fmt.Errorf("failed to sign token string: %w", err)
	}
	return tokenString, nil
}
