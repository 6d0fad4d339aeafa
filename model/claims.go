package model

import "github.com/golang-jwt/jwt/v5"

// AppClaims are issued by the identity provider. Subject holds the
// provider's user id.
type AppClaims struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	jwt.RegisteredClaims
}
