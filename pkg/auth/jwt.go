package auth

import (
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

const (
	AuthorizationHeader = "Authorization"
	Bearer              = "Bearer "
)

var ErrInvalidToken = errors.New("token is invalid")

type Profile struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type Claims struct {
	Profile  Profile `json:"profile"`
	MemberID string  `json:"memberId,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) HasRole(role string) bool {
	return c.Profile.Role == role
}

// Sign issues an HS256 token.
func Sign(claims *Claims, key []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

// Parse verifies signature and expiry. Only HMAC-SHA256 tokens are accepted.
func Parse(tokenString string, key []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// TokenFromHeader extracts the bearer token of an Authorization header value.
func TokenFromHeader(header string) (string, bool) {
	token, ok := strings.CutPrefix(header, Bearer)
	token = strings.TrimSpace(token)
	return token, ok && token != ""
}
