package keystore

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// rememberClaims bound remembered credentials to an expiry. The token is
// signed with the per-install secret, so a blob copied to another machine
// does not validate.
type rememberClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// generateRememberToken issues the expiry token accompanying sealed
// credentials. Remembered logins are short-lived on purpose: once the token
// expires the user must authenticate manually again.
func generateRememberToken(username string, ttl time.Duration, secret []byte) (string, error) {
	now := time.Now()
	claims := &rememberClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "peerchat",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// validateRememberToken parses and validates signature and expiration,
// returning the username the credentials belong to.
func validateRememberToken(tokenString string, secret []byte) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &rememberClaims{}, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return "", err
	}
	if claims, ok := token.Claims.(*rememberClaims); ok && token.Valid {
		return claims.Username, nil
	}
	return "", jwt.ErrSignatureInvalid
}
