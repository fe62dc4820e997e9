package utils

import (
	"time"

	"github.com/golang-jwt/jwt"
)

// TokenExpired reports whether a bearer token issued by the listing API
// carries an exp claim in the past. The API holds the signing key, so the
// claims are parsed without signature verification; they are only used to
// drop a session the API would reject anyway. Tokens that are not JWTs, or
// that carry no exp claim, are passed through untouched.
func TokenExpired(tokenStr string, now time.Time) bool {
	claims := jwt.StandardClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(tokenStr, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == 0 {
		return false
	}
	return now.Unix() >= claims.ExpiresAt
}
