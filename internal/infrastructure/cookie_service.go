package infrastructure

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieService signs and parses the session cookie. The cookie value is an
// HS256 token whose subject is the opaque sid; the server-side session row
// remains the source of truth, the signature only prevents sid tampering.
type CookieService struct {
	secretKey []byte
}

var ErrInvalidCookie = errors.New("invalid session cookie")

func NewCookieService(secret string) *CookieService {
	return &CookieService{secretKey: []byte(secret)}
}

// Issue wraps sid into a signed token expiring alongside the session.
func (c *CookieService) Issue(sid string, expires time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   sid,
		ExpiresAt: jwt.NewNumericDate(expires),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secretKey)
}

// Parse verifies the signature and returns the embedded sid.
func (c *CookieService) Parse(value string) (string, error) {
	token, err := jwt.ParseWithClaims(value, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidCookie
		}
		return c.secretKey, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidCookie
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidCookie
	}
	return claims.Subject, nil
}
