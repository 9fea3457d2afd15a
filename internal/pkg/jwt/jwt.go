package jwt

import (
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

const defaultSecret = "pagelift-secret-change-me"

var secret = []byte(defaultSecret)

// Token lifetimes.
const (
	AccessTTL  = 1 * time.Hour
	RefreshTTL = 7 * 24 * time.Hour
)

// Token kinds carried in the claims.
const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// SetSecret configures the JWT signing secret (call on startup).
func SetSecret(s string) {
	if s != "" {
		secret = []byte(s)
	}
}

// Claims is the JWT payload: the authenticated principal plus token type.
// TenantID scopes every authoring operation to the caller's organization.
type Claims struct {
	UserID    string `json:"uid"`
	TenantID  string `json:"tenant_id"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"`
	jwtlib.RegisteredClaims
}

// Sign creates a signed access token for the given principal.
func Sign(userID, tenantID, role string) (string, error) {
	return sign(userID, tenantID, role, TypeAccess, AccessTTL)
}

// SignRefresh creates a signed refresh token for the given principal.
func SignRefresh(userID, tenantID, role string) (string, error) {
	return sign(userID, tenantID, role, TypeRefresh, RefreshTTL)
}

func sign(userID, tenantID, role, tokenType string, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID:    userID,
		TenantID:  tenantID,
		Role:      role,
		TokenType: tokenType,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwtlib.NewNumericDate(time.Now()),
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// Parse validates a token string and returns the claims.
func Parse(tokenStr string) (*Claims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
