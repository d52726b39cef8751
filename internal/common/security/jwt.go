package security

import (
	"errors"
	"net/http"
	"time"

	"campus_portal/internal/platform/config"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
)

var TokenAuth *jwtauth.JWTAuth

func InitJWT() {
	TokenAuth = jwtauth.New("HS256", config.AppConfig.SessionJWTKey, nil)
}

// GenerateSessionToken mints the portal's own cookie token. It carries only a
// session ID; identity and role truth stay in the session store so a revoked
// session dies server-side immediately.
func GenerateSessionToken(sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"sid": sessionID,
		"exp": time.Now().Add(config.AppConfig.SessionTTL).Unix(),
		"iat": time.Now().Unix(),
	}
	_, tokenString, err := TokenAuth.Encode(claims)
	return tokenString, err
}

// ClaimsFromRequest pulls the claims jwtauth.Verifier parked on the request
// context. Absence of a token is an error here; callers treat it as an
// anonymous request.
func ClaimsFromRequest(r *http.Request) (map[string]interface{}, error) {
	token, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, errors.New("no session token")
	}
	return claims, nil
}

func GetSessionIDFromClaims(claims map[string]interface{}) (string, error) {
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", errors.New("sid claim is missing or not a string")
	}
	return sid, nil
}
