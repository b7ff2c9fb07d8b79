package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/paulamunoz06/gestionproyectos/pkg/response"
	"github.com/paulamunoz06/gestionproyectos/pkg/types"
)

const principalKey = "principal"

// JWT verifies bearer tokens issued by the external identity provider.
type JWT struct {
	key    []byte
	issuer string
}

func NewJWT(secret, issuer string) *JWT {
	return &JWT{key: []byte(secret), issuer: issuer}
}

// ParseToken validates tokenStr and extracts its claims.
func (j *JWT) ParseToken(tokenStr string) (*types.Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if j.issuer != "" {
		opts = append(opts, jwt.WithIssuer(j.issuer))
	}

	claims := &types.Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return j.key, nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}
	return claims, nil
}

// SignToken issues a token with the same shape the identity provider uses.
// Services never call it; it exists for tests and local tooling.
func (j *JWT) SignToken(subject string, role types.Role, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &types.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.key)
}

// Authenticate accepts a Bearer header, a "token" cookie, or an access_token
// query parameter (browsers cannot set headers on websocket upgrades).
func (j *JWT) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "authorization required"})
			return
		}

		claims, err := j.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "invalid token: " + err.Error()})
			return
		}

		c.Set(principalKey, types.Principal{UserID: claims.Subject, Role: claims.Role})
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return "", false
		}
		return parts[1], true
	}
	if cookie, err := c.Cookie("token"); err == nil && cookie != "" {
		return cookie, true
	}
	if q := c.Query("access_token"); q != "" {
		return q, true
	}
	return "", false
}

// PrincipalFrom returns the caller set by Authenticate.
func PrincipalFrom(c *gin.Context) (types.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return types.Principal{}, false
	}
	p, ok := v.(types.Principal)
	return p, ok
}
