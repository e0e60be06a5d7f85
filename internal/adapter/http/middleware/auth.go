package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"erp_vendas/internal/domain/entities"
	"erp_vendas/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin    = "admin"
	RoleVendedor = "vendedor"

	claimsKey = "auth.claims"
)

var (
	errMissingToken = pkg.NewDomainErrorSimple(string(entities.KindUnauthorized), "Authentication required", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple(string(entities.KindUnauthorized), "Invalid or expired token", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple(string(entities.KindUnauthorized), "Administrator role required", http.StatusForbidden)
)

// Claims is the JWT payload: the subject names the user, Role gates writes.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func validRole(role string) bool {
	return role == RoleAdmin || role == RoleVendedor
}

// IssueToken signs an HS256 token for subject with the given role.
func IssueToken(secret, subject, role string, ttl time.Duration, now time.Time) (string, error) {
	if !validRole(role) {
		return "", fmt.Errorf("unknown role %q", role)
	}
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Authenticate rejects requests without a valid bearer token and stores the
// claims on the context for RequireAdmin.
func Authenticate(secret string) gin.HandlerFunc {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(raw) == "" {
			abort(c, errMissingToken)
			return
		}

		claims := &Claims{}
		token, err := parser.ParseWithClaims(strings.TrimSpace(raw), claims, func(*jwt.Token) (any, error) {
			return []byte(secret), nil
		})
		if err != nil || !token.Valid || !validRole(claims.Role) {
			abort(c, errInvalidToken)
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireAdmin must run after Authenticate.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		if !ok || claims.Role != RoleAdmin {
			abort(c, errForbidden)
			return
		}
		c.Next()
	}
}

func ClaimsFrom(c *gin.Context) (*Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*Claims)
	return claims, ok
}

func abort(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
