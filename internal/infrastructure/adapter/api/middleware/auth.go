package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/amirhossein-jamali/tuition-payment/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/tuition-payment/internal/domain/error"
	coreport "github.com/amirhossein-jamali/tuition-payment/internal/domain/port/core"
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// callerKey is the gin context key holding the authenticated entity.Caller
const callerKey = "caller"

// DefaultLeeway tolerates clock skew between the issuer and this service
const DefaultLeeway = 30 * time.Second

type callerClaims struct {
	UserID any    `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenVerifier checks HS256 bearer tokens minted by the identity service
type TokenVerifier struct {
	secret []byte
	issuer string
	leeway time.Duration
	now    func() time.Time
}

// NewTokenVerifier creates a verifier. An empty issuer skips the iss check.
func NewTokenVerifier(secret, issuer string, timeProvider coreport.TimeProvider) *TokenVerifier {
	return &TokenVerifier{
		secret: []byte(secret),
		issuer: issuer,
		leeway: DefaultLeeway,
		now:    timeProvider.Now,
	}
}

// Verify parses the raw token and returns the caller it identifies
func (v *TokenVerifier) Verify(raw string) (entity.Caller, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(v.leeway),
		jwt.WithTimeFunc(v.now),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	parsed, err := jwt.ParseWithClaims(raw, &callerClaims{}, func(token *jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return entity.Caller{}, err
	}
	claims, ok := parsed.Claims.(*callerClaims)
	if !ok || !parsed.Valid {
		return entity.Caller{}, errors.New("invalid token claims")
	}

	userID, err := parseUserID(claims.UserID)
	if err != nil {
		return entity.Caller{}, err
	}

	caller := entity.Caller{UserID: userID, Email: claims.Email}
	if err := caller.Validate(); err != nil {
		return entity.Caller{}, err
	}
	return caller, nil
}

// parseUserID accepts the claim as a JSON number or a numeric string
func parseUserID(raw any) (uint64, error) {
	switch v := raw.(type) {
	case float64:
		if v <= 0 || v != float64(uint64(v)) {
			return 0, fmt.Errorf("invalid user_id claim: %v", v)
		}
		return uint64(v), nil
	case json.Number:
		return strconv.ParseUint(v.String(), 10, 64)
	case string:
		return strconv.ParseUint(strings.TrimSpace(v), 10, 64)
	default:
		return 0, errors.New("missing user_id claim")
	}
}

// Auth rejects requests without a valid bearer token and stores the caller
func Auth(verifier *TokenVerifier, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			abortUnauthorized(c)
			return
		}

		caller, err := verifier.Verify(strings.TrimSpace(token))
		if err != nil {
			logger.Warn("Rejected bearer token", map[string]any{
				"error":      err.Error(),
				"path":       c.Request.URL.Path,
				"request_id": coreport.RequestIDFromContext(c.Request.Context()),
			})
			abortUnauthorized(c)
			return
		}

		c.Set(callerKey, caller)
		c.Next()
	}
}

// CallerFromContext returns the caller stored by Auth
func CallerFromContext(c *gin.Context) (entity.Caller, bool) {
	value, exists := c.Get(callerKey)
	if !exists {
		return entity.Caller{}, false
	}
	caller, ok := value.(entity.Caller)
	return caller, ok
}

// SetCaller stores a caller directly; used by tests that bypass token checks
func SetCaller(c *gin.Context, caller entity.Caller) {
	c.Set(callerKey, caller)
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrAuthRequired),
		Message: "Authentication required",
	})
}
