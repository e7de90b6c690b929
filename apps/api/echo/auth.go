package echoapi

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/trezcool/masomo-calendar/core"
	"github.com/trezcool/masomo-calendar/core/calendar"
	"github.com/trezcool/masomo-calendar/core/user"
)

const (
	contextTokenKey  = "userToken"
	contextCallerKey = "caller"
)

// Claims represents the authorization claims transmitted via a JWT.
type Claims struct {
	jwt.StandardClaims
	Roles []string `json:"roles,omitempty"`
}

func newJWTConfig(conf *core.Config) middleware.JWTConfig {
	return middleware.JWTConfig{
		SigningKey:    []byte(conf.SecretKey),
		SigningMethod: middleware.AlgorithmHS256,
		ContextKey:    contextTokenKey,
		Claims:        new(Claims),
	}
}

func NewClaims(conf *core.Config, subject string, roles []string) *Claims {
	now := time.Now()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    conf.AppName,
			Subject:   subject,
			Audience:  "Academia",
			ExpiresAt: now.Add(conf.Server.JWTExpirationDelta).Unix(),
			IssuedAt:  now.Unix(),
		},
		Roles: roles,
	}
}

// GenerateToken generates a signed JWT token string representing the Claims.
func GenerateToken(conf *core.Config, claims *Claims) (string, error) {
	method := jwt.GetSigningMethod(middleware.AlgorithmHS256)
	token := jwt.NewWithClaims(method, claims)

	ss, err := token.SignedString([]byte(conf.SecretKey))
	if err != nil {
		return "", errors.Wrap(err, "signing token")
	}
	return ss, nil
}

func getContextClaims(ctx echo.Context) (Claims, error) {
	if token, ok := ctx.Get(contextTokenKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return *claims, nil
		}
	}
	return Claims{}, errUnauthorized
}

func callerFromClaims(claims Claims) calendar.Caller {
	role := user.CalendarRole(claims.Roles)
	if claims.Subject == "" {
		role = calendar.RoleAnonymous
	}
	return calendar.Caller{ID: claims.Subject, Role: role}
}

// getContextCaller returns the anonymous caller when the request carries no valid token.
func getContextCaller(ctx echo.Context) calendar.Caller {
	if caller, ok := ctx.Get(contextCallerKey).(calendar.Caller); ok {
		return caller
	}
	if claims, err := getContextClaims(ctx); err == nil {
		return callerFromClaims(claims)
	}
	return calendar.Caller{Role: calendar.RoleAnonymous}
}
