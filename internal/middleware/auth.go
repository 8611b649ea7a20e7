package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/model"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/serializer"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/service"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/pkg/utils/tokens"
)

// UserKey is the gin context key holding the authenticated *model.User.
const UserKey = "user"

const authenticateHeader = "Token"

// Authenticate resolves the Authorization header to a user. Requests without
// the header pass through anonymously; permission checks decide what an
// anonymous caller may do. Bad credentials are rejected here with 401.
func Authenticate(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		ctx, span := otel.Tracer("middleware").Start(c.Request.Context(), "authenticate",
			trace.WithAttributes(attribute.String("middleware", "authenticate")))

		scheme, credential, ok := tokens.ParseAuthorization(header)
		if !ok {
			span.SetAttributes(attribute.Bool("authenticated", false))
			span.End()
			abortUnauthorized(c, "invalid authorization header")
			return
		}

		var (
			user *model.User
			err  error
		)
		switch scheme {
		case tokens.SchemeToken, tokens.SchemeBearer:
			user, err = auth.AuthenticateToken(ctx, credential)
		case tokens.SchemeBasic:
			username, password, ok := tokens.ParseBasic(credential)
			if !ok {
				err = service.ErrInvalidCredentials
				break
			}
			user, err = auth.AuthenticatePassword(ctx, username, password)
		default:
			err = service.ErrInvalidCredentials
		}

		if err != nil {
			span.SetAttributes(attribute.Bool("authenticated", false))
			if errors.Is(err, service.ErrInvalidCredentials) || errors.Is(err, service.ErrInactiveUser) {
				span.End()
				abortUnauthorized(c, err.Error())
				return
			}
			span.RecordError(err)
			span.End()
			c.AbortWithStatusJSON(http.StatusInternalServerError, serializer.DBErr("", err))
			return
		}

		span.SetAttributes(
			attribute.Int("user_id", int(user.ID)),
			attribute.Bool("authenticated", true),
		)
		span.End()

		c.Set(UserKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user, or nil for anonymous requests.
func CurrentUser(c *gin.Context) *model.User {
	v, ok := c.Get(UserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*model.User)
	return u
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", authenticateHeader)
	c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr(msg))
}
