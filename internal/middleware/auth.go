package middleware

import (
	"net/http"
	"strings"

	"github.com/brightdesk-dev/brightdesk/internal/auth"
	"github.com/brightdesk-dev/brightdesk/internal/authz"
	"github.com/brightdesk-dev/brightdesk/internal/models"
	"github.com/brightdesk-dev/brightdesk/internal/types"
	"github.com/gin-gonic/gin"
)

// AuthenticatedUser is the request-scoped identity resolved from a
// valid bearer token.
type AuthenticatedUser struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UserResolver maps a verified token subject to a stored user.
type UserResolver interface {
	FindByEmail(email string) (*models.User, error)
}

// RequestAuth runs once per inbound request. Public routes bypass the
// token requirement entirely; every other route needs a valid bearer
// token, and admin routes additionally need the ADMIN role. Resolving
// the identity is a read; no persistent state is mutated here.
func RequestAuth(users UserResolver, tokens *auth.TokenManager, policy *authz.Policy) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		method := ctx.Request.Method
		path := ctx.Request.URL.Path

		if policy.IsPublic(method, path) {
			ctx.Next()
			return
		}

		authHeader := ctx.GetHeader("Authorization")
		if authHeader == "" {
			reject(ctx, "Authorization token is required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			reject(ctx, "Authorization header format must be Bearer {token}")
			return
		}

		email, err := tokens.Verify(parts[1])
		if err != nil {
			reject(ctx, "Invalid or expired token")
			return
		}

		user, err := users.FindByEmail(email)
		if err != nil {
			reject(ctx, "Invalid or expired token")
			return
		}

		if policy.Decide(method, path, user.Role, true) != authz.Allow {
			reject(ctx, "You do not have permission to access this resource.")
			return
		}

		ctx.Set(types.ContextUserKey, AuthenticatedUser{
			ID:    user.ID,
			Email: user.Email,
			Role:  user.Role,
		})
		ctx.Next()
	}
}

// reject writes the structured 403 envelope, unless a response has
// already been committed.
func reject(ctx *gin.Context, message string) {
	if ctx.Writer.Written() {
		ctx.Abort()
		return
	}
	ctx.AbortWithStatusJSON(http.StatusForbidden,
		types.NewErrorResponse("Access Denied", message, ctx.Request.URL.Path))
}
