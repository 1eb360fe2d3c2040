package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	u "github.com/towoju5/bridge-verification-system-sub001/utils"
	"github.com/towoju5/bridge-verification-system-sub001/utils/token"
)

// SessionMiddleware verifies the bearer session token and checks that it
// is scoped to the submission addressed by the route. A token for one
// submission can never touch another.
func SessionMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			u.APIResponse(ctx, http.StatusUnauthorized, "error", "Session token is required", nil)
			ctx.Abort()
			return
		}

		submissionID, err := token.ValidateSessionToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			u.APIResponse(ctx, http.StatusUnauthorized, "error", "Invalid or expired session token", nil)
			ctx.Abort()
			return
		}

		if routeID := ctx.Param("id"); routeID != "" && routeID != submissionID.String() {
			u.APIResponse(ctx, http.StatusForbidden, "error", "Session token does not match submission", nil)
			ctx.Abort()
			return
		}

		ctx.Set("submission_id", submissionID.String())
		ctx.Next()
	}
}
