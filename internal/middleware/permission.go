package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/model"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/serializer"
)

// Permission decides whether user may perform a request with the given
// method. user is nil for anonymous callers.
type Permission func(user *model.User, method string) bool

// StaffOnly admits authenticated staff users.
func StaffOnly(user *model.User, _ string) bool {
	return user != nil && user.IsStaff
}

// AuthenticatedReadStaffWrite admits any authenticated user for safe methods
// and only staff for everything else.
func AuthenticatedReadStaffWrite(user *model.User, method string) bool {
	if isSafeMethod(method) {
		return user != nil
	}
	return user != nil && user.IsStaff
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

// Require aborts with 401 for anonymous callers and 403 for authenticated
// callers the permission rejects. Nothing downstream runs on rejection.
func Require(perm Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if perm(user, c.Request.Method) {
			c.Next()
			return
		}
		if user == nil {
			c.Header("WWW-Authenticate", authenticateHeader)
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("authentication credentials were not provided"))
			return
		}
		c.AbortWithStatusJSON(http.StatusForbidden, serializer.ForbiddenErr("you do not have permission to perform this action"))
	}
}
