package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/crf-go/models"
	"github.com/linskybing/crf-go/response"
	"github.com/linskybing/crf-go/types"
)

// Can answers capability questions for the gate middleware. Satisfied by
// services.Authorizer.
type CapabilityChecker interface {
	Can(userID uint, capability models.Capability) (bool, error)
}

type Auth struct {
	checker CapabilityChecker
}

func NewAuth(checker CapabilityChecker) *Auth {
	return &Auth{checker: checker}
}

var GetUserIDFromContext = func(c *gin.Context) (uint, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return 0, errors.New("user claims not found in context")
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return 0, errors.New("invalid user claims type")
	}

	return claims.UserID, nil
}

// Require gates a route behind one capability. Request-specific checks
// (department, assignee) still run inside the workflow.
func (a *Auth) Require(capability models.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := GetUserIDFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
			return
		}

		permitted, err := a.checker.Can(uid, capability)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
			return
		}
		if !permitted {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "Permission denied"})
			return
		}
		c.Next()
	}
}
