package middleware

import (
	"strings"

	"github.com/Dhanushvel123/PetShop-Server/pkg/apperrors"
	"github.com/Dhanushvel123/PetShop-Server/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserIDKey is the context key carrying the authenticated user's id.
const UserIDKey = "userID"

// RequireAuth verifies the Authorization bearer token and stores the caller's
// user id in the request context for downstream handlers.
func RequireAuth(tokens services.ITokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortWith(c, apperrors.ErrMissingToken)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := tokens.Validate(tokenStr)
		if err != nil {
			abortWith(c, apperrors.ErrInvalidToken)
			return
		}
		if _, err := primitive.ObjectIDFromHex(userID); err != nil {
			abortWith(c, apperrors.ErrInvalidToken)
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// CurrentUserID returns the authenticated caller's id set by RequireAuth.
func CurrentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	raw, exists := c.Get(UserIDKey)
	if !exists {
		return primitive.NilObjectID, false
	}
	hex, ok := raw.(string)
	if !ok {
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

func abortWith(c *gin.Context, err *apperrors.Error) {
	c.AbortWithStatusJSON(err.Code, gin.H{"message": err.Message})
}
