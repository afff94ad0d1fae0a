package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/40min/flocus-sub000/pkg/apierrors"
)

const userIDKey = "user_id"

// IdentityMiddleware resolves the acting user from the X-User-ID header.
// The id arrives already authenticated by the edge; this service only
// scopes data to it and never re-derives it.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := primitive.ObjectIDFromHex(c.GetHeader("X-User-ID"))
		if err != nil {
			lang := GetLang(c)
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgMissingUser, lang),
			)
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

func GetUserID(c *gin.Context) primitive.ObjectID {
	if value, exists := c.Get(userIDKey); exists {
		if id, ok := value.(primitive.ObjectID); ok {
			return id
		}
	}
	return primitive.NilObjectID
}
