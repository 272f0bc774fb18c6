package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Dhanushvel123/PetShop-Server/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newProtectedRouter(tokens services.ITokenService) *gin.Engine {
	r := gin.New()
	r.GET("/protected", RequireAuth(tokens), func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "no user id"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": userID.Hex()})
	})
	return r
}

func get(r http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	tokens := services.NewTokenService("test-secret", time.Hour)
	userID := primitive.NewObjectID()
	r := newProtectedRouter(tokens)

	t.Run("valid token passes and exposes the user id", func(t *testing.T) {
		token, err := tokens.Generate(userID.Hex(), "dhanush")
		assert.NoError(t, err)

		w := get(r, "Bearer "+token)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), userID.Hex())
	})

	t.Run("missing header - 401", func(t *testing.T) {
		w := get(r, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Access denied. No token provided.")
	})

	t.Run("missing Bearer prefix - 401", func(t *testing.T) {
		token, _ := tokens.Generate(userID.Hex(), "dhanush")

		w := get(r, token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("tampered token - 401", func(t *testing.T) {
		token, _ := tokens.Generate(userID.Hex(), "dhanush")

		w := get(r, "Bearer "+token+"x")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid token")
	})

	t.Run("token signed with another secret - 401", func(t *testing.T) {
		other := services.NewTokenService("other-secret", time.Hour)
		token, _ := other.Generate(userID.Hex(), "dhanush")

		w := get(r, "Bearer "+token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token - 401", func(t *testing.T) {
		expired := services.NewTokenService("test-secret", -time.Minute)
		token, _ := expired.Generate(userID.Hex(), "dhanush")

		w := get(r, "Bearer "+token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token carrying a non-ObjectID subject - 401", func(t *testing.T) {
		token, _ := tokens.Generate("not-an-object-id", "dhanush")

		w := get(r, "Bearer "+token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCurrentUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := CurrentUserID(c)
	assert.False(t, ok)

	id := primitive.NewObjectID()
	c.Set(UserIDKey, id.Hex())

	got, ok := CurrentUserID(c)
	assert.True(t, ok)
	assert.Equal(t, id, got)
}
