package controllers

import (
	"github.com/Dhanushvel123/PetShop-Server/pkg/apperrors"
	"github.com/Dhanushvel123/PetShop-Server/pkg/logger"
	"github.com/gin-gonic/gin"
)

// respondError maps any error to its HTTP status and a {"message": ...}
// body. Unexpected errors become a 500 and are logged with the request ID.
func respondError(c *gin.Context, err error) {
	appErr := apperrors.From(err)
	if appErr.Code >= 500 {
		logger.Error(c, "Request failed", err)
	}
	c.JSON(appErr.Code, gin.H{"message": appErr.Message})
}
