package public

import (
	"strings"

	handlershared "github.com/simplyfresh/simplyfresh/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

const cartTokenHeader = "X-Cart-Token"

func getContextUintWithKeys(c *gin.Context, key, invalidKey, typeInvalidKey string) (uint, bool) {
	return handlershared.GetContextUintWithKeys(c, key, invalidKey, typeInvalidKey)
}

func getUserID(c *gin.Context) (uint, bool) {
	return getContextUintWithKeys(c, "user_id", "error.user_id_invalid", "error.user_id_type_invalid")
}

func getCartToken(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(cartTokenHeader))
}
