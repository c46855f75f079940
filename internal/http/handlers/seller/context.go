package seller

import (
	handlershared "github.com/reloop-next/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

func getSellerID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUintWithKeys(c, "user_id", "error.user_id_invalid", "error.user_id_type_invalid")
}
