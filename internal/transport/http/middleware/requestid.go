package middleware

import (
	"github.com/gin-gonic/gin"

	"beer-market/pkg/utils"
)

const KeyRequestID = "X-Request-ID"

// RequestID 透传或生成请求标识，便于日志串联
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(KeyRequestID)
		if rid == "" {
			rid = utils.NewID()
		}
		c.Header(KeyRequestID, rid)
		c.Set(KeyRequestID, rid)
		c.Next()
	}
}
