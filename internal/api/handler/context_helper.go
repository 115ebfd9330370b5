package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"rotahub/pkg/jwt"
	"rotahub/pkg/response"
)

// MustGetClaims extracts the verified token claims the auth middleware
// injected. Returns false after writing a 401 when they are missing.
func MustGetClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, exists := c.Get("claims")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	if !ok {
		response.Unauthorized(c, 10002, "not authenticated")
		return nil, false
	}
	return claims, true
}

// pathID parses the :id path parameter. Returns false after writing a 400
// when it is not a positive integer.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.BadRequest(c, 10001, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// queryPeriod reads the optional year/month query pair, defaulting to the
// current month. Range errors are left to the services.
func queryPeriod(c *gin.Context) (int, int) {
	now := time.Now()
	year, month := now.Year(), int(now.Month())
	if v := c.Query("year"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			year = n
		}
	}
	if v := c.Query("month"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			month = n
		}
	}
	return year, month
}
