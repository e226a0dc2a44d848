package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"list-authors/cmd/api/trace"
	"list-authors/internal/logger"
)

// RequestLogging 는 요청 진입부터 응답까지 걸린 시간을 구조화 로그 한 줄로 남긴다.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		path := c.Request.URL.Path
		method := c.Request.Method
		// query_params 는 멀티 값 쿼리도 모두 보존하기 위해 map[string][]string 으로 기록한다.
		queryParams := map[string][]string{}
		for key, values := range c.Request.URL.Query() {
			if len(values) > 0 {
				queryParams[key] = values
			}
		}

		c.Next()

		fields := logger.Fields{
			"method":       method,
			"path":         path,
			"query_params": queryParams,
			"status":       c.Writer.Status(),
			"duration_ms":  time.Since(start).Milliseconds(),
			"request_id":   trace.RequestIDFromContext(c.Request.Context()),
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}
		// 4xx 는 클라이언트 잘못이므로 warn, 5xx 만 error 로 남긴다
		switch status := c.Writer.Status(); {
		case status >= 500:
			logger.ErrorWithFields("completed request", fields)
		case status >= 400:
			logger.WarnWithFields("completed request", fields)
		default:
			logger.InfoWithFields("completed request", fields)
		}
	}
}
