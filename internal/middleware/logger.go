package middleware

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs every request, turns panics into JSON 500 responses and
// records server-side failures with enough context to chase them.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("%v", recovered)
				log.Printf("panic method=%s path=%s client_ip=%s error=%q stack=%s",
					c.Request.Method, c.Request.URL.Path, c.ClientIP(), err.Error(), debug.Stack())

				c.JSON(http.StatusInternalServerError, gin.H{
					"error":   true,
					"message": "An unexpected error occurred",
				})
				c.Abort()
				return
			}

			status := c.Writer.Status()
			line := fmt.Sprintf("%s %s status=%d latency=%s client_ip=%s",
				c.Request.Method, c.Request.URL.RequestURI(), status, time.Since(start), c.ClientIP())

			if status >= http.StatusInternalServerError {
				log.Printf("request_error %s errors=%v", line, c.Errors.Errors())
				return
			}
			log.Printf("request %s", line)
		}()

		c.Next()
	}
}
