package response

import "github.com/gin-gonic/gin"

// The wire envelope is error:false/true plus a message; clients key off the
// error flag, not the HTTP status alone.

func OK(c *gin.Context, statusCode int, message string, data interface{}) {
	body := gin.H{
		"error":   false,
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(statusCode, body)
}

func Data(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"error": false,
		"data":  data,
	})
}

func Fail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"error":   true,
		"message": message,
	})
}
