// Package response writes the API's JSON envelope. Every endpoint answers
// {"success":true,"data":...} on the happy path and
// {"success":false,"error":{"code","message"}} otherwise, so clients switch
// on the error code, never on the message text.
package response

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	fail(c, statusCode, gin.H{
		"code":    code,
		"message": message,
	})
}

// ErrorWithDetails carries a structured payload next to the message, used
// for per-field validation output.
func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	fail(c, statusCode, gin.H{
		"code":    code,
		"message": message,
		"details": details,
	})
}

func fail(c *gin.Context, statusCode int, errBody gin.H) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   errBody,
	})
}
