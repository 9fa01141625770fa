package response

import "github.com/gin-gonic/gin"

// Error writes {"error": message} with the given status.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// Message writes {"message": message} with the given status.
func Message(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// Status writes {"success": ..., "message": ...} with the given status. Used
// by the login and password reset flows, whose clients read the success flag.
func Status(c *gin.Context, code int, success bool, message string, extras gin.H) {
	body := gin.H{"success": success, "message": message}
	for k, v := range extras {
		body[k] = v
	}
	c.JSON(code, body)
}
