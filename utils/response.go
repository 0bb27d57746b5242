// File: /utils/response.go
package utils

import (
	"github.com/gin-gonic/gin"
)

// SendMessage writes the standard {message} body every endpoint shares.
func SendMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// SendRegisterFailure writes a registration failure with the pass flag the
// frontend keys on.
func SendRegisterFailure(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message, "pass": false})
}

// SendConflict surfaces a store-level uniqueness violation, keeping the
// store's native code for client display.
func SendConflict(c *gin.Context, status int, message, code string) {
	c.JSON(status, gin.H{"message": message, "code": code, "pass": false})
}
