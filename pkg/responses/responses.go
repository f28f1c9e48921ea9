// Package responses provides gin helpers for services that expose
// their own HTTP API and want to answer with the same envelope the
// core service speaks.
package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error writes the uniform error envelope with status 400.
func Error(c *gin.Context, message string) {
	ErrorStatus(c, message, http.StatusBadRequest)
}

// ErrorStatus writes the uniform error envelope with an explicit
// status code.
func ErrorStatus(c *gin.Context, message string, status int) {
	c.JSON(status, gin.H{
		"result":  "error",
		"message": message,
	})
}

// Success writes a bare success envelope with status 200.
func Success(c *gin.Context) {
	SuccessStatus(c, http.StatusOK, "", nil)
}

// SuccessMessage writes a success envelope carrying a message.
func SuccessMessage(c *gin.Context, message string) {
	SuccessStatus(c, http.StatusOK, message, nil)
}

// SuccessData writes a success envelope with extra payload fields
// merged in at the top level.
func SuccessData(c *gin.Context, data gin.H) {
	SuccessStatus(c, http.StatusOK, "", data)
}

// SuccessStatus writes a success envelope with full control over
// status, optional message and optional extra fields. Payload fields
// cannot shadow the result discriminant.
func SuccessStatus(c *gin.Context, status int, message string, data gin.H) {
	body := gin.H{}
	for k, v := range data {
		body[k] = v
	}
	if message != "" {
		body["message"] = message
	}
	body["result"] = "success"
	c.JSON(status, body)
}
