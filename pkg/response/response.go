package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// All endpoints share a flat envelope: successful responses carry
// {"success": true} merged with the payload, failures carry
// {"success": false, "message": "..."}.

func envelope(extra gin.H) gin.H {
	out := gin.H{"success": true}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// OK sends a 200 with the payload merged into the success envelope.
func OK(c *gin.Context, extra gin.H) {
	c.JSON(http.StatusOK, envelope(extra))
}

// Created sends a 201 for successfully created resources.
func Created(c *gin.Context, extra gin.H) {
	c.JSON(http.StatusCreated, envelope(extra))
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// BadRequest sends a 400 failure envelope.
func BadRequest(c *gin.Context, message string) {
	fail(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 failure envelope.
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Not authorized"
	}
	fail(c, http.StatusUnauthorized, message)
}

// NotFound sends a 404 failure envelope.
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "resource not found"
	}
	fail(c, http.StatusNotFound, message)
}

// InternalError sends a 500 failure envelope. Internal error details never
// reach the caller.
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "internal server error"
	}
	fail(c, http.StatusInternalServerError, message)
}

// AbortUnauthorized is Unauthorized for middleware use.
func AbortUnauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Not authorized"
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": message})
}

// AbortForbidden is Forbidden for middleware use.
func AbortForbidden(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": message})
}
