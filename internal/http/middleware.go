package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// withLoopbackOnly rejects anything that did not originate on this machine.
func withLoopbackOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isLoopbackRequest(c.Request) {
			abortWithError(c, http.StatusForbidden, HTTPErrorForbiddenText)
			return
		}
		c.Next()
	}
}

// withSafeLocalHost guards against DNS rebinding: the Host header must name
// the loopback interface.
func withSafeLocalHost() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isSafeLocalHost(c.Request.Host) {
			abortWithError(c, http.StatusForbidden, HTTPErrorForbiddenHost)
			return
		}
		c.Next()
	}
}
