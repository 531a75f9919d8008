package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgNotFound      = "Task not found."
	msgInternalError = "An internal error occurred. Please try again."
)

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", c.Param("id"))
	}
	return id, nil
}

func redirectHome(c *gin.Context) {
	c.Redirect(http.StatusFound, "/")
}

// NotFound handles unknown routes the same way as an unknown task.
func NotFound(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		log.Infof("[route][404] %s %s", c.Request.Method, c.Request.URL.Path)
		addFlash(c, log, flashError, msgNotFound)
		redirectHome(c)
	}
}

// Recovery turns a panic into a generic notice and a redirect.
func Recovery(log *zap.SugaredLogger) gin.RecoveryFunc {
	return func(c *gin.Context, recovered any) {
		log.Errorf("[recovery][panic] %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		addFlash(c, log, flashError, msgInternalError)
		c.Abort()
		redirectHome(c)
	}
}
