package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPError is returned by handlers to answer with a specific status.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return http.StatusText(e.Status)
	}
	return e.Message
}

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

// Wrap adapts a HandlerFunc to gin.
func Wrap(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, err := h(c)
		Respond(c, v, err)
	}
}

// Respond writes a handler result:
//
//	string  -> 200 text/plain
//	[]byte  -> 200 application/octet-stream
//	nil     -> 204
//	other   -> 200 JSON
//
// An *HTTPError answers with its status; any other error with 500.
func Respond(c *gin.Context, v any, err error) {
	if err != nil {
		var httpErr *HTTPError
		if errors.As(err, &httpErr) {
			c.JSON(httpErr.Status, gin.H{"error": httpErr.Error()})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": http.StatusText(http.StatusInternalServerError)})
		return
	}

	switch body := v.(type) {
	case nil:
		c.Status(http.StatusNoContent)
	case string:
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
	case []byte:
		c.Data(http.StatusOK, "application/octet-stream", body)
	default:
		c.JSON(http.StatusOK, body)
	}
}

// NotFound answers requests that matched no route.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error": "not found",
		"path":  c.Request.URL.Path,
	})
}
