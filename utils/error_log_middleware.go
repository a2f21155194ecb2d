package utils

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"
)

// Browsers ask for these on their own, their 404s are noise
var errorLogSkipPaths = map[string]bool{
	"/favicon.ico": true,
}

type errorLogWriter struct {
	gin.ResponseWriter
	gc *gin.Context
}

func (w errorLogWriter) Write(b []byte) (int, error) {
	status := w.gc.Writer.Status()
	if status >= 400 && !errorLogSkipPaths[w.gc.Request.URL.Path] {
		route := w.gc.FullPath()
		if route == "" {
			route = "(no route)"
		}
		// Rendered pages are multi-line HTML, keep one log line per response
		body := strings.Join(strings.Fields(string(b)), " ")
		log.Printf("[DEBUG ERROR]: %s %s (%s), Request %s, Status %d, Body: %.500s",
			w.gc.Request.Method, w.gc.Request.URL.Path, route, GetRequestID(w.gc), status, body)
	}
	return w.ResponseWriter.Write(b)
}

// ErrorLogMiddleware logs the body of every error response. It doesn't work with GZIP
func ErrorLogMiddleware(c *gin.Context) {
	c.Writer = &errorLogWriter{gc: c, ResponseWriter: c.Writer}
	c.Next()
}
