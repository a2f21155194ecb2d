package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HandlerFunc gets the database handle, already bound to the request context
type HandlerFunc func(c *gin.Context, tx *gorm.DB)

// Router is a wrapper class that hands the database handle to every handler explicitly
type Router struct {
	Base *gin.Engine
	DB   *gorm.DB
}

func (cr *Router) baseExec(c *gin.Context, handler HandlerFunc) {
	handler(c, cr.DB.WithContext(c.Request.Context()))
}

func (cr *Router) POST(path string, handler HandlerFunc) {
	cr.Base.POST(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}

func (cr *Router) GET(path string, handler HandlerFunc) {
	cr.Base.GET(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}
