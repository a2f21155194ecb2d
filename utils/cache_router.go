package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	CacheNoCache = 0
	CacheCustom  = -1
	CacheOneDay  = 86400
)

type CacheRouter struct {
	CacheTime int // defaults to CacheNoCache = 0
}

// Handler sets the cache-control header. Pages are re-rendered on every change, so the default is no-cache.
func (cr *CacheRouter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch cr.CacheTime {
		case CacheCustom:
		case CacheNoCache:
			c.Header("cache-control", "no-cache")
		default:
			c.Header("cache-control", "public, max-age="+strconv.Itoa(cr.CacheTime))
		}
		c.Next()
	}
}
