package bundle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/johann/pinboard/internal/cid"
	"github.com/johann/pinboard/internal/router"
)

// Handler serves the bundle for local preview. Responses carry the file CID
// as a strong ETag and honour If-None-Match.
func (b *Bundle) Handler() http.Handler {
	engine := router.NewEngine()
	engine.Use(gin.Recovery())

	serve := func(c *gin.Context) {
		f, ok := b.File(c.Param("filepath"))
		if !ok {
			router.NotFound(c)
			return
		}

		etag := cid.ETag(f.ETag)
		c.Header("ETag", etag)
		c.Header("Cache-Control", "no-cache")
		if cid.MatchETag(c.GetHeader("If-None-Match"), f.ETag) {
			c.Status(http.StatusNotModified)
			return
		}
		c.Data(http.StatusOK, f.ContentType, f.Data)
	}

	engine.GET("/*filepath", serve)
	engine.HEAD("/*filepath", serve)
	return engine
}
