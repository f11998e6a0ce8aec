package server

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kutbudev/notebook-cli/internal/store"
)

// New builds the HTTP API over the domain store. The surface matches what the
// remote client expects: JSON bodies, 2xx with a body or 204 with none.
func New(st *store.Store, healthcheckPath string) *gin.Engine {
	r := gin.Default()
	r.Use(requestID())

	if healthcheckPath == "" {
		healthcheckPath = "/health"
	}
	r.GET(healthcheckPath, func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	h := &handlers{store: st}

	r.GET("/notes", h.ListNotes)
	r.POST("/notes", h.CreateNote)
	r.GET("/notes/:id", h.GetNote)
	r.PUT("/notes/:id", h.UpdateNote)
	r.DELETE("/notes/:id", h.DeleteNote)

	r.GET("/categories", h.ListCategories)
	r.POST("/categories", h.CreateCategory)

	return r
}

// requestID tags every response with an X-Request-ID, generating one when the
// caller didn't send one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}
