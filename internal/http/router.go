package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/you/marketsvc/internal/http/handlers"
)

func BuildRouter(ch *handlers.CatalogHandlers, ph *handlers.ProfileHandlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	goods := r.Group("/goods")
	goods.GET("", ch.List)
	goods.GET("/:id", ch.Detail)
	goods.POST("", ch.Create)
	goods.PUT("/:id", ch.Update)

	profiles := r.Group("/profiles")
	profiles.POST("", ph.Create)
	profiles.PUT("/:user_id", ph.Update)
	profiles.POST("/:user_id/verify", ph.RequestVerification)

	return r
}
