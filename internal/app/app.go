package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/marketsvc/internal/config"
	httpx "github.com/you/marketsvc/internal/http"
	"github.com/you/marketsvc/internal/http/handlers"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	container, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer container.Close()

	if err := container.RedisClient.Ping(context.Background()).Err(); err != nil {
		// The view counter is advisory; a dead cache must not block startup
		log.Printf("redis unavailable, view counting degraded: %v", err)
	}

	catalogH := handlers.NewCatalogHandlers(
		container.ProductRepo,
		container.SearchSvc,
		container.ViewCounter,
		container.NoveltySvc,
		cfg.PageSize,
	)
	profileH := handlers.NewProfileHandlers(container.ProfileRepo, container.VerificationSvc)

	r := httpx.BuildRouter(catalogH, profileH)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
