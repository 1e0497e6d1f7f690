package bootstrap

import (
	"net/http"

	"nvp-welfare-backend/internal/config"
	"nvp-welfare-backend/internal/interfaces/router"
)

// New creates the net/http handler for Vercel serverless (api handler imports this package, not internal).
func New() (http.Handler, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	srv, err := router.CreateApp(cfg)
	if err != nil {
		return nil, err
	}
	return router.Handler(srv.App), nil
}
