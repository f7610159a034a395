package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/ecoleta/pkg/logger"
	"github.com/ghuser/ecoleta/services/point/application/handlers"
	appsvcs "github.com/ghuser/ecoleta/services/point/application/services"
)

// multipartMemory is the share of a registration form kept in memory.
const multipartMemory = 8 << 20

// PointRoutes registers point and item endpoints on the provided chi router.
func PointRoutes(r chi.Router, svcs *appsvcs.Services, log logger.Logger) {
	r.Group(func(r chi.Router) {
		r.Get("/items", handlers.NewListItemsHandler(svcs, log).Execute)
		r.Route("/points", func(r chi.Router) {
			r.Post("/", handlers.NewPostPointHandler(svcs, log, multipartMemory).Execute)
			r.Get("/{pointID}", handlers.NewGetPointHandler(svcs, log).Execute)
		})
	})
}
