package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/produtos-api/pkg/app"
	"github.com/ghuser/produtos-api/pkg/auth"
	"github.com/ghuser/produtos-api/services/product/application/handlers"
	appsvcs "github.com/ghuser/produtos-api/services/product/application/services"
)

// ProductRoutes registers product and profile endpoints on the provided chi
// router. Every route in this group passes through auth.RequireIdentity
// before any handler runs; there is no unauthenticated data path.
func ProductRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	log := a.Logger

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireIdentity(a.TokenCodec, log))

		r.Route("/products", func(r chi.Router) {
			r.Post("/", handlers.NewPostProductHandler(svcs, log).Execute)
			r.Get("/", handlers.NewGetProductsHandler(svcs, log).Execute)
			r.Get("/{id}", handlers.NewGetProductHandler(svcs, log).Execute)
			r.Put("/{id}", handlers.NewPutProductHandler(svcs, log).Execute)
			r.Delete("/{id}", handlers.NewDeleteProductHandler(svcs, log).Execute)
		})

		r.Get("/profile", handlers.NewGetProfileHandler(svcs, log).Execute)
	})
}
