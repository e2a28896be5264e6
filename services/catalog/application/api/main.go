package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/aquacatalog/pkg/app"
	"github.com/ghuser/aquacatalog/pkg/auth"
	"github.com/ghuser/aquacatalog/services/catalog/application/handlers"
	appsvcs "github.com/ghuser/aquacatalog/services/catalog/application/services"
)

// CatalogRoutes registers catalog endpoints on the provided chi router.
// Admin routes sit behind the bearer-token middleware; the storefront
// listing is open.
func CatalogRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)

	r.Route("/admin", func(r chi.Router) {
		r.Post("/login", handlers.NewLoginHandler(a.Auth).Execute)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(a.Auth, a.Logger))
			r.Route("/models", func(r chi.Router) {
				r.Post("/", handlers.NewPostModelHandler(svcs).Execute)
				r.Get("/", handlers.NewGetModelsHandler(svcs).Execute)
				r.Put("/{id}", handlers.NewPutModelHandler(svcs).Execute)
				r.Delete("/{id}", handlers.NewDeleteModelHandler(svcs).Execute)
			})
		})
	})

	r.Get("/models", handlers.NewPublicModelsHandler(svcs).Execute)
}
