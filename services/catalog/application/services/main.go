package services

import (
	"github.com/ghuser/aquacatalog/pkg/app"
	"github.com/ghuser/aquacatalog/services/catalog/infrastructure/persistence/mongodb"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Catalog *CatalogService
}

// New wires all catalog application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	repo := mongodb.NewModelRepository(a.Db)
	return &Services{
		Catalog: NewCatalogService(repo, a.Assets, a.Logger),
	}
}
