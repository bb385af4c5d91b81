package services

import (
	"github.com/ghuser/produtos-api/pkg/app"
	"github.com/ghuser/produtos-api/pkg/cache"
	productpg "github.com/ghuser/produtos-api/services/product/infrastructure/persistence/postgres"
	userpg "github.com/ghuser/produtos-api/services/user/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Product *ProductService
}

// New wires all product application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := productpg.NewProductRepository(a.Db, a.EventBus)
	users := userpg.NewUserRepository(a.Db)
	productCache := cache.NewProductCache(a.Redis)
	return &Services{
		Product: NewProductService(repo, users, productCache),
	}
}
