//go:build wireinject
// +build wireinject

package injector

import (
	"github.com/google/wire"
	"github.com/safatanc/admin-console/internal/app/deliveries"
	"github.com/safatanc/admin-console/internal/app/middlewares"
	"github.com/safatanc/admin-console/internal/app/services"
	"github.com/safatanc/admin-console/internal/app/views"
	"github.com/safatanc/admin-console/internal/infrastructures"
)

// Infrastructure providers
var infrastructureSet = wire.NewSet(
	infrastructures.NewDatabase,
	infrastructures.NewRedisClient,
	infrastructures.NewValidator,
	views.NewRenderer,
	wire.Value("admin-console"),
	middlewares.NewRateLimiter,
)

// Service providers
var serviceSet = wire.NewSet(
	services.NewUserService,
	services.NewGroupService,
)

// Middleware providers
var middlewareSet = wire.NewSet(
	middlewares.NewRateLimitMiddleware,
)

// Handler providers
var handlerSet = wire.NewSet(
	deliveries.NewHealthHandler,
	deliveries.NewUserHandler,
	deliveries.NewGroupHandler,
	deliveries.NewDashboardHandler,
	wire.Struct(new(Application), "*"),
)

// InitializeApplication initializes the application with all its dependencies
func InitializeApplication(config *infrastructures.AppConfig) (*Application, error) {
	wire.Build(
		infrastructureSet,
		serviceSet,
		middlewareSet,
		handlerSet,
	)
	return &Application{}, nil
}

// InitializeUserService builds the user service alone, for commands
// that only touch the store.
func InitializeUserService(config *infrastructures.AppConfig) *services.UserService {
	wire.Build(
		infrastructures.NewDatabase,
		infrastructures.NewValidator,
		services.NewUserService,
	)
	return nil
}
