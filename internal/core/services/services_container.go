package services

import (
	portsrepo "github.com/fin-api/fin_api_app/internal/core/ports/repositories"
	portssvc "github.com/fin-api/fin_api_app/internal/core/ports/services"
	"github.com/fin-api/fin_api_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Statement = NewStatementService(repos.StatementRepo, repos.UserRepo)
	container.Token = NewTokenService(cfg)

	return container
}
