package memory

import (
	portsrepo "github.com/fin-api/fin_api_app/internal/core/ports/repositories"
)

func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:      newMemoryUserRepository(),
		StatementRepo: newMemoryStatementRepository(),
	}
}
