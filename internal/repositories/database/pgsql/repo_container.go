package pgsql

import (
	portsrepo "github.com/fin-api/fin_api_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	statementRepo := newPgxStatementRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:      userRepo,
		StatementRepo: statementRepo,
	}
}
