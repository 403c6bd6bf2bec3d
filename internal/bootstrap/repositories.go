package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/LondonTravel_Go/internal/database/postgres"
	"github.com/osse101/LondonTravel_Go/internal/repository"
)

// Repositories are the storage adapters the services are built on
type Repositories struct {
	User repository.User
}

// InitializeRepositories binds every repository to the shared pool
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{User: postgres.NewUserRepository(dbPool)}
}
