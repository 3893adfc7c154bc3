package postgre

import (
	"database/sql"

	"episode-srv/internal/reference/repository"
	"episode-srv/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates the Postgres-backed reference repository.
func New(l log.Logger, db *sql.DB) repository.PostgresRepository {
	return &implRepository{db: db, l: l}
}
