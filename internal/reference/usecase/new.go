package usecase

import (
	"episode-srv/internal/reference"
	"episode-srv/internal/reference/repository"
	"episode-srv/pkg/log"
)

type implUseCase struct {
	repo repository.PostgresRepository
	l    log.Logger
}

// New creates the reference listings usecase.
func New(repo repository.PostgresRepository, l log.Logger) reference.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
