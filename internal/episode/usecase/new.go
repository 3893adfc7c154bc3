package usecase

import (
	"episode-srv/internal/episode"
	"episode-srv/internal/episode/repository"
	"episode-srv/pkg/log"
)

type implUseCase struct {
	repo repository.PostgresRepository
	l    log.Logger
}

// New creates the episode listing usecase.
func New(repo repository.PostgresRepository, l log.Logger) episode.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
