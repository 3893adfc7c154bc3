package repository

import (
	"context"

	"episode-srv/internal/model"
)

// PostgresRepository is the read-only episode query surface. The catalog is
// populated exclusively by the ETL job; nothing here mutates it.
type PostgresRepository interface {
	// ListEpisodes returns one page of episodes matching the filter set,
	// each with its aggregated reference names.
	ListEpisodes(ctx context.Context, opt ListEpisodesOptions) ([]model.Episode, error)

	// CountEpisodes returns the total number of episodes matching the same
	// filter set, ignoring pagination.
	CountEpisodes(ctx context.Context, opt ListEpisodesOptions) (int64, error)
}
