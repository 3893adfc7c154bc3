package episode

import (
	"context"

	"episode-srv/internal/model"
)

// UseCase orchestrates the filterable episode listing.
type UseCase interface {
	ListEpisodes(ctx context.Context, sc model.Scope, input ListEpisodesInput) (ListEpisodesOutput, error)
}
