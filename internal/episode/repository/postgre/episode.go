package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"episode-srv/internal/episode/repository"
	"episode-srv/internal/model"
)

// ListEpisodes executes the assembled listing query and maps rows into
// models. Aggregated name arrays come back as NULL when an episode has no
// associations of that kind; those scan to nil slices here and the delivery
// layer renders them as empty lists.
func (r *implRepository) ListEpisodes(ctx context.Context, opt repository.ListEpisodesOptions) ([]model.Episode, error) {
	query, args := buildListEpisodesQuery(opt)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListEpisodes: %w", err)
	}
	defer rows.Close()

	var episodes []model.Episode
	for rows.Next() {
		var (
			ep         model.Episode
			airDate    sql.NullTime
			youtubeURL sql.NullString
			imageURL   sql.NullString
			colors     pq.StringArray
			subjects   pq.StringArray
			tools      pq.StringArray
			techniques pq.StringArray
		)

		if err := rows.Scan(
			&ep.ID, &ep.Title, &ep.SeasonNumber, &ep.EpisodeNumber,
			&airDate, &youtubeURL, &imageURL,
			&colors, &subjects, &tools, &techniques,
		); err != nil {
			return nil, fmt.Errorf("ListEpisodes scan: %w", err)
		}

		if airDate.Valid {
			ep.AirDate = &airDate.Time
		}
		if youtubeURL.Valid {
			ep.YoutubeURL = &youtubeURL.String
		}
		if imageURL.Valid {
			ep.ImageURL = &imageURL.String
		}
		ep.Colors = colors
		ep.Subjects = subjects
		ep.Tools = tools
		ep.Techniques = techniques

		episodes = append(episodes, ep)
	}

	return episodes, rows.Err()
}

// CountEpisodes executes the matching count query. The WHERE clause and
// bound values are identical to the listing query's, so the total always
// agrees with the page contents.
func (r *implRepository) CountEpisodes(ctx context.Context, opt repository.ListEpisodesOptions) (int64, error) {
	query, args := buildCountEpisodesQuery(opt)

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("CountEpisodes: %w", err)
	}

	return total, nil
}
