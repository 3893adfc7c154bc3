package etl

import (
	"context"
	"database/sql"
	"fmt"
)

const fallbackHex = "#000000"

// upsertEpisodes writes one episode per colors-file row, taking the air date
// from the date file by normalized title. Re-runs update the title and fill
// in values that were previously missing. Returns the episode id map used by
// every association loader.
func upsertEpisodes(ctx context.Context, tx *sql.Tx, colorRows []ColorRow, dates []EpisodeDate) (map[EpisodeKey]int64, error) {
	airDates := make(map[string]*EpisodeDate, len(dates))
	for i := range dates {
		airDates[NormalizeTitle(dates[i].Title)] = &dates[i]
	}

	const query = `
		INSERT INTO episode (title, season_number, episode_number, air_date, youtube_url, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (season_number, episode_number) DO UPDATE SET
			title = EXCLUDED.title,
			air_date = COALESCE(EXCLUDED.air_date, episode.air_date),
			youtube_url = COALESCE(EXCLUDED.youtube_url, episode.youtube_url),
			image_url = COALESCE(EXCLUDED.image_url, episode.image_url)
		RETURNING id`

	episodeIDs := make(map[EpisodeKey]int64, len(colorRows))
	for _, row := range colorRows {
		var airDate any
		if d, ok := airDates[NormalizeTitle(row.Title)]; ok && d.AirDate != nil {
			airDate = *d.AirDate
		}

		var id int64
		err := tx.QueryRowContext(ctx, query,
			row.Title, row.Season, row.Episode,
			airDate, nullIfEmpty(row.YoutubeURL), nullIfEmpty(row.ImageURL),
		).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("upsert episode S%dE%d: %w", row.Season, row.Episode, err)
		}

		episodeIDs[EpisodeKey{Season: row.Season, Episode: row.Episode}] = id
	}

	return episodeIDs, nil
}

// upsertColors inserts every distinct color name with its hex code. First
// writer wins: an existing row keeps its hex code. Returns name -> id.
func upsertColors(ctx context.Context, tx *sql.Tx, rows []ColorRow) (map[string]int64, error) {
	// The no-op update makes RETURNING yield the id on conflict too.
	const query = `
		INSERT INTO color (name, hex_code)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`

	colorIDs := make(map[string]int64)
	for _, row := range rows {
		for i, name := range row.Colors {
			if _, ok := colorIDs[name]; ok {
				continue
			}

			hex := fallbackHex
			if i < len(row.Hexes) {
				hex = row.Hexes[i]
			}

			var id int64
			if err := tx.QueryRowContext(ctx, query, name, hex).Scan(&id); err != nil {
				return nil, fmt.Errorf("upsert color %q: %w", name, err)
			}
			colorIDs[name] = id
		}
	}

	return colorIDs, nil
}

// upsertSubjects inserts one row per subject column. Returns name -> id.
func upsertSubjects(ctx context.Context, tx *sql.Tx, subjects []string) (map[string]int64, error) {
	const query = `
		INSERT INTO subject_matter (name)
		VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`

	subjectIDs := make(map[string]int64, len(subjects))
	for _, name := range subjects {
		if _, ok := subjectIDs[name]; ok {
			continue
		}

		var id int64
		if err := tx.QueryRowContext(ctx, query, name).Scan(&id); err != nil {
			return nil, fmt.Errorf("upsert subject %q: %w", name, err)
		}
		subjectIDs[name] = id
	}

	return subjectIDs, nil
}

// upsertTools inserts the tool reference rows. Ids are externally supplied;
// existing rows are left untouched.
func upsertTools(ctx context.Context, tx *sql.Tx, rows []ToolRow) error {
	const query = `
		INSERT INTO tool (id, name, category, primary_uses, compatible_colors)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT DO NOTHING`

	for _, row := range rows {
		if _, err := tx.ExecContext(ctx, query,
			row.ID, row.Name, row.Category, row.PrimaryUses, row.CompatibleColors,
		); err != nil {
			return fmt.Errorf("upsert tool %s: %w", row.ID, err)
		}
	}

	return nil
}

// upsertTechniques inserts the technique reference rows.
func upsertTechniques(ctx context.Context, tx *sql.Tx, rows []TechniqueRow) error {
	const query = `
		INSERT INTO technique (id, name, description, primary_colors_used, common_subjects, difficulty_level)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT DO NOTHING`

	for _, row := range rows {
		if _, err := tx.ExecContext(ctx, query,
			row.ID, row.Name, row.Description,
			row.PrimaryColorsUsed, row.CommonSubjects, row.DifficultyLevel,
		); err != nil {
			return fmt.Errorf("upsert technique %s: %w", row.ID, err)
		}
	}

	return nil
}

func linkEpisodeColors(ctx context.Context, tx *sql.Tx, rows []ColorRow, episodeIDs map[EpisodeKey]int64, colorIDs map[string]int64) (int, error) {
	const query = `
		INSERT INTO episode_color (episode_id, color_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`

	linked := 0
	for _, row := range rows {
		epID, ok := episodeIDs[EpisodeKey{Season: row.Season, Episode: row.Episode}]
		if !ok {
			continue
		}
		for _, name := range row.Colors {
			colorID, ok := colorIDs[name]
			if !ok {
				continue
			}
			if _, err := tx.ExecContext(ctx, query, epID, colorID); err != nil {
				return linked, fmt.Errorf("link episode %d color %q: %w", epID, name, err)
			}
			linked++
		}
	}

	return linked, nil
}

func linkEpisodeSubjects(ctx context.Context, tx *sql.Tx, matrix SubjectMatrix, episodeIDs map[EpisodeKey]int64, subjectIDs map[string]int64) (int, error) {
	const query = `
		INSERT INTO episode_subject (episode_id, subject_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`

	linked := 0
	for _, row := range matrix.Rows {
		epID, ok := episodeIDs[EpisodeKey{Season: row.Season, Episode: row.Episode}]
		if !ok {
			continue
		}
		for i, set := range row.Flags {
			if !set || i >= len(matrix.Subjects) {
				continue
			}
			subjectID, ok := subjectIDs[matrix.Subjects[i]]
			if !ok {
				continue
			}
			if _, err := tx.ExecContext(ctx, query, epID, subjectID); err != nil {
				return linked, fmt.Errorf("link episode %d subject %q: %w", epID, matrix.Subjects[i], err)
			}
			linked++
		}
	}

	return linked, nil
}

func linkEpisodeTools(ctx context.Context, tx *sql.Tx, rows []ToolRow, episodeIDs map[EpisodeKey]int64) (int, error) {
	const query = `
		INSERT INTO episode_tool (episode_id, tool_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`

	linked := 0
	for _, row := range rows {
		for _, key := range row.Episodes {
			epID, ok := episodeIDs[key]
			if !ok {
				continue
			}
			if _, err := tx.ExecContext(ctx, query, epID, row.ID); err != nil {
				return linked, fmt.Errorf("link episode %d tool %s: %w", epID, row.ID, err)
			}
			linked++
		}
	}

	return linked, nil
}

func linkEpisodeTechniques(ctx context.Context, tx *sql.Tx, rows []TechniqueRow, episodeIDs map[EpisodeKey]int64) (int, error) {
	const query = `
		INSERT INTO episode_technique (episode_id, technique_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`

	linked := 0
	for _, row := range rows {
		for _, key := range row.Episodes {
			epID, ok := episodeIDs[key]
			if !ok {
				continue
			}
			if _, err := tx.ExecContext(ctx, query, epID, row.ID); err != nil {
				return linked, fmt.Errorf("link episode %d technique %s: %w", epID, row.ID, err)
			}
			linked++
		}
	}

	return linked, nil
}

func linkToolTechniques(ctx context.Context, tx *sql.Tx, tools []ToolRow, techniques []TechniqueRow) (int, error) {
	known := make(map[string]struct{}, len(techniques))
	for _, t := range techniques {
		known[t.ID] = struct{}{}
	}

	const query = `
		INSERT INTO tool_technique (tool_id, technique_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`

	linked := 0
	for _, tool := range tools {
		for _, ref := range tool.TechniqueRefs {
			if _, ok := known[ref]; !ok {
				continue
			}
			if _, err := tx.ExecContext(ctx, query, tool.ID, ref); err != nil {
				return linked, fmt.Errorf("link tool %s technique %s: %w", tool.ID, ref, err)
			}
			linked++
		}
	}

	return linked, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
