package repository

import (
	"context"

	"episode-srv/internal/model"
)

// PostgresRepository is the read-only reference-entity query surface. All
// four listings are unfiltered and ordered by name.
type PostgresRepository interface {
	ListColors(ctx context.Context) ([]model.Color, error)
	ListSubjects(ctx context.Context) ([]model.SubjectMatter, error)
	ListTools(ctx context.Context) ([]model.Tool, error)
	ListTechniques(ctx context.Context) ([]model.Technique, error)
}
