package reference

import (
	"context"

	"episode-srv/internal/model"
)

// UseCase serves the unpaginated reference-entity listings.
type UseCase interface {
	ListColors(ctx context.Context, sc model.Scope) ([]model.Color, error)
	ListSubjects(ctx context.Context, sc model.Scope) ([]model.SubjectMatter, error)
	ListTools(ctx context.Context, sc model.Scope) ([]model.Tool, error)
	ListTechniques(ctx context.Context, sc model.Scope) ([]model.Technique, error)
}
