package usecase

import (
	"context"
	"fmt"

	"episode-srv/internal/model"
	"episode-srv/internal/reference"
)

func (uc *implUseCase) ListColors(ctx context.Context, _ model.Scope) ([]model.Color, error) {
	colors, err := uc.repo.ListColors(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "reference.usecase.ListColors: query failed: %v", err)
		return nil, fmt.Errorf("%w: %v", reference.ErrQueryFailed, err)
	}
	return colors, nil
}

func (uc *implUseCase) ListSubjects(ctx context.Context, _ model.Scope) ([]model.SubjectMatter, error) {
	subjects, err := uc.repo.ListSubjects(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "reference.usecase.ListSubjects: query failed: %v", err)
		return nil, fmt.Errorf("%w: %v", reference.ErrQueryFailed, err)
	}
	return subjects, nil
}

func (uc *implUseCase) ListTools(ctx context.Context, _ model.Scope) ([]model.Tool, error) {
	tools, err := uc.repo.ListTools(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "reference.usecase.ListTools: query failed: %v", err)
		return nil, fmt.Errorf("%w: %v", reference.ErrQueryFailed, err)
	}
	return tools, nil
}

func (uc *implUseCase) ListTechniques(ctx context.Context, _ model.Scope) ([]model.Technique, error) {
	techniques, err := uc.repo.ListTechniques(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "reference.usecase.ListTechniques: query failed: %v", err)
		return nil, fmt.Errorf("%w: %v", reference.ErrQueryFailed, err)
	}
	return techniques, nil
}
