package postgre

import (
	"context"
	"fmt"

	"episode-srv/internal/model"
)

const (
	listColorsQuery     = `SELECT id, name, hex_code FROM color ORDER BY name`
	listSubjectsQuery   = `SELECT id, name FROM subject_matter ORDER BY name`
	listToolsQuery      = `SELECT id, name, category, primary_uses, compatible_colors FROM tool ORDER BY name`
	listTechniquesQuery = `SELECT id, name, description, primary_colors_used, common_subjects, difficulty_level FROM technique ORDER BY name`
)

func (r *implRepository) ListColors(ctx context.Context) ([]model.Color, error) {
	rows, err := r.db.QueryContext(ctx, listColorsQuery)
	if err != nil {
		return nil, fmt.Errorf("ListColors: %w", err)
	}
	defer rows.Close()

	var colors []model.Color
	for rows.Next() {
		var c model.Color
		if err := rows.Scan(&c.ID, &c.Name, &c.HexCode); err != nil {
			return nil, fmt.Errorf("ListColors scan: %w", err)
		}
		colors = append(colors, c)
	}

	return colors, rows.Err()
}

func (r *implRepository) ListSubjects(ctx context.Context) ([]model.SubjectMatter, error) {
	rows, err := r.db.QueryContext(ctx, listSubjectsQuery)
	if err != nil {
		return nil, fmt.Errorf("ListSubjects: %w", err)
	}
	defer rows.Close()

	var subjects []model.SubjectMatter
	for rows.Next() {
		var s model.SubjectMatter
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("ListSubjects scan: %w", err)
		}
		subjects = append(subjects, s)
	}

	return subjects, rows.Err()
}

func (r *implRepository) ListTools(ctx context.Context) ([]model.Tool, error) {
	rows, err := r.db.QueryContext(ctx, listToolsQuery)
	if err != nil {
		return nil, fmt.Errorf("ListTools: %w", err)
	}
	defer rows.Close()

	var tools []model.Tool
	for rows.Next() {
		var t model.Tool
		if err := rows.Scan(&t.ID, &t.Name, &t.Category, &t.PrimaryUses, &t.CompatibleColors); err != nil {
			return nil, fmt.Errorf("ListTools scan: %w", err)
		}
		tools = append(tools, t)
	}

	return tools, rows.Err()
}

func (r *implRepository) ListTechniques(ctx context.Context) ([]model.Technique, error) {
	rows, err := r.db.QueryContext(ctx, listTechniquesQuery)
	if err != nil {
		return nil, fmt.Errorf("ListTechniques: %w", err)
	}
	defer rows.Close()

	var techniques []model.Technique
	for rows.Next() {
		var t model.Technique
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.PrimaryColorsUsed, &t.CommonSubjects, &t.DifficultyLevel); err != nil {
			return nil, fmt.Errorf("ListTechniques scan: %w", err)
		}
		techniques = append(techniques, t)
	}

	return techniques, rows.Err()
}
