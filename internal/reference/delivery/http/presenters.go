package http

import (
	"episode-srv/internal/model"
)

type colorResp struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	HexCode string `json:"hex_code"`
}

type listColorsResp struct {
	Colors []colorResp `json:"colors"`
	Count  int         `json:"count"`
}

func (h *handler) newListColorsResp(colors []model.Color) listColorsResp {
	resp := listColorsResp{
		Colors: make([]colorResp, len(colors)),
		Count:  len(colors),
	}
	for i, c := range colors {
		resp.Colors[i] = colorResp{ID: c.ID, Name: c.Name, HexCode: c.HexCode}
	}
	return resp
}

type subjectResp struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type listSubjectsResp struct {
	Subjects []subjectResp `json:"subjects"`
	Count    int           `json:"count"`
}

func (h *handler) newListSubjectsResp(subjects []model.SubjectMatter) listSubjectsResp {
	resp := listSubjectsResp{
		Subjects: make([]subjectResp, len(subjects)),
		Count:    len(subjects),
	}
	for i, s := range subjects {
		resp.Subjects[i] = subjectResp{ID: s.ID, Name: s.Name}
	}
	return resp
}

type toolResp struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Category         string `json:"category"`
	PrimaryUses      string `json:"primary_uses"`
	CompatibleColors string `json:"compatible_colors"`
}

type listToolsResp struct {
	Tools []toolResp `json:"tools"`
	Count int        `json:"count"`
}

func (h *handler) newListToolsResp(tools []model.Tool) listToolsResp {
	resp := listToolsResp{
		Tools: make([]toolResp, len(tools)),
		Count: len(tools),
	}
	for i, t := range tools {
		resp.Tools[i] = toolResp{
			ID:               t.ID,
			Name:             t.Name,
			Category:         t.Category,
			PrimaryUses:      t.PrimaryUses,
			CompatibleColors: t.CompatibleColors,
		}
	}
	return resp
}

type techniqueResp struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	PrimaryColorsUsed string `json:"primary_colors_used"`
	CommonSubjects    string `json:"common_subjects"`
	DifficultyLevel   string `json:"difficulty_level"`
}

type listTechniquesResp struct {
	Techniques []techniqueResp `json:"techniques"`
	Count      int             `json:"count"`
}

func (h *handler) newListTechniquesResp(techniques []model.Technique) listTechniquesResp {
	resp := listTechniquesResp{
		Techniques: make([]techniqueResp, len(techniques)),
		Count:      len(techniques),
	}
	for i, t := range techniques {
		resp.Techniques[i] = techniqueResp{
			ID:                t.ID,
			Name:              t.Name,
			Description:       t.Description,
			PrimaryColorsUsed: t.PrimaryColorsUsed,
			CommonSubjects:    t.CommonSubjects,
			DifficultyLevel:   t.DifficultyLevel,
		}
	}
	return resp
}
