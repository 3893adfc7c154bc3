package model

// Color is a paint color reference entity. Numeric surrogate id, unique name.
type Color struct {
	ID      int64
	Name    string
	HexCode string
}

// SubjectMatter is a painting subject reference entity.
type SubjectMatter struct {
	ID   int64
	Name string
}

// Tool is a painting tool reference entity. Ids are externally supplied
// strings (TL001...), not guaranteed numeric.
type Tool struct {
	ID               string
	Name             string
	Category         string
	PrimaryUses      string
	CompatibleColors string
}

// Technique is a painting technique reference entity. String ids (T001...).
type Technique struct {
	ID                string
	Name              string
	Description       string
	PrimaryColorsUsed string
	CommonSubjects    string
	DifficultyLevel   string
}
