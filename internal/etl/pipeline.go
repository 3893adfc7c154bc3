package etl

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"episode-srv/pkg/log"
)

// Source file names, fixed by the upstream dataset.
const (
	episodeDatesFile = "episodes_dates.csv"
	colorsFile       = "colors_used.csv"
	subjectsFile     = "subject_matter.csv"
	toolsFile        = "bob_ross_tools.csv"
	techniquesFile   = "bob_ross_techniques.csv"
)

// Pipeline is the one-shot CSV seed job. It owns the schema bootstrap and
// every write to the catalog; the API never mutates it.
type Pipeline struct {
	l       log.Logger
	db      *sql.DB
	dataDir string
}

// New creates the seed pipeline reading from dataDir.
func New(l log.Logger, db *sql.DB, dataDir string) *Pipeline {
	return &Pipeline{l: l, db: db, dataDir: dataDir}
}

// Run extracts all five source files, bootstraps the schema and loads
// everything in a single transaction. Safe to re-run: every write is an
// upsert.
func (p *Pipeline) Run(ctx context.Context) error {
	dates, err := p.extractEpisodeDates()
	if err != nil {
		return err
	}
	colorRows, err := p.extractColors()
	if err != nil {
		return err
	}
	subjects, err := p.extractSubjects()
	if err != nil {
		return err
	}
	tools, err := p.extractTools()
	if err != nil {
		return err
	}
	techniques, err := p.extractTechniques()
	if err != nil {
		return err
	}

	p.l.Infof(ctx, "etl: extracted %d dated episodes, %d color rows, %d subjects, %d tools, %d techniques",
		len(dates), len(colorRows), len(subjects.Subjects), len(tools), len(techniques))

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("etl: begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, schemaDDL); err != nil {
		return fmt.Errorf("etl: apply schema: %w", err)
	}

	episodeIDs, err := upsertEpisodes(ctx, tx, colorRows, dates)
	if err != nil {
		return fmt.Errorf("etl: %w", err)
	}
	p.l.Infof(ctx, "etl: upserted %d episodes", len(episodeIDs))

	colorIDs, err := upsertColors(ctx, tx, colorRows)
	if err != nil {
		return fmt.Errorf("etl: %w", err)
	}
	p.l.Infof(ctx, "etl: upserted %d colors", len(colorIDs))

	subjectIDs, err := upsertSubjects(ctx, tx, subjects.Subjects)
	if err != nil {
		return fmt.Errorf("etl: %w", err)
	}
	p.l.Infof(ctx, "etl: upserted %d subjects", len(subjectIDs))

	if err := upsertTools(ctx, tx, tools); err != nil {
		return fmt.Errorf("etl: %w", err)
	}
	if err := upsertTechniques(ctx, tx, techniques); err != nil {
		return fmt.Errorf("etl: %w", err)
	}
	p.l.Infof(ctx, "etl: upserted %d tools, %d techniques", len(tools), len(techniques))

	nColors, err := linkEpisodeColors(ctx, tx, colorRows, episodeIDs, colorIDs)
	if err != nil {
		return fmt.Errorf("etl: %w", err)
	}
	nSubjects, err := linkEpisodeSubjects(ctx, tx, subjects, episodeIDs, subjectIDs)
	if err != nil {
		return fmt.Errorf("etl: %w", err)
	}
	nTools, err := linkEpisodeTools(ctx, tx, tools, episodeIDs)
	if err != nil {
		return fmt.Errorf("etl: %w", err)
	}
	nTechniques, err := linkEpisodeTechniques(ctx, tx, techniques, episodeIDs)
	if err != nil {
		return fmt.Errorf("etl: %w", err)
	}
	nCross, err := linkToolTechniques(ctx, tx, tools, techniques)
	if err != nil {
		return fmt.Errorf("etl: %w", err)
	}
	p.l.Infof(ctx, "etl: linked %d colors, %d subjects, %d tools, %d techniques, %d tool-technique pairs",
		nColors, nSubjects, nTools, nTechniques, nCross)

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("etl: commit: %w", err)
	}

	return nil
}

func (p *Pipeline) extractEpisodeDates() ([]EpisodeDate, error) {
	f, err := os.Open(filepath.Join(p.dataDir, episodeDatesFile))
	if err != nil {
		return nil, fmt.Errorf("etl: open %s: %w", episodeDatesFile, err)
	}
	defer f.Close()
	return ParseEpisodeDates(f)
}

func (p *Pipeline) extractColors() ([]ColorRow, error) {
	f, err := os.Open(filepath.Join(p.dataDir, colorsFile))
	if err != nil {
		return nil, fmt.Errorf("etl: open %s: %w", colorsFile, err)
	}
	defer f.Close()
	return ParseColorsCSV(f)
}

func (p *Pipeline) extractSubjects() (SubjectMatrix, error) {
	f, err := os.Open(filepath.Join(p.dataDir, subjectsFile))
	if err != nil {
		return SubjectMatrix{}, fmt.Errorf("etl: open %s: %w", subjectsFile, err)
	}
	defer f.Close()
	return ParseSubjectsCSV(f)
}

func (p *Pipeline) extractTools() ([]ToolRow, error) {
	f, err := os.Open(filepath.Join(p.dataDir, toolsFile))
	if err != nil {
		return nil, fmt.Errorf("etl: open %s: %w", toolsFile, err)
	}
	defer f.Close()
	return ParseToolsCSV(f)
}

func (p *Pipeline) extractTechniques() ([]TechniqueRow, error) {
	f, err := os.Open(filepath.Join(p.dataDir, techniquesFile))
	if err != nil {
		return nil, fmt.Errorf("etl: open %s: %w", techniquesFile, err)
	}
	defer f.Close()
	return ParseTechniquesCSV(f)
}
