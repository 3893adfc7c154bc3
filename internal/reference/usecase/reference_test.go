package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"episode-srv/internal/model"
	"episode-srv/internal/reference"
	"episode-srv/pkg/log"
)

type fakeRepository struct {
	colors     []model.Color
	subjects   []model.SubjectMatter
	tools      []model.Tool
	techniques []model.Technique
	err        error
}

func (f *fakeRepository) ListColors(ctx context.Context) ([]model.Color, error) {
	return f.colors, f.err
}

func (f *fakeRepository) ListSubjects(ctx context.Context) ([]model.SubjectMatter, error) {
	return f.subjects, f.err
}

func (f *fakeRepository) ListTools(ctx context.Context) ([]model.Tool, error) {
	return f.tools, f.err
}

func (f *fakeRepository) ListTechniques(ctx context.Context) ([]model.Technique, error) {
	return f.techniques, f.err
}

func TestListColors(t *testing.T) {
	repo := &fakeRepository{
		colors: []model.Color{
			{ID: 1, Name: "Alizarin Crimson", HexCode: "#4E1500"},
			{ID: 2, Name: "Titanium White", HexCode: "#FFFFFF"},
		},
	}
	uc := New(repo, log.NewNoop())

	colors, err := uc.ListColors(context.Background(), model.Scope{})
	require.NoError(t, err)
	assert.Len(t, colors, 2)
	assert.Equal(t, "Alizarin Crimson", colors[0].Name)
}

func TestListTools(t *testing.T) {
	repo := &fakeRepository{
		tools: []model.Tool{
			{ID: "TL001", Name: "2 Inch Brush", Category: "Brush"},
		},
	}
	uc := New(repo, log.NewNoop())

	tools, err := uc.ListTools(context.Background(), model.Scope{})
	require.NoError(t, err)
	require.Len(t, tools, 1)
	assert.Equal(t, "TL001", tools[0].ID)
}

func TestListReferenceQueryFailure(t *testing.T) {
	repo := &fakeRepository{err: errors.New("connection refused")}
	uc := New(repo, log.NewNoop())

	_, err := uc.ListColors(context.Background(), model.Scope{})
	assert.ErrorIs(t, err, reference.ErrQueryFailed)

	_, err = uc.ListSubjects(context.Background(), model.Scope{})
	assert.ErrorIs(t, err, reference.ErrQueryFailed)

	_, err = uc.ListTechniques(context.Background(), model.Scope{})
	assert.ErrorIs(t, err, reference.ErrQueryFailed)
}
