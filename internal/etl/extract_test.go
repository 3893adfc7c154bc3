package etl

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEpisodeDates(t *testing.T) {
	input := strings.Join([]string{
		`"A Walk in the Woods" (January 11, 1983)`,
		`"Mt. McKinley" (January 11, 1983) Special guest Bill Alexander`,
		`"Ebony Sunset" (January 18, 1983)`,
		`not an episode line`,
		`"Winter Mist" (unknown date)`,
	}, "\n")

	episodes, err := ParseEpisodeDates(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, episodes, 4)

	assert.Equal(t, "A Walk in the Woods", episodes[0].Title)
	assert.Equal(t, 1, episodes[0].SeasonNumber)
	assert.Equal(t, 1, episodes[0].EpisodeNumber)
	require.NotNil(t, episodes[0].AirDate)
	assert.Equal(t, time.Date(1983, time.January, 11, 0, 0, 0, 0, time.UTC), *episodes[0].AirDate)

	// Guest note stripped before the date parse.
	assert.Equal(t, "Mt. McKinley", episodes[1].Title)
	require.NotNil(t, episodes[1].AirDate)

	// Unparseable date yields a nil AirDate, the line still counts.
	assert.Equal(t, "Winter Mist", episodes[3].Title)
	assert.Nil(t, episodes[3].AirDate)
	assert.Equal(t, 5, episodes[3].EpisodeNumber)
}

func TestParseEpisodeDatesSeasonRollover(t *testing.T) {
	var lines []string
	for i := 0; i < 14; i++ {
		lines = append(lines, `"Painting" (January 11, 1983)`)
	}

	episodes, err := ParseEpisodeDates(strings.NewReader(strings.Join(lines, "\n")))
	require.NoError(t, err)
	require.Len(t, episodes, 14)

	assert.Equal(t, 1, episodes[12].SeasonNumber)
	assert.Equal(t, 13, episodes[12].EpisodeNumber)
	assert.Equal(t, 2, episodes[13].SeasonNumber)
	assert.Equal(t, 1, episodes[13].EpisodeNumber)
}

func TestParseListLiteral(t *testing.T) {
	type testCase struct {
		input  string
		expect []string
	}

	tcs := map[string]testCase{
		"single quotes": {
			input:  `['Alizarin Crimson', 'Prussian Blue']`,
			expect: []string{"Alizarin Crimson", "Prussian Blue"},
		},
		"double quotes": {
			input:  `["Titanium White"]`,
			expect: []string{"Titanium White"},
		},
		"embedded comma stays inside quotes": {
			input:  `['Black, Gesso', 'Bright Red']`,
			expect: []string{"Black, Gesso", "Bright Red"},
		},
		"empty list": {
			input:  `[]`,
			expect: nil,
		},
		"not a list": {
			input:  `Alizarin Crimson`,
			expect: nil,
		},
		"whitespace and nan dropped": {
			input:  `['  Phthalo Green  ', 'nan', '']`,
			expect: []string{"Phthalo Green"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expect, ParseListLiteral(tc.input))
		})
	}
}

func TestParseColorsCSV(t *testing.T) {
	input := "painting_index,painting_title,season,episode,youtube_src,img_src,colors,color_hex\n" +
		`0,A Walk in the Woods,1,1,https://youtu.be/abc,https://img/1.png,"['Alizarin Crimson', 'Bright Red']","['#4E1500', '#DB0000']"` + "\n" +
		`1,Bad Row,x,y,,,"[]","[]"` + "\n" +
		`2,Ebony Sunset,1,2,,,"['Titanium White']","[]"` + "\n"

	rows, err := ParseColorsCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "A Walk in the Woods", rows[0].Title)
	assert.Equal(t, 1, rows[0].Season)
	assert.Equal(t, 1, rows[0].Episode)
	assert.Equal(t, "https://youtu.be/abc", rows[0].YoutubeURL)
	assert.Equal(t, []string{"Alizarin Crimson", "Bright Red"}, rows[0].Colors)
	assert.Equal(t, []string{"#4E1500", "#DB0000"}, rows[0].Hexes)

	// Empty hex list is allowed, the loader falls back per color.
	assert.Equal(t, []string{"Titanium White"}, rows[1].Colors)
	assert.Empty(t, rows[1].Hexes)
}

func TestSubjectName(t *testing.T) {
	assert.Equal(t, "Snowy Mountain", SubjectName("SNOWY_MOUNTAIN"))
	assert.Equal(t, "Tree", SubjectName("TREE"))
	assert.Equal(t, "Mount Mckinley", SubjectName("MOUNT_MCKINLEY"))
}

func TestParseEpisodeCode(t *testing.T) {
	key, ok := ParseEpisodeCode("S01E01")
	require.True(t, ok)
	assert.Equal(t, EpisodeKey{Season: 1, Episode: 1}, key)

	key, ok = ParseEpisodeCode("S31E13")
	require.True(t, ok)
	assert.Equal(t, EpisodeKey{Season: 31, Episode: 13}, key)

	_, ok = ParseEpisodeCode("EP1")
	assert.False(t, ok)
}

func TestParseSubjectsCSV(t *testing.T) {
	input := "EPISODE,TITLE,TREE,SNOWY_MOUNTAIN,CABIN\n" +
		`S01E01,"A WALK IN THE WOODS",1,0,0` + "\n" +
		`S01E02,"MT. MCKINLEY",1,1,0` + "\n" +
		`BROKEN,"NOT AN EPISODE",0,0,1` + "\n"

	matrix, err := ParseSubjectsCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"Tree", "Snowy Mountain", "Cabin"}, matrix.Subjects)
	require.Len(t, matrix.Rows, 2)

	assert.Equal(t, 1, matrix.Rows[0].Season)
	assert.Equal(t, 1, matrix.Rows[0].Episode)
	assert.Equal(t, []bool{true, false, false}, matrix.Rows[0].Flags)
	assert.Equal(t, []bool{true, true, false}, matrix.Rows[1].Flags)
}

func TestParseEpisodeRefs(t *testing.T) {
	t.Run("codes map by broadcast position", func(t *testing.T) {
		keys := ParseEpisodeRefs("E001, E013, E014")
		assert.Equal(t, []EpisodeKey{
			{Season: 1, Episode: 1},
			{Season: 1, Episode: 13},
			{Season: 2, Episode: 1},
		}, keys)
	})

	t.Run("non-numeric entries dropped", func(t *testing.T) {
		keys := ParseEpisodeRefs("E001, all, E027")
		assert.Equal(t, []EpisodeKey{
			{Season: 1, Episode: 1},
			{Season: 3, Episode: 1},
		}, keys)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, ParseEpisodeRefs(""))
	})
}

func TestParseToolsCSV(t *testing.T) {
	input := "Tool_ID,Tool_Name,Category,Primary_Uses,Compatible_Colors,Episodes_Used,Technique_References\n" +
		`TL001,2 Inch Brush,Brush,"Sky, water","All colors","E001, E002","T001, T004"` + "\n" +
		`,Headless Row,,,,,` + "\n"

	rows, err := ParseToolsCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	tool := rows[0]
	assert.Equal(t, "TL001", tool.ID)
	assert.Equal(t, "2 Inch Brush", tool.Name)
	assert.Equal(t, "Brush", tool.Category)
	assert.Equal(t, []EpisodeKey{{Season: 1, Episode: 1}, {Season: 1, Episode: 2}}, tool.Episodes)
	assert.Equal(t, []string{"T001", "T004"}, tool.TechniqueRefs)
}

func TestParseTechniquesCSV(t *testing.T) {
	input := "Technique_ID,Technique_Name,Description,Primary_Colors_Used,Common_Subjects,Difficulty_Level,Episodes_Featured\n" +
		`T001,Wet-on-Wet,Painting into wet base,"Liquid White","Sky, Water",Beginner,"E001, E014"` + "\n"

	rows, err := ParseTechniquesCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	tech := rows[0]
	assert.Equal(t, "T001", tech.ID)
	assert.Equal(t, "Wet-on-Wet", tech.Name)
	assert.Equal(t, "Beginner", tech.DifficultyLevel)
	assert.Equal(t, []EpisodeKey{{Season: 1, Episode: 1}, {Season: 2, Episode: 1}}, tech.Episodes)
}

func TestNormalizeTitle(t *testing.T) {
	assert.Equal(t, "a walk in the woods", NormalizeTitle(`"A Walk in the Woods"`))
	assert.Equal(t, "mt mckinley", NormalizeTitle("Mt. McKinley"))
	assert.Equal(t, NormalizeTitle("MT. MCKINLEY"), NormalizeTitle("Mt McKinley"))
}
