package function

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog_Valid(t *testing.T) {
	cat := DefaultCatalog()
	require.NoError(t, cat.Validate())
	assert.Len(t, cat.Functions, 4)

	categories := map[Category]bool{}
	for _, spec := range cat.Functions {
		categories[spec.Category] = true
	}
	assert.True(t, categories[CategoryTeamInsights])
	assert.True(t, categories[CategoryLeagueStandings])
	assert.True(t, categories[CategoryMatchHistory])
	assert.True(t, categories[CategoryTeamSWOT])
}

func TestLoadCatalog_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `functions:
  - name: get_team_insights
    description: Team record.
    category: team_insights
    parameters:
      team_name:
        type: string
        required: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cat, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, cat.Functions, 1)

	spec := cat.Functions[0]
	assert.Equal(t, "get_team_insights", spec.Name)
	assert.Equal(t, CategoryTeamInsights, spec.Category)
	assert.True(t, spec.Parameters["team_name"].Required)
	assert.Equal(t, TypeString, spec.Parameters["team_name"].Type)
}

func TestLoadCatalog_RejectsBadEntries(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "unknown category",
			content: `functions:
  - name: get_weather
    category: weather
`,
		},
		{
			name: "duplicate name",
			content: `functions:
  - name: get_team_insights
    category: team_insights
  - name: get_team_insights
    category: team_swot
`,
		},
		{
			name: "unknown parameter type",
			content: `functions:
  - name: get_team_insights
    category: team_insights
    parameters:
      team_name:
        type: varchar
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "catalog.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := LoadCatalog(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadCatalog_EmptyPathUsesDefault(t *testing.T) {
	cat, err := LoadCatalog("")
	require.NoError(t, err)
	assert.Len(t, cat.Functions, 4)
}
