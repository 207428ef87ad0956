package function

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog is the static configuration set the registry is built from.
// Loaded and validated once at startup, never re-parsed per request.
type Catalog struct {
	Functions []Spec `yaml:"functions"`
}

// LoadCatalog reads a catalog YAML file, or returns the bundled default
// catalog when path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %q: %w", path, err)
	}

	var cat Catalog
	if err := yaml.Unmarshal(raw, &cat); err != nil {
		return nil, fmt.Errorf("parse catalog %q: %w", path, err)
	}

	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("catalog %q: %w", path, err)
	}
	return &cat, nil
}

// Validate checks the catalog for empty names, duplicate names, unknown
// categories and unknown parameter types. Registry.Register re-checks on
// registration, but a broken catalog should fail here with a file-level error.
func (c *Catalog) Validate() error {
	seen := make(map[string]bool, len(c.Functions))
	for _, spec := range c.Functions {
		if spec.Name == "" {
			return fmt.Errorf("function with empty name")
		}
		if seen[spec.Name] {
			return fmt.Errorf("duplicate function %q", spec.Name)
		}
		seen[spec.Name] = true
		if !spec.Category.Valid() {
			return fmt.Errorf("function %q: unknown category %q", spec.Name, spec.Category)
		}
		for param, ps := range spec.Parameters {
			if !ps.Type.Valid() {
				return fmt.Errorf("function %q: parameter %q has unknown type %q", spec.Name, param, ps.Type)
			}
		}
	}
	return nil
}

// DefaultCatalog returns the built-in function set, one spec per query category.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Functions: []Spec{
			{
				Name:        "get_team_insights",
				Description: "Get a team's season record: strengths, weaknesses, goals scored and conceded, wins, draws and losses.",
				Category:    CategoryTeamInsights,
				Parameters: map[string]ParamSpec{
					"team_name": {Type: TypeString, Required: true, Description: "Exact team name, for example \"Lansdowne\""},
				},
			},
			{
				Name:        "get_league_standings",
				Description: "Get the current league table ordered by position.",
				Category:    CategoryLeagueStandings,
				Parameters: map[string]ParamSpec{
					"league_name": {Type: TypeString, Required: true, Description: "League name, for example \"Metro Premier League\""},
				},
			},
			{
				Name:        "get_match_history",
				Description: "Get a team's most recent match results, newest first.",
				Category:    CategoryMatchHistory,
				Parameters: map[string]ParamSpec{
					"team_name": {Type: TypeString, Required: true, Description: "Exact team name"},
					"limit":     {Type: TypeInteger, Required: false, Description: "Maximum number of matches to return (default 10)"},
				},
			},
			{
				Name:        "get_team_swot",
				Description: "Get a SWOT analysis (strengths, weaknesses, opportunities, threats) for a team.",
				Category:    CategoryTeamSWOT,
				Parameters: map[string]ParamSpec{
					"team_name": {Type: TypeString, Required: true, Description: "Exact team name"},
				},
			},
		},
	}
}
