package classifier

import "github.com/m-mizutani/devmemory/pkg/domain/types"

const (
	// fileMatchBonus is added to a category that also matched a file marker.
	fileMatchBonus = 0.5

	// maxScore caps every category score.
	maxScore = 1.0

	priorityThreshold = 0.3
	defaultThreshold  = 0.4
)

// Category defines how one decision type is recognized.
type Category struct {
	Type     types.DecisionType
	Keywords []string // lower-case, matched as substrings of the lower-cased message
	Files    []string // matched as substrings of changed file paths
	Weight   float64  // added once when any keyword matches, in (0,1]
	Priority bool     // high-priority categories use the lower threshold
}

// Threshold is the minimum score for the category to become a candidate.
func (c *Category) Threshold() float64 {
	if c.Priority {
		return priorityThreshold
	}
	return defaultThreshold
}

var dependencyManifests = []string{
	"requirements.txt", "package.json", "Gemfile", "pom.xml", "build.gradle", "go.mod", "Cargo.toml",
}

// defaultCategories is declaration-ordered; ties resolve to the earlier entry.
var defaultCategories = []Category{
	{
		Type:     types.DecisionDependencyAdded,
		Keywords: []string{"add", "install", "upgrade", "bump"},
		Files:    dependencyManifests,
		Weight:   0.9,
	},
	{
		Type:     types.DecisionDependencyRemoved,
		Keywords: []string{"remove", "delete", "uninstall", "drop"},
		Files:    []string{"requirements.txt", "package.json", "Gemfile"},
		Weight:   0.9,
	},
	{
		Type:     types.DecisionArchitectureChange,
		Keywords: []string{"refactor", "restructure", "redesign", "migrate", "rewrite", "architecture"},
		Weight:   0.8,
		Priority: true,
	},
	{
		Type:     types.DecisionWorkaround,
		Keywords: []string{"workaround", "hack", "temporary", "quick fix", "hotfix", "patch", "band-aid"},
		Weight:   0.85,
		Priority: true,
	},
	{
		Type:     types.DecisionPerformanceOptimization,
		Keywords: []string{"optimize", "performance", "speed up", "cache", "faster", "improve", "efficient"},
		Weight:   0.7,
	},
	{
		Type:     types.DecisionSecurityFix,
		Keywords: []string{"security", "vulnerability", "cve", "exploit", "xss", "sql injection", "csrf"},
		Weight:   0.95,
		Priority: true,
	},
	{
		Type:     types.DecisionConfigChange,
		Keywords: []string{"config", "configuration", "settings", "environment", "env"},
		Files:    []string{".env", "config.yml", "settings.py", "application.properties", "appsettings.json"},
		Weight:   0.6,
	},
	{
		Type:     types.DecisionAPIDesign,
		Keywords: []string{"api", "endpoint", "route", "interface", "contract", "rest", "graphql"},
		Weight:   0.75,
	},
	{
		Type:     types.DecisionDatabaseSchema,
		Keywords: []string{"migration", "schema", "table", "column", "index", "database"},
		Files:    []string{"migrations/", "schema.sql", "alembic/"},
		Weight:   0.85,
	},
	{
		Type:     types.DecisionTesting,
		Keywords: []string{"test", "testing", "unittest", "integration test", "e2e"},
		Files:    []string{"test_", "_test.py", "spec.js", ".test."},
		Weight:   0.5,
	},
	{
		Type:     types.DecisionDocumentation,
		Keywords: []string{"docs", "documentation", "readme", "comment"},
		Files:    []string{"README", "docs/", ".md"},
		Weight:   0.4,
	},
}

// DefaultCategories returns a copy of the built-in category table.
func DefaultCategories() []Category {
	out := make([]Category, len(defaultCategories))
	copy(out, defaultCategories)
	return out
}
