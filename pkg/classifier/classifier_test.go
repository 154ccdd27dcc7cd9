package classifier_test

import (
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/devmemory/pkg/classifier"
	"github.com/m-mizutani/devmemory/pkg/domain/model"
	"github.com/m-mizutani/devmemory/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestClassify_Scenarios(t *testing.T) {
	c := classifier.New()

	tests := []struct {
		name           string
		message        string
		files          []string
		wantType       types.DecisionType
		wantConfidence float64
		wantIndicators []string
		wantNil        bool
	}{
		{
			name:           "dependency added with manifest",
			message:        "Add Redis for caching session data",
			files:          []string{"requirements.txt"},
			wantType:       types.DecisionDependencyAdded,
			wantConfidence: 1.0,
			wantIndicators: []string{"keywords: add", "files: requirements.txt"},
		},
		{
			name:           "architecture change by keyword only",
			message:        "Refactor authentication to use JWT tokens instead of sessions",
			files:          []string{"auth.py"},
			wantType:       types.DecisionArchitectureChange,
			wantConfidence: 0.8,
			wantIndicators: []string{"keywords: refactor"},
		},
		{
			name:    "changelog update is not a decision",
			message: "Update changelog",
			files:   []string{"CHANGELOG.md"},
			wantNil: true,
		},
		{
			name:           "security fix outranks api design",
			message:        "Fix XSS vulnerability in API endpoint",
			files:          nil,
			wantType:       types.DecisionSecurityFix,
			wantConfidence: 0.95,
			wantIndicators: []string{"keywords: vulnerability, xss"},
		},
		{
			name:           "documentation keyword and file",
			message:        "Update README docs",
			files:          []string{"README.md"},
			wantType:       types.DecisionDocumentation,
			wantConfidence: 0.9,
			wantIndicators: []string{"keywords: docs, readme", "files: README.md"},
		},
		{
			name:           "config score is clamped",
			message:        "Tweak env settings",
			files:          []string{"deploy/.env.production"},
			wantType:       types.DecisionConfigChange,
			wantConfidence: 1.0,
			wantIndicators: []string{"keywords: settings, env", "files: deploy/.env.production"},
		},
		{
			name:           "all matching keywords are listed",
			message:        "Add and install deps, then upgrade",
			files:          []string{"main.go"},
			wantType:       types.DecisionDependencyAdded,
			wantConfidence: 0.9,
			wantIndicators: []string{"keywords: add, install, upgrade"},
		},
		{
			name:    "file markers alone never match",
			message: "wip",
			files:   []string{"requirements.txt", "README.md", "migrations/001.sql", "test_x.py"},
			wantNil: true,
		},
		{
			name:    "empty message",
			message: "",
			files:   nil,
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := c.Classify(tt.message, tt.files)
			if tt.wantNil {
				gt.Nil(t, d)
				return
			}

			gt.NotNil(t, d)
			gt.Equal(t, d.Type, tt.wantType)
			gt.Equal(t, d.Confidence, tt.wantConfidence)
			gt.Equal(t, d.Indicators, tt.wantIndicators)
			gt.Equal(t, d.Summary, strings.TrimSpace(tt.message))
		})
	}
}

func TestClassify_SingleCategoryUsesBaseWeight(t *testing.T) {
	c := classifier.New()

	tests := []struct {
		message string
		want    types.DecisionType
		weight  float64
	}{
		{"bump lodash", types.DecisionDependencyAdded, 0.9},
		{"drop lodash", types.DecisionDependencyRemoved, 0.9},
		{"temporary hotfix for login", types.DecisionWorkaround, 0.85},
		{"speed up rendering", types.DecisionPerformanceOptimization, 0.7},
		{"guard against csrf", types.DecisionSecurityFix, 0.95},
		{"new graphql endpoint", types.DecisionAPIDesign, 0.75},
		{"new column for users", types.DecisionDatabaseSchema, 0.85},
		{"e2e coverage for login", types.DecisionTesting, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			d := c.Classify(tt.message, []string{"main.go"})
			gt.NotNil(t, d)
			gt.Equal(t, d.Type, tt.want)
			gt.Equal(t, d.Confidence, tt.weight)
		})
	}
}

func TestClassify_KeywordAndFileBonus(t *testing.T) {
	c := classifier.New()

	d := c.Classify("new column for users", []string{"db/migrations/0002_users.sql"})
	gt.NotNil(t, d)
	gt.Equal(t, d.Type, types.DecisionDatabaseSchema)
	gt.Equal(t, d.Confidence, 1.0)

	d = c.Classify("e2e coverage for login", []string{"login.test.ts"})
	gt.NotNil(t, d)
	gt.Equal(t, d.Type, types.DecisionTesting)
	gt.Equal(t, d.Confidence, 1.0)
}

func TestClassify_FileIndicatorIsBounded(t *testing.T) {
	c := classifier.New()
	files := []string{"a/package.json", "README", "b/package.json", "c/package.json", "d/package.json"}

	d := c.Classify("Bump deps", files)
	gt.NotNil(t, d)
	gt.Equal(t, d.Indicators, []string{
		"keywords: bump",
		"files: a/package.json, b/package.json, c/package.json",
	})
	gt.Equal(t, d.ChangedFiles, files)
}

func TestClassify_TieBreakByDeclarationOrder(t *testing.T) {
	c := classifier.New()

	t.Run("dependency added before removed", func(t *testing.T) {
		d := c.Classify("Add and remove feature flags", nil)
		gt.NotNil(t, d)
		gt.Equal(t, d.Type, types.DecisionDependencyAdded)
		gt.Equal(t, d.Confidence, 0.9)
	})

	t.Run("workaround before database schema", func(t *testing.T) {
		d := c.Classify("Hack around the schema", nil)
		gt.NotNil(t, d)
		gt.Equal(t, d.Type, types.DecisionWorkaround)
	})

	t.Run("custom table order decides", func(t *testing.T) {
		first := classifier.Category{Type: types.DecisionTesting, Keywords: []string{"flaky"}, Weight: 0.6}
		second := classifier.Category{Type: types.DecisionWorkaround, Keywords: []string{"retry"}, Weight: 0.6}

		d := classifier.NewWithCategories([]classifier.Category{first, second}).Classify("retry flaky job", nil)
		gt.Equal(t, d.Type, types.DecisionTesting)

		d = classifier.NewWithCategories([]classifier.Category{second, first}).Classify("retry flaky job", nil)
		gt.Equal(t, d.Type, types.DecisionWorkaround)
	})
}

func TestClassify_ThresholdBoundary(t *testing.T) {
	t.Run("documentation at exactly its threshold", func(t *testing.T) {
		d := classifier.New().Classify("Write docs for parser", nil)
		gt.NotNil(t, d)
		gt.Equal(t, d.Type, types.DecisionDocumentation)
		gt.Equal(t, d.Confidence, 0.4)
	})

	tests := []struct {
		name     string
		weight   float64
		priority bool
		match    bool
	}{
		{"normal below threshold", 0.39, false, false},
		{"normal at threshold", 0.4, false, true},
		{"priority below threshold", 0.29, true, false},
		{"priority at threshold", 0.3, true, true},
		{"priority between thresholds", 0.35, true, true},
		{"normal between thresholds", 0.35, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := classifier.NewWithCategories([]classifier.Category{
				{Type: types.DecisionWorkaround, Keywords: []string{"kludge"}, Weight: tt.weight, Priority: tt.priority},
			})
			d := c.Classify("a kludge", nil)
			gt.Equal(t, d != nil, tt.match)
		})
	}
}

func TestClassify_Idempotent(t *testing.T) {
	c := classifier.New()
	files := []string{"package.json", "src/index.js"}

	a := c.Classify("feat: add axios\n\nused by the api client", files)
	b := c.Classify("feat: add axios\n\nused by the api client", files)
	gt.NotNil(t, a)
	gt.Equal(t, a, b)
}

func TestClassifyCommit(t *testing.T) {
	ts := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	commit := &model.Commit{
		Hash:         "deadbeefcafe",
		Author:       "alice",
		Timestamp:    ts,
		Message:      "refactor: simplify auth flow\nmore details",
		ChangedFiles: []string{"auth.go"},
	}

	d := classifier.New().ClassifyCommit(commit)
	gt.NotNil(t, d)
	gt.Equal(t, d.Type, types.DecisionArchitectureChange)
	gt.Equal(t, d.Title, "simplify auth flow")
	gt.Equal(t, d.Summary, "refactor: simplify auth flow\nmore details")
	gt.Equal(t, d.CommitHash, "deadbeefcafe")
	gt.Equal(t, d.Author, "alice")
	gt.True(t, d.Timestamp.Equal(ts))

	gt.Nil(t, classifier.New().ClassifyCommit(&model.Commit{Hash: "x", Message: "wip"}))
}

func TestClassifyCommit_SameResultAsClassify(t *testing.T) {
	c := classifier.New()
	ts := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	commit := &model.Commit{
		Hash:         "0123abcd",
		Author:       "bob",
		Timestamp:    ts,
		Message:      "Add Redis for caching session data",
		ChangedFiles: []string{"requirements.txt"},
	}

	plain := c.Classify(commit.Message, commit.ChangedFiles)
	gt.NotNil(t, plain)
	gt.Equal(t, plain.CommitHash, "")
	gt.Equal(t, plain.Author, "")
	gt.True(t, plain.Timestamp.IsZero())

	want := *plain
	want.CommitHash = "0123abcd"
	want.Author = "bob"
	want.Timestamp = ts

	got := c.ClassifyCommit(commit)
	gt.NotNil(t, got)
	gt.Equal(t, *got, want)
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"prefix and body", "refactor: simplify auth flow\nmore details", "simplify auth flow"},
		{"feat prefix", "feat: add login", "add login"},
		{"case insensitive prefix", "FIX:   typo in header", "typo in header"},
		{"no space after colon", "chore:bump deps", "bump deps"},
		{"scoped prefix is kept", "feat(api): add route", "feat(api): add route"},
		{"unknown prefix is kept", "perf: faster loop", "perf: faster loop"},
		{"crlf", "docs: readme\r\nbody", "readme"},
		{"empty", "", ""},
		{"long line", strings.Repeat("a", 150), strings.Repeat("a", 100)},
		{"multibyte", strings.Repeat("é", 120), strings.Repeat("é", 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Equal(t, classifier.Title(tt.message), tt.want)
		})
	}
}

func TestDefaultCategories(t *testing.T) {
	cats := classifier.DefaultCategories()
	gt.A(t, cats).Length(len(types.DecisionTypes()))

	for i, cat := range cats {
		gt.Equal(t, cat.Type, types.DecisionTypes()[i])
		gt.True(t, cat.Weight > 0 && cat.Weight <= 1)
		gt.True(t, len(cat.Keywords) > 0)

		wantPriority := cat.Type == types.DecisionArchitectureChange ||
			cat.Type == types.DecisionWorkaround ||
			cat.Type == types.DecisionSecurityFix
		gt.Equal(t, cat.Priority, wantPriority)
	}

	cats[0].Weight = 0
	gt.Equal(t, classifier.New().Categories()[0].Weight, 0.9)
}
