package db_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/devmemory/pkg/domain/interfaces"
	"github.com/m-mizutani/devmemory/pkg/domain/model"
	"github.com/m-mizutani/devmemory/pkg/domain/types"
	"github.com/m-mizutani/devmemory/pkg/infra/db"
	"github.com/m-mizutani/gt"
)

var base = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func newStore(t *testing.T) interfaces.DecisionRepository {
	t.Helper()
	s, err := db.New(context.Background(), filepath.Join(t.TempDir(), "devmemory.db"))
	gt.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newDecision(hash string, dt types.DecisionType, author string, at time.Time, title string) *model.Decision {
	return &model.Decision{
		CommitHash: hash,
		Type:       dt,
		Title:      title,
		Summary:    title + "\n\nbody",
		Reasoning:  "Confidence: 90%\nIndicators: keywords: add",
		Author:     author,
		CreatedAt:  at,
		Tags:       "go.mod,main.go",
	}
}

func seed(t *testing.T, s interfaces.DecisionRepository) {
	t.Helper()
	ctx := context.Background()
	items := []*model.Decision{
		newDecision("h1", types.DecisionDependencyAdded, "alice", base, "Add Redis client"),
		newDecision("h2", types.DecisionArchitectureChange, "bob", base.Add(24*time.Hour), "Refactor auth layer"),
		newDecision("h3", types.DecisionDependencyAdded, "alice", base.Add(48*time.Hour), "Bump gorm"),
		newDecision("h4", types.DecisionSecurityFix, "carol", base.Add(72*time.Hour), "Fix XSS in 100%_safe form"),
	}
	for _, d := range items {
		saved, err := s.Save(ctx, d, false)
		gt.NoError(t, err)
		gt.True(t, saved)
	}
}

func TestStore_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	d := newDecision("abc", types.DecisionWorkaround, "alice", base, "Temporary hack")
	saved, err := s.Save(ctx, d, false)
	gt.NoError(t, err)
	gt.True(t, saved)
	gt.True(t, d.ID > 0)

	got, err := s.FindByID(ctx, d.ID)
	gt.NoError(t, err)
	gt.NotNil(t, got)
	gt.Equal(t, got.CommitHash, "abc")
	gt.Equal(t, got.Type, types.DecisionWorkaround)
	gt.Equal(t, got.Summary, d.Summary)
	gt.Equal(t, got.Reasoning, d.Reasoning)
	gt.Equal(t, got.Tags, d.Tags)
	gt.True(t, got.CreatedAt.Equal(base))

	byHash, err := s.FindByHash(ctx, "abc")
	gt.NoError(t, err)
	gt.Equal(t, byHash.ID, d.ID)

	t.Run("miss returns nil", func(t *testing.T) {
		missing, err := s.FindByID(ctx, 9999)
		gt.NoError(t, err)
		gt.Nil(t, missing)

		missing, err = s.FindByHash(ctx, "nope")
		gt.NoError(t, err)
		gt.Nil(t, missing)
	})
}

func TestStore_SaveDuplicate(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	first := newDecision("dup", types.DecisionTesting, "alice", base, "Add tests")
	saved, err := s.Save(ctx, first, false)
	gt.NoError(t, err)
	gt.True(t, saved)

	t.Run("without force is ignored", func(t *testing.T) {
		second := newDecision("dup", types.DecisionDocumentation, "bob", base, "Other")
		saved, err := s.Save(ctx, second, false)
		gt.NoError(t, err)
		gt.False(t, saved)
		gt.Equal(t, second.ID, int64(0))

		n, err := s.Count(ctx)
		gt.NoError(t, err)
		gt.Equal(t, n, int64(1))

		got, err := s.FindByHash(ctx, "dup")
		gt.NoError(t, err)
		gt.Equal(t, got.Type, types.DecisionTesting)
	})

	t.Run("with force replaces in place", func(t *testing.T) {
		third := newDecision("dup", types.DecisionDocumentation, "bob", base, "Reclassified")
		saved, err := s.Save(ctx, third, true)
		gt.NoError(t, err)
		gt.True(t, saved)
		gt.Equal(t, third.ID, first.ID)

		n, err := s.Count(ctx)
		gt.NoError(t, err)
		gt.Equal(t, n, int64(1))

		got, err := s.FindByHash(ctx, "dup")
		gt.NoError(t, err)
		gt.Equal(t, got.Type, types.DecisionDocumentation)
		gt.Equal(t, got.Title, "Reclassified")
	})
}

func TestStore_Find(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	seed(t, s)

	hashes := func(ds []*model.Decision) []string {
		out := make([]string, 0, len(ds))
		for _, d := range ds {
			out = append(out, d.CommitHash)
		}
		return out
	}

	tests := []struct {
		name   string
		filter model.DecisionFilter
		want   []string
	}{
		{"all newest first", model.DecisionFilter{}, []string{"h4", "h3", "h2", "h1"}},
		{"all oldest first", model.DecisionFilter{Order: model.SortOldestFirst}, []string{"h1", "h2", "h3", "h4"}},
		{"limit", model.DecisionFilter{Limit: 2}, []string{"h4", "h3"}},
		{"by type", model.DecisionFilter{Type: types.DecisionDependencyAdded}, []string{"h3", "h1"}},
		{"since", model.DecisionFilter{Since: base.Add(36 * time.Hour)}, []string{"h4", "h3"}},
		{"range inclusive", model.DecisionFilter{Since: base.Add(24 * time.Hour), Until: base.Add(48 * time.Hour)}, []string{"h3", "h2"}},
		{"query title case insensitive", model.DecisionFilter{Query: "REDIS"}, []string{"h1"}},
		{"query summary", model.DecisionFilter{Query: "body"}, []string{"h4", "h3", "h2", "h1"}},
		{"query tags", model.DecisionFilter{Query: "go.mod"}, []string{"h4", "h3", "h2", "h1"}},
		{"query wildcard characters are literal", model.DecisionFilter{Query: "100%_safe"}, []string{"h4"}},
		{"query underscore is literal", model.DecisionFilter{Query: "a_b"}, []string{}},
		{"query with type", model.DecisionFilter{Query: "bump", Type: types.DecisionDependencyAdded}, []string{"h3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Find(ctx, tt.filter)
			gt.NoError(t, err)
			gt.Equal(t, hashes(got), tt.want)
		})
	}
}

func TestStore_FindNonASCII(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	d := newDecision("u1", types.DecisionPerformanceOptimization, "jürgen", base, "Ändere Cache")
	d.Tags = "Übersicht.md"
	_, err := s.Save(ctx, d, false)
	gt.NoError(t, err)

	tests := []struct {
		query string
		want  int
	}{
		{"Ändere", 1},
		{"Übersicht", 1},
		{"cache", 1},
		{"CACHE", 1},
		{"Ändere Cache", 1},
		{"Andere", 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := s.Find(ctx, model.DecisionFilter{Query: tt.query})
			gt.NoError(t, err)
			gt.A(t, got).Length(tt.want)
		})
	}
}

func TestStore_Aggregations(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	seed(t, s)

	n, err := s.Count(ctx)
	gt.NoError(t, err)
	gt.Equal(t, n, int64(4))

	byType, err := s.CountByType(ctx)
	gt.NoError(t, err)
	gt.Equal(t, byType, []model.GroupCount{
		{Key: "dependency_added", Count: 2},
		{Key: "architecture_change", Count: 1},
		{Key: "security_fix", Count: 1},
	})

	byAuthor, err := s.CountByAuthor(ctx)
	gt.NoError(t, err)
	gt.Equal(t, byAuthor, []model.GroupCount{
		{Key: "alice", Count: 2},
		{Key: "bob", Count: 1},
		{Key: "carol", Count: 1},
	})
}

func TestStore_EmptyAggregations(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	n, err := s.Count(ctx)
	gt.NoError(t, err)
	gt.Equal(t, n, int64(0))

	byType, err := s.CountByType(ctx)
	gt.NoError(t, err)
	gt.A(t, byType).Length(0)
}

func TestStore_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "devmemory.db")

	s, err := db.New(ctx, path)
	gt.NoError(t, err)
	for i := range 3 {
		_, err := s.Save(ctx, newDecision(fmt.Sprintf("hash-%d", i), types.DecisionTesting, "alice", base, "t"), false)
		gt.NoError(t, err)
	}
	gt.NoError(t, s.Close())

	s, err = db.New(ctx, path)
	gt.NoError(t, err)
	defer s.Close()

	n, err := s.Count(ctx)
	gt.NoError(t, err)
	gt.Equal(t, n, int64(3))
}
