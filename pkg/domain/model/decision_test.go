package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/devmemory/pkg/domain/model"
	"github.com/m-mizutani/devmemory/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestClassifiedDecision_ToDecision(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)
	ts := time.Date(2025, 3, 1, 12, 0, 0, 0, jst)

	cd := &model.ClassifiedDecision{
		Type:         types.DecisionDependencyAdded,
		Confidence:   0.9,
		Title:        "Add Redis",
		Summary:      "Add Redis for caching",
		CommitHash:   "0123456789abcdef",
		Author:       "alice",
		Timestamp:    ts,
		ChangedFiles: []string{"a", "b", "c", "d", "e", "f"},
		Indicators:   []string{"keywords: add", "files: requirements.txt"},
	}

	d := cd.ToDecision()
	gt.Equal(t, d.ID, int64(0))
	gt.Equal(t, d.CommitHash, "0123456789abcdef")
	gt.Equal(t, d.Type, types.DecisionDependencyAdded)
	gt.Equal(t, d.Reasoning, "Confidence: 90%\nIndicators: keywords: add, files: requirements.txt")
	gt.Equal(t, d.Tags, "a,b,c,d,e")
	gt.True(t, d.CreatedAt.Equal(ts))
	gt.Equal(t, d.CreatedAt.Location(), time.UTC)
	gt.Equal(t, d.ShortHash(), "01234567")
	gt.A(t, d.Files()).Length(5)
}

func TestDecision_Files(t *testing.T) {
	d := &model.Decision{}
	gt.A(t, d.Files()).Length(0)

	d.Tags = "go.mod"
	gt.A(t, d.Files()).Length(1)
}

func TestCommit_ShortHash(t *testing.T) {
	gt.Equal(t, (&model.Commit{Hash: "abc"}).ShortHash(), "abc")
	gt.Equal(t, (&model.Commit{Hash: "abcdef0123"}).ShortHash(), "abcdef01")
}
