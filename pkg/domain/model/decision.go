package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/m-mizutani/devmemory/pkg/domain/types"
)

// maxTags is the number of changed files kept as tags on a persisted decision.
const maxTags = 5

// ClassifiedDecision is the classifier output for one commit. It is never mutated after creation.
type ClassifiedDecision struct {
	Type         types.DecisionType
	Confidence   float64
	Title        string
	Summary      string
	CommitHash   string
	Author       string
	Timestamp    time.Time
	ChangedFiles []string
	Indicators   []string
}

// Reasoning renders confidence and indicators as the free-text reasoning stored with a decision.
func (d *ClassifiedDecision) Reasoning() string {
	return fmt.Sprintf("Confidence: %.0f%%\nIndicators: %s", d.Confidence*100, strings.Join(d.Indicators, ", "))
}

// Tags returns the first few changed files joined with commas.
func (d *ClassifiedDecision) Tags() string {
	files := d.ChangedFiles
	if len(files) > maxTags {
		files = files[:maxTags]
	}
	return strings.Join(files, ",")
}

// ToDecision converts the classifier output into its persisted form. ID is assigned by the store.
func (d *ClassifiedDecision) ToDecision() *Decision {
	return &Decision{
		CommitHash: d.CommitHash,
		Type:       d.Type,
		Title:      d.Title,
		Summary:    d.Summary,
		Reasoning:  d.Reasoning(),
		Author:     d.Author,
		CreatedAt:  d.Timestamp.UTC(),
		Tags:       d.Tags(),
	}
}

// Decision is a classified decision as persisted by the DecisionRepository.
type Decision struct {
	ID         int64              `json:"id" yaml:"id"`
	CommitHash string             `json:"commit_hash" yaml:"commit_hash"`
	Type       types.DecisionType `json:"decision_type" yaml:"decision_type"`
	Title      string             `json:"title" yaml:"title"`
	Summary    string             `json:"summary" yaml:"summary"`
	Reasoning  string             `json:"reasoning,omitempty" yaml:"reasoning,omitempty"`
	Author     string             `json:"author" yaml:"author"`
	CreatedAt  time.Time          `json:"created_at" yaml:"created_at"`
	Tags       string             `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// ShortHash returns the first eight characters of the commit hash.
func (d *Decision) ShortHash() string {
	return shortHash(d.CommitHash)
}

// Files splits Tags back into the stored file list.
func (d *Decision) Files() []string {
	if d.Tags == "" {
		return nil
	}
	return strings.Split(d.Tags, ",")
}
