// Package classifier decides whether a commit records a technical decision and of which kind.
//
// Classification is keyword and file-marker scoring against a fixed category table. It performs no
// I/O and never fails: a commit that reaches no category threshold simply yields nil.
package classifier

import (
	"regexp"
	"strings"

	"github.com/m-mizutani/devmemory/pkg/domain/model"
)

const (
	maxTitleLength = 100

	// maxFileIndicators bounds the matched files listed in an indicator.
	maxFileIndicators = 3
)

var conventionalPrefix = regexp.MustCompile(`(?i)^(feat|fix|docs|style|refactor|test|chore):\s*`)

// Classifier scores commits against a category table. It is immutable and safe to share.
type Classifier struct {
	categories []Category
}

// New returns a Classifier over the built-in category table.
func New() *Classifier {
	return &Classifier{categories: defaultCategories}
}

// NewWithCategories returns a Classifier over a custom table. Declaration order is the tie-break.
func NewWithCategories(categories []Category) *Classifier {
	cats := make([]Category, len(categories))
	copy(cats, categories)
	return &Classifier{categories: cats}
}

// Categories returns a copy of the table in use.
func (c *Classifier) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

type candidate struct {
	category   *Category
	score      float64
	indicators []string
}

// Classify returns the best matching decision for message and changedFiles, or nil.
//
// The returned decision carries only the classification fields (type, confidence, title, summary,
// indicators and changed files); use ClassifyCommit to also fill in commit metadata.
func (c *Classifier) Classify(message string, changedFiles []string) *model.ClassifiedDecision {
	return c.classify(&model.Commit{Message: message, ChangedFiles: changedFiles})
}

// ClassifyCommit classifies commit and attaches its hash, author and timestamp.
func (c *Classifier) ClassifyCommit(commit *model.Commit) *model.ClassifiedDecision {
	return c.classify(commit)
}

func (c *Classifier) classify(commit *model.Commit) *model.ClassifiedDecision {
	lower := strings.ToLower(commit.Message)

	var best *candidate
	for i := range c.categories {
		cand := score(&c.categories[i], lower, commit.ChangedFiles)
		if cand == nil || cand.score < cand.category.Threshold() {
			continue
		}
		if best == nil || cand.score > best.score {
			best = cand
		}
	}

	if best == nil {
		return nil
	}

	return &model.ClassifiedDecision{
		Type:         best.category.Type,
		Confidence:   best.score,
		Title:        Title(commit.Message),
		Summary:      strings.TrimSpace(commit.Message),
		CommitHash:   commit.Hash,
		Author:       commit.Author,
		Timestamp:    commit.Timestamp,
		ChangedFiles: commit.ChangedFiles,
		Indicators:   best.indicators,
	}
}

// score returns nil when no keyword of the category occurs in the message. File markers only add
// to a category that already matched by keyword.
func score(cat *Category, lowerMessage string, changedFiles []string) *candidate {
	var keywords []string
	for _, kw := range cat.Keywords {
		if strings.Contains(lowerMessage, kw) {
			keywords = append(keywords, kw)
		}
	}
	if len(keywords) == 0 {
		return nil
	}

	cand := &candidate{
		category:   cat,
		score:      cat.Weight,
		indicators: []string{"keywords: " + strings.Join(keywords, ", ")},
	}

	if files := matchFiles(cat.Files, changedFiles); len(files) > 0 {
		cand.score += fileMatchBonus
		cand.indicators = append(cand.indicators, "files: "+strings.Join(files, ", "))
	}

	cand.score = min(cand.score, maxScore)
	return cand
}

func matchFiles(markers, changedFiles []string) []string {
	if len(markers) == 0 {
		return nil
	}

	var matched []string
	for _, f := range changedFiles {
		for _, m := range markers {
			if strings.Contains(f, m) {
				matched = append(matched, f)
				break
			}
		}
		if len(matched) == maxFileIndicators {
			break
		}
	}
	return matched
}

// Title derives a short title from the first line of message with any conventional-commit type
// prefix removed, truncated to 100 characters.
func Title(message string) string {
	first, _, _ := strings.Cut(message, "\n")
	first = strings.TrimSuffix(first, "\r")
	first = conventionalPrefix.ReplaceAllString(first, "")

	runes := []rune(first)
	if len(runes) > maxTitleLength {
		return string(runes[:maxTitleLength])
	}
	return first
}
