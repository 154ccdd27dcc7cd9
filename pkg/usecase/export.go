package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/m-mizutani/devmemory/pkg/domain/interfaces"
	"github.com/m-mizutani/devmemory/pkg/domain/model"
	"github.com/m-mizutani/devmemory/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

// Export formats
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
)

type exportUseCase struct {
	repo interfaces.DecisionRepository
	cfg  *config
}

// exportDocument is the JSON and YAML envelope
type exportDocument struct {
	GeneratedAt time.Time         `json:"generated_at" yaml:"generated_at"`
	Total       int               `json:"total" yaml:"total"`
	Decisions   []*model.Decision `json:"decisions" yaml:"decisions"`
}

// NewExport creates a new instance of ExportUseCase
func NewExport(repo interfaces.DecisionRepository, opts ...Option) interfaces.ExportUseCase {
	return &exportUseCase{
		repo: repo,
		cfg:  newConfig(opts),
	}
}

// ParseFormat normalizes a user supplied export format
func ParseFormat(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "md", FormatMarkdown:
		return FormatMarkdown, nil
	case FormatJSON:
		return FormatJSON, nil
	case "yml", FormatYAML:
		return FormatYAML, nil
	default:
		return "", goerr.New("unsupported export format",
			goerr.V("format", s),
			goerr.T(types.ErrTagInvalidArgument),
		)
	}
}

// Export writes all decisions to w and returns how many were written
func (uc *exportUseCase) Export(ctx context.Context, w io.Writer, format string) (int, error) {
	format, err := ParseFormat(format)
	if err != nil {
		return 0, err
	}

	decisions, err := uc.repo.Find(ctx, model.DecisionFilter{Order: model.SortOldestFirst})
	if err != nil {
		return 0, err
	}

	doc := &exportDocument{
		GeneratedAt: uc.cfg.now(),
		Total:       len(decisions),
		Decisions:   decisions,
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return 0, goerr.Wrap(err, "failed to encode JSON export")
		}

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return 0, goerr.Wrap(err, "failed to encode YAML export")
		}
		if err := enc.Close(); err != nil {
			return 0, goerr.Wrap(err, "failed to flush YAML export")
		}

	default:
		if _, err := io.WriteString(w, formatMarkdown(doc)); err != nil {
			return 0, goerr.Wrap(err, "failed to write Markdown export")
		}
	}

	return len(decisions), nil
}

// formatMarkdown renders one section per decision type, in category order. Types unknown to the
// classifier follow in alphabetical order.
func formatMarkdown(doc *exportDocument) string {
	var sb strings.Builder

	sb.WriteString("# Project Decisions\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", doc.GeneratedAt.Format("2006-01-02 15:04")))
	sb.WriteString(fmt.Sprintf("Total Decisions: %d\n\n", doc.Total))
	sb.WriteString("---\n\n")

	groups := make(map[types.DecisionType][]*model.Decision)
	for _, d := range doc.Decisions {
		groups[d.Type] = append(groups[d.Type], d)
	}

	order := types.DecisionTypes()
	var unknown []types.DecisionType
	for t := range groups {
		if !t.IsValid() {
			unknown = append(unknown, t)
		}
	}
	sort.Slice(unknown, func(i, j int) bool { return unknown[i] < unknown[j] })
	order = append(order, unknown...)

	for _, t := range order {
		items := groups[t]
		if len(items) == 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf("## %s\n\n", t.Title()))
		for _, d := range items {
			sb.WriteString(fmt.Sprintf("### %s\n\n", d.Title))
			sb.WriteString(fmt.Sprintf("- **Type:** %s\n", d.Type.Title()))
			sb.WriteString(fmt.Sprintf("- **Author:** %s\n", d.Author))
			sb.WriteString(fmt.Sprintf("- **Date:** %s\n", d.CreatedAt.Format("2006-01-02")))
			sb.WriteString(fmt.Sprintf("- **Commit:** `%s`\n\n", d.CommitHash))
			sb.WriteString(fmt.Sprintf("#### Summary\n\n%s\n\n", d.Summary))
			if d.Reasoning != "" {
				sb.WriteString(fmt.Sprintf("#### Analysis\n\n%s\n\n", d.Reasoning))
			}
			sb.WriteString("---\n\n")
		}
	}

	return sb.String()
}
