package presenter

import (
	"sort"
	"strconv"

	"github.com/m-mizutani/devmemory/pkg/domain/model"
	"github.com/m-mizutani/devmemory/pkg/domain/types"
)

// Statistics renders totals and the by-type and by-author tables.
func (p *Printer) Statistics(stats *model.Statistics) {
	p.println(p.blue.Sprint("DevMemory Statistics"))
	p.println("")
	p.printf("Total Decisions: %d\n", stats.Total)

	if len(stats.ByType) > 0 {
		p.println("")
		p.println(p.bold.Sprint("Decisions by Type"))
		p.println(p.countTable("Type", stats.ByType, true))
	}
	if len(stats.ByAuthor) > 0 {
		p.println("")
		p.println(p.bold.Sprint("Decisions by Author"))
		p.println(p.countTable("Author", stats.ByAuthor, false))
	}
}

func (p *Printer) countTable(label string, counts []model.GroupCount, isType bool) string {
	t := p.newTable(map[int]string{0: colorMagenta, 1: colorCyan}, label, "Count")
	for _, c := range counts {
		key := c.Key
		if isType {
			key = types.DecisionType(c.Key).Title()
		}
		t.Row(key, strconv.FormatInt(c.Count, 10))
	}
	return t.String()
}

// Summary renders the project overview.
func (p *Printer) Summary(s *model.Summary) {
	p.println(p.blue.Sprint("DevMemory Summary"))
	p.println("")

	if s.Total == 0 {
		p.Notice("No decisions found yet. Run 'devmemory analyze' first!")
		return
	}

	p.printf("Total Decisions: %d\n", s.Total)
	if s.First != nil && s.Last != nil {
		p.printf("Period: %s to %s\n", s.First.Format("2006-01-02"), s.Last.Format("2006-01-02"))
	}

	if len(s.ByType) > 0 {
		p.println("")
		p.println(p.bold.Sprint("By Type"))
		p.println(p.countTable("Type", s.ByType, true))
	}
	if len(s.TopAuthors) > 0 {
		p.println("")
		p.println(p.bold.Sprint("Top Authors"))
		p.println(p.countTable("Author", s.TopAuthors, false))
	}
	if len(s.Recent) > 0 {
		p.println("")
		p.Decisions("Latest Decisions", s.Recent)
	}
}

// AnalysisResult renders the outcome of an analyze run.
func (p *Printer) AnalysisResult(r *model.AnalysisResult) {
	p.println("")
	p.Success("Analysis complete!")
	p.printf("   Commits scanned: %d\n", r.Scanned)
	p.printf("   Already processed: %d\n", r.Skipped)
	p.printf("   Decisions found: %d\n", r.Found)
	p.printf("   New decisions saved: %d\n", r.Saved)
	if r.Failed > 0 {
		p.println(p.red.Sprintf("   Failed: %d", r.Failed))
	}

	if len(r.ByType) == 0 {
		return
	}

	found := make([]types.DecisionType, 0, len(r.ByType))
	for t := range r.ByType {
		found = append(found, t)
	}
	sort.Slice(found, func(i, j int) bool {
		if r.ByType[found[i]] != r.ByType[found[j]] {
			return r.ByType[found[i]] > r.ByType[found[j]]
		}
		return found[i] < found[j]
	})

	p.println("")
	for _, t := range found {
		p.printf("   %s %d\n", p.magenta.Sprintf("%-26s", t.Title()), r.ByType[t])
	}
}
