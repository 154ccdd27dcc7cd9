package presenter

import (
	"strconv"
	"strings"

	"github.com/m-mizutani/devmemory/pkg/domain/model"
)

// ANSI colors for table columns
const (
	colorCyan    = "6"
	colorMagenta = "5"
	colorBlue    = "4"
	colorGreen   = "2"
	colorGray    = "8"
)

// Decisions renders decisions as a table, or a hint when there are none.
func (p *Printer) Decisions(title string, decisions []*model.Decision) {
	if len(decisions) == 0 {
		p.Notice("No decisions found yet. Run 'devmemory analyze' first!")
		return
	}

	t := p.newTable(map[int]string{
		1: colorCyan,
		2: colorMagenta,
		3: colorBlue,
		4: colorGreen,
		5: colorGray,
	}, "ID", "Date", "Type", "Author", "Title", "Hash")

	for _, d := range decisions {
		t.Row(
			strconv.FormatInt(d.ID, 10),
			d.CreatedAt.Format("2006-01-02"),
			d.Type.Title(),
			d.Author,
			truncate(d.Title, maxTitleWidth),
			d.ShortHash(),
		)
	}

	p.println(p.bold.Sprintf("%s (%d shown)", title, len(decisions)))
	p.println(t.String())
}

// Decision renders the full detail view of one decision.
func (p *Printer) Decision(d *model.Decision) {
	rule := strings.Repeat("=", 60)

	p.println(p.bold.Sprint(rule))
	p.println(p.green.Sprintf("Decision #%d: %s", d.ID, d.Title))
	p.println(p.bold.Sprint(rule))
	p.println("")

	p.printf("%s %s\n", p.cyan.Sprint("Type:"), d.Type.Title())
	p.printf("%s %s\n", p.cyan.Sprint("Author:"), d.Author)
	p.printf("%s %s\n", p.cyan.Sprint("Date:"), d.CreatedAt.Format("2006-01-02 15:04"))
	p.printf("%s %s\n", p.cyan.Sprint("Commit:"), d.CommitHash)
	p.println("")

	p.println(p.bold.Sprint("Summary:"))
	p.println(d.Summary)
	p.println("")

	if d.Reasoning != "" {
		p.println(p.bold.Sprint("Analysis:"))
		p.println(d.Reasoning)
		p.println("")
	}

	if d.Tags != "" {
		p.printf("%s %s\n", p.cyan.Sprint("Files:"), d.Tags)
	}
}

// SearchResults renders matches for query as a compact list.
func (p *Printer) SearchResults(query string, decisions []*model.Decision) {
	if len(decisions) == 0 {
		p.Notice("No decisions found matching '%s'", query)
		return
	}

	p.println(p.bold.Sprintf("Found %d decisions matching '%s':", len(decisions), query))
	p.println("")
	for _, d := range decisions {
		p.printf("%s %s %s\n",
			p.dim.Sprintf("#%d", d.ID),
			p.cyan.Sprint(d.CreatedAt.Format("2006-01-02")),
			p.magenta.Sprint(d.Type.Title()),
		)
		p.printf("  %s\n", d.Title)
		p.printf("  by %s (%s)\n\n", d.Author, d.ShortHash())
	}
}

// Timeline renders decisions grouped by day in the order given.
func (p *Printer) Timeline(days int, decisions []*model.Decision) {
	if len(decisions) == 0 {
		p.Notice("No decisions in the last %d days", days)
		return
	}

	p.println(p.bold.Sprintf("Decision timeline (last %d days)", days))

	current := ""
	for _, d := range decisions {
		day := d.CreatedAt.Format("2006-01-02")
		if day != current {
			current = day
			p.println("")
			p.println(p.cyan.Sprint(day))
		}
		p.printf("  * %s %s %s\n",
			p.magenta.Sprintf("[%s]", d.Type.Title()),
			d.Title,
			p.dim.Sprintf("(%s, %s)", d.Author, d.ShortHash()),
		)
	}
}
