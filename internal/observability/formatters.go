// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jonathan/resume-builder/internal/github"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1).
			Width(boxWidth)
	titleStyle = lipgloss.NewStyle().Bold(true)
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a bordered box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	body := lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), "", strings.TrimRight(content, "\n"))
	fmt.Fprintln(p.out, boxStyle.Render(body))
}

// PrintProfile outputs a summary of the fetched profile.
func (p *Printer) PrintProfile(profile *types.Profile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:      %s\n", profile.FullName()))
	if profile.Headline != "" {
		sb.WriteString(fmt.Sprintf("Headline:  %s\n", profile.Headline))
	}
	if addr := profile.Address(); addr != "" {
		sb.WriteString(fmt.Sprintf("Location:  %s\n", addr))
	}
	sb.WriteString("\n")

	var education []string
	for _, e := range profile.Education {
		if line, ok := rendering.FormatEducationEntry(e); ok {
			education = append(education, line.Text())
		}
	}
	writeList(&sb, "Education", education)

	var languages []string
	for _, l := range profile.Languages {
		label, ok := rendering.ProficiencyLabel(l.Proficiency)
		if !ok {
			label = "hidden"
		}
		languages = append(languages, fmt.Sprintf("%s (%s)", l.Name, label))
	}
	writeList(&sb, "Languages", languages)

	var projects []string
	for _, pr := range profile.Projects {
		projects = append(projects, pr.Title)
	}
	writeList(&sb, "Projects", projects)

	p.printBox("FETCHED PROFILE", sb.String())
}

// PrintSkills outputs the model-ordered skills with their one-line descriptions.
func (p *Printer) PrintSkills(skills []types.SkillDescription) {
	if len(skills) == 0 {
		return
	}

	var sb strings.Builder
	for i, s := range skills {
		sb.WriteString(fmt.Sprintf("%d. %s", i+1, s.Name))
		if s.Line != "" {
			sb.WriteString(fmt.Sprintf(": %s", s.Line))
		}
		sb.WriteString("\n")
	}

	p.printBox(fmt.Sprintf("SKILLS (%d)", len(skills)), sb.String())
}

// PrintLanguageStats outputs code-host language totals, largest first.
func (p *Printer) PrintLanguageStats(stats types.LanguageStats) {
	rows := github.Sorted(stats)

	total := 0
	for _, r := range rows {
		total += r.Bytes
	}

	var sb strings.Builder
	if len(rows) == 0 {
		sb.WriteString("No languages found\n")
	}
	for _, r := range rows {
		share := 0.0
		if total > 0 {
			share = float64(r.Bytes) / float64(total) * 100
		}
		sb.WriteString(fmt.Sprintf("%-16s %12d bytes %5.1f%%\n", r.Language, r.Bytes, share))
	}

	p.printBox("LANGUAGE STATS", sb.String())
}

// PrintResult outputs where the PDF was written.
func (p *Printer) PrintResult(outputPath string, snapshotPath string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("PDF:       %s\n", outputPath))
	if snapshotPath != "" {
		sb.WriteString(fmt.Sprintf("Snapshot:  %s\n", snapshotPath))
	}
	p.printBox("RESUME WRITTEN", sb.String())
}

// writeList writes a titled bullet list, truncated to maxItemsToShow
func writeList(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(title + ":\n")
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
	sb.WriteString("\n")
}
