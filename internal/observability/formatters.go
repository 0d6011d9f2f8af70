// Package observability provides formatted output utilities for rendering
// match results in a human-readable form.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/talentmatch/matchcore/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output of match results
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchResult outputs a human-readable summary of a ranked match result.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:       %s\n", result.JDJobTitle))
	if result.JDYears != nil {
		sb.WriteString(fmt.Sprintf("Years req:  %.0f\n", *result.JDYears))
	}
	sb.WriteString(fmt.Sprintf("Candidates: %d ranked, %d failed\n", len(result.Candidates), len(result.Failed)))
	sb.WriteString("\n")

	shown := len(result.Candidates)
	if shown > maxItemsToShow {
		shown = maxItemsToShow
	}
	for i := 0; i < shown; i++ {
		c := result.Candidates[i]
		sb.WriteString(fmt.Sprintf("%d. %s  %.1f%%\n", i+1, candidateLabel(c), c.OverallScore*100))
	}
	if len(result.Candidates) > shown {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(result.Candidates)-shown))
	}

	p.printBox("Match Result", strings.TrimRight(sb.String(), "\n"))
}

// PrintCandidate outputs the per-category detail for one candidate breakdown.
func (p *Printer) PrintCandidate(c *types.CandidateBreakdown) {
	if c == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:          %.1f%%\n", c.OverallScore*100))
	sb.WriteString(fmt.Sprintf("Skills:           %.1f%% (%d/%d)\n", c.SkillsScore*100, c.Skills.MatchedCount, c.Skills.TotalRequired))
	sb.WriteString(fmt.Sprintf("Responsibilities: %.1f%% (%d/%d)\n", c.ResponsibilitiesScore*100, c.Responsibilities.MatchedCount, c.Responsibilities.TotalRequired))
	sb.WriteString(fmt.Sprintf("Job title:        %.1f%%\n", c.JobTitleScore*100))
	sb.WriteString(fmt.Sprintf("Experience:       %.1f%%\n", c.YearsScore*100))

	if len(c.Skills.MissingItems) > 0 {
		sb.WriteString("\nMissing skills:\n")
		for i, item := range c.Skills.MissingItems {
			if i == maxItemsToShow {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(c.Skills.MissingItems)-maxItemsToShow))
				break
			}
			sb.WriteString(fmt.Sprintf("  - %s\n", item))
		}
	}

	if c.Notes != "" {
		sb.WriteString("\n" + c.Notes + "\n")
	}

	p.printBox(candidateLabel(*c), strings.TrimRight(sb.String(), "\n"))
}

// PrintAssignments outputs the chosen pairings and near-miss alternatives for
// one category result.
func (p *Printer) PrintAssignments(title string, result *types.CategoryResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	for _, a := range result.Assignments {
		sb.WriteString(fmt.Sprintf("%s -> %s (%.2f)\n", a.JDItem, a.CVItem, a.Score))
	}
	for _, alt := range result.Alternatives {
		for _, item := range alt.Items {
			sb.WriteString(fmt.Sprintf("  alt #%d: %s (%.2f)\n", alt.JDIndex, item.CVItem, item.Score))
		}
	}
	if sb.Len() == 0 {
		sb.WriteString("(no pairings)\n")
	}

	p.printBox(title, strings.TrimRight(sb.String(), "\n"))
}

func candidateLabel(c types.CandidateBreakdown) string {
	if c.CandidateName != "" {
		return c.CandidateName
	}
	if c.CandidateID != "" {
		return c.CandidateID
	}
	return "(unnamed candidate)"
}
