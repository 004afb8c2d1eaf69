// Package observability provides formatted terminal output for CLI commands.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-ranker/internal/pipeline"
	"github.com/jonathan/resume-ranker/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
)

// Printer handles formatted output for CLI commands
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

	for _, line := range strings.Split(content, "\n") {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysis outputs the detail payload of one analysis run.
func (p *Printer) PrintAnalysis(result *pipeline.AnalyzeResult) {
	if result == nil || len(result.Details) == 0 {
		fmt.Fprintln(p.out, "No analysis result.")
		return
	}

	var sb strings.Builder
	for i, row := range result.Details {
		if i > 0 {
			sb.WriteString("\n")
		}
		values := strings.Split(row.Value, "\n")
		sb.WriteString(fmt.Sprintf("%-16s %s", row.Field+":", values[0]))
		for _, extra := range values[1:] {
			sb.WriteString(fmt.Sprintf("\n%-16s %s", "", extra))
		}
	}

	p.printBox("Resume Analysis", sb.String())
}

// PrintRankings outputs the leaderboard for one role.
func (p *Printer) PrintRankings(jobRole string, entries []types.RankingEntry) {
	if len(entries) == 0 {
		p.printBox("Rankings: "+jobRole, "No candidates analyzed for this role yet.")
		return
	}

	var sb strings.Builder
	for i, entry := range entries {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%2d. %-40s %3d/100", i+1, entry.FullName, entry.MatchScore))
	}

	p.printBox("Rankings: "+jobRole, sb.String())
}

// PrintCandidates outputs the all-candidates table.
func (p *Printer) PrintCandidates(table *pipeline.CandidateTable) {
	if table == nil || len(table.Rows) == 0 {
		p.printBox("All Candidates", "No candidates stored.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-24s %-28s %-6s %s", table.Headers[0], table.Headers[1], table.Headers[2], table.Headers[3]))
	for _, row := range table.Rows {
		sb.WriteString(fmt.Sprintf("\n%-24s %-28s %-6s %s", row[0], row[1], row[2], row[3]))
	}

	p.printBox("All Candidates", sb.String())
}
