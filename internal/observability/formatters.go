package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cv-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
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

// PrintAnalysisResult outputs a human-readable summary of an analysis.
func (p *Printer) PrintAnalysisResult(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Profession: %s\n", result.Profession))
	sb.WriteString(fmt.Sprintf("Level:      %s\n", result.ExperienceLevel))
	sb.WriteString(fmt.Sprintf("Relevance:  %.2f%%\n", result.RelevanceScore))
	sb.WriteString("\n")

	if len(result.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills matched: %d\n", len(result.Skills)))
	}

	if len(result.Experience) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(result.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			entry := result.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s, %s (%dy)\n", entry.Title, entry.Company, entry.DurationYears))
		}
		if len(result.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Experience)-maxItemsToShow))
		}
	}

	if len(result.MissingSkills) > 0 {
		sb.WriteString(fmt.Sprintf("\nMissing skills: %d\n", len(result.MissingSkills)))
	}

	p.printBox("CV ANALYSIS RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs the numbered recommendation list.
func (p *Printer) PrintRecommendations(recommendations []string) {
	if len(recommendations) == 0 {
		return
	}

	var sb strings.Builder
	for i, rec := range recommendations {
		line := fmt.Sprintf("%d. %s", i+1, rec)
		sb.WriteString(line)
		if i < len(recommendations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("RECOMMENDATIONS", sb.String())
}
