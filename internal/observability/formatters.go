// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/recruiter-agent/internal/types"
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

// PrintCriteria outputs a human-readable summary of the extracted search
// criteria.
func (p *Printer) PrintCriteria(criteria *types.SearchCriteria) {
	if criteria == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Job Title:  %s\n", criteria.JobTitle))
	if exp := criteria.Experience.String(); exp != "" {
		sb.WriteString(fmt.Sprintf("Experience: %s years\n", exp))
	}
	if criteria.WorkPreference != "" {
		sb.WriteString(fmt.Sprintf("Work Pref:  %s\n", criteria.WorkPreference))
	}
	if criteria.JobType != "" {
		sb.WriteString(fmt.Sprintf("Job Type:   %s\n", criteria.JobType))
	}

	if len(criteria.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(criteria.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", criteria.Skills[i]))
		}
		if len(criteria.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(criteria.Skills)-maxItemsToShow))
		}
	}

	if len(criteria.Location) > 0 {
		sb.WriteString("\nLocations:\n")
		count := min(len(criteria.Location), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", criteria.Location[i]))
		}
		if len(criteria.Location) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(criteria.Location)-maxItemsToShow))
		}
	}

	p.printBox("EXTRACTED SEARCH CRITERIA", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSearchQuery outputs the boolean query sent to the search engine.
func (p *Printer) PrintSearchQuery(query string) {
	if query == "" {
		return
	}

	var sb strings.Builder
	for len(query) > boxWidth-4 {
		sb.WriteString(query[:boxWidth-4])
		sb.WriteString("\n")
		query = query[boxWidth-4:]
	}
	sb.WriteString(query)

	p.printBox("BOOLEAN SEARCH QUERY", sb.String())
}

// PrintCandidates outputs the top scored candidates with matched skills.
func (p *Printer) PrintCandidates(candidates []types.MatchResult) {
	if len(candidates) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total candidates scored: %d\n\n", len(candidates)))

	count := min(len(candidates), maxItemsToShow)
	for i := 0; i < count; i++ {
		candidate := candidates[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, candidate.FullName))
		sb.WriteString(fmt.Sprintf("    Score: %d\n", candidate.Score))
		if len(candidate.Skills) > 0 {
			skills := strings.Join(candidate.Skills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(candidates) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(candidates)-maxItemsToShow))
	}

	p.printBox("TOP SCORED CANDIDATES", sb.String())
}

// PrintUnmatched outputs profiles that failed the location filter.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintUnmatched(unmatched []types.ProfileRecord) {
	if len(unmatched) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "ALL PROFILES MATCHED REQUESTED LOCATIONS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d profile(s) outside requested locations:\n\n", len(unmatched)))

	count := min(len(unmatched), maxItemsToShow)
	for i := 0; i < count; i++ {
		record := unmatched[i]
		location := record.AddressWithCountry
		if len(location) > 35 {
			location = location[:32] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s (%s)\n", record.FullName, location))
	}
	if len(unmatched) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(unmatched)-maxItemsToShow))
	}

	p.printBox("LOCATION FILTER MISSES", strings.TrimSuffix(sb.String(), "\n"))
}
