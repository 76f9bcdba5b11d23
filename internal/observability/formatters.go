// Package observability provides formatted terminal output for CLI results.
package observability

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/qa-coach/internal/evaluation"
	"github.com/jonathan/qa-coach/internal/roi"
	"github.com/jonathan/qa-coach/internal/rubric"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// barWidth is the character width of a full 5/5 score bar
	barWidth = 20
)

// Printer handles formatted output
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
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintEvaluation renders the score report: overall score, per-criterion
// bars, coaching summary, and any suggested 1:1 questions.
func (p *Printer) PrintEvaluation(result *evaluation.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall Score: %d / %d\n\n", result.OverallScore, rubric.MaxOverall))

	for _, criterion := range rubric.Criteria {
		score := result.CriteriaScores[criterion]
		sb.WriteString(fmt.Sprintf("%-21s %s %d/5\n", displayName(criterion), scoreBar(score), score))
	}

	if result.CoachingSummary != "" {
		sb.WriteString("\nCoaching Summary:\n")
		sb.WriteString(result.CoachingSummary)
		sb.WriteString("\n")
	}

	if len(result.SuggestedQuestions) > 0 {
		sb.WriteString("\nSuggested 1:1 Questions:\n")
		for _, q := range result.SuggestedQuestions {
			sb.WriteString(fmt.Sprintf("  • %s\n", q))
		}
	}

	p.printBox("QA EVALUATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRawJSON pretty-prints the extracted payload for debugging.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRawJSON(result *evaluation.Result) {
	if result == nil || len(result.Raw) == 0 {
		return
	}
	var buf strings.Builder
	var pretty json.RawMessage = result.Raw
	out, err := json.MarshalIndent(pretty, "", "  ")
	if err != nil {
		buf.Write(result.Raw)
	} else {
		buf.Write(out)
	}
	fmt.Fprintln(p.out, buf.String())
}

// PrintCallDetails renders the model name and the raw extracted payload.
// Used by verbose mode.
func (p *Printer) PrintCallDetails(model string, result *evaluation.Result) {
	p.printBox("MODEL CALL", fmt.Sprintf("Model: %s", model))
	p.PrintRawJSON(result)
}

// PrintEstimate renders the ROI estimator totals.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintEstimate(in roi.Inputs, est roi.Estimate) {
	content := fmt.Sprintf(
		"Managers:              %d\nHours saved / mgr / wk: %d\nHourly cost:           $%d\n\nHours saved / week:    %d\nCost savings / week:   $%d",
		in.Managers, in.HoursSaved, in.HourlyCost, est.WeeklyHours, est.WeeklySavings)
	p.printBox("ROI ESTIMATE", content)
}

// scoreBar renders a clamped 0-5 score as a fixed-width bar.
func scoreBar(score int) string {
	if score < 0 {
		score = 0
	}
	if score > rubric.MaxScore {
		score = rubric.MaxScore
	}
	filled := score * barWidth / rubric.MaxScore
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

// displayName turns a criterion key into a title ("empathy_and_tone" ->
// "Empathy And Tone").
func displayName(criterion string) string {
	words := strings.Split(criterion, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
