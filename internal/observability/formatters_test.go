package observability

import (
	"strings"
	"testing"

	"github.com/jonathan/qa-coach/internal/evaluation"
	"github.com/jonathan/qa-coach/internal/roi"
	"github.com/stretchr/testify/assert"
)

func sampleResult() *evaluation.Result {
	return &evaluation.Result{
		CriteriaScores: map[string]int{
			"accuracy":             4,
			"empathy_and_tone":     3,
			"clarity":              5,
			"actionability":        4,
			"escalation_awareness": 2,
		},
		OverallScore:       18,
		CoachingSummary:    "Be more proactive about escalation.",
		SuggestedQuestions: []string{"What blocked escalation?"},
	}
}

func TestPrintEvaluation(t *testing.T) {
	var buf strings.Builder
	NewPrinter(&buf).PrintEvaluation(sampleResult())

	out := buf.String()
	assert.Contains(t, out, "Overall Score: 18 / 25")
	assert.Contains(t, out, "Empathy And Tone")
	assert.Contains(t, out, "Escalation Awareness")
	assert.Contains(t, out, "What blocked escalation?")
	assert.Contains(t, out, "Be more proactive")
}

func TestPrintEvaluation_Nil(t *testing.T) {
	var buf strings.Builder
	NewPrinter(&buf).PrintEvaluation(nil)
	assert.Empty(t, buf.String())
}

func TestPrintEvaluation_NoQuestions(t *testing.T) {
	result := sampleResult()
	result.SuggestedQuestions = nil

	var buf strings.Builder
	NewPrinter(&buf).PrintEvaluation(result)
	assert.NotContains(t, buf.String(), "Suggested 1:1 Questions")
}

func TestPrintEstimate(t *testing.T) {
	var buf strings.Builder
	in := roi.Inputs{Managers: 10, HoursSaved: 4, HourlyCost: 70}
	NewPrinter(&buf).PrintEstimate(in, in.Estimate())

	out := buf.String()
	assert.Contains(t, out, "ROI ESTIMATE")
	assert.Contains(t, out, "$2800")
}

func TestScoreBar(t *testing.T) {
	assert.Equal(t, strings.Repeat("█", 20), scoreBar(5))
	assert.Equal(t, strings.Repeat("░", 20), scoreBar(0))
	assert.Equal(t, strings.Repeat("█", 12)+strings.Repeat("░", 8), scoreBar(3))
	assert.Equal(t, strings.Repeat("█", 20), scoreBar(99), "scores are clamped")
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Empathy And Tone", displayName("empathy_and_tone"))
	assert.Equal(t, "Accuracy", displayName("accuracy"))
}

func TestPrintCallDetails(t *testing.T) {
	result := sampleResult()
	result.Raw = []byte(`{"overall_score":18}`)

	var buf strings.Builder
	NewPrinter(&buf).PrintCallDetails("gemini-1.5-flash", result)

	out := buf.String()
	assert.Contains(t, out, "MODEL CALL")
	assert.Contains(t, out, "Model: gemini-1.5-flash")
	assert.Contains(t, out, `"overall_score"`)
}
