package evaluation

import "github.com/jonathan/qa-coach/internal/prompts"

// BuildPrompt composes the evaluation request: the fixed grading guide (rubric,
// scoring rules, output JSON shape) followed by the transcript verbatim. Pure
// function of the transcript; the transcript is not escaped or sanitized.
func BuildPrompt(transcript string) string {
	template := prompts.MustGet("coaching.json", "score-ticket")
	return prompts.Format(template, map[string]string{
		"Transcript": transcript,
	})
}
