package evaluation

import "encoding/json"

// Result is the structured outcome of scoring one transcript. It is created
// fresh per request, rendered, and discarded; nothing is cached or stored.
type Result struct {
	// CriteriaScores maps each rubric criterion to its 1-5 score.
	CriteriaScores map[string]int `json:"criteria_scores"`
	// OverallScore is the model's own sum of the criteria (expected 5-25).
	// It is NOT recomputed or corrected here; trusting the model's arithmetic
	// is a known gap carried over deliberately.
	OverallScore int `json:"overall_score"`
	// CoachingSummary is free text with 2-4 actionable points.
	CoachingSummary string `json:"coaching_summary"`
	// SuggestedQuestions is an ordered list of short 1:1 questions, possibly empty.
	SuggestedQuestions []string `json:"suggested_1on1_questions"`
	// Raw is the extracted JSON span, kept for the debug view.
	Raw json.RawMessage `json:"raw,omitempty"`
}

// resultFromDoc converts a validated generic document into a Result. Value
// types inside the document are intentionally not enforced here (strict mode
// handles that); unconvertible values fall back to zero values.
func resultFromDoc(doc map[string]any, span string) *Result {
	result := &Result{
		CriteriaScores:  map[string]int{},
		OverallScore:    asInt(doc["overall_score"]),
		CoachingSummary: asString(doc["coaching_summary"]),
		Raw:             json.RawMessage(span),
	}

	if scores, ok := doc["criteria_scores"].(map[string]any); ok {
		for criterion, value := range scores {
			result.CriteriaScores[criterion] = asInt(value)
		}
	}

	if questions, ok := doc["suggested_1on1_questions"].([]any); ok {
		for _, q := range questions {
			if s, ok := q.(string); ok {
				result.SuggestedQuestions = append(result.SuggestedQuestions, s)
			}
		}
	}

	return result
}

// asInt converts a decoded JSON value to int. encoding/json decodes numbers
// into float64 for map[string]any documents.
func asInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	default:
		return 0
	}
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
