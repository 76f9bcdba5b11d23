// Package evaluation turns a ticket transcript into validated QA scores via
// one synchronous text-generation call.
package evaluation

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/qa-coach/internal/llm"
	"github.com/jonathan/qa-coach/internal/rubric"
	"github.com/jonathan/qa-coach/internal/schemas"
)

// Options controls optional evaluator behavior. The zero value matches the
// original tool exactly.
type Options struct {
	// BalancedExtraction selects the bracket-depth scan instead of the greedy
	// first-'{'-to-last-'}' span. Off by default: the greedy span is the
	// original behavior, and the two differ when the response holds multiple
	// brace-delimited fragments.
	BalancedExtraction bool
	// Strict additionally validates the extracted payload against the JSON
	// Schema (integer types, 1-5 bounds). Off by default: nested value types
	// are an unchecked gap in the original.
	Strict bool
}

// Evaluator performs transcript evaluations. It holds the client explicitly;
// there is no package-level model state. Stateless aside from the constant
// rubric and prompt text, so a single Evaluator can serve concurrent requests.
type Evaluator struct {
	client llm.Client
	opts   Options
}

// NewEvaluator constructs an Evaluator around an LLM client.
func NewEvaluator(client llm.Client, opts Options) *Evaluator {
	return &Evaluator{client: client, opts: opts}
}

// Evaluate scores one transcript. It blocks until the model responds or
// errors; there are no retries and no timeout beyond the transport default.
func (e *Evaluator) Evaluate(ctx context.Context, transcript string) (*Result, error) {
	prompt := BuildPrompt(transcript)

	raw, err := e.client.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("evaluation call failed: %w", err)
	}

	span, found := e.extract(raw)
	if !found {
		return nil, &NoJSONError{Raw: raw}
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(span), &doc); err != nil {
		return nil, &MalformedJSONError{
			Message: "failed to parse extracted span",
			Cause:   err,
		}
	}

	if err := validateShape(doc); err != nil {
		return nil, err
	}

	if e.opts.Strict {
		if err := schemas.ValidateResult([]byte(span)); err != nil {
			return nil, err
		}
	}

	return resultFromDoc(doc, span), nil
}

func (e *Evaluator) extract(raw string) (string, bool) {
	if e.opts.BalancedExtraction {
		return ExtractBalancedJSON(raw)
	}
	return ExtractJSON(raw)
}

// validateShape checks the two required top-level keys and exact rubric
// membership of the criteria key set. Nothing else is validated by default.
func validateShape(doc map[string]any) error {
	var missing []string
	if _, ok := doc["criteria_scores"]; !ok {
		missing = append(missing, "criteria_scores")
	}
	if _, ok := doc["overall_score"]; !ok {
		missing = append(missing, "overall_score")
	}
	if len(missing) > 0 {
		return &MissingKeysError{Missing: missing}
	}

	scores, ok := doc["criteria_scores"].(map[string]any)
	if !ok {
		return &MalformedJSONError{Message: "criteria_scores is not an object"}
	}

	keys := make([]string, 0, len(scores))
	for k := range scores {
		keys = append(keys, k)
	}
	if !rubric.Matches(keys) {
		return &CriteriaMismatchError{
			Missing: rubric.Missing(keys),
			Extras:  rubric.Extras(keys),
		}
	}

	return nil
}
