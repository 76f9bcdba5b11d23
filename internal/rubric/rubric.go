// Package rubric defines the fixed scoring rubric applied to every ticket evaluation.
package rubric

// Criteria is the ordered set of scoring criteria. Every evaluation scores each
// criterion from 1 to 5; the order here is the display order.
var Criteria = []string{
	"accuracy",
	"empathy_and_tone",
	"clarity",
	"actionability",
	"escalation_awareness",
}

// MinScore and MaxScore bound a single criterion score.
const (
	MinScore = 1
	MaxScore = 5
)

// MinOverall and MaxOverall bound the overall score (sum of the five criteria).
const (
	MinOverall = MinScore * 5
	MaxOverall = MaxScore * 5
)

// Matches reports whether keys contains exactly the rubric criteria,
// order-independent, with no extras and none missing.
func Matches(keys []string) bool {
	if len(keys) != len(Criteria) {
		return false
	}
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		if seen[k] {
			return false
		}
		seen[k] = true
	}
	for _, c := range Criteria {
		if !seen[c] {
			return false
		}
	}
	return true
}

// Missing returns the rubric criteria absent from keys, in rubric order.
func Missing(keys []string) []string {
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		seen[k] = true
	}
	var missing []string
	for _, c := range Criteria {
		if !seen[c] {
			missing = append(missing, c)
		}
	}
	return missing
}

// Extras returns the keys that are not rubric criteria.
func Extras(keys []string) []string {
	known := make(map[string]bool, len(Criteria))
	for _, c := range Criteria {
		known[c] = true
	}
	var extras []string
	for _, k := range keys {
		if !known[k] {
			extras = append(extras, k)
		}
	}
	return extras
}
