package evaluation

import "strings"

// ExtractJSON returns the candidate JSON span from a free-text model response:
// the leftmost '{' through the rightmost '}', taken as one greedy span. The
// model is instructed to return pure JSON but is not guaranteed to, so this is
// a heuristic over surrounding prose. Returns false when no span exists.
func ExtractJSON(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return raw[start : end+1], true
}

// ExtractBalancedJSON returns the first balanced-brace span starting at the
// leftmost '{', using a bracket-depth scan that is aware of JSON strings.
// Unlike the greedy span it cannot capture unrelated trailing text when the
// response contains multiple brace-delimited fragments.
func ExtractBalancedJSON(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	if start == -1 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return raw[start : i+1], true
			}
		}
	}

	// Opening brace never closed.
	return "", false
}
