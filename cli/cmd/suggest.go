package cmd

import "github.com/sahilm/fuzzy"

const maxSuggestions = 3

// suggest returns up to limit names that fuzzy-match pattern, best first.
func suggest(pattern string, names []string, limit int) []string {
	matches := fuzzy.Find(pattern, names)

	out := make([]string, 0, min(limit, len(matches)))
	for _, m := range matches {
		if len(out) == limit {
			break
		}

		out = append(out, m.Str)
	}

	return out
}
