// Package phone finds Indian phone numbers in free text.
package phone

import "regexp"

// pattern matches a +91 prefix with an optional space or hyphen before ten
// digits, or a bare ten-digit run bounded by word boundaries. The prefixed
// form is tried first at each position. \d, \s and \b are ASCII-only.
var pattern = regexp.MustCompile(`\+91[\s\-]?\d{10}|\b\d{10}\b`)

// Extract returns the distinct phone numbers in text, in order of first
// occurrence scanning left to right. Matches do not overlap. It returns nil
// when text contains no number.
func Extract(text string) []string {
	matches := pattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}
