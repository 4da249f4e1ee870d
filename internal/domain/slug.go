package domain

import (
	"strings"
	"unicode"
)

// TagSlug derives the stable tag id from a vocabulary name:
//   - lowercases letters
//   - keeps letters and digits
//   - collapses every other run of characters into a single hyphen
//
// "Media & Entertainment" becomes "media-entertainment".
func TagSlug(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	pendingHyphen := false
	for _, r := range strings.TrimSpace(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}

// NormalizeTagIDs trims ids, drops empty ones and removes duplicates
// while keeping the first-seen order.
func NormalizeTagIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
