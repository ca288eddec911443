package pipeline

import "strings"

// safeName folds s to lowercase and replaces every character outside
// [a-z0-9-_.] with '-', yielding a filesystem- and URL-safe object name.
func safeName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z',
			r >= '0' && r <= '9',
			r == '-', r == '_', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}

// fileExt returns the lowercased extension of name without the dot, or
// fallback when name has none.
func fileExt(name, fallback string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return fallback
	}
	return strings.ToLower(name[idx+1:])
}
