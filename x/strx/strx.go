package strx

// Coalesce returns s if non-empty, otherwise d.
func Coalesce(s, d string) string {
	if s == "" {
		return d
	}
	return s
}

// StartsWith reports whether s begins with prefix. An empty prefix never
// matches; command matching over serial should not fire on every line.
func StartsWith(s, prefix string) bool {
	if prefix == "" || len(prefix) > len(s) {
		return false
	}
	return s[:len(prefix)] == prefix
}
