package resolver

// isDirectoryOnly reports whether a specifier ends in a path separator,
// optionally followed by "." or "..", e.g. "pkg/", "pkg/." or "pkg/..".
// Such a request must never match a file of the same name.
func isDirectoryOnly(specifier string, backslash bool) bool {
	i := len(specifier) - 1
	if i >= 0 && specifier[i] == '.' {
		i--
		if i >= 0 && specifier[i] == '.' {
			i--
		}
	}
	if i < 0 {
		return false
	}

	switch specifier[i] {
	case '/':
		return true
	case '\\':
		return backslash
	default:
		return false
	}
}
