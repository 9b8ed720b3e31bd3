package filename

import (
	"path"
	"strings"
)

// Base returns the last element of p. Both / and \ are treated as
// separators since organizer responses may use either.
func Base(p string) string {
	if i := strings.LastIndexAny(p, `/\`); i >= 0 {
		return p[i+1:]
	}
	return p
}

// Stem returns the base name of p without its extension.
func Stem(p string) string {
	b := Base(p)
	return strings.TrimSuffix(b, path.Ext(b))
}

// Container returns the extension of p without the leading dot ("mkv").
func Container(p string) string {
	return strings.TrimPrefix(path.Ext(Base(p)), ".")
}
