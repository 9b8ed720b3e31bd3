package filename

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// yearPattern matches a 4-digit year parenthetical such as "(1999)".
var yearPattern = regexp.MustCompile(`\(\d{4}\)`)

// articleConventions are the "Title, The" sorting suffixes, in priority order.
// "An" must be tried before "A".
var articleConventions = []struct {
	article string
	pattern *regexp.Regexp
}{
	{"The", regexp.MustCompile(`, The(?:[ .(]|$)`)},
	{"An", regexp.MustCompile(`, An(?:[ .(]|$)`)},
	{"A", regexp.MustCompile(`, A(?:[ .(]|$)`)},
}

// NormalizeTitle rewrites sort-friendly names like "Matrix, The (1999)"
// into natural order ("The Matrix (1999)") so the organizer's parser can
// match them. Text after the year is dropped, except an SxxEyy marker which
// is kept so series parsing still sees the episode. Stems without a
// convention are cut after their year, with the same SxxEyy exception.
func NormalizeTitle(stem string) string {
	stem = norm.NFC.String(strings.TrimSpace(stem))

	for _, c := range articleConventions {
		loc := c.pattern.FindStringIndex(stem)
		if loc == nil {
			continue
		}

		title := TitlePart(stem[:loc[0]])
		if title == "" {
			continue
		}

		var b strings.Builder
		b.WriteString(c.article)
		b.WriteString(" ")
		b.WriteString(title)
		if year := yearPattern.FindString(stem); year != "" {
			b.WriteString(" ")
			b.WriteString(year)
		}
		if se := seasonEpisodePattern.FindString(stem); se != "" {
			b.WriteString(" ")
			b.WriteString(strings.ToUpper(se))
		}
		return b.String()
	}

	loc := yearPattern.FindStringIndex(stem)
	if loc == nil {
		return stem
	}
	out := stem[:loc[1]]
	if se := seasonEpisodePattern.FindStringIndex(stem); se != nil && se[0] >= loc[1] {
		out += " " + strings.ToUpper(stem[se[0]:se[1]])
	}
	return out
}

// TitlePart returns the portion of a name before its year or SxxEyy marker,
// whichever comes first.
func TitlePart(name string) string {
	end := len(name)
	if loc := yearPattern.FindStringIndex(name); loc != nil && loc[0] < end {
		end = loc[0]
	}
	if loc := seasonEpisodePattern.FindStringIndex(name); loc != nil && loc[0] < end {
		end = loc[0]
	}
	return strings.TrimSpace(name[:end])
}
