package filename

import (
	"regexp"
	"strconv"
)

var seasonEpisodePattern = regexp.MustCompile(`(?i)\bS(\d{1,3})E(\d{1,4})\b`)

// SeasonEpisode extracts season and episode numbers from an SxxEyy marker
// in the base name of path. The episode is the trailing digit run; the
// season is whatever digits precede it.
func SeasonEpisode(path string) (season, episode int, ok bool) {
	m := seasonEpisodePattern.FindStringSubmatch(Base(path))
	if m == nil {
		return 0, 0, false
	}
	season, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, false
	}
	episode, err = strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, false
	}
	return season, episode, true
}
