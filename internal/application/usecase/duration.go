package usecase

import (
	"regexp"
	"strconv"
)

// isoDurationRegex cobre o subconjunto de durações ISO-8601 que o ARM usa em
// políticas PIM (dias, horas, minutos), ex.: "PT8H", "PT30M", "P1D".
var isoDurationRegex = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?)?$`)

// durationHours converts an ISO-8601 duration string into hours for
// display and reporting. Unparseable input yields 0.
func durationHours(iso string) float64 {
	matches := isoDurationRegex.FindStringSubmatch(iso)
	if matches == nil {
		return 0
	}

	var hours float64
	if matches[1] != "" {
		days, _ := strconv.Atoi(matches[1])
		hours += float64(days) * 24
	}
	if matches[2] != "" {
		h, _ := strconv.Atoi(matches[2])
		hours += float64(h)
	}
	if matches[3] != "" {
		minutes, _ := strconv.Atoi(matches[3])
		hours += float64(minutes) / 60
	}
	return hours
}
