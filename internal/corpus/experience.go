package corpus

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseExperienceYears derives a minimum number of years from a free-form
// experience requirement. Accepted forms are a plain number ("7", "2.5"),
// a range ("3-5" means at least 3) and an open range ("10+"). A trailing
// "years"/"yrs" suffix is tolerated. An empty string means no requirement
// and yields 0.
func ParseExperienceYears(s string) (float64, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, nil
	}

	s = strings.TrimSuffix(s, "years")
	s = strings.TrimSuffix(s, "year")
	s = strings.TrimSuffix(s, "yrs")
	s = strings.TrimSpace(s)

	if idx := strings.Index(s, "-"); idx > 0 {
		s = s[:idx]
	}
	s = strings.TrimSuffix(s, "+")
	s = strings.TrimSpace(s)

	years, err := strconv.ParseFloat(s, 64)
	if err != nil || years < 0 {
		return 0, fmt.Errorf("experience %q is not a number or range", s)
	}

	return years, nil
}
