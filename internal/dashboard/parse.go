package dashboard

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"mediexplain/internal/models"
)

var numericPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseValue reads the leading decimal number of a lab value, so "12.5 mg/dL"
// gives 12.5. Values without a leading number, and values that overflow to
// infinity, do not parse.
func ParseValue(m models.Measurement) (float64, bool) {
	s := strings.TrimSpace(string(m))
	match := numericPrefix.FindString(s)
	if match == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// DateLabel formats a history date as "Jan 2" in local time, or returns the
// raw string when it does not parse.
func DateLabel(raw string) string {
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return raw
	}
	return t.Local().Format("Jan 2")
}
