package store

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const chartIDPrefix = "chart"

// idSuffixes is the number of distinct ids per millisecond.
const idSuffixes = 1000

// newChartID returns chart-<epoch millis>-<0..999>. A few random suffixes are
// tried first; when taken keeps reporting collisions every suffix of the
// millisecond is scanned and, if all are live, the next millisecond is used.
func newChartID(now time.Time, taken func(string) bool) string {
	format := func(ms int64, n int) string {
		return chartIDPrefix + "-" + strconv.FormatInt(ms, 10) + "-" + strconv.Itoa(n)
	}
	for ms := now.UnixMilli(); ; ms++ {
		for range 8 {
			id := format(ms, rand.IntN(idSuffixes))
			if taken == nil || !taken(id) {
				return id
			}
		}
		for n := range idSuffixes {
			if id := format(ms, n); !taken(id) {
				return id
			}
		}
	}
}

// ChartCreatedAt extracts the creation timestamp (epoch millis) embedded in a
// chart id. Unparsable ids yield 0.
func ChartCreatedAt(id string) int64 {
	parts := strings.Split(strings.TrimSpace(id), "-")
	if len(parts) < 2 {
		return 0
	}
	ms, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0
	}
	return ms
}

// IsChartID reports whether s looks like a chart id.
func IsChartID(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, chartIDPrefix+"-") && len(s) > len(chartIDPrefix)+1
}
