package entity

import (
	"regexp"
	"strconv"

	"vaani/internal/core"
)

var (
	// below 10, less than 15, under 20
	thresholdEn = regexp.MustCompile(`(?:below|less\s+than|under|<=|<)\s*(\d+)`)
	// 5 से कम, 10 से नीचे
	thresholdHi = regexp.MustCompile(`(\d+)\s+से\s+(?:कम|नीचे)`)
)

// ExtractLowStock reads an explicit threshold, falling back to the configured
// default. The result is always complete.
func ExtractLowStock(text string, defaultThreshold int) core.LowStock {
	for _, re := range []*regexp.Regexp{thresholdEn, thresholdHi} {
		if m := re.FindStringSubmatch(text); m != nil {
			n, _ := strconv.Atoi(m[1])
			return core.LowStock{Threshold: n}
		}
	}
	return core.LowStock{Threshold: defaultThreshold}
}
