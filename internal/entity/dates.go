// Package entity extracts per-intent entities from normalized text: product
// attributes, stock levels, thresholds, search terms, and time windows.
// Extraction is permissive; the envelope builder decides what counts as a
// complete command.
package entity

import (
	"regexp"
	"strings"
	"time"
)

// hindiMonths maps Devanagari month names, long and short, to their English
// forms so one date grammar serves both scripts.
var hindiMonths = map[string]string{
	"जनवरी":   "January",
	"फरवरी":   "February",
	"मार्च":   "March",
	"अप्रैल":  "April",
	"मई":      "May",
	"जून":     "June",
	"जुलाई":   "July",
	"अगस्त":   "August",
	"सितंबर":  "September",
	"अक्टूबर": "October",
	"नवंबर":   "November",
	"दिसंबर":  "December",

	// Short forms
	"जन":   "Jan",
	"फर":   "Feb",
	"मार":  "Mar",
	"अप्र": "Apr",
	"जुल":  "Jul",
	"अग":   "Aug",
	"सित":  "Sep",
	"अक्ट": "Oct",
	"नव":   "Nov",
	"दिस":  "Dec",
}

// hindiMonthAlt is the regex alternation of every Devanagari month name,
// longest first so "जनवरी" wins over "जन".
const hindiMonthAlt = `अक्टूबर|सितंबर|जनवरी|फरवरी|अप्रैल|जुलाई|दिसंबर|मार्च|अगस्त|नवंबर|जून|मई|अक्ट|अप्र|मार|जन|फर|जुल|अग|सित|नव|दिस`

var (
	englishOrdinal = regexp.MustCompile(`(\d+)\s*(?:st|nd|rd|th)\b`)
	hindiOrdinal   = regexp.MustCompile(`(\d+)\s*(?:वां|वा|वीं|वी|थ)`)
	hindiMonthRe   = regexp.MustCompile(hindiMonthAlt)
)

// dateLayouts are tried in order. Layouts without a year get the current one.
var dateLayouts = []string{
	"2006-01-02",
	"2 January 2006",
	"2 January",
	"2 Jan 2006",
	"2 Jan",
	"January 2 2006",
	"January 2",
	"Jan 2 2006",
	"Jan 2",
	"2/1/2006",
	"2-1-2006",
	"2/1",
	"2-1",
}

// ParseDate reads one absolute date like "1 june", "2nd jan", "1 जून",
// "15वां अगस्त" or "01/06/2026". Layouts without a year default to now's
// year. The second return is false when nothing parses.
func ParseDate(s string, now time.Time) (time.Time, bool) {
	s = strings.TrimSpace(s)
	s = englishOrdinal.ReplaceAllString(s, "$1")
	s = hindiOrdinal.ReplaceAllString(s, "$1")
	s = hindiMonthRe.ReplaceAllStringFunc(s, func(m string) string {
		return hindiMonths[m]
	})
	s = strings.TrimSpace(s)

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, titleMonth(s, layout))
		if err != nil {
			continue
		}
		if !strings.Contains(layout, "2006") {
			t = time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, now.Location())
		} else {
			t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, now.Location())
		}
		return t, true
	}
	return time.Time{}, false
}

// titleMonth restores the capitalization time.Parse expects ("june" →
// "June") for month-name layouts; numeric layouts pass through.
func titleMonth(s, layout string) string {
	if !strings.ContainsAny(layout, "J") {
		return s
	}
	fields := strings.Fields(s)
	for i, f := range fields {
		if f != "" && f[0] >= 'a' && f[0] <= 'z' {
			fields[i] = strings.ToUpper(f[:1]) + f[1:]
		}
	}
	return strings.Join(fields, " ")
}
