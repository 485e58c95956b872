package entity

import (
	"regexp"
	"strconv"
	"time"

	"vaani/internal/core"
)

// bucketPattern pairs a named bucket with its trigger expressions in both
// languages. Order matters: multi-word windows ("last week") must be tested
// before the looser single-word ones ("all", "कल").
type bucketPattern struct {
	bucket core.TimeBucket
	re     *regexp.Regexp
}

var bucketPatterns = []bucketPattern{
	{core.BucketLastWeek, regexp.MustCompile(`(?:last|previous|past)\s+week|(?:पिछले|बीते|गत)\s+(?:सप्ताह|हफ्ते)`)},
	{core.BucketLastMonth, regexp.MustCompile(`(?:last|previous|past)\s+month|(?:पिछले|बीते|गत)\s+(?:महीने|माह)`)},
	{core.BucketLastYear, regexp.MustCompile(`(?:last|previous|past)\s+year|(?:पिछले|बीते|गत)\s+(?:साल|वर्ष)`)},
	{core.BucketThisWeek, regexp.MustCompile(`(?:this|current)\s+week|इस\s+(?:सप्ताह|हफ्ते)|वर्तमान\s+(?:सप्ताह|हफ्ते)`)},
	{core.BucketThisMonth, regexp.MustCompile(`(?:this|current)\s+month|इस\s+(?:महीने|माह)|वर्तमान\s+(?:महीने|माह)`)},
	{core.BucketThisYear, regexp.MustCompile(`(?:this|current)\s+year|इस\s+(?:साल|वर्ष)|वर्तमान\s+(?:साल|वर्ष)`)},
	{core.BucketYesterday, regexp.MustCompile(`yesterday|previous\s+day|कल\s+(?:की|के|का)|बीता\s+दिन|पिछला\s+दिन`)},
	{core.BucketToday, regexp.MustCompile(`today|current\s+day|this\s+day|आज|इस\s+दिन`)},
	{core.BucketRecent, regexp.MustCompile(`recent|\bnew\b|हाल|रीसेंट|नए`)},
	{core.BucketAll, regexp.MustCompile(`\ball(?:\s+time)?\b|everything|entire|सभी\s+समय|सभी|पूरा|संपूर्ण|सारा`)},
}

var (
	lastNDays = regexp.MustCompile(`(?:last|past)\s+(\d+)\s+days?|पिछले\s+(\d+)\s+दिनों?`)

	customRangeEn = regexp.MustCompile(`(?:from|between)\s+([\w\s,/-]+?)\s+(?:to|and|till|until)\s+([\w\s,/-]+)`)
	customRangeHi = regexp.MustCompile(`(\d+(?:\s+\S+)?)\s+से\s+(.+?)\s+तक`)

	limitEn = regexp.MustCompile(`top\s+(\d+)`)
	limitHi = regexp.MustCompile(`(?:टॉप|बेस्ट)\s+(\d+)`)
)

// ExtractTimeWindow reads the reporting window of normalized text. The
// fallback bucket differs per intent and is supplied by the caller, as is the
// default top-N limit (zero disables the limit notion entirely).
func ExtractTimeWindow(text string, now time.Time, fallback core.TimeBucket, defaultLimit int) core.TimeWindow {
	w := core.TimeWindow{Bucket: fallback}

	if defaultLimit > 0 {
		w.Limit = defaultLimit
		for _, re := range []*regexp.Regexp{limitEn, limitHi} {
			if m := re.FindStringSubmatch(text); m != nil {
				w.Limit, _ = strconv.Atoi(m[1])
				break
			}
		}
	}

	if start, end, ok := customRange(text, now); ok {
		w.Bucket = core.BucketCustom
		w.StartDate = start.Format("2006-01-02")
		w.EndDate = end.Format("2006-01-02")
		return w
	}

	if m := lastNDays.FindStringSubmatch(text); m != nil {
		digits := m[1]
		if digits == "" {
			digits = m[2]
		}
		w.Bucket = core.BucketLastNDays
		w.Days, _ = strconv.Atoi(digits)
		return w
	}

	for _, bp := range bucketPatterns {
		if bp.re.MatchString(text) {
			w.Bucket = bp.bucket
			return w
		}
	}
	return w
}

// customRange finds an absolute "from X to Y" / "X से Y तक" range. Both
// endpoints must parse as dates, otherwise the match is discarded so phrases
// like "update stock of rice to 20" never read as a range.
func customRange(text string, now time.Time) (time.Time, time.Time, bool) {
	for _, re := range []*regexp.Regexp{customRangeHi, customRangeEn} {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		start, ok := ParseDate(m[1], now)
		if !ok {
			continue
		}
		end, ok := ParseDate(m[2], now)
		if !ok {
			continue
		}
		return start, end, true
	}
	return time.Time{}, time.Time{}, false
}

// Resolve converts a window into absolute [start, end] instants. Weeks start
// on Monday; "all" reaches ten years back; "recent" is the trailing seven
// days. Custom windows re-read their stored dates.
func Resolve(w core.TimeWindow, now time.Time) (time.Time, time.Time) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := day.Add(24*time.Hour - time.Second)

	switch w.Bucket {
	case core.BucketToday:
		return day, endOfDay
	case core.BucketYesterday:
		y := day.AddDate(0, 0, -1)
		return y, y.Add(24*time.Hour - time.Second)
	case core.BucketThisWeek:
		return day.AddDate(0, 0, -weekday(day)), endOfDay
	case core.BucketLastWeek:
		start := day.AddDate(0, 0, -weekday(day)-7)
		return start, start.AddDate(0, 0, 7).Add(-time.Second)
	case core.BucketThisMonth:
		return day.AddDate(0, 0, 1-day.Day()), endOfDay
	case core.BucketLastMonth:
		firstOfMonth := day.AddDate(0, 0, 1-day.Day())
		return firstOfMonth.AddDate(0, -1, 0), firstOfMonth.Add(-time.Second)
	case core.BucketThisYear:
		return time.Date(day.Year(), 1, 1, 0, 0, 0, 0, day.Location()), endOfDay
	case core.BucketLastYear:
		start := time.Date(day.Year()-1, 1, 1, 0, 0, 0, 0, day.Location())
		return start, start.AddDate(1, 0, 0).Add(-time.Second)
	case core.BucketLastNDays:
		days := w.Days
		if days < 1 {
			days = 1
		}
		return day.AddDate(0, 0, 1-days), endOfDay
	case core.BucketRecent:
		return day.AddDate(0, 0, -6), endOfDay
	case core.BucketCustom:
		start, okS := ParseDate(w.StartDate, now)
		end, okE := ParseDate(w.EndDate, now)
		if okS && okE {
			return start, end.Add(24*time.Hour - time.Second)
		}
		return day, endOfDay
	case core.BucketAll:
		return day.AddDate(-10, 0, 0), endOfDay
	}
	return day, endOfDay
}

// weekday returns days since Monday.
func weekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
