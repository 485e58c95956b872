// Package negation guards the pipeline against refusal statements. A message
// like "I don't want soap" matches product vocabulary, so intent
// classification must never see it: any recognized negation marker
// short-circuits the parse with an unknown, negated result.
package negation

import (
	"regexp"
	"strings"
)

var englishMarkers = []*regexp.Regexp{
	regexp.MustCompile(`don'?t\s+(?:need|want|require|show)`),
	regexp.MustCompile(`do\s+not\s+(?:need|want|require|show)`),
	regexp.MustCompile(`not\s+(?:interested|needed|required)`),
	regexp.MustCompile(`no\s+need`),
	regexp.MustCompile(`no\s+interest\s+(?:for|in)`),
	regexp.MustCompile(`remove\s+(?:from|the)\s+(?:list|cart)`),
	regexp.MustCompile(`cancel\s+(?:the|my)\s+(?:order|request)`),
	regexp.MustCompile(`stop\s+showing`),
	regexp.MustCompile(`won'?t\s+(?:need|want|require)`),
	regexp.MustCompile(`won'?t\s+be\s+(?:needing|wanting|requiring)`),
	regexp.MustCompile(`never\s+(?:mind|show|bring)`),
}

var hindiMarkers = []*regexp.Regexp{
	regexp.MustCompile(`नहीं\s+चाहिए`),
	regexp.MustCompile(`मत\s+(?:दिखाओ|लाओ)`),
	regexp.MustCompile(`ज़?रूरत\s+नहीं`),
	regexp.MustCompile(`आवश्यकता\s+नहीं`),
	regexp.MustCompile(`हटा\s+(?:दो|दें)`),
	regexp.MustCompile(`रद्द\s+(?:करो|करें)`),
	regexp.MustCompile(`बंद\s+(?:करो|करें)`),
}

var mixedMarkers = []*regexp.Regexp{
	regexp.MustCompile(`नहीं\s+(?:need|want)`),
	regexp.MustCompile(`don'?t\s+चाहिए`),
	regexp.MustCompile(`no\s+ज़?रूरत`),
	regexp.MustCompile(`cancel\s+(?:करो|करें)`),
	regexp.MustCompile(`remove\s+(?:करो|करें)`),
}

// addProduct exempts product-creation phrasing from the bare-नहीं rule so
// "नया प्रोडक्ट ..." never reads as a refusal.
var addProduct = regexp.MustCompile(`(?:add|नया|नई|जोड़ें|जोड़े|एड)\s+(?:new\s+)?(?:product|प्रोडक्ट|प्रॉडक्ट|आइटम|item|सामान)`)

// Detect reports whether normalized text is a refusal. The input is expected
// to be lowercase already (the normalizer's output).
func Detect(normalized string) bool {
	if normalized == "" {
		return false
	}
	if addProduct.MatchString(normalized) {
		return false
	}
	for _, set := range [][]*regexp.Regexp{englishMarkers, hindiMarkers, mixedMarkers} {
		for _, re := range set {
			if re.MatchString(normalized) {
				return true
			}
		}
	}
	// A bare नहीं anywhere is a refusal once add-product phrasing is ruled
	// out: Hindi word order scatters the verb too widely for marker pairs.
	return strings.Contains(normalized, "नहीं")
}
