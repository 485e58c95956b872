package entity

import (
	"regexp"
	"strings"

	"vaani/internal/core"
)

// searchPatterns yield the product name being looked up.
var searchPatterns = []*regexp.Regexp{
	// search for [name] / look for [name]
	regexp.MustCompile(`(?:search|look)\s+for\s+(.+?)(?:\s+in\s+(?:stock|स्टॉक)|$)`),
	// do we have [name] in stock
	regexp.MustCompile(`do\s+(?:you|we|i)\s+have\s+(.+?)(?:\s+in\s+(?:stock|स्टॉक)|\s+available|$)`),
	// is [name] in stock / available
	regexp.MustCompile(`is\s+(.+?)(?:\s+in\s+(?:stock|स्टॉक)|\s+available)`),
	// check if [name] is in stock
	regexp.MustCompile(`check\s+(?:if|whether)\s+(.+?)\s+(?:is|are)\s+(?:in\s+(?:stock|स्टॉक)|available)`),
	// find [name]
	regexp.MustCompile(`(?:find|locate)\s+(.+?)$`),
	// [name] सर्च करो
	regexp.MustCompile(`(.+?)\s+(?:सर्च|खोज|ढूंढ)\s+(?:करो|करें)`),
	// क्या [name] उपलब्ध है
	regexp.MustCompile(`क्या\s+(.+?)\s+(?:उपलब्ध|स्टॉक\s+में)\s+(?:है|हैं)`),
	// [name] उपलब्ध है क्या
	regexp.MustCompile(`(.+?)\s+(?:उपलब्ध|स्टॉक\s+में)\s+(?:है|हैं)\s+क्या`),
	// क्या आपके पास [name] है
	regexp.MustCompile(`क्या\s+(?:आपके|हमारे|मेरे)\s+पास\s+(.+?)\s+(?:है|हैं)`),
	// [name] है क्या स्टॉक में
	regexp.MustCompile(`(.+?)\s+(?:है|हैं)\s+क्या\s+स्टॉक\s+में`),
}

var searchStopWords = map[string]bool{
	"search": true, "for": true, "do": true, "you": true, "we": true,
	"have": true, "in": true, "stock": true, "available": true, "is": true,
	"check": true, "if": true, "whether": true, "are": true, "find": true,
	"locate": true, "look": true,
	"सर्च": true, "खोज": true, "ढूंढ": true, "करो": true, "करें": true,
	"उपलब्ध": true, "स्टॉक": true, "में": true, "है": true, "हैं": true,
	"क्या": true, "आपके": true, "हमारे": true, "मेरे": true, "पास": true,
}

// ExtractSearch reads the product name of a lookup query. When no pattern
// matches, stop words are stripped and whatever remains is the best guess.
func ExtractSearch(text string) (core.Search, []string) {
	for _, re := range searchPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			name := strings.TrimSpace(m[1])
			if name != "" {
				return core.Search{Name: name}, nil
			}
		}
	}

	var kept []string
	for _, w := range strings.Fields(text) {
		if !searchStopWords[strings.Trim(w, "?.,!")] {
			kept = append(kept, w)
		}
	}
	name := strings.TrimSpace(strings.Join(kept, " "))
	if name == "" {
		return core.Search{}, []string{"name"}
	}
	return core.Search{Name: name}, nil
}
