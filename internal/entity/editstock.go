package entity

import (
	"regexp"
	"strconv"
	"strings"

	"vaani/internal/core"
)

// editPatterns yield (name, stock). English forms carry स्टॉक/अपडेट
// alternations because mixed input reaches here with its business vocabulary
// rewritten to Devanagari. Stock values may be negative; the parse is
// permissive and validation belongs to the caller.
var editPatterns = []*regexp.Regexp{
	// update stock of [name] to [n]
	regexp.MustCompile(`(?:update|change|edit|set|अपडेट)\s+(?:stock|स्टॉक)\s+of\s+(\w+)\s+to\s+(-?\d+)`),
	// update [name] stock to [n]
	regexp.MustCompile(`(?:edit|update|अपडेट)\s+(\w+)\s+(?:stock|स्टॉक)\s+(?:to\s+)?(-?\d+)`),
	// [name] का स्टॉक [n] करो / कर दो
	regexp.MustCompile(`(\S+)\s+का\s+स्टॉक\s+(-?\d+)\s+(?:करो|करें|कर\s+दो|कर\s+दें)`),
	// मुझे [name] का स्टॉक [n] करना है
	regexp.MustCompile(`मुझे\s+(\S+)\s+का\s+स्टॉक\s+(-?\d+)\s+करना\s+है`),
	// [name] स्टॉक अपडेट करो [n]
	regexp.MustCompile(`(\S+)\s+स्टॉक\s+अपडेट\s+(?:करो|करें)\s+(-?\d+)`),
	// स्टॉक अपडेट [name] [n]
	regexp.MustCompile(`स्टॉक\s+अपडेट\s+(\S+)\s+(-?\d+)`),
	// [name] stock [n]
	regexp.MustCompile(`(\w+)\s+(?:stock|स्टॉक)\s+(-?\d+)`),
}

var editStopWords = map[string]bool{
	"edit": true, "update": true, "change": true, "set": true, "make": true,
	"stock": true, "to": true, "of": true, "the": true, "inventory": true,
	"स्टॉक": true, "का": true, "अपडेट": true, "करो": true, "करें": true,
	"को": true, "मुझे": true, "करना": true, "है": true, "इन्वेंटरी": true,
	"कर": true, "दो": true, "दें": true, "बदलो": true, "बदलें": true,
}

// ExtractEditStock reads a stock update command.
func ExtractEditStock(text string) (core.EditStock, []string) {
	for _, re := range editPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			stock, _ := strconv.Atoi(m[2])
			return core.EditStock{Name: strings.TrimSpace(m[1]), Stock: &stock}, nil
		}
	}
	return editFallback(text)
}

// editFallback scans tokens: the first non-stop word is the product, the
// first (possibly negative) number is the stock level.
func editFallback(text string) (core.EditStock, []string) {
	var out core.EditStock
	for _, w := range strings.Fields(text) {
		w = strings.Trim(w, ",.")
		if n, err := strconv.Atoi(w); err == nil {
			if out.Stock == nil {
				stock := n
				out.Stock = &stock
			}
			continue
		}
		if out.Name == "" && !editStopWords[w] {
			out.Name = w
		}
	}

	var missing []string
	if out.Name == "" {
		missing = append(missing, "name")
	}
	if out.Stock == nil {
		missing = append(missing, "stock")
	}
	return out, missing
}
