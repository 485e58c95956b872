package entity

import (
	"regexp"
	"strconv"
	"strings"

	"vaani/internal/core"
)

// addPatterns are tried in order; each yields (name, price, stock).
var addPatterns = []*regexp.Regexp{
	// add product [name] at ₹[price] with [stock] units
	regexp.MustCompile(`add\s+(?:new\s+)?product\s+([\w\s]+?)\s+at\s+(?:₹|rs\.?|rupees)\s*(\d+)\s+with\s+(\d+)\s+units`),
	// add new product [name] [price]rs [stock]qty
	regexp.MustCompile(`add\s+(?:new\s+)?product\s+([\w\s]+?)\s+(\d+)\s*(?:rs|rupees|₹)?\s+(\d+)\s*(?:qty|units|pcs)?`),
	// add a new product called [name] for [price] rupees with [stock] pieces
	regexp.MustCompile(`add\s+(?:a\s+)?(?:new\s+)?product\s+called\s+(\w+)\s+for\s+(\d+)\s+rupees\s+with\s+(\d+)\s+pieces`),
	// नया प्रोडक्ट [name] [price] रुपये [stock] पीस जोड़ो
	regexp.MustCompile(`(?:नया|नई)\s+प्रोडक्ट\s+([\p{Devanagari}\s]+?)\s+(\d+)\s*(?:रुपये|₹)?\s+(\d+)\s*(?:पीस|इकाई)?`),
}

// addStockFirst handles "[stock] [name] जोड़ो ₹[price] में", where the stock
// count leads.
var addStockFirst = regexp.MustCompile(`(\d+)\s+(\S+)\s+जोड़ो\s+₹?(\d+)\s+में`)

// Keyword classes for attribute parts. A delimited command carries its
// attributes in any order ("fan, ₹500, 3 qty" / "table, stock 5, price 1000"),
// so each part is classified by the keyword attached to its number.
const (
	priceWords = `(?:₹|rs\.?|rupees?|price|rate|रुपये|रुपए|रूपये|रूपए|मूल्य|कीमत|दाम|रेट)`
	stockWords = `(?:qty|quantity|stock|स्टॉक|मात्रा|पीस|इकाई|नग|pieces?|units?|pcs?|item|आइटम|kg|किलो|grams?|gm|ग्राम)`
)

var (
	priceKeyed  = regexp.MustCompile(priceWords + `\s*(\d+)`)
	priceSuffix = regexp.MustCompile(`(\d+)\s*(?:₹|rs\.?|rupees?|रुपये|रुपए)`)
	stockKeyed  = regexp.MustCompile(stockWords + `\s*(\d+)`)
	stockSuffix = regexp.MustCompile(`(\d+)\s*` + stockWords)

	addNameLead = regexp.MustCompile(`(?:add|create|register|नया|नई|एड)\s+(?:a\s+)?(?:new\s+)?(?:product|प्रोडक्ट|प्रॉडक्ट|आइटम|item|सामान)?\s*(.*)`)
	productLead = regexp.MustCompile(`(?:product|प्रोडक्ट|प्रॉडक्ट)\s+(.+)`)
	addTailVerb = regexp.MustCompile(`\s+(?:जोड़ो|जोड़ें|जोड़\s+दो|जोड़ना\s+है)$`)
	bareNumber  = regexp.MustCompile(`^\d+$`)
)

// addCommandWords and addUnitWords drive the token-scan fallback when no
// pattern matches.
var (
	addCommandWords = map[string]bool{
		"add": true, "new": true, "product": true, "create": true, "register": true,
		"नया": true, "नई": true, "एक": true, "प्रोडक्ट": true, "आइटम": true,
		"जोड़ो": true, "जोड़ें": true, "जोड़ना": true, "मुझे": true, "है": true,
	}
	addUnitWords = map[string]bool{
		"rs": true, "rupees": true, "₹": true, "qty": true, "units": true,
		"pcs": true, "for": true, "with": true, "at": true,
		"रुपये": true, "पीस": true, "इकाई": true, "के": true, "साथ": true,
		"में": true, "मात्रा": true,
	}
)

// ExtractAddProduct reads a product creation command. Price and Stock stay
// nil when absent; the returned missing list names every required field that
// could not be recovered. The normalizer has already rewritten pipes to
// commas, so one delimiter path serves both.
func ExtractAddProduct(text string) (core.AddProduct, []string) {
	if strings.Contains(text, ",") {
		return addDelimited(text)
	}

	if m := addStockFirst.FindStringSubmatch(text); m != nil {
		stock, _ := strconv.Atoi(m[1])
		price, _ := strconv.Atoi(m[3])
		return core.AddProduct{Name: m[2], Price: &price, Stock: &stock}, nil
	}

	for _, re := range addPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		price, _ := strconv.Atoi(m[2])
		stock, _ := strconv.Atoi(m[3])
		return core.AddProduct{
			Name:  strings.TrimSpace(m[1]),
			Price: &price,
			Stock: &stock,
		}, nil
	}

	return addFallback(text)
}

// addDelimited splits "NAME, ATTR, ATTR" on commas: the first part carries
// the name (command verbs stripped), every later part is classified as price
// or stock by its keyword, and bare numbers fill price then stock.
func addDelimited(text string) (core.AddProduct, []string) {
	parts := strings.Split(text, ",")

	name := strings.TrimSpace(parts[0])
	if m := addNameLead.FindStringSubmatch(name); m != nil && strings.TrimSpace(m[1]) != "" {
		name = strings.TrimSpace(m[1])
	} else if m := productLead.FindStringSubmatch(name); m != nil {
		name = strings.TrimSpace(m[1])
	}
	name = addTailVerb.ReplaceAllString(name, "")

	out := core.AddProduct{Name: name}
	for _, part := range parts[1:] {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if out.Price == nil {
			if m := firstMatch(part, priceKeyed, priceSuffix); m != "" {
				out.Price = atoiPtr(m)
				continue
			}
		}
		if out.Stock == nil {
			if m := firstMatch(part, stockSuffix, stockKeyed); m != "" {
				out.Stock = atoiPtr(m)
				continue
			}
		}
		if bareNumber.MatchString(part) {
			if out.Price == nil {
				out.Price = atoiPtr(part)
			} else if out.Stock == nil {
				out.Stock = atoiPtr(part)
			}
		}
	}
	return out, addMissing(out)
}

// addFallback scans tokens: "called" pins the name, otherwise the first word
// after the command verbs is taken. Keyword-attached numbers ("₹500", "3qty")
// classify directly; the first two leftover bare numbers are price then stock.
func addFallback(text string) (core.AddProduct, []string) {
	words := strings.Fields(text)

	var name string
	for i, w := range words {
		if w == "called" && i+1 < len(words) {
			name = words[i+1]
			break
		}
	}

	out := core.AddProduct{}
	if m := firstMatch(text, priceKeyed, priceSuffix); m != "" {
		out.Price = atoiPtr(m)
	}
	if m := firstMatch(text, stockSuffix, stockKeyed); m != "" {
		out.Stock = atoiPtr(m)
	}

	start := 0
	for i, w := range words {
		if addCommandWords[w] {
			start = i + 1
		}
	}

	var numbers []int
	for i := start; i < len(words); i++ {
		w := strings.Trim(words[i], ",")
		if n, err := strconv.Atoi(w); err == nil {
			numbers = append(numbers, n)
			continue
		}
		if name == "" && !addUnitWords[w] && !addCommandWords[w] {
			name = w
		}
	}

	// Numbers the keyword pass consumed must not fill the other field too.
	if out.Price != nil {
		numbers = removeFirst(numbers, *out.Price)
	}
	if out.Stock != nil {
		numbers = removeFirst(numbers, *out.Stock)
	}
	if out.Price == nil && len(numbers) > 0 {
		out.Price = &numbers[0]
		numbers = numbers[1:]
	}
	if out.Stock == nil && len(numbers) > 0 {
		out.Stock = &numbers[0]
	}

	out.Name = name
	return out, addMissing(out)
}

func removeFirst(nums []int, n int) []int {
	for i, v := range nums {
		if v == n {
			return append(nums[:i:i], nums[i+1:]...)
		}
	}
	return nums
}

func firstMatch(s string, res ...*regexp.Regexp) string {
	for _, re := range res {
		if m := re.FindStringSubmatch(s); m != nil {
			return m[1]
		}
	}
	return ""
}

func atoiPtr(s string) *int {
	n, _ := strconv.Atoi(s)
	return &n
}

func addMissing(p core.AddProduct) []string {
	var missing []string
	if p.Name == "" {
		missing = append(missing, "name")
	}
	if p.Price == nil {
		missing = append(missing, "price")
	}
	if p.Stock == nil {
		missing = append(missing, "stock")
	}
	return missing
}
