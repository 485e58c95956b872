package intent

import (
	"regexp"

	"vaani/internal/core"
)

// PriorityOrder fixes the evaluation order of the rule cascade. More specific
// intents come first so "low stock दिखाओ" never lands in get_inventory and
// "update stock of rice to 20" never lands in search_product.
var PriorityOrder = []core.Intent{
	core.IntentGetLowStock,
	core.IntentAddProduct,
	core.IntentEditStock,
	core.IntentGetReport,
	core.IntentGetOrders,
	core.IntentSearchProduct,
	core.IntentGetInventory,
	core.IntentGetTopProducts,
	core.IntentGetCustomerData,
}

// englishPatterns match normalized English text. Mixed-language input has its
// business vocabulary rewritten to Devanagari by the normalizer, so a few
// patterns carry स्टॉक/अपडेट alternations alongside their English forms.
var englishPatterns = map[core.Intent][]*regexp.Regexp{
	core.IntentGetInventory: compile(
		`show\s+(?:my\s+)?(?:products|inventory)`,
		`view\s+(?:my\s+)?(?:products|inventory)`,
		`list\s+(?:my\s+)?(?:products|inventory)`,
		`what\s+(?:products|items)\s+do\s+i\s+have`,
		`inventory\s+status`,
		`(?:show\s+|check\s+|display\s+)?current\s*[-.]?\s*(?:stock|स्टॉक)`,
	),
	core.IntentGetLowStock: compile(
		`(?:show|view|list|get)\s+(?:me\s+)?(?:the\s+)?(?:low|out\s+of)\s+(?:stock|स्टॉक)\s+(?:items|products)`,
		`(?:which|what)\s+(?:products|items)\s+(?:are\s+)?(?:running|getting)\s+low`,
		`(?:products|items)\s+(?:running|getting)\s+low`,
		`low\s+(?:stock|स्टॉक)\s+(?:items|products|alert)`,
		`(?:items|products)\s+(?:with\s+)?low\s+(?:stock|स्टॉक)`,
		`(?:show|view|list|get)\s+(?:me\s+)?(?:the\s+)?(?:items|products)\s+(?:with\s+)?(?:(?:stock|स्टॉक)\s+)?(?:below|less\s+than|under)\s+\d+`,
	),
	core.IntentGetReport: compile(
		`(?:send|get|show|view)\s+(?:me\s+)?(?:the\s+)?(?:yesterday|today|this\s+week|this\s+month)(?:'?s)?\s+(?:sales\s+)?report`,
		`(?:sales\s+)?report\s+for\s+(?:yesterday|today|this\s+week|this\s+month)`,
		`(?:yesterday|today|this\s+week|this\s+month)(?:'?s)?\s+(?:sales\s+)?report`,
		`(?:show|get|view)\s+(?:me\s+)?(?:the\s+)?report\s+from\s+.+?\s+to\s+.+`,
		`(?:show|get|view)\s+(?:me\s+)?(?:the\s+)?report\s+between\s+.+?\s+and\s+.+`,
		`(?:send|get|show|view)\s+(?:me\s+)?(?:the\s+)?(?:sales\s+)?report`,
	),
	core.IntentGetTopProducts: compile(
		`(?:show|get|view|display)\s+(?:me\s+)?(?:the\s+)?top\s+(?:\d+\s+)?(?:selling\s+)?products`,
		`top\s+(?:\d+\s+)?(?:selling\s+)?products\s+(?:this|for|from)\s+`,
		`top\s+(?:selling\s+)?products`,
		`best\s+(?:selling\s+)?products`,
	),
	core.IntentGetCustomerData: compile(
		`(?:show|get)\s+(?:me\s+)?(?:the\s+)?customer\s+(?:data|details|insights|information)`,
		`(?:show|list|display)\s+(?:my\s+)?(?:top\s+)?(?:\d+\s+)?customers`,
		`who\s+(?:are|were)\s+(?:my\s+)?(?:top\s+)?(?:\d+\s+)?customers`,
	),
	core.IntentAddProduct: compile(
		`add\s+(?:new\s+)?product\s+.+`,
		`create\s+(?:new\s+)?product\s+.+`,
		`register\s+(?:new\s+)?product\s+.+`,
		`i\s+want\s+to\s+add\s+(?:a\s+)?(?:new\s+)?product`,
		`add\s+(?:a\s+)?(?:new\s+)?(?:product|item)\s+called`,
		// Bare "add new product" still resolves; extraction then reports the
		// absent fields so the caller can ask for them.
		`(?:add|create|register)\s+(?:a\s+)?(?:new\s+)?(?:product|item)`,
	),
	core.IntentEditStock: compile(
		`edit\s+(?:stock|स्टॉक)\s+(?:of\s+)?.+?\s+to\s+-?\d+`,
		`(?:update|अपडेट)\s+(?:the\s+)?(?:(?:stock|स्टॉक)\s+(?:of\s+)?)?.+?\s+(?:(?:stock|स्टॉक)\s+)?to\s+-?\d+`,
		`change\s+(?:stock|स्टॉक)\s+(?:of\s+)?.+?\s+to\s+-?\d+`,
		`set\s+(?:stock|स्टॉक)\s+(?:of\s+)?.+?\s+to\s+-?\d+`,
		`(?:change|update|अपडेट)\s+(?:the\s+)?quantity`,
		`(?:stock|स्टॉक)\s+(?:update|अपडेट|change)`,
	),
	core.IntentGetOrders: compile(
		`(?:show|list|view|get)\s+(?:my\s+)?(?:orders|recent\s+orders)`,
		`get\s+(?:today'?s?)\s+orders`,
		`order\s+history`,
		`customer\s+orders`,
		`recent\s+orders`,
	),
	core.IntentSearchProduct: compile(
		`(?:search|look)\s+for\s+.+`,
		`do\s+(?:you|we|i)\s+have\s+.+`,
		`is\s+.+?\s+(?:in\s+(?:stock|स्टॉक)|available)`,
		`check\s+(?:if|whether)\s+.+?\s+(?:is|are)\s+(?:in\s+(?:stock|स्टॉक)|available)`,
		`(?:find|locate)\s+.+`,
	),
}

// hindiPatterns match normalized Devanagari text. The normalizer already
// rewrote Roman-script Hindi ("chawal ka stock...") into this form.
var hindiPatterns = map[core.Intent][]*regexp.Regexp{
	core.IntentGetInventory: compile(
		// Latin alternates cover mixed input whose nouns the normalizer
		// preserves ("मुझे inventory दिखाओ"). Anchored so a leading टॉप/बेस्ट
		// qualifier falls through to get_top_products.
		`^(?:मुझे\s+|मेरा\s+|मेरी\s+)?(?:मेरे\s+|सभी\s+|सारे\s+|अपने\s+)?(?:प्रोडक्ट|आइटम|सामान|इन्वेंटरी|inventory|products?|items?)\s+(?:दिखाओ|दिखाएं|देखना\s+है)`,
		`(?:कौन|क्या)\s+(?:प्रोडक्ट|आइटम|सामान)\s+(?:हैं|है|उपलब्ध\s+हैं)`,
		`प्रोडक्ट\s+लिस्ट`,
		`मेरा\s+स्टॉक\s+दिखाओ`,
	),
	core.IntentGetLowStock: compile(
		`(?:कम|सीमित)\s+(?:स्टॉक|इन्वेंटरी|मात्रा)`,
		`स्टॉक\s+कम\s+है`,
		`(?:कौन|क्या)\s+(?:प्रोडक्ट|आइटम)\s+(?:रीस्टॉक|रीऑर्डर)\s+करने\s+(?:हैं|है|की\s+जरूरत\s+है)`,
		`\d+\s+से\s+(?:कम|नीचे)\s+स्टॉक`,
	),
	core.IntentGetReport: compile(
		`(?:बिक्री|सेल्स)\s+रिपोर्ट\s+(?:दिखाओ|दिखाएं|देखना\s+है|भेजो|भेजें)`,
		`(?:आज|कल|इस\s+हफ्ते|इस\s+महीने)\s+की\s+(?:बिक्री|सेल्स)?\s*रिपोर्ट`,
		`(?:आज|कल|इस\s+हफ्ते|इस\s+महीने)\s+(?:कितना|कितनी)\s+(?:बिक्री|सेल्स)\s+(?:हुई|हुआ)`,
		`(?:पिछले|पिछला|पिछली)\s+(?:हफ्ते|सप्ताह|महीने|साल|\d+\s+दिनों?)\s+की\s+रिपोर्ट`,
		`.+?\s+से\s+.+?\s+तक\s+की\s+(?:बिक्री\s+|सेल्स\s+)?रिपोर्ट\s+(?:दिखाओ|भेजो|दो)`,
		`रिपोर्ट\s+(?:दिखाओ|भेजो|दो)(?:\s+.+?\s+से\s+.+?\s+तक)?`,
		`रिपोर्ट`,
	),
	core.IntentGetTopProducts: compile(
		`(?:टॉप|बेस्ट)\s+(?:\d+\s+)?(?:प्रोडक्ट|प्रोडक्ट्स|आइटम|सामान)`,
		`सबसे\s+ज्यादा\s+बिकने\s+वाले\s+(?:प्रोडक्ट|प्रोडक्ट्स|आइटम|सामान)`,
		`सबसे\s+लोकप्रिय\s+(?:प्रोडक्ट|प्रोडक्ट्स|आइटम|सामान)`,
		`सभी\s+समय\s+के\s+(?:टॉप|बेस्ट)\s+(?:\d+\s+)?(?:प्रोडक्ट|प्रोडक्ट्स|आइटम|सामान)`,
	),
	core.IntentGetCustomerData: compile(
		`कस्टमर\s+का\s+डाटा\s+दिखाओ`,
		`ग्राहकों\s+की\s+जानकारी\s+दो`,
		`(?:टॉप|बेस्ट)\s+(?:\d+\s+)?(?:कस्टमर|ग्राहक)\s+दिखाओ`,
		`कौन\s+से\s+(?:कस्टमर|ग्राहक)\s+(?:टॉप|बेस्ट)\s+हैं`,
	),
	core.IntentAddProduct: compile(
		`(?:नया|नई|एक)\s+(?:प्रोडक्ट|आइटम|सामान)\s+(?:जोड़ो|जोड़ें|जोड़ना\s+है)`,
		`(?:इन्वेंटरी|स्टॉक)\s+में\s+(?:नया|एक)\s+(?:प्रोडक्ट|आइटम|सामान)\s+(?:जोड़ो|जोड़ें|जोड़ना\s+है)`,
		`(?:नया|नई)\s+प्रोडक्ट\s+.+`,
		`प्रोडक्ट\s+(?:.+?\s+)?जोड़ो`,
		`\d+\s+\S+\s+जोड़ो\s+₹?\d+\s+में`,
	),
	core.IntentEditStock: compile(
		`(?:स्टॉक|इन्वेंटरी)\s+(?:अपडेट|बदलो|बदलें)(?:\s+(?:करो|करें))?`,
		`.+?\s+का\s+(?:स्टॉक|इन्वेंटरी)\s+-?\d+\s+(?:करो|करें|कर\s+दो|कर\s+दें)`,
		`.+?\s+(?:स्टॉक|इन्वेंटरी)\s+(?:अपडेट|बदलो|बदलें)(?:\s+(?:करो|करें))?\s+-?\d+`,
		`स्टॉक\s+अपडेट\s+\S+\s+-?\d+`,
		`मुझे\s+\S+\s+का\s+स्टॉक\s+-?\d+\s+करना\s+है`,
	),
	core.IntentGetOrders: compile(
		`(?:ऑर्डर|आर्डर)\s+(?:दिखाओ|दिखाएं|देखना\s+है)`,
		`(?:हाल|रीसेंट)\s+(?:के|ही)\s+(?:ऑर्डर|आर्डर)`,
		`(?:कौन|क्या)\s+(?:ऑर्डर|आर्डर)\s+(?:हैं|है|आए\s+हैं)`,
		`(?:मेरे|नए)\s+ऑर्डर\s+दिखाओ`,
		`ऑर्डर\s+लिस्ट`,
		`(?:आज|कल|इस\s+हफ्ते|इस\s+महीने)\s+के\s+(?:ऑर्डर|आर्डर)`,
	),
	core.IntentSearchProduct: compile(
		`.+?\s+(?:सर्च|खोज|ढूंढ)\s+(?:करो|करें)`,
		`क्या\s+.+?\s+(?:उपलब्ध|स्टॉक\s+में)\s+(?:है|हैं)`,
		`.+?\s+(?:उपलब्ध|स्टॉक\s+में)\s+(?:है|हैं)\s+क्या`,
		`क्या\s+(?:आपके|हमारे|मेरे)\s+पास\s+.+?\s+(?:है|हैं)`,
		`.+?\s+(?:है|हैं)\s+क्या\s+स्टॉक\s+में`,
	),
}

func compile(exprs ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(exprs))
	for i, expr := range exprs {
		res[i] = regexp.MustCompile(expr)
	}
	return res
}
