package normalize

// Transliterations maps Latin-script ("Hinglish") tokens to their Devanagari
// forms. Keys are lowercase whole words; common misspellings and SMS-style
// abbreviations are included. Deliberately ambiguous English words ("do",
// "is", "me", "to", "of") are kept out so English commands survive intact;
// the preserve list below guards the compound-word heuristic the same way.
var Transliterations = map[string]string{
	// Verbs
	"dikhao":  "दिखाओ",
	"dikhaao": "दिखाओ",
	"dikhaw":  "दिखाओ",
	"dikha":   "दिखा",
	"batao":   "बताओ",
	"bataao":  "बताओ",
	"btao":    "बताओ",
	"karo":    "करो",
	"kro":     "करो",
	"karen":   "करें",
	"karein":  "करें",
	"kijiye":  "कीजिए",
	"bhejo":   "भेजो",
	"jodo":    "जोड़ो",
	"jodein":  "जोड़ें",
	"banao":   "बनाओ",
	"rakho":   "रखो",
	"lagao":   "लगाओ",
	"badlo":   "बदलो",
	"badlen":  "बदलें",
	"khojo":   "खोजो",
	"likho":   "लिखो",

	// Pronouns, possessives, connectors
	"mujhe":  "मुझे",
	"mera":   "मेरा",
	"meri":   "मेरी",
	"mere":   "मेरे",
	"ka":     "का",
	"kaa":    "का",
	"ki":     "की",
	"kee":    "की",
	"ke":     "के",
	"kay":    "के",
	"se":     "से",
	"sey":    "से",
	"tak":    "तक",
	"tk":     "तक",
	"thak":   "तक",
	"mein":   "में",
	"par":    "पर",
	"aur":    "और",
	"hai":    "है",
	"hain":   "हैं",
	"kya":    "क्या",
	"paas":   "पास",
	"chahiye": "चाहिए",

	// Negation markers in Roman script
	"nahi":    "नहीं",
	"nahin":   "नहीं",
	"mat":     "मत",
	"zaroorat": "ज़रूरत",
	"jarurat":  "ज़रूरत",

	// Time words
	"aaj":      "आज",
	"aj":       "आज",
	"kal":      "कल",
	"kl":       "कल",
	"pichhle":  "पिछले",
	"pichle":   "पिछले",
	"pichhla":  "पिछला",
	"pichhli":  "पिछली",
	"hafte":    "हफ्ते",
	"hafta":    "हफ्ता",
	"saptah":   "सप्ताह",
	"saptaah":  "सप्ताह",
	"mahine":   "महीने",
	"maheene":  "महीने",
	"mahina":   "महीना",
	"din":      "दिन",
	"dino":     "दिनों",
	"dinon":    "दिनों",
	"saal":     "साल",
	"varsh":    "वर्ष",
	"pehle":    "पहले",
	"pahle":    "पहले",
	"phle":     "पहले",

	// Quantities, attributes
	"mulya":  "मूल्य",
	"kimat":  "कीमत",
	"keemat": "कीमत",
	"daam":   "दाम",
	"matra":  "मात्रा",
	"naam":   "नाम",
	"naya":   "नया",
	"nayi":   "नई",
	"purana": "पुराना",
	"sabhi":  "सभी",
	"sab":    "सब",
	"cheez":  "चीज़",
	"vastu":  "वस्तु",
	"samaan": "सामान",

	// Business vocabulary that mixed commands write in Latin script. These
	// rewrites only run for Hindi/mixed input; the English pattern tables
	// carry Devanagari alternations for the same reason.
	"stock":  "स्टॉक",
	"stok":   "स्टॉक",
	"stck":   "स्टॉक",
	"stak":   "स्टॉक",
	"stoock": "स्टॉक",
	"update": "अपडेट",
	"apdet":  "अपडेट",
	"updt":   "अपडेट",
	"updte":  "अपडेट",

	// Units
	"kilo": "किलो",
	"kg":   "किलो",
	"gram": "ग्राम",
	"gm":   "ग्राम",
	"qty":  "मात्रा",

	// Products and their common romanizations
	"chawal":  "चावल",
	"chaawal": "चावल",
	"chaval":  "चावल",
	"chawl":   "चावल",
	"aloo":    "आलू",
	"aaloo":   "आलू",
	"aalu":    "आलू",
	"alu":     "आलू",
	"allu":    "आलू",
	"pyaaz":   "प्याज",
	"pyaj":    "प्याज",
	"pyaz":    "प्याज",
	"tamatar": "टमाटर",
	"tamaatar": "टमाटर",
	"tamater": "टमाटर",
	"mirch":   "मिर्च",
	"mirchi":  "मिर्च",
	"daal":    "दाल",
	"dal":     "दाल",
	"sabzi":   "सब्जी",
	"sabji":   "सब्जी",
	"chini":   "चीनी",
	"cheeni":  "चीनी",
	"namak":   "नमक",
	"paneer":  "पनीर",
	"gehun":   "गेहूं",
	"gehu":    "गेहूं",
	"atta":    "आटा",
	"aata":    "आटा",
	"haldi":   "हल्दी",
	"adrak":   "अदरक",
	"lahsun":  "लहसुन",
	"lehsun":  "लहसुन",
	"dahi":    "दही",
	"ghee":    "घी",
	"tel":     "तेल",
	"sabun":   "साबुन",
	"dudh":    "दूध",
	"doodh":   "दूध",
}

// englishPreserve lists English words that must never be rewritten, not even
// partially by the compound-word heuristic ("price" must not lose "rice").
var englishPreserve = map[string]bool{
	"report": true, "reports": true,
	"price": true, "prices": true,
	"rice": true, "sugar": true, "salt": true, "soap": true, "oil": true,
	"wheat": true, "potato": true, "onion": true, "tomato": true, "tea": true,
	"today": true, "yesterday": true, "tomorrow": true,
	"day": true, "week": true, "month": true, "year": true,
	"order": true, "orders": true,
	"product": true, "products": true,
	"item": true, "items": true,
	"inventory": true, "customer": true, "customers": true,
	"top": true, "best": true, "low": true,
	"available": true, "weather": true,
}

// emojiWords substitutes a small set of product and action emoji with the
// canonical domain word sellers type for them.
var emojiWords = map[string]string{
	// Food items
	"🍅": "टमाटर", "🥔": "आलू", "🍚": "चावल", "🧅": "प्याज",
	"🌶️": "मिर्च", "🧄": "लहसुन", "🥕": "गाजर", "🍆": "बैंगन",
	"🌽": "मक्का", "🍎": "सेब", "🍌": "केला", "🥭": "आम",
	"🍋": "नींबू", "🍊": "संतरा", "🍞": "ब्रेड", "🥚": "अंडा",
	"🧀": "पनीर", "🍯": "शहद", "🧂": "नमक", "🍵": "चाय",
	"☕": "कॉफी", "🥛": "दूध", "🧈": "मक्खन", "🫓": "रोटी",
	"🍛": "दाल",

	// Dates and reporting
	"📅": "तारीख", "📆": "दिनांक", "🗓️": "कैलेंडर", "📊": "रिपोर्ट",

	// Actions
	"➕": "जोड़ें", "➖": "घटाएं", "✏️": "एडिट", "🔄": "अपडेट",
	"❌": "हटाएं", "🔍": "खोजें", "📋": "सूची", "📦": "स्टॉक",
	"🏷️": "मूल्य", "💰": "पैसा", "🛒": "खरीदें", "🧾": "बिल",
	"➡️": "को",
}

// devanagariDigits folds Devanagari numerals to ASCII so one numeric grammar
// serves both scripts.
var devanagariDigits = map[rune]rune{
	'०': '0', '१': '1', '२': '2', '३': '3', '४': '4',
	'५': '5', '६': '6', '७': '7', '८': '8', '९': '9',
}
