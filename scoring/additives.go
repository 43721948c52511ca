package scoring

import (
	"sort"
	"strings"
)

// Safety is the three-tier rating attached to each known additive.
type Safety string

const (
	SafetySafe    Safety = "safe"
	SafetyCaution Safety = "caution"
	SafetyAvoid   Safety = "avoid"
)

// AdditiveInfo describes one food additive from the E-number database.
type AdditiveInfo struct {
	Name        string   `json:"name"`
	ENumber     string   `json:"e_number"`
	Category    string   `json:"category"`
	Safety      Safety   `json:"safety"`
	Effects     []string `json:"effects"`
	Description string   `json:"description"`
}

// eNumberDB is keyed by normalized lowercase E-number ("e621"). Loaded once,
// read-only afterwards.
var eNumberDB = map[string]AdditiveInfo{
	// Preservatives
	"e200": {Name: "Sorbic Acid", ENumber: "E200", Category: "Preservative", Safety: SafetySafe, Effects: []string{"Generally safe"}, Description: "Natural preservative found in berries"},
	"e202": {Name: "Potassium Sorbate", ENumber: "E202", Category: "Preservative", Safety: SafetySafe, Effects: []string{"Generally safe"}, Description: "Salt of sorbic acid"},
	"e210": {Name: "Benzoic Acid", ENumber: "E210", Category: "Preservative", Safety: SafetyCaution, Effects: []string{"Can cause hyperactivity", "Asthma symptoms in sensitive people"}, Description: "Common preservative, derived from benzoin resin"},
	"e211": {Name: "Sodium Benzoate", ENumber: "E211", Category: "Preservative", Safety: SafetyCaution, Effects: []string{"Linked to hyperactivity", "Can form benzene with vitamin C"}, Description: "Very common preservative"},
	"e220": {Name: "Sulphur Dioxide", ENumber: "E220", Category: "Preservative", Safety: SafetyCaution, Effects: []string{"Asthma trigger", "Can cause allergic reactions"}, Description: "Used in dried fruits and wines"},
	"e250": {Name: "Sodium Nitrite", ENumber: "E250", Category: "Preservative", Safety: SafetyAvoid, Effects: []string{"Potential carcinogen", "Forms nitrosamines", "Linked to cancer"}, Description: "Used in processed meats - avoid"},
	"e251": {Name: "Sodium Nitrate", ENumber: "E251", Category: "Preservative", Safety: SafetyAvoid, Effects: []string{"Converts to nitrites", "Potential carcinogen", "Linked to cancer"}, Description: "Used in cured meats"},
	"e270": {Name: "Lactic Acid", ENumber: "E270", Category: "Preservative", Safety: SafetySafe, Effects: []string{"Natural", "Safe in normal amounts"}, Description: "Natural acid found in fermented foods"},
	"e280": {Name: "Propionic Acid", ENumber: "E280", Category: "Preservative", Safety: SafetySafe, Effects: []string{"Natural", "Safe"}, Description: "Natural preservative in some foods"},
	"e282": {Name: "Calcium Propionate", ENumber: "E282", Category: "Preservative", Safety: SafetySafe, Effects: []string{"Generally safe", "Linked to migraines in some"}, Description: "Bread preservative"},

	// Antioxidants and acids
	"e300": {Name: "Ascorbic Acid (Vitamin C)", ENumber: "E300", Category: "Antioxidant", Safety: SafetySafe, Effects: []string{"Safe", "Actually beneficial"}, Description: "Vitamin C - good for you!"},
	"e301": {Name: "Sodium Ascorbate", ENumber: "E301", Category: "Antioxidant", Safety: SafetySafe, Effects: []string{"Safe", "Vitamin C"}, Description: "Salt of vitamin C"},
	"e306": {Name: "Tocopherols", ENumber: "E306", Category: "Antioxidant", Safety: SafetySafe, Effects: []string{"Vitamin E", "Antioxidant"}, Description: "Natural vitamin E"},
	"e320": {Name: "BHA", ENumber: "E320", Category: "Antioxidant", Safety: SafetyCaution, Effects: []string{"May cause hyperactivity", "Mixed research on safety"}, Description: "Butylated hydroxyanisole"},
	"e321": {Name: "BHT", ENumber: "E321", Category: "Antioxidant", Safety: SafetyCaution, Effects: []string{"Controversial", "May affect hormones"}, Description: "Butylated hydroxytoluene"},
	"e330": {Name: "Citric Acid", ENumber: "E330", Category: "Acid", Safety: SafetySafe, Effects: []string{"Natural", "Safe"}, Description: "Found naturally in citrus fruits"},
	"e331": {Name: "Sodium Citrate", ENumber: "E331", Category: "Acid", Safety: SafetySafe, Effects: []string{"Safe", "Salt of citric acid"}, Description: "Flavor enhancer"},
	"e338": {Name: "Phosphoric Acid", ENumber: "E338", Category: "Acid", Safety: SafetyCaution, Effects: []string{"May affect calcium absorption", "Can erode teeth"}, Description: "Used in cola drinks"},
	"e339": {Name: "Sodium Phosphate", ENumber: "E339", Category: "Emulsifier", Safety: SafetyCaution, Effects: []string{"May affect kidney function", "High phosphorus"}, Description: "Used in processed cheese"},

	// Thickeners and emulsifiers
	"e400": {Name: "Alginic Acid", ENumber: "E400", Category: "Thickener", Safety: SafetySafe, Effects: []string{"Natural", "Fiber"}, Description: "Derived from seaweed"},
	"e401": {Name: "Sodium Alginate", ENumber: "E401", Category: "Thickener", Safety: SafetySafe, Effects: []string{"Safe", "Used in molecular gastronomy"}, Description: "Seaweed extract"},
	"e407": {Name: "Carrageenan", ENumber: "E407", Category: "Thickener", Safety: SafetySafe, Effects: []string{"Generally safe", "Some gut sensitivity"}, Description: "Seaweed extract"},
	"e410": {Name: "Carob Bean Gum", ENumber: "E410", Category: "Thickener", Safety: SafetySafe, Effects: []string{"Natural", "Safe"}, Description: "Natural fiber"},
	"e412": {Name: "Guar Gum", ENumber: "E412", Category: "Thickener", Safety: SafetySafe, Effects: []string{"Natural fiber", "Safe in food amounts"}, Description: "Derived from guar beans"},
	"e414": {Name: "Gum Arabic", ENumber: "E414", Category: "Thickener", Safety: SafetySafe, Effects: []string{"Natural", "Safe"}, Description: "Acacia tree sap"},
	"e420": {Name: "Sorbitol", ENumber: "E420", Category: "Sweetener", Safety: SafetySafe, Effects: []string{"Sugar alcohol", "May cause digestive issues in large amounts"}, Description: "Natural sweetener"},
	"e421": {Name: "Mannitol", ENumber: "E421", Category: "Sweetener", Safety: SafetySafe, Effects: []string{"Sugar alcohol", "Laxative in large amounts"}, Description: "Sugar alcohol"},
	"e440": {Name: "Pectin", ENumber: "E440", Category: "Thickener", Safety: SafetySafe, Effects: []string{"Natural fiber", "Safe"}, Description: "Fruit pectin - natural"},
	"e471": {Name: "Mono- and Diglycerides", ENumber: "E471", Category: "Emulsifier", Safety: SafetySafe, Effects: []string{"Natural fat molecule", "Safe"}, Description: "Derived from fats"},
	"e472": {Name: "Esters of Mono/Diglycerides", ENumber: "E472", Category: "Emulsifier", Safety: SafetySafe, Effects: []string{"Generally safe"}, Description: "Modified fats"},
	"e500": {Name: "Sodium Carbonates", ENumber: "E500", Category: "Raising Agent", Safety: SafetySafe, Effects: []string{"Baking soda", "Safe"}, Description: "Baking ingredients"},

	// Sweeteners
	"e950": {Name: "Acesulfame K", ENumber: "E950", Category: "Sweetener", Safety: SafetyCaution, Effects: []string{"Controversial", "Some concerns about safety"}, Description: "Artificial sweetener"},
	"e951": {Name: "Aspartame", ENumber: "E951", Category: "Sweetener", Safety: SafetyCaution, Effects: []string{"Controversial", "Headaches in some", "Not for phenylketonurics"}, Description: "One of the most common artificial sweeteners"},
	"e952": {Name: "Cyclamate", ENumber: "E952", Category: "Sweetener", Safety: SafetyCaution, Effects: []string{"Banned in US", "Controversial"}, Description: "Artificial sweetener"},
	"e954": {Name: "Saccharin", ENumber: "E954", Category: "Sweetener", Safety: SafetyCaution, Effects: []string{"Oldest artificial sweetener", "Controversial"}, Description: "First artificial sweetener"},
	"e955": {Name: "Sucralose", ENumber: "E955", Category: "Sweetener", Safety: SafetyCaution, Effects: []string{"Some concerns about gut bacteria", "Generally considered safe"}, Description: "Splenda"},
	"e960": {Name: "Steviol Glycosides", ENumber: "E960", Category: "Sweetener", Safety: SafetySafe, Effects: []string{"From stevia plant", "Natural alternative"}, Description: "Stevia - natural sweetener"},
	"e965": {Name: "Maltitol", ENumber: "E965", Category: "Sweetener", Safety: SafetySafe, Effects: []string{"Sugar alcohol", "Laxative effect"}, Description: "Sugar-free sweetener"},

	// Colors
	"e100":  {Name: "Curcumin", ENumber: "E100", Category: "Color", Safety: SafetySafe, Effects: []string{"Turmeric", "Anti-inflammatory"}, Description: "Natural yellow color from turmeric"},
	"e101":  {Name: "Riboflavin (Vitamin B2)", ENumber: "E101", Category: "Color", Safety: SafetySafe, Effects: []string{"Vitamin B2", "Safe"}, Description: "Natural yellow color"},
	"e120":  {Name: "Carmine", ENumber: "E120", Category: "Color", Safety: SafetySafe, Effects: []string{"Natural from cochineal", "Vegetarians avoid"}, Description: "Natural red from insects"},
	"e150":  {Name: "Caramel", ENumber: "E150", Category: "Color", Safety: SafetySafe, Effects: []string{"Safe", "Brown color"}, Description: "Burnt sugar - natural"},
	"e150a": {Name: "Plain Caramel", ENumber: "E150a", Category: "Color", Safety: SafetySafe, Effects: []string{"Safe"}, Description: "Plain caramel color"},
	"e150c": {Name: "Ammonia Caramel", ENumber: "E150c", Category: "Color", Safety: SafetyAvoid, Effects: []string{"4-MEI carcinogen", "Avoid"}, Description: "Caramel color using ammonia - potentially harmful"},
	"e160":  {Name: "Carotenoids", ENumber: "E160", Category: "Color", Safety: SafetySafe, Effects: []string{"Natural orange color", "Vitamin A precursor"}, Description: "From carrots - safe"},
	"e163":  {Name: "Anthocyanins", ENumber: "E163", Category: "Color", Safety: SafetySafe, Effects: []string{"Natural purple color", "Antioxidants"}, Description: "From berries - beneficial"},
	"e170":  {Name: "Calcium Carbonate", ENumber: "E170", Category: "Color", Safety: SafetySafe, Effects: []string{"Chalk", "Calcium supplement"}, Description: "Natural calcium"},
	"e171":  {Name: "Titanium Dioxide", ENumber: "E171", Category: "Color", Safety: SafetyAvoid, Effects: []string{"Nanoparticles may be harmful", "Banned in EU"}, Description: "White color - avoid"},
	"e172":  {Name: "Iron Oxides", ENumber: "E172", Category: "Color", Safety: SafetySafe, Effects: []string{"Natural mineral", "Safe"}, Description: "Natural mineral colors"},

	// Flavor enhancers
	"e620": {Name: "Glutamic Acid", ENumber: "E620", Category: "Flavor Enhancer", Safety: SafetyCaution, Effects: []string{"MSG", "Chinese restaurant syndrome", "Headaches"}, Description: "MSG - flavor enhancer"},
	"e621": {Name: "Monosodium Glutamate (MSG)", ENumber: "E621", Category: "Flavor Enhancer", Safety: SafetyCaution, Effects: []string{"May cause headaches", "Chinese restaurant syndrome"}, Description: "Most common MSG form"},
	"e627": {Name: "Disodium Guanylate", ENumber: "E627", Category: "Flavor Enhancer", Safety: SafetySafe, Effects: []string{"Nucleotides", "Safe"}, Description: "Flavor enhancer"},
	"e631": {Name: "Disodium Inosinate", ENumber: "E631", Category: "Flavor Enhancer", Safety: SafetySafe, Effects: []string{"Nucleotides", "Safe"}, Description: "Flavor enhancer"},
	"e635": {Name: "Disodium Ribonucleotides", ENumber: "E635", Category: "Flavor Enhancer", Safety: SafetySafe, Effects: []string{"Flavor enhancer", "Safe"}, Description: "Flavor enhancer"},

	// Glazing agents
	"e901": {Name: "Beeswax", ENumber: "E901", Category: "Glazing Agent", Safety: SafetySafe, Effects: []string{"Natural", "Vegans avoid"}, Description: "Natural beeswax"},
	"e903": {Name: "Carnauba Wax", ENumber: "E903", Category: "Glazing Agent", Safety: SafetySafe, Effects: []string{"Natural plant wax", "Safe"}, Description: "Natural plant wax"},
	"e904": {Name: "Shellac", ENumber: "E904", Category: "Glazing Agent", Safety: SafetySafe, Effects: []string{"Natural resin", "Vegans avoid"}, Description: "Confectionery glaze"},
}

// additiveAliases maps common ingredient names to E-number keys. Some aliases
// point at codes outside the database (e.g. e319); those resolve only through
// the substring fallback, matching the lookup contract.
var additiveAliases = map[string]string{
	"monosodium glutamate":    "e621",
	"msg":                     "e621",
	"sodium benzoate":         "e211",
	"benzoic acid":            "e210",
	"sorbic acid":             "e200",
	"potassium sorbate":       "e202",
	"sulphur dioxide":         "e220",
	"sulfur dioxide":          "e220",
	"sodium nitrite":          "e250",
	"sodium nitrate":          "e251",
	"bha":                     "e320",
	"bht":                     "e321",
	"tbhq":                    "e319",
	"acesulfame":              "e950",
	"acesulfame k":            "e950",
	"acesulfame potassium":    "e950",
	"aspartame":               "e951",
	"saccharin":               "e954",
	"sucralose":               "e955",
	"stevia":                  "e960",
	"caramel color":           "e150",
	"caramel":                 "e150",
	"titanium dioxide":        "e171",
	"citric acid":             "e330",
	"sodium citrate":          "e331",
	"phosphoric acid":         "e338",
	"guar gum":                "e412",
	"carrageenan":             "e407",
	"xanthan gum":             "e415",
	"pectin":                  "e440",
	"carboxymethyl cellulose": "e466",
	"cellulose":               "e460",
	"sodium metabisulfite":    "e223",
	"potassium metabisulfite": "e224",
	"sorbate":                 "e200",
	"benzoate":                "e210",
	"nitrite":                 "e250",
	"nitrate":                 "e251",
	"propionate":              "e280",
	"calcium propionate":      "e282",
	"sodium propionate":       "e281",
	"tocopherol":              "e306",
	"ascorbic acid":           "e300",
	"vitamin c":               "e300",
	"beta carotene":           "e160",
	"annatto":                 "e160b",
	"paprika extract":         "e160c",
	"carminic acid":           "e120",
	"cochineal":               "e120",
	"riboflavin":              "e101",
	"curcumin":                "e100",
	"glutamic acid":           "e620",
	"disodium guanylate":      "e627",
	"disodium inosinate":      "e631",
	"inosine":                 "e631",
	"guanylate":               "e627",
	"cyclamate":               "e952",
	"sorbitol":                "e420",
	"maltitol":                "e965",
	"mannitol":                "e421",
	"xylitol":                 "e967",
	"iron oxide":              "e172",
	"calcium carbonate":       "e170",
	"anthocyanin":             "e163",
	"beetroot red":            "e162",
	"spirulina":               "e170",
}

// eNumberKeys holds the database keys in sorted order so the substring
// fallback scans records deterministically.
var eNumberKeys []string

func init() {
	eNumberKeys = make([]string, 0, len(eNumberDB))
	for k := range eNumberDB {
		eNumberKeys = append(eNumberKeys, k)
	}
	sort.Strings(eNumberKeys)
}

// ResolveAdditive maps a free-text ingredient token to a known additive
// record, or nil when nothing matches (the common case, not an error).
// Resolution order: embedded E-number digits, then exact alias, then
// substring match against canonical names.
func ResolveAdditive(token string) *AdditiveInfo {
	lower := strings.ToLower(strings.TrimSpace(token))
	if lower == "" {
		return nil
	}

	if digits := extractDigits(lower); digits != "" {
		if info, ok := eNumberDB["e"+digits]; ok {
			return &info
		}
	}

	if key, ok := additiveAliases[lower]; ok {
		if info, ok := eNumberDB[key]; ok {
			return &info
		}
	}

	for _, key := range eNumberKeys {
		info := eNumberDB[key]
		name := strings.ToLower(info.Name)
		if strings.Contains(lower, name) || strings.Contains(name, lower) {
			return &info
		}
	}

	return nil
}

func extractDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
