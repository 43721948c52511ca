package scoring

// Hand-curated risk keyword lists. Every entry is lowercase and matched as a
// case-insensitive substring against each ingredient string, so compound
// descriptions like "refined sunflower oil" still hit "sunflower oil".

// Industrial seed/vegetable oils. Palm oil is deliberately not listed here:
// it carries its own detection flag and flat penalty, never the per-oil one.
var seedOils = []string{
	"canola oil", "rapeseed oil", "sunflower oil", "safflower oil",
	"corn oil", "soybean oil", "vegetable oil", "cottonseed oil",
	"grapeseed oil", "rice bran oil", "sesame oil", "peanut oil",
	"margarine", "shortening",
}

// Artificial sweeteners, colors and synthetic preservatives. Sodium
// nitrite/nitrate are tracked in the carcinogen list only, so cured meats
// are penalized once.
var artificialIngredients = []string{
	"artificial flavor", "artificial colour", "artificial sweetener",
	"aspartame", "saccharin", "sucralose", "acesulfame", "neotame",
	"advantame", "monosodium glutamate", "msg", "bha", "bht",
	"tbhq", "propyl gallate",
	"red 40", "yellow 5", "yellow 6", "blue 1", "caramel color",
	"sodium benzoate", "potassium sorbate", "sodium metabisulfite",
}

var carcinogens = []string{
	"sodium nitrite", "sodium nitrate", "bha", "bht", "tbhq",
	"propyle gallate", "diacetyl", "potassium bromate", "bromated flour",
	"saccharin", "cyclamate", "caramel color (ammonia process)",
	"bisphenol a", "bpa", "phthalates", "parabens",
}

var pesticides = []string{
	"glyphosate", "chlorpyrifos", "malathion", "carbaryl",
	"atrazine", "mancozeb", "chlorothalonil", "pyrethroids",
	"organophosphates", "neonicotinoids", "fipronil",
}

var heavyMetals = []string{
	"lead", "arsenic", "mercury", "cadmium", "chromium",
}

var microplastics = []string{
	"polyethylene", "polypropylene", "polyester", "nylon",
	"plastic", "microplastic",
}

var addedSugars = []string{
	"sugar", "sucrose", "glucose", "fructose", "corn syrup",
	"high fructose corn syrup", "agave", "maple syrup", "molasses",
	"honey", "cane juice", "cane sugar", "dextrose", "maltose",
	"lactose", "galactose", "invert sugar", "rice syrup", "maltodextrin",
}

var commonAllergens = []string{
	"milk", "casein", "whey", "lactose", "egg", "albumin",
	"peanut", "tree nut", "almond", "walnut", "cashew",
	"wheat", "gluten", "soy", "soybean", "fish", "shellfish",
	"sesame", "mustard", "celery", "lupin", "mollusc",
}

// Generic additive markers: function words that show up in declarations like
// "emulsifier (soy lecithin)". Matched against whole ingredient strings; the
// matched ingredient (not the marker) is reported back.
var genericAdditiveMarkers = []string{
	"emulsifier", "stabilizer", "thickener", "preservative",
	"antioxidant", "colouring", "flavour", "sweetener",
	"acid", "regulator",
}

// Palm oil variants for the dedicated flag.
var palmOilMarkers = []string{"palm oil", "palm kernel", "palmolein"}

// Organic/bio label markers, checked against the joined ingredient text.
var organicMarkers = []string{"organic", "bio", "eco"}
