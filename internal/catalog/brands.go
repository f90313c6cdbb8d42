package catalog

// Brands are real tool manufacturers, used in order before fictional names
var Brands = []string{
	"DeWalt", "Makita", "Milwaukee", "Bosch", "Ryobi", "Black & Decker", "Craftsman",
	"Stanley", "Husky", "Kobalt", "Porter Cable", "Festool", "Hilti", "Metabo",
	"Hitachi", "Ridgid", "Worx", "Skil", "Dremel", "Klein Tools", "Fluke", "Snap-on",
	"Mac Tools", "Matco", "Proto", "Bahco", "Facom", "Gedore", "Hazet", "Stahlwille",
	"Wiha", "Channellock", "Irwin", "Lenox", "Starrett", "Mitutoyo", "Brown & Sharpe",
	"Tekton", "Performance Tool", "ABN", "ARES", "MAXIMUM", "Mastercraft",
}

// BrandStems and BrandSuffixes compose fictional "<Stem><Suffix> Tools" brands
var (
	BrandStems = []string{
		"Iron", "Forge", "Anvil", "Bolt", "Torque", "Granite", "Summit", "Ridge",
		"Timber", "Copper", "Falcon", "Apex", "Vector", "Hammer", "Keystone", "Atlas",
		"Northwind", "Redline", "Steel", "Pioneer",
	}
	BrandSuffixes = []string{
		"craft", "works", "line", "point", "master", "force", "tech", "pro",
		"mark", "edge", "grip", "field",
	}
)
