package catalog

// DescriptionTemplates are text/template sources rendered with a
// DescriptionData value
var DescriptionTemplates = []string{
	"Professional grade {{.Tool}} designed for {{.Application}}. Features {{.Material}} construction with {{.Feature}} for enhanced performance and durability.",
	"High-quality {{.Tool}} perfect for {{.Application}}. Built with {{.Material}} and includes {{.Feature}} for maximum efficiency.",
	"Durable {{.Tool}} ideal for {{.Application}} tasks. Made from {{.Material}} with {{.Feature}} technology.",
	"Heavy-duty {{.Tool}} suitable for {{.Application}}. Constructed with {{.Material}} and featuring {{.Feature}}.",
	"Precision {{.Tool}} engineered for {{.Application}}. Premium {{.Material}} construction with advanced {{.Feature}}.",
	"Industrial {{.Tool}} designed for demanding {{.Application}}. Robust {{.Material}} build with innovative {{.Feature}}.",
	"Compact {{.Tool}} perfect for {{.Application}} in tight spaces. Lightweight {{.Material}} with efficient {{.Feature}}.",
	"Ergonomic {{.Tool}} optimized for {{.Application}}. Superior {{.Material}} design with comfortable {{.Feature}}.",
}

// DescriptionData fills a description template
type DescriptionData struct {
	Tool        string
	Application string
	Material    string
	Feature     string
}

var Features = []string{
	"ergonomic grip", "anti-slip surface", "corrosion resistance", "precision engineering",
	"shock absorption", "quick-release mechanism", "magnetic tip", "LED work light",
	"variable speed control", "safety lock", "dust collection", "battery indicator",
	"overload protection", "reversible operation", "depth adjustment", "angle guide",
	"non-slip base", "quick-change system", "vibration reduction", "weatherproof design",
}

var Applications = []string{
	"construction", "automotive repair", "woodworking", "metalworking", "electrical work",
	"plumbing", "HVAC", "maintenance", "DIY projects", "professional use",
	"industrial applications", "home improvement", "precision assembly", "field service",
}
