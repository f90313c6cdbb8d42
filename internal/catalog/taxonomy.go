// Package catalog holds the curated word pools the generators draw from.
// Every pool is read-only; generators pick from them through a seeded source.
package catalog

// Root is a top-level tool category with the children defined for it
type Root struct {
	Name     string
	Children []string
}

// Taxonomy is the fixed two-level tool category tree. Roots are taken in
// this order.
var Taxonomy = []Root{
	{Name: "Hand Tools", Children: []string{
		"Hammers", "Screwdrivers", "Wrenches", "Pliers", "Chisels",
		"Hand Saws", "Files & Rasps", "Utility Knives", "Clamps",
	}},
	{Name: "Power Tools", Children: []string{
		"Drills", "Impact Drivers", "Circular Saws", "Jigsaws", "Angle Grinders",
		"Sanders", "Routers", "Reciprocating Saws", "Nail Guns", "Planers",
	}},
	{Name: "Measuring Tools", Children: []string{
		"Tape Measures", "Spirit Levels", "Laser Levels", "Calipers", "Micrometers",
		"Squares", "Moisture Meters", "Stud Finders",
	}},
	{Name: "Fasteners", Children: []string{
		"Screws", "Nails", "Bolts", "Nuts", "Washers", "Anchors", "Rivets", "Staples",
	}},
	{Name: "Safety Gear", Children: []string{
		"Safety Glasses", "Work Gloves", "Hearing Protection", "Respirators",
		"Hard Hats", "High-Visibility Vests", "Knee Pads", "First Aid Kits",
	}},
	{Name: "Tool Storage", Children: []string{
		"Tool Boxes", "Tool Chests", "Tool Bags", "Organizers", "Workbenches",
		"Pegboards", "Parts Bins", "Tool Belts",
	}},
	{Name: "Electrical", Children: []string{
		"Multimeters", "Wire Strippers", "Voltage Testers", "Crimpers",
		"Extension Cords", "Cable Ties", "Fish Tapes", "Circuit Testers",
	}},
	{Name: "Plumbing", Children: []string{
		"Pipe Wrenches", "Pipe Cutters", "Plungers", "Drain Augers", "Basin Wrenches",
		"Tube Benders", "PEX Tools", "Thread Sealants",
	}},
	{Name: "Garden Tools", Children: []string{
		"Shovels", "Rakes", "Pruners", "Hedge Trimmers", "Lawn Mowers",
		"Leaf Blowers", "Wheelbarrows", "Garden Hoses", "Hoes",
	}},
	{Name: "Automotive", Children: []string{
		"Socket Sets", "Torque Wrenches", "Jacks", "Jack Stands", "Creepers",
		"OBD Scanners", "Battery Chargers", "Oil Filter Wrenches",
	}},
}

// SizeModifiers describe a size or power class
var SizeModifiers = []string{
	"Mini", "Compact", "Standard", "Heavy-Duty", "Professional", "Industrial",
	"Extra-Long", "Precision", "Magnum", "Lightweight",
}

// MaterialModifiers name a construction material
var MaterialModifiers = []string{
	"Steel", "Stainless Steel", "Chrome Vanadium", "Titanium", "Aluminum",
	"Carbon Fiber", "Fiberglass", "Brass", "Composite", "Hardwood",
}

// ApplicationModifiers name a trade or power source
var ApplicationModifiers = []string{
	"Cordless", "Corded", "Pneumatic", "Automotive", "Woodworking",
	"Metalworking", "Electrician", "Plumber", "Marine", "Workshop",
}

// Modifiers is every modifier usable to derive a category variation,
// in a fixed order.
func Modifiers() []string {
	out := make([]string, 0, len(SizeModifiers)+len(MaterialModifiers)+len(ApplicationModifiers))
	out = append(out, SizeModifiers...)
	out = append(out, MaterialModifiers...)
	return append(out, ApplicationModifiers...)
}

// ChildNames flattens every child name of the taxonomy in order
func ChildNames() []string {
	var out []string
	for _, root := range Taxonomy {
		out = append(out, root.Children...)
	}
	return out
}
