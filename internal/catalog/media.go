package catalog

// PhotoSource is a stock photo site an image is attributed to
type PhotoSource struct {
	Name   string
	Domain string
}

var PhotoSources = []PhotoSource{
	{"Unsplash", "unsplash.com"},
	{"Pexels", "pexels.com"},
	{"Pixabay", "pixabay.com"},
	{"Freepik", "freepik.com"},
	{"Shutterstock", "shutterstock.com"},
	{"Getty Images", "gettyimages.com"},
	{"iStock", "istockphoto.com"},
	{"Adobe Stock", "stock.adobe.com"},
	{"Depositphotos", "depositphotos.com"},
	{"123RF", "123rf.com"},
	{"Dreamstime", "dreamstime.com"},
	{"Alamy", "alamy.com"},
}

var Photographers = []string{
	"Alex Thompson", "Sarah Chen", "Michael Rodriguez", "Emma Wilson", "David Kim",
	"Lisa Anderson", "James Taylor", "Maria Garcia", "Ryan Johnson", "Nina Patel",
	"Tom Brown", "Jessica Lee", "Mark Davis", "Ana Martinez", "Chris Wilson",
	"Sophie Turner", "Daniel Smith", "Rachel Green", "Kevin Wong", "Laura Miller",
}

// ImageVariants and ImageExtensions complete an image file name
var (
	ImageVariants   = []string{"main", "detail", "angle", "use", "packaging"}
	ImageExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}
)
