package catalog

var FirstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda",
	"David", "Elizabeth", "William", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Charles", "Karen", "Christopher", "Lisa", "Daniel", "Nancy",
	"Matthew", "Betty", "Anthony", "Margaret", "Mark", "Sandra", "Donald", "Ashley",
	"Steven", "Emily", "Paul", "Kimberly", "Andrew", "Donna", "Joshua", "Michelle",
	"Kevin", "Carol", "Brian", "Amanda", "George", "Melissa", "Timothy", "Deborah",
	"Jan", "Anouk", "Lars", "Sofie", "Pieter", "Femke", "Jürgen", "Zoë",
	"Renée", "José", "Ana", "Luis", "Chen", "Priya", "Hiroshi", "Amara",
}

var LastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
	"Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson",
	"White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker",
	"Young", "Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill",
	"de Vries", "van Dijk", "Bakker", "Jansen", "Visser", "Müller", "Schröder",
	"O'Brien", "Patel", "Kim", "Tanaka", "Okafor", "Novak", "Kowalski", "Svensson",
}

// EmailDomains are the mail domains user emails are built on
var EmailDomains = []string{
	"gmail.com", "outlook.com", "yahoo.com", "hotmail.com", "icloud.com",
	"protonmail.com", "example.com", "toolshop.test", "workshop.io", "buildcorp.net",
}

// SocialProviders are the external identity providers a user may sign in with
var SocialProviders = []string{"google", "facebook", "github", "microsoft"}

// Country is an address pool entry. States is empty for countries where the
// address carries no state.
type Country struct {
	Code      string
	Cities    []string
	States    []string
	PhoneCode string
	Postcode  string // pattern: '#' is a digit, '?' an uppercase letter
}

// Countries is the address pool shared by users and invoices
var Countries = []Country{
	{Code: "US", Cities: []string{"Austin", "Denver", "Portland", "Chicago", "Boston", "Phoenix"},
		States: []string{"TX", "CO", "OR", "IL", "MA", "AZ"}, PhoneCode: "+1", Postcode: "#####"},
	{Code: "CA", Cities: []string{"Toronto", "Calgary", "Ottawa", "Halifax"},
		States: []string{"ON", "AB", "BC", "NS"}, PhoneCode: "+1", Postcode: "?#? #?#"},
	{Code: "AU", Cities: []string{"Sydney", "Melbourne", "Perth", "Brisbane"},
		States: []string{"NSW", "VIC", "WA", "QLD"}, PhoneCode: "+61", Postcode: "####"},
	{Code: "NL", Cities: []string{"Amsterdam", "Utrecht", "Rotterdam", "Eindhoven", "Groningen"},
		PhoneCode: "+31", Postcode: "#### ??"},
	{Code: "DE", Cities: []string{"Berlin", "Hamburg", "Munich", "Cologne", "Leipzig"},
		PhoneCode: "+49", Postcode: "#####"},
	{Code: "GB", Cities: []string{"London", "Leeds", "Bristol", "Glasgow"},
		PhoneCode: "+44", Postcode: "??# #??"},
	{Code: "FR", Cities: []string{"Paris", "Lyon", "Lille", "Nantes"},
		PhoneCode: "+33", Postcode: "#####"},
	{Code: "BE", Cities: []string{"Brussels", "Antwerp", "Ghent"},
		PhoneCode: "+32", Postcode: "####"},
}

// StreetNames are combined with a house number into a street address
var StreetNames = []string{
	"Main Street", "Oak Avenue", "Maple Drive", "Industrial Way", "Mill Lane",
	"Station Road", "Harbor Boulevard", "Kerkstraat", "Hauptstraße", "Rue de la Paix",
	"Workshop Row", "Foundry Street", "Elm Court", "Cedar Road", "Market Square",
}
