package mockdata

// city holds one resolvable location entry.
type city struct {
	name string
	lat  float64
	lng  float64
}

// cities is matched in order against the lower-cased location string; the
// first substring hit wins. The first entry doubles as the fallback.
var cities = []city{
	{"toronto", 43.6532, -79.3832},
	{"vancouver", 49.2827, -123.1207},
	{"montreal", 45.5019, -73.5674},
	{"calgary", 51.0447, -114.0719},
	{"ottawa", 45.4215, -75.6972},
	{"new york", 40.7128, -74.0060},
	{"los angeles", 34.0522, -118.2437},
	{"chicago", 41.8781, -87.6298},
	{"london", 51.5074, -0.1278},
	{"paris", 48.8566, 2.3522},
}

var defaultCity = cities[0]

// category groups the keyword set and naming material for one business type.
type category struct {
	name      string
	keywords  []string
	templates []string
}

// categories is evaluated in order; the first keyword hit classifies the
// query. The last entry is also the default when nothing matches.
var categories = []category{
	{
		name:     "plumbers",
		keywords: []string{"plumb", "drain", "pipe", "leak"},
		templates: []string{
			"{surname} Plumbing",
			"{adjective} Drain Solutions",
			"{city} Water Works",
			"{surname} & Sons Plumbing",
			"{adjective} Pipe Pros",
		},
	},
	{
		name:     "dentists",
		keywords: []string{"dent", "tooth", "teeth", "oral"},
		templates: []string{
			"{surname} Dental",
			"{adjective} Smile Dentistry",
			"{city} Dental Care",
			"Dr. {surname} Family Dentistry",
		},
	},
	{
		name:     "lawyers",
		keywords: []string{"law", "attorney", "legal"},
		templates: []string{
			"{surname} & Associates",
			"{surname} Law Group",
			"{city} Legal Services",
			"{adjective} Defense Law",
		},
	},
	{
		name:     "hair salons",
		keywords: []string{"hair", "salon", "barber", "stylist"},
		templates: []string{
			"{adjective} Cuts",
			"{surname} Hair Studio",
			"{city} Style Lounge",
			"The {adjective} Salon",
		},
	},
	{
		name:     "auto repair",
		keywords: []string{"auto", "car", "mechanic", "tire", "garage"},
		templates: []string{
			"{surname} Auto Repair",
			"{adjective} Motors",
			"{city} Tire & Lube",
			"{surname} Garage",
		},
	},
	{
		name:     "coffee shops",
		keywords: []string{"coffee", "cafe", "espresso"},
		templates: []string{
			"The {adjective} Bean",
			"{surname} Coffee Co.",
			"{city} Espresso Bar",
			"{adjective} Grounds Cafe",
		},
	},
	{
		name:     "restaurants",
		keywords: []string{"restaurant", "food", "dining", "pizza", "sushi", "eat"},
		templates: []string{
			"{adjective} {food} House",
			"{surname}'s {food} Kitchen",
			"The {adjective} Fork",
			"{city} {food} Company",
		},
	},
}

var adjectives = []string{
	"Golden", "Silver", "Royal", "Elite", "Prime",
	"Urban", "Classic", "Modern", "Friendly", "Trusty",
}

var surnames = []string{
	"Miller", "Johnson", "Smith", "Baker", "Campbell",
	"Nguyen", "Rossi", "Kowalski", "Singh", "O'Brien",
}

var foods = []string{
	"Pizza", "Sushi", "Burger", "Noodle", "Taco", "Curry", "BBQ", "Pasta",
}

var streets = []string{
	"Main St", "King St W", "Queen St E", "Yonge St", "Bay St",
	"College St", "Dundas St", "Bloor St W", "Elm St", "Oak Ave",
}

var areaCodes = []string{"416", "647", "437", "905", "289", "365"}
