package synth

import (
	"math/rand"
	"strconv"
)

// Word pools for pseudo-realistic text fields. All entries are free of the
// pipe delimiter; the writer performs no escaping, so that property has to
// hold at the source.
var (
	firstNames = []string{
		"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael",
		"Linda", "David", "Sarah", "William", "Karen", "Richard", "Lisa",
		"Joseph", "Nancy", "Thomas", "Betty", "Charles", "Helen",
	}
	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
		"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
		"Wilson", "Anderson", "Taylor",
	}
	cities = []string{
		"Springfield", "Riverside", "Franklin", "Georgetown", "Madison",
		"Oak Hill", "Clinton", "Fairview", "Salem", "Greenville", "Bristol",
		"Ashland", "Milton", "Centerville", "Kingston", "Arlington",
	}
	streetNames = []string{
		"Main", "Oak", "Maple", "Cedar", "Pine", "Elm", "Washington", "Lake",
		"Hill", "Park", "Walnut", "Spring", "North", "Ridge", "Church",
		"Willow", "Sunset", "Railroad", "Jackson", "Mill",
	}
	streetTypes = []string{"St", "Ave", "Blvd", "Dr", "Ln", "Rd", "Way"}

	// Regions group states so addresses, stores and warehouses cluster
	// geographically the way retail footprints do.
	regionNames = []string{"West", "East", "South", "Midwest"}
	regionStates = map[string][]string{
		"West":    {"CA", "WA", "OR", "NV", "AZ", "UT", "CO", "ID", "MT", "WY"},
		"East":    {"NY", "NJ", "PA", "CT", "MA", "ME", "VT", "NH", "RI"},
		"South":   {"TX", "FL", "GA", "NC", "SC", "VA", "TN", "AL", "MS", "LA", "AR", "OK"},
		"Midwest": {"IL", "IN", "OH", "MI", "WI", "MN", "IA", "MO", "ND", "SD", "NE", "KS"},
	}

	categories = []string{"Electronics", "Clothing", "Home", "Sports", "Books", "Automotive"}
	subcategories = map[string][]string{
		"Electronics": {"Computers", "Phones", "Audio", "Gaming", "Accessories"},
		"Clothing":    {"Men", "Women", "Children", "Shoes", "Accessories"},
		"Home":        {"Furniture", "Kitchen", "Bedroom", "Garden", "Tools"},
		"Sports":      {"Fitness", "Outdoor", "Team Sports", "Water Sports", "Winter Sports"},
		"Books":       {"Fiction", "Non-Fiction", "Educational", "Children", "Reference"},
		"Automotive":  {"Parts", "Accessories", "Tools", "Care", "Electronics"},
	}
	brands = map[string][]string{
		"Electronics": {"TechCorp", "DigitalPlus", "InnovateTech", "PowerVolt", "SmartDevices"},
		"Clothing":    {"StyleMax", "FashionForward", "ComfortWear", "UrbanStyle", "ClassicFit"},
		"Home":        {"HomeComfort", "LivingSpace", "CozyHome", "ModernLiving", "GardenPro"},
		"Sports":      {"ActiveLife", "SportsPro", "FitnessFlex", "TrailBlazer", "TeamSpirit"},
		"Books":       {"KnowledgePress", "StoryBooks", "LearnMore", "ReadWell", "BookCraft"},
		"Automotive":  {"AutoPro", "CarCare", "DriveSmart", "VehiclePlus", "MotorMax"},
	}
	// Category price bands: min and max list price in whole dollars.
	priceBands = map[string][2]int{
		"Electronics": {20, 2000},
		"Clothing":    {15, 300},
		"Home":        {10, 1500},
		"Sports":      {25, 800},
		"Books":       {8, 100},
		"Automotive":  {15, 500},
	}

	colors     = []string{"red", "blue", "green", "black", "white", "gray", "brown", "yellow", "purple", "orange"}
	sizes      = []string{"XS", "S", "M", "L", "XL", "XXL"}
	units      = []string{"Each", "Pair", "Set", "Dozen", "Case"}
	containers = []string{"Box", "Bag", "Case", "Carton", "Package"}

	educationLevels = []string{"Primary", "Secondary", "College", "Advanced Degree", "Unknown"}
	creditRatings   = []string{"Good", "High Risk", "Low Risk", "Unknown"}
	buyPotentials   = []string{"Unknown", "0-500", "501-1000", "1001-5000", "5001-10000", "10001+"}
	salutations     = []string{"Mr.", "Mrs.", "Ms.", "Dr.", "Prof."}
	locationTypes   = []string{"apartment", "condo", "single family", "unknown"}

	incomeBands = [][2]int{
		{0, 10000}, {10000, 20000}, {20000, 30000}, {30000, 50000},
		{50000, 75000}, {75000, 100000}, {100000, 200000},
	}

	shipModes = []struct {
		code, kind, carrier string
	}{
		{"GROUND", "Standard Ground", "UPS"},
		{"EXPRESS", "2-Day Express", "FedEx"},
		{"OVERNIGHT", "Next Day Air", "UPS"},
		{"FREIGHT", "Freight Service", "Conway"},
		{"MAIL", "Regular Mail", "USPS"},
	}

	returnReasons = []string{
		"Defective item", "Wrong item shipped", "Item not as described",
		"Changed mind", "Found better price", "Gift return", "Size too small",
		"Size too large", "Color not as expected", "Damaged in shipping",
		"Arrived too late", "Duplicate order",
	}

	dayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
)

// gmtOffsets maps states to their primary timezone offset.
var gmtOffsets = map[string]float64{
	"CA": -8, "WA": -8, "OR": -8, "NV": -8,
	"AZ": -7, "UT": -7, "CO": -7, "ID": -7, "MT": -7, "WY": -7,
	"TX": -6, "OK": -6, "AR": -6, "LA": -6, "MS": -6, "AL": -6, "TN": -6,
	"IL": -6, "WI": -6, "MN": -6, "IA": -6, "MO": -6, "ND": -6, "SD": -6,
	"NE": -6, "KS": -6,
}

func gmtOffset(state string) float64 {
	if off, ok := gmtOffsets[state]; ok {
		return off
	}
	return -5 // Eastern
}

func pick(rng *rand.Rand, pool []string) string {
	return pool[rng.Intn(len(pool))]
}

// region returns the region for a round-robin index, used to spread
// physical locations evenly across the country.
func region(i int64) string {
	return regionNames[int(i)%len(regionNames)]
}

func stateIn(rng *rand.Rand, regionName string) string {
	return pick(rng, regionStates[regionName])
}

func fullName(rng *rand.Rand) string {
	return pick(rng, firstNames) + " " + pick(rng, lastNames)
}

// Formatting helpers. Every field reaches the writer as its final string
// representation; NULL is the empty string.

func itoa(n int64) string { return strconv.FormatInt(n, 10) }

func itoaInt(n int) string { return strconv.Itoa(n) }

// money formats a dollar amount with two decimal places.
func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// rate formats a fractional rate (e.g. a tax percentage) with four decimals.
func rate(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// offset formats a GMT offset with one decimal, matching the kit's files.
func offset(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func ynFlag(b bool) string {
	if b {
		return "Y"
	}
	return "N"
}

// uniformMoney draws a two-decimal amount uniformly from [min, max).
func uniformMoney(rng *rand.Rand, min, max float64) float64 {
	v := min + rng.Float64()*(max-min)
	return float64(int64(v*100)) / 100
}
