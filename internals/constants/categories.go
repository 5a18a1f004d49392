package constants

// Category names that carry structured extra fields. Products in any
// other category have no mandatory attributes.
const (
	CategoryFood      = "Food"
	CategoryAnimal    = "Animal"
	CategoryMachinery = "Machinery"
)

// Ad enums
const (
	AdTypeSell = "sell"
	AdTypeRent = "rent"

	PostTypeNow      = "postnow"
	PostTypeSchedule = "schedule"

	AdStatusPending = "pending"
	AdStatusActive  = "active"
	AdStatusExpired = "expired"
)

// LandProductCategories are the only categories a land product may use.
var LandProductCategories = []string{
	CategoryFood,
	CategoryMachinery,
	CategoryAnimal,
}

func IsLandProductCategory(name string) bool {
	for _, c := range LandProductCategories {
		if c == name {
			return true
		}
	}
	return false
}
