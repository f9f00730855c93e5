package entities

// Product is a catalog entry. Name is the unique key; Unit is the unit
// of measure quantities are expressed in (e.g. "MT").
type Product struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Unit     string `json:"unit"`
}

// DefaultProducts is the catalog the service boots with.
func DefaultProducts() []Product {
	return []Product{
		{Name: "Basmati Rice", Category: "Rice", Unit: "MT"},
		{Name: "Finger Millet", Category: "Millets", Unit: "MT"},
		{Name: "Red Lentils", Category: "Pulses", Unit: "MT"},
		{Name: "Sunflower Oil", Category: "Oils", Unit: "MT"},
		{Name: "Black Gram", Category: "Pulses", Unit: "MT"},
	}
}

// Countries is the fixed list of destination countries an estimate may
// target.
var Countries = []string{
	"United States",
	"United Arab Emirates",
	"Saudi Arabia",
	"United Kingdom",
	"India",
	"China",
	"Japan",
}

// IsValidDestination reports whether dest is a member of Countries.
func IsValidDestination(dest string) bool {
	for _, c := range Countries {
		if c == dest {
			return true
		}
	}
	return false
}
