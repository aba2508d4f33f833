package model

// Category names form a small closed taxonomy. CategoryOther is the
// universal fallback and always exists.
const (
	CategoryFuel           = "Fuel"
	CategoryTools          = "Tools & Equipment"
	CategoryMaterials      = "Materials / Supplies"
	CategoryVehicle        = "Vehicle Maintenance"
	CategoryMeals          = "Meals"
	CategoryOffice         = "Office / Admin"
	CategorySubcontractors = "Subcontractors"
	CategoryPermits        = "Permits / Fees"
	CategoryOther          = "Other"
)

// Category represents a spending category with its chart-of-accounts code.
type Category struct {
	Name        string `json:"name"`
	AccountCode string `json:"account_code"`
}

// DefaultChart returns the built-in category taxonomy with its default
// chart-of-accounts codes, in display order.
func DefaultChart() []Category {
	return []Category{
		{Name: CategoryFuel, AccountCode: "6000"},
		{Name: CategoryTools, AccountCode: "6100"},
		{Name: CategoryMaterials, AccountCode: "6200"},
		{Name: CategoryVehicle, AccountCode: "6300"},
		{Name: CategoryMeals, AccountCode: "6400"},
		{Name: CategoryOffice, AccountCode: "6500"},
		{Name: CategorySubcontractors, AccountCode: "6600"},
		{Name: CategoryPermits, AccountCode: "6700"},
		{Name: CategoryOther, AccountCode: "6999"},
	}
}

// ValidCategory reports whether name is part of the taxonomy.
func ValidCategory(name string) bool {
	for _, c := range DefaultChart() {
		if c.Name == name {
			return true
		}
	}
	return false
}

// AccountCodeFor returns the chart-of-accounts code for a category,
// falling back to the Other code for unknown names.
func AccountCodeFor(category string) string {
	chart := DefaultChart()
	for _, c := range chart {
		if c.Name == category {
			return c.AccountCode
		}
	}
	return chart[len(chart)-1].AccountCode
}
