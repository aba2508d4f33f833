package classify

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mwhitmore/ledgerlens/internal/model"
)

// The heuristic tables are plain data so they can be inspected, unit-tested,
// and extended without touching control flow. Order matters: earlier rules
// and earlier keyword tables win ties.

// DefaultRules returns the built-in deterministic rule table.
func DefaultRules() []Rule {
	return []Rule{
		// Fuel-station brands and vocabulary.
		{Pattern: "shell", Category: model.CategoryFuel},
		{Pattern: "chevron", Category: model.CategoryFuel},
		{Pattern: "exxon", Category: model.CategoryFuel},
		{Pattern: "bp", Category: model.CategoryFuel, VendorOnly: true},
		{Pattern: "sunoco", Category: model.CategoryFuel},
		{Pattern: "wawa", Category: model.CategoryFuel},
		{Pattern: "speedway", Category: model.CategoryFuel},
		{Pattern: "valero", Category: model.CategoryFuel},
		{Pattern: "citgo", Category: model.CategoryFuel},
		{Pattern: "marathon", Category: model.CategoryFuel, VendorOnly: true},
		{Pattern: "gas station", Category: model.CategoryFuel},
		{Pattern: "gasoline", Category: model.CategoryFuel},
		{Pattern: "unleaded", Category: model.CategoryFuel},
		{Pattern: "diesel", Category: model.CategoryFuel},
		{Pattern: "fuel", Category: model.CategoryFuel},

		// Hardware and building-material chains.
		{Pattern: "home depot", Category: model.CategoryMaterials},
		{Pattern: "lowes", Category: model.CategoryMaterials},
		{Pattern: "menards", Category: model.CategoryMaterials},
		{Pattern: "ace hardware", Category: model.CategoryMaterials},
		{Pattern: "lumber", Category: model.CategoryMaterials},
		{Pattern: "drywall", Category: model.CategoryMaterials},
		{Pattern: "building supply", Category: model.CategoryMaterials},

		// Tools and equipment.
		{Pattern: "harbor freight", Category: model.CategoryTools},
		{Pattern: "northern tool", Category: model.CategoryTools},
		{Pattern: "tool rental", Category: model.CategoryTools},
		{Pattern: "equipment rental", Category: model.CategoryTools},

		// Vehicle maintenance.
		{Pattern: "jiffy lube", Category: model.CategoryVehicle},
		{Pattern: "autozone", Category: model.CategoryVehicle},
		{Pattern: "auto parts", Category: model.CategoryVehicle},
		{Pattern: "oil change", Category: model.CategoryVehicle},
		{Pattern: "tire", Category: model.CategoryVehicle, VendorOnly: true},

		// Restaurant chains and dining vocabulary.
		{Pattern: "mcdonald", Category: model.CategoryMeals},
		{Pattern: "burger king", Category: model.CategoryMeals},
		{Pattern: "chipotle", Category: model.CategoryMeals},
		{Pattern: "starbucks", Category: model.CategoryMeals},
		{Pattern: "dunkin", Category: model.CategoryMeals},
		{Pattern: "restaurant", Category: model.CategoryMeals},
		{Pattern: "pizzeria", Category: model.CategoryMeals},
		{Pattern: "cafe", Category: model.CategoryMeals, VendorOnly: true},
		{Pattern: "coffee", Category: model.CategoryMeals, VendorOnly: true},
		{Pattern: "grill", Category: model.CategoryMeals, VendorOnly: true},
		{Pattern: "diner", Category: model.CategoryMeals, VendorOnly: true},

		// Office and admin.
		{Pattern: "staples", Category: model.CategoryOffice},
		{Pattern: "office depot", Category: model.CategoryOffice},
		{Pattern: "office supplies", Category: model.CategoryOffice},
		{Pattern: "usps", Category: model.CategoryOffice},
		{Pattern: "postage", Category: model.CategoryOffice},

		// Labor and subcontractors.
		{Pattern: "subcontract", Category: model.CategorySubcontractors},
		{Pattern: "labor invoice", Category: model.CategorySubcontractors},
		{Pattern: "contracting", Category: model.CategorySubcontractors, VendorOnly: true},

		// Permits, licensing, and government charges. The fee patterns are
		// guarded so a card-processing footer cannot trigger them.
		{Pattern: "permit", Category: model.CategoryPermits},
		{Pattern: "licensing", Category: model.CategoryPermits},
		{Pattern: "license fee", Category: model.CategoryPermits},
		{Pattern: "inspection fee", Category: model.CategoryPermits},
		{Pattern: "filing fee", Category: model.CategoryPermits, Guarded: true},
		{Pattern: "recording fee", Category: model.CategoryPermits, Guarded: true},
		{Pattern: "fee", Category: model.CategoryPermits, Guarded: true},
	}
}

// KeywordTable holds the scoring keywords for one category.
type KeywordTable struct {
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
}

// DefaultKeywordTables returns the built-in keyword tables in tie-break order.
func DefaultKeywordTables() []KeywordTable {
	return []KeywordTable{
		{Category: model.CategoryFuel, Keywords: []string{
			"fuel", "gas", "gasoline", "unleaded", "diesel", "pump", "gallon", "octane",
		}},
		{Category: model.CategoryMeals, Keywords: []string{
			"restaurant", "cafe", "coffee", "breakfast", "lunch", "dinner",
			"burger", "pizza", "taco", "sandwich", "latte", "espresso", "server",
		}},
		{Category: model.CategoryMaterials, Keywords: []string{
			"lumber", "drywall", "concrete", "paint", "supply", "supplies",
			"hardware", "fasteners", "plumbing", "electrical", "fittings",
		}},
		{Category: model.CategoryTools, Keywords: []string{
			"tool", "tools", "drill", "saw", "blade", "equipment", "rental", "batteries",
		}},
		{Category: model.CategoryVehicle, Keywords: []string{
			"oil change", "tires", "brake", "rotation", "alignment",
			"maintenance", "filter", "coolant",
		}},
		{Category: model.CategoryOffice, Keywords: []string{
			"paper", "ink", "toner", "printing", "postage", "stamps",
			"envelopes", "office", "shipping",
		}},
		{Category: model.CategorySubcontractors, Keywords: []string{
			"labor", "subcontractor", "contractor", "install", "installation", "crew", "hourly",
		}},
		{Category: model.CategoryPermits, Keywords: []string{
			"permit", "license", "inspection", "zoning", "filing", "recording", "municipal",
		}},
	}
}

// LoadRules reads a deterministic rule table from a YAML file. Order in the
// file is match order.
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules: %w", err)
	}

	var doc struct {
		Rules []Rule `yaml:"rules"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse rules: %w", err)
	}
	if len(doc.Rules) == 0 {
		return nil, fmt.Errorf("rules file %s defines no rules", path)
	}
	for _, r := range doc.Rules {
		if r.Pattern == "" {
			return nil, fmt.Errorf("rule for category %q has an empty pattern", r.Category)
		}
		if !model.ValidCategory(r.Category) {
			return nil, fmt.Errorf("rule %q references unknown category %q", r.Pattern, r.Category)
		}
	}
	return doc.Rules, nil
}

// LoadKeywordTables reads keyword tables from a YAML file, letting users
// extend the taxonomy's vocabulary without a rebuild.
func LoadKeywordTables(path string) ([]KeywordTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keyword tables: %w", err)
	}

	var doc struct {
		Categories []KeywordTable `yaml:"categories"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse keyword tables: %w", err)
	}
	if len(doc.Categories) == 0 {
		return nil, fmt.Errorf("keyword table file %s defines no categories", path)
	}
	for _, t := range doc.Categories {
		if !model.ValidCategory(t.Category) {
			return nil, fmt.Errorf("keyword table references unknown category %q", t.Category)
		}
	}
	return doc.Categories, nil
}
