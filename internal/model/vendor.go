package model

import "time"

// Vendor is a learned memory entry keyed by a normalized merchant name.
// It records the category and account code the user most recently approved
// for that merchant, together with how many receipts contributed to it.
type Vendor struct {
	LastUpdated time.Time `json:"last_updated"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	AccountCode string    `json:"account_code"`
	UseCount    int       `json:"use_count"`
}

// Merge applies a newly approved categorization to the entry. Category and
// account code are last-write-wins; the observation count only grows.
func (v *Vendor) Merge(category, accountCode string) {
	v.Category = category
	v.AccountCode = accountCode
	if v.UseCount < 1 {
		v.UseCount = 1
	} else {
		v.UseCount++
	}
	v.LastUpdated = time.Now()
}
