// Package waterfall models the deal's capital structure and the rules that
// route collateral cash and credit losses across it.
package waterfall

// Tranche is one slice of the capital structure.
//
// Ordering carries the seniority: index 0 of a []Tranche is the most senior
// slice. Balances only ever decrease (paydown or writedown).
type Tranche struct {
	Name    string
	Balance float64
	// Coupon is the annual coupon rate (e.g., 0.03 for 3%). Zero is legal
	// and typical for the equity slice.
	Coupon float64
}

// InterestDue returns the tranche's monthly coupon accrual on its current
// balance.
func (t Tranche) InterestDue() float64 {
	return t.Balance * t.Coupon / 12.0
}

// DefaultStructure is the example three-slice sequential deal: 100mm of
// liabilities against the roughly 100mm default collateral pool.
var DefaultStructure = []Tranche{
	{Name: "Senior", Balance: 50_000_000, Coupon: 0.03},
	{Name: "Mezz", Balance: 30_000_000, Coupon: 0.05},
	{Name: "Equity", Balance: 20_000_000, Coupon: 0.00},
}

// CopyStructure returns a value copy of a tranche template so per-path
// mutation never leaks back into the template.
func CopyStructure(template []Tranche) []Tranche {
	out := make([]Tranche, len(template))
	copy(out, template)
	return out
}

// Names returns tranche names in seniority order.
func Names(tranches []Tranche) []string {
	names := make([]string, len(tranches))
	for i, t := range tranches {
		names[i] = t.Name
	}
	return names
}

// TotalBalance sums outstanding balances across the structure.
func TotalBalance(tranches []Tranche) float64 {
	var total float64
	for _, t := range tranches {
		total += t.Balance
	}
	return total
}
