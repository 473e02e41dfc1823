// Package refdata holds the static reference cost tables the assumption
// resolver and projection engine price from. All lookups are pure and total:
// unknown inputs resolve to documented fallbacks, never errors.
package refdata

import "strings"

// ChildcareRate is the weekly childcare cost for a metro area, by age group
type ChildcareRate struct {
	ZIP             string
	City            string
	State           string
	WeeklyInfant    int
	WeeklyToddler   int
	WeeklyPreschool int
}

// Region returns a display name for the rate's area
func (r ChildcareRate) Region() string {
	if r.City == "" {
		return "National Average"
	}
	return r.City + ", " + r.State
}

// Declared order matters: prefix matching scans the table top to bottom.
var childcareRates = []ChildcareRate{
	{ZIP: "10001", City: "New York", State: "NY", WeeklyInfant: 450, WeeklyToddler: 400, WeeklyPreschool: 350},
	{ZIP: "10002", City: "New York", State: "NY", WeeklyInfant: 445, WeeklyToddler: 395, WeeklyPreschool: 345},
	{ZIP: "94102", City: "San Francisco", State: "CA", WeeklyInfant: 480, WeeklyToddler: 430, WeeklyPreschool: 380},
	{ZIP: "90001", City: "Los Angeles", State: "CA", WeeklyInfant: 420, WeeklyToddler: 370, WeeklyPreschool: 320},
	{ZIP: "98101", City: "Seattle", State: "WA", WeeklyInfant: 440, WeeklyToddler: 390, WeeklyPreschool: 340},
	{ZIP: "02101", City: "Boston", State: "MA", WeeklyInfant: 460, WeeklyToddler: 410, WeeklyPreschool: 360},
	{ZIP: "20001", City: "Washington", State: "DC", WeeklyInfant: 430, WeeklyToddler: 380, WeeklyPreschool: 330},
	{ZIP: "60601", City: "Chicago", State: "IL", WeeklyInfant: 350, WeeklyToddler: 310, WeeklyPreschool: 270},
	{ZIP: "75201", City: "Dallas", State: "TX", WeeklyInfant: 320, WeeklyToddler: 280, WeeklyPreschool: 240},
	{ZIP: "30301", City: "Atlanta", State: "GA", WeeklyInfant: 330, WeeklyToddler: 290, WeeklyPreschool: 250},
	{ZIP: "85001", City: "Phoenix", State: "AZ", WeeklyInfant: 310, WeeklyToddler: 270, WeeklyPreschool: 230},
	{ZIP: "33101", City: "Miami", State: "FL", WeeklyInfant: 340, WeeklyToddler: 300, WeeklyPreschool: 260},
	{ZIP: "35004", City: "Birmingham", State: "AL", WeeklyInfant: 240, WeeklyToddler: 210, WeeklyPreschool: 180},
	{ZIP: "38601", City: "Jackson", State: "MS", WeeklyInfant: 230, WeeklyToddler: 200, WeeklyPreschool: 170},
	{ZIP: "71601", City: "Little Rock", State: "AR", WeeklyInfant: 250, WeeklyToddler: 220, WeeklyPreschool: 190},
	{ZIP: "50301", City: "Des Moines", State: "IA", WeeklyInfant: 260, WeeklyToddler: 230, WeeklyPreschool: 200},
}

// nationalAverage is the fallback rate for postal codes the table doesn't cover
var nationalAverage = ChildcareRate{
	WeeklyInfant:    340,
	WeeklyToddler:   300,
	WeeklyPreschool: 260,
}

// LookupChildcare returns the childcare rate for a postal code. Exact matches
// win; otherwise the first entry sharing the code's 3-character regional
// prefix is used. The second return value reports whether any entry matched.
func LookupChildcare(postalCode string) (ChildcareRate, bool) {
	for _, rate := range childcareRates {
		if rate.ZIP == postalCode {
			return rate, true
		}
	}
	if len(postalCode) >= 3 {
		prefix := postalCode[:3]
		for _, rate := range childcareRates {
			if strings.HasPrefix(rate.ZIP, prefix) {
				return rate, true
			}
		}
	}
	return ChildcareRate{}, false
}

// NationalAverageRate returns the fallback childcare rate
func NationalAverageRate() ChildcareRate {
	return nationalAverage
}
