package refdata

import (
	"fmt"

	"github.com/nestworth/nestworth-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// Category labels a catalog line item. Categories drive the mapping onto
// projection expense fields, so every category used in a catalog must appear
// in fieldByCategory; init enforces that.
type Category string

const (
	CategoryNurseryFurniture Category = "Nursery Furniture"
	CategoryTransportation   Category = "Transportation"
	CategoryFeeding          Category = "Feeding"
	CategorySafety           Category = "Safety & Monitoring"
	CategoryDiapersWipes     Category = "Diapers & Wipes"
	CategoryFormulaFood      Category = "Formula & Food"
	CategoryClothing         Category = "Clothing"
	CategoryHealthcare       Category = "Healthcare"
	CategoryPersonalCare     Category = "Personal Care"
	CategoryToysBooks        Category = "Toys & Books"
	CategoryMiscellaneous    Category = "Miscellaneous"
)

// CostRange is a catalog price at the three cost tiers, in whole dollars
type CostRange struct {
	Low     int
	Average int
	High    int
}

// AtTier returns the price for a tier as a decimal amount
func (r CostRange) AtTier(tier domain.CostTier) decimal.Decimal {
	switch tier {
	case domain.CostTierLow:
		return decimal.NewFromInt(int64(r.Low))
	case domain.CostTierHigh:
		return decimal.NewFromInt(int64(r.High))
	default:
		return decimal.NewFromInt(int64(r.Average))
	}
}

// OneTimeItem is a single-purchase catalog entry. Essential items make up the
// fixed set the assumption resolver prices for every profile.
type OneTimeItem struct {
	Name      string
	Category  Category
	Cost      CostRange
	Essential bool
}

var oneTimeCatalog = []OneTimeItem{
	{Name: "Crib", Category: CategoryNurseryFurniture, Cost: CostRange{150, 300, 800}, Essential: true},
	{Name: "Crib Mattress", Category: CategoryNurseryFurniture, Cost: CostRange{80, 150, 300}},
	{Name: "Changing Table", Category: CategoryNurseryFurniture, Cost: CostRange{80, 120, 250}, Essential: true},
	{Name: "Car Seat (Infant)", Category: CategoryTransportation, Cost: CostRange{100, 200, 400}, Essential: true},
	{Name: "Stroller", Category: CategoryTransportation, Cost: CostRange{100, 250, 800}, Essential: true},
	{Name: "High Chair", Category: CategoryFeeding, Cost: CostRange{50, 150, 300}, Essential: true},
	{Name: "Baby Monitor", Category: CategorySafety, Cost: CostRange{50, 100, 300}, Essential: true},
	{Name: "Bottles & Accessories", Category: CategoryFeeding, Cost: CostRange{50, 100, 200}},
}

// RecurringItem is a monthly catalog entry, active while the baby's age in
// months falls inside [StartMonth, EndMonth]. A nil EndMonth never expires.
type RecurringItem struct {
	Name        string
	Category    Category
	MonthlyCost CostRange
	StartMonth  int
	EndMonth    *int
}

// ActiveAt reports whether the item applies at the given baby age in months
func (i RecurringItem) ActiveAt(ageMonths int) bool {
	if ageMonths < i.StartMonth {
		return false
	}
	return i.EndMonth == nil || ageMonths <= *i.EndMonth
}

func until(month int) *int {
	return &month
}

var recurringCatalog = []RecurringItem{
	{Name: "Diapers", Category: CategoryDiapersWipes, MonthlyCost: CostRange{60, 80, 120}, StartMonth: 0, EndMonth: until(30)},
	{Name: "Wipes", Category: CategoryDiapersWipes, MonthlyCost: CostRange{15, 25, 40}, StartMonth: 0, EndMonth: until(36)},
	{Name: "Diaper Cream", Category: CategoryDiapersWipes, MonthlyCost: CostRange{5, 10, 20}, StartMonth: 0, EndMonth: until(30)},
	{Name: "Formula", Category: CategoryFormulaFood, MonthlyCost: CostRange{100, 150, 250}, StartMonth: 0, EndMonth: until(12)},
	{Name: "Baby Food (Purees)", Category: CategoryFormulaFood, MonthlyCost: CostRange{50, 80, 120}, StartMonth: 6, EndMonth: until(12)},
	{Name: "Toddler Food", Category: CategoryFormulaFood, MonthlyCost: CostRange{80, 120, 180}, StartMonth: 12},
	{Name: "Snacks", Category: CategoryFormulaFood, MonthlyCost: CostRange{20, 40, 60}, StartMonth: 9},
	{Name: "Clothing (0-12m)", Category: CategoryClothing, MonthlyCost: CostRange{30, 50, 100}, StartMonth: 0, EndMonth: until(12)},
	{Name: "Clothing (12-24m)", Category: CategoryClothing, MonthlyCost: CostRange{35, 60, 120}, StartMonth: 12, EndMonth: until(24)},
	{Name: "Clothing (2-5y)", Category: CategoryClothing, MonthlyCost: CostRange{40, 70, 140}, StartMonth: 24},
	{Name: "Medical Co-pays", Category: CategoryHealthcare, MonthlyCost: CostRange{30, 50, 100}, StartMonth: 0},
	{Name: "Medications & Vitamins", Category: CategoryHealthcare, MonthlyCost: CostRange{10, 25, 50}, StartMonth: 0},
	{Name: "Dental Care", Category: CategoryHealthcare, MonthlyCost: CostRange{0, 20, 50}, StartMonth: 12},
	{Name: "Bath Products", Category: CategoryPersonalCare, MonthlyCost: CostRange{10, 20, 40}, StartMonth: 0},
	{Name: "Laundry (Extra)", Category: CategoryPersonalCare, MonthlyCost: CostRange{15, 30, 50}, StartMonth: 0},
	{Name: "Toys", Category: CategoryToysBooks, MonthlyCost: CostRange{20, 40, 80}, StartMonth: 3},
	{Name: "Books", Category: CategoryToysBooks, MonthlyCost: CostRange{10, 20, 40}, StartMonth: 0},
	{Name: "Miscellaneous", Category: CategoryMiscellaneous, MonthlyCost: CostRange{50, 100, 200}, StartMonth: 0},
}

// fieldByCategory maps every recurring category onto its projection expense
// field. Personal care, toys/books, and catalog-miscellaneous all land in the
// miscellaneous field.
var fieldByCategory = map[Category]domain.ExpenseField{
	CategoryDiapersWipes:  domain.ExpenseFieldDiapers,
	CategoryFormulaFood:   domain.ExpenseFieldFood,
	CategoryClothing:      domain.ExpenseFieldClothing,
	CategoryHealthcare:    domain.ExpenseFieldHealthcare,
	CategoryPersonalCare:  domain.ExpenseFieldMiscellaneous,
	CategoryToysBooks:     domain.ExpenseFieldMiscellaneous,
	CategoryMiscellaneous: domain.ExpenseFieldMiscellaneous,
}

func init() {
	// Unmapped categories must fail at startup, not silently drop cost.
	for _, item := range recurringCatalog {
		if _, ok := fieldByCategory[item.Category]; !ok {
			panic(fmt.Sprintf("refdata: recurring item %q has unmapped category %q", item.Name, item.Category))
		}
		if item.EndMonth != nil && *item.EndMonth < item.StartMonth {
			panic(fmt.Sprintf("refdata: recurring item %q ends before it starts", item.Name))
		}
	}
}

// FieldForCategory returns the projection expense field for a recurring
// catalog category. Unknown categories fall back to miscellaneous; init
// guarantees the shipped catalog never hits that branch.
func FieldForCategory(c Category) domain.ExpenseField {
	if field, ok := fieldByCategory[c]; ok {
		return field
	}
	return domain.ExpenseFieldMiscellaneous
}

// OneTimeItems returns the full one-time catalog. The slice is shared static
// data; callers must not modify it.
func OneTimeItems() []OneTimeItem {
	return oneTimeCatalog
}

// EssentialOneTimeItems returns the essential subset of the one-time catalog
func EssentialOneTimeItems() []OneTimeItem {
	essentials := make([]OneTimeItem, 0, len(oneTimeCatalog))
	for _, item := range oneTimeCatalog {
		if item.Essential {
			essentials = append(essentials, item)
		}
	}
	return essentials
}

// RecurringItems returns the full recurring catalog. The slice is shared
// static data; callers must not modify it.
func RecurringItems() []RecurringItem {
	return recurringCatalog
}

// RecurringTotalsAt sums the recurring catalog for a baby age at a cost tier,
// grouped by projection expense field. Every field is present in the result,
// zero when nothing is active.
func RecurringTotalsAt(ageMonths int, tier domain.CostTier) map[domain.ExpenseField]decimal.Decimal {
	totals := make(map[domain.ExpenseField]decimal.Decimal, len(domain.RecurringExpenseFields))
	for _, field := range domain.RecurringExpenseFields {
		totals[field] = decimal.Zero
	}
	for _, item := range recurringCatalog {
		if !item.ActiveAt(ageMonths) {
			continue
		}
		field := FieldForCategory(item.Category)
		totals[field] = totals[field].Add(item.MonthlyCost.AtTier(tier))
	}
	return totals
}
