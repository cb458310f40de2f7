package matching

import "github.com/denisok6893-rgb/brew-matching/internal/domain"

// Lookup tables. They are initialised once and never written.

var budgetPriceRanges = map[domain.Budget][]domain.PriceRange{
	domain.BudgetStarter:     {domain.PriceBudget},
	domain.BudgetHomeBarista: {domain.PriceBudget, domain.PriceMidRange},
	domain.BudgetSerious:     {domain.PriceMidRange, domain.PricePremium},
	domain.BudgetProsumer:    {domain.PricePremium, domain.PriceProsumer},
}

// roastPreferences lists roasts per brewer, best fit first.
var roastPreferences = map[domain.MachineType][]domain.RoastLevel{
	domain.MachineSuperAutomatic: {domain.RoastMedium, domain.RoastMediumDark, domain.RoastDark},
	domain.MachineAutomatic:      {domain.RoastMedium, domain.RoastMediumDark},
	domain.MachineSemiAutomatic:  {domain.RoastMediumLight, domain.RoastMedium, domain.RoastMediumDark},
	domain.MachineManualLever:    {domain.RoastLight, domain.RoastMediumLight, domain.RoastMedium},
	domain.MachinePourOver:       {domain.RoastLight, domain.RoastMediumLight},
	domain.MachineFrenchPress:    {domain.RoastMedium, domain.RoastMediumDark, domain.RoastDark},
	domain.MachineMokaPot:        {domain.RoastMediumDark, domain.RoastDark},
	domain.MachineAeropress:      {domain.RoastLight, domain.RoastMediumLight, domain.RoastMedium},
}

// fallbackRoasts applies to a machine type missing from roastPreferences.
var fallbackRoasts = []domain.RoastLevel{domain.RoastMedium}

var machineBrewMethod = map[domain.MachineType]domain.BrewMethod{
	domain.MachineSuperAutomatic: domain.BrewEspresso,
	domain.MachineAutomatic:      domain.BrewEspresso,
	domain.MachineSemiAutomatic:  domain.BrewEspresso,
	domain.MachineManualLever:    domain.BrewEspresso,
	domain.MachinePourOver:       domain.BrewFilter,
	domain.MachineFrenchPress:    domain.BrewFrenchPress,
	domain.MachineMokaPot:        domain.BrewMokaPot,
	domain.MachineAeropress:      domain.BrewFilter,
}

// grinderQuality ranks grinder price tiers 1..3. Tiers not listed count as 1.
var grinderQuality = map[domain.PriceRange]int{
	domain.PriceBudget:   1,
	domain.PriceMidRange: 2,
	domain.PricePremium:  3,
}

const (
	defaultMachineType        = domain.MachineSemiAutomatic
	defaultPreInfusionSeconds = 3
)

func isEspressoFamily(t domain.MachineType) bool {
	switch t {
	case domain.MachineSemiAutomatic, domain.MachineAutomatic,
		domain.MachineSuperAutomatic, domain.MachineManualLever:
		return true
	}
	return false
}

// BudgetPriceRanges returns the catalog price tiers allowed for a budget.
func BudgetPriceRanges(b domain.Budget) []domain.PriceRange {
	return append([]domain.PriceRange(nil), budgetPriceRanges[b]...)
}

// PreferredRoasts returns the roast preference order used for t.
// An empty t uses the semi-automatic list.
func PreferredRoasts(t domain.MachineType) []domain.RoastLevel {
	if t == "" {
		t = defaultMachineType
	}
	roasts, ok := roastPreferences[t]
	if !ok {
		roasts = fallbackRoasts
	}
	return append([]domain.RoastLevel(nil), roasts...)
}

// BrewMethodFor maps a machine type onto the bean brew method it needs.
func BrewMethodFor(t domain.MachineType) domain.BrewMethod {
	if t == "" {
		t = defaultMachineType
	}
	if m, ok := machineBrewMethod[t]; ok {
		return m
	}
	return domain.BrewEspresso
}

func qualityOf(p domain.PriceRange) int {
	if q, ok := grinderQuality[p]; ok {
		return q
	}
	return 1
}
