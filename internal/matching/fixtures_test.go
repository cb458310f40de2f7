package matching

import "github.com/denisok6893-rgb/brew-matching/internal/domain"

func testMachines() []domain.EspressoMachine {
	return []domain.EspressoMachine{
		{ID: "m-budget-thermo", Name: "Budget Thermo", Type: domain.MachineSemiAutomatic, PriceRange: domain.PriceBudget, BoilerType: domain.BoilerThermoblock, PumpPressure: 15,
			PreInfusion: &domain.PreInfusion{Available: true}},
		{ID: "m-budget-single", Name: "Budget Single", Type: domain.MachineSemiAutomatic, PriceRange: domain.PriceBudget, BoilerType: domain.BoilerSingle, PumpPressure: 15},
		{ID: "m-mid-hx", Name: "Mid HX", Type: domain.MachineSemiAutomatic, PriceRange: domain.PriceMidRange, BoilerType: domain.BoilerHeatExchanger, PumpPressure: 9},
		{ID: "m-mid-dual", Name: "Mid Dual", Type: domain.MachineSemiAutomatic, PriceRange: domain.PriceMidRange, BoilerType: domain.BoilerDual, PumpPressure: 9,
			PreInfusion: &domain.PreInfusion{Available: true, RecommendedSeconds: 7}},
		{ID: "m-premium-thermo", Name: "Premium Thermo", Type: domain.MachineSuperAutomatic, PriceRange: domain.PricePremium, BoilerType: domain.BoilerThermoblock, PumpPressure: 15},
		{ID: "m-prosumer-dual", Name: "Prosumer Dual", Type: domain.MachineSuperAutomatic, PriceRange: domain.PriceProsumer, BoilerType: domain.BoilerDual, PumpPressure: 15},
	}
}

func testGrinders() []domain.CoffeeGrinder {
	return []domain.CoffeeGrinder{
		{ID: "g-budget-electric", Name: "Budget Electric", Type: domain.GrinderEntryElectric, BurrType: domain.BurrConical, BurrSize: 40, PriceRange: domain.PriceBudget},
		{ID: "g-mid-manual", Name: "Mid Manual", Type: domain.GrinderManual, BurrType: domain.BurrConical, BurrSize: 48, PriceRange: domain.PriceMidRange},
		{ID: "g-mid-flat", Name: "Mid Flat", Type: domain.GrinderProsumerElectric, BurrType: domain.BurrFlat, BurrSize: 55, PriceRange: domain.PriceMidRange},
		{ID: "g-premium-flat", Name: "Premium Flat", Type: domain.GrinderProsumerElectric, BurrType: domain.BurrFlat, BurrSize: 64, PriceRange: domain.PricePremium},
	}
}

// lightFilterBean has a zero taste balance.
func lightFilterBean() domain.CoffeeBean {
	return domain.CoffeeBean{
		ID: "b-light", Name: "Light Filter", RoastLevel: domain.RoastLight,
		FlavorNotes:  []string{"Jasmine", "Lemon", "Berry"},
		TasteProfile: domain.TasteProfile{Acidity: 8, Body: 3, Sweetness: 7, Bitterness: 2},
		BrewMethods:  []domain.BrewMethod{domain.BrewFilter},
	}
}

// darkMokaBean has a taste balance of 4.
func darkMokaBean() domain.CoffeeBean {
	return domain.CoffeeBean{
		ID: "b-dark", Name: "Dark Moka", RoastLevel: domain.RoastDark,
		FlavorNotes:  []string{"Dark Chocolate", "Tobacco"},
		TasteProfile: domain.TasteProfile{Acidity: 3, Body: 8, Sweetness: 5, Bitterness: 6},
		BrewMethods:  []domain.BrewMethod{domain.BrewEspresso, domain.BrewMokaPot},
	}
}

// fullBodyEspressoBean has a taste balance of 10.
func fullBodyEspressoBean() domain.CoffeeBean {
	return domain.CoffeeBean{
		ID: "b-full", Name: "Full Body", RoastLevel: domain.RoastMediumLight,
		FlavorNotes:  []string{"Caramel", "Hazelnut"},
		TasteProfile: domain.TasteProfile{Acidity: 7, Body: 7, Sweetness: 5, Bitterness: 5},
		BrewMethods:  []domain.BrewMethod{domain.BrewEspresso},
	}
}

func mediumBean(id string) domain.CoffeeBean {
	return domain.CoffeeBean{
		ID: id, Name: "Medium " + id, RoastLevel: domain.RoastMedium,
		FlavorNotes:  []string{"Smooth", "Milk Chocolate"},
		TasteProfile: domain.TasteProfile{Acidity: 5, Body: 6, Sweetness: 6, Bitterness: 4},
		BrewMethods:  []domain.BrewMethod{domain.BrewEspresso, domain.BrewFilter},
	}
}

func grinderByID(t interface{ Fatalf(string, ...any) }, id string) *domain.CoffeeGrinder {
	for _, g := range testGrinders() {
		if g.ID == id {
			return &g
		}
	}
	t.Fatalf("no test grinder %q", id)
	return nil
}

func machineByID(t interface{ Fatalf(string, ...any) }, id string) *domain.EspressoMachine {
	for _, m := range testMachines() {
		if m.ID == id {
			return &m
		}
	}
	t.Fatalf("no test machine %q", id)
	return nil
}

func machineIDs(ms []domain.EspressoMachine) []string {
	ids := make([]string, 0, len(ms))
	for _, m := range ms {
		ids = append(ids, m.ID)
	}
	return ids
}

func grinderIDs(gs []domain.CoffeeGrinder) []string {
	ids := make([]string, 0, len(gs))
	for _, g := range gs {
		ids = append(ids, g.ID)
	}
	return ids
}

func matchIDs(ms []domain.BeanMatch) []string {
	ids := make([]string, 0, len(ms))
	for _, m := range ms {
		ids = append(ids, m.Bean.ID)
	}
	return ids
}
