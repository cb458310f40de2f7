package domain

import "fmt"

// ParseMachineType accepts the logical machine types plus the short form
// "manual" for manual-lever machines.
func ParseMachineType(s string) (MachineType, error) {
	if s == "manual" {
		return MachineManualLever, nil
	}
	t := MachineType(s)
	switch t {
	case MachineManualLever, MachineSemiAutomatic, MachineAutomatic, MachineSuperAutomatic,
		MachineMokaPot, MachinePourOver, MachineFrenchPress, MachineAeropress:
		return t, nil
	}
	return "", fmt.Errorf("unknown machine type %q", s)
}

func ParseGrinderKind(s string) (GrinderKind, error) {
	switch k := GrinderKind(s); k {
	case KindManual, KindElectric:
		return k, nil
	}
	// Catalog classes collapse onto a kind.
	switch t := GrinderType(s); t {
	case GrinderEntryElectric, GrinderProsumerElectric, GrinderCommercial:
		return t.Kind(), nil
	}
	return "", fmt.Errorf("unknown grinder type %q", s)
}

func ParseBurrType(s string) (BurrType, error) {
	switch b := BurrType(s); b {
	case BurrFlat, BurrConical:
		return b, nil
	}
	return "", fmt.Errorf("unknown burr type %q", s)
}

func ParseBudget(s string) (Budget, error) {
	switch b := Budget(s); b {
	case BudgetStarter, BudgetHomeBarista, BudgetSerious, BudgetProsumer:
		return b, nil
	}
	return "", fmt.Errorf("unknown budget %q", s)
}

func ParsePurpose(s string) (Purpose, error) {
	switch p := Purpose(s); p {
	case PurposeQuickEspresso, PurposeMilkDrinks, PurposePourOver, PurposeColdBrew,
		PurposeExperimenting, PurposeFullSetup:
		return p, nil
	}
	return "", fmt.Errorf("unknown purpose %q", s)
}

func ParseExperienceLevel(s string) (ExperienceLevel, error) {
	switch l := ExperienceLevel(s); l {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced:
		return l, nil
	}
	return "", fmt.Errorf("unknown experience level %q", s)
}

func ParseRoastLevel(s string) (RoastLevel, error) {
	switch r := RoastLevel(s); r {
	case RoastLight, RoastMediumLight, RoastMedium, RoastMediumDark, RoastDark:
		return r, nil
	}
	return "", fmt.Errorf("unknown roast level %q", s)
}

func ParseBrewMethod(s string) (BrewMethod, error) {
	switch m := BrewMethod(s); m {
	case BrewEspresso, BrewFilter, BrewFrenchPress, BrewMokaPot, BrewColdBrew:
		return m, nil
	}
	return "", fmt.Errorf("unknown brew method %q", s)
}

func (p PriceRange) Valid() bool {
	switch p {
	case PriceBudget, PriceMidRange, PricePremium, PriceProsumer:
		return true
	}
	return false
}

func (b BoilerType) Valid() bool {
	switch b {
	case BoilerThermoblock, BoilerHeatExchanger, BoilerDual, BoilerSingle:
		return true
	}
	return false
}

func (t GrinderType) Valid() bool {
	switch t {
	case GrinderManual, GrinderEntryElectric, GrinderProsumerElectric, GrinderCommercial:
		return true
	}
	return false
}

func ParseEquipmentKind(s string) (EquipmentKind, error) {
	switch k := EquipmentKind(s); k {
	case EquipmentMachine, EquipmentGrinder:
		return k, nil
	}
	return "", fmt.Errorf("unknown equipment kind %q", s)
}
