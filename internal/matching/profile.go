package matching

import (
	"fmt"

	"github.com/denisok6893-rgb/brew-matching/internal/domain"
)

// BrewSelection is the brewing device picked in the bean wizard.
type BrewSelection string

const (
	SelectEspressoMachine BrewSelection = "espresso-machine"
	SelectPourOver        BrewSelection = "pour-over"
	SelectFrenchPress     BrewSelection = "french-press"
	SelectMokaPot         BrewSelection = "moka-pot"
	SelectAeropress       BrewSelection = "aeropress"
)

// ParseSelection validates a wizard selection. Empty means an espresso machine.
func ParseSelection(s string) (BrewSelection, error) {
	switch sel := BrewSelection(s); sel {
	case "":
		return SelectEspressoMachine, nil
	case SelectEspressoMachine, SelectPourOver, SelectFrenchPress, SelectMokaPot, SelectAeropress:
		return sel, nil
	}
	return "", fmt.Errorf("unknown brew selection %q", s)
}

// ProjectProfile turns a wizard selection plus optional catalog records into
// the profile the scorer consumes. An espresso machine selection takes the
// machine's own type; anything unrecognised is treated as semi-automatic.
func ProjectProfile(sel BrewSelection, machine *domain.EspressoMachine, grinder *domain.CoffeeGrinder) domain.EquipmentProfile {
	var p domain.EquipmentProfile

	switch sel {
	case SelectPourOver:
		p.MachineType = domain.MachinePourOver
	case SelectFrenchPress:
		p.MachineType = domain.MachineFrenchPress
	case SelectMokaPot:
		p.MachineType = domain.MachineMokaPot
	case SelectAeropress:
		p.MachineType = domain.MachineAeropress
	default:
		p.MachineType = domain.MachineSemiAutomatic
		if machine != nil && machine.Type != "" {
			p.MachineType = machine.Type
		}
	}

	if grinder != nil {
		p.GrinderType = grinder.Type.Kind()
		p.BurrType = grinder.BurrType
	}
	return p
}

// ProfileFromEquipment builds a profile from the user's saved gear. The first
// saved machine and grinder that resolve against the catalog are used and
// returned alongside the profile; either record may be nil.
func ProfileFromEquipment(items []domain.UserEquipment, cat domain.Catalog) (domain.EquipmentProfile, *domain.EspressoMachine, *domain.CoffeeGrinder) {
	var (
		machine *domain.EspressoMachine
		grinder *domain.CoffeeGrinder
	)
	for _, it := range items {
		if it.CatalogID == "" {
			continue
		}
		switch it.Kind {
		case domain.EquipmentMachine:
			if machine != nil {
				continue
			}
			if m, ok := cat.MachineByID(it.CatalogID); ok {
				machine = &m
			}
		case domain.EquipmentGrinder:
			if grinder != nil {
				continue
			}
			if g, ok := cat.GrinderByID(it.CatalogID); ok {
				grinder = &g
			}
		}
	}
	return ProjectProfile(SelectEspressoMachine, machine, grinder), machine, grinder
}

// ParseProfile builds a profile from raw enum strings. Empty strings leave
// the field undeclared.
func ParseProfile(machineType, grinderType, burrType string) (domain.EquipmentProfile, error) {
	var p domain.EquipmentProfile
	if machineType != "" {
		t, err := domain.ParseMachineType(machineType)
		if err != nil {
			return p, err
		}
		p.MachineType = t
	}
	if grinderType != "" {
		k, err := domain.ParseGrinderKind(grinderType)
		if err != nil {
			return p, err
		}
		p.GrinderType = k
	}
	if burrType != "" {
		b, err := domain.ParseBurrType(burrType)
		if err != nil {
			return p, err
		}
		p.BurrType = b
	}
	return p, nil
}

// ParsePreferences validates the non-empty fields; empty ones stay unset.
func ParsePreferences(budget string, purposes []string, level string) (domain.Preferences, error) {
	var prefs domain.Preferences
	if budget != "" {
		b, err := domain.ParseBudget(budget)
		if err != nil {
			return prefs, err
		}
		prefs.Budget = b
	}
	for _, p := range purposes {
		purpose, err := domain.ParsePurpose(p)
		if err != nil {
			return prefs, err
		}
		prefs.Purposes = append(prefs.Purposes, purpose)
	}
	if level != "" {
		l, err := domain.ParseExperienceLevel(level)
		if err != nil {
			return prefs, err
		}
		prefs.ExperienceLevel = l
	}
	return prefs, nil
}
