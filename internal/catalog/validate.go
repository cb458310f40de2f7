package catalog

import (
	"errors"
	"fmt"

	"github.com/denisok6893-rgb/brew-matching/internal/domain"
)

// Validate checks ids are present and unique per table and that every enum
// field holds a known value. All problems are reported together.
func Validate(c domain.Catalog) error {
	var errs []error

	seen := map[string]bool{}
	for i, m := range c.Machines {
		if err := checkID("machine", i, m.ID, seen); err != nil {
			errs = append(errs, err)
		}
		if _, err := domain.ParseMachineType(string(m.Type)); err != nil {
			errs = append(errs, fmt.Errorf("machine %q: %w", m.ID, err))
		}
		if !m.PriceRange.Valid() {
			errs = append(errs, fmt.Errorf("machine %q: unknown price range %q", m.ID, m.PriceRange))
		}
		if !m.BoilerType.Valid() {
			errs = append(errs, fmt.Errorf("machine %q: unknown boiler type %q", m.ID, m.BoilerType))
		}
		if m.PumpPressure <= 0 {
			errs = append(errs, fmt.Errorf("machine %q: pump pressure must be > 0", m.ID))
		}
	}

	seen = map[string]bool{}
	for i, g := range c.Grinders {
		if err := checkID("grinder", i, g.ID, seen); err != nil {
			errs = append(errs, err)
		}
		if !g.Type.Valid() {
			errs = append(errs, fmt.Errorf("grinder %q: unknown type %q", g.ID, g.Type))
		}
		if _, err := domain.ParseBurrType(string(g.BurrType)); err != nil {
			errs = append(errs, fmt.Errorf("grinder %q: %w", g.ID, err))
		}
		if !g.PriceRange.Valid() {
			errs = append(errs, fmt.Errorf("grinder %q: unknown price range %q", g.ID, g.PriceRange))
		}
		if g.BurrSize <= 0 {
			errs = append(errs, fmt.Errorf("grinder %q: burr size must be > 0", g.ID))
		}
	}

	seen = map[string]bool{}
	for i, b := range c.Beans {
		if err := checkID("bean", i, b.ID, seen); err != nil {
			errs = append(errs, err)
		}
		if _, err := domain.ParseRoastLevel(string(b.RoastLevel)); err != nil {
			errs = append(errs, fmt.Errorf("bean %q: %w", b.ID, err))
		}
		for _, m := range b.BrewMethods {
			if _, err := domain.ParseBrewMethod(string(m)); err != nil {
				errs = append(errs, fmt.Errorf("bean %q: %w", b.ID, err))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog: invalid: %w", errors.Join(errs...))
	}
	return nil
}

func checkID(kind string, idx int, id string, seen map[string]bool) error {
	if id == "" {
		return fmt.Errorf("%s #%d: missing id", kind, idx)
	}
	if seen[id] {
		return fmt.Errorf("%s %q: duplicate id", kind, id)
	}
	seen[id] = true
	return nil
}
