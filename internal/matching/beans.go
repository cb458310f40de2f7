package matching

import (
	"math"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/denisok6893-rgb/brew-matching/internal/domain"
)

const (
	maxBrewTips      = 3
	defaultBeanLimit = 5

	// Contributions used when the matching catalog record is not supplied.
	missingGrinderScore = 10
	missingMachineScore = 10
)

// MatchBeans scores every bean against the equipment profile and returns one
// match per bean, best first. Equal scores keep their input order.
//
// machine and grinder are optional; a nil record scores a flat default for
// its term instead of skipping the bean.
func MatchBeans(beans []domain.CoffeeBean, profile domain.EquipmentProfile, machine *domain.EspressoMachine, grinder *domain.CoffeeGrinder) []domain.BeanMatch {
	machineType := profile.MachineType
	if machineType == "" {
		machineType = defaultMachineType
	}
	preferred := PreferredRoasts(machineType)
	method := BrewMethodFor(machineType)

	matches := make([]domain.BeanMatch, 0, len(beans))
	for _, bean := range beans {
		matches = append(matches, scoreBean(bean, profile, machineType, preferred, method, machine, grinder))
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})
	return matches
}

// TopBeans returns the best limit matches. A non-positive limit means 5.
func TopBeans(beans []domain.CoffeeBean, profile domain.EquipmentProfile, machine *domain.EspressoMachine, grinder *domain.CoffeeGrinder, limit int) []domain.BeanMatch {
	if limit <= 0 {
		limit = defaultBeanLimit
	}
	return firstN(MatchBeans(beans, profile, machine, grinder), limit)
}

type scoreSheet struct {
	score   float64
	reasons []string
	tips    []string
}

func (s *scoreSheet) add(points float64, reason string) {
	s.score += points
	if reason != "" {
		s.reasons = append(s.reasons, reason)
	}
}

func (s *scoreSheet) tip(t string) {
	s.tips = append(s.tips, t)
}

func scoreBean(
	bean domain.CoffeeBean,
	profile domain.EquipmentProfile,
	machineType domain.MachineType,
	preferred []domain.RoastLevel,
	method domain.BrewMethod,
	machine *domain.EspressoMachine,
	grinder *domain.CoffeeGrinder,
) domain.BeanMatch {
	var s scoreSheet
	roast := bean.RoastLevel

	// Roast fit, up to 30.
	if i := slices.Index(preferred, roast); i >= 0 {
		s.add(math.Max(0, float64(30-5*i)),
			spaced(string(roast))+" roast is ideal for your "+spaced(string(machineType))+" machine")
	} else {
		s.add(5, "")
	}

	// Brew method, up to 25.
	if bean.SupportsMethod(method) {
		s.add(25, "Optimized for "+spaced(string(method))+" brewing")
	} else {
		s.add(5, "")
		s.tip("Consider adjusting grind size for " + string(method) + " brewing")
	}

	// Grinder. The burr bonus stacks on top and may push the sum past 100
	// before the final clamp.
	if grinder != nil {
		quality := qualityOf(grinder.PriceRange)
		if roast.IsLight() {
			if quality >= 2 {
				s.add(20, "Your "+grinder.Name+" can handle light roast precision grinding")
			} else {
				s.add(10, "")
				s.tip("Light roasts benefit from a more precise grinder")
			}
		} else {
			s.add(float64(15+2*quality), "Great match with your "+grinder.Name)
		}

		switch {
		case profile.BurrType == domain.BurrFlat && roast.IsLight():
			s.add(5, "Flat burrs excel at extracting light roast complexity")
		case profile.BurrType == domain.BurrConical && roast.IsDark():
			s.add(5, "Conical burrs bring out rich body in darker roasts")
		}
	} else {
		s.add(missingGrinderScore, "")
	}

	// Machine specifics, up to 15.
	if machine != nil {
		if machine.PumpPressure >= 15 && bean.TasteProfile.Body >= 7 {
			s.add(10, "High-pressure extraction enhances the full body")
		}
		if machine.PreInfusion != nil && machine.PreInfusion.Available && roast != domain.RoastDark {
			secs := machine.PreInfusion.RecommendedSeconds
			if secs <= 0 {
				secs = defaultPreInfusionSeconds
			}
			s.add(5, "")
			s.tip("Use " + strconv.Itoa(secs) + "s pre-infusion for better extraction")
		}
	} else {
		s.add(missingMachineScore, "")
	}

	// Taste balance, up to 10, never negative. Silent.
	tp := bean.TasteProfile
	balance := 10 - math.Abs(tp.Acidity-tp.Body) - math.Abs(tp.Sweetness-tp.Bitterness)
	s.add(math.Max(0, balance), "")

	s.tips = append(s.tips, machineTypeTips(machineType, roast)...)

	reasons := s.reasons
	if reasons == nil {
		reasons = []string{}
	}
	return domain.BeanMatch{
		Bean:         bean,
		MatchScore:   clampScore(s.score),
		MatchReasons: reasons,
		BrewTips:     firstN(s.tips, maxBrewTips),
	}
}

// machineTypeTips depends only on the brewer, never on the score.
func machineTypeTips(t domain.MachineType, roast domain.RoastLevel) []string {
	switch {
	case isEspressoFamily(t):
		tips := []string{"Aim for 18-20g dose, 36-40g yield in 25-30 seconds"}
		if roast.IsLight() {
			tips = append(tips, "Grind finer and use higher temperature for light roasts")
		}
		return tips
	case t == domain.MachinePourOver:
		return []string{
			"Use 1:15 ratio (15g coffee to 225ml water)",
			"Water temperature: 92-96°C for optimal extraction",
		}
	case t == domain.MachineFrenchPress:
		return []string{
			"Coarse grind, 4-minute steep time",
			"Use 1:12 ratio for stronger brew",
		}
	case t == domain.MachineMokaPot:
		return []string{
			"Fill water to just below the valve",
			"Use medium-fine grind, not espresso fine",
		}
	}
	return nil
}

func clampScore(v float64) int {
	r := math.Round(v)
	if r < 0 {
		return 0
	}
	if r > 100 {
		return 100
	}
	return int(r)
}

// spaced turns an enum value such as "medium-dark" into "medium dark".
func spaced(s string) string {
	return strings.ReplaceAll(s, "-", " ")
}
